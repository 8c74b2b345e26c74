package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TagList stores an ordered list of tags in a single TEXT column,
// JSON-encoded so tags may contain any character.
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		t = TagList{}
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *TagList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = TagList{}
		return nil
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	}
	return fmt.Errorf("cannot scan %T into TagList", value)
}

// Author is the trimmed user reference embedded in post responses.
type Author struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Post struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	Pid        string    `gorm:"uniqueIndex;size:8;not null" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"-"`
	User       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Excerpt    string    `gorm:"not null" json:"excerpt"`
	CoverImage string    `gorm:"not null" json:"coverImage"`
	Category   string    `gorm:"not null;index" json:"category"`
	Tags       TagList   `gorm:"type:text" json:"tags"`
	ReadTime   int       `gorm:"default:5" json:"readTime"`
	Likes      int       `gorm:"default:0" json:"likes"`
	Featured   bool      `gorm:"default:false;index" json:"featured"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Not a database column, filled from the preloaded User after queries
	Author Author `gorm:"-" json:"author"`
}
