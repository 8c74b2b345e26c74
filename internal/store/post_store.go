package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"greatblog/internal/models"
	"greatblog/internal/utils"

	"gorm.io/gorm"
)

const (
	pidLength       = 8
	defaultReadTime = 5
)

// PostStore provides data access over the posts table.
type PostStore struct {
	db *gorm.DB
}

func NewPostStore(db *gorm.DB) *PostStore {
	return &PostStore{db: db}
}

// ListFilter narrows List results. The zero value means no filtering.
type ListFilter struct {
	Category string
	Featured *bool
}

type CreatePostInput struct {
	Title      string
	Content    string
	Excerpt    string
	CoverImage string
	Category   string
	Tags       []string
	ReadTime   *int
	Featured   *bool
}

// UpdatePostInput is a partial patch. Nil members leave the stored value
// untouched. Ownership and server-maintained fields have no members here,
// so a patch can never reassign them.
type UpdatePostInput struct {
	Title      *string
	Content    *string
	Excerpt    *string
	CoverImage *string
	Category   *string
	Tags       *[]string
	ReadTime   *int
	Likes      *int
	Featured   *bool
}

func (s *PostStore) filtered(ctx context.Context, filter ListFilter) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&models.Post{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Featured != nil {
		q = q.Where("featured = ?", *filter.Featured)
	}
	return q
}

// List returns one page of posts, newest first, plus the total number of
// posts matching the filter.
func (s *PostStore) List(ctx context.Context, filter ListFilter, page, limit int) ([]models.Post, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := s.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	posts := make([]models.Post, 0)
	err := s.filtered(ctx, filter).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}

	for i := range posts {
		fillAuthor(&posts[i])
	}
	return posts, total, nil
}

// GetByPid returns a single post by its public id with the author resolved.
func (s *PostStore) GetByPid(ctx context.Context, pid string) (*models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).Preload("User").Where("pid = ?", pid).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	fillAuthor(&post)
	return &post, nil
}

// Create inserts a new post owned by authorID. Any author value the caller
// may have supplied elsewhere is irrelevant: ownership comes only from the
// authorID argument.
func (s *PostStore) Create(ctx context.Context, in CreatePostInput, authorID uint) (*models.Post, error) {
	post := models.Post{
		Pid:        utils.RandStringBytesMaskImpr(pidLength),
		UserID:     authorID,
		Title:      in.Title,
		Content:    in.Content,
		Excerpt:    in.Excerpt,
		CoverImage: in.CoverImage,
		Category:   in.Category,
		Tags:       models.TagList(in.Tags),
		ReadTime:   defaultReadTime,
	}
	if post.Tags == nil {
		post.Tags = models.TagList{}
	}
	if in.ReadTime != nil {
		post.ReadTime = *in.ReadTime
	}
	if in.Featured != nil {
		post.Featured = *in.Featured
	}

	if err := validatePost(&post); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return s.GetByPid(ctx, post.Pid)
}

// Update applies patch to the post identified by pid, if authorID owns it.
// The write itself is conditional on pid AND user_id, so a racing delete or
// ownership mismatch between the load and the write cannot slip through.
func (s *PostStore) Update(ctx context.Context, pid string, authorID uint, patch UpdatePostInput) (*models.Post, error) {
	var existing models.Post
	err := s.db.WithContext(ctx).Where("pid = ?", pid).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load post: %w", err)
	}
	if existing.UserID != authorID {
		return nil, ErrForbidden
	}

	merged := existing
	if patch.Title != nil {
		merged.Title = *patch.Title
	}
	if patch.Content != nil {
		merged.Content = *patch.Content
	}
	if patch.Excerpt != nil {
		merged.Excerpt = *patch.Excerpt
	}
	if patch.CoverImage != nil {
		merged.CoverImage = *patch.CoverImage
	}
	if patch.Category != nil {
		merged.Category = *patch.Category
	}
	if patch.Tags != nil {
		merged.Tags = models.TagList(*patch.Tags)
		if merged.Tags == nil {
			merged.Tags = models.TagList{}
		}
	}
	if patch.ReadTime != nil {
		merged.ReadTime = *patch.ReadTime
	}
	if patch.Likes != nil {
		merged.Likes = *patch.Likes
	}
	if patch.Featured != nil {
		merged.Featured = *patch.Featured
	}

	if err := validatePost(&merged); err != nil {
		return nil, err
	}

	res := s.db.WithContext(ctx).Model(&models.Post{}).
		Where("pid = ? AND user_id = ?", pid, authorID).
		Updates(map[string]interface{}{
			"title":       merged.Title,
			"content":     merged.Content,
			"excerpt":     merged.Excerpt,
			"cover_image": merged.CoverImage,
			"category":    merged.Category,
			"tags":        merged.Tags,
			"read_time":   merged.ReadTime,
			"likes":       merged.Likes,
			"featured":    merged.Featured,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("update post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, s.mutationConflict(ctx, pid)
	}
	return s.GetByPid(ctx, pid)
}

// Delete removes the post permanently, if authorID owns it.
func (s *PostStore) Delete(ctx context.Context, pid string, authorID uint) error {
	res := s.db.WithContext(ctx).Where("pid = ? AND user_id = ?", pid, authorID).Delete(&models.Post{})
	if res.Error != nil {
		return fmt.Errorf("delete post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return s.mutationConflict(ctx, pid)
	}
	return nil
}

// mutationConflict decides why a conditional write matched nothing.
func (s *PostStore) mutationConflict(ctx context.Context, pid string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Post{}).Where("pid = ?", pid).Count(&count).Error; err != nil {
		return fmt.Errorf("probe post: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return ErrForbidden
}

func validatePost(p *models.Post) error {
	required := []struct {
		name  string
		value string
	}{
		{"title", p.Title},
		{"content", p.Content},
		{"excerpt", p.Excerpt},
		{"coverImage", p.CoverImage},
		{"category", p.Category},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}

func fillAuthor(p *models.Post) {
	p.Author = models.Author{ID: p.User.ID, Name: p.User.Name}
}
