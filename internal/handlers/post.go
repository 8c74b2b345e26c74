package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"greatblog/internal/models"
	"greatblog/internal/store"
	"greatblog/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const defaultPageSize = 10

type PostHandler struct {
	posts       *store.PostStore
	maxPageSize int
}

func NewPostHandler(posts *store.PostStore, maxPageSize int) *PostHandler {
	return &PostHandler{posts: posts, maxPageSize: maxPageSize}
}

func (h *PostHandler) List(c *gin.Context) {
	page := 1
	if p := c.Query("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			page = n
		}
	}
	limit := defaultPageSize
	if l := c.Query("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > h.maxPageSize {
		limit = h.maxPageSize
	}

	filter := store.ListFilter{Category: c.Query("category")}
	// Only the exact strings "true"/"false" filter; anything else is no filter
	switch c.Query("featured") {
	case "true":
		t := true
		filter.Featured = &t
	case "false":
		f := false
		filter.Featured = &f
	}

	posts, total, err := h.posts.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to list posts")
		respondError(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":       posts,
		"totalPages":  int(math.Ceil(float64(total) / float64(limit))),
		"currentPage": page,
		"total":       total,
	})
}

// postDetail is a post plus its content rendered as sanitized HTML.
type postDetail struct {
	*models.Post
	ContentHTML string `json:"contentHtml"`
}

func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.posts.GetByPid(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondPostError(c, err, "get post")
		return
	}

	c.JSON(http.StatusOK, postDetail{
		Post:        post,
		ContentHTML: utils.RenderMarkdown(post.Content),
	})
}

type createPostRequest struct {
	Title      string   `json:"title" binding:"required"`
	Content    string   `json:"content" binding:"required"`
	Excerpt    string   `json:"excerpt" binding:"required"`
	CoverImage string   `json:"coverImage" binding:"required"`
	Category   string   `json:"category" binding:"required"`
	Tags       []string `json:"tags"`
	ReadTime   *int     `json:"readTime"`
	Featured   *bool    `json:"featured"`
}

func (h *PostHandler) Create(c *gin.Context) {
	user := currentUser(c)

	// Any `author` field in the payload is simply not bound; ownership
	// comes from the session user alone.
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Title, content, excerpt, coverImage and category are required")
		return
	}

	post, err := h.posts.Create(c.Request.Context(), store.CreatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		CoverImage: req.CoverImage,
		Category:   req.Category,
		Tags:       req.Tags,
		ReadTime:   req.ReadTime,
		Featured:   req.Featured,
	}, user.ID)
	if err != nil {
		respondPostError(c, err, "create post")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// updatePostRequest deliberately has no author, id or timestamp members,
// so a patch cannot touch ownership or server-maintained fields.
type updatePostRequest struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	Excerpt    *string   `json:"excerpt"`
	CoverImage *string   `json:"coverImage"`
	Category   *string   `json:"category"`
	Tags       *[]string `json:"tags"`
	ReadTime   *int      `json:"readTime"`
	Likes      *int      `json:"likes"`
	Featured   *bool     `json:"featured"`
}

func (h *PostHandler) Update(c *gin.Context) {
	user := currentUser(c)

	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid post payload")
		return
	}

	post, err := h.posts.Update(c.Request.Context(), c.Param("id"), user.ID, store.UpdatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		CoverImage: req.CoverImage,
		Category:   req.Category,
		Tags:       req.Tags,
		ReadTime:   req.ReadTime,
		Likes:      req.Likes,
		Featured:   req.Featured,
	})
	if err != nil {
		respondPostError(c, err, "update post")
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	user := currentUser(c)

	if err := h.posts.Delete(c.Request.Context(), c.Param("id"), user.ID); err != nil {
		respondPostError(c, err, "delete post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// respondPostError maps store failures to HTTP statuses. Unexpected errors
// are logged and collapse into a generic 500.
func respondPostError(c *gin.Context, err error, op string) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		respondError(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, store.ErrNotFound):
		respondError(c, http.StatusNotFound, "Post not found")
	case errors.Is(err, store.ErrForbidden):
		respondError(c, http.StatusForbidden, "Access denied")
	default:
		log.Error().Err(err).Str("op", op).Msg("post store failure")
		respondError(c, http.StatusInternalServerError, "Something went wrong!")
	}
}
