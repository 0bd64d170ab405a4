package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blogforge/internal/application"
	"blogforge/pkg/validation"
)

type BlogHandler struct {
	Create  *application.CreateBlogUseCase
	Get     *application.GetBlogUseCase
	Update  *application.UpdateBlogUseCase
	Delete  *application.DeleteBlogUseCase
	Indexer *application.BlogIndexer
	Logger  *logrus.Logger
}

type createBlogRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	HeroImage string `json:"hero_image" binding:"omitempty,url"`
}

type updateBlogRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	HeroImage *string `json:"hero_image"`
}

// CreateBlog POST /api/blogs?with_author=true
// The author is always the authenticated caller.
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		bad(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req createBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	withAuthor, _ := strconv.ParseBool(c.DefaultQuery("with_author", "false"))

	res, err := h.Create.Execute(c.Request.Context(), application.CreateBlogInput{
		Title:     req.Title,
		Content:   req.Content,
		AuthorID:  u.ID(),
		HeroImage: req.HeroImage,
	}, withAuthor)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, res, "blog created", nil)
}

// List GET /api/blogs
func (h *BlogHandler) List(c *gin.Context) {
	page, err := h.Get.GetAll(c.Request.Context(), pagination(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, page, "blogs", nil)
}

// GetByID GET /api/blogs/:id
func (h *BlogHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	res, err := h.Get.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if res == nil {
		bad(c, http.StatusNotFound, fmt.Sprintf("Blog with identifier 'blog_id: %s' was not found.", id), nil)
		return
	}
	ok(c, http.StatusOK, res, "blog", nil)
}

// ListByAuthor GET /api/users/:id/blogs
func (h *BlogHandler) ListByAuthor(c *gin.Context) {
	page, err := h.Get.GetAllByAuthor(c.Request.Context(), c.Param("id"), pagination(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, page, "blogs", nil)
}

// UpdateBlog PATCH /api/blogs/:id
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	var req updateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Update.Execute(c.Request.Context(), currentUser(c), c.Param("id"), application.UpdateBlogInput{
		Title:     req.Title,
		Content:   req.Content,
		HeroImage: req.HeroImage,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, res, "blog updated", nil)
}

// DeleteBlog DELETE /api/blogs/:id
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	if err := h.Delete.Execute(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	ok[any](c, http.StatusOK, gin.H{"deleted": true}, "blog deleted", nil)
}

// Search GET /api/blogs/search?q=...&size=10
// Relevance search backed by Elasticsearch. Distinct from the list
// endpoints' substring filter, which always reads Postgres.
func (h *BlogHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		bad(c, http.StatusBadRequest, "q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	hits, err := h.Indexer.Search(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Warn("blog search failed")
		bad(c, http.StatusBadGateway, "search is unavailable", nil)
		return
	}
	ok(c, http.StatusOK, hits, "search results", map[string]any{"query": q, "count": len(hits)})
}
