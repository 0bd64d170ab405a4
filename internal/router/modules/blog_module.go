package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"blogforge/internal/application"
	"blogforge/internal/container"
	handlers "blogforge/internal/interface/http"
	"blogforge/internal/interface/middleware"
)

// BlogModule routes.
// Public: GET /api/blogs, GET /api/blogs/:id, GET /api/users/:id/blogs,
// GET /api/blogs/search
// Protected: POST /api/blogs, PATCH /api/blogs/:id, DELETE /api/blogs/:id
type BlogModule struct {
	Handler *handlers.BlogHandler
	Auth    *application.AuthService
}

func NewBlogModule(h *handlers.BlogHandler, auth *application.AuthService) *BlogModule {
	return &BlogModule{Handler: h, Auth: auth}
}

func (m *BlogModule) Register(rg *gin.RouterGroup) {
	searchLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.GET("/blogs", m.Handler.List)
	rg.GET("/blogs/search", searchLimiter, m.Handler.Search)
	rg.GET("/blogs/:id", m.Handler.GetByID)
	rg.GET("/users/:id/blogs", m.Handler.ListByAuthor)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Auth))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/blogs", m.Handler.CreateBlog)
		auth.PATCH("/blogs/:id", m.Handler.UpdateBlog)
		auth.DELETE("/blogs/:id", m.Handler.DeleteBlog)
	}
}
