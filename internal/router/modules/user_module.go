// Package modules wires handlers and middleware into route groups. Each
// module owns one slice of the /api surface.
package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"blogforge/internal/application"
	"blogforge/internal/container"
	handlers "blogforge/internal/interface/http"
	"blogforge/internal/interface/middleware"
)

// UserModule routes.
// Public: POST /api/users, GET /api/users, GET /api/users/:id,
// GET /api/users/username/:username
// Protected: PATCH /api/users/:id, DELETE /api/users/:id,
// POST /api/users/:id/password, GET /api/profile, POST /api/profile/avatar
type UserModule struct {
	Handler *handlers.UserHandler
	Auth    *application.AuthService
}

func NewUserModule(h *handlers.UserHandler, auth *application.AuthService) *UserModule {
	return &UserModule{Handler: h, Auth: auth}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil) // 10 signups/min per IP

	rg.POST("/users", registerLimiter, m.Handler.Register)
	rg.GET("/users", m.Handler.List)
	rg.GET("/users/:id", m.Handler.GetByID)
	rg.GET("/users/username/:username", m.Handler.GetByUsername)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Auth))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.PATCH("/users/:id", m.Handler.UpdateProfile)
		auth.DELETE("/users/:id", m.Handler.DeleteAccount)
		auth.POST("/users/:id/password", m.Handler.ChangeUserPassword)
		auth.GET("/profile", m.Handler.Profile)
		auth.POST("/profile/avatar", m.Handler.UploadAvatar)
	}
}
