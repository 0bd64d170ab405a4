package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blogforge/internal/application"
	"blogforge/pkg/helpers"
	"blogforge/pkg/validation"
)

type AuthHandler struct {
	Auth    *application.AuthService
	Cookies *helpers.Manager
	Logger  *logrus.Logger
}

func NewAuthHandler(auth *application.AuthService, cookies *helpers.Manager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Cookies: cookies, Logger: logger}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Auth.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	h.setCookies(c, res)
	ok(c, http.StatusOK, res, "login successful", nil)
}

// Refresh POST /api/auth/refresh
// The refresh token comes from the cookie, or from the body for
// non-browser clients.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token, _ := c.Cookie("refresh_token")
	if token == "" {
		var req refreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		bad(c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}
	res, err := h.Auth.Refresh(c.Request.Context(), token)
	if err != nil {
		fail(c, err)
		return
	}
	h.setCookies(c, res)
	ok(c, http.StatusOK, res, "token refreshed", nil)
}

// Logout POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if u := currentUser(c); u != nil {
		h.Auth.ClearSession(c.Request.Context(), u.ID())
	}
	h.Cookies.Clear(c)
	ok[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}

func (h *AuthHandler) setCookies(c *gin.Context, res *application.AuthResponse) {
	now := time.Now()
	h.Cookies.SetPair(c,
		res.AccessToken, now.Add(time.Duration(res.AccessTokenTTL)*time.Second),
		res.RefreshToken, now.Add(time.Duration(res.RefreshTokenTTL)*time.Second),
	)
}
