package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blogforge/internal/application"
	"blogforge/pkg/helpers"
	"blogforge/pkg/validation"
)

type UserHandler struct {
	Create         *application.CreateUserUseCase
	Get            *application.GetUserUseCase
	Update         *application.UpdateUserUseCase
	Delete         *application.DeleteUserUseCase
	ChangePassword *application.ChangePasswordUseCase
	GCS            *storage.Client
	GCSBucket      string
	Logger         *logrus.Logger
}

type registerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Avatar    string `json:"avatar" binding:"omitempty,url"`
}

type updateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Username  *string `json:"username"`
	Avatar    *string `json:"avatar" binding:"omitempty"`
}

type changePasswordRequest struct {
	OldPassword        string `json:"old_password" binding:"required"`
	NewPassword        string `json:"new_password" binding:"required"`
	ConfirmNewPassword string `json:"confirm_new_password" binding:"required"`
}

// Register POST /api/users
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Create.Execute(c.Request.Context(), application.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Password:  req.Password,
		Avatar:    req.Avatar,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, res, "user registered", nil)
}

// List GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	page, err := h.Get.GetAll(c.Request.Context(), pagination(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, page, "users", nil)
}

// GetByID GET /api/users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	res, err := h.Get.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if res == nil {
		bad(c, http.StatusNotFound, fmt.Sprintf("User with identifier 'user_id: %s' was not found.", id), nil)
		return
	}
	ok(c, http.StatusOK, res, "user", nil)
}

// GetByUsername GET /api/users/username/:username
func (h *UserHandler) GetByUsername(c *gin.Context) {
	username := c.Param("username")
	res, err := h.Get.GetByUsername(c.Request.Context(), username)
	if err != nil {
		fail(c, err)
		return
	}
	if res == nil {
		bad(c, http.StatusNotFound, fmt.Sprintf("User with identifier 'username: %s' was not found.", username), nil)
		return
	}
	ok(c, http.StatusOK, res, "user", nil)
}

// UpdateProfile PATCH /api/users/:id
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Update.Execute(c.Request.Context(), currentUser(c), c.Param("id"), application.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Avatar:    req.Avatar,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, res, "profile updated", nil)
}

// DeleteAccount DELETE /api/users/:id
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	if err := h.Delete.Execute(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	ok[any](c, http.StatusOK, gin.H{"deleted": true}, "user deleted", nil)
}

// ChangeUserPassword POST /api/users/:id/password
func (h *UserHandler) ChangeUserPassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.ChangePassword.Execute(c.Request.Context(), currentUser(c), c.Param("id"), application.ChangePasswordInput{
		OldPassword:        req.OldPassword,
		NewPassword:        req.NewPassword,
		ConfirmNewPassword: req.ConfirmNewPassword,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, res, "password changed", nil)
}

// Profile GET /api/profile
func (h *UserHandler) Profile(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		bad(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	res, err := h.Get.GetByID(c.Request.Context(), u.ID())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, res, "profile", nil)
}

// UploadAvatar POST /api/profile/avatar (multipart field "avatar")
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		bad(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	if h.GCS == nil || h.GCSBucket == "" {
		bad(c, http.StatusServiceUnavailable, "avatar uploads are not configured", nil)
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		bad(c, http.StatusBadRequest, "avatar file is required", nil)
		return
	}
	if fileHeader.Size > 5<<20 {
		bad(c, http.StatusBadRequest, "avatar must be 5MB or smaller", nil)
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		bad(c, http.StatusBadRequest, "avatar must be an image", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		fail(c, err)
		return
	}
	defer func() { _ = f.Close() }()

	object := fmt.Sprintf("avatars/%s/%d%s", u.ID(), time.Now().UnixNano(), filepath.Ext(fileHeader.Filename))
	url, err := helpers.UploadObject(c.Request.Context(), h.GCS, h.GCSBucket, object, contentType, f)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", u.ID()).Error("avatar upload failed")
		bad(c, http.StatusBadGateway, "avatar upload failed", nil)
		return
	}

	res, err := h.Update.Execute(c.Request.Context(), u, u.ID(), application.UpdateUserInput{Avatar: &url})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, res, "avatar updated", nil)
}
