// Package handlers exposes the use cases over Gin. Handlers translate
// transport concerns (binding, query params, cookies) and map domain errors
// to HTTP statuses; all business rules live below.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogforge/internal/application"
	"blogforge/internal/domain/domainerr"
	"blogforge/internal/domain/entity"
	"blogforge/pkg/response"
)

func ok[T any](c *gin.Context, status int, data T, message string, meta any) {
	resp := response.Success(c, status, data, message, meta)
	c.JSON(resp.Status, resp)
}

func bad(c *gin.Context, status int, message string, details any) {
	resp := response.Error[any](c, status, message, details)
	c.JSON(resp.Status, resp)
}

// fail maps a domain error to its HTTP status. Anything that is not a
// domain error is a 500 with a generic message.
func fail(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	bad(c, status, msg, nil)
}

func statusFor(err error) int {
	switch {
	case domainerr.IsInvalidData(err):
		return http.StatusBadRequest
	case domainerr.IsUnauthorized(err):
		return http.StatusUnauthorized
	case domainerr.IsNotFound(err):
		return http.StatusNotFound
	case domainerr.IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// currentUser returns the authenticated user placed in the context by the
// auth middleware, or nil on public routes.
func currentUser(c *gin.Context) *entity.User {
	v, exists := c.Get("currentUser")
	if !exists {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// pagination reads skip/limit/search query params with the defaults the
// list endpoints document. Limit is clamped to 100.
func pagination(c *gin.Context) application.Pagination {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return application.Pagination{Skip: skip, Limit: limit, Search: c.Query("search")}
}
