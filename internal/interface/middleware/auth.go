package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blogforge/internal/application"
	"blogforge/pkg/response"
)

// Auth resolves the access token from the Authorization header or the
// access_token cookie and loads the user it was issued for. On success the
// context carries currentUser (*entity.User) and userID.
func Auth(auth *application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token, _ = c.Cookie("access_token")
		}
		if token == "" {
			resp := response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}

		user, err := auth.CurrentUser(c.Request.Context(), token)
		if err != nil {
			resp := response.Error[any](c, http.StatusUnauthorized, err.Error(), nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}

		c.Set("currentUser", user)
		c.Set("userID", user.ID())
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
