package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carpoolhub/internal/transport/http/session"
)

// RequireLogin redirects anonymous requests to the login page.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsLogin(c) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
