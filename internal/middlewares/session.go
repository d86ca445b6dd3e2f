package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal/internal/auth"
	"jobportal/internal/flash"
)

// RequireRole gates a route on a signed-in session with the given role.
// On failure the client is sent to the login page, with message flashed
// under category when non-empty. The handler behind the gate never runs.
func RequireRole(role, category, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := auth.Current(c)
		if !ok || u.Role != role {
			if message != "" {
				flash.Add(c, category, message)
			}
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
