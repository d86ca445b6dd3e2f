package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal/internal/auth"
	"jobportal/internal/flash"
)

// render draws an HTML page with pending flash messages and, when
// signed in, the current user attached to the template data.
func render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = flash.Pop(c)
	if u, ok := auth.Current(c); ok {
		data["User"] = u
	}
	c.HTML(http.StatusOK, name, data)
}
