// Package auth resolves the cookie session into a typed identity that
// travels on the request context instead of being read ad hoc by handlers.
package auth

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"jobportal/internal/models"
)

const (
	keyUserID   = "user_id"
	keyUserType = "user_type"
	keyUserName = "user_name"

	ctxKey = "session_user"
)

// SessionUser is the signed-in identity for the current request.
type SessionUser struct {
	ID   uint
	Name string
	Role string
}

// SignIn stores the user's identity in the cookie session.
func SignIn(c *gin.Context, u *models.User) error {
	s := sessions.Default(c)
	s.Set(keyUserID, u.ID)
	s.Set(keyUserType, u.UserType)
	s.Set(keyUserName, u.Name)
	return s.Save()
}

// SignOut clears the session. Safe to call without a session.
func SignOut(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	return s.Save()
}

// Resolve reads the cookie session once per request and attaches the
// typed identity to the context. Handlers read it back with Current.
func Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessions.Default(c)
		if id, ok := s.Get(keyUserID).(uint); ok {
			role, _ := s.Get(keyUserType).(string)
			name, _ := s.Get(keyUserName).(string)
			c.Set(ctxKey, SessionUser{ID: id, Name: name, Role: role})
		}
		c.Next()
	}
}

// Current returns the signed-in user for this request, if any.
func Current(c *gin.Context) (SessionUser, bool) {
	v, ok := c.Get(ctxKey)
	if !ok {
		return SessionUser{}, false
	}
	u, ok := v.(SessionUser)
	return u, ok
}
