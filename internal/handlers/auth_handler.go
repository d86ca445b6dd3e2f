package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal/internal/auth"
	"jobportal/internal/dtos"
	"jobportal/internal/flash"
	"jobportal/internal/models"
	"jobportal/internal/services"
)

type AuthHandler struct {
	Users *services.UserService
}

// NewAuthHandler creates the handler with dependencies
func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	render(c, "register.html", nil)
}

// Register is the POST /register endpoint
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		flash.Add(c, flash.Danger, "All fields are required.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	if _, err := h.Users.Register(&req); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			flash.Add(c, flash.Danger, "Email already registered.")
			c.Redirect(http.StatusFound, "/register")
			return
		}
		c.String(http.StatusInternalServerError, "Registration failed: "+err.Error())
		return
	}

	flash.Add(c, flash.Success, "Registration successful!")
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	render(c, "login.html", nil)
}

// Login is the POST /login endpoint. Job seekers land on the job
// listing, recruiters on the posting form.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		flash.Add(c, flash.Danger, "Invalid email or password")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := h.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			flash.Add(c, flash.Danger, "Invalid email or password")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		c.String(http.StatusInternalServerError, "Login failed: "+err.Error())
		return
	}

	if err := auth.SignIn(c, user); err != nil {
		c.String(http.StatusInternalServerError, "Failed to start session: "+err.Error())
		return
	}

	if user.UserType == models.UserTypeJobSeeker {
		c.Redirect(http.StatusFound, "/job-details")
	} else {
		c.Redirect(http.StatusFound, "/post_job")
	}
}

func (h *AuthHandler) Logout(c *gin.Context) {
	_ = auth.SignOut(c)
	flash.Add(c, flash.Info, "Logged out successfully")
	c.Redirect(http.StatusFound, "/")
}
