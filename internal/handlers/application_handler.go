package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobportal/internal/auth"
	"jobportal/internal/flash"
	"jobportal/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(apps *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: apps}
}

// Apply is the POST /apply/:job_id endpoint. The id must be an
// integer; the job it names is not required to exist.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := strconv.ParseUint(c.Param("job_id"), 10, 32)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	// The role gate ran before us, so the session is present.
	user, _ := auth.Current(c)

	switch err := h.Applications.Apply(user.ID, uint(jobID)); {
	case errors.Is(err, services.ErrAlreadyApplied):
		flash.Add(c, flash.Info, "You already applied to this job.")
	case err != nil:
		c.String(http.StatusInternalServerError, "Failed to apply: "+err.Error())
		return
	default:
		flash.Add(c, flash.Success, "Applied successfully!")
	}

	c.Redirect(http.StatusFound, "/job-details")
}

// MyApplications renders the jobs the signed-in seeker applied to.
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	user, _ := auth.Current(c)

	jobs, err := h.Applications.AppliedJobs(user.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load applications: "+err.Error())
		return
	}
	render(c, "my_applications.html", gin.H{"Jobs": jobs})
}
