package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal/internal/dtos"
	"jobportal/internal/flash"
	"jobportal/internal/services"
)

type JobHandler struct {
	Jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

// ListJobs renders every posting for the signed-in job seeker.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListJobs()
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load jobs: "+err.Error())
		return
	}
	render(c, "job_details.html", gin.H{"Jobs": jobs})
}

func (h *JobHandler) ShowPostJob(c *gin.Context) {
	render(c, "post_job.html", nil)
}

// PostJob creates a posting and keeps the recruiter on the form.
func (h *JobHandler) PostJob(c *gin.Context) {
	var req dtos.PostJobRequest
	if err := c.ShouldBind(&req); err != nil {
		flash.Add(c, flash.Danger, "All fields are required.")
		c.Redirect(http.StatusFound, "/post_job")
		return
	}

	if _, err := h.Jobs.CreateJob(&req); err != nil {
		c.String(http.StatusInternalServerError, "Failed to create job: "+err.Error())
		return
	}

	flash.Add(c, flash.Success, "Job posted successfully!")
	c.Redirect(http.StatusFound, "/post_job")
}
