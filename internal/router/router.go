package router

import (
	"html/template"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobportal/internal/auth"
	"jobportal/internal/config"
	"jobportal/internal/flash"
	"jobportal/internal/handlers"
	"jobportal/internal/middlewares"
	"jobportal/internal/models"
	"jobportal/internal/services"
	"jobportal/internal/web"
)

// New assembles the engine: sessions, CORS, templates, and routes.
func New(cfg config.App, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true // For development only
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("jobportal_session", store))
	r.Use(auth.Resolve())

	r.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))

	userService := services.NewUserService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)

	authHandler := handlers.NewAuthHandler(userService)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)

	r.GET("/health", handlers.HealthCheck)
	r.GET("/", handlers.Welcome)
	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Job seeker routes. The listing redirects silently; the other two
	// explain why the visitor was bounced, matching the page they asked for.
	r.GET("/job-details",
		middlewares.RequireRole(models.UserTypeJobSeeker, "", ""),
		jobHandler.ListJobs)
	r.GET("/my-applications",
		middlewares.RequireRole(models.UserTypeJobSeeker, flash.Warning, "Please login as a job seeker to view applications."),
		applicationHandler.MyApplications)
	r.POST("/apply/:job_id",
		middlewares.RequireRole(models.UserTypeJobSeeker, flash.Warning, "Please login first."),
		applicationHandler.Apply)

	// Recruiter routes
	recruiterOnly := middlewares.RequireRole(models.UserTypeRecruiter, flash.Danger, "Access denied. Only recruiters can post jobs.")
	r.GET("/post_job", recruiterOnly, jobHandler.ShowPostJob)
	r.POST("/post_job", recruiterOnly, jobHandler.PostJob)

	return r
}
