package dtos

type RegisterRequest struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
	UserType string `form:"user_type" binding:"required,oneof=job_seeker recruiter"`
}

type LoginRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type PostJobRequest struct {
	Title       string `form:"title" binding:"required"`
	Company     string `form:"company" binding:"required"`
	Location    string `form:"location" binding:"required"`
	Description string `form:"description" binding:"required"`
}
