package models

import (
	"time"
)

const (
	UserTypeJobSeeker = "job_seeker"
	UserTypeRecruiter = "recruiter"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	// Stored as entered. Login compares for exact equality.
	Password string `gorm:"not null" json:"-"`
	UserType string `gorm:"not null" json:"user_type"` // job_seeker / recruiter
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title       string `gorm:"not null" json:"title"`
	Company     string `gorm:"not null" json:"company"`
	Location    string `gorm:"not null" json:"location"`
	Description string `gorm:"type:text" json:"description"`
}

// Application links a job seeker to a job they applied for.
// The composite index refuses a second application for the same pair
// even if two requests pass the handler-level lookup concurrently.
type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID uint `gorm:"not null;uniqueIndex:idx_user_job" json:"user_id"`
	JobID  uint `gorm:"not null;uniqueIndex:idx_user_job" json:"job_id"`
}
