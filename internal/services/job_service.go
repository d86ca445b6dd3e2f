package services

import (
	"gorm.io/gorm"

	"jobportal/internal/dtos"
	"jobportal/internal/models"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

func (s *JobService) CreateJob(req *dtos.PostJobRequest) (*models.Job, error) {
	job := &models.Job{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// ListJobs returns every posting in insertion order.
func (s *JobService) ListJobs() ([]models.Job, error) {
	var jobs []models.Job
	if err := s.DB.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}
