package services

import (
	"errors"

	"gorm.io/gorm"

	"jobportal/internal/models"
)

var ErrAlreadyApplied = errors.New("already applied to this job")

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Apply records that the user applied to jobID. The job itself is not
// checked for existence; unknown ids are accepted and produce a
// dangling application that AppliedJobs later skips.
func (s *ApplicationService) Apply(userID, jobID uint) error {
	var existing models.Application
	err := s.DB.Where("user_id = ? AND job_id = ?", userID, jobID).First(&existing).Error
	if err == nil {
		return ErrAlreadyApplied
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	app := &models.Application{UserID: userID, JobID: jobID}
	if err := s.DB.Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyApplied
		}
		return err
	}
	return nil
}

// AppliedJobs returns the jobs this user applied to, skipping
// applications whose job row no longer exists.
func (s *ApplicationService) AppliedJobs(userID uint) ([]models.Job, error) {
	var apps []models.Application
	if err := s.DB.Where("user_id = ?", userID).Find(&apps).Error; err != nil {
		return nil, err
	}

	jobs := make([]models.Job, 0, len(apps))
	for _, a := range apps {
		var job models.Job
		err := s.DB.First(&job, a.JobID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
