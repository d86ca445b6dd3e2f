package database

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"jobportal/internal/models"
)

// Connect opens the sqlite database file at path and migrates the schema.
func Connect(path string) (*gorm.DB, error) {
	// TranslateError maps driver unique-constraint failures to
	// gorm.ErrDuplicatedKey so services can test for them.
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	// Migration: creates the tables in sqlite automatically
	if err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}); err != nil {
		return nil, err
	}
	return db, nil
}

// Seed inserts the sample postings once, at startup, when the jobs
// table is empty. Restarts are no-ops because the guard re-checks.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Job{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	jobs := []models.Job{
		{Title: "Python Developer", Company: "Tech Corp", Location: "Hyderabad", Description: "Build REST APIs and backend services using Flask."},
		{Title: "Frontend Engineer", Company: "DesignX", Location: "Bangalore", Description: "Build beautiful UIs with React and Tailwind CSS."},
		{Title: "Data Analyst", Company: "DataPro", Location: "Remote", Description: "Analyze data trends and create dashboards in Excel/PowerBI."},
	}
	if err := db.Create(&jobs).Error; err != nil {
		return err
	}
	log.Println("Sample jobs added to the database.")
	return nil
}
