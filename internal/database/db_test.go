package database_test

import (
	"path/filepath"
	"testing"

	"jobportal/internal/database"
	"jobportal/internal/models"
)

func TestSeed_InsertsThreeJobsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Connect(path)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	if err := database.Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var count int64
	if err := db.Model(&models.Job{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 seeded jobs, got %d", count)
	}

	// Re-running against the same file is a no-op.
	if err := database.Seed(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if err := db.Model(&models.Job{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected seeding to be idempotent, got %d jobs", count)
	}
}

func TestSeed_SkipsNonEmptyTable(t *testing.T) {
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	if err := db.Create(&models.Job{Title: "Existing", Company: "Acme", Location: "Remote"}).Error; err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var count int64
	if err := db.Model(&models.Job{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected no seeding into a non-empty table, got %d jobs", count)
	}
}
