package services_test

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"jobportal/internal/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	return db
}
