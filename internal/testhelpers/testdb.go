package testhelpers

import (
	"path/filepath"
	"testing"

	"iceai_backend/internal/database"
	"iceai_backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewTestDB opens a migrated sqlite database private to the test.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open("sqlite:" + filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

// NewMockDB returns a gorm handle backed by sqlmock, for store-failure paths.
func NewMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open gorm over sqlmock: %v", err)
	}

	t.Cleanup(func() { sqlDB.Close() })
	return db, mock
}

// CreateUser inserts a user row directly.
func CreateUser(t *testing.T, db *gorm.DB, id, username string) *models.User {
	t.Helper()

	user := &models.User{ID: id, Username: username, Discriminator: "0000"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", id, err)
	}
	return user
}
