package repository

import (
	"fmt"

	"github.com/bostrt/koala/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the single-file sqlite database and migrates the schema.
// The returned handle pools connections; it is built once at startup and
// passed to every component that needs it.
func InitDB(databasePath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(databasePath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.APIKey{}, &models.Article{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
