package database

import (
	"systemprompthub/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the in-memory store and installs it as the global handle.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	DB = db
	return db, nil
}

// Migrate creates the schema for all record collections.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Prompt{}, &models.Category{}, &models.Stats{})
}

// Reset drops and recreates the schema. Tests use it to get a clean store.
func Reset(db *gorm.DB) error {
	if err := db.Migrator().DropTable(&models.Prompt{}, &models.Category{}, &models.Stats{}); err != nil {
		return err
	}
	return Migrate(db)
}
