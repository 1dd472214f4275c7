package database

import (
	"log"

	"greenhouse-sync/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and migrates the cached-document
// schema. Migration runs even when the plugin is disabled: the schema is
// kept, only the endpoints and the sync are skipped.
func Connect(dsn string) (*gorm.DB, error) {
	// TranslateError so a duplicate job_id surfaces as gorm.ErrDuplicatedKey
	// instead of a driver-specific error.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	log.Println("Database connection established")

	log.Println("Running Migrations...")
	if err := db.AutoMigrate(&models.Job{}, &models.Setting{}); err != nil {
		return nil, err
	}
	return db, nil
}
