package database

import (
	"fmt"

	"frontdesk/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and runs schema migration for the
// kiosk tables. TranslateError is enabled so duplicate-key conflicts surface
// as gorm.ErrDuplicatedKey, which the booking-code generator retries on.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.Device{}, &models.Booking{}, &models.Room{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
