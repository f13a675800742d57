package db

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Okemwag/CervicalCancer/config"
	"github.com/Okemwag/CervicalCancer/models"
)

func NewDB(settings *config.Settings) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(settings.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve underlying SQL DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)

	// Check connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("Connected to database: %s", settings.DBName)
	return database, nil
}

// Migrate creates the patients and predictions tables on startup.
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(&models.Patient{}, &models.Prediction{})
}
