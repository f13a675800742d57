package config

import (
	"fmt"
	"os"
	"strconv"
)

// Settings holds all service configuration, loaded from environment variables.
type Settings struct {
	// Database
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// ML model
	ModelPath string

	// API metadata
	APITitle   string
	APIVersion string

	// Environment
	Environment string
	Debug       bool
	Port        string
}

func Load() *Settings {
	return &Settings{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnvInt("DB_PORT", 5432),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "root"),
		DBName:     getEnv("DB_NAME", "cervical_cancer"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		ModelPath: getEnv("MODEL_PATH", "data/models/risk_model.json"),

		APITitle:   getEnv("API_TITLE", "Cervical Cancer Risk Predictor"),
		APIVersion: getEnv("API_VERSION", "1.0.0"),

		Environment: getEnv("ENVIRONMENT", "development"),
		Debug:       getEnvBool("DEBUG", true),
		Port:        getEnv("PORT", "8000"),
	}
}

// DSN builds the postgres connection string.
func (s *Settings) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		s.DBHost, s.DBPort, s.DBUser, s.DBPassword, s.DBName, s.DBSSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
