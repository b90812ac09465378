package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for our application
type Config struct {
	Port         string
	Origin       string
	Environment  string
	CookieSecret string
	AppURL       string
	Database     DatabaseConfig
	Session      SessionConfig
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Path string
}

// SessionConfig holds the session cookie policy
type SessionConfig struct {
	CookieName   string
	RememberDays int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	dbConfig := DatabaseConfig{
		Path: getEnv("DB_PATH", "fitmiplus.db"),
	}

	rememberDays, err := strconv.Atoi(getEnv("SESSION_REMEMBER_DAYS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_REMEMBER_DAYS: %w", err)
	}

	sessionConfig := SessionConfig{
		CookieName:   getEnv("SESSION_COOKIE_NAME", "fitmi_session"),
		RememberDays: rememberDays,
	}

	return &Config{
		Port:         getEnv("PORT", "3001"),
		Origin:       getEnv("ORIGIN", "http://localhost:3001"),
		Environment:  getEnv("APP_ENV", "development"),
		CookieSecret: getEnv("COOKIE_SECRET", "default_cookie_secret"),
		AppURL:       getEnv("APP_URL", "http://localhost:3001"),
		Database:     dbConfig,
		Session:      sessionConfig,
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
