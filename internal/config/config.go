// Package config handles application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
// Fields are populated from environment variables.
type Config struct {
	// Server settings
	Port int    // HTTP port to listen on
	Env  string // development, staging, production

	// Database
	DatabasePath string // Path to SQLite file holding the year table

	// Authentication
	APIKey string // API key for admin endpoints

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text

	// Conversion limits
	MaxRangeDays int // Longest span served by the range endpoint

	// Year table seeding at startup; both zero disables it
	SeedFromYear int
	SeedToYear   int
}

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Load reads configuration from environment variables.
// In development, it first loads from .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{}

	// Server settings
	cfg.Port = getEnvInt("PORT", 8080)
	cfg.Env = getEnv("ENV", EnvDevelopment)

	// Database
	cfg.DatabasePath = getEnv("DATABASE_PATH", "./data/luach.db")

	// Authentication
	cfg.APIKey = getEnv("API_KEY", "")

	// Logging
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "text")

	// Limits
	cfg.MaxRangeDays = getEnvInt("MAX_RANGE_DAYS", 366)
	cfg.SeedFromYear = getEnvInt("SEED_FROM_YEAR", 0)
	cfg.SeedToYear = getEnvInt("SEED_TO_YEAR", 0)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration is present and valid.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.Env, validation.Required, validation.In(EnvDevelopment, EnvStaging, EnvProduction)),
		validation.Field(&c.DatabasePath, validation.Required),
		// API key is required in production
		validation.Field(&c.APIKey, validation.When(c.Env == EnvProduction, validation.Required)),
		validation.Field(&c.LogLevel, validation.Required, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.LogFormat, validation.Required, validation.In("json", "text")),
		validation.Field(&c.MaxRangeDays, validation.Required, validation.Min(1), validation.Max(3660)),
		validation.Field(&c.SeedFromYear, validation.Min(0)),
		validation.Field(&c.SeedToYear,
			validation.Min(0),
			validation.When(c.SeedFromYear > 0, validation.Required, validation.Min(c.SeedFromYear)),
		),
	)
}

// SeedEnabled reports whether the year table should be filled at startup.
func (c *Config) SeedEnabled() bool {
	return c.SeedFromYear > 0 && c.SeedToYear >= c.SeedFromYear
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
