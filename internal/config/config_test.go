package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear any existing env vars that might interfere
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.DatabasePath != "./data/luach.db" {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, "./data/luach.db")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
	if cfg.MaxRangeDays != 366 {
		t.Errorf("MaxRangeDays = %d, want 366", cfg.MaxRangeDays)
	}
	if cfg.SeedEnabled() {
		t.Error("SeedEnabled() = true, want false by default")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)

	t.Setenv("PORT", "3000")
	t.Setenv("ENV", "production")
	t.Setenv("DATABASE_PATH", "/data/test.db")
	t.Setenv("API_KEY", "secret-key-123")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("MAX_RANGE_DAYS", "31")
	t.Setenv("SEED_FROM_YEAR", "5780")
	t.Setenv("SEED_TO_YEAR", "5800")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.Env != EnvProduction {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvProduction)
	}
	if cfg.DatabasePath != "/data/test.db" {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, "/data/test.db")
	}
	if cfg.APIKey != "secret-key-123" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "secret-key-123")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
	if cfg.MaxRangeDays != 31 {
		t.Errorf("MaxRangeDays = %d, want 31", cfg.MaxRangeDays)
	}
	if !cfg.SeedEnabled() || cfg.SeedFromYear != 5780 || cfg.SeedToYear != 5800 {
		t.Errorf("seed range = %d..%d (enabled=%v), want 5780..5800", cfg.SeedFromYear, cfg.SeedToYear, cfg.SeedEnabled())
	}
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production") // no API_KEY

	if _, err := Load(); err == nil {
		t.Fatal("Load() error = nil, want error for production without API key")
	}
}

// validConfig returns a development config that passes validation.
func validConfig() Config {
	return Config{
		Port:         8080,
		Env:          EnvDevelopment,
		DatabasePath: "./data/test.db",
		LogLevel:     "info",
		LogFormat:    "text",
		MaxRangeDays: 366,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid development config", func(c *Config) {}, false},
		{"valid production config", func(c *Config) {
			c.Env = EnvProduction
			c.APIKey = "required-in-prod"
			c.LogFormat = "json"
		}, false},
		{"production requires API key", func(c *Config) { c.Env = EnvProduction }, true},
		{"invalid port - too low", func(c *Config) { c.Port = 0 }, true},
		{"invalid port - too high", func(c *Config) { c.Port = 70000 }, true},
		{"invalid environment", func(c *Config) { c.Env = "invalid" }, true},
		{"invalid log level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"invalid log format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"empty database path", func(c *Config) { c.DatabasePath = "" }, true},
		{"zero range limit", func(c *Config) { c.MaxRangeDays = 0 }, true},
		{"huge range limit", func(c *Config) { c.MaxRangeDays = 100000 }, true},
		{"seed range", func(c *Config) { c.SeedFromYear, c.SeedToYear = 5780, 5790 }, false},
		{"seed range missing end", func(c *Config) { c.SeedFromYear = 5780 }, true},
		{"seed range reversed", func(c *Config) { c.SeedFromYear, c.SeedToYear = 5790, 5780 }, true},
		{"negative seed year", func(c *Config) { c.SeedFromYear = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &Config{Env: EnvDevelopment}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true")
	}

	cfg.Env = EnvProduction
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true, want false")
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}
}

// clearEnv removes all config-related environment variables for the test.
func clearEnv(t *testing.T) {
	t.Helper()
	vars := []string{
		"PORT", "ENV", "DATABASE_PATH", "API_KEY",
		"LOG_LEVEL", "LOG_FORMAT", "MAX_RANGE_DAYS",
		"SEED_FROM_YEAR", "SEED_TO_YEAR",
	}
	for _, v := range vars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}
