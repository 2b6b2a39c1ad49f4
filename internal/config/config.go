// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/raviWithTraversia/alliance-API/internal/infrastructure/logger"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Vendor   VendorConfig
	Database DatabaseConfig
	Logging  logger.Config
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
}

// VendorConfig holds supplier connectivity settings.
type VendorConfig struct {
	// TestBaseURL and LiveBaseURL are selected per request by credentialType.
	// The supplier exposes the same host for both environments; credentials
	// decide which inventory answers.
	TestBaseURL string `env:"VENDOR_TEST_BASE_URL" envDefault:"http://ws.demo.awan.sqiva.com"`
	LiveBaseURL string `env:"VENDOR_LIVE_BASE_URL" envDefault:"http://ws.demo.awan.sqiva.com"`

	// CallTimeout bounds a single supplier round trip, per attempt.
	CallTimeout time.Duration `env:"VENDOR_CALL_TIMEOUT" envDefault:"15s"`

	// Retry knobs for transient supplier failures.
	RetryAttempts     int           `env:"VENDOR_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInitialDelay time.Duration `env:"VENDOR_RETRY_INITIAL_DELAY" envDefault:"200ms"`
	RetryMaxDelay     time.Duration `env:"VENDOR_RETRY_MAX_DELAY" envDefault:"2s"`

	// FareConcurrency caps concurrent fare lookups per search.
	FareConcurrency int `env:"VENDOR_FARE_CONCURRENCY" envDefault:"4"`
}

// DatabaseConfig holds Postgres settings for the audit log and reference data.
// An empty URL switches both to in-memory stores.
type DatabaseConfig struct {
	URL string `env:"DATABASE_URL"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	// Validate supplier settings
	if cfg.Vendor.TestBaseURL == "" {
		return fmt.Errorf("VENDOR_TEST_BASE_URL must not be empty")
	}
	if cfg.Vendor.LiveBaseURL == "" {
		return fmt.Errorf("VENDOR_LIVE_BASE_URL must not be empty")
	}
	if cfg.Vendor.CallTimeout <= 0 {
		return fmt.Errorf("VENDOR_CALL_TIMEOUT must be positive")
	}
	if cfg.Vendor.RetryAttempts < 1 {
		return fmt.Errorf("VENDOR_RETRY_ATTEMPTS must be at least 1, got %d", cfg.Vendor.RetryAttempts)
	}
	if cfg.Vendor.FareConcurrency < 1 {
		return fmt.Errorf("VENDOR_FARE_CONCURRENCY must be at least 1, got %d", cfg.Vendor.FareConcurrency)
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
