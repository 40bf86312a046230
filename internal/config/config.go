package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"gobayes/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Batch    BatchConfig
}

// DatabaseConfig holds database connection settings. Storage is optional:
// with no URL configured the service runs compute-only.
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// BatchConfig holds batch evaluation settings
type BatchConfig struct {
	Concurrency int
	HistorySize int
}

// Load reads configuration from environment variables and validates it.
// A .env file in the working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Database: DatabaseConfig{
			URL:     os.Getenv("DATABASE_URL"),
			SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Batch: BatchConfig{
			Concurrency: getEnvIntOrDefault("BATCH_CONCURRENCY", 8),
			HistorySize: getEnvIntOrDefault("HISTORY_SIZE", 50),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Batch.Concurrency < 1 {
		return errors.ConfigInvalid("BATCH_CONCURRENCY must be >= 1")
	}
	if config.Batch.HistorySize < 1 {
		return errors.ConfigInvalid("HISTORY_SIZE must be >= 1")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
