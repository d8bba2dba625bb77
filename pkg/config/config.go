// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the runtime configuration for the gifting service.
type Config struct {
	HTTPPort           string `envconfig:"HTTP_PORT" default:"8080"`
	AccountsTableName  string `envconfig:"DYNAMODB_ACCOUNTS_TABLE_NAME" required:"true"`
	GiftsTableName     string `envconfig:"DYNAMODB_GIFTS_TABLE_NAME" required:"true"`
	GiftEventsQueueURL string `envconfig:"GIFT_EVENTS_QUEUE_URL"`
	LogLevel           string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from a .env file (when present) and the process
// environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration: %w", err)
	}
	return &cfg, nil
}

// SlogLevel maps the configured log level onto slog's levels, defaulting to
// info for unrecognized values.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
