// Package config loads server settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds server configuration
type Config struct {
	Host        string   `env:"CODEDUEL_HOST" envDefault:""`
	Port        int      `env:"CODEDUEL_PORT" envDefault:"8080"`
	StorageType string   `env:"CODEDUEL_STORAGE" envDefault:"memory"`
	RedisURL    string   `env:"CODEDUEL_REDIS_URL" envDefault:"redis://localhost:6379"`
	CORSOrigins []string `env:"CODEDUEL_CORS_ORIGINS" envSeparator:","`
	LogLevel    string   `env:"CODEDUEL_LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps the configured log level to a slog.Level.
// Unknown values fall back to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
