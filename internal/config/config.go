// Package config provides centralized configuration loaded from environment
// variables. Shared by cmd/server and cmd/americano.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds runtime configuration for the service.
type Config struct {
	Port         string
	DatabasePath string
	LogLevel     string
	CORSOrigins  []string
}

// Load reads configuration from the environment, with a best-effort .env
// file on top.
func Load() Config {
	// Missing .env is fine; env vars win either way.
	_ = godotenv.Load()

	return Config{
		Port:         envOr("PORT", "8080"),
		DatabasePath: envOr("DATABASE_PATH", "./data/americano.db"),
		LogLevel:     envOr("LOG_LEVEL", "info"),
		CORSOrigins:  []string{envOr("CORS_ORIGIN", "*")},
	}
}

// NewLogger builds the application logger honoring LOG_LEVEL.
func (c Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
