// Package config loads journal-desk settings from the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"journal-desk/internal/logger"
)

const (
	CollisionSuffix    = "suffix"
	CollisionOverwrite = "overwrite"
)

// Config holds all application configuration.
type Config struct {
	UserFile    string
	JournalDir  string
	OnCollision string
	LogLevel    logger.LogLevel
	JSONLogs    bool
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	level, err := determineLogLevel()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg := &Config{
		UserFile:    getEnv("JOURNAL_USER_FILE", "user_config.txt"),
		JournalDir:  getEnv("JOURNAL_DIR", "journals"),
		OnCollision: strings.ToLower(getEnv("JOURNAL_ON_COLLISION", CollisionSuffix)),
		LogLevel:    level,
		JSONLogs:    getEnvBool("JOURNAL_JSON_LOGS", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.UserFile) == "" {
		return fmt.Errorf("JOURNAL_USER_FILE cannot be empty")
	}
	if strings.TrimSpace(c.JournalDir) == "" {
		return fmt.Errorf("JOURNAL_DIR cannot be empty")
	}
	switch c.OnCollision {
	case CollisionSuffix, CollisionOverwrite:
	default:
		return fmt.Errorf("JOURNAL_ON_COLLISION must be %q or %q, got %q",
			CollisionSuffix, CollisionOverwrite, c.OnCollision)
	}
	return nil
}

// Overwrite reports whether same-second saves replace the earlier file.
func (c *Config) Overwrite() bool {
	return c.OnCollision == CollisionOverwrite
}

func determineLogLevel() (logger.LogLevel, error) {
	if os.Getenv("JOURNAL_DEBUG") == "1" {
		return logger.DebugLevel, nil
	}
	return logger.ParseLevel(getEnv("JOURNAL_LOG_LEVEL", "info"))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
