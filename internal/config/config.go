// Package config loads splitr settings from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Mr-Dark-debug/splitr/internal/ledger"
)

// Config holds the settings shared by the CLI and the TUI.
type Config struct {
	// Display
	Currency string

	// Roster
	AvatarBase  string
	SeedFriends bool

	// Logging
	LogLevel string
	LogFile  string
}

// LoadEnvFile reads a .env file from the working directory when present.
// A missing file is not an error.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// Load builds a Config from the environment, falling back to defaults.
func Load() *Config {
	return &Config{
		Currency:    getEnv("SPLITR_CURRENCY", "₹"),
		AvatarBase:  getEnv("SPLITR_AVATAR_BASE", ledger.DefaultAvatarBase),
		SeedFriends: getEnvBool("SPLITR_SEED", true),
		LogLevel:    getEnv("SPLITR_LOG_LEVEL", "info"),
		LogFile:     getEnv("SPLITR_LOG_FILE", ""),
	}
}

// Validate returns every problem found, joined into one error.
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.Currency) == "" {
		errors = append(errors, "currency symbol must not be empty")
	}

	if u, err := url.Parse(c.AvatarBase); err != nil {
		errors = append(errors, fmt.Sprintf("invalid avatar base '%s': %v", c.AvatarBase, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid avatar base '%s': must be an http(s) URL", c.AvatarBase))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be debug, info, warn or error", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}
