// Package config provides centralized configuration for the UI test suite.
// It loads a .env file when present, reads environment variables, validates
// numeric fields, and falls back to hard-coded defaults for everything else.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL is the live marketing site the suite targets when
	// BASE_URL is not set.
	DefaultBaseURL = "https://www.bitsight.com"

	defaultTimeout           = 5 * time.Second
	defaultNavigationTimeout = 30 * time.Second
	defaultScreenshotDir     = "screenshots"
)

// Config holds all suite configuration.
type Config struct {
	// Target site
	BaseURL string

	// Browser launch settings
	Headless bool
	SlowMo   time.Duration

	// Wait budgets. Timeout bounds every element interaction;
	// NavigationTimeout bounds full page loads.
	Timeout           time.Duration
	NavigationTimeout time.Duration

	// Failure artifacts
	ScreenshotDir string
}

// ValidationError represents a configuration validation error with multiple issues.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("configuration validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Load reads configuration from a .env file (if present) and the
// environment. Missing variables fall back to defaults; malformed numeric
// values are validation errors rather than silent fallbacks.
func Load() (*Config, error) {
	// A missing .env is the normal case in CI.
	_ = godotenv.Load()

	cfg := &Config{}
	var errs []string

	cfg.BaseURL = strings.TrimRight(getEnvOrDefault("BASE_URL", DefaultBaseURL), "/")
	if !strings.HasPrefix(cfg.BaseURL, "http://") && !strings.HasPrefix(cfg.BaseURL, "https://") {
		errs = append(errs, "BASE_URL must start with http:// or https://")
	}

	cfg.Headless = parseBoolOrDefault("HEADLESS", true, &errs)
	cfg.SlowMo = parseMillisOrDefault("SLOWMO_MS", 0, &errs)
	cfg.Timeout = parseMillisOrDefault("TIMEOUT_MS", defaultTimeout, &errs)
	cfg.NavigationTimeout = parseMillisOrDefault("NAVIGATION_TIMEOUT_MS", defaultNavigationTimeout, &errs)
	cfg.ScreenshotDir = getEnvOrDefault("SCREENSHOT_DIR", defaultScreenshotDir)

	if cfg.Timeout <= 0 {
		errs = append(errs, "TIMEOUT_MS must be positive")
	}
	if cfg.NavigationTimeout <= 0 {
		errs = append(errs, "NAVIGATION_TIMEOUT_MS must be positive")
	}
	if cfg.SlowMo < 0 {
		errs = append(errs, "SLOWMO_MS must not be negative")
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}
	return cfg, nil
}

// TimeoutMS returns the interaction timeout in milliseconds, the unit the
// automation engine expects.
func (c *Config) TimeoutMS() float64 {
	return float64(c.Timeout.Milliseconds())
}

// NavigationTimeoutMS returns the navigation timeout in milliseconds.
func (c *Config) NavigationTimeoutMS() float64 {
	return float64(c.NavigationTimeout.Milliseconds())
}

// Helper functions for parsing environment variables

func getEnvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func parseBoolOrDefault(key string, defaultValue bool, errs *[]string) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("%s must be a boolean, got %q", key, raw))
		return defaultValue
	}
	return parsed
}

func parseMillisOrDefault(key string, defaultValue time.Duration, errs *[]string) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("%s must be an integer millisecond count, got %q", key, raw))
		return defaultValue
	}
	return time.Duration(parsed) * time.Millisecond
}
