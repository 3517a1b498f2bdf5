package config

import (
	"errors"
	"fmt"
	"strconv"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidateConfig checks cfg and reports every problem found as one error
func ValidateConfig(cfg *Config) error {
	var errs []error
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		add("SERVER_PORT", fmt.Sprintf("must be a port number, got %q", cfg.ServerPort))
	}
	if cfg.DBHost == "" {
		add("DB_HOST", "is required")
	}
	if cfg.DBName == "" {
		add("DB_NAME", "is required")
	}
	if cfg.Environment == Production && cfg.DBPassword == "" {
		add("DB_PASSWORD", "db_password secret is required in production")
	}
	if !logLevels[cfg.LogLevel] {
		add("LOG_LEVEL", fmt.Sprintf("unknown level %q", cfg.LogLevel))
	}
	if cfg.FetchTimeout <= 0 {
		add("FETCH_TIMEOUT", "must be positive")
	}
	if cfg.FetchMaxBodyBytes <= 0 {
		add("FETCH_MAX_BODY_BYTES", "must be positive")
	}
	if cfg.RateLimitWindow <= 0 {
		add("RATE_LIMIT_WINDOW", "must be positive")
	}
	if cfg.RateLimitRequests <= 0 {
		add("RATE_LIMIT_REQUESTS", "must be positive")
	}

	return errors.Join(errs...)
}
