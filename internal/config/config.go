// Package config holds the runtime configuration for decrypt-file.
package config

import (
	"errors"
	"log/slog"

	"github.com/idelchi/gogen/pkg/validator"
)

// Config holds all settings for a single decryption run.
type Config struct {
	// Show the configuration and exit
	Show bool

	// Common flags
	Quiet              bool
	Stats              bool
	PreserveTimestamps bool   `mapstructure:"preserve-timestamps"`
	LogLevel           string `mapstructure:"log-level"           validate:"oneof=debug info warn error"`

	// Positional arguments
	Password string `mapstructure:"-" mask:"filled"`
	Input    string `mapstructure:"-"`
}

// Display returns the value of the Show field.
func (c *Config) Display() bool {
	return c.Show
}

// Validate performs configuration validation using the validator package.
// It returns a wrapped ErrValidation if any validation errors are found.
func (c *Config) Validate(config any) error {
	validator := validator.NewValidator()

	if errs := validator.Validate(config); len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Level maps the configured log level onto a slog level.
// Unknown values fall back to warn.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
