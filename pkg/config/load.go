package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ValidationError reports one invalid configuration field.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "image.policy").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Message, e.Value)
}

// Load reads a YAML config file and merges it over the defaults. An
// empty path returns the defaults unchanged. A missing file at an
// explicit path is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks field values and returns the first problem found.
func (c *Config) Validate() error {
	if !c.Image.Policy.IsValid() {
		return &ValidationError{Field: "image.policy", Value: c.Image.Policy, Message: "must be inline or block"}
	}
	if c.Image.LineHeight < 0 {
		return &ValidationError{Field: "image.line_height", Value: c.Image.LineHeight, Message: "must not be negative"}
	}
	if c.Image.Height < 0 {
		return &ValidationError{Field: "image.height", Value: c.Image.Height, Message: "must not be negative"}
	}
	if c.Image.Width < 0 {
		return &ValidationError{Field: "image.width", Value: c.Image.Width, Message: "must not be negative"}
	}
	if c.Preview.Width < 0 {
		return &ValidationError{Field: "preview.width", Value: c.Preview.Width, Message: "must not be negative"}
	}
	if !c.Preview.Color.IsValid() {
		return &ValidationError{Field: "preview.color", Value: c.Preview.Color, Message: "must be auto, always or never"}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Field: "log_level", Value: c.LogLevel, Message: "must be debug, info, warn or error"}
	}
	return nil
}

// AsValidation unwraps err as a ValidationError, or returns nil.
func AsValidation(err error) *ValidationError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return nil
}
