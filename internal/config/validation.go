package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidEnv   = errors.New("invalid environment")
)

// ParseError reports a config file that is not a YAML mapping of the known keys.
type ParseError struct {
	Path  string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse config %s: %v", e.Path, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// Validate checks that every required value is present.
func (c *Config) Validate() error {
	var missing []string

	if strings.TrimSpace(c.Username) == "" {
		missing = append(missing, "username")
	}
	if strings.TrimSpace(c.TarFilePath) == "" {
		missing = append(missing, "tarFilePath")
	}
	if strings.TrimSpace(c.LogFilePath) == "" {
		missing = append(missing, "logFilePath")
	}

	if len(missing) > 0 {
		return fmt.Errorf("config validation failed: %w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}
