package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure.
type ValidationError struct {
	Field   string // the config field path (e.g., "centering.visible_width")
	Value   any    // the invalid value
	Message string // human-readable error description
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the accepted log levels.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns every
// validation error found.
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateCentering()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateCentering() []ValidationError {
	var errors []ValidationError

	if c.Centering.VisibleWidth < 1 {
		errors = append(errors, ValidationError{
			Field:   "centering.visible_width",
			Value:   c.Centering.VisibleWidth,
			Message: "must be a positive integer",
		})
	}

	for _, pattern := range c.Centering.IgnoreNamePatterns {
		if _, err := regexp.Compile(pattern); err != nil {
			errors = append(errors, ValidationError{
				Field:   "centering.ignore_name_patterns",
				Value:   pattern,
				Message: fmt.Sprintf("invalid regular expression: %v", err),
			})
		}
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
