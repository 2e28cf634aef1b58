// Package gen turns loaded project descriptors into rendered build-script
// files, one per requested dialect.
package gen

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidConfig indicates a generator configuration error.
	ErrInvalidConfig = errors.New("gen: invalid configuration")
	// ErrGenerationFailed indicates a script generation failure.
	ErrGenerationFailed = errors.New("gen: generation failed")
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("gen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("gen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}

// GenerationError wraps a failure while rendering or writing one script.
type GenerationError struct {
	Dialect string
	Path    string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("gen: %s: generate %s: %v", e.Dialect, e.Path, e.Cause)
	}
	return fmt.Sprintf("gen: %s: %v", e.Dialect, e.Cause)
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}
