package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for tracing operations.
var (
	// ErrInvalidConfig indicates grid axes, field tensor, cyclic flags or
	// trace options that cannot describe a valid trace.
	ErrInvalidConfig = errors.New("dynamo: invalid configuration")

	// ErrDimensionMismatch indicates mismatched axis and tensor dimensions.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between axes and field")

	// ErrUnknownStatus indicates a termination code with no matching status.
	ErrUnknownStatus = errors.New("dynamo: unknown termination code")
)

// ConfigError wraps a validation failure with the component that caused it.
type ConfigError struct {
	Component string
	Message   string
	Wrapped   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Wrapped.Error(), e.Component, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}

// Invalid returns a *ConfigError wrapping ErrInvalidConfig.
func Invalid(component, format string, args ...any) error {
	return &ConfigError{
		Component: component,
		Message:   fmt.Sprintf(format, args...),
		Wrapped:   ErrInvalidConfig,
	}
}
