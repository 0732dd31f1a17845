// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrInvalidInput      = errors.New("invalid prices/quantities")
	ErrConfigInvalid     = errors.New("invalid configuration")
	ErrPriceFetchFailed  = errors.New("failed to fetch price")
	ErrUnknownInstrument = errors.New("unknown instrument type")
	ErrUnknownTradeType  = errors.New("unknown trade type")
)

// ValidationError represents a validation error on an otherwise
// well-typed input. It is the only failure the evaluator itself raises.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// ParseError represents a failure to coerce raw text input into a typed
// value. It belongs to the input boundary and never escapes from the
// evaluator itself.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse error: %s (%q): %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("parse error: %s (%q)", e.Field, e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(field, value string, err error) *ParseError {
	return &ParseError{
		Field: field,
		Value: value,
		Err:   err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
