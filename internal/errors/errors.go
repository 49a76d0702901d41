// Package errors provides the error vocabulary for the Trellis CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates user-supplied input failed validation.
	ErrValidation = errors.New("validation error")

	// ErrStructural indicates a source file did not have the expected shape,
	// such as a missing template declaration or an unrecognized config file.
	ErrStructural = errors.New("structural error")

	// ErrPermission indicates a filesystem permission failure.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a file, directory, or declaration was not found.
	ErrNotFound = errors.New("not found")

	// ErrVersion indicates the project pins a framework version the CLI
	// does not support.
	ErrVersion = errors.New("version mismatch")

	// ErrCancelled indicates the user aborted an interactive prompt. It is
	// a control signal, not a failure; commands map it to a clean exit.
	ErrCancelled = errors.New("cancelled")
)

// DetailError captures structured error information for terminal display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path involved (optional).
	Location string

	// Field is the field or declaration name involved (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// ExitError wraps an error with a process exit code.
type ExitError struct {
	// Err is the wrapped error.
	Err error

	// Code is the process exit code.
	Code int

	// Printed reports whether the command layer already displayed the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewStructuralError creates a structural error with details.
func NewStructuralError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "unexpected source shape",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrStructural,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewPermissionError creates a permission denied error with details.
func NewPermissionError(message string, context map[string]string, hint string) error {
	return &DetailError{
		Type:    "permission denied",
		Message: message,
		Context: context,
		Hint:    hint,
		Cause:   ErrPermission,
	}
}

// NewVersionError creates a version mismatch error with details.
func NewVersionError(message string, context map[string]string, hint string) error {
	return &DetailError{
		Type:    "unsupported framework version",
		Message: message,
		Context: context,
		Hint:    hint,
		Cause:   ErrVersion,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
