package patherrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidArgument indicates an invalid path operand.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotSupported indicates an unsupported operation or configuration.
	ErrNotSupported = errors.New("not supported")
)

// InvalidArgumentError represents a validation failure at an API boundary.
// This includes empty paths where a value is required, embedded NUL
// characters, and base paths that are not fully qualified.
type InvalidArgumentError struct {
	// Arg is the name of the offending argument (e.g. "path", "basePath")
	Arg string
	// Message describes the validation failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *InvalidArgumentError) Error() string {
	msg := "invalid argument"
	if e.Arg != "" {
		msg += " " + e.Arg
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *InvalidArgumentError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewInvalidArgument creates an InvalidArgumentError for the named argument.
func NewInvalidArgument(arg, message string) *InvalidArgumentError {
	return &InvalidArgumentError{Arg: arg, Message: message}
}

// NewInvalidArgumentf creates an InvalidArgumentError with a formatted message.
func NewInvalidArgumentf(arg, format string, args ...any) *InvalidArgumentError {
	return &InvalidArgumentError{Arg: arg, Message: fmt.Sprintf(format, args...)}
}

// NotSupportedError represents an operation that is not supported by the
// requested grammar or buffer configuration.
type NotSupportedError struct {
	// Op is the operation that was attempted
	Op string
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *NotSupportedError) Error() string {
	msg := "not supported"
	if e.Op != "" {
		msg += " in " + e.Op
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *NotSupportedError) Is(target error) bool {
	return target == ErrNotSupported
}

// NewNotSupported creates a NotSupportedError for the named operation.
func NewNotSupported(op, message string) *NotSupportedError {
	return &NotSupportedError{Op: op, Message: message}
}
