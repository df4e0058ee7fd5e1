package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes.
const (
	ExitSuccess         = 0   // Successful execution.
	ExitErrorGeneric    = 1   // Unclassified error.
	ExitErrorTimeout    = 2   // The evaluation deadline was reached.
	ExitErrorMismatch   = 3   // Multiplication strategies disagreed on a result.
	ExitErrorConfig     = 4   // Invalid flags, environment or profile.
	ExitErrorArithmetic = 5   // The expression was well formed but could not be evaluated.
	ExitErrorCanceled   = 130 // Interrupted (SIGINT).
)

// ConfigError represents a user configuration error, such as an invalid
// flag value or an unreadable calibration profile.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// EvaluationError wraps a failure raised while evaluating an expression.
// Expr is the source text, Cause the underlying error (often a numerr
// sentinel or typed error).
type EvaluationError struct {
	Expr  string
	Cause error
}

// Error returns the cause message prefixed by the expression when known.
func (e EvaluationError) Error() string {
	if e.Expr == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("evaluating %q: %v", e.Expr, e.Cause)
}

// Unwrap returns the original cause, allowing errors.Is / errors.As on it.
func (e EvaluationError) Unwrap() error { return e.Cause }

// TimeoutError represents an evaluation that exceeded its time limit.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was abandoned.
	Limit time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// Unwrap makes a TimeoutError match context.DeadlineExceeded.
func (e TimeoutError) Unwrap() error { return context.DeadlineExceeded }

// ValidationError represents an input validation failure on a named field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// MismatchError reports that two multiplication strategies produced
// different results for the same expression.
type MismatchError struct {
	Expr        string
	Left, Right string // names of the disagreeing strategies
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("result mismatch for %q between %s and %s", e.Expr, e.Left, e.Right)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// It returns nil when err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError reports whether err is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
