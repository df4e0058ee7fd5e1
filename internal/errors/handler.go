package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies terminal colour codes. It keeps this package free
// of a dependency on the ui package.
type ColorProvider interface {
	Yellow() string
	Red() string
	Reset() string
}

// DefaultColorProvider provides no colour codes (for non-terminal output).
type DefaultColorProvider struct{}

func (DefaultColorProvider) Yellow() string { return "" }
func (DefaultColorProvider) Red() string    { return "" }
func (DefaultColorProvider) Reset() string  { return "" }

// ExitCode returns the process exit status for err.
func ExitCode(err error) int {
	var (
		cfgErr      ConfigError
		mismatchErr MismatchError
		evalErr     EvaluationError
		validErr    ValidationError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.As(err, &mismatchErr):
		return ExitErrorMismatch
	case errors.As(err, &cfgErr), errors.As(err, &validErr):
		return ExitErrorConfig
	case errors.As(err, &evalErr):
		return ExitErrorArithmetic
	}
	return ExitErrorGeneric
}

// HandleEvaluationError prints a status line describing err to out and
// returns the matching exit code. duration, when positive, is the time spent
// before the failure. colors may be nil.
func HandleEvaluationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = DefaultColorProvider{}
	}

	msgSuffix := ""
	if duration > 0 {
		msgSuffix = fmt.Sprintf(" after %s%s%s", colors.Yellow(), duration, colors.Reset())
	}

	code := ExitCode(err)
	switch code {
	case ExitErrorTimeout:
		fmt.Fprintf(out, "Status: Failure (Timeout). The execution limit was reached%s.\n", msgSuffix)
	case ExitErrorCanceled:
		fmt.Fprintf(out, "%sStatus: Canceled%s.%s\n", colors.Yellow(), msgSuffix, colors.Reset())
	case ExitErrorMismatch:
		fmt.Fprintf(out, "%sStatus: Mismatch.%s %v\n", colors.Red(), colors.Reset(), err)
	case ExitErrorConfig:
		fmt.Fprintf(out, "Configuration error: %v\n", err)
	case ExitErrorArithmetic:
		fmt.Fprintf(out, "%sError:%s %v\n", colors.Red(), colors.Reset(), err)
	default:
		fmt.Fprintf(out, "Status: Failure. An unexpected error occurred: %v\n", err)
	}
	return code
}
