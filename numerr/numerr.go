// Package numerr defines the failure taxonomy shared by the nat, bigint and
// bigfloat packages.
//
// Every failure is reported through one of the sentinel errors below, either
// directly or wrapped in a typed error carrying context. Callers classify
// failures with errors.Is and extract context with errors.As:
//
//	if _, err := bigint.Parse("12z", 10); errors.Is(err, numerr.ErrInvalidDigit) {
//		var pe *numerr.ParseError
//		errors.As(err, &pe) // pe.Offset == 2
//	}
//
// Violations of internal invariants are not errors; they panic.
package numerr

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrDivisionByZero reports a division, remainder or modular operation
	// with a zero divisor or modulus.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNotInvertible reports a modular inverse that does not exist.
	ErrNotInvertible = errors.New("value is not invertible modulo the modulus")
	// ErrInvalidDigit reports a character that is not a digit of the radix.
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrEmptyString reports input without any digits.
	ErrEmptyString = errors.New("empty string")
	// ErrUnsupportedRadix reports a radix outside 2..36.
	ErrUnsupportedRadix = errors.New("unsupported radix")
	// ErrMalformedSeparator reports a digit separator at the start or end of
	// the digits, or next to another separator.
	ErrMalformedSeparator = errors.New("malformed digit separator")
	// ErrConversionOverflow reports a value that does not fit the requested
	// fixed-width type.
	ErrConversionOverflow = errors.New("value out of range for conversion")
	// ErrIncompatibleBase reports float operands with different bases.
	ErrIncompatibleBase = errors.New("incompatible float bases")
	// ErrUnderflow reports a magnitude subtraction whose result would be
	// negative.
	ErrUnderflow = errors.New("magnitude subtraction underflow")
	// ErrDomain reports an argument outside the domain of a function, such
	// as the logarithm of zero.
	ErrDomain = errors.New("argument outside function domain")
	// ErrUnlimitedPrecision reports an operation whose exact result cannot be
	// represented with unbounded precision, such as 1/3 in base 10.
	ErrUnlimitedPrecision = errors.New("result is not representable with unlimited precision")
	// ErrInvalidEncoding reports malformed binary input.
	ErrInvalidEncoding = errors.New("invalid binary encoding")
)

// ParseError describes a failure to parse a number from text.
type ParseError struct {
	// Input is the text being parsed.
	Input string
	// Offset is the byte offset of the offending character, or -1 when the
	// failure is not tied to one position.
	Offset int
	// Err is one of the parse sentinels.
	Err error
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("parsing %q: %v at offset %d", e.Input, e.Err, e.Offset)
	}
	return fmt.Sprintf("parsing %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError returns a *ParseError wrapping err.
func NewParseError(input string, offset int, err error) error {
	return &ParseError{Input: input, Offset: offset, Err: err}
}

// ConversionError describes a narrowing conversion that does not fit.
type ConversionError struct {
	// Value is the decimal form of the value being converted.
	Value string
	// Target names the destination type, such as "int64".
	Target string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s does not fit in %s: %v", e.Value, e.Target, ErrConversionOverflow)
}

// Unwrap returns ErrConversionOverflow.
func (e *ConversionError) Unwrap() error { return ErrConversionOverflow }

// BaseError describes an operation on floats of different bases.
type BaseError struct {
	Left, Right uint
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("base %d and base %d: %v", e.Left, e.Right, ErrIncompatibleBase)
}

// Unwrap returns ErrIncompatibleBase.
func (e *BaseError) Unwrap() error { return ErrIncompatibleBase }
