package bigfloat

import (
	"fmt"
	"strings"
)

// RoundingMode selects how a result that does not fit the precision is
// rounded. The zero value is ToNearestEven.
type RoundingMode uint8

const (
	ToNearestEven       RoundingMode = iota // nearest, ties to an even last digit
	ToNearestAway                           // nearest, ties away from zero
	ToNearestTowardZero                     // nearest, ties toward zero
	ToZero                                  // truncate
	AwayFromZero                            // round up in magnitude
	ToPositiveInf                           // ceiling
	ToNegativeInf                           // floor
)

var roundingNames = [...]string{
	ToNearestEven:       "ToNearestEven",
	ToNearestAway:       "ToNearestAway",
	ToNearestTowardZero: "ToNearestTowardZero",
	ToZero:              "ToZero",
	AwayFromZero:        "AwayFromZero",
	ToPositiveInf:       "ToPositiveInf",
	ToNegativeInf:       "ToNegativeInf",
}

func (m RoundingMode) String() string {
	if int(m) < len(roundingNames) {
		return roundingNames[m]
	}
	return fmt.Sprintf("RoundingMode(%d)", uint8(m))
}

// ParseRoundingMode accepts the mode names returned by String, case
// insensitively, and the short forms even, away-half, zero-half, trunc,
// away, ceil and floor.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch strings.ToLower(s) {
	case "tonearesteven", "even", "half-even":
		return ToNearestEven, nil
	case "tonearestaway", "away-half", "half-away":
		return ToNearestAway, nil
	case "tonearesttowardzero", "zero-half", "half-zero":
		return ToNearestTowardZero, nil
	case "tozero", "zero", "trunc":
		return ToZero, nil
	case "awayfromzero", "away":
		return AwayFromZero, nil
	case "topositiveinf", "ceil", "up":
		return ToPositiveInf, nil
	case "tonegativeinf", "floor", "down":
		return ToNegativeInf, nil
	}
	return 0, fmt.Errorf("unknown rounding mode %q", s)
}

// roundUp reports whether a truncated magnitude is incremented. half is
// the comparison of the discarded part with half a unit of the last kept
// digit, oddDigit is the parity of that digit. The discarded part is known
// to be non-zero.
func (m RoundingMode) roundUp(neg, oddDigit bool, half int) bool {
	switch m {
	case ToNearestEven:
		return half > 0 || half == 0 && oddDigit
	case ToNearestAway:
		return half >= 0
	case ToNearestTowardZero:
		return half > 0
	case ToZero:
		return false
	case AwayFromZero:
		return true
	case ToPositiveInf:
		return !neg
	case ToNegativeInf:
		return neg
	}
	panic("bigfloat: invalid rounding mode " + m.String())
}

// Accuracy describes the rounding error of the last operation: the rounded
// result lies Below, at (Exact) or Above the exact value.
type Accuracy int8

const (
	Below Accuracy = -1
	Exact Accuracy = 0
	Above Accuracy = +1
)

func (a Accuracy) String() string {
	switch a {
	case Below:
		return "Below"
	case Exact:
		return "Exact"
	case Above:
		return "Above"
	}
	return fmt.Sprintf("Accuracy(%d)", int8(a))
}

// Context is the precision and rounding applied by an operation.
// Precision counts digits in the base of the operands; 0 is unbounded,
// under which every operation is exact or fails.
type Context struct {
	Precision uint
	Rounding  RoundingMode
}

// merge returns the context of a binary operation on floats carrying a
// and b: the larger precision, unbounded winning, and a's rounding.
func merge(a, b Context) Context {
	p := max(a.Precision, b.Precision)
	if a.Precision == 0 || b.Precision == 0 {
		p = 0
	}
	return Context{Precision: p, Rounding: a.Rounding}
}
