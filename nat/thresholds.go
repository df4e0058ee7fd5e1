package nat

import (
	"fmt"
	"math"
	"sync/atomic"
)

// ─────────────────────────────────────────────────────────────────────────────
// Algorithm Crossover Constants
// ─────────────────────────────────────────────────────────────────────────────
//
// Crossovers are measured in words of the shorter operand (multiplication)
// or of the divisor (division). They only affect speed: every setting
// yields identical results.

const (
	// DefaultKaratsubaThreshold is the operand size at which multiplication
	// switches from the schoolbook method to Karatsuba.
	DefaultKaratsubaThreshold = 40

	// DefaultToom3Threshold is the operand size at which multiplication
	// switches from Karatsuba to Toom-3.
	DefaultToom3Threshold = 160

	// DefaultNewtonThreshold is the divisor size at which division switches
	// from Knuth's algorithm D to a Newton reciprocal.
	DefaultNewtonThreshold = 320

	minKaratsuba = 2
	minToom3     = 3
	minNewton    = 2
)

// Thresholds selects the multiplication and division algorithms by operand
// size. A zero field means "use the default".
type Thresholds struct {
	Karatsuba int
	Toom3     int
	Newton    int
}

// DefaultThresholds returns the built-in crossover points.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Karatsuba: DefaultKaratsubaThreshold,
		Toom3:     DefaultToom3Threshold,
		Newton:    DefaultNewtonThreshold,
	}
}

// normalized fills zero fields with defaults and raises the others to the
// smallest sizes the algorithms support.
func (th Thresholds) normalized() Thresholds {
	d := DefaultThresholds()
	if th.Karatsuba == 0 {
		th.Karatsuba = d.Karatsuba
	}
	if th.Toom3 == 0 {
		th.Toom3 = d.Toom3
	}
	if th.Newton == 0 {
		th.Newton = d.Newton
	}
	th.Karatsuba = max(th.Karatsuba, minKaratsuba)
	th.Toom3 = max(th.Toom3, minToom3)
	th.Newton = max(th.Newton, minNewton)
	return th
}

func (th Thresholds) String() string {
	return fmt.Sprintf("karatsuba=%d toom3=%d newton=%d", th.Karatsuba, th.Toom3, th.Newton)
}

var current atomic.Pointer[Thresholds]

func init() {
	th := DefaultThresholds()
	current.Store(&th)
}

// SetThresholds replaces the process-wide thresholds used by Mul, Sqr and
// DivRem and returns the previous setting. It is safe for concurrent use.
func SetThresholds(th Thresholds) Thresholds {
	th = th.normalized()
	return *current.Swap(&th)
}

// CurrentThresholds returns the process-wide thresholds.
func CurrentThresholds() Thresholds {
	return *current.Load()
}

// ─────────────────────────────────────────────────────────────────────────────
// Forced Algorithms
// ─────────────────────────────────────────────────────────────────────────────

// MulAlgorithm names a multiplication strategy.
type MulAlgorithm int

const (
	// Auto picks the algorithm by operand size.
	Auto MulAlgorithm = iota
	// Schoolbook is the quadratic method.
	Schoolbook
	// Karatsuba splits operands in two halves.
	Karatsuba
	// Toom3 splits operands in three parts.
	Toom3
)

// String returns the lowercase name of the algorithm.
func (a MulAlgorithm) String() string {
	switch a {
	case Auto:
		return "auto"
	case Schoolbook:
		return "schoolbook"
	case Karatsuba:
		return "karatsuba"
	case Toom3:
		return "toom3"
	default:
		return fmt.Sprintf("MulAlgorithm(%d)", int(a))
	}
}

// ParseMulAlgorithm returns the algorithm with the given name.
func ParseMulAlgorithm(s string) (MulAlgorithm, error) {
	for _, a := range []MulAlgorithm{Auto, Schoolbook, Karatsuba, Toom3} {
		if a.String() == s {
			return a, nil
		}
	}
	return Auto, fmt.Errorf("unknown multiplication algorithm %q", s)
}

// ForceAlgorithm returns thresholds based on base that make multiplication
// use algorithm a at every size where it applies. Division thresholds are
// kept.
func ForceAlgorithm(base Thresholds, a MulAlgorithm) Thresholds {
	th := base.normalized()
	switch a {
	case Schoolbook:
		th.Karatsuba, th.Toom3 = math.MaxInt, math.MaxInt
	case Karatsuba:
		th.Karatsuba, th.Toom3 = minKaratsuba, math.MaxInt
	case Toom3:
		th.Karatsuba, th.Toom3 = minKaratsuba, minToom3
	}
	return th
}

// Algorithm reports which algorithm the top level of a multiplication of
// operands with m and n words uses under th.
func (th Thresholds) Algorithm(m, n int) MulAlgorithm {
	th = th.normalized()
	s := min(m, n)
	switch {
	case s < th.Karatsuba:
		return Schoolbook
	case s < th.Toom3:
		return Karatsuba
	default:
		return Toom3
	}
}
