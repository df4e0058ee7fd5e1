// Package bigint implements signed integers of unbounded size on top of
// package nat.
//
// Int is an immutable value type: operations return fresh results and
// never modify their operands, and the zero value is 0. Acc is the mutable
// counterpart for long accumulation loops.
//
// Division truncates towards zero (QuoRem) or is Euclidean (DivMod, Mod).
// Failures are reported with the sentinels of package numerr.
package bigint

import (
	"github.com/agbru/bignum/nat"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sign
// ─────────────────────────────────────────────────────────────────────────────

// Sign is the sign of an Int. Zero is always Positive.
type Sign int8

const (
	// Positive is the sign of zero and of values above it.
	Positive Sign = iota
	// Negative is the sign of values below zero.
	Negative
)

// Neg returns the opposite sign.
func (s Sign) Neg() Sign {
	if s == Positive {
		return Negative
	}
	return Positive
}

// Mul returns the sign of a product of values with signs s and t.
func (s Sign) Mul(t Sign) Sign {
	if s == t {
		return Positive
	}
	return Negative
}

func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

// ─────────────────────────────────────────────────────────────────────────────
// Int
// ─────────────────────────────────────────────────────────────────────────────

// Int is a signed integer of unbounded size. The zero value is 0.
type Int struct {
	sign Sign
	mag  nat.Nat
}

// makeInt builds an Int and keeps zero positive.
func makeInt(s Sign, mag nat.Nat) Int {
	if mag.IsZero() {
		s = Positive
	}
	return Int{sign: s, mag: mag}
}

// NewInt returns x as an Int.
func NewInt(x int64) Int {
	if x < 0 {
		return Int{sign: Negative, mag: nat.FromUint64(uint64(-(x + 1)) + 1)}
	}
	return Int{mag: nat.FromUint64(uint64(x))}
}

// FromUint64 returns x as an Int.
func FromUint64(x uint64) Int {
	return Int{mag: nat.FromUint64(x)}
}

// FromNat returns the non-negative Int with magnitude mag.
func FromNat(mag nat.Nat) Int {
	return Int{mag: mag}
}

// FromParts returns the Int with the given sign and magnitude. A zero
// magnitude yields 0 regardless of s.
func FromParts(s Sign, mag nat.Nat) Int {
	return makeInt(s, mag)
}

// Sign returns the sign of x.
func (x Int) Sign() Sign { return x.sign }

// Signum returns -1, 0 or +1 depending on x.
func (x Int) Signum() int {
	switch {
	case x.mag.IsZero():
		return 0
	case x.sign == Negative:
		return -1
	}
	return 1
}

// Mag returns |x| as a magnitude.
func (x Int) Mag() nat.Nat { return x.mag }

// IsZero reports whether x == 0.
func (x Int) IsZero() bool { return x.mag.IsZero() }

// IsOne reports whether x == 1.
func (x Int) IsOne() bool { return x.sign == Positive && x.mag.IsOne() }

// IsNeg reports whether x < 0.
func (x Int) IsNeg() bool { return x.sign == Negative }

// BitLen returns the bit length of |x|.
func (x Int) BitLen() int { return x.mag.BitLen() }

// Abs returns |x|.
func (x Int) Abs() Int { return Int{mag: x.mag} }

// Neg returns -x.
func (x Int) Neg() Int { return makeInt(x.sign.Neg(), x.mag) }

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	switch {
	case x.sign == y.sign:
		c := x.mag.Cmp(y.mag)
		if x.sign == Negative {
			c = -c
		}
		return c
	case x.sign == Negative:
		return -1
	}
	return 1
}

// CmpAbs compares |x| and |y|.
func (x Int) CmpAbs(y Int) int { return x.mag.Cmp(y.mag) }

// Equal reports whether x == y.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }
