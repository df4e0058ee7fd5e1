// Package bigfloat implements arbitrary-precision floating-point numbers in
// any base b >= 2. A Float is mantissa × b**exponent with an exact
// bigint.Int mantissa; its Context bounds the number of base-b digits the
// mantissa may hold after an operation and selects the rounding mode.
//
// Every operation computes its exact result with the integer kernel and
// rounds it once. Operations on floats of different bases fail with a
// *numerr.BaseError until one operand is converted with WithBase.
package bigfloat

import (
	"github.com/agbru/bignum/bigint"
	"github.com/agbru/bignum/nat"
)

// Float is an immutable arbitrary-precision float. The zero value is 0 in
// base 2 with unbounded precision.
type Float struct {
	mant bigint.Int // no trailing zero digit
	exp  int        // 0 when mant is 0
	base nat.Word   // 0 means 2
	ctx  Context
}

func checkBase(base nat.Word) {
	if base < 2 {
		panic("bigfloat: base must be at least 2")
	}
}

// New returns mant × base**exp rounded to ctx. It panics when base < 2.
func New(mant bigint.Int, exp int, base nat.Word, ctx Context) (Float, Accuracy) {
	checkBase(base)
	return ctx.round(mant.IsNeg(), mant.Mag(), exp, base, nat.Nat{}, nat.Nat{})
}

// FromInt returns x in the given base, rounded to ctx.
func FromInt(x bigint.Int, base nat.Word, ctx Context) (Float, Accuracy) {
	return New(x, 0, base, ctx)
}

// Zero returns 0 in the given base.
func Zero(base nat.Word, ctx Context) Float {
	checkBase(base)
	return Float{base: base, ctx: ctx}
}

// Base returns the base of x.
func (x Float) Base() nat.Word {
	if x.base == 0 {
		return 2
	}
	return x.base
}

// Mant returns the mantissa of x. It is not divisible by the base.
func (x Float) Mant() bigint.Int { return x.mant }

// Exp returns the exponent of x.
func (x Float) Exp() int { return x.exp }

// Context returns the context x was produced with.
func (x Float) Context() Context { return x.ctx }

// Precision returns the precision of x's context; 0 is unbounded.
func (x Float) Precision() uint { return x.ctx.Precision }

// Digits returns the number of base digits of the mantissa.
func (x Float) Digits() uint { return digitLen(x.mant.Mag(), x.Base()) }

// Signum returns -1, 0 or +1.
func (x Float) Signum() int { return x.mant.Signum() }

// IsZero reports whether x == 0.
func (x Float) IsZero() bool { return x.mant.IsZero() }

// IsInt reports whether x is an integer.
func (x Float) IsInt() bool { return x.exp >= 0 || x.mant.IsZero() }

// IsOne reports whether x == 1.
func (x Float) IsOne() bool { return x.exp == 0 && x.mant.IsOne() }

// Neg returns -x.
func (x Float) Neg() Float {
	x.mant = x.mant.Neg()
	return x
}

// Abs returns |x|.
func (x Float) Abs() Float {
	x.mant = x.mant.Abs()
	return x
}

// Cmp compares x and y exactly and returns -1, 0 or +1. Floats of
// different bases compare by value.
func (x Float) Cmp(y Float) int {
	sx, sy := x.Signum(), y.Signum()
	switch {
	case sx != sy:
		if sx < sy {
			return -1
		}
		return 1
	case sx == 0:
		return 0
	}
	c := cmpAbs(x, y)
	if sx < 0 {
		return -c
	}
	return c
}

// Equal reports whether x and y have the same value.
func (x Float) Equal(y Float) bool { return x.Cmp(y) == 0 }

// cmpAbs compares |x| and |y| by moving negative exponents across.
func cmpAbs(x, y Float) int {
	bx, by := x.Base(), y.Base()
	if bx == by {
		// Cheap path: compare the positions of the top digits first.
		tx := x.exp + int(x.Digits())
		ty := y.exp + int(y.Digits())
		if tx != ty {
			if tx < ty {
				return -1
			}
			return 1
		}
		e := min(x.exp, y.exp)
		return shiftUp(x.mant.Mag(), uint(x.exp-e), bx).Cmp(shiftUp(y.mant.Mag(), uint(y.exp-e), by))
	}
	l, r := x.mant.Mag(), y.mant.Mag()
	if x.exp >= 0 {
		l = shiftUp(l, uint(x.exp), bx)
	} else {
		r = shiftUp(r, uint(-x.exp), bx)
	}
	if y.exp >= 0 {
		r = shiftUp(r, uint(y.exp), by)
	} else {
		l = shiftUp(l, uint(-y.exp), by)
	}
	return l.Cmp(r)
}
