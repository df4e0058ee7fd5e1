package bigfloat

import (
	"github.com/agbru/bignum/nat"
	"github.com/agbru/bignum/numerr"
)

// Sqrt returns √x under x's context.
func (x Float) Sqrt() (Float, error) {
	f, _, err := x.ctx.Sqrt(x)
	return f, err
}

// Sqrt returns √x correctly rounded to ctx. It fails with numerr.ErrDomain
// when x < 0 and with numerr.ErrUnlimitedPrecision when ctx is unbounded
// and x has no exact root in its base.
func (ctx Context) Sqrt(x Float) (Float, Accuracy, error) {
	if x.Signum() < 0 {
		return Float{}, Exact, numerr.ErrDomain
	}
	base := x.Base()
	if x.IsZero() {
		return Zero(base, ctx), Exact, nil
	}

	// Scale the mantissa so that its root has two digits beyond the
	// precision and the remaining exponent is even.
	var s uint
	if need := 2 * (ctx.Precision + 2); ctx.Precision > 0 && x.Digits() < need {
		s = need - x.Digits()
	}
	if (x.exp-int(s))%2 != 0 {
		s++
	}
	r, rem := shiftUp(x.mant.Mag(), s, base).SqrtRem()
	exp := (x.exp - int(s)) / 2
	if rem.IsZero() {
		f, acc := ctx.round(false, r, exp, base, nat.Nat{}, nat.Nat{})
		return f, acc, nil
	}
	if ctx.Precision == 0 {
		return Float{}, Exact, numerr.ErrUnlimitedPrecision
	}

	// The root lies strictly inside (r, r+1), above r+½ exactly when
	// rem > r. A tail of ¼ or ¾ stands in for the unknown fraction.
	num := nat.FromWord(1)
	if rem.Cmp(r) > 0 {
		num = nat.FromWord(3)
	}
	f, acc := ctx.round(false, r, exp, base, num, nat.FromWord(4))
	return f, acc, nil
}
