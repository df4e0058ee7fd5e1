package bigfloat

import (
	"math"

	"github.com/agbru/bignum/bigint"
	"github.com/agbru/bignum/nat"
	"github.com/agbru/bignum/numerr"
)

// float64Context is the context matching IEEE 754 double precision.
var float64Context = Context{Precision: 53, Rounding: ToNearestEven}

// FromFloat64 returns the exact base-2 value of f with a 53-bit context.
// It fails with numerr.ErrDomain for NaN and infinities.
func FromFloat64(f float64) (Float, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Float{}, numerr.ErrDomain
	}
	frac, exp := math.Frexp(f)
	m := int64(math.Ldexp(frac, 53))
	x, _ := New(bigint.NewInt(m), exp-53, 2, float64Context)
	return x, nil
}

// Round returns x rounded to ctx and carrying ctx.
func (x Float) Round(ctx Context) (Float, Accuracy) {
	return ctx.Round(x)
}

// WithPrecision returns x rounded to p digits with x's rounding mode.
func (x Float) WithPrecision(p uint) (Float, Accuracy) {
	return Context{Precision: p, Rounding: x.ctx.Rounding}.Round(x)
}

// WithRounding returns x with the rounding mode of its context replaced.
// The value is unchanged.
func (x Float) WithRounding(m RoundingMode) Float {
	x.ctx.Rounding = m
	return x
}

// WithBase converts x to the given base, rounded to ctx. Conversion of a
// fractional value is a division and fails with
// numerr.ErrUnlimitedPrecision when ctx is unbounded and the value has no
// finite expansion in the new base.
func (x Float) WithBase(base nat.Word, ctx Context) (Float, Accuracy, error) {
	checkBase(base)
	from := x.Base()
	if from == base {
		f, acc := ctx.Round(x)
		return f, acc, nil
	}
	if x.exp >= 0 {
		m := shiftUp(x.mant.Mag(), uint(x.exp), from)
		f, acc := ctx.round(x.mant.IsNeg(), m, 0, base, nat.Nat{}, nat.Nat{})
		return f, acc, nil
	}
	num := Float{mant: x.mant, base: base}
	den := Float{mant: bigint.FromNat(powBase(from, uint(-x.exp))), base: base}
	return ctx.Quo(num, den)
}

// Float64 returns the float64 nearest to x. Values beyond the float64
// range become ±Inf or ±0. Results in the subnormal range are rounded
// twice, to 53 bits and then to the subnormal precision.
func (x Float) Float64() float64 {
	if x.IsZero() {
		return 0
	}
	if x.exp < -1<<20 || x.exp > 1<<20 {
		// Far outside the float64 range in any base.
		lo, _ := x.Log2Bounds()
		f := math.Inf(1)
		if lo < 0 {
			f = 0
		}
		if x.mant.IsNeg() {
			f = -f
		}
		return f
	}
	b, _, err := x.WithBase(2, float64Context)
	if err != nil {
		panic("bigfloat: " + err.Error())
	}
	return math.Ldexp(b.mant.Float64(), b.exp)
}

// Int returns x truncated toward zero.
func (x Float) Int() bigint.Int {
	base := x.Base()
	if x.exp >= 0 {
		return bigint.FromParts(x.mant.Sign(), shiftUp(x.mant.Mag(), uint(x.exp), base))
	}
	hi, _ := splitDigits(x.mant.Mag(), uint(-x.exp), base)
	return bigint.FromParts(x.mant.Sign(), hi)
}
