package bigfloat

import (
	"github.com/agbru/bignum/bigint"
	"github.com/agbru/bignum/nat"
	"github.com/agbru/bignum/numerr"
)

func commonBase(x, y Float) (nat.Word, error) {
	bx, by := x.Base(), y.Base()
	if bx != by {
		return 0, &numerr.BaseError{Left: uint(bx), Right: uint(by)}
	}
	return bx, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Context Operations
// ─────────────────────────────────────────────────────────────────────────────

// Round returns x rounded to ctx.
func (ctx Context) Round(x Float) (Float, Accuracy) {
	return ctx.round(x.mant.IsNeg(), x.mant.Mag(), x.exp, x.Base(), nat.Nat{}, nat.Nat{})
}

// Add returns x + y rounded to ctx.
func (ctx Context) Add(x, y Float) (Float, Accuracy, error) {
	base, err := commonBase(x, y)
	if err != nil {
		return Float{}, Exact, err
	}
	if y.IsZero() {
		f, acc := ctx.Round(x)
		return f, acc, nil
	}
	if x.IsZero() {
		f, acc := ctx.Round(y)
		return f, acc, nil
	}
	if ctx.Precision > 0 {
		x, y = sticky(x, y, ctx.Precision)
		y, x = sticky(y, x, ctx.Precision)
	}
	e := min(x.exp, y.exp)
	a := bigint.FromParts(x.mant.Sign(), shiftUp(x.mant.Mag(), uint(x.exp-e), base))
	b := bigint.FromParts(y.mant.Sign(), shiftUp(y.mant.Mag(), uint(y.exp-e), base))
	s := a.Add(b)
	f, acc := ctx.round(s.IsNeg(), s.Mag(), e, base, nat.Nat{}, nat.Nat{})
	return f, acc, nil
}

// sticky replaces y by a single unit at exponent low-1 when all of y lies
// below low, the lower of x's last digit and two digits past the rounding
// position. Both values then fall strictly between x and its neighbour at
// base**low on the same side of every midpoint, so x + y rounds the same.
func sticky(x, y Float, prec uint) (Float, Float) {
	xTop := x.exp + int(x.Digits())
	low := min(x.exp, xTop-int(prec)-2)
	if y.exp+int(y.Digits()) >= low {
		return x, y
	}
	y.mant = bigint.FromParts(y.mant.Sign(), nat.FromWord(1))
	y.exp = low - 1
	return x, y
}

// Sub returns x - y rounded to ctx.
func (ctx Context) Sub(x, y Float) (Float, Accuracy, error) {
	return ctx.Add(x, y.Neg())
}

// Mul returns x × y rounded to ctx.
func (ctx Context) Mul(x, y Float) (Float, Accuracy, error) {
	base, err := commonBase(x, y)
	if err != nil {
		return Float{}, Exact, err
	}
	p := x.mant.Mul(y.mant)
	f, acc := ctx.round(p.IsNeg(), p.Mag(), x.exp+y.exp, base, nat.Nat{}, nat.Nat{})
	return f, acc, nil
}

// Quo returns x / y rounded to ctx. The remainder of the mantissa division
// decides the rounding exactly. It fails with numerr.ErrDivisionByZero when
// y == 0, and with numerr.ErrUnlimitedPrecision when ctx is unbounded and
// the quotient has no finite expansion in the base.
func (ctx Context) Quo(x, y Float) (Float, Accuracy, error) {
	base, err := commonBase(x, y)
	if err != nil {
		return Float{}, Exact, err
	}
	if y.IsZero() {
		return Float{}, Exact, numerr.ErrDivisionByZero
	}
	neg := x.mant.IsNeg() != y.mant.IsNeg()
	if x.IsZero() {
		return Float{base: base, ctx: ctx}, Exact, nil
	}
	mx, my := x.mant.Mag(), y.mant.Mag()
	exp := x.exp - y.exp

	if ctx.Precision == 0 {
		k, ok := terminatingShift(mx, my, base)
		if !ok {
			return Float{}, Exact, numerr.ErrUnlimitedPrecision
		}
		q, _ := shiftUp(mx, k, base).DivExact(my)
		return makeFloat(neg, q, exp-int(k), base, ctx), Exact, nil
	}

	// Scale the dividend so that the quotient has at least Precision+1
	// digits; the rounding then sees the remainder as the tail.
	s := int(ctx.Precision) + 1 + int(digitLen(my, base)) - int(digitLen(mx, base))
	s = max(s, 0)
	q, r, _ := shiftUp(mx, uint(s), base).DivRem(my)
	f, acc := ctx.round(neg, q, exp-s, base, r, my)
	return f, acc, nil
}

// terminatingShift returns the smallest k such that my divides
// mx × base**k, if one exists.
func terminatingShift(mx, my nat.Nat, base nat.Word) (uint, bool) {
	d, _ := my.Div(nat.GCD(mx, my))
	b := nat.FromWord(base)
	var k uint
	for !d.IsOne() {
		g := nat.GCD(d, b)
		if g.IsOne() {
			return 0, false
		}
		d, _ = d.Div(g)
		k++
	}
	return k, true
}

// Pow returns x**n rounded to ctx: the exact power for n >= 0, and one
// rounded division of 1 by the exact power for n < 0. 0**0 is 1.
func (ctx Context) Pow(x Float, n int) (Float, Accuracy, error) {
	base := x.Base()
	if n == 0 {
		return makeFloat(false, nat.FromWord(1), 0, base, ctx), Exact, nil
	}
	if x.IsZero() && n < 0 {
		return Float{}, Exact, numerr.ErrDivisionByZero
	}
	e := uint(n)
	if n < 0 {
		e = uint(-n)
	}
	p := x.mant.Pow(e)
	exact := Float{mant: p, exp: x.exp * int(e), base: base}
	if n > 0 {
		f, acc := ctx.Round(exact)
		return f, acc, nil
	}
	one := makeFloat(false, nat.FromWord(1), 0, base, ctx)
	return ctx.Quo(one, exact)
}

// ─────────────────────────────────────────────────────────────────────────────
// Float Methods
// ─────────────────────────────────────────────────────────────────────────────

// Add returns x + y under the merged context of x and y.
func (x Float) Add(y Float) (Float, error) {
	f, _, err := merge(x.ctx, y.ctx).Add(x, y)
	return f, err
}

// Sub returns x - y under the merged context of x and y.
func (x Float) Sub(y Float) (Float, error) {
	f, _, err := merge(x.ctx, y.ctx).Sub(x, y)
	return f, err
}

// Mul returns x × y under the merged context of x and y.
func (x Float) Mul(y Float) (Float, error) {
	f, _, err := merge(x.ctx, y.ctx).Mul(x, y)
	return f, err
}

// Quo returns x / y under the merged context of x and y.
func (x Float) Quo(y Float) (Float, error) {
	f, _, err := merge(x.ctx, y.ctx).Quo(x, y)
	return f, err
}

// Pow returns x**n under x's context.
func (x Float) Pow(n int) (Float, error) {
	f, _, err := x.ctx.Pow(x, n)
	return f, err
}
