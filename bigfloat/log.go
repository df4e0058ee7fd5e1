package bigfloat

import (
	"math"
	"math/bits"

	"github.com/agbru/bignum/bigint"
	"github.com/agbru/bignum/nat"
	"github.com/agbru/bignum/numerr"
)

// Log2Bounds returns lo <= log2|x| <= hi, both -Inf for x == 0. The
// bounds are exact when both the mantissa and the base are powers of two.
func (x Float) Log2Bounds() (lo, hi float64) {
	lo, hi = x.mant.Mag().Log2Bounds()
	if x.IsZero() || x.exp == 0 {
		return lo, hi
	}
	exact := lo == hi && baseShift(x.Base()) > 0
	blo, bhi := nat.FromWord(x.Base()).Log2Bounds()
	e := float64(x.exp)
	slack := (math.Abs(hi) + math.Abs(e*bhi)) * 0x1p-50
	if x.exp > 0 {
		lo, hi = lo+e*blo, hi+e*bhi
	} else {
		lo, hi = lo+e*bhi, hi+e*blo
	}
	if exact && math.Abs(lo) < 1<<53 {
		return lo, hi
	}
	return lo - slack, hi + slack
}

// Ln returns the natural logarithm of x under x's context.
func (x Float) Ln() (Float, error) {
	f, _, err := x.ctx.Ln(x)
	return f, err
}

// Ln returns the natural logarithm of x rounded to ctx. The result is
// computed with guard digits and is within one unit in the last place. It
// fails with numerr.ErrDomain when x <= 0 and numerr.ErrUnlimitedPrecision
// when ctx is unbounded.
//
// x is scaled by a power of two into [1, 2) so that
// ln x = 2·atanh((y-1)/(y+1)) + s·ln 2, with ln 2 = 4·acoth 6 + 2·acoth 99.
func (ctx Context) Ln(x Float) (Float, Accuracy, error) {
	if ctx.Precision == 0 {
		return Float{}, Exact, numerr.ErrUnlimitedPrecision
	}
	if x.Signum() <= 0 {
		return Float{}, Exact, numerr.ErrDomain
	}
	base := x.Base()
	if x.IsOne() {
		return Zero(base, ctx), Exact, nil
	}

	lo, _ := x.Log2Bounds()
	s := int(math.Floor(lo))
	w := lnContext(ctx.Precision, base, s)

	p2 := intFloat(bigint.NewInt(1).Lsh(uint(abs(s))), base)
	var y Float
	if s >= 0 {
		y = must(w.Quo(x, p2))
	} else {
		y = must(w.Mul(x, p2))
	}

	one := intFloat(bigint.NewInt(1), base)
	z := must(w.Quo(must(w.Sub(y, one)), must(w.Add(y, one))))
	sum := must(w.Mul(w.atanhSeries(z), intFloat(bigint.NewInt(2), base)))
	if s != 0 {
		sum = must(w.Add(sum, must(w.Mul(w.ln2(base), intFloat(bigint.NewInt(int64(s)), base)))))
	}
	f, acc := ctx.Round(sum)
	return f, acc, nil
}

// lnContext returns the working context for Ln: the target precision plus
// guard digits covering the series length and the ln 2 multiple.
func lnContext(prec uint, base nat.Word, s int) Context {
	guardBits := bits.Len(prec) + bits.Len(uint(abs(s))) + 16
	perDigit := bits.Len(uint(base)) - 1
	return Context{Precision: prec + uint(guardBits/perDigit+1), Rounding: ToNearestEven}
}

// atanhSeries returns Σ z**k / k over odd k, stopping once a term falls
// below the working precision.
func (ctx Context) atanhSeries(z Float) Float {
	if z.IsZero() {
		return z
	}
	base := z.Base()
	z2 := must(ctx.Mul(z, z))
	sum, pow := z, z
	for k := int64(3); ; k += 2 {
		pow = must(ctx.Mul(pow, z2))
		term := must(ctx.Quo(pow, intFloat(bigint.NewInt(k), base)))
		if term.IsZero() || top(term) < top(sum)-int(ctx.Precision)-1 {
			return sum
		}
		sum = must(ctx.Add(sum, term))
	}
}

// acoth returns acoth(n) = atanh(1/n) for an integer n > 1.
func (ctx Context) acoth(n int64, base nat.Word) Float {
	inv := must(ctx.Quo(intFloat(bigint.NewInt(1), base), intFloat(bigint.NewInt(n), base)))
	return ctx.atanhSeries(inv)
}

// ln2 returns ln 2 = 4·acoth 6 + 2·acoth 99.
func (ctx Context) ln2(base nat.Word) Float {
	a := must(ctx.Mul(ctx.acoth(6, base), intFloat(bigint.NewInt(4), base)))
	b := must(ctx.Mul(ctx.acoth(99, base), intFloat(bigint.NewInt(2), base)))
	return must(ctx.Add(a, b))
}

// top returns the exponent just above the leading digit of x.
func top(x Float) int { return x.exp + int(x.Digits()) }

// intFloat returns the exact float for x.
func intFloat(x bigint.Int, base nat.Word) Float {
	f, _ := New(x, 0, base, Context{})
	return f
}

// must unwraps an operation on same-base operands with a non-zero divisor.
func must(f Float, _ Accuracy, err error) Float {
	if err != nil {
		panic("bigfloat: " + err.Error())
	}
	return f
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Log2 returns log2(x) rounded to ctx, within one unit in the last place.
// It is exact when x is a power of two held in a power-of-two base.
func (ctx Context) Log2(x Float) (Float, Accuracy, error) {
	if ctx.Precision == 0 {
		return Float{}, Exact, numerr.ErrUnlimitedPrecision
	}
	if x.Signum() <= 0 {
		return Float{}, Exact, numerr.ErrDomain
	}
	base := x.Base()
	if lo, hi := x.Log2Bounds(); lo == hi && lo == math.Trunc(lo) {
		f, acc := FromInt(bigint.NewInt(int64(lo)), base, ctx)
		return f, acc, nil
	}
	work := lnContext(ctx.Precision, base, 0)
	lx, _, err := work.Ln(x)
	if err != nil {
		return Float{}, Exact, err
	}
	q := must(work.Quo(lx, work.ln2(base)))
	f, acc := ctx.Round(q)
	return f, acc, nil
}
