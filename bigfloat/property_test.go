package bigfloat

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/bignum/bigint"
)

// genFloat generates base-10 floats with up to 30 digits and exponents in
// [-40, 40].
func genFloat() gopter.Gen {
	return gopter.CombineGens(
		gen.Int64(),
		gen.Int64Range(0, 1<<40),
		gen.IntRange(-40, 40),
	).Map(func(v []any) Float {
		m := bigint.NewInt(v[0].(int64)).Mul(bigint.NewInt(v[1].(int64)))
		f, _ := New(m, v[2].(int), 10, Context{})
		return f
	})
}

func genContext() gopter.Gen {
	return gopter.CombineGens(
		gen.UIntRange(1, 25),
		gen.UInt8Range(0, uint8(ToNegativeInf)),
	).Map(func(v []any) Context {
		return Context{Precision: v[0].(uint), Rounding: RoundingMode(v[1].(uint8))}
	})
}

// withinOneUnit reports whether the rounded r lies on the side of the
// exact q given by acc, less than one unit of r's last place away.
func withinOneUnit(r Float, acc Accuracy, q *big.Rat, prec uint) bool {
	rr := toRat(r)
	if Accuracy(rr.Cmp(q)) != acc {
		return false
	}
	if r.IsZero() {
		return q.Sign() == 0 || acc != Exact
	}
	unitExp := r.Exp() + int(r.Digits()) - int(prec)
	unit, _ := New(bigint.NewInt(1), unitExp, r.Base(), Context{})
	diff := new(big.Rat).Sub(rr, q)
	return diff.Abs(diff).Cmp(toRat(unit)) < 0
}

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	return gopter.NewProperties(parameters)
}

func TestFloatProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("addition is commutative", prop.ForAll(
		func(x, y Float, ctx Context) bool {
			a, aa, _ := ctx.Add(x, y)
			b, ba, _ := ctx.Add(y, x)
			return a.Equal(b) && aa == ba
		},
		genFloat(), genFloat(), genContext(),
	))

	properties.Property("rounded results respect the precision", prop.ForAll(
		func(x, y Float, ctx Context) bool {
			for _, op := range []func(Float, Float) (Float, Accuracy, error){ctx.Add, ctx.Sub, ctx.Mul} {
				f, _, err := op(x, y)
				if err != nil || f.Digits() > ctx.Precision {
					return false
				}
			}
			return true
		},
		genFloat(), genFloat(), genContext(),
	))

	properties.Property("products are within one unit with the reported accuracy", prop.ForAll(
		func(x, y Float, ctx Context) bool {
			f, acc, err := ctx.Mul(x, y)
			q := new(big.Rat).Mul(toRat(x), toRat(y))
			return err == nil && withinOneUnit(f, acc, q, ctx.Precision)
		},
		genFloat(), genFloat(), genContext(),
	))

	properties.Property("quotients are within one unit with the reported accuracy", prop.ForAll(
		func(x, y Float, ctx Context) bool {
			if y.IsZero() {
				return true
			}
			f, acc, err := ctx.Quo(x, y)
			q := new(big.Rat).Quo(toRat(x), toRat(y))
			return err == nil && withinOneUnit(f, acc, q, ctx.Precision)
		},
		genFloat(), genFloat(), genContext(),
	))

	properties.Property("text round trips", prop.ForAll(
		func(x Float) bool {
			y, acc, err := Parse(x.String(), 10, Context{})
			return err == nil && acc == Exact && y.Equal(x)
		},
		genFloat(),
	))

	properties.Property("base conversion there and back is exact for binary fractions", prop.ForAll(
		func(m int64, e int) bool {
			x, _ := New(bigint.NewInt(m), e, 2, Context{})
			d, _, err := x.WithBase(10, Context{})
			if err != nil {
				return false
			}
			b, _, err := d.WithBase(2, Context{})
			return err == nil && b.Equal(x)
		},
		gen.Int64(), gen.IntRange(-80, 80),
	))

	properties.TestingRun(t)
}
