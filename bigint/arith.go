package bigint

import (
	"github.com/agbru/bignum/nat"
	"github.com/agbru/bignum/numerr"
)

// Add returns x + y.
func (x Int) Add(y Int) Int {
	if x.sign == y.sign {
		return makeInt(x.sign, x.mag.Add(y.mag))
	}
	// Opposite signs: the result takes the sign of the larger magnitude.
	if x.mag.Cmp(y.mag) >= 0 {
		return makeInt(x.sign, x.mag.AbsDiff(y.mag))
	}
	return makeInt(y.sign, y.mag.AbsDiff(x.mag))
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	return makeInt(x.sign.Mul(y.sign), x.mag.Mul(y.mag))
}

// MulWith returns x * y using the given multiplication thresholds.
func MulWith(x, y Int, th nat.Thresholds) Int {
	return makeInt(x.sign.Mul(y.sign), nat.MulWith(x.mag, y.mag, th))
}

// Sqr returns x * x.
func (x Int) Sqr() Int {
	return Int{mag: x.mag.Sqr()}
}

// Pow returns x**e. Pow(0, 0) is 1.
func (x Int) Pow(e uint) Int {
	s := Positive
	if e&1 == 1 {
		s = x.sign
	}
	return makeInt(s, x.mag.Pow(e))
}

// Sqrt returns ⌊√x⌋. It fails with numerr.ErrDomain when x < 0.
func (x Int) Sqrt() (Int, error) {
	if x.sign == Negative {
		return Int{}, numerr.ErrDomain
	}
	return Int{mag: x.mag.Sqrt()}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Division
// ─────────────────────────────────────────────────────────────────────────────

// QuoRem returns the truncated quotient q = x/y and remainder r = x - q*y,
// where r has the sign of x. It fails with numerr.ErrDivisionByZero when
// y == 0.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	qm, rm, err := x.mag.DivRem(y.mag)
	if err != nil {
		return Int{}, Int{}, err
	}
	return makeInt(x.sign.Mul(y.sign), qm), makeInt(x.sign, rm), nil
}

// QuoRemWith is QuoRem with explicit thresholds.
func QuoRemWith(x, y Int, th nat.Thresholds) (q, r Int, err error) {
	qm, rm, err := nat.DivRemWith(x.mag, y.mag, th)
	if err != nil {
		return Int{}, Int{}, err
	}
	return makeInt(x.sign.Mul(y.sign), qm), makeInt(x.sign, rm), nil
}

// Quo returns x/y truncated towards zero.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder of truncated division, with the sign of x.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// DivMod returns the Euclidean quotient and modulus: x = q*y + m with
// 0 <= m < |y|.
func (x Int) DivMod(y Int) (q, m Int, err error) {
	q, m, err = x.QuoRem(y)
	if err != nil {
		return Int{}, Int{}, err
	}
	if m.sign == Negative {
		if y.sign == Positive {
			q = q.Sub(one)
		} else {
			q = q.Add(one)
		}
		m = m.Add(y.Abs())
	}
	return q, m, nil
}

// Div returns the Euclidean quotient of x and y.
func (x Int) Div(y Int) (Int, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns the Euclidean modulus of x and y, in [0, |y|).
func (x Int) Mod(y Int) (Int, error) {
	_, m, err := x.DivMod(y)
	return m, err
}

var one = NewInt(1)
