package bigint

import (
	"github.com/agbru/bignum/nat"
)

// GCD returns gcd(|a|, |b|), which is non-negative. GCD(0, 0) = 0.
func GCD(a, b Int) Int {
	return Int{mag: nat.GCD(a.mag, b.mag)}
}

// LCM returns lcm(|a|, |b|), or 0 when either operand is 0.
func LCM(a, b Int) Int {
	return Int{mag: nat.LCM(a.mag, b.mag)}
}

// ExtendedGCD returns g = gcd(a, b) and Bézout coefficients s, t with
// a*s + b*t = g. The coefficients are those of the Euclidean remainder
// sequence on |a| and |b|, with signs adjusted to the signs of a and b:
//
//	ExtendedGCD(35, 15) = (5, 1, -2)
//	ExtendedGCD(12, 18) = (6, -1, 1)
//	ExtendedGCD(a, 0)   = (|a|, sign(a), 0)
//	ExtendedGCD(0, 0)   = (0, 0, 0)
func ExtendedGCD(a, b Int) (g, s, t Int) {
	if a.IsZero() && b.IsZero() {
		return Int{}, Int{}, Int{}
	}
	r0, r1 := a.Abs(), b.Abs()
	s0, s1 := one, Int{}
	t0, t1 := Int{}, one
	for !r1.IsZero() {
		q, r, _ := r0.QuoRem(r1)
		r0, r1 = r1, r
		s0, s1 = s1, s0.Sub(q.Mul(s1))
		t0, t1 = t1, t0.Sub(q.Mul(t1))
	}
	if a.sign == Negative {
		s0 = s0.Neg()
	}
	if b.sign == Negative {
		t0 = t0.Neg()
	}
	return r0, s0, t0
}

// ModInverse returns the x in [0, |n|) with a*x ≡ 1 (mod n). It fails with
// numerr.ErrDivisionByZero when n == 0 and numerr.ErrNotInvertible when
// gcd(a, n) != 1.
func ModInverse(a, n Int) (Int, error) {
	md, err := NewModulus(n)
	if err != nil {
		return Int{}, err
	}
	return md.Inverse(a)
}

// ModPow returns b**e mod |m| in [0, |m|). A negative b is reduced first
// and a negative e uses the modular inverse of b. It fails with
// numerr.ErrDivisionByZero when m == 0.
func ModPow(b, e, m Int) (Int, error) {
	md, err := NewModulus(m)
	if err != nil {
		return Int{}, err
	}
	return md.Exp(b, e)
}

// Modulus is a modular context built once for a batch of operations with
// the same modulus |m|. It is immutable and safe for concurrent use.
type Modulus struct {
	m  Int
	md *nat.Modulus
}

// NewModulus returns the context for |m|. It fails with
// numerr.ErrDivisionByZero when m == 0.
func NewModulus(m Int) (*Modulus, error) {
	md, err := nat.NewModulus(m.mag)
	if err != nil {
		return nil, err
	}
	return &Modulus{m: m.Abs(), md: md}, nil
}

// Value returns |m|.
func (md *Modulus) Value() Int { return md.m }

// Reduce returns x mod |m| in [0, |m|).
func (md *Modulus) Reduce(x Int) Int {
	r := md.md.Reduce(x.mag)
	if x.sign == Negative && !r.IsZero() {
		r, _ = md.m.mag.Sub(r)
	}
	return Int{mag: r}
}

// Mul returns a*b mod |m|.
func (md *Modulus) Mul(a, b Int) Int {
	return md.Reduce(a.Mul(b))
}

// Inverse returns the inverse of x modulo |m|.
func (md *Modulus) Inverse(x Int) (Int, error) {
	inv, err := md.md.Inverse(md.Reduce(x).mag)
	if err != nil {
		return Int{}, err
	}
	return Int{mag: inv}, nil
}

// Exp returns x**e mod |m|. A negative e inverts x first and fails with
// numerr.ErrNotInvertible when that is impossible.
func (md *Modulus) Exp(x, e Int) (Int, error) {
	base := md.Reduce(x)
	if e.sign == Negative {
		inv, err := md.Inverse(base)
		if err != nil {
			return Int{}, err
		}
		base = inv
	}
	return Int{mag: md.md.Exp(base.mag, e.mag)}, nil
}
