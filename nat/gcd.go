package nat

import (
	"math/bits"

	"github.com/agbru/bignum/numerr"
)

// GCD returns the greatest common divisor of a and b. GCD(a, 0) = a and
// GCD(0, 0) = 0.
func GCD(a, b Nat) Nat {
	return fromVec(gcdVec(a.view(), b.view(), CurrentThresholds()))
}

// LCM returns the least common multiple of a and b, or 0 when either is 0.
func LCM(a, b Nat) Nat {
	if a.IsZero() || b.IsZero() {
		return Nat{}
	}
	g := GCD(a, b)
	q, _ := a.Div(g)
	return q.Mul(b)
}

// gcdVec computes gcd(a, b) with the binary algorithm. When the operands
// differ in length by more than one word, a Euclidean step a mod b first
// brings them to comparable size.
func gcdVec(a, b vec, th Thresholds) vec {
	switch {
	case len(a) == 0:
		return vec(nil).set(b)
	case len(b) == 0:
		return vec(nil).set(a)
	case len(a) == 1 && len(b) == 1:
		return vec(nil).setWord(gcdWord(a[0], b[0]))
	}
	th = th.normalized()

	// gcd(2^i*a', 2^j*b') = 2^min(i,j) * gcd(a', b')
	za, zb := a.trailingZeroBits(), b.trailingZeroBits()
	k := min(za, zb)
	u := vec(nil).shr(a, za)
	v := vec(nil).shr(b, zb)

	for {
		// u and v are odd.
		switch c := u.cmp(v); {
		case c == 0:
			return u.shl(u, k)
		case c < 0:
			u, v = v, u
		}
		if len(u) > len(v)+1 {
			_, r := divRemVec(u, v, th)
			if len(r) == 0 {
				return v.shl(v, k)
			}
			u = r.shr(r, r.trailingZeroBits())
			continue
		}
		if len(u) == 1 {
			g := vec(nil).setWord(gcdWord(u[0], v[0]))
			return g.shl(g, k)
		}
		u = u.sub(u, v)
		u = u.shr(u, u.trailingZeroBits())
	}
}

// gcdWord is the binary GCD of two words.
func gcdWord(a, b Word) Word {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	x, y := uint(a), uint(b)
	k := bits.TrailingZeros(x | y)
	x >>= bits.TrailingZeros(x)
	for y != 0 {
		y >>= bits.TrailingZeros(y)
		if x > y {
			x, y = y, x
		}
		y -= x
	}
	return Word(x << k)
}

// Inverse returns the x in [0, m) with a*x ≡ 1 (mod m). It fails with
// numerr.ErrNotInvertible when gcd(a, m) != 1.
func (md *Modulus) Inverse(a Nat) (Nat, error) {
	// Euclid on (m, a mod m), tracking the cofactor of a modulo m.
	r0, r1 := md.m, md.reduce(a.view())
	t0, t1 := vec(nil), vec(nil).setWord(1)
	for len(r1) > 0 {
		q, r := divRemVec(r0, r1, md.th)
		r0, r1 = r1, r
		qt := md.reduce(mulVec(q, t1, md.th))
		next := vec(nil).add(t0, md.m)
		next = md.reduce(next.sub(next, qt))
		t0, t1 = t1, next
	}
	if len(r0) != 1 || r0[0] != 1 {
		return Nat{}, numerr.ErrNotInvertible
	}
	return fromVec(md.reduce(t0)), nil
}
