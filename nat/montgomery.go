// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nat

import (
	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/numerr"
)

// windowBits is the width of the exponent window used by Exp.
const windowBits = 4

// Modulus holds a modulus and the constants derived from it. It is
// immutable once built and safe for concurrent use; build one per batch of
// operations sharing a modulus.
type Modulus struct {
	m  vec
	th Thresholds

	// Montgomery constants, set for odd moduli only.
	odd bool
	k0  Word // -m⁻¹ mod 2^W
	rr  vec  // R² mod m, R = 2^(W*len(m))
}

// NewModulus returns the modular context for m. It fails with
// numerr.ErrDivisionByZero when m == 0.
func NewModulus(m Nat) (*Modulus, error) {
	mv := m.view()
	if len(mv) == 0 {
		return nil, numerr.ErrDivisionByZero
	}
	md := &Modulus{
		m:   vec(nil).set(mv),
		th:  CurrentThresholds(),
		odd: mv[0]&1 == 1,
	}
	if md.odd {
		md.k0 = montgomeryK0(mv[0])
		n := len(mv)
		rr := vec(nil).setBit(nil, uint(2*n*WordBits), 1)
		_, md.rr = divRemVec(rr, md.m, md.th)
	}
	return md, nil
}

// Value returns the modulus.
func (md *Modulus) Value() Nat { return FromWords(md.m) }

// IsOdd reports whether Montgomery reduction is in use.
func (md *Modulus) IsOdd() bool { return md.odd }

// Reduce returns x mod m.
func (md *Modulus) Reduce(x Nat) Nat {
	return fromVec(md.reduce(x.view()))
}

// Mul returns a*b mod m.
func (md *Modulus) Mul(a, b Nat) Nat {
	p := mulVec(a.view(), b.view(), md.th)
	return fromVec(md.reduce(p))
}

// Exp returns x**e mod m. Exp(x, 0) is 1 mod m.
func (md *Modulus) Exp(x, e Nat) Nat {
	if len(md.m) == 1 && md.m[0] == 1 {
		return Nat{}
	}
	ev := e.view()
	if len(ev) == 0 {
		return FromWord(1)
	}
	xv := md.reduce(x.view())
	if len(xv) == 0 {
		return Nat{}
	}
	if md.odd {
		return fromVec(md.expMontgomery(xv, ev))
	}
	return fromVec(md.expWindowed(xv, ev))
}

func (md *Modulus) reduce(x vec) vec {
	if x.cmp(md.m) < 0 {
		return vec(nil).set(x)
	}
	_, r := divRemVec(x, md.m, md.th)
	return r
}

// ─────────────────────────────────────────────────────────────────────────────
// Montgomery Multiplication
// ─────────────────────────────────────────────────────────────────────────────

// montgomeryK0 returns -m0⁻¹ mod 2^W for an odd m0, by Newton iteration on
// the 2-adic inverse.
func montgomeryK0(m0 Word) Word {
	k0 := 2 - m0
	t := m0 - 1
	for i := 1; i < WordBits; i <<= 1 {
		t *= t
		k0 *= t + 1
	}
	return -k0
}

// montgomery computes z mod m = x*y*2^(-n*W) mod m for operands of exactly
// n words (x, y < m). z must have room for n words and must not alias x,
// y or m.
func montgomery(z, x, y, m vec, k0 Word, n int) vec {
	// One iteration of the outer loop of the CIOS method (coarsely
	// integrated operand scanning) per word of y.
	z = z.make(n * 2)
	z.clear()
	var c Word
	for i := 0; i < n; i++ {
		d := y[i]
		c2 := arith.AddMulVVW(z[i:n+i], x, d)
		t := z[i] * k0
		c3 := arith.AddMulVVW(z[i:n+i], m, t)
		cx := c + c2
		cy := cx + c3
		z[n+i] = cy
		if cx < c2 || cy < c3 {
			c = 1
		} else {
			c = 0
		}
	}
	if c != 0 {
		arith.SubVV(z[:n], z[n:], m)
	} else {
		copy(z[:n], z[n:])
	}
	return z[:n]
}

// padded returns x extended with zero words to length n.
func padded(x vec, n int) vec {
	z := make(vec, n)
	copy(z, x)
	return z
}

// expMontgomery returns x**e mod m for an odd m and 0 < x < m, scanning e
// in fixed windows of windowBits from the most significant end.
func (md *Modulus) expMontgomery(x, e vec) vec {
	n := len(md.m)
	m, k0 := md.m, md.k0

	// powers[i] holds x**i in Montgomery form.
	var powers [1 << windowBits]vec
	one := padded(vec(nil).setWord(1), n)
	powers[0] = montgomery(nil, one, padded(md.rr, n), m, k0, n)
	powers[1] = montgomery(nil, padded(x, n), padded(md.rr, n), m, k0, n)
	for i := 2; i < len(powers); i++ {
		powers[i] = montgomery(nil, powers[i-1], powers[1], m, k0, n)
	}

	z := padded(powers[0], n)
	zz := vec(nil).make(n * 2)
	for i := len(e) - 1; i >= 0; i-- {
		yi := e[i]
		for j := 0; j < WordBits; j += windowBits {
			if i != len(e)-1 || j != 0 {
				for range windowBits {
					zz = montgomery(zz, z, z, m, k0, n)
					z, zz = zz, z
				}
			}
			zz = montgomery(zz, z, powers[yi>>(WordBits-windowBits)], m, k0, n)
			z, zz = zz, z
			yi <<= windowBits
		}
	}

	// Leave Montgomery form, then one last conditional subtraction.
	zz = montgomery(zz, z, one, m, k0, n)
	if zz.cmp(m) >= 0 {
		zz = zz.sub(zz, m)
		if zz.cmp(m) >= 0 {
			_, r := divRemVec(zz.norm(), m, md.th)
			return r
		}
	}
	return vec(nil).set(zz.norm())
}

// ─────────────────────────────────────────────────────────────────────────────
// Plain Reduction
// ─────────────────────────────────────────────────────────────────────────────

// expWindowed returns x**e mod m for an even m with division-based
// reduction and the same window scan as expMontgomery.
func (md *Modulus) expWindowed(x, e vec) vec {
	var powers [1 << windowBits]vec
	powers[0] = vec(nil).setWord(1)
	powers[1] = x
	for i := 2; i < len(powers); i++ {
		powers[i] = md.reduce(mulVec(powers[i-1], x, md.th))
	}

	z := vec(nil).setWord(1)
	for i := len(e) - 1; i >= 0; i-- {
		yi := e[i]
		for j := 0; j < WordBits; j += windowBits {
			if len(z) > 0 && !(len(z) == 1 && z[0] == 1) {
				for range windowBits {
					z = md.reduce(sqrVec(z, md.th))
				}
			}
			if w := yi >> (WordBits - windowBits); w != 0 {
				z = md.reduce(mulVec(z, powers[w], md.th))
			}
			yi <<= windowBits
		}
	}
	return z
}
