// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nat

import (
	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/internal/pool"
	"github.com/agbru/bignum/numerr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Public API
// ─────────────────────────────────────────────────────────────────────────────

// DivRem returns the quotient and remainder of x / y, with 0 <= r < y.
// It fails with numerr.ErrDivisionByZero when y == 0.
func (x Nat) DivRem(y Nat) (q, r Nat, err error) {
	return DivRemWith(x, y, CurrentThresholds())
}

// DivRemWith is DivRem with explicit thresholds.
func DivRemWith(x, y Nat, th Thresholds) (q, r Nat, err error) {
	yv := y.view()
	if len(yv) == 0 {
		return Nat{}, Nat{}, numerr.ErrDivisionByZero
	}
	qv, rv := divRemVec(x.view(), yv, th.normalized())
	return fromVec(qv), fromVec(rv), nil
}

// Div returns x / y rounded down.
func (x Nat) Div(y Nat) (Nat, error) {
	q, _, err := x.DivRem(y)
	return q, err
}

// Rem returns x mod y.
func (x Nat) Rem(y Nat) (Nat, error) {
	if yv := y.view(); len(yv) == 1 {
		return FromWord(arith.ModVW(x.view(), yv[0])), nil
	}
	_, r, err := x.DivRem(y)
	return r, err
}

// DivRemWord returns the quotient and remainder of x / w.
func (x Nat) DivRemWord(w Word) (Nat, Word, error) {
	if w == 0 {
		return Nat{}, 0, numerr.ErrDivisionByZero
	}
	q, r := vec(nil).divW(x.view(), w)
	return fromVec(q), r, nil
}

// DivExact returns x / y for a y known to divide x. It panics when the
// division leaves a remainder.
func (x Nat) DivExact(y Nat) (Nat, error) {
	q, r, err := x.DivRem(y)
	if err != nil {
		return Nat{}, err
	}
	if !r.IsZero() {
		panic("nat: DivExact with nonzero remainder")
	}
	return q, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Dispatch
// ─────────────────────────────────────────────────────────────────────────────

// divRemVec returns fresh vectors q and r with u = q*v + r, 0 <= r < v.
// v must be nonzero and th normalized.
func divRemVec(u, v vec, th Thresholds) (q, r vec) {
	switch {
	case len(v) == 0:
		panic("nat: division by zero")
	case u.cmp(v) < 0:
		return nil, vec(nil).set(u)
	case len(v) == 1:
		var rw Word
		q, rw = vec(nil).divW(u, v[0])
		return q, vec(nil).setWord(rw)
	case v.isPow2():
		s := v.trailingZeroBits()
		return vec(nil).shr(u, s), vec(nil).trunc(u, s)
	case len(v) >= th.Newton:
		return divNewton(u, v, th)
	default:
		return divKnuth(u, v)
	}
}

// trunc sets z = x mod 2^s.
func (z vec) trunc(x vec, s uint) vec {
	n := int((s + WordBits - 1) / WordBits)
	if n >= len(x) {
		return z.set(x)
	}
	z = z.make(n)
	copy(z, x[:n])
	if b := s % WordBits; b != 0 {
		z[n-1] &= Word(1)<<b - 1
	}
	return z.norm()
}

// ─────────────────────────────────────────────────────────────────────────────
// Knuth Algorithm D
// ─────────────────────────────────────────────────────────────────────────────

// divKnuth divides u by a divisor of at least two words using Knuth's
// algorithm D (TAOCP vol. 2, 4.3.1). len(u) >= len(v) >= 2.
func divKnuth(uIn, vIn vec) (q, r vec) {
	n := len(vIn)
	m := len(uIn) - n

	// Normalize so that the top word of v has its high bit set.
	shift := arith.LeadingZeros(vIn[n-1])
	v := vec(pool.AcquireUnsafe(n))
	defer pool.Release(v)
	arith.ShlVU(v, vIn, shift)

	u := vec(pool.AcquireUnsafe(len(uIn) + 1))
	defer pool.Release(u)
	u[len(uIn)] = arith.ShlVU(u[:len(uIn)], uIn, shift)

	q = vec(nil).make(m + 1)
	vn1, vn2 := v[n-1], v[n-2]
	for j := m; j >= 0; j-- {
		// D3: estimate qhat from the top two words of the current
		// remainder and refine it with the second divisor word.
		qhat := arith.MaxWord
		ujn := u[j+n]
		if ujn != vn1 {
			var rhat Word
			qhat, rhat = arith.DivWW(ujn, u[j+n-1], vn1)
			x1, x2 := arith.MulWW(qhat, vn2)
			ujn2 := u[j+n-2]
			for greaterThan(x1, x2, rhat, ujn2) {
				qhat--
				prev := rhat
				rhat += vn1
				if rhat < prev {
					break
				}
				x1, x2 = arith.MulWW(qhat, vn2)
			}
		}

		// D4: multiply and subtract.
		c := arith.SubMulVVW(u[j:j+n], v, qhat)
		var b Word
		u[j+n], b = arith.SubWW(ujn, c, 0)

		// D6: add back while the partial remainder is negative.
		if b != 0 {
			for {
				qhat--
				c := arith.AddVV(u[j:j+n], u[j:j+n], v)
				var cc Word
				u[j+n], cc = arith.AddWW(u[j+n], c, 0)
				if cc != 0 {
					break
				}
			}
		}
		q[j] = qhat
	}

	r = vec(nil).make(n)
	arith.ShrVU(r, u[:n], shift)
	return q.norm(), r.norm()
}

// greaterThan reports whether the two-word value (x1:x2) exceeds (y1:y2).
func greaterThan(x1, x2, y1, y2 Word) bool {
	return x1 > y1 || x1 == y1 && x2 > y2
}
