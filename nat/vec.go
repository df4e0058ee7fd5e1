// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nat

import (
	"github.com/agbru/bignum/internal/arith"
)

// vec is the mutable working form of a magnitude: little-endian words,
// normalized unless stated otherwise. Operations of the form z.op(x, y)
// reuse z's storage when it is large enough and return the result. Unless
// documented, z must not alias x or y.
type vec []Word

func (z vec) norm() vec {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

func (z vec) make(n int) vec {
	if n <= cap(z) {
		return z[:n]
	}
	if n == 1 {
		return make(vec, 1)
	}
	return make(vec, n, allocCap(n))
}

func (z vec) clear() {
	for i := range z {
		z[i] = 0
	}
}

func (z vec) set(x vec) vec {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z vec) setWord(x Word) vec {
	if x == 0 {
		return z[:0]
	}
	z = z.make(1)
	z[0] = x
	return z
}

func (z vec) setUint64(x uint64) vec {
	if w := Word(x); uint64(w) == x {
		return z.setWord(w)
	}
	z = z.make(2)
	z[0], z[1] = Word(x), Word(x>>32)
	return z
}

func (x vec) cmp(y vec) (r int) {
	m, n := len(x), len(y)
	if m != n || m == 0 {
		switch {
		case m < n:
			r = -1
		case m > n:
			r = 1
		}
		return
	}
	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}
	switch {
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return
}

// ─────────────────────────────────────────────────────────────────────────────
// Addition and subtraction
// ─────────────────────────────────────────────────────────────────────────────

// add sets z = x + y. z may alias x or y.
func (z vec) add(x, y vec) vec {
	m, n := len(x), len(y)
	switch {
	case m < n:
		return z.add(y, x)
	case m == 0:
		return z[:0]
	case n == 0:
		return z.set(x)
	}
	z = z.make(m + 1)
	c := arith.AddVV(z[0:n], x, y)
	if m > n {
		c = arith.AddVW(z[n:m], x[n:], c)
	}
	z[m] = c
	return z.norm()
}

// sub sets z = x - y. It panics when x < y. z may alias x or y.
func (z vec) sub(x, y vec) vec {
	m, n := len(x), len(y)
	switch {
	case m < n:
		panic("nat: underflow")
	case m == 0:
		return z[:0]
	case n == 0:
		return z.set(x)
	}
	z = z.make(m)
	c := arith.SubVV(z[0:n], x, y)
	if m > n {
		c = arith.SubVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("nat: underflow")
	}
	return z.norm()
}

// addWord sets z = x + y.
func (z vec) addWord(x vec, y Word) vec {
	m := len(x)
	if m == 0 {
		return z.setWord(y)
	}
	z = z.make(m + 1)
	z[m] = arith.AddVW(z[0:m], x, y)
	return z.norm()
}

// subWord sets z = x - y. It panics when x < y.
func (z vec) subWord(x vec, y Word) vec {
	m := len(x)
	if m == 0 {
		if y != 0 {
			panic("nat: underflow")
		}
		return z[:0]
	}
	z = z.make(m)
	if arith.SubVW(z, x, y) != 0 {
		panic("nat: underflow")
	}
	return z.norm()
}

// absDiff sets z = |x - y| and reports whether x < y.
func (z vec) absDiff(x, y vec) (vec, bool) {
	if x.cmp(y) < 0 {
		return z.sub(y, x), true
	}
	return z.sub(x, y), false
}

// addAt adds x into z starting at word i, propagating the carry through the
// rest of z. z is not normalized; the caller guarantees the sum fits.
func addAt(z, x vec, i int) {
	if n := len(x); n > 0 {
		if c := arith.AddVV(z[i:i+n], z[i:], x); c != 0 {
			j := i + n
			if j < len(z) {
				c = arith.AddVW(z[j:], z[j:], c)
			}
			if c != 0 {
				panic("nat: carry out of addAt")
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Word multiplication
// ─────────────────────────────────────────────────────────────────────────────

// mulAddWW sets z = x*y + r.
func (z vec) mulAddWW(x vec, y, r Word) vec {
	m := len(x)
	if m == 0 || y == 0 {
		return z.setWord(r)
	}
	z = z.make(m + 1)
	z[m] = arith.MulAddVWW(z[0:m], x, y, r)
	return z.norm()
}

// divW sets z = x / y and returns the remainder. z may alias x.
func (z vec) divW(x vec, y Word) (q vec, r Word) {
	m := len(x)
	switch {
	case y == 0:
		panic("nat: division by zero")
	case y == 1:
		q = z.set(x)
		return
	case m == 0:
		q = z[:0]
		return
	}
	z = z.make(m)
	r = arith.DivWVW(z, 0, x, y)
	q = z.norm()
	return
}

// ─────────────────────────────────────────────────────────────────────────────
// Shifts
// ─────────────────────────────────────────────────────────────────────────────

// shl sets z = x << s.
func (z vec) shl(x vec, s uint) vec {
	if s == 0 {
		if same(z, x) {
			return z
		}
		if !alias(z, x) {
			return z.set(x)
		}
	}
	m := len(x)
	if m == 0 {
		return z[:0]
	}
	n := m + int(s/WordBits)
	z = z.make(n + 1)
	z[n] = arith.ShlVU(z[n-m:n], x, s%WordBits)
	z[0 : n-m].clear()
	return z.norm()
}

// shr sets z = x >> s.
func (z vec) shr(x vec, s uint) vec {
	if s == 0 {
		if same(z, x) {
			return z
		}
		if !alias(z, x) {
			return z.set(x)
		}
	}
	m := len(x)
	n := m - int(s/WordBits)
	if n <= 0 {
		return z[:0]
	}
	z = z.make(n)
	arith.ShrVU(z, x[m-n:], s%WordBits)
	return z.norm()
}

// ─────────────────────────────────────────────────────────────────────────────
// Bits
// ─────────────────────────────────────────────────────────────────────────────

func (x vec) bitLen() int {
	if i := len(x) - 1; i >= 0 {
		return i*WordBits + arith.Len(x[i])
	}
	return 0
}

func (x vec) trailingZeroBits() uint {
	for i, w := range x {
		if w != 0 {
			return uint(i)*WordBits + arith.TrailingZeros(w)
		}
	}
	return 0
}

func (x vec) bit(i uint) uint {
	j := i / WordBits
	if j >= uint(len(x)) {
		return 0
	}
	return uint(x[j] >> (i % WordBits) & 1)
}

// setBit sets z = x with bit i set to b.
func (z vec) setBit(x vec, i uint, b uint) vec {
	j := int(i / WordBits)
	m := Word(1) << (i % WordBits)
	n := len(x)
	switch b {
	case 0:
		z = z.make(n)
		copy(z, x)
		if j >= n {
			return z
		}
		z[j] &^= m
		return z.norm()
	case 1:
		if j >= n {
			z = z.make(j + 1)
			z[n:].clear()
		} else {
			z = z.make(n)
		}
		copy(z, x)
		z[j] |= m
		return z
	}
	panic("nat: bit value not 0 or 1")
}

// isPow2 reports whether x is a power of two.
func (x vec) isPow2() bool {
	n := len(x)
	if n == 0 {
		return false
	}
	for _, w := range x[:n-1] {
		if w != 0 {
			return false
		}
	}
	top := x[n-1]
	return top&(top-1) == 0
}

// bitsAt returns the n <= WordBits bits of x starting at bit i.
func (x vec) bitsAt(i uint, n uint) Word {
	j := i / WordBits
	if j >= uint(len(x)) {
		return 0
	}
	s := i % WordBits
	w := x[j] >> s
	if s+n > WordBits && j+1 < uint(len(x)) {
		w |= x[j+1] << (WordBits - s)
	}
	if n < WordBits {
		w &= Word(1)<<n - 1
	}
	return w
}

func (z vec) and(x, y vec) vec {
	n := min(len(x), len(y))
	z = z.make(n)
	for i := range n {
		z[i] = x[i] & y[i]
	}
	return z.norm()
}

func (z vec) andNot(x, y vec) vec {
	m, n := len(x), len(y)
	if n > m {
		n = m
	}
	z = z.make(m)
	for i := range n {
		z[i] = x[i] &^ y[i]
	}
	copy(z[n:m], x[n:m])
	return z.norm()
}

func (z vec) or(x, y vec) vec {
	m, n := len(x), len(y)
	s := x
	if m < n {
		n, m = m, n
		s = y
	}
	z = z.make(m)
	for i := range n {
		z[i] = x[i] | y[i]
	}
	copy(z[n:m], s[n:m])
	return z.norm()
}

func (z vec) xor(x, y vec) vec {
	m, n := len(x), len(y)
	s := x
	if m < n {
		n, m = m, n
		s = y
	}
	z = z.make(m)
	for i := range n {
		z[i] = x[i] ^ y[i]
	}
	copy(z[n:m], s[n:m])
	return z.norm()
}

// ─────────────────────────────────────────────────────────────────────────────
// Aliasing
// ─────────────────────────────────────────────────────────────────────────────

// alias reports whether x and y share the same base array.
func alias(x, y vec) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// same reports whether x and y are the same slice.
func same(x, y vec) bool {
	return len(x) == len(y) && len(x) > 0 && &x[0] == &y[0]
}
