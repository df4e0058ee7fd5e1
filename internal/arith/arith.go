// Copyright 2010 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arith provides the word-level vector primitives every magnitude
// operation is built from. All functions operate on caller-provided slices and
// never allocate. Carries and borrows are returned as a Word in {0, 1}, except
// for the multiply-accumulate forms which return a full carry word.
package arith

import (
	"math/big"
	"math/bits"
)

// Word is a single digit of a magnitude, identical to big.Word so that
// values can be exchanged with math/big without conversion.
type Word = big.Word

const (
	// W is the size of a Word in bits.
	W = bits.UintSize
	// MaxWord is the largest value a Word can hold.
	MaxWord = ^Word(0)
)

// AddWW returns x + y + c and the carry out. c must be 0 or 1.
func AddWW(x, y, c Word) (z, carry Word) {
	s, cc := bits.Add(uint(x), uint(y), uint(c))
	return Word(s), Word(cc)
}

// SubWW returns x - y - b and the borrow out. b must be 0 or 1.
func SubWW(x, y, b Word) (z, borrow Word) {
	d, bb := bits.Sub(uint(x), uint(y), uint(b))
	return Word(d), Word(bb)
}

// MulWW returns the double-word product x*y as (hi, lo).
func MulWW(x, y Word) (hi, lo Word) {
	h, l := bits.Mul(uint(x), uint(y))
	return Word(h), Word(l)
}

// mulAddWWW returns x*y + c as (hi, lo). It cannot overflow.
func mulAddWWW(x, y, c Word) (hi, lo Word) {
	h, l := bits.Mul(uint(x), uint(y))
	var cc uint
	l, cc = bits.Add(l, uint(c), 0)
	return Word(h + cc), Word(l)
}

// DivWW returns the quotient and remainder of (u1:u0) / y.
// The caller must guarantee u1 < y.
func DivWW(u1, u0, y Word) (q, r Word) {
	qq, rr := bits.Div(uint(u1), uint(u0), uint(y))
	return Word(qq), Word(rr)
}

// AddVV computes z = x + y element-wise over len(z) words and returns the carry.
func AddVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		zi, cc := bits.Add(uint(x[i]), uint(y[i]), uint(c))
		z[i] = Word(zi)
		c = Word(cc)
	}
	return c
}

// SubVV computes z = x - y element-wise over len(z) words and returns the borrow.
func SubVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		zi, cc := bits.Sub(uint(x[i]), uint(y[i]), uint(c))
		z[i] = Word(zi)
		c = Word(cc)
	}
	return c
}

// AddVW computes z = x + y where y is a single word, and returns the carry.
func AddVW(z, x []Word, y Word) (c Word) {
	c = y
	i := 0
	for ; i < len(z) && i < len(x); i++ {
		if c == 0 {
			break
		}
		zi, cc := bits.Add(uint(x[i]), uint(c), 0)
		z[i] = Word(zi)
		c = Word(cc)
	}
	if i < len(z) && i < len(x) && &z[i] != &x[i] {
		copy(z[i:], x[i:])
	}
	return c
}

// SubVW computes z = x - y where y is a single word, and returns the borrow.
func SubVW(z, x []Word, y Word) (c Word) {
	c = y
	i := 0
	for ; i < len(z) && i < len(x); i++ {
		if c == 0 {
			break
		}
		zi, cc := bits.Sub(uint(x[i]), uint(c), 0)
		z[i] = Word(zi)
		c = Word(cc)
	}
	if i < len(z) && i < len(x) && &z[i] != &x[i] {
		copy(z[i:], x[i:])
	}
	return c
}

// ShlVU computes z = x << s for 0 <= s < W and returns the bits shifted out
// of the top word. len(z) must equal len(x); z may alias x.
func ShlVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	s &= W - 1
	ŝ := W - s
	c = x[len(z)-1] >> ŝ
	for i := len(z) - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>ŝ
	}
	z[0] = x[0] << s
	return c
}

// ShrVU computes z = x >> s for 0 <= s < W and returns the bits shifted out
// of the bottom word, left-aligned. len(z) must equal len(x); z may alias x.
func ShrVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	s &= W - 1
	ŝ := W - s
	c = x[0] << ŝ
	for i := 1; i < len(z); i++ {
		z[i-1] = x[i-1]>>s | x[i]<<ŝ
	}
	z[len(z)-1] = x[len(z)-1] >> s
	return c
}

// MulAddVWW computes z = x*y + r and returns the carry word.
func MulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return c
}

// AddMulVVW computes z += x*y where y is a single word, and returns the carry word.
func AddMulVVW(z, x []Word, y Word) (c Word) {
	for i := 0; i < len(z) && i < len(x); i++ {
		z1, z0 := mulAddWWW(x[i], y, z[i])
		lo, cc := bits.Add(uint(z0), uint(c), 0)
		c, z[i] = Word(cc), Word(lo)
		c += z1
	}
	return c
}

// SubMulVVW computes z -= x*y where y is a single word, and returns the
// borrow word that must be subtracted from the next higher word of z.
func SubMulVVW(z, x []Word, y Word) (c Word) {
	for i := 0; i < len(z) && i < len(x); i++ {
		hi, lo := mulAddWWW(x[i], y, c)
		d, b := bits.Sub(uint(z[i]), uint(lo), 0)
		z[i] = Word(d)
		c = hi + Word(b)
	}
	return c
}

// DivWVW computes z = (xn:x) / y and returns the remainder.
// The caller must guarantee xn < y and len(z) == len(x).
func DivWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		q, rr := bits.Div(uint(r), uint(x[i]), uint(y))
		z[i], r = Word(q), Word(rr)
	}
	return r
}

// ModVW returns x mod y without producing a quotient.
func ModVW(x []Word, y Word) (r Word) {
	for i := len(x) - 1; i >= 0; i-- {
		r = Word(bits.Rem(uint(r), uint(x[i]), uint(y)))
	}
	return r
}

// LeadingZeros returns the number of leading zero bits of x.
func LeadingZeros(x Word) uint {
	return uint(bits.LeadingZeros(uint(x)))
}

// TrailingZeros returns the number of trailing zero bits of x.
func TrailingZeros(x Word) uint {
	return uint(bits.TrailingZeros(uint(x)))
}

// Len returns the minimum number of bits required to represent x.
func Len(x Word) int {
	return bits.Len(uint(x))
}
