package bigfloat

import (
	"math/bits"

	"github.com/agbru/bignum/bigint"
	"github.com/agbru/bignum/nat"
)

// ─────────────────────────────────────────────────────────────────────────────
// Digit Helpers
// ─────────────────────────────────────────────────────────────────────────────

// baseShift returns k when base == 2**k, and 0 otherwise.
func baseShift(base nat.Word) uint {
	if base&(base-1) != 0 {
		return 0
	}
	return uint(bits.TrailingZeros(uint(base)))
}

// digitLen returns the number of base digits of m, 0 for m == 0.
func digitLen(m nat.Nat, base nat.Word) uint {
	if m.IsZero() {
		return 0
	}
	if k := baseShift(base); k > 0 {
		return (uint(m.BitLen()) + k - 1) / k
	}
	e, _ := nat.ILog(m, nat.FromWord(base))
	return e + 1
}

// powBase returns base**n.
func powBase(base nat.Word, n uint) nat.Nat {
	if k := baseShift(base); k > 0 {
		return nat.FromWord(1).Lsh(n * k)
	}
	return nat.FromWord(base).Pow(n)
}

// shiftUp returns m × base**n.
func shiftUp(m nat.Nat, n uint, base nat.Word) nat.Nat {
	if n == 0 || m.IsZero() {
		return m
	}
	if k := baseShift(base); k > 0 {
		return m.Lsh(n * k)
	}
	return m.Mul(powBase(base, n))
}

// splitDigits splits m into m = hi × base**n + lo.
func splitDigits(m nat.Nat, n uint, base nat.Word) (hi, lo nat.Nat) {
	if n == 0 {
		return m, nat.Nat{}
	}
	if k := baseShift(base); k > 0 {
		hi = m.Rsh(n * k)
		lo, _ = m.Sub(hi.Lsh(n * k))
		return hi, lo
	}
	hi, lo, _ = m.DivRem(powBase(base, n))
	return hi, lo
}

// trimZeros removes trailing zero digits from m and returns how many were
// removed.
func trimZeros(m nat.Nat, base nat.Word) (nat.Nat, uint) {
	if m.IsZero() {
		return m, 0
	}
	if k := baseShift(base); k > 0 {
		n := m.TrailingZeros() / k
		return m.Rsh(n * k), n
	}

	// Strip whole word-sized powers of base first, then single digits.
	chunk, j := base, uint(1)
	for {
		hi, lo := bits.Mul(uint(chunk), uint(base))
		if hi != 0 {
			break
		}
		chunk, j = nat.Word(lo), j+1
	}
	var n uint
	for _, step := range [...]struct {
		d nat.Word
		k uint
	}{{chunk, j}, {base, 1}} {
		for {
			q, r, _ := m.DivRemWord(step.d)
			if r != 0 {
				break
			}
			m, n = q, n+step.k
		}
	}
	return m, n
}

// ─────────────────────────────────────────────────────────────────────────────
// Rounding
// ─────────────────────────────────────────────────────────────────────────────

// round returns ±(mag + num/den) × base**exp rounded to ctx, with
// 0 <= num < den. den is zero when mag is the exact value.
func (ctx Context) round(neg bool, mag nat.Nat, exp int, base nat.Word, num, den nat.Nat) (Float, Accuracy) {
	n := digitLen(mag, base)
	if den.IsZero() {
		if ctx.Precision == 0 || n <= ctx.Precision {
			return makeFloat(neg, mag, exp, base, ctx), Exact
		}
		den = nat.FromWord(1)
	} else if ctx.Precision == 0 {
		panic("bigfloat: inexact result at unbounded precision")
	}

	var drop uint
	if n > ctx.Precision {
		drop = n - ctx.Precision
	}
	hi, lo := splitDigits(mag, drop, base)
	rest := lo.Mul(den).Add(num)
	if rest.IsZero() {
		return makeFloat(neg, hi, exp+int(drop), base, ctx), Exact
	}
	unit := shiftUp(den, drop, base)
	half := rest.Lsh(1).Cmp(unit)
	_, last, _ := hi.DivRemWord(base)

	acc := Below
	if ctx.Rounding.roundUp(neg, last&1 == 1, half) {
		hi = hi.AddWord(1)
		acc = Above
	}
	if neg {
		acc = -acc
	}
	return makeFloat(neg, hi, exp+int(drop), base, ctx), acc
}

// makeFloat builds a normalized float: the mantissa has no trailing zero
// digit and zero has exponent 0.
func makeFloat(neg bool, mag nat.Nat, exp int, base nat.Word, ctx Context) Float {
	if mag.IsZero() {
		return Float{base: base, ctx: ctx}
	}
	mag, n := trimZeros(mag, base)
	s := bigint.Positive
	if neg {
		s = bigint.Negative
	}
	return Float{mant: bigint.FromParts(s, mag), exp: exp + int(n), base: base, ctx: ctx}
}
