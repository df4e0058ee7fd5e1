package bigfloat

import (
	"math/big"
	"math/rand/v2"

	"github.com/agbru/bignum/bigint"
	"github.com/agbru/bignum/nat"
)

// ─────────────────────────────────────────────────────────────────────────────
// Test Utilities
// ─────────────────────────────────────────────────────────────────────────────

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func bigOf(x bigint.Int) *big.Int {
	b := new(big.Int).SetBits(x.Mag().Words())
	if x.IsNeg() {
		b.Neg(b)
	}
	return b
}

// toRat returns the exact value of x.
func toRat(x Float) *big.Rat {
	r := new(big.Rat).SetInt(bigOf(x.Mant()))
	p := new(big.Int).Exp(big.NewInt(int64(x.Base())), big.NewInt(int64(abs(x.Exp()))), nil)
	if x.Exp() >= 0 {
		return r.Mul(r, new(big.Rat).SetInt(p))
	}
	return r.Quo(r, new(big.Rat).SetInt(p))
}

// randomFloat returns a float with up to digits base digits and an exponent
// in [-spread, spread].
func randomFloat(r *rand.Rand, base nat.Word, digits, spread int) Float {
	bits := uint(r.IntN(digits*bitsPerDigit(base) + 1))
	m := bigint.Random(r, bits)
	if r.IntN(2) == 0 {
		m = m.Neg()
	}
	f, _ := New(m, r.IntN(2*spread+1)-spread, base, Context{})
	return f
}

func bitsPerDigit(base nat.Word) int {
	n := 0
	for b := uint(base); b > 1; b >>= 1 {
		n++
	}
	return n
}

func mustParse(s string, base nat.Word, prec uint) Float {
	return MustParse(s, base, Context{Precision: prec})
}
