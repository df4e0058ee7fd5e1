package nat

import (
	"math/big"
	"math/rand/v2"
)

// ─────────────────────────────────────────────────────────────────────────────
// Test Utilities
// ─────────────────────────────────────────────────────────────────────────────

func toBig(x Nat) *big.Int {
	return new(big.Int).SetBits(x.Words())
}

func fromBig(b *big.Int) Nat {
	return FromWords(b.Bits())
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// randomNat returns a value of exactly words words.
func randomNat(r *rand.Rand, words int) Nat {
	if words == 0 {
		return Nat{}
	}
	ws := make([]Word, words)
	for i := range ws {
		ws[i] = Word(r.Uint64())
	}
	if ws[words-1] == 0 {
		ws[words-1] = 1
	}
	return FromWords(ws)
}

// forcedThresholds covers every multiplication and division path.
var forcedThresholds = []struct {
	name string
	th   Thresholds
}{
	{"schoolbook", ForceAlgorithm(DefaultThresholds(), Schoolbook)},
	{"karatsuba", ForceAlgorithm(DefaultThresholds(), Karatsuba)},
	{"toom3", ForceAlgorithm(DefaultThresholds(), Toom3)},
	{"default", DefaultThresholds()},
	{"small-newton", Thresholds{Karatsuba: 4, Toom3: 9, Newton: 2}},
}
