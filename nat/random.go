package nat

import (
	"math/rand/v2"
)

// Random returns a uniformly distributed value in [0, 2**bits).
func Random(r *rand.Rand, bits uint) Nat {
	if bits == 0 {
		return Nat{}
	}
	n := int((bits + WordBits - 1) / WordBits)
	z := make(vec, n)
	for i := range z {
		z[i] = Word(r.Uint64())
	}
	if rem := bits % WordBits; rem != 0 {
		z[n-1] &= Word(1)<<rem - 1
	}
	return fromVec(z.norm())
}

// RandomBelow returns a uniformly distributed value in [0, limit). It
// panics when limit is zero.
func RandomBelow(r *rand.Rand, limit Nat) Nat {
	if limit.IsZero() {
		panic("nat: RandomBelow with zero limit")
	}
	bits := uint(limit.BitLen())
	for {
		// Rejection sampling accepts with probability above one half.
		z := Random(r, bits)
		if z.Cmp(limit) < 0 {
			return z
		}
	}
}
