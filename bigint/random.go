package bigint

import (
	"math/rand/v2"

	"github.com/agbru/bignum/nat"
	"github.com/agbru/bignum/numerr"
)

// Random returns a uniformly distributed value in [0, 2**bits).
func Random(r *rand.Rand, bits uint) Int {
	return Int{mag: nat.Random(r, bits)}
}

// RandomBelow returns a uniformly distributed value in [0, limit). It fails
// with numerr.ErrDomain when limit <= 0.
func RandomBelow(r *rand.Rand, limit Int) (Int, error) {
	if limit.Signum() <= 0 {
		return Int{}, numerr.ErrDomain
	}
	return Int{mag: nat.RandomBelow(r, limit.mag)}, nil
}
