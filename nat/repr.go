package nat

import (
	"github.com/agbru/bignum/internal/arith"
)

// Word is a single digit of a magnitude.
type Word = arith.Word

const (
	// WordBits is the width of a Word in bits.
	WordBits = arith.W
	// InlineWords is the largest magnitude, in words, stored without a heap
	// allocation.
	InlineWords = 2
)

// Nat is an unsigned integer of unbounded size. The zero value is 0.
//
// The words are stored little-endian and normalized: the most significant
// word is nonzero, and zero has no words at all.
type Nat struct {
	small [InlineWords]Word
	n     int // words used in small; meaningless when large != nil
	large vec // len(large) > InlineWords when set
}

// ─────────────────────────────────────────────────────────────────────────────
// Construction
// ─────────────────────────────────────────────────────────────────────────────

// fromVec wraps the normalized vector z. Small values are copied inline;
// large ones are kept, or shrunk when z carries too much spare capacity.
// The caller must not use z afterwards.
func fromVec(z vec) Nat {
	z = z.norm()
	if len(z) <= InlineWords {
		var x Nat
		x.n = copy(x.small[:], z)
		return x
	}
	if cap(z) > shrinkLimit(len(z)) {
		s := make(vec, len(z), allocCap(len(z)))
		copy(s, z)
		z = s
	}
	return Nat{large: z}
}

// FromWords returns the magnitude whose little-endian words are ws. Leading
// zero words are ignored. ws is copied.
func FromWords(ws []Word) Nat {
	v := vec(ws).norm()
	return fromVec(vec(nil).set(v))
}

// FromUint64 returns x as a Nat.
func FromUint64(x uint64) Nat {
	var z Nat
	if WordBits == 32 && x>>32 != 0 {
		z.small[0], z.small[1] = Word(x), Word(x>>32)
		z.n = 2
		return z
	}
	if x != 0 {
		z.small[0] = Word(x)
		z.n = 1
	}
	return z
}

// FromWord returns w as a Nat.
func FromWord(w Word) Nat {
	return FromUint64(uint64(w))
}

// ─────────────────────────────────────────────────────────────────────────────
// Access
// ─────────────────────────────────────────────────────────────────────────────

// view returns the normalized words of x. The result must not be modified.
func (x *Nat) view() vec {
	if x.large != nil {
		return x.large
	}
	return x.small[:x.n]
}

// Words returns a copy of the normalized little-endian words of x.
func (x Nat) Words() []Word {
	v := x.view()
	if len(v) == 0 {
		return nil
	}
	out := make([]Word, len(v))
	copy(out, v)
	return out
}

// Len returns the number of words of x. Len of zero is 0.
func (x Nat) Len() int {
	if x.large != nil {
		return len(x.large)
	}
	return x.n
}

// Word returns the i-th least significant word of x, or 0 when i >= x.Len().
func (x Nat) Word(i int) Word {
	if i < 0 {
		panic("nat: negative word index")
	}
	if x.large != nil {
		if i < len(x.large) {
			return x.large[i]
		}
		return 0
	}
	if i < x.n {
		return x.small[i]
	}
	return 0
}

// IsZero reports whether x == 0.
func (x Nat) IsZero() bool { return x.Len() == 0 }

// IsOne reports whether x == 1.
func (x Nat) IsOne() bool { return x.Len() == 1 && x.Word(0) == 1 }

// IsOdd reports whether x is odd.
func (x Nat) IsOdd() bool { return x.Word(0)&1 == 1 }

// IsInline reports whether x is stored without a heap allocation. It exists
// for tests; the logical value never depends on it.
func (x Nat) IsInline() bool { return x.large == nil }

// Uint64 returns x as a uint64 and reports whether it fits.
func (x Nat) Uint64() (uint64, bool) {
	v := x.view()
	switch {
	case len(v) == 0:
		return 0, true
	case len(v) == 1:
		return uint64(v[0]), true
	case WordBits == 32 && len(v) == 2:
		return uint64(v[1])<<32 | uint64(v[0]), true
	}
	return 0, false
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Nat) Cmp(y Nat) int {
	return x.view().cmp(y.view())
}

// Equal reports whether x == y.
func (x Nat) Equal(y Nat) bool { return x.Cmp(y) == 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Capacity policy
// ─────────────────────────────────────────────────────────────────────────────

// allocCap is the capacity given to a fresh buffer of n words.
func allocCap(n int) int { return n + n/8 + 2 }

// shrinkLimit is the largest capacity a materialized result of n words may
// keep.
func shrinkLimit(n int) int { return n + n/4 + 4 }

// Wrap returns the magnitude whose little-endian words are ws without
// copying them when they do not fit inline. The caller must never modify
// ws afterwards; it is meant for owners of a buffer that track sharing
// themselves, such as bigint.Acc.
func Wrap(ws []Word) Nat {
	return fromVec(vec(ws))
}
