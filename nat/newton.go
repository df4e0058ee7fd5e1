package nat

import (
	"github.com/agbru/bignum/internal/arith"
)

// maxBlockCorrections bounds the adjustments of one block quotient estimate.
const maxBlockCorrections = 2

// reciprocal returns ⌊2^k / v⌋ for a nonzero v and k >= v.bitLen().
//
// A seed accurate to one word is refined by the Newton step
//
//	r' = r + r*(2^k - v*r) / 2^k
//
// which roughly doubles the number of correct bits each time and never
// overshoots, so the final adjustment only ever increments.
func reciprocal(v vec, k uint, th Thresholds) vec {
	nb := uint(v.bitLen())

	// top holds the leading W bits of v, so v < (top+1) * 2^(nb-W).
	var top Word
	if nb > WordBits {
		top = v.bitsAt(nb-WordBits, WordBits)
	} else {
		top = v[0] << (WordBits - nb)
	}
	var seed Word
	if top == arith.MaxWord {
		seed = 1 << (WordBits - 1)
	} else {
		seed, _ = arith.DivWW(1<<(WordBits-1), 0, top+1)
	}

	// seed ≈ 2^(2W-1) / top; scale it to 2^k / v.
	r := vec(nil).setWord(seed)
	if e := int(k) - int(nb) - WordBits + 1; e >= 0 {
		r = r.shl(r, uint(e))
	} else {
		r = vec(nil).shr(r, uint(-e))
	}

	pow := vec(nil).setBit(nil, k, 1)
	for {
		vr := mulVec(v, r, th)
		for vr.cmp(pow) > 0 {
			r = r.subWord(r, 1)
			vr = vr.sub(vr, v)
		}
		e := vec(nil).sub(pow, vr)
		if e.cmp(v) < 0 {
			return r
		}
		d := vec(nil).shr(mulVec(r, e, th), k)
		if len(d) == 0 {
			// The estimate is within a couple of units.
			for e.cmp(v) >= 0 {
				r = r.addWord(r, 1)
				e = e.sub(e, v)
			}
			return r
		}
		r = r.add(r, d)
	}
}

// divNewton divides u by a large v. The quotient is produced one block of
// len(v) words at a time, from the most significant end: each block
// estimate ⌊chunk*R / 2^k⌋ with R = ⌊2^k / v⌋ is at most two short of the
// true block quotient.
func divNewton(u, v vec, th Thresholds) (q, r vec) {
	n := len(v)
	k := uint(v.bitLen() + n*WordBits)
	recip := reciprocal(v, k, th)

	q = vec(nil).make(len(u))
	q.clear()
	var rem vec
	chunk := vec(nil).make(2*n + 1)
	for top := len(u); top > 0; {
		lo := max(top-n, 0)
		bl := top - lo

		// chunk = rem * B^bl + u[lo:top] < v * B^n <= 2^k
		c := chunk[:bl+len(rem)]
		copy(c, u[lo:top])
		copy(c[bl:], rem)
		c = c.norm()

		qe := vec(nil).shr(mulVec(c, recip, th), k)
		rem = vec(nil).sub(c, mulVec(qe, v, th))
		for i := 0; rem.cmp(v) >= 0; i++ {
			if i == maxBlockCorrections {
				panic("nat: newton block estimate out of range")
			}
			rem = rem.sub(rem, v)
			qe = qe.addWord(qe, 1)
		}
		copy(q[lo:top], qe)
		top = lo
	}
	return q.norm(), rem
}
