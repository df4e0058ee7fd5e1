package nat

import (
	"github.com/agbru/bignum/numerr"
)

// Add returns x + y.
func (x Nat) Add(y Nat) Nat {
	return fromVec(vec(nil).add(x.view(), y.view()))
}

// Sub returns x - y, or numerr.ErrUnderflow when x < y.
func (x Nat) Sub(y Nat) (Nat, error) {
	xv, yv := x.view(), y.view()
	if xv.cmp(yv) < 0 {
		return Nat{}, numerr.ErrUnderflow
	}
	return fromVec(vec(nil).sub(xv, yv)), nil
}

// AbsDiff returns |x - y|.
func (x Nat) AbsDiff(y Nat) Nat {
	z, _ := vec(nil).absDiff(x.view(), y.view())
	return fromVec(z)
}

// AddWord returns x + w.
func (x Nat) AddWord(w Word) Nat {
	return fromVec(vec(nil).addWord(x.view(), w))
}

// SubWord returns x - w, or numerr.ErrUnderflow when x < w.
func (x Nat) SubWord(w Word) (Nat, error) {
	xv := x.view()
	if len(xv) == 0 && w != 0 || len(xv) == 1 && xv[0] < w {
		return Nat{}, numerr.ErrUnderflow
	}
	return fromVec(vec(nil).subWord(xv, w)), nil
}

// MulWord returns x * w.
func (x Nat) MulWord(w Word) Nat {
	return fromVec(vec(nil).mulAddWW(x.view(), w, 0))
}

// MulAddWord returns x*y + r.
func (x Nat) MulAddWord(y, r Word) Nat {
	return fromVec(vec(nil).mulAddWW(x.view(), y, r))
}

// Lsh returns x << s.
func (x Nat) Lsh(s uint) Nat {
	return fromVec(vec(nil).shl(x.view(), s))
}

// Rsh returns x >> s.
func (x Nat) Rsh(s uint) Nat {
	return fromVec(vec(nil).shr(x.view(), s))
}

// And returns x & y.
func (x Nat) And(y Nat) Nat {
	return fromVec(vec(nil).and(x.view(), y.view()))
}

// Or returns x | y.
func (x Nat) Or(y Nat) Nat {
	return fromVec(vec(nil).or(x.view(), y.view()))
}

// Xor returns x ^ y.
func (x Nat) Xor(y Nat) Nat {
	return fromVec(vec(nil).xor(x.view(), y.view()))
}

// AndNot returns x &^ y.
func (x Nat) AndNot(y Nat) Nat {
	return fromVec(vec(nil).andNot(x.view(), y.view()))
}

// BitLen returns the length of x in bits. BitLen of zero is 0.
func (x Nat) BitLen() int { return x.view().bitLen() }

// TrailingZeros returns the number of consecutive least significant zero
// bits of x. TrailingZeros of zero is 0.
func (x Nat) TrailingZeros() uint { return x.view().trailingZeroBits() }

// Bit returns the value of the i-th bit of x.
func (x Nat) Bit(i uint) uint { return x.view().bit(i) }

// SetBit returns x with its i-th bit set to b, which must be 0 or 1.
func (x Nat) SetBit(i uint, b uint) Nat {
	return fromVec(vec(nil).setBit(x.view(), i, b))
}

// IsPowerOfTwo reports whether x is a power of two.
func (x Nat) IsPowerOfTwo() bool { return x.view().isPow2() }
