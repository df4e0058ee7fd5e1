package bigint

import (
	"github.com/agbru/bignum/numerr"
)

// Lsh returns x << s, which is x * 2**s.
func (x Int) Lsh(s uint) Int {
	return makeInt(x.sign, x.mag.Lsh(s))
}

// Rsh returns x >> s, which is ⌊x / 2**s⌋ (rounding towards negative
// infinity for negative x, like an arithmetic shift).
func (x Int) Rsh(s uint) Int {
	if x.sign == Negative {
		// -((|x| - 1) >> s) - 1
		m, _ := x.mag.SubWord(1)
		return makeInt(Negative, m.Rsh(s).AddWord(1))
	}
	return Int{mag: x.mag.Rsh(s)}
}

// And returns x & y for non-negative operands.
func (x Int) And(y Int) (Int, error) {
	if x.sign == Negative || y.sign == Negative {
		return Int{}, numerr.ErrDomain
	}
	return Int{mag: x.mag.And(y.mag)}, nil
}

// Or returns x | y for non-negative operands.
func (x Int) Or(y Int) (Int, error) {
	if x.sign == Negative || y.sign == Negative {
		return Int{}, numerr.ErrDomain
	}
	return Int{mag: x.mag.Or(y.mag)}, nil
}

// Xor returns x ^ y for non-negative operands.
func (x Int) Xor(y Int) (Int, error) {
	if x.sign == Negative || y.sign == Negative {
		return Int{}, numerr.ErrDomain
	}
	return Int{mag: x.mag.Xor(y.mag)}, nil
}

// Bit returns the i-th bit of |x|.
func (x Int) Bit(i uint) uint { return x.mag.Bit(i) }

// TrailingZeros returns the number of trailing zero bits of |x|.
func (x Int) TrailingZeros() uint { return x.mag.TrailingZeros() }
