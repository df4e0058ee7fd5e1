package bigint

import (
	"github.com/agbru/bignum/nat"
	"github.com/agbru/bignum/numerr"
)

// ILog returns the largest e with base**e <= x. It fails with
// numerr.ErrDomain when x <= 0 or base < 2.
func (x Int) ILog(base Int) (uint, error) {
	if x.sign == Negative || base.sign == Negative {
		return 0, numerr.ErrDomain
	}
	return nat.ILog(x.mag, base.mag)
}

// Log2Bounds returns bounds on log2|x|; see nat.Nat.Log2Bounds.
func (x Int) Log2Bounds() (lo, hi float64) {
	return x.mag.Log2Bounds()
}
