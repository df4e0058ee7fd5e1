package bigint

import (
	"math"

	"github.com/agbru/bignum/nat"
	"github.com/agbru/bignum/numerr"
)

// Int64 returns x as an int64. It fails with a *numerr.ConversionError when
// x is out of range.
func (x Int) Int64() (int64, error) {
	u, ok := x.mag.Uint64()
	switch {
	case !ok:
	case x.sign == Positive && u <= math.MaxInt64:
		return int64(u), nil
	case x.sign == Negative && u <= 1<<63:
		return -int64(u-1) - 1, nil
	}
	return 0, &numerr.ConversionError{Value: x.String(), Target: "int64"}
}

// Uint64 returns x as a uint64. It fails with a *numerr.ConversionError
// when x is negative or does not fit.
func (x Int) Uint64() (uint64, error) {
	u, ok := x.mag.Uint64()
	if !ok || x.sign == Negative {
		return 0, &numerr.ConversionError{Value: x.String(), Target: "uint64"}
	}
	return u, nil
}

// IsInt64 reports whether x fits in an int64.
func (x Int) IsInt64() bool {
	_, err := x.Int64()
	return err == nil
}

// Float64 returns the float64 nearest to x, ties to even. Values beyond the
// float64 range become ±Inf.
func (x Int) Float64() float64 {
	f := x.mag.Float64()
	if x.sign == Negative {
		return -f
	}
	return f
}

// Bytes returns |x| as a minimal byte slice in the given order.
func (x Int) Bytes(order nat.ByteOrder) []byte {
	return x.mag.Bytes(order)
}

// FromBytes returns the non-negative Int whose magnitude is encoded by b.
func FromBytes(b []byte, order nat.ByteOrder) Int {
	return Int{mag: nat.FromBytes(b, order)}
}
