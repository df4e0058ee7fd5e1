package nat

import (
	"math"

	"github.com/agbru/bignum/numerr"
)

// log2Slack is the number of ulps by which Log2Bounds widens a rounded
// logarithm.
const log2Slack = 2

// Log2Bounds returns lo and hi with lo <= log2(x) <= hi for x > 0. Both are
// exact when x is a power of two. Log2Bounds(0) returns (-Inf, -Inf).
func (x Nat) Log2Bounds() (lo, hi float64) {
	return log2Bounds(x.view())
}

func log2Bounds(x vec) (lo, hi float64) {
	n := x.bitLen()
	if n == 0 {
		return math.Inf(-1), math.Inf(-1)
	}
	if x.isPow2() {
		l := float64(n - 1)
		return l, l
	}

	// x = m * 2^s + tail with 2^52 <= m < 2^53; every m is exact in a
	// float64, so log2(m*2^s) <= log2(x) < log2((m+1)*2^s).
	var m uint64
	s := 0
	if n > 53 {
		s = n - 53
		m = uint64(x.bitsAt(uint(s), 32)) | uint64(x.bitsAt(uint(s)+32, 21))<<32
	} else {
		m, _ = FromWords(x).Uint64()
	}
	lo = math.Log2(float64(m)) + float64(s)
	hi = lo
	if s > 0 {
		hi = math.Log2(float64(m+1)) + float64(s)
	}
	for range log2Slack {
		lo = math.Nextafter(lo, math.Inf(-1))
		hi = math.Nextafter(hi, math.Inf(1))
	}
	return lo, hi
}

// ILog returns the largest e with base**e <= x. It fails with
// numerr.ErrDomain when x == 0 or base < 2.
func ILog(x, base Nat) (uint, error) {
	e, _, err := ilog(x.view(), base.view(), CurrentThresholds().normalized())
	return e, err
}

// ilog also reports how many correction steps followed the floating-point
// estimate.
func ilog(x, b vec, th Thresholds) (e uint, steps int, err error) {
	if len(x) == 0 || b.cmp(vec{2}) < 0 {
		return 0, 0, numerr.ErrDomain
	}
	if x.cmp(b) < 0 {
		return 0, 0, nil
	}
	if b.isPow2() {
		k := b.trailingZeroBits()
		return uint(x.bitLen()-1) / k, 0, nil
	}

	xlo, _ := log2Bounds(x)
	_, bhi := log2Bounds(b)
	e = uint(math.Floor(xlo / bhi))

	p := powVec(b, e, th)
	for p.cmp(x) > 0 {
		p, _ = divRemVec(p, b, th)
		e--
		steps++
	}
	for {
		next := mulVec(p, b, th)
		if next.cmp(x) > 0 {
			return e, steps, nil
		}
		p = next
		e++
		steps++
	}
}
