package bigfloat

import (
	"strconv"
)

// String returns x with all mantissa digits; see Text.
func (x Float) String() string {
	return x.Text(0)
}

// Text formats x in its base. When digits > 0 and the mantissa is longer,
// x is first rounded to that many digits with its own rounding mode.
//
// The layout follows the ECMAScript number-to-string rules. With the
// mantissa digits d1…dk and n the position of the radix point relative to
// d1:
//
//	k <= n <= 21    d1…dk followed by n-k zeros
//	0 < n <= 21     d1…dn.dn+1…dk
//	-6 < n <= 0     0. followed by -n zeros and d1…dk
//	otherwise       d1[.d2…dk] marker ±(n-1)
//
// The marker is 'e' in base 10 and '@' in other bases. Text panics for a
// base above 36.
func (x Float) Text(digits int) string {
	if digits > 0 && x.Digits() > uint(digits) {
		x, _ = x.WithPrecision(uint(digits))
	}
	if x.IsZero() {
		return "0"
	}
	base := x.Base()
	if base > 36 {
		panic("bigfloat: base " + strconv.FormatUint(uint64(base), 10) + " has no digit alphabet")
	}

	d := x.mant.Mag().Text(int(base))
	k := len(d)
	n := x.exp + k

	var buf []byte
	if x.mant.IsNeg() {
		buf = append(buf, '-')
	}
	switch {
	case k <= n && n <= 21:
		buf = append(buf, d...)
		for range n - k {
			buf = append(buf, '0')
		}
	case 0 < n && n <= 21:
		buf = append(buf, d[:n]...)
		buf = append(buf, '.')
		buf = append(buf, d[n:]...)
	case -6 < n && n <= 0:
		buf = append(buf, '0', '.')
		for range -n {
			buf = append(buf, '0')
		}
		buf = append(buf, d...)
	default:
		buf = append(buf, d[0])
		if k > 1 {
			buf = append(buf, '.')
			buf = append(buf, d[1:]...)
		}
		marker := byte('@')
		if base == 10 {
			marker = 'e'
		}
		buf = append(buf, marker)
		if n-1 >= 0 {
			buf = append(buf, '+')
		}
		buf = strconv.AppendInt(buf, int64(n-1), 10)
	}
	return string(buf)
}
