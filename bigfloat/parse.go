package bigfloat

import (
	"strconv"

	"github.com/agbru/bignum/bigint"
	"github.com/agbru/bignum/nat"
	"github.com/agbru/bignum/numerr"
)

// Parse returns the value of s in the given base rounded to ctx. The
// accepted form is
//
//	[+|-]digits[.digits][marker[+|-]decimal-exponent]
//
// where at least one digit is present and the marker is '@' in any base or
// 'e'/'E' in base 10; the exponent is a power of the base. In base 2 a
// hexadecimal literal such as "0x1.8p3" is also accepted, with a 'p'
// exponent giving a power of two.
//
// Failures are *numerr.ParseError values wrapping numerr.ErrEmptyString,
// ErrInvalidDigit, ErrUnsupportedRadix or ErrConversionOverflow.
func Parse(s string, base nat.Word, ctx Context) (Float, Accuracy, error) {
	checkBase(base)
	if s == "" {
		return Float{}, Exact, numerr.NewParseError(s, -1, numerr.ErrEmptyString)
	}

	i := 0
	neg := false
	switch s[0] {
	case '-':
		neg = true
		i++
	case '+':
		i++
	}

	radix, digitExp := int(base), 1
	if base == 2 && len(s)-i >= 2 && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		radix, digitExp = 16, 4
		i += 2
	}
	if radix > nat.MaxRadix {
		return Float{}, Exact, numerr.NewParseError(s, -1, numerr.ErrUnsupportedRadix)
	}

	start := i
	ds := make([]byte, 0, len(s)-i)
	frac, dot := 0, false
	for ; i < len(s); i++ {
		c := s[i]
		if c == '.' && !dot {
			dot = true
			continue
		}
		if isMarker(c, base, radix) {
			break
		}
		d := nat.DigitValue(c)
		if d >= nat.Word(radix) {
			return Float{}, Exact, numerr.NewParseError(s, i, numerr.ErrInvalidDigit)
		}
		ds = append(ds, byte(d))
		if dot {
			frac++
		}
	}
	if len(ds) == 0 {
		return Float{}, Exact, numerr.NewParseError(s, start, numerr.ErrEmptyString)
	}

	exp := 0
	if i < len(s) {
		mark := i
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i == len(s) {
			return Float{}, Exact, numerr.NewParseError(s, i, numerr.ErrEmptyString)
		}
		for j := i; j < len(s); j++ {
			if c := s[j]; c < '0' || c > '9' {
				return Float{}, Exact, numerr.NewParseError(s, j, numerr.ErrInvalidDigit)
			}
		}
		e, err := strconv.Atoi(s[mark+1:])
		if err != nil {
			return Float{}, Exact, numerr.NewParseError(s, i, numerr.ErrConversionOverflow)
		}
		exp = e
	}

	mag, err := nat.FromDigits(ds, radix)
	if err != nil {
		return Float{}, Exact, numerr.NewParseError(s, -1, err)
	}
	sign := bigint.Positive
	if neg {
		sign = bigint.Negative
	}
	f, acc := New(bigint.FromParts(sign, mag), exp-frac*digitExp, base, ctx)
	return f, acc, nil
}

// isMarker reports whether c starts the exponent.
func isMarker(c byte, base nat.Word, radix int) bool {
	switch c {
	case '@':
		return true
	case 'e', 'E':
		return base == 10
	case 'p', 'P':
		return radix == 16 && base == 2
	}
	return false
}

// MustParse is Parse for literals known to be valid. It panics on error.
func MustParse(s string, base nat.Word, ctx Context) Float {
	f, _, err := Parse(s, base, ctx)
	if err != nil {
		panic(err)
	}
	return f
}
