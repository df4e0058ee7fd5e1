package bigint

import (
	"github.com/agbru/bignum/nat"
	"github.com/agbru/bignum/numerr"
)

// DefaultSeparator is the digit separator accepted by Parse.
const DefaultSeparator = '_'

// Parser parses integer literals of the form
//
//	[+|-][0x|0o|0b]digits
//
// where digits may be split by a separator character placed between two
// digits. Digits are case-insensitive.
//
// A Radix of 0 infers the radix from the prefix and defaults to 10. With an
// explicit radix, a matching prefix is skipped; a prefix naming another
// radix is read as ordinary digits, so "0b1" in radix 16 is 0xb1 while
// "0x1" in radix 10 fails on the 'x'.
type Parser struct {
	Radix int
	// Separator defaults to DefaultSeparator when zero.
	Separator byte
}

// Parse parses s with Parser{Radix: radix}.
func Parse(s string, radix int) (Int, error) {
	return Parser{Radix: radix}.Parse(s)
}

// MustParse is Parse for literals known to be valid. It panics on error.
func MustParse(s string) Int {
	x, err := Parse(s, 0)
	if err != nil {
		panic(err)
	}
	return x
}

// Parse returns the value of s. Failures are *numerr.ParseError values
// wrapping numerr.ErrEmptyString, ErrInvalidDigit, ErrUnsupportedRadix or
// ErrMalformedSeparator.
func (p Parser) Parse(s string) (Int, error) {
	sep := p.Separator
	if sep == 0 {
		sep = DefaultSeparator
	}
	radix := p.Radix
	if radix != 0 && !nat.ValidRadix(radix) {
		return Int{}, numerr.NewParseError(s, -1, numerr.ErrUnsupportedRadix)
	}
	if s == "" {
		return Int{}, numerr.NewParseError(s, -1, numerr.ErrEmptyString)
	}

	i := 0
	sign := Positive
	switch s[0] {
	case '-':
		sign = Negative
		i++
	case '+':
		i++
	}

	if len(s)-i >= 2 && s[i] == '0' {
		if pr := prefixRadix(s[i+1]); pr != 0 && (radix == 0 || radix == pr) {
			radix = pr
			i += 2
		}
	}
	if radix == 0 {
		radix = 10
	}

	start := i
	ds := make([]byte, 0, len(s)-i)
	lastSep := -1
	for ; i < len(s); i++ {
		c := s[i]
		if c == sep {
			if i == start || lastSep == i-1 {
				return Int{}, numerr.NewParseError(s, i, numerr.ErrMalformedSeparator)
			}
			lastSep = i
			continue
		}
		d := nat.DigitValue(c)
		if d >= nat.Word(radix) {
			return Int{}, numerr.NewParseError(s, i, numerr.ErrInvalidDigit)
		}
		ds = append(ds, byte(d))
	}
	if lastSep == len(s)-1 && lastSep >= start {
		return Int{}, numerr.NewParseError(s, lastSep, numerr.ErrMalformedSeparator)
	}
	if len(ds) == 0 {
		return Int{}, numerr.NewParseError(s, start, numerr.ErrEmptyString)
	}

	mag, err := nat.FromDigits(ds, radix)
	if err != nil {
		return Int{}, numerr.NewParseError(s, -1, err)
	}
	return makeInt(sign, mag), nil
}

// prefixRadix returns the radix named by the prefix letter c, or 0.
func prefixRadix(c byte) int {
	switch c {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	}
	return 0
}
