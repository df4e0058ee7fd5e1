package nat

import (
	"math"

	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/numerr"
)

const (
	// MinRadix and MaxRadix bound the supported digit radices.
	MinRadix = 2
	MaxRadix = 36

	lowerDigits = "0123456789abcdefghijklmnopqrstuvwxyz"
	upperDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// leafWords is the size below which formatting divides word by word.
	leafWords = 32
	// leafDigits is the size below which parsing accumulates word by word.
	leafDigits = 4096
)

// DigitValue returns the value of the digit character ch, case-insensitive,
// or MaxRadix when ch is not a digit in any supported radix.
func DigitValue(ch byte) Word {
	switch {
	case '0' <= ch && ch <= '9':
		return Word(ch - '0')
	case 'a' <= ch && ch <= 'z':
		return Word(ch - 'a' + 10)
	case 'A' <= ch && ch <= 'Z':
		return Word(ch - 'A' + 10)
	}
	return MaxRadix
}

// ValidRadix reports whether radix is between MinRadix and MaxRadix.
func ValidRadix(radix int) bool {
	return MinRadix <= radix && radix <= MaxRadix
}

// maxPow returns the largest power p = b**n that fits in a Word.
func maxPow(b Word) (p Word, n int) {
	p, n = b, 1
	for limit := arith.MaxWord / b; p <= limit; {
		p *= b
		n++
	}
	return
}

// ─────────────────────────────────────────────────────────────────────────────
// Parsing
// ─────────────────────────────────────────────────────────────────────────────

// Parse returns the value of the digits in s, most significant first.
// Signs, prefixes and separators are not accepted; see package bigint for
// the full literal grammar.
func Parse(s string, radix int) (Nat, error) {
	if !ValidRadix(radix) {
		return Nat{}, numerr.NewParseError(s, -1, numerr.ErrUnsupportedRadix)
	}
	if s == "" {
		return Nat{}, numerr.NewParseError(s, -1, numerr.ErrEmptyString)
	}
	ds := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		d := DigitValue(s[i])
		if d >= Word(radix) {
			return Nat{}, numerr.NewParseError(s, i, numerr.ErrInvalidDigit)
		}
		ds[i] = byte(d)
	}
	return FromDigits(ds, radix)
}

// FromDigits returns the value of the digit values ds, most significant
// first, in the given radix.
func FromDigits(ds []byte, radix int) (Nat, error) {
	if !ValidRadix(radix) {
		return Nat{}, numerr.ErrUnsupportedRadix
	}
	for _, d := range ds {
		if int(d) >= radix {
			return Nat{}, numerr.ErrInvalidDigit
		}
	}
	b := Word(radix)
	if b&(b-1) == 0 {
		return fromVec(packDigits(ds, arith.TrailingZeros(b))), nil
	}
	pows := make(map[int]vec)
	return fromVec(digitsToVec(ds, b, pows, CurrentThresholds().normalized())), nil
}

// packDigits places each digit of s bits directly at its bit position.
func packDigits(ds []byte, s uint) vec {
	nbits := uint(len(ds)) * s
	z := make(vec, (nbits+WordBits-1)/WordBits)
	var pos uint
	for i := len(ds) - 1; i >= 0; i-- {
		d := Word(ds[i])
		j, o := pos/WordBits, pos%WordBits
		z[j] |= d << o
		if o+s > WordBits {
			z[j+1] |= d >> (WordBits - o)
		}
		pos += s
	}
	return z.norm()
}

// digitsToVec converts long digit strings by splitting them in halves,
// value = hi * b**len(lo) + lo, and short ones word by word.
func digitsToVec(ds []byte, b Word, pows map[int]vec, th Thresholds) vec {
	if len(ds) <= leafDigits {
		return digitsToVecBasic(ds, b)
	}
	nlo := len(ds) / 2
	hi := digitsToVec(ds[:len(ds)-nlo], b, pows, th)
	lo := digitsToVec(ds[len(ds)-nlo:], b, pows, th)
	p, ok := pows[nlo]
	if !ok {
		p = powVec(vec{b}, uint(nlo), th)
		pows[nlo] = p
	}
	return vec(nil).add(mulVec(hi, p, th), lo)
}

func digitsToVecBasic(ds []byte, b Word) vec {
	bb, nd := maxPow(b)
	var z vec
	var acc Word
	n := 0
	for _, d := range ds {
		acc = acc*b + Word(d)
		n++
		if n == nd {
			z = z.mulAddWW(z, bb, acc)
			acc, n = 0, 0
		}
	}
	if n > 0 {
		p := Word(1)
		for range n {
			p *= b
		}
		z = z.mulAddWW(z, p, acc)
	}
	return z.norm()
}

// ─────────────────────────────────────────────────────────────────────────────
// Formatting
// ─────────────────────────────────────────────────────────────────────────────

// Text returns the digits of x in the given radix using lowercase letters.
// It panics when radix is not between MinRadix and MaxRadix.
func (x Nat) Text(radix int) string {
	return string(x.view().itoa(radix, lowerDigits))
}

// TextUpper is Text with uppercase letters.
func (x Nat) TextUpper(radix int) string {
	return string(x.view().itoa(radix, upperDigits))
}

// String returns the decimal digits of x.
func (x Nat) String() string {
	return x.Text(10)
}

// AppendText appends the digits of x in the given radix to dst.
func (x Nat) AppendText(dst []byte, radix int, upper bool) []byte {
	charset := lowerDigits
	if upper {
		charset = upperDigits
	}
	return append(dst, x.view().itoa(radix, charset)...)
}

// divisor is an entry of the power table used to split a number in halves
// while formatting: bbb = b**ndigits.
type divisor struct {
	bbb     vec
	ndigits int
}

func (x vec) itoa(radix int, charset string) []byte {
	if !ValidRadix(radix) {
		panic("nat: unsupported radix")
	}
	if len(x) == 0 {
		return []byte("0")
	}
	b := Word(radix)

	if b&(b-1) == 0 {
		s := arith.TrailingZeros(b)
		n := (uint(x.bitLen()) + s - 1) / s
		buf := make([]byte, n)
		for i := uint(0); i < n; i++ {
			buf[n-1-i] = charset[x.bitsAt(i*s, s)]
		}
		return buf
	}

	// x < b**len(buf), with a little slack for the floating estimate.
	n := int(float64(x.bitLen())/math.Log2(float64(b))) + 2
	buf := make([]byte, n)
	bb, nd := maxPow(b)
	th := CurrentThresholds().normalized()
	table := divisors(len(x), bb, nd, th)
	convertWords(buf, x, charset, b, bb, nd, table, th)

	i := 0
	for i < len(buf)-1 && buf[i] == '0' {
		i++
	}
	return buf[i:]
}

// divisors returns the table bb**(2**i) for all entries at most half as
// long as a number of n words.
func divisors(n int, bb Word, nd int, th Thresholds) []divisor {
	if n <= leafWords {
		return nil
	}
	table := []divisor{{bbb: vec{bb}, ndigits: nd}}
	for {
		last := table[len(table)-1]
		if 2*len(last.bbb) > n/2 {
			return table
		}
		table = append(table, divisor{
			bbb:     sqrVec(last.bbb, th),
			ndigits: 2 * last.ndigits,
		})
	}
}

// convertWords writes the digits of q right-aligned into s, padding with
// zeros. q must be normalized and less than b**len(s).
func convertWords(s []byte, q vec, charset string, b, bb Word, nd int, table []divisor, th Thresholds) {
	if len(q) > leafWords && len(table) > 0 {
		k := len(table) - 1
		for k > 0 && 2*len(table[k].bbb) > len(q) {
			k--
		}
		hi, lo := divRemVec(q, table[k].bbb, th)
		cut := len(s) - table[k].ndigits
		convertWords(s[cut:], lo, charset, b, bb, nd, table, th)
		convertWords(s[:cut], hi, charset, b, bb, nd, table, th)
		return
	}

	i := len(s)
	q = vec(nil).set(q)
	for len(q) > 0 {
		var r Word
		q, r = q.divW(q, bb)
		for j := 0; j < nd && i > 0; j++ {
			i--
			s[i] = charset[r%b]
			r /= b
		}
	}
	for i > 0 {
		i--
		s[i] = '0'
	}
}
