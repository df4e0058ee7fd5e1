package bigint

import (
	"fmt"
)

// Text returns x in the given radix with lowercase letters and a leading
// '-' for negative values. It panics when radix is not in 2..36.
func (x Int) Text(radix int) string {
	return string(x.appendText(nil, radix, false))
}

// TextUpper is Text with uppercase letters.
func (x Int) TextUpper(radix int) string {
	return string(x.appendText(nil, radix, true))
}

// String returns x in decimal.
func (x Int) String() string {
	return x.Text(10)
}

func (x Int) appendText(dst []byte, radix int, upper bool) []byte {
	if x.sign == Negative {
		dst = append(dst, '-')
	}
	return x.mag.AppendText(dst, radix, upper)
}

// Format implements fmt.Formatter. It accepts the verbs %b, %o, %O, %d,
// %x, %X, %s and %v, the flags '#' (radix prefix), '+' and ' ' (sign of
// non-negative values), '-' (left justification) and '0' (zero padding),
// and a width.
func (x Int) Format(s fmt.State, ch rune) {
	var radix int
	upper := false
	prefix := ""
	switch ch {
	case 'b':
		radix, prefix = 2, "0b"
	case 'o':
		radix, prefix = 8, "0"
	case 'O':
		radix, prefix = 8, "0o"
	case 'd', 's', 'v':
		radix = 10
	case 'x':
		radix, prefix = 16, "0x"
	case 'X':
		radix, prefix, upper = 16, "0X", true
	default:
		fmt.Fprintf(s, "%%!%c(bigint.Int=%s)", ch, x.String())
		return
	}
	if !s.Flag('#') && ch != 'O' {
		prefix = ""
	}

	sign := ""
	switch {
	case x.sign == Negative:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}
	digits := x.mag.AppendText(nil, radix, upper)

	var left, zeros, right int
	if width, ok := s.Width(); ok {
		if pad := width - len(sign) - len(prefix) - len(digits); pad > 0 {
			switch {
			case s.Flag('-'):
				right = pad
			case s.Flag('0'):
				zeros = pad
			default:
				left = pad
			}
		}
	}

	writeRepeat(s, ' ', left)
	fmt.Fprint(s, sign, prefix)
	writeRepeat(s, '0', zeros)
	_, _ = s.Write(digits)
	writeRepeat(s, ' ', right)
}

func writeRepeat(s fmt.State, c byte, n int) {
	if n <= 0 {
		return
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = c
	}
	_, _ = s.Write(buf)
}
