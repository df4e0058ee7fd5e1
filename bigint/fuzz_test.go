package bigint

import (
	"math/big"
	"testing"
)

func FuzzParseFormat(f *testing.F) {
	for _, s := range []string{"0", "-1", "0xff", "1_000", "0b1010", "-0o17", "123456789012345678901234567890"} {
		f.Add(s, 0)
	}
	f.Add("zz", 36)
	f.Add("0b1", 16)

	f.Fuzz(func(t *testing.T, s string, radix int) {
		if len(s) > 2000 {
			t.Skip("input too long")
		}
		x, err := Parse(s, radix)
		if err != nil {
			return
		}
		r := radix
		if r == 0 {
			r = 10
		}
		text := x.Text(r)
		y, err := Parse(text, r)
		if err != nil || !y.Equal(x) {
			t.Fatalf("Parse(%q) = %s; reparse of %q = %s, %v", s, x, text, y, err)
		}
		if radix == 10 || radix == 0 {
			// math/big agrees on plain decimal literals.
			if b, ok := new(big.Int).SetString(s, 10); ok && toBig(x).Cmp(b) != 0 {
				t.Fatalf("Parse(%q) = %s, math/big says %s", s, x, b)
			}
		}
	})
}
