package nat

import (
	"math/big"
	"testing"
)

func wordsFromBytes(b []byte) Nat {
	return FromBytes(b, LittleEndian)
}

func FuzzMulAlgorithms(f *testing.F) {
	f.Add([]byte{1}, []byte{2})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, []byte{0xff, 0xff})
	f.Add(make([]byte, 400), []byte{3, 0, 0, 0, 0, 0, 0, 0, 7})

	f.Fuzz(func(t *testing.T, a, b []byte) {
		if len(a) > 4096 || len(b) > 4096 {
			t.Skip("operands too large")
		}
		x, y := wordsFromBytes(a), wordsFromBytes(b)
		want := new(big.Int).Mul(toBig(x), toBig(y))
		for _, ft := range forcedThresholds {
			if got := MulWith(x, y, ft.th); toBig(got).Cmp(want) != 0 {
				t.Fatalf("%s: product mismatch", ft.name)
			}
		}
	})
}

func FuzzDivRem(f *testing.F) {
	f.Add([]byte{17}, []byte{5})
	f.Add([]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x80}, []byte{1, 0, 0, 0, 0, 0, 0, 0, 0x80})

	f.Fuzz(func(t *testing.T, a, b []byte) {
		if len(a) > 4096 || len(b) > 4096 {
			t.Skip("operands too large")
		}
		x, y := wordsFromBytes(a), wordsFromBytes(b)
		if y.IsZero() {
			return
		}
		wq, wr := new(big.Int).QuoRem(toBig(x), toBig(y), new(big.Int))
		for _, ft := range forcedThresholds {
			q, r, err := DivRemWith(x, y, ft.th)
			if err != nil {
				t.Fatal(err)
			}
			if toBig(q).Cmp(wq) != 0 || toBig(r).Cmp(wr) != 0 {
				t.Fatalf("%s: quotient or remainder mismatch", ft.name)
			}
		}
	})
}
