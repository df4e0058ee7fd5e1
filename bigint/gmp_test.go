//go:build gmp

package bigint

import (
	"testing"

	"github.com/ncw/gmp"
)

// toGMP converts through decimal text so that the oracle shares no code
// with the package under test.
func toGMP(t *testing.T, x Int) *gmp.Int {
	t.Helper()
	z, ok := new(gmp.Int).SetString(x.String(), 10)
	if !ok {
		t.Fatalf("gmp rejected %s", x)
	}
	return z
}

func TestAgainstGMP(t *testing.T) {
	r := newRand(1234)
	for _, bits := range []uint{64, 1000, 9000, 40000} {
		for range 4 {
			x := Random(r, bits)
			y := Random(r, bits/2+1).Add(NewInt(1))
			if r.IntN(2) == 0 {
				x = x.Neg()
			}
			gx, gy := toGMP(t, x), toGMP(t, y)

			if got, want := x.Mul(y).String(), new(gmp.Int).Mul(gx, gy).String(); got != want {
				t.Fatalf("%d bits: Mul mismatch", bits)
			}
			q, rem, err := x.QuoRem(y)
			if err != nil {
				t.Fatal(err)
			}
			gq, gr := new(gmp.Int).QuoRem(gx, gy, new(gmp.Int))
			if q.String() != gq.String() || rem.String() != gr.String() {
				t.Fatalf("%d bits: QuoRem mismatch", bits)
			}
			if got, want := GCD(x, y).String(), new(gmp.Int).GCD(nil, nil, new(gmp.Int).Abs(gx), gy).String(); got != want {
				t.Fatalf("%d bits: GCD mismatch", bits)
			}
		}
	}
}

func TestModPowAgainstGMP(t *testing.T) {
	r := newRand(99)
	for _, bits := range []uint{128, 1024, 2048} {
		m := Random(r, bits).Add(NewInt(2))
		b := Random(r, bits)
		e := Random(r, 256)
		got, err := ModPow(b, e, m)
		if err != nil {
			t.Fatal(err)
		}
		want := new(gmp.Int).Exp(toGMP(t, b), toGMP(t, e), toGMP(t, m))
		if got.String() != want.String() {
			t.Fatalf("%d bits: ModPow = %s, want %s", bits, got, want)
		}
	}
}
