package bigint

import (
	"errors"
	"math/big"
	"testing"

	"github.com/agbru/bignum/numerr"
)

func TestExtendedGCD(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b    int64
		g, s, u int64
	}{
		{35, 15, 5, 1, -2},
		{12, 18, 6, -1, 1},
		{7, 0, 7, 1, 0},
		{-7, 0, 7, -1, 0},
		{0, 9, 9, 0, 1},
		{0, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		g, s, u := ExtendedGCD(NewInt(tt.a), NewInt(tt.b))
		got := [3]string{g.String(), s.String(), u.String()}
		want := [3]string{NewInt(tt.g).String(), NewInt(tt.s).String(), NewInt(tt.u).String()}
		if got != want {
			t.Errorf("ExtendedGCD(%d, %d) = %v, want %v", tt.a, tt.b, got, want)
		}
	}
}

func TestExtendedGCDBezout(t *testing.T) {
	t.Parallel()
	r := newRand(11)
	for range 100 {
		a := Random(r, 200)
		b := Random(r, 150)
		if r.IntN(2) == 0 {
			a = a.Neg()
		}
		if r.IntN(2) == 0 {
			b = b.Neg()
		}
		g, s, u := ExtendedGCD(a, b)
		if !g.Equal(GCD(a, b)) {
			t.Fatalf("ExtendedGCD(%s, %s) g = %s, GCD = %s", a, b, g, GCD(a, b))
		}
		if sum := a.Mul(s).Add(b.Mul(u)); !sum.Equal(g) {
			t.Fatalf("%s*%s + %s*%s = %s, want %s", a, s, b, u, sum, g)
		}
	}
}

func TestGCDAndLCM(t *testing.T) {
	t.Parallel()
	if got := GCD(NewInt(-1071), NewInt(462)); got.String() != "21" {
		t.Errorf("GCD(-1071, 462) = %s", got)
	}
	if got := LCM(NewInt(-4), NewInt(6)); got.String() != "12" {
		t.Errorf("LCM(-4, 6) = %s", got)
	}
	if got := LCM(NewInt(0), NewInt(6)); !got.IsZero() {
		t.Errorf("LCM(0, 6) = %s", got)
	}
}

func TestModInverse(t *testing.T) {
	t.Parallel()
	if got, err := ModInverse(NewInt(3), NewInt(97)); err != nil || got.String() != "65" {
		t.Errorf("ModInverse(3, 97) = %s, %v", got, err)
	}
	if got, err := ModInverse(NewInt(-3), NewInt(97)); err != nil || got.String() != "32" {
		t.Errorf("ModInverse(-3, 97) = %s, %v", got, err)
	}
	if _, err := ModInverse(NewInt(6), NewInt(9)); !errors.Is(err, numerr.ErrNotInvertible) {
		t.Errorf("ModInverse(6, 9): err = %v", err)
	}
	if _, err := ModInverse(NewInt(6), NewInt(0)); !errors.Is(err, numerr.ErrDivisionByZero) {
		t.Errorf("ModInverse(6, 0): err = %v", err)
	}
}

func TestModPow(t *testing.T) {
	t.Parallel()
	tests := []struct {
		b, e, m int64
		want    string
	}{
		{4, 13, 497, "445"},
		{-4, 13, 497, "52"},
		{2, 0, 7, "1"},
		{3, -1, 97, "65"},
		{3, -2, 97, "54"},
		{10, 10, 1, "0"},
		{5, 3, -13, "8"},
	}
	for _, tt := range tests {
		got, err := ModPow(NewInt(tt.b), NewInt(tt.e), NewInt(tt.m))
		if err != nil || got.String() != tt.want {
			t.Errorf("ModPow(%d, %d, %d) = %s, %v, want %s", tt.b, tt.e, tt.m, got, err, tt.want)
		}
	}
	if _, err := ModPow(NewInt(2), NewInt(-1), NewInt(4)); !errors.Is(err, numerr.ErrNotInvertible) {
		t.Errorf("ModPow(2, -1, 4): err = %v", err)
	}
}

func TestModulusMatchesBig(t *testing.T) {
	t.Parallel()
	r := newRand(5)
	for _, bitsM := range []uint{64, 130, 521, 1100} {
		m := Random(r, bitsM).Add(NewInt(2))
		md, err := NewModulus(m.Neg())
		if err != nil {
			t.Fatal(err)
		}
		if !md.Value().Equal(m) {
			t.Fatalf("Value = %s, want %s", md.Value(), m)
		}
		bm := toBig(m)
		for range 5 {
			x := Random(r, bitsM+40).Neg()
			e := Random(r, 90)
			if got, want := toBig(md.Reduce(x)), new(big.Int).Mod(toBig(x), bm); got.Cmp(want) != 0 {
				t.Fatalf("Reduce = %s, want %s", got, want)
			}
			got, err := md.Exp(x, e)
			if err != nil {
				t.Fatal(err)
			}
			want := new(big.Int).Exp(new(big.Int).Mod(toBig(x), bm), toBig(e), bm)
			if toBig(got).Cmp(want) != 0 {
				t.Fatalf("Exp mod %d bits = %s, want %s", bitsM, got, want)
			}
		}
	}
}
