package nat

import (
	"fmt"
	"math/big"
	"testing"
)

func TestMulMatchesBig(t *testing.T) {
	t.Parallel()
	sizes := [][2]int{{1, 1}, {2, 1}, {3, 3}, {5, 2}, {10, 10}, {40, 41}, {100, 13}, {170, 160}, {400, 399}, {600, 50}}
	for _, ft := range forcedThresholds {
		t.Run(ft.name, func(t *testing.T) {
			t.Parallel()
			r := newRand(11)
			for _, sz := range sizes {
				x, y := randomNat(r, sz[0]), randomNat(r, sz[1])
				want := new(big.Int).Mul(toBig(x), toBig(y))
				if got := MulWith(x, y, ft.th); toBig(got).Cmp(want) != 0 {
					t.Errorf("%dx%d words: product mismatch", sz[0], sz[1])
				}
				if got := MulWith(y, x, ft.th); toBig(got).Cmp(want) != 0 {
					t.Errorf("%dx%d words: commuted product mismatch", sz[1], sz[0])
				}
			}
		})
	}
}

func TestSqrMatchesMul(t *testing.T) {
	t.Parallel()
	for _, ft := range forcedThresholds {
		t.Run(ft.name, func(t *testing.T) {
			t.Parallel()
			r := newRand(12)
			for _, n := range []int{0, 1, 2, 3, 7, 45, 170, 500} {
				x := randomNat(r, n)
				want := new(big.Int).Mul(toBig(x), toBig(x))
				if got := SqrWith(x, ft.th); toBig(got).Cmp(want) != 0 {
					t.Errorf("%d words: square mismatch", n)
				}
			}
		})
	}
}

func TestMulSparseOperands(t *testing.T) {
	t.Parallel()
	// Operands with zero runs exercise the normalization of split pieces.
	x := FromUint64(1).Lsh(64 * 300).AddWord(7)
	y := FromUint64(3).Lsh(64 * 150)
	want := new(big.Int).Mul(toBig(x), toBig(y))
	for _, ft := range forcedThresholds {
		if got := MulWith(x, y, ft.th); toBig(got).Cmp(want) != 0 {
			t.Errorf("%s: sparse product mismatch", ft.name)
		}
		if got := SqrWith(x, ft.th); toBig(got).Cmp(new(big.Int).Mul(toBig(x), toBig(x))) != 0 {
			t.Errorf("%s: sparse square mismatch", ft.name)
		}
	}
}

func TestMulAllOnes(t *testing.T) {
	t.Parallel()
	// (B^n - 1)^2 maximizes every carry chain.
	for _, n := range []int{2, 9, 50, 200} {
		ws := make([]Word, n)
		for i := range ws {
			ws[i] = ^Word(0)
		}
		x := FromWords(ws)
		want := new(big.Int).Mul(toBig(x), toBig(x))
		for _, ft := range forcedThresholds {
			if got := MulWith(x, x, ft.th); toBig(got).Cmp(want) != 0 {
				t.Errorf("%s n=%d: mismatch", ft.name, n)
			}
			if got := SqrWith(x, ft.th); toBig(got).Cmp(want) != 0 {
				t.Errorf("%s n=%d: square mismatch", ft.name, n)
			}
		}
	}
}

func TestThresholds(t *testing.T) {
	th := Thresholds{Karatsuba: 1, Toom3: 0, Newton: -5}.normalized()
	if th.Karatsuba != minKaratsuba || th.Toom3 != DefaultToom3Threshold || th.Newton != minNewton {
		t.Errorf("normalized() = %+v", th)
	}

	prev := SetThresholds(Thresholds{Karatsuba: 8, Toom3: 30, Newton: 10})
	defer SetThresholds(prev)
	if got := CurrentThresholds(); got.Karatsuba != 8 || got.Toom3 != 30 || got.Newton != 10 {
		t.Errorf("CurrentThresholds() = %+v", got)
	}
	x, y := randomNat(newRand(13), 80), randomNat(newRand(14), 70)
	if toBig(x.Mul(y)).Cmp(new(big.Int).Mul(toBig(x), toBig(y))) != 0 {
		t.Error("Mul under custom thresholds mismatch")
	}
}

func TestAlgorithmSelection(t *testing.T) {
	t.Parallel()
	th := DefaultThresholds()
	tests := []struct {
		m, n int
		th   Thresholds
		want MulAlgorithm
	}{
		{10, 10, th, Schoolbook},
		{100, 50, th, Karatsuba},
		{500, 400, th, Toom3},
		{500, 400, ForceAlgorithm(th, Schoolbook), Schoolbook},
		{5, 5, ForceAlgorithm(th, Toom3), Toom3},
		{5, 5, ForceAlgorithm(th, Karatsuba), Karatsuba},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d-%v", tt.m, tt.n, tt.want), func(t *testing.T) {
			t.Parallel()
			if got := tt.th.Algorithm(tt.m, tt.n); got != tt.want {
				t.Errorf("Algorithm(%d, %d) = %v, want %v", tt.m, tt.n, got, tt.want)
			}
		})
	}
}

func TestParseMulAlgorithm(t *testing.T) {
	t.Parallel()
	for _, a := range []MulAlgorithm{Auto, Schoolbook, Karatsuba, Toom3} {
		got, err := ParseMulAlgorithm(a.String())
		if err != nil || got != a {
			t.Errorf("ParseMulAlgorithm(%q) = %v, %v", a, got, err)
		}
	}
	if _, err := ParseMulAlgorithm("fft"); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}

func TestPow(t *testing.T) {
	t.Parallel()
	tests := []struct {
		x    uint64
		e    uint
		want string
	}{
		{0, 0, "1"},
		{0, 5, "0"},
		{7, 1, "7"},
		{2, 100, "1267650600228229401496703205376"},
		{3, 40, "12157665459056928801"},
		{10, 30, "1000000000000000000000000000000"},
	}
	for _, tt := range tests {
		if got := FromUint64(tt.x).Pow(tt.e).String(); got != tt.want {
			t.Errorf("%d**%d = %s, want %s", tt.x, tt.e, got, tt.want)
		}
	}
}

func TestSqrt(t *testing.T) {
	t.Parallel()
	r := newRand(15)
	for _, n := range []int{0, 1, 2, 5, 40} {
		x := randomNat(r, n)
		s, rem := x.SqrtRem()
		want := new(big.Int).Sqrt(toBig(x))
		if toBig(s).Cmp(want) != 0 {
			t.Errorf("Sqrt(%d words) = %s, want %s", n, toBig(s), want)
		}
		if !s.Sqr().Add(rem).Equal(x) {
			t.Errorf("s*s + r != x for %d words", n)
		}
	}
	if got := FromUint64(1 << 40).Sqrt(); got.Word(0) != 1<<20 {
		t.Errorf("Sqrt(2**40) = %v", got.Words())
	}
}

func BenchmarkMul(b *testing.B) {
	for _, n := range []int{16, 128, 1024} {
		x, y := randomNat(newRand(1), n), randomNat(newRand(2), n)
		for _, ft := range forcedThresholds[:3] {
			b.Run(fmt.Sprintf("%s/%d", ft.name, n), func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					MulWith(x, y, ft.th)
				}
			})
		}
	}
}
