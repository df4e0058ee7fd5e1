package nat

import (
	"errors"
	"math/big"
	"testing"

	"github.com/agbru/bignum/numerr"
)

func TestDivRemMatchesBig(t *testing.T) {
	t.Parallel()
	sizes := [][2]int{{1, 1}, {3, 1}, {2, 2}, {5, 3}, {40, 20}, {100, 3}, {120, 60}, {300, 150}, {700, 340}}
	for _, ft := range forcedThresholds {
		t.Run(ft.name, func(t *testing.T) {
			t.Parallel()
			r := newRand(21)
			for _, sz := range sizes {
				x, y := randomNat(r, sz[0]), randomNat(r, sz[1])
				q, rem, err := DivRemWith(x, y, ft.th)
				if err != nil {
					t.Fatal(err)
				}
				wq, wr := new(big.Int).QuoRem(toBig(x), toBig(y), new(big.Int))
				if toBig(q).Cmp(wq) != 0 || toBig(rem).Cmp(wr) != 0 {
					t.Errorf("%d/%d words: got (%s, %s), want (%s, %s)", sz[0], sz[1], toBig(q), toBig(rem), wq, wr)
				}
			}
		})
	}
}

func TestDivRemCases(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		x, y    Nat
		q, r    string
		wantErr error
	}{
		{"small", FromUint64(17), FromUint64(5), "3", "2", nil},
		{"dividend smaller", FromUint64(4), FromUint64(9), "0", "4", nil},
		{"zero dividend", Nat{}, FromUint64(9), "0", "0", nil},
		{"power of two", FromUint64(1).Lsh(200).AddWord(13), FromUint64(1).Lsh(130), "1180591620717411303424", "13", nil},
		{"by zero", FromUint64(1), Nat{}, "", "", numerr.ErrDivisionByZero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			q, r, err := tt.x.DivRem(tt.y)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if q.String() != tt.q || r.String() != tt.r {
				t.Errorf("got (%s, %s), want (%s, %s)", q, r, tt.q, tt.r)
			}
		})
	}
}

func TestDivRemBoundaryQuotientDigits(t *testing.T) {
	t.Parallel()
	// Dividends whose top word equals the divisor's top word force the
	// qhat = B-1 branch of algorithm D and the add-back step.
	y := FromWords([]Word{0, 0, 1 << (WordBits - 1)})
	x := FromWords([]Word{^Word(0), ^Word(0), ^Word(0) >> 1, 1 << (WordBits - 1)})
	for _, ft := range forcedThresholds {
		q, r, err := DivRemWith(x, y, ft.th)
		if err != nil {
			t.Fatal(err)
		}
		wq, wr := new(big.Int).QuoRem(toBig(x), toBig(y), new(big.Int))
		if toBig(q).Cmp(wq) != 0 || toBig(r).Cmp(wr) != 0 {
			t.Errorf("%s: got (%s, %s), want (%s, %s)", ft.name, toBig(q), toBig(r), wq, wr)
		}
	}
}

func TestReciprocal(t *testing.T) {
	t.Parallel()
	r := newRand(22)
	th := DefaultThresholds()
	for _, n := range []int{1, 2, 7, 30} {
		rn := randomNat(r, n)
		v := rn.view()
		for _, extra := range []int{0, 1, 64, 500} {
			k := uint(v.bitLen() + extra)
			got := reciprocal(v, k, th)
			want := new(big.Int).Lsh(big.NewInt(1), k)
			want.Quo(want, toBig(FromWords(v)))
			if toBig(FromWords(got)).Cmp(want) != 0 {
				t.Errorf("n=%d k=%d: reciprocal mismatch", n, k)
			}
		}
	}
}

func TestDivExact(t *testing.T) {
	t.Parallel()
	a, b := randomNat(newRand(23), 9), randomNat(newRand(24), 4)
	q, err := a.Mul(b).DivExact(b)
	if err != nil || !q.Equal(a) {
		t.Errorf("DivExact = %v, %v", toBig(q), err)
	}
	defer func() {
		if recover() == nil {
			t.Error("DivExact with a remainder should panic")
		}
	}()
	_, _ = a.Mul(b).AddWord(1).DivExact(b)
}

func TestRemWord(t *testing.T) {
	t.Parallel()
	r := newRand(23)
	for _, n := range []int{0, 1, 2, 9, 40} {
		x := randomNat(r, n)
		for _, w := range []Word{1, 3, 10, 1000000007, ^Word(0)} {
			got, err := x.Rem(FromWord(w))
			if err != nil {
				t.Fatal(err)
			}
			want := new(big.Int).Rem(toBig(x), new(big.Int).SetUint64(uint64(w)))
			if toBig(got).Cmp(want) != 0 {
				t.Errorf("n=%d: Rem(%d) = %s, want %s", n, w, toBig(got), want)
			}
		}
	}
}

func BenchmarkDivRem(b *testing.B) {
	x, y := randomNat(newRand(1), 2000), randomNat(newRand(2), 1000)
	for _, tc := range []struct {
		name string
		th   Thresholds
	}{
		{"knuth", Thresholds{Newton: 1 << 30}},
		{"newton", Thresholds{Newton: 2}},
	} {
		b.Run(tc.name, func(b *testing.B) {
			for b.Loop() {
				_, _, _ = DivRemWith(x, y, tc.th)
			}
		})
	}
}
