package nat

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/agbru/bignum/numerr"
)

func TestILog(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		x, base Nat
		want    uint
		err     error
	}{
		{"decimal", FromUint64(1000), FromUint64(10), 3, nil},
		{"just below power", FromUint64(999), FromUint64(10), 2, nil},
		{"one", FromUint64(1), FromUint64(7), 0, nil},
		{"below base", FromUint64(6), FromUint64(7), 0, nil},
		{"power of two base", FromUint64(1).Lsh(100), FromUint64(8), 33, nil},
		{"big power", FromUint64(3).Pow(500), FromUint64(3), 500, nil},
		{"big power minus one", mustSub(FromUint64(3).Pow(500), FromUint64(1)), FromUint64(3), 499, nil},
		{"zero", Nat{}, FromUint64(10), 0, numerr.ErrDomain},
		{"base one", FromUint64(10), FromUint64(1), 0, numerr.ErrDomain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ILog(tt.x, tt.base)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Errorf("err = %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ILog = %d, %v; want %d", got, err, tt.want)
			}
		})
	}
}

func TestILogCorrectionSteps(t *testing.T) {
	t.Parallel()
	r := newRand(51)
	th := DefaultThresholds()
	for i := range 200 {
		x := randomNat(r, 1+i%40)
		b := randomNat(r, 1)
		if b.Cmp(FromUint64(2)) < 0 {
			continue
		}
		e, steps, err := ilog(x.view(), b.view(), th)
		if err != nil {
			t.Fatal(err)
		}
		if steps > 2 {
			t.Errorf("ilog took %d correction steps", steps)
		}
		// b**e <= x < b**(e+1)
		p := b.Pow(e)
		if p.Cmp(x) > 0 || p.Mul(b).Cmp(x) <= 0 {
			t.Errorf("ilog(%s, %s) = %d is not the floor logarithm", x, b, e)
		}
	}
}

func TestLog2Bounds(t *testing.T) {
	t.Parallel()
	r := newRand(52)
	for _, n := range []int{1, 2, 5, 50} {
		x := randomNat(r, n)
		lo, hi := x.Log2Bounds()
		// Compare against a high-precision logarithm from the bit length
		// and the leading 200 bits.
		f := new(big.Float).SetPrec(200).SetInt(toBig(x))
		mant := new(big.Float)
		exp := f.MantExp(mant)
		m, _ := mant.Float64()
		exact := float64(exp) + math.Log2(m)
		if lo > exact+1e-12 || hi < exact-1e-12 || lo > hi {
			t.Errorf("%d words: bounds [%v, %v] do not bracket %v", n, lo, hi, exact)
		}
	}
	for _, s := range []uint{0, 1, 64, 1000} {
		lo, hi := FromUint64(1).Lsh(s).Log2Bounds()
		if lo != float64(s) || hi != float64(s) {
			t.Errorf("2**%d: bounds [%v, %v], want exact", s, lo, hi)
		}
	}
	if lo, _ := (Nat{}).Log2Bounds(); !math.IsInf(lo, -1) {
		t.Errorf("Log2Bounds(0) = %v, want -Inf", lo)
	}
}

func mustSub(x, y Nat) Nat {
	z, err := x.Sub(y)
	if err != nil {
		panic(err)
	}
	return z
}

// Values on either side of an exact power are the hardest for the
// floating-point estimate.
func TestILogCorrectionStepsNearPowers(t *testing.T) {
	t.Parallel()
	th := DefaultThresholds()
	for base := Word(3); base <= 36; base++ {
		b := FromWord(base)
		for _, k := range []uint{1, 7, 64, 500, 3000} {
			p := b.Pow(k)
			below, err := p.SubWord(1)
			if err != nil {
				t.Fatal(err)
			}
			for _, tc := range []struct {
				x    Nat
				want uint
			}{{below, k - 1}, {p, k}, {p.AddWord(1), k}} {
				e, steps, err := ilog(tc.x.view(), b.view(), th)
				if err != nil || e != tc.want {
					t.Errorf("ilog near %d^%d = %d, %v; want %d", base, k, e, err, tc.want)
				}
				if steps > 2 {
					t.Errorf("ilog near %d^%d took %d correction steps", base, k, steps)
				}
			}
		}
	}
}
