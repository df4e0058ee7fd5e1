package nat

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/agbru/bignum/numerr"
)

func TestRepresentation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		words  []Word
		len    int
		inline bool
	}{
		{"zero", nil, 0, true},
		{"leading zeros only", []Word{0, 0, 0}, 0, true},
		{"one word", []Word{7}, 1, true},
		{"two words", []Word{1, 2}, 2, true},
		{"normalized to inline", []Word{1, 2, 0, 0}, 2, true},
		{"heap", []Word{1, 2, 3}, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			x := FromWords(tt.words)
			if x.Len() != tt.len {
				t.Errorf("Len() = %d, want %d", x.Len(), tt.len)
			}
			if x.IsInline() != tt.inline {
				t.Errorf("IsInline() = %v, want %v", x.IsInline(), tt.inline)
			}
			if got, want := x.Words(), []Word(nil); tt.len == 0 && !cmp.Equal(got, want) {
				t.Errorf("Words() = %v, want nil", got)
			}
		})
	}
}

func TestRepresentationIndependence(t *testing.T) {
	t.Parallel()
	// A heap value reduced to two words compares equal to an inline one.
	big3 := FromWords([]Word{5, 9, 1})
	inline := FromWords([]Word{5, 9})
	reduced, err := big3.Sub(FromWords([]Word{0, 0, 1}))
	if err != nil {
		t.Fatal(err)
	}
	if !reduced.IsInline() {
		t.Error("result with two words should be inline")
	}
	if !reduced.Equal(inline) || reduced.Cmp(inline) != 0 {
		t.Errorf("reduced = %v, want %v", reduced.Words(), inline.Words())
	}
	if var0 := (Nat{}); !var0.IsZero() || var0.Cmp(FromUint64(0)) != 0 {
		t.Error("zero value should equal FromUint64(0)")
	}
}

func TestFromWordsCopies(t *testing.T) {
	t.Parallel()
	ws := []Word{1, 2, 3, 4}
	x := FromWords(ws)
	ws[0] = 99
	if x.Word(0) != 1 {
		t.Error("FromWords must copy its input")
	}
	out := x.Words()
	out[1] = 42
	if x.Word(1) != 2 {
		t.Error("Words must return a copy")
	}
	if x.Word(10) != 0 {
		t.Error("Word beyond length should be 0")
	}
}

func TestCapacityPolicy(t *testing.T) {
	t.Parallel()
	z := make(vec, 100, 1000)
	for i := range z {
		z[i] = 1
	}
	x := fromVec(z)
	if c := cap(x.large); c > shrinkLimit(100) {
		t.Errorf("cap = %d, want <= %d", c, shrinkLimit(100))
	}
	if got := vec(nil).make(80); cap(got) != allocCap(80) {
		t.Errorf("make(80) cap = %d, want %d", cap(got), allocCap(80))
	}
}

func TestUint64(t *testing.T) {
	t.Parallel()
	for _, v := range []uint64{0, 1, 1<<32 - 1, 1 << 32, 1<<64 - 1} {
		got, ok := FromUint64(v).Uint64()
		if !ok || got != v {
			t.Errorf("Uint64(FromUint64(%d)) = %d, %v", v, got, ok)
		}
	}
	if _, ok := FromUint64(1).Lsh(64).Uint64(); ok {
		t.Error("2**64 should not fit in a uint64")
	}
}

func TestAddSub(t *testing.T) {
	t.Parallel()
	r := newRand(1)
	for _, n := range []int{0, 1, 2, 3, 17, 64} {
		x, y := randomNat(r, n), randomNat(r, n/2+1)
		sum := x.Add(y)
		if want := new(big.Int).Add(toBig(x), toBig(y)); toBig(sum).Cmp(want) != 0 {
			t.Errorf("Add(%d words) = %s, want %s", n, toBig(sum), want)
		}
		back, err := sum.Sub(y)
		if err != nil || !back.Equal(x) {
			t.Errorf("(x+y)-y != x for %d words (err %v)", n, err)
		}
	}
}

func TestSubUnderflow(t *testing.T) {
	t.Parallel()
	_, err := FromUint64(3).Sub(FromUint64(5))
	if !errors.Is(err, numerr.ErrUnderflow) {
		t.Errorf("3-5: err = %v, want ErrUnderflow", err)
	}
	if _, err := (Nat{}).SubWord(1); !errors.Is(err, numerr.ErrUnderflow) {
		t.Errorf("0-1: err = %v, want ErrUnderflow", err)
	}
	if got, err := FromUint64(5).SubWord(5); err != nil || !got.IsZero() {
		t.Errorf("5-5 = %v, %v", got, err)
	}
}

func TestWordOps(t *testing.T) {
	t.Parallel()
	x := FromWords([]Word{^Word(0), ^Word(0)})
	if got := x.AddWord(1); toBig(got).Cmp(new(big.Int).Lsh(big.NewInt(1), 2*WordBits)) != 0 {
		t.Errorf("AddWord carry = %s", toBig(got))
	}
	if got := x.MulWord(3); toBig(got).Cmp(new(big.Int).Mul(toBig(x), big.NewInt(3))) != 0 {
		t.Errorf("MulWord = %s", toBig(got))
	}
	q, rem, err := FromUint64(17).DivRemWord(5)
	if err != nil || q.Word(0) != 3 || rem != 2 {
		t.Errorf("17/5 = (%v, %d, %v), want (3, 2)", q.Words(), rem, err)
	}
	if _, _, err := x.DivRemWord(0); !errors.Is(err, numerr.ErrDivisionByZero) {
		t.Errorf("DivRemWord(0) err = %v", err)
	}
}

func TestShifts(t *testing.T) {
	t.Parallel()
	x := randomNat(newRand(2), 5)
	for _, s := range []uint{0, 1, 63, 64, 65, 200, 1000} {
		if got, want := toBig(x.Lsh(s)), new(big.Int).Lsh(toBig(x), s); got.Cmp(want) != 0 {
			t.Errorf("Lsh(%d) = %s, want %s", s, got, want)
		}
		if got, want := toBig(x.Rsh(s)), new(big.Int).Rsh(toBig(x), s); got.Cmp(want) != 0 {
			t.Errorf("Rsh(%d) = %s, want %s", s, got, want)
		}
	}
}

func TestBitOps(t *testing.T) {
	t.Parallel()
	r := newRand(3)
	x, y := randomNat(r, 4), randomNat(r, 2)
	bx, by := toBig(x), toBig(y)
	tests := []struct {
		name string
		got  Nat
		want *big.Int
	}{
		{"and", x.And(y), new(big.Int).And(bx, by)},
		{"or", x.Or(y), new(big.Int).Or(bx, by)},
		{"xor", x.Xor(y), new(big.Int).Xor(bx, by)},
		{"andnot", x.AndNot(y), new(big.Int).AndNot(bx, by)},
		{"andnot reversed", y.AndNot(x), new(big.Int).AndNot(by, bx)},
		{"setbit high", x.SetBit(300, 1), new(big.Int).SetBit(bx, 300, 1)},
		{"clearbit", x.SetBit(0, 0), new(big.Int).SetBit(bx, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if toBig(tt.got).Cmp(tt.want) != 0 {
				t.Errorf("got %s, want %s", toBig(tt.got), tt.want)
			}
		})
	}

	if x.BitLen() != bx.BitLen() {
		t.Errorf("BitLen = %d, want %d", x.BitLen(), bx.BitLen())
	}
	for _, i := range []uint{0, 5, 64, 130, 400} {
		if x.Bit(i) != bx.Bit(int(i)) {
			t.Errorf("Bit(%d) = %d, want %d", i, x.Bit(i), bx.Bit(int(i)))
		}
	}
	p := FromUint64(1).Lsh(200)
	if !p.IsPowerOfTwo() || p.TrailingZeros() != 200 {
		t.Errorf("2**200: IsPowerOfTwo=%v TrailingZeros=%d", p.IsPowerOfTwo(), p.TrailingZeros())
	}
	if p.AddWord(1).IsPowerOfTwo() || (Nat{}).IsPowerOfTwo() {
		t.Error("2**200+1 and 0 are not powers of two")
	}
}

func TestBytes(t *testing.T) {
	t.Parallel()
	x := randomNat(newRand(4), 3)
	be := x.Bytes(BigEndian)
	if want := toBig(x).Bytes(); !cmp.Equal(be, want) {
		t.Errorf("Bytes(BigEndian) = %x, want %x", be, want)
	}
	if !FromBytes(be, BigEndian).Equal(x) {
		t.Error("FromBytes(BigEndian) round trip failed")
	}
	if !FromBytes(x.Bytes(LittleEndian), LittleEndian).Equal(x) {
		t.Error("FromBytes(LittleEndian) round trip failed")
	}
	if len((Nat{}).Bytes(BigEndian)) != 0 {
		t.Error("Bytes of zero should be empty")
	}
}

func TestFloat64(t *testing.T) {
	t.Parallel()
	r := newRand(5)
	for _, n := range []int{0, 1, 2, 3, 20} {
		x := randomNat(r, n)
		want, _ := new(big.Float).SetInt(toBig(x)).Float64()
		if got := x.Float64(); got != want {
			t.Errorf("Float64(%d words) = %g, want %g", n, got, want)
		}
	}
	// 2**64 + 2**11 + 1 lies just above the midpoint between representable
	// neighbours and must round up.
	x := FromUint64(1).Lsh(64).AddWord(1<<11 + 1)
	want, _ := new(big.Float).SetInt(toBig(x)).Float64()
	if got := x.Float64(); got != want {
		t.Errorf("sticky rounding: got %g, want %g", got, want)
	}
}
