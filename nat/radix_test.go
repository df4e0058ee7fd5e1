package nat

import (
	"errors"
	"strings"
	"testing"

	"github.com/agbru/bignum/numerr"
)

func TestTextMatchesBig(t *testing.T) {
	t.Parallel()
	r := newRand(41)
	for _, n := range []int{0, 1, 2, 3, 33, 90, 400} {
		x := randomNat(r, n)
		for radix := MinRadix; radix <= MaxRadix; radix++ {
			if got, want := x.Text(radix), toBig(x).Text(radix); got != want {
				t.Fatalf("%d words radix %d: got %.40s..., want %.40s...", n, radix, got, want)
			}
		}
	}
}

func TestTextUpper(t *testing.T) {
	t.Parallel()
	x := FromUint64(0xdeadbeef)
	if got := x.TextUpper(16); got != "DEADBEEF" {
		t.Errorf("TextUpper(16) = %s", got)
	}
	if got := string(x.AppendText([]byte("0x"), 16, false)); got != "0xdeadbeef" {
		t.Errorf("AppendText = %s", got)
	}
}

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()
	r := newRand(42)
	for _, n := range []int{1, 2, 40, 700} {
		x := randomNat(r, n)
		for _, radix := range []int{2, 3, 8, 10, 16, 36} {
			s := x.Text(radix)
			got, err := Parse(s, radix)
			if err != nil {
				t.Fatalf("Parse(%d digits, %d): %v", len(s), radix, err)
			}
			if !got.Equal(x) {
				t.Errorf("%d words radix %d: round trip mismatch", n, radix)
			}
		}
	}
}

func TestParseLongDecimal(t *testing.T) {
	t.Parallel()
	// Long enough to take the divide-and-conquer path.
	s := "1" + strings.Repeat("0", 3*leafDigits)
	x, err := Parse(s, 10)
	if err != nil {
		t.Fatal(err)
	}
	if want := FromUint64(10).Pow(uint(3 * leafDigits)); !x.Equal(want) {
		t.Error("10**n parsed incorrectly")
	}
	if x.String() != s {
		t.Error("10**n formatted incorrectly")
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		s      string
		radix  int
		err    error
		offset int
	}{
		{"empty", "", 10, numerr.ErrEmptyString, -1},
		{"bad digit", "12z4", 10, numerr.ErrInvalidDigit, 2},
		{"digit equal to radix", "102", 2, numerr.ErrInvalidDigit, 2},
		{"radix too small", "1", 1, numerr.ErrUnsupportedRadix, -1},
		{"radix too large", "1", 37, numerr.ErrUnsupportedRadix, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tt.s, tt.radix)
			if !errors.Is(err, tt.err) {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}
			var pe *numerr.ParseError
			if !errors.As(err, &pe) || pe.Offset != tt.offset {
				t.Errorf("ParseError = %+v, want offset %d", pe, tt.offset)
			}
		})
	}
}

func TestParseCaseInsensitive(t *testing.T) {
	t.Parallel()
	a, _ := Parse("DeadBeef", 16)
	b, _ := Parse("deadbeef", 16)
	if !a.Equal(b) || a.Word(0) != 0xdeadbeef {
		t.Errorf("case-insensitive parse mismatch: %v vs %v", a.Words(), b.Words())
	}
	if ff, _ := Parse("ff", 16); ff.String() != "255" {
		t.Errorf("ff = %s, want 255", ff)
	}
}

func TestFromDigits(t *testing.T) {
	t.Parallel()
	x, err := FromDigits([]byte{1, 0, 2, 4}, 10)
	if err != nil || x.String() != "1024" {
		t.Errorf("FromDigits = %s, %v", x, err)
	}
	if _, err := FromDigits([]byte{1, 10}, 10); !errors.Is(err, numerr.ErrInvalidDigit) {
		t.Errorf("FromDigits invalid digit: err = %v", err)
	}
}

func TestTextPanicsOnBadRadix(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("Text(1) should panic")
		}
	}()
	_ = FromUint64(5).Text(1)
}

func BenchmarkText(b *testing.B) {
	x := randomNat(newRand(1), 4000)
	b.ReportAllocs()
	for b.Loop() {
		_ = x.String()
	}
}
