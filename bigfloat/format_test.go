package bigfloat

import (
	"errors"
	"testing"

	"github.com/agbru/bignum/nat"
	"github.com/agbru/bignum/numerr"
)

func TestParseText(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		base nat.Word
		want string
	}{
		{"123.45", 10, "123.45"},
		{"-0.5", 10, "-0.5"},
		{"+7", 10, "7"},
		{"0.000", 10, "0"},
		{"1e20", 10, "100000000000000000000"},
		{"1e21", 10, "1e+21"},
		{"1.5E-7", 10, "1.5e-7"},
		{"0.000001", 10, "0.000001"},
		{"0.0000001", 10, "1e-7"},
		{"12.5e+3", 10, "12500"},
		{"2@3", 10, "2000"},
		{"ff.8", 16, "ff.8"},
		{"1e5", 16, "1e5"},
		{"0x1.8p3", 2, "1100"},
		{"-0x.1p0", 2, "-0.0001"},
		{"1@10", 2, "10000000000"},
		{"1@-30", 7, "1@-30"},
		{"11.01", 2, "11.01"},
	}
	for _, tt := range tests {
		f, acc, err := Parse(tt.in, tt.base, Context{})
		if err != nil || acc != Exact {
			t.Errorf("Parse(%q, %d): %v, %v", tt.in, tt.base, acc, err)
			continue
		}
		if got := f.String(); got != tt.want {
			t.Errorf("Parse(%q, %d) = %s, want %s", tt.in, tt.base, got, tt.want)
		}
		back, _, err := Parse(f.String(), tt.base, Context{})
		if err != nil || !back.Equal(f) {
			t.Errorf("reparse of %s = %s, %v", f, back, err)
		}
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in     string
		base   nat.Word
		err    error
		offset int
	}{
		{"", 10, numerr.ErrEmptyString, -1},
		{"-", 10, numerr.ErrEmptyString, 1},
		{".", 10, numerr.ErrEmptyString, 0},
		{"1.2.3", 10, numerr.ErrInvalidDigit, 3},
		{"abc", 10, numerr.ErrInvalidDigit, 0},
		{"1e", 10, numerr.ErrEmptyString, 2},
		{"1e+", 10, numerr.ErrEmptyString, 3},
		{"1e5x", 10, numerr.ErrInvalidDigit, 3},
		{"12", 2, numerr.ErrInvalidDigit, 1},
		{"1p3", 2, numerr.ErrInvalidDigit, 1},
		{"1", 40, numerr.ErrUnsupportedRadix, -1},
		{"1e99999999999999999999", 10, numerr.ErrConversionOverflow, 2},
	}
	for _, tt := range tests {
		_, _, err := Parse(tt.in, tt.base, Context{})
		var pe *numerr.ParseError
		if !errors.Is(err, tt.err) || !errors.As(err, &pe) {
			t.Errorf("Parse(%q, %d): err = %v, want %v", tt.in, tt.base, err, tt.err)
			continue
		}
		if pe.Offset != tt.offset {
			t.Errorf("Parse(%q, %d): offset %d, want %d", tt.in, tt.base, pe.Offset, tt.offset)
		}
	}
}

func TestParseRounds(t *testing.T) {
	t.Parallel()
	f, acc, err := Parse("3.14159", 10, Context{Precision: 3})
	if err != nil || f.String() != "3.14" || acc != Below {
		t.Errorf("Parse = %s, %v, %v", f, acc, err)
	}
}

func TestTextDigits(t *testing.T) {
	t.Parallel()
	pi := mustParse("3.14159", 10, 0)
	tests := []struct {
		x      Float
		digits int
		want   string
	}{
		{pi, 0, "3.14159"},
		{pi, 3, "3.14"},
		{pi.WithRounding(ToPositiveInf), 3, "3.15"},
		{pi, 10, "3.14159"},
		{mustParse("-9.996", 10, 0), 3, "-10"},
		{mustParse("123456", 10, 0), 2, "120000"},
	}
	for _, tt := range tests {
		if got := tt.x.Text(tt.digits); got != tt.want {
			t.Errorf("Text(%s, %d) = %s, want %s", tt.x, tt.digits, got, tt.want)
		}
	}
}
