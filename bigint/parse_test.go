package bigint

import (
	"errors"
	"testing"

	"github.com/agbru/bignum/numerr"
)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in    string
		radix int
		want  string
	}{
		{"0", 0, "0"},
		{"-0", 0, "0"},
		{"+42", 0, "42"},
		{"ff", 16, "255"},
		{"FF", 16, "255"},
		{"0xff", 0, "255"},
		{"0XFF", 16, "255"},
		{"-0b1010", 0, "-10"},
		{"0o777", 0, "511"},
		{"0o17", 8, "15"},
		{"0b1", 16, "177"},
		{"1_000_000", 0, "1000000"},
		{"zz", 36, "1295"},
		{"123456789012345678901234567890", 10, "123456789012345678901234567890"},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in, tt.radix)
		if err != nil {
			t.Errorf("Parse(%q, %d): %v", tt.in, tt.radix, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("Parse(%q, %d) = %s, want %s", tt.in, tt.radix, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in     string
		radix  int
		err    error
		offset int
	}{
		{"", 10, numerr.ErrEmptyString, -1},
		{"-", 10, numerr.ErrEmptyString, 1},
		{"0x", 0, numerr.ErrEmptyString, 2},
		{"12a", 10, numerr.ErrInvalidDigit, 2},
		{"0x1", 10, numerr.ErrInvalidDigit, 1},
		{"0b102", 0, numerr.ErrInvalidDigit, 4},
		{"_1", 10, numerr.ErrMalformedSeparator, 0},
		{"1__2", 10, numerr.ErrMalformedSeparator, 2},
		{"12_", 10, numerr.ErrMalformedSeparator, 2},
		{"0x_ff", 0, numerr.ErrMalformedSeparator, 2},
		{"12", 37, numerr.ErrUnsupportedRadix, -1},
		{"12", 1, numerr.ErrUnsupportedRadix, -1},
	}
	for _, tt := range tests {
		_, err := Parse(tt.in, tt.radix)
		if !errors.Is(err, tt.err) {
			t.Errorf("Parse(%q, %d): err = %v, want %v", tt.in, tt.radix, err, tt.err)
			continue
		}
		var pe *numerr.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("Parse(%q, %d): err %T is not a *ParseError", tt.in, tt.radix, err)
			continue
		}
		if pe.Offset != tt.offset || pe.Input != tt.in {
			t.Errorf("Parse(%q, %d): offset %d input %q, want %d", tt.in, tt.radix, pe.Offset, pe.Input, tt.offset)
		}
	}
}

func TestParserSeparator(t *testing.T) {
	t.Parallel()
	p := Parser{Radix: 10, Separator: '\''}
	got, err := p.Parse("1'234'567")
	if err != nil || got.String() != "1234567" {
		t.Errorf("Parse = %s, %v", got, err)
	}
	if _, err := p.Parse("1_234"); !errors.Is(err, numerr.ErrInvalidDigit) {
		t.Errorf("default separator with custom parser: err = %v", err)
	}
}

func TestMustParsePanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic")
		}
	}()
	MustParse("nope")
}
