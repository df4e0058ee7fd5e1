package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/bignum/bigfloat"
	"github.com/agbru/bignum/bigint"
	"github.com/agbru/bignum/internal/eval"
	"github.com/agbru/bignum/internal/orchestration"
)

func mustEval(t *testing.T, expr string) eval.Value {
	t.Helper()
	v, err := eval.New(eval.Options{Context: bigfloat.Context{Precision: 20}}).Evaluate(context.Background(), expr)
	if err != nil {
		t.Fatalf("%s: %v", expr, err)
	}
	return v
}

func TestDisplayResult(t *testing.T) {
	t.Parallel()
	big := mustEval(t, "2^400")
	tests := []struct {
		name    string
		value   eval.Value
		opts    orchestration.PresentationOptions
		want    []string
		notWant []string
	}{
		{
			name:    "small integer",
			value:   eval.IntValue(bigint.NewInt(1234567)),
			opts:    orchestration.PresentationOptions{Expr: "1234567", Radix: 10},
			want:    []string{"Expression:  1234567", "Strategy:    karatsuba", "21 bits (3 B)", "Digits:      7 (radix 10)", "Value:       1234567\n"},
			notWant: []string{"1,234,567"},
		},
		{
			name:    "truncated",
			value:   big,
			opts:    orchestration.PresentationOptions{Radix: 10},
			want:    []string{"(truncated)", "Tip: use -v", "digits elided"},
			notWant: []string{"Expression:"},
		},
		{
			name:    "verbose",
			value:   big,
			opts:    orchestration.PresentationOptions{Radix: 10, Verbose: true},
			want:    []string{"Value:       2582249878086908589655919172003011874329705792829223512830659356540647622016841194629645353280137831435903171972747493376\n"},
			notWant: []string{"truncated", ","},
		},
		{
			name:  "hexadecimal",
			value: eval.IntValue(bigint.NewInt(255)),
			opts:  orchestration.PresentationOptions{Radix: 16, Upper: true},
			want:  []string{"Value:       FF", "Digits:      2 (radix 16)"},
		},
		{
			name:  "float",
			value: mustEval(t, "1/3.0"),
			opts:  orchestration.PresentationOptions{Radix: 10},
			want:  []string{"base 10, precision 20 digits", "accuracy Below", "0.33333333333333333333"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			DisplayResult(&buf, orchestration.Result{Name: "karatsuba", Value: tt.value, Duration: time.Millisecond}, tt.opts)
			out := buf.String()
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("output lacks %q:\n%s", s, out)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(out, s) {
					t.Errorf("output contains %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestDisplayQuietResult(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplayQuietResult(&buf, eval.IntValue(bigint.NewInt(-255)), orchestration.PresentationOptions{Radix: 16})
	if buf.String() != "-ff\n" {
		t.Errorf("quiet output = %q", buf.String())
	}
}

func TestWriteResultToFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	r := orchestration.Result{Name: "toom3", Value: eval.IntValue(bigint.NewInt(55)), Duration: 100 * time.Millisecond}

	tests := []struct {
		name string
		path string
	}{
		{"plain", filepath.Join(dir, "result.txt")},
		{"nested directory", filepath.Join(dir, "nested", "dir", "result.txt")},
	}
	for _, tt := range tests {
		if err := WriteResultToFile(r, "5*11", OutputConfig{OutputFile: tt.path, Radix: 10}); err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		content, err := os.ReadFile(tt.path)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		for _, s := range []string{"# Expression: 5*11", "# Strategy: toom3", "# Bits: 6", "\n55\n"} {
			if !strings.Contains(string(content), s) {
				t.Errorf("%s: file lacks %q:\n%s", tt.name, s, content)
			}
		}
	}

	if err := WriteResultToFile(r, "x", OutputConfig{}); err != nil {
		t.Errorf("empty path: %v", err)
	}
	if err := WriteResultToFile(r, "x", OutputConfig{OutputFile: dir}); err == nil {
		t.Error("writing over a directory should fail")
	}
}
