package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/agbru/bignum/bigfloat"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/nat"
)

func validConfig() AppConfig {
	return AppConfig{
		Expr:      "1+1",
		Radix:     DefaultRadix,
		Precision: DefaultPrecision,
		Rounding:  DefaultRounding,
		FloatBase: DefaultFloatBase,
		Algo:      DefaultAlgo,
		Timeout:   DefaultTimeout,
		Port:      DefaultPort,
		LogLevel:  DefaultLogLevel,
	}
}

func TestParseConfigDefaults(t *testing.T) {
	var buf bytes.Buffer
	cfg, err := ParseConfig("bigcalc", []string{"2^64", "+", "1"}, &buf)
	if err != nil {
		t.Fatalf("ParseConfig: %v\n%s", err, buf.String())
	}
	want := validConfig()
	want.Expr = "2^64 + 1"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigFlags(t *testing.T) {
	var buf bytes.Buffer
	args := []string{
		"-r", "16", "--upper", "-p", "0", "--round", "floor", "--float-base", "2",
		"--algo", "ALL", "--karatsuba-threshold", "24", "--timeout", "3s",
		"-q", "-o", "out.txt", "--log-level", "DEBUG", "x",
	}
	cfg, err := ParseConfig("bigcalc", args, &buf)
	if err != nil {
		t.Fatalf("ParseConfig: %v\n%s", err, buf.String())
	}
	if cfg.Radix != 16 || !cfg.Upper || cfg.Precision != 0 || cfg.FloatBase != 2 {
		t.Errorf("numeric flags not applied: %+v", cfg)
	}
	if cfg.Algo != AlgoAll || cfg.LogLevel != "debug" {
		t.Errorf("flags should be lower-cased: algo=%q level=%q", cfg.Algo, cfg.LogLevel)
	}
	if cfg.KaratsubaThreshold != 24 || cfg.Timeout != 3*time.Second || !cfg.Quiet || cfg.OutputFile != "out.txt" {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if got := cfg.FloatContext(); got != (bigfloat.Context{Precision: 0, Rounding: bigfloat.ToNegativeInf}) {
		t.Errorf("FloatContext() = %+v", got)
	}
	if got := cfg.MulAlgorithms(); len(got) != 3 {
		t.Errorf("MulAlgorithms() for all = %v", got)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BIGCALC_RADIX", "2")
	t.Setenv("BIGCALC_PREC", "12")
	t.Setenv("BIGCALC_ALGO", "toom3")
	t.Setenv("BIGCALC_TIMEOUT", "1m")
	t.Setenv("BIGCALC_VERBOSE", "yes")
	t.Setenv("BIGCALC_EXPR", "3*3")
	t.Setenv("BIGCALC_NEWTON_THRESHOLD", "not-a-number")

	var buf bytes.Buffer
	cfg, err := ParseConfig("bigcalc", []string{"--radix", "8"}, &buf)
	if err != nil {
		t.Fatalf("ParseConfig: %v\n%s", err, buf.String())
	}
	if cfg.Radix != 8 {
		t.Errorf("flag should win over env: radix = %d", cfg.Radix)
	}
	if cfg.Precision != 12 || cfg.Algo != "toom3" || cfg.Timeout != time.Minute || !cfg.Verbose {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if cfg.Expr != "3*3" {
		t.Errorf("Expr = %q, want BIGCALC_EXPR", cfg.Expr)
	}
	if cfg.NewtonThreshold != 0 {
		t.Errorf("invalid env value should be ignored, got %d", cfg.NewtonThreshold)
	}
	if got := cfg.MulAlgorithms(); len(got) != 1 || got[0] != nat.Toom3 {
		t.Errorf("MulAlgorithms() = %v", got)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(*AppConfig)
		errSub string
	}{
		{"valid", func(*AppConfig) {}, ""},
		{"no expression", func(c *AppConfig) { c.Expr = "  " }, "no expression"},
		{"no expression in server mode", func(c *AppConfig) { c.Expr = ""; c.ServerMode = true }, ""},
		{"radix too small", func(c *AppConfig) { c.Radix = 1 }, "radix"},
		{"radix too large", func(c *AppConfig) { c.Radix = 37 }, "radix"},
		{"float base", func(c *AppConfig) { c.FloatBase = 0 }, "float base"},
		{"rounding", func(c *AppConfig) { c.Rounding = "sideways" }, "sideways"},
		{"algorithm", func(c *AppConfig) { c.Algo = "fft" }, "unrecognized algorithm"},
		{"negative threshold", func(c *AppConfig) { c.Toom3Threshold = -1 }, "toom3 threshold"},
		{"timeout", func(c *AppConfig) { c.Timeout = 0 }, "timeout"},
		{"log level", func(c *AppConfig) { c.LogLevel = "loud" }, "log level"},
		{"completion", func(c *AppConfig) { c.Completion = "tcsh" }, "completion"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.errSub == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var cfgErr apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() = %v, want ConfigError", err)
			}
			if !strings.Contains(err.Error(), tt.errSub) {
				t.Errorf("Validate() = %q, want it to mention %q", err, tt.errSub)
			}
		})
	}
}

func TestParseConfigInvalidPrintsUsage(t *testing.T) {
	var buf bytes.Buffer
	_, err := ParseConfig("bigcalc", []string{"--radix", "99", "1"}, &buf)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(buf.String(), "Configuration error") || !strings.Contains(buf.String(), "Usage:") {
		t.Errorf("usage not printed:\n%s", buf.String())
	}
}

func TestApplyAdaptiveThresholds(t *testing.T) {
	t.Parallel()
	cfg := ApplyAdaptiveThresholds(AppConfig{Toom3Threshold: 500})
	if cfg.Toom3Threshold != 500 {
		t.Errorf("explicit threshold overwritten: %d", cfg.Toom3Threshold)
	}
	if cfg.KaratsubaThreshold <= 0 || cfg.NewtonThreshold <= cfg.KaratsubaThreshold {
		t.Errorf("implausible estimates: %+v", cfg.Thresholds())
	}
}

func TestInstallThresholds(t *testing.T) {
	orig := nat.CurrentThresholds()
	defer nat.SetThresholds(orig)

	var buf bytes.Buffer
	logger := logging.NewLogger(&buf, "config")
	InstallThresholds(nat.Thresholds{Karatsuba: 17, Toom3: 99, Newton: 200}, logger)
	if got := nat.CurrentThresholds(); got.Karatsuba != 17 || got.Toom3 != 99 {
		t.Errorf("thresholds not installed: %v", got)
	}
	if !strings.Contains(buf.String(), "karatsuba=17") {
		t.Errorf("change not logged: %s", buf.String())
	}
}
