package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Overrides
// ─────────────────────────────────────────────────────────────────────────────

// isFlagSetAny reports whether any of the named flags was given on the
// command line.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		for _, name := range names {
			if f.Name == name {
				found = true
			}
		}
	})
	return found
}

// envOverride maps an environment key (without BIGCALC_) to the flags it
// stands for and the function that applies its value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

func intOverride(dst func(*AppConfig) *int) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst(c) = parsed
		}
	}
}

func boolOverride(dst func(*AppConfig) *bool) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		p := dst(c)
		*p = parseBoolEnv(v, *p)
	}
}

func stringOverride(dst func(*AppConfig) *string) func(*AppConfig, string) {
	return func(c *AppConfig, v string) { *dst(c) = v }
}

// envOverrides is the declarative table of environment overrides.
var envOverrides = []envOverride{
	// Numeric
	{"RADIX", []string{"radix", "r"}, intOverride(func(c *AppConfig) *int { return &c.Radix })},
	{"PREC", []string{"prec", "p"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseUint(v, 10, 0); err == nil {
			c.Precision = uint(parsed)
		}
	}},
	{"FLOAT_BASE", []string{"float-base"}, intOverride(func(c *AppConfig) *int { return &c.FloatBase })},
	{"KARATSUBA_THRESHOLD", []string{"karatsuba-threshold"}, intOverride(func(c *AppConfig) *int { return &c.KaratsubaThreshold })},
	{"TOOM3_THRESHOLD", []string{"toom3-threshold"}, intOverride(func(c *AppConfig) *int { return &c.Toom3Threshold })},
	{"NEWTON_THRESHOLD", []string{"newton-threshold"}, intOverride(func(c *AppConfig) *int { return &c.NewtonThreshold })},

	// Duration
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	// String
	{"ROUND", []string{"round"}, stringOverride(func(c *AppConfig) *string { return &c.Rounding })},
	{"ALGO", []string{"algo"}, stringOverride(func(c *AppConfig) *string { return &c.Algo })},
	{"OUTPUT", []string{"output", "o"}, stringOverride(func(c *AppConfig) *string { return &c.OutputFile })},
	{"CALIBRATION_PROFILE", []string{"calibration-profile"}, stringOverride(func(c *AppConfig) *string { return &c.CalibrationProfile })},
	{"PORT", []string{"port"}, stringOverride(func(c *AppConfig) *string { return &c.Port })},
	{"LOG_LEVEL", []string{"log-level"}, stringOverride(func(c *AppConfig) *string { return &c.LogLevel })},

	// Boolean
	{"UPPER", []string{"upper"}, boolOverride(func(c *AppConfig) *bool { return &c.Upper })},
	{"VERBOSE", []string{"v", "verbose"}, boolOverride(func(c *AppConfig) *bool { return &c.Verbose })},
	{"QUIET", []string{"quiet", "q"}, boolOverride(func(c *AppConfig) *bool { return &c.Quiet })},
	{"JSON", []string{"json"}, boolOverride(func(c *AppConfig) *bool { return &c.JSONOutput })},
	{"TUI", []string{"tui"}, boolOverride(func(c *AppConfig) *bool { return &c.TUI })},
	{"SERVER", []string{"server"}, boolOverride(func(c *AppConfig) *bool { return &c.ServerMode })},
	{"NO_COLOR", []string{"no-color"}, boolOverride(func(c *AppConfig) *bool { return &c.NoColor })},
}

// parseBoolEnv accepts "true", "1", "yes" and "false", "0", "no" in any
// case, and returns defaultVal for anything else.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies the BIGCALC_* variables to every setting whose
// flag was not given explicitly.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
	if config.Expr == "" {
		config.Expr = os.Getenv(EnvPrefix + "EXPR")
	}
}
