// Package config defines the configuration of the bigcalc application: the
// command-line flags, their BIGCALC_* environment overrides and the
// validation of the resulting values.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/bignum/bigfloat"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/nat"
)

// EnvPrefix is the prefix of every environment variable read by bigcalc.
const EnvPrefix = "BIGCALC_"

// Default configuration values.
const (
	DefaultRadix     = 10
	DefaultPrecision = 50
	DefaultRounding  = "even"
	DefaultFloatBase = 10
	DefaultAlgo      = "auto"
	DefaultTimeout   = 5 * time.Minute
	DefaultPort      = "8080"
	DefaultLogLevel  = "warn"
)

// AlgoAll runs the expression under every multiplication strategy and
// compares the results.
const AlgoAll = "all"

// Algorithms lists the accepted values of --algo.
var Algorithms = []string{"auto", "schoolbook", "karatsuba", "toom3", AlgoAll}

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Expr is the expression to evaluate, taken from the positional
	// arguments.
	Expr string
	// Radix is the output radix of integer results (2..36).
	Radix int
	// Upper selects upper-case digits above 9.
	Upper bool
	// Precision is the number of significant digits of float results;
	// 0 keeps every digit and fails on non-terminating divisions.
	Precision uint
	// Rounding is the name of the float rounding mode.
	Rounding string
	// FloatBase is the radix in which float results are held and printed.
	FloatBase int
	// Algo is the multiplication strategy, or "all" to cross-check them.
	Algo string
	// KaratsubaThreshold, Toom3Threshold and NewtonThreshold are the
	// crossovers in words; zero means adaptive or calibrated.
	KaratsubaThreshold int
	Toom3Threshold     int
	NewtonThreshold    int
	// Timeout bounds a single evaluation.
	Timeout time.Duration
	// Verbose prints the timing and size details of a result.
	Verbose bool
	// Quiet prints the bare result only.
	Quiet bool
	// JSONOutput prints the result as a JSON object.
	JSONOutput bool
	// OutputFile, if set, also writes the result to this path.
	OutputFile string
	// Interactive starts the REPL.
	Interactive bool
	// TUI starts the dashboard.
	TUI bool
	// Calibrate runs the crossover benchmarks.
	Calibrate bool
	// CalibrationProfile is the profile path; empty means the default
	// path in the home directory.
	CalibrationProfile string
	// ServerMode starts the HTTP API on Port.
	ServerMode bool
	Port       string
	// NoColor disables colour output (NO_COLOR is honoured too).
	NoColor bool
	// LogLevel is the zerolog level name.
	LogLevel string
	// Completion prints a shell completion script for the named shell.
	Completion string
}

// needsExpr reports whether the selected mode evaluates Expr.
func (c AppConfig) needsExpr() bool {
	return !c.Interactive && !c.TUI && !c.Calibrate && !c.ServerMode && c.Completion == ""
}

// Validate checks the semantic consistency of the configuration. It returns
// an apperrors.ConfigError describing the first problem found.
func (c AppConfig) Validate() error {
	if c.needsExpr() && strings.TrimSpace(c.Expr) == "" {
		return apperrors.NewConfigError("no expression given")
	}
	if c.Radix < nat.MinRadix || c.Radix > nat.MaxRadix {
		return apperrors.NewConfigError("radix must be in [%d, %d]: %d", nat.MinRadix, nat.MaxRadix, c.Radix)
	}
	if c.FloatBase < nat.MinRadix || c.FloatBase > nat.MaxRadix {
		return apperrors.NewConfigError("float base must be in [%d, %d]: %d", nat.MinRadix, nat.MaxRadix, c.FloatBase)
	}
	if _, err := bigfloat.ParseRoundingMode(c.Rounding); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	if !slices.Contains(Algorithms, c.Algo) {
		return apperrors.NewConfigError("unrecognized algorithm: '%s'. Valid algorithms are: [%s]", c.Algo, strings.Join(Algorithms, ", "))
	}
	for _, th := range []struct {
		name string
		v    int
	}{
		{"karatsuba", c.KaratsubaThreshold},
		{"toom3", c.Toom3Threshold},
		{"newton", c.NewtonThreshold},
	} {
		if th.v < 0 {
			return apperrors.NewConfigError("%s threshold cannot be negative: %d", th.name, th.v)
		}
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("invalid log level %q", c.LogLevel)
	}
	switch c.Completion {
	case "", "bash", "zsh", "fish", "powershell":
	default:
		return apperrors.NewConfigError("unsupported shell for completion: %q", c.Completion)
	}
	return nil
}

// FloatContext returns the arithmetic context of float results. It assumes
// a validated configuration.
func (c AppConfig) FloatContext() bigfloat.Context {
	mode, _ := bigfloat.ParseRoundingMode(c.Rounding)
	return bigfloat.Context{Precision: c.Precision, Rounding: mode}
}

// Thresholds returns the crossover settings; zero fields select defaults.
func (c AppConfig) Thresholds() nat.Thresholds {
	return nat.Thresholds{
		Karatsuba: c.KaratsubaThreshold,
		Toom3:     c.Toom3Threshold,
		Newton:    c.NewtonThreshold,
	}
}

// MulAlgorithms returns the strategies an evaluation runs under: one for a
// named algorithm, all three forced ones for "all".
func (c AppConfig) MulAlgorithms() []nat.MulAlgorithm {
	if c.Algo == AlgoAll {
		return []nat.MulAlgorithm{nat.Schoolbook, nat.Karatsuba, nat.Toom3}
	}
	a, err := nat.ParseMulAlgorithm(c.Algo)
	if err != nil {
		return []nat.MulAlgorithm{nat.Auto}
	}
	return []nat.MulAlgorithm{a}
}

// ParseConfig parses args (typically os.Args[1:]) into an AppConfig. Flags
// win over BIGCALC_* variables, which win over defaults. Parse errors and
// usage go to errorWriter.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.IntVar(&config.Radix, "radix", DefaultRadix, "Output radix of integer results (2-36).")
	fs.IntVar(&config.Radix, "r", DefaultRadix, "Output radix (shorthand).")
	fs.BoolVar(&config.Upper, "upper", false, "Use upper-case digits above 9.")
	fs.UintVar(&config.Precision, "prec", DefaultPrecision, "Significant digits of float results (0 = exact).")
	fs.UintVar(&config.Precision, "p", DefaultPrecision, "Precision (shorthand).")
	fs.StringVar(&config.Rounding, "round", DefaultRounding, "Rounding mode of float results.")
	fs.IntVar(&config.FloatBase, "float-base", DefaultFloatBase, "Radix of float results (2-36).")
	fs.StringVar(&config.Algo, "algo", DefaultAlgo, fmt.Sprintf("Multiplication strategy: one of [%s].", strings.Join(Algorithms, ", ")))
	fs.IntVar(&config.KaratsubaThreshold, "karatsuba-threshold", 0, "Karatsuba crossover in words (0 = adaptive).")
	fs.IntVar(&config.Toom3Threshold, "toom3-threshold", 0, "Toom-3 crossover in words (0 = adaptive).")
	fs.IntVar(&config.NewtonThreshold, "newton-threshold", 0, "Newton division crossover in words (0 = adaptive).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum duration of an evaluation.")
	fs.BoolVar(&config.Verbose, "v", false, "Display timing and size details.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Alias for -v.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - print the bare result.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.JSONOutput, "json", false, "Print the result as JSON.")
	fs.StringVar(&config.OutputFile, "output", "", "Also write the result to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file (shorthand).")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start the interactive REPL.")
	fs.BoolVar(&config.Interactive, "i", false, "Interactive REPL (shorthand).")
	fs.BoolVar(&config.TUI, "tui", false, "Start the interactive dashboard.")
	fs.BoolVar(&config.Calibrate, "calibrate", false, "Measure the algorithm crossovers of this machine.")
	fs.StringVar(&config.CalibrationProfile, "calibration-profile", "", "Path of the calibration profile (default: ~/.bigcalc_calibration.json).")
	fs.BoolVar(&config.ServerMode, "server", false, "Start in HTTP server mode.")
	fs.StringVar(&config.Port, "port", DefaultPort, "Port to listen on in server mode.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level (trace, debug, info, warn, error, disabled).")
	fs.StringVar(&config.Completion, "completion", "", "Generate shell completion script (bash, zsh, fish, powershell).")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	config.Expr = strings.Join(fs.Args(), " ")

	applyEnvOverrides(&config, fs)

	config.Algo = strings.ToLower(config.Algo)
	config.LogLevel = strings.ToLower(config.LogLevel)
	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}
