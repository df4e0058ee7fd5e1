package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/orchestration"
	"github.com/agbru/bignum/internal/ui"
	"github.com/agbru/bignum/nat"
)

// PrintExecutionConfig shows the expression, limits, environment and
// active crossover thresholds.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Evaluating %s%s%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.Expr, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	features := "none detected"
	if fs := config.CPUFeatures(); len(fs) > 0 {
		features = strings.Join(fs, " ")
	}
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s, CPU features: %s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset(), features)
	fmt.Fprintf(out, "Floats: base %s%d%s, precision %s%d%s, rounding %s%s%s.\n",
		ui.ColorCyan(), cfg.FloatBase, ui.ColorReset(),
		ui.ColorCyan(), cfg.Precision, ui.ColorReset(),
		ui.ColorCyan(), cfg.FloatContext().Rounding, ui.ColorReset())
	th := nat.CurrentThresholds()
	fmt.Fprintf(out, "Thresholds (words): Karatsuba=%s%d%s, Toom-3=%s%d%s, Newton=%s%d%s.\n",
		ui.ColorCyan(), th.Karatsuba, ui.ColorReset(),
		ui.ColorCyan(), th.Toom3, ui.ColorReset(),
		ui.ColorCyan(), th.Newton, ui.ColorReset())
}

// PrintExecutionMode states whether one strategy runs or several are
// compared.
func PrintExecutionMode(strategies []orchestration.Strategy, out io.Writer) {
	var mode string
	if len(strategies) > 1 {
		mode = "Parallel comparison of all multiplication strategies"
	} else {
		mode = fmt.Sprintf("Single evaluation with the %s%s%s strategy",
			ui.ColorGreen(), strategies[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", mode)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
