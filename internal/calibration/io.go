package calibration

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/agbru/bignum/internal/format"
	"github.com/agbru/bignum/internal/ui"
	"github.com/agbru/bignum/nat"
)

// printCalibrationResults prints one table per crossover.
func printCalibrationResults(out io.Writer, crossovers []Crossover) {
	fmt.Fprintf(out, "\n--- Calibration Summary ---\n")
	for _, c := range crossovers {
		fmt.Fprintf(out, "\n%s%s vs %s%s\n", ui.ColorBold(), c.Candidate, c.Baseline, ui.ColorReset())
		tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintf(tw, "  %sSize%s\t│ %s%s%s\t│ %s%s%s\n",
			ui.ColorUnderline(), ui.ColorReset(),
			ui.ColorUnderline(), c.Baseline, ui.ColorReset(),
			ui.ColorUnderline(), c.Candidate, ui.ColorReset())
		fmt.Fprintf(tw, "  %s┼%s┼%s\n", strings.Repeat("─", 12), strings.Repeat("─", 14), strings.Repeat("─", 20))
		for _, m := range c.Measurements {
			base, cand := fmt.Sprintf("%sN/A%s", ui.ColorRed(), ui.ColorReset()), ""
			if m.Err == nil {
				base, cand = displayDuration(m.Baseline), displayDuration(m.Candidate)
			}
			highlight := ""
			if m.Size == c.Threshold {
				highlight = fmt.Sprintf(" %s(Crossover)%s", ui.ColorGreen(), ui.ColorReset())
			}
			fmt.Fprintf(tw, "  %s%d words%s\t│ %s%s%s\t│ %s%s%s%s\n",
				ui.ColorCyan(), m.Size, ui.ColorReset(),
				ui.ColorYellow(), base, ui.ColorReset(),
				ui.ColorYellow(), cand, ui.ColorReset(), highlight)
		}
		tw.Flush()
		if !c.Found() {
			fmt.Fprintf(out, "  %sNo crossover in the measured range; the default is kept.%s\n", ui.ColorYellow(), ui.ColorReset())
		}
	}
}

func displayDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// printCalibrationOutput prints the flags reproducing the measured
// thresholds.
func printCalibrationOutput(out io.Writer, th nat.Thresholds) {
	fmt.Fprintf(out, "\n%s✅ Recommendation for this machine:%s", ui.ColorGreen(), ui.ColorReset())
	for _, f := range []struct {
		flag  string
		value int
	}{
		{"karatsuba-threshold", th.Karatsuba},
		{"toom3-threshold", th.Toom3},
		{"newton-threshold", th.Newton},
	} {
		if f.value > 0 {
			fmt.Fprintf(out, " %s--%s %d%s", ui.ColorYellow(), f.flag, f.value, ui.ColorReset())
		}
	}
	fmt.Fprintln(out)
}
