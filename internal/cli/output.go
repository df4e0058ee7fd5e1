// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a string without performing I/O.
//   - Write* functions write to files.

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/bignum/internal/eval"
	"github.com/agbru/bignum/internal/format"
	"github.com/agbru/bignum/internal/orchestration"
	"github.com/agbru/bignum/internal/ui"
)

// OutputConfig holds the settings for saving a result.
type OutputConfig struct {
	// OutputFile is the destination path; empty disables file output.
	OutputFile string
	Quiet      bool
	Radix      int
	Upper      bool
}

// FormatQuietResult returns the bare value text, for scripts.
func FormatQuietResult(v eval.Value, opts orchestration.PresentationOptions) string {
	return v.Text(opts.Radix, opts.Upper)
}

// DisplayQuietResult prints the bare value on one line.
func DisplayQuietResult(out io.Writer, v eval.Value, opts orchestration.PresentationOptions) {
	fmt.Fprintln(out, FormatQuietResult(v, opts))
}

// digitCount counts the digits of a rendered integer, ignoring its sign.
func digitCount(text string) int {
	return len(strings.TrimPrefix(text, "-"))
}

// DisplayResult prints a result with its size, timing and, unless it is
// long and opts.Verbose is off, its full value.
func DisplayResult(out io.Writer, r orchestration.Result, opts orchestration.PresentationOptions) {
	v := r.Value
	text := v.Text(opts.Radix, opts.Upper)

	fmt.Fprintf(out, "\n%s--- Result ---%s\n", ui.ColorBold(), ui.ColorReset())
	if opts.Expr != "" {
		fmt.Fprintf(out, "Expression:  %s%s%s\n", ui.ColorMagenta(), opts.Expr, ui.ColorReset())
	}
	fmt.Fprintf(out, "Strategy:    %s%s%s\n", ui.ColorCyan(), r.Name, ui.ColorReset())
	fmt.Fprintf(out, "Time:        %s%s%s\n", ui.ColorGreen(), format.FormatExecutionDuration(r.Duration), ui.ColorReset())

	switch v.Kind() {
	case eval.KindInt:
		fmt.Fprintf(out, "Size:        %s%s%s\n", ui.ColorCyan(), format.FormatBits(v.BitLen()), ui.ColorReset())
		fmt.Fprintf(out, "Digits:      %s%s%s (radix %d)\n", ui.ColorCyan(), format.FormatCount(int64(digitCount(text))), ui.ColorReset(), opts.Radix)
	case eval.KindFloat:
		f, _ := v.Float()
		prec := "unbounded"
		if p := f.Precision(); p > 0 {
			prec = fmt.Sprintf("%d digits", p)
		}
		fmt.Fprintf(out, "Float:       base %d, precision %s, %s, accuracy %s\n",
			f.Base(), prec, f.Context().Rounding, v.Accuracy())
	}

	if opts.Verbose || len(text) <= TruncationLimit {
		fmt.Fprintf(out, "Value:       %s%s%s\n", ui.ColorGreen(), text, ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "Value:       %s%s%s (truncated)\n", ui.ColorGreen(), format.Truncate(text, DisplayEdges), ui.ColorReset())
	fmt.Fprintf(out, "%sTip: use -v to display the full value or -o to save it.%s\n", ui.ColorYellow(), ui.ColorReset())
}

// WriteResultToFile saves a result with a commented header. It does
// nothing when cfg.OutputFile is empty.
func WriteResultToFile(r orchestration.Result, expr string, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}
	if dir := filepath.Dir(cfg.OutputFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	text := r.Value.Text(cfg.Radix, cfg.Upper)
	fmt.Fprintf(file, "# bigcalc result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Expression: %s\n", expr)
	fmt.Fprintf(file, "# Strategy: %s\n", r.Name)
	fmt.Fprintf(file, "# Duration: %s\n", r.Duration)
	if r.Value.Kind() == eval.KindInt {
		fmt.Fprintf(file, "# Bits: %d\n", r.Value.BitLen())
		fmt.Fprintf(file, "# Digits: %d (radix %d)\n", digitCount(text), cfg.Radix)
	}
	fmt.Fprintf(file, "\n%s\n", text)

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// DisplaySaved confirms a file write.
func DisplaySaved(out io.Writer, path string) {
	fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n", ui.ColorGreen(), ui.ColorCyan(), path, ui.ColorReset())
}
