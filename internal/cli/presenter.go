package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/eval"
	"github.com/agbru/bignum/internal/format"
	"github.com/agbru/bignum/internal/metrics"
	"github.com/agbru/bignum/internal/orchestration"
	"github.com/agbru/bignum/internal/ui"
)

// CLIProgressReporter shows a spinner and progress bar.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numStrategies int, out io.Writer) {
	DisplayProgress(wg, progressChan, numStrategies, out)
}

// CLIResultPresenter renders coloured terminal output.
type CLIResultPresenter struct{}

var (
	_ orchestration.ResultPresenter   = CLIResultPresenter{}
	_ orchestration.DurationFormatter = CLIResultPresenter{}
)

// PresentComparisonTable prints one row per strategy. Padding is computed
// on the visible text so that ANSI codes do not break alignment.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.Result, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	nameW, durW := len("Strategy"), len("Duration")
	for _, r := range results {
		nameW = max(nameW, len(r.Name))
		durW = max(durW, len(displayDuration(r.Duration)))
	}

	fmt.Fprintf(out, "%sStrategy%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", nameW-len("Strategy")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", durW-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())
	for _, r := range results {
		status := fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
		if r.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), r.Err, ui.ColorReset())
		}
		d := displayDuration(r.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), r.Name, ui.ColorReset(), padRight("", nameW-len(r.Name)),
			ui.ColorYellow(), d, ui.ColorReset(), padRight("", durW-len(d)),
			status)
	}
}

func displayDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResult prints the agreed result.
func (CLIResultPresenter) PresentResult(r orchestration.Result, opts orchestration.PresentationOptions, out io.Writer) {
	if opts.Quiet {
		DisplayQuietResult(out, r.Value, opts)
		return
	}
	DisplayResult(out, r, opts)
}

func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleEvaluationError(err, duration, out, ui.ErrorColors{})
}

// JSONResultPresenter writes a single JSON document per evaluation.
type JSONResultPresenter struct {
	mu         sync.Mutex
	strategies []JSONStrategy
}

var _ orchestration.ResultPresenter = (*JSONResultPresenter)(nil)

// JSONStrategy is one row of the comparison in JSON output.
type JSONStrategy struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Error      string  `json:"error,omitempty"`
}

// JSONResult is the JSON output document.
type JSONResult struct {
	Expr       string         `json:"expr"`
	Kind       string         `json:"kind,omitempty"`
	Result     string         `json:"result,omitempty"`
	Radix      int            `json:"radix,omitempty"`
	Bits       int            `json:"bits,omitempty"`
	Accuracy   string         `json:"accuracy,omitempty"`
	Strategy   string         `json:"strategy,omitempty"`
	DurationMS float64        `json:"duration_ms"`
	Error      string         `json:"error,omitempty"`
	ExitCode   int            `json:"exit_code"`
	Strategies []JSONStrategy `json:"strategies,omitempty"`
}

func ms(d time.Duration) float64 { return float64(d.Microseconds()) / 1e3 }

func (p *JSONResultPresenter) PresentComparisonTable(results []orchestration.Result, _ io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.strategies = p.strategies[:0]
	for _, r := range results {
		s := JSONStrategy{Name: r.Name, DurationMS: ms(r.Duration)}
		if r.Err != nil {
			s.Error = r.Err.Error()
		}
		p.strategies = append(p.strategies, s)
	}
}

func (p *JSONResultPresenter) PresentResult(r orchestration.Result, opts orchestration.PresentationOptions, out io.Writer) {
	doc := JSONResult{
		Expr:       opts.Expr,
		Kind:       r.Value.Kind().String(),
		Result:     r.Value.Text(opts.Radix, opts.Upper),
		Bits:       max(r.Value.BitLen(), 0),
		Strategy:   r.Name,
		DurationMS: ms(r.Duration),
	}
	if r.Value.Kind() == eval.KindFloat {
		doc.Accuracy = r.Value.Accuracy().String()
	} else {
		doc.Radix = opts.Radix
	}
	p.write(doc, out)
}

func (p *JSONResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	code := apperrors.ExitCode(err)
	p.write(JSONResult{Error: err.Error(), DurationMS: ms(duration), ExitCode: code}, out)
	return code
}

func (p *JSONResultPresenter) write(doc JSONResult, out io.Writer) {
	p.mu.Lock()
	doc.Strategies = p.strategies
	p.mu.Unlock()
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(doc)
}

// DisplayMemoryStats shows allocation figures measured around an
// evaluation.
func DisplayMemoryStats(d metrics.MemoryDelta, after metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(after.HeapAlloc))
	fmt.Fprintf(out, "  Allocated:       %s\n", format.FormatBytes(d.Allocated))
	fmt.Fprintf(out, "  GC cycles:       %d\n", d.GCCycles)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(d.PauseNs)/1e6)
}
