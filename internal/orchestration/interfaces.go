//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/agbru/bignum/internal/eval"
)

// Strategy evaluates parsed expressions with one multiplication algorithm.
type Strategy interface {
	Name() string
	Evaluate(ctx context.Context, src string, n eval.Node, progress eval.ProgressFunc) (eval.Value, error)
}

// Result is the outcome of evaluating the expression under one strategy.
type Result struct {
	// Name is the strategy label ("auto", "schoolbook", "karatsuba", "toom3").
	Name string
	// Value is the evaluated result; it is the zero Value if Err is set.
	Value eval.Value
	// Duration is the wall time of the evaluation.
	Duration time.Duration
	// Err is the evaluation failure, if any.
	Err error
}

// PresentationOptions configures how a result is shown.
type PresentationOptions struct {
	Expr    string
	Radix   int
	Upper   bool
	Verbose bool
	Quiet   bool
}

// ProgressUpdate carries the completion fraction of one strategy.
type ProgressUpdate struct {
	StrategyIndex int
	Value         float64
}

// ProgressReporter displays progress while strategies run. DisplayProgress
// runs in its own goroutine until progressChan is closed, then calls
// wg.Done.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numStrategies int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numStrategies int, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numStrategies int, out io.Writer) {
	f(wg, progressChan, numStrategies, out)
}

// NullProgressReporter drains the channel without output. It is used in
// quiet and JSON modes.
type NullProgressReporter struct{}

// DisplayProgress drains progressChan.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ErrorHandler reports an evaluation failure and returns the exit code.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}

// ResultPresenter renders results. Implementations exist for the terminal
// and for JSON output.
type ResultPresenter interface {
	// PresentComparisonTable shows one row per strategy.
	PresentComparisonTable(results []Result, out io.Writer)
	// PresentResult shows the agreed result.
	PresentResult(result Result, opts PresentationOptions, out io.Writer)
	ErrorHandler
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}
