package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/eval"
)

// ProgressBufferMultiplier sizes the progress channel per strategy so that
// a slow display rarely causes updates to be dropped.
const ProgressBufferMultiplier = 5

// progressSink forwards evaluator progress to a channel without blocking.
// Sends after close are discarded, since an abandoned evaluation may
// outlive ExecuteEvaluations.
type progressSink struct {
	mu     sync.RWMutex
	ch     chan ProgressUpdate
	closed bool
}

func (p *progressSink) report(idx int) eval.ProgressFunc {
	return func(v float64) {
		p.mu.RLock()
		defer p.mu.RUnlock()
		if p.closed {
			return
		}
		select {
		case p.ch <- ProgressUpdate{StrategyIndex: idx, Value: v}:
		default:
		}
	}
}

func (p *progressSink) close() {
	p.mu.Lock()
	p.closed = true
	close(p.ch)
	p.mu.Unlock()
}

type outcome struct {
	v   eval.Value
	err error
}

// ExecuteEvaluations parses expr once and evaluates it under every
// strategy concurrently. A strategy still running when ctx ends is
// reported with the context error. The error result is set only when expr
// does not parse.
func ExecuteEvaluations(ctx context.Context, strategies []Strategy, expr string, reporter ProgressReporter, out io.Writer) ([]Result, error) {
	node, err := eval.Parse(expr)
	if err != nil {
		return nil, apperrors.EvaluationError{Expr: expr, Cause: err}
	}

	ctx, span := otel.Tracer("github.com/agbru/bignum/internal/orchestration").Start(ctx, "orchestration.ExecuteEvaluations")
	span.SetAttributes(attribute.Int("strategies", len(strategies)))
	defer span.End()

	g, ctx := errgroup.WithContext(ctx)
	results := make([]Result, len(strategies))
	sink := &progressSink{ch: make(chan ProgressUpdate, len(strategies)*ProgressBufferMultiplier)}

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, sink.ch, len(strategies), out)

	for i, s := range strategies {
		g.Go(func() error {
			start := time.Now()
			done := make(chan outcome, 1)
			go func() {
				v, err := s.Evaluate(ctx, expr, node, sink.report(i))
				done <- outcome{v, err}
			}()
			var o outcome
			select {
			case o = <-done:
			case <-ctx.Done():
				o.err = ctx.Err()
			}
			results[i] = Result{Name: s.Name(), Value: o.v, Duration: time.Since(start), Err: o.err}
			return nil
		})
	}

	_ = g.Wait()
	sink.close()
	displayWg.Wait()
	return results, nil
}

// CheckConsistency returns the first successful result and verifies that
// every other successful result equals it. It returns the first failure
// when no strategy succeeded.
func CheckConsistency(expr string, results []Result) (Result, error) {
	var first *Result
	var firstErr error
	for i := range results {
		r := &results[i]
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		}
		if first == nil {
			first = r
			continue
		}
		if !r.Value.Equal(first.Value) {
			return *first, apperrors.MismatchError{Expr: expr, Left: first.Name, Right: r.Name}
		}
	}
	if first == nil {
		return Result{}, firstErr
	}
	return *first, nil
}

// SortResults orders results with successes first, fastest first.
func SortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})
}

// AnalyzeComparisonResults sorts results, shows the comparison table when
// more than one strategy ran, checks consistency and presents the result.
// It returns the process exit code.
func AnalyzeComparisonResults(results []Result, opts PresentationOptions, presenter ResultPresenter, out io.Writer) int {
	SortResults(results)
	if len(results) > 1 && !opts.Quiet {
		presenter.PresentComparisonTable(results, out)
	}

	best, err := CheckConsistency(opts.Expr, results)
	switch {
	case err == nil:
	case apperrors.ExitCode(err) == apperrors.ExitErrorMismatch:
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! %v\n", err)
		return apperrors.ExitErrorMismatch
	default:
		if len(results) > 1 {
			fmt.Fprintf(out, "\nGlobal Status: Failure. No strategy could complete the evaluation.\n")
		}
		var d time.Duration
		if len(results) > 0 {
			d = results[0].Duration
		}
		return presenter.HandleError(err, d, out)
	}

	if len(results) > 1 && !opts.Quiet {
		fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	}
	presenter.PresentResult(best, opts, out)
	return apperrors.ExitSuccess
}
