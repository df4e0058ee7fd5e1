package tui

import (
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/orchestration"
	"github.com/agbru/bignum/numerr"
)

// recorder is a sender that keeps every message.
type recorder struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recorder) Send(msg tea.Msg) {
	r.mu.Lock()
	r.msgs = append(r.msgs, msg)
	r.mu.Unlock()
}

func TestProgramRefWithoutProgram(t *testing.T) {
	t.Parallel()
	(&programRef{}).Send(TickMsg{})
}

func TestTUIProgressReporter(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	ref := &programRef{}
	ref.SetProgram(rec)
	reporter := &TUIProgressReporter{ref: ref, gen: 3}

	ch := make(chan orchestration.ProgressUpdate, 4)
	ch <- orchestration.ProgressUpdate{StrategyIndex: 0, Value: 0.5}
	ch <- orchestration.ProgressUpdate{StrategyIndex: 1, Value: 1}
	close(ch)
	var wg sync.WaitGroup
	wg.Add(1)
	go reporter.DisplayProgress(&wg, ch, 2, nil)
	wg.Wait()

	if len(rec.msgs) != 2 {
		t.Fatalf("got %d messages", len(rec.msgs))
	}
	last, ok := rec.msgs[1].(ProgressMsg)
	if !ok || last.Generation != 3 || last.AverageProgress != 0.75 {
		t.Errorf("last message = %#v", rec.msgs[1])
	}
}

func TestTUIProgressReporterNoStrategies(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	ref := &programRef{}
	ref.SetProgram(rec)
	ch := make(chan orchestration.ProgressUpdate, 1)
	ch <- orchestration.ProgressUpdate{Value: 0.5}
	close(ch)
	var wg sync.WaitGroup
	wg.Add(1)
	go (&TUIProgressReporter{ref: ref}).DisplayProgress(&wg, ch, 0, nil)
	wg.Wait()
	if len(rec.msgs) != 0 {
		t.Errorf("sent %d messages", len(rec.msgs))
	}
}

func TestTUIResultPresenter(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	ref := &programRef{}
	ref.SetProgram(rec)
	p := &TUIResultPresenter{ref: ref, gen: 7}

	results := []orchestration.Result{{Name: "karatsuba"}, {Name: "toom3"}}
	p.PresentComparisonTable(results, nil)
	p.PresentResult(results[0], orchestration.PresentationOptions{}, nil)
	if code := p.HandleError(apperrors.EvaluationError{Expr: "1/0", Cause: numerr.ErrDivisionByZero}, time.Millisecond, nil); code != apperrors.ExitErrorArithmetic {
		t.Errorf("HandleError = %d", code)
	}
	if p.FormatDuration(1500*time.Microsecond) == "" {
		t.Error("FormatDuration is empty")
	}

	if len(rec.msgs) != 3 {
		t.Fatalf("got %d messages", len(rec.msgs))
	}
	if m, ok := rec.msgs[0].(ComparisonResultsMsg); !ok || len(m.Results) != 2 || m.Generation != 7 {
		t.Errorf("msgs[0] = %#v", rec.msgs[0])
	}
	if m, ok := rec.msgs[1].(FinalResultMsg); !ok || m.Result.Name != "karatsuba" {
		t.Errorf("msgs[1] = %#v", rec.msgs[1])
	}
	if m, ok := rec.msgs[2].(ErrorMsg); !ok || !errors.Is(m.Err, numerr.ErrDivisionByZero) {
		t.Errorf("msgs[2] = %#v", rec.msgs[2])
	}
}
