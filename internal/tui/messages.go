package tui

import (
	"time"

	"github.com/agbru/bignum/internal/eval"
	"github.com/agbru/bignum/internal/metrics"
	"github.com/agbru/bignum/internal/orchestration"
	"github.com/agbru/bignum/internal/sysmon"
)

// TickMsg drives the periodic resource sampling.
type TickMsg time.Time

// MemStatsMsg carries a runtime memory sample.
type MemStatsMsg struct {
	metrics.MemorySnapshot
}

// SysStatsMsg carries a host and process sample.
type SysStatsMsg struct {
	sysmon.Stats
}

// ProgressMsg carries the averaged progress of the running evaluation.
type ProgressMsg struct {
	Generation      uint64
	AverageProgress float64
	ETA             time.Duration
}

// ComparisonResultsMsg carries the per-strategy results of an evaluation
// that ran under more than one strategy.
type ComparisonResultsMsg struct {
	Generation uint64
	Results    []orchestration.Result
}

// FinalResultMsg carries the agreed result of an evaluation.
type FinalResultMsg struct {
	Generation uint64
	Result     orchestration.Result
}

// ErrorMsg carries an evaluation failure.
type ErrorMsg struct {
	Generation uint64
	Err        error
	Duration   time.Duration
}

// EvaluationCompleteMsg ends an evaluation. Value is set on success, Err
// on failure.
type EvaluationCompleteMsg struct {
	Generation uint64
	ExitCode   int
	Value      *eval.Value
	Err        error
}
