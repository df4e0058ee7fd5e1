package orchestration

import (
	"time"

	"github.com/agbru/bignum/internal/format"
)

// ProgressAggregator folds per-strategy progress updates into an average
// and an ETA. Both the CLI spinner and the TUI use it.
type ProgressAggregator struct {
	state         *format.ProgressWithETA
	numStrategies int
}

// NewProgressAggregator returns an aggregator for n strategies, or nil
// when n <= 0.
func NewProgressAggregator(n int) *ProgressAggregator {
	if n <= 0 {
		return nil
	}
	return &ProgressAggregator{state: format.NewProgressWithETA(n), numStrategies: n}
}

// AggregatedProgress is the state after one update.
type AggregatedProgress struct {
	StrategyIndex   int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// Update applies one update.
func (a *ProgressAggregator) Update(u ProgressUpdate) AggregatedProgress {
	avg, eta := a.state.UpdateWithETA(u.StrategyIndex, u.Value)
	return AggregatedProgress{
		StrategyIndex:   u.StrategyIndex,
		Value:           u.Value,
		AverageProgress: avg,
		ETA:             eta,
	}
}

// CalculateAverage returns the current average without updating.
func (a *ProgressAggregator) CalculateAverage() float64 { return a.state.CalculateAverage() }

// GetETA returns the current ETA without updating.
func (a *ProgressAggregator) GetETA() time.Duration { return a.state.GetETA() }

func (a *ProgressAggregator) NumStrategies() int { return a.numStrategies }

// IsMultiStrategy reports whether more than one strategy is tracked.
func (a *ProgressAggregator) IsMultiStrategy() bool { return a.numStrategies > 1 }

// DrainChannel discards every update until the channel is closed.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
