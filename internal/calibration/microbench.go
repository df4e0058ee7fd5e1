package calibration

import (
	"context"
	"slices"
	"time"
)

const (
	// DefaultTrials is the number of timed runs per measurement; the
	// median is kept.
	DefaultTrials = 5
	// DefaultMinDuration is how long one timed run repeats its operation.
	DefaultMinDuration = 2 * time.Millisecond
)

// measure returns the median time of one call of op over trials runs. Each
// run repeats op until minDuration has elapsed, so that fast operations are
// not dominated by timer resolution.
func measure(ctx context.Context, op func(), trials int, minDuration time.Duration) (time.Duration, error) {
	op() // warm up caches and pools
	samples := make([]time.Duration, 0, trials)
	for range trials {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		reps := 0
		start := time.Now()
		var elapsed time.Duration
		for elapsed < minDuration || reps == 0 {
			op()
			reps++
			elapsed = time.Since(start)
		}
		samples = append(samples, elapsed/time.Duration(reps))
	}
	slices.Sort(samples)
	return samples[len(samples)/2], nil
}
