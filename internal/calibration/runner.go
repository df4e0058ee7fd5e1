package calibration

import (
	"context"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/agbru/bignum/internal/pool"
	"github.com/agbru/bignum/nat"
)

// Measurement is one operand size timed under both algorithms.
type Measurement struct {
	Size      int
	Baseline  time.Duration
	Candidate time.Duration
	Err       error
}

// Crossover is the outcome of comparing two algorithms over a range of
// operand sizes.
type Crossover struct {
	Name         string
	Baseline     string
	Candidate    string
	Measurements []Measurement
	// Threshold is the smallest measured size from which Candidate is
	// faster at every larger measured size, or 0 when it does not win at
	// the largest one.
	Threshold int
}

// Found reports whether a crossover was measured.
func (c Crossover) Found() bool { return c.Threshold > 0 }

func pickThreshold(ms []Measurement) int {
	th := 0
	for i := len(ms) - 1; i >= 0; i-- {
		m := ms[i]
		if m.Err != nil || m.Candidate >= m.Baseline {
			break
		}
		th = m.Size
	}
	return th
}

// calibrationRunner times pairs of configurations on random operands.
type calibrationRunner struct {
	ctx         context.Context
	rng         *rand.Rand
	trials      int
	minDuration time.Duration

	progress    func(done float64)
	done, total int
}

func newCalibrationRunner(ctx context.Context, trials int, minDuration time.Duration, progress func(float64)) *calibrationRunner {
	if trials <= 0 {
		trials = DefaultTrials
	}
	if minDuration <= 0 {
		minDuration = DefaultMinDuration
	}
	return &calibrationRunner{
		ctx:         ctx,
		rng:         rand.New(rand.NewPCG(0x6269, 0x6763)),
		trials:      trials,
		minDuration: minDuration,
		progress:    progress,
	}
}

// operand returns a random value of exactly words words.
func (r *calibrationRunner) operand(words int) nat.Nat {
	bits := uint(words * nat.WordBits)
	top := nat.FromWord(1).Lsh(bits - 1)
	return nat.Random(r.rng, bits).Or(top)
}

func (r *calibrationRunner) step() {
	r.done++
	if r.progress != nil && r.total > 0 {
		r.progress(float64(r.done) / float64(r.total))
	}
}

// warm fills the scratch pools for the largest of sizes so that the first
// measurements do not include buffer allocation.
func warm(sizes []int) {
	if len(sizes) == 0 {
		return
	}
	words := slices.Max(sizes)
	pool.Warm(4*words, pool.BuffersFor(words))
}

// compare times baseline and candidate at every size. ops returns the two
// operations to time for one size.
func (r *calibrationRunner) compare(c Crossover, sizes []int, ops func(size int) (baseline, candidate func())) Crossover {
	warm(sizes)
	for _, size := range sizes {
		base, cand := ops(size)
		m := Measurement{Size: size}
		m.Baseline, m.Err = measure(r.ctx, base, r.trials, r.minDuration)
		if m.Err == nil {
			m.Candidate, m.Err = measure(r.ctx, cand, r.trials, r.minDuration)
		}
		c.Measurements = append(c.Measurements, m)
		r.step()
		if m.Err != nil {
			break
		}
	}
	c.Threshold = pickThreshold(c.Measurements)
	return c
}

// findKaratsuba compares the schoolbook method with one level of
// Karatsuba on size×size products.
func (r *calibrationRunner) findKaratsuba(sizes []int) Crossover {
	schoolbook := nat.ForceAlgorithm(nat.Thresholds{}, nat.Schoolbook)
	return r.compare(Crossover{Name: "karatsuba", Baseline: "schoolbook", Candidate: "karatsuba"}, sizes,
		func(size int) (func(), func()) {
			x, y := r.operand(size), r.operand(size)
			oneLevel := nat.Thresholds{Karatsuba: size, Toom3: math.MaxInt}
			return func() { nat.MulWith(x, y, schoolbook) },
				func() { nat.MulWith(x, y, oneLevel) }
		})
}

// findToom3 compares Karatsuba with one level of Toom-3, both recursing
// with the given Karatsuba crossover.
func (r *calibrationRunner) findToom3(sizes []int, karatsuba int) Crossover {
	base := nat.Thresholds{Karatsuba: karatsuba, Toom3: math.MaxInt}
	return r.compare(Crossover{Name: "toom3", Baseline: "karatsuba", Candidate: "toom3"}, sizes,
		func(size int) (func(), func()) {
			x, y := r.operand(size), r.operand(size)
			oneLevel := nat.Thresholds{Karatsuba: karatsuba, Toom3: size}
			return func() { nat.MulWith(x, y, base) },
				func() { nat.MulWith(x, y, oneLevel) }
		})
}

// findNewton compares schoolbook division of a 2n-word dividend by an
// n-word divisor with Newton division.
func (r *calibrationRunner) findNewton(sizes []int, mul nat.Thresholds) Crossover {
	schoolbook := nat.Thresholds{Karatsuba: mul.Karatsuba, Toom3: mul.Toom3, Newton: math.MaxInt}
	return r.compare(Crossover{Name: "newton", Baseline: "schoolbook", Candidate: "newton"}, sizes,
		func(size int) (func(), func()) {
			x, y := r.operand(2*size), r.operand(size)
			newton := nat.Thresholds{Karatsuba: mul.Karatsuba, Toom3: mul.Toom3, Newton: size}
			return func() { _, _, _ = nat.DivRemWith(x, y, schoolbook) },
				func() { _, _, _ = nat.DivRemWith(x, y, newton) }
		})
}
