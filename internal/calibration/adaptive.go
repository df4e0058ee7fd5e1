package calibration

import (
	"slices"

	"github.com/agbru/bignum/internal/config"
)

// ─────────────────────────────────────────────────────────────────────────────
// Candidate Operand Sizes
// ─────────────────────────────────────────────────────────────────────────────
//
// Candidates are operand sizes in words, spread around the hardware
// estimate of package config. Each one is measured with the faster
// algorithm at the top level only, so the crossover is the smallest
// candidate from which the faster algorithm keeps winning.

var factors = []float64{0.5, 0.75, 1, 1.25, 1.5, 2, 3}

// spread returns base scaled by each factor, deduplicated, sorted and no
// smaller than floor.
func spread(base int, factors []float64, floor int) []int {
	sizes := make([]int, 0, len(factors))
	for _, f := range factors {
		sizes = append(sizes, max(int(float64(base)*f), floor))
	}
	slices.Sort(sizes)
	return slices.Compact(sizes)
}

// GenerateKaratsubaCandidates returns the sizes at which Karatsuba is
// compared with the schoolbook method.
func GenerateKaratsubaCandidates() []int {
	return spread(EstimateKaratsubaThreshold(), factors, 4)
}

// GenerateToom3Candidates returns the sizes at which Toom-3 is compared
// with Karatsuba, given the Karatsuba crossover.
func GenerateToom3Candidates(karatsuba int) []int {
	return spread(config.EstimateToom3Threshold(karatsuba), factors, 2*karatsuba)
}

// GenerateNewtonCandidates returns the divisor sizes at which Newton
// division is compared with schoolbook division.
func GenerateNewtonCandidates(karatsuba int) []int {
	return spread(config.EstimateNewtonThreshold(karatsuba), factors, 2*karatsuba)
}

// EstimateKaratsubaThreshold delegates to config.EstimateKaratsubaThreshold.
func EstimateKaratsubaThreshold() int { return config.EstimateKaratsubaThreshold() }
