package config

import (
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/nat"
)

// Threshold resolution chain (highest priority first):
//   1. CLI flags (--karatsuba-threshold, --toom3-threshold, --newton-threshold)
//   2. Environment variables (BIGCALC_KARATSUBA_THRESHOLD, etc.)
//   3. Calibration profile (~/.bigcalc_calibration.json)
//   4. Hardware estimation (this file)
//   5. Built-in defaults of package nat

// ApplyAdaptiveThresholds fills every zero threshold of cfg with an
// estimate derived from the CPU. Non-zero values are kept.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	k := EstimateKaratsubaThreshold()
	if cfg.KaratsubaThreshold == 0 {
		cfg.KaratsubaThreshold = k
	}
	if cfg.Toom3Threshold == 0 {
		cfg.Toom3Threshold = EstimateToom3Threshold(k)
	}
	if cfg.NewtonThreshold == 0 {
		cfg.NewtonThreshold = EstimateNewtonThreshold(k)
	}
	return cfg
}

// EstimateKaratsubaThreshold guesses the schoolbook/Karatsuba crossover in
// words. A wide multiplier with carry-chain instructions makes the
// schoolbook inner loop cheaper and moves the crossover up.
func EstimateKaratsubaThreshold() int {
	switch {
	case cpu.X86.HasBMI2 && cpu.X86.HasADX:
		return 48
	case cpu.ARM64.HasASIMD:
		return 36
	case wordBits() == 32:
		return 32
	default:
		return nat.DefaultKaratsubaThreshold
	}
}

// EstimateToom3Threshold guesses the Karatsuba/Toom-3 crossover from the
// Karatsuba one. Machines with few cores tend to have small caches, where
// Toom-3's smaller recursion pays off earlier.
func EstimateToom3Threshold(karatsuba int) int {
	if runtime.NumCPU() <= 2 {
		return 3 * karatsuba
	}
	return 4 * karatsuba
}

// EstimateNewtonThreshold guesses the divisor size at which Newton division
// beats schoolbook division.
func EstimateNewtonThreshold(karatsuba int) int {
	return 8 * karatsuba
}

func wordBits() int { return 32 << (^uint(0) >> 63) }

// CPUFeatures lists the detected CPU features that influence the estimates.
func CPUFeatures() []string {
	var fs []string
	add := func(ok bool, name string) {
		if ok {
			fs = append(fs, name)
		}
	}
	add(cpu.X86.HasBMI2, "bmi2")
	add(cpu.X86.HasADX, "adx")
	add(cpu.X86.HasAVX2, "avx2")
	add(cpu.X86.HasAVX512F, "avx512f")
	add(cpu.ARM64.HasASIMD, "asimd")
	add(cpu.ARM64.HasSVE, "sve")
	return fs
}

// InstallThresholds makes th the process-wide setting of package nat and
// logs the change at debug level.
func InstallThresholds(th nat.Thresholds, logger logging.Logger) nat.Thresholds {
	prev := nat.SetThresholds(th)
	cur := nat.CurrentThresholds()
	if prev != cur {
		logger.Debug("thresholds changed",
			logging.String("old", prev.String()),
			logging.String("new", cur.String()))
	}
	return prev
}
