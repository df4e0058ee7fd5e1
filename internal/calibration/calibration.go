package calibration

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/agbru/bignum/internal/cli"
	"github.com/agbru/bignum/internal/config"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/orchestration"
	"github.com/agbru/bignum/internal/ui"
	"github.com/agbru/bignum/nat"
)

// Options configures a calibration run. Zero values select the adaptive
// candidates and the default timing parameters.
type Options struct {
	// Karatsuba, Toom3 and Newton override the candidate operand sizes.
	Karatsuba, Toom3, Newton []int
	Trials                   int
	MinDuration              time.Duration
	// Progress receives the completed fraction after each measurement.
	Progress func(done float64)
}

// Result is the outcome of Calibrate.
type Result struct {
	Crossovers []Crossover
	// Thresholds holds the measured crossovers; a zero field was not found
	// and keeps the default.
	Thresholds nat.Thresholds
	Duration   time.Duration
}

// Calibrate measures the Karatsuba, Toom-3 and Newton crossovers in turn.
// Toom-3 and Newton are measured on top of the crossovers found before
// them. It stops at the first canceled measurement.
func Calibrate(ctx context.Context, opts Options) (Result, error) {
	start := time.Now()
	r := newCalibrationRunner(ctx, opts.Trials, opts.MinDuration, opts.Progress)

	kSizes := opts.Karatsuba
	if kSizes == nil {
		kSizes = GenerateKaratsubaCandidates()
	}
	r.total = 3 * len(kSizes)

	var res Result
	kar := r.findKaratsuba(kSizes)
	res.Crossovers = append(res.Crossovers, kar)
	if err := ctx.Err(); err != nil {
		return res, err
	}
	k := kar.Threshold
	if k == 0 {
		k = EstimateKaratsubaThreshold()
	}

	tSizes := opts.Toom3
	if tSizes == nil {
		tSizes = GenerateToom3Candidates(k)
	}
	nSizes := opts.Newton
	if nSizes == nil {
		nSizes = GenerateNewtonCandidates(k)
	}
	r.total = len(kSizes) + len(tSizes) + len(nSizes)

	toom := r.findToom3(tSizes, k)
	res.Crossovers = append(res.Crossovers, toom)
	if err := ctx.Err(); err != nil {
		return res, err
	}
	res.Thresholds = nat.Thresholds{Karatsuba: kar.Threshold, Toom3: toom.Threshold}

	newton := r.findNewton(nSizes, nat.Thresholds{Karatsuba: k, Toom3: toom.Threshold})
	res.Crossovers = append(res.Crossovers, newton)
	res.Thresholds.Newton = newton.Threshold
	res.Duration = time.Since(start)
	return res, ctx.Err()
}

// RunCalibration measures the crossovers of this machine, prints a summary
// and saves the profile to cfg.CalibrationProfile. It returns the exit
// code.
func RunCalibration(ctx context.Context, cfg config.AppConfig, out io.Writer, logger logging.Logger) int {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	fmt.Fprintf(out, "--- Calibration Mode: Measuring Algorithm Crossovers ---\n")
	features := "none detected"
	if fs := config.CPUFeatures(); len(fs) > 0 {
		features = fmt.Sprint(fs)
	}
	fmt.Fprintf(out, "%sUsing adaptive candidates for %d CPU cores, CPU features: %s%s\n",
		ui.ColorCyan(), runtime.NumCPU(), features, ui.ColorReset())

	var wg sync.WaitGroup
	progressChan := make(chan orchestration.ProgressUpdate, orchestration.ProgressBufferMultiplier)
	wg.Add(1)
	go cli.DisplayProgress(&wg, progressChan, 1, out)

	res, err := Calibrate(ctx, Options{Progress: func(done float64) {
		select {
		case progressChan <- orchestration.ProgressUpdate{StrategyIndex: 0, Value: done}:
		default:
		}
	}})
	close(progressChan)
	wg.Wait()

	if err != nil {
		fmt.Fprintf(out, "\n%sCalibration interrupted.%s\n", ui.ColorYellow(), ui.ColorReset())
		return apperrors.HandleEvaluationError(err, res.Duration, out, ui.ErrorColors{})
	}

	printCalibrationResults(out, res.Crossovers)
	printCalibrationOutput(out, res.Thresholds)
	logger.Info("calibration finished",
		logging.String("thresholds", res.Thresholds.String()),
		logging.String("duration", res.Duration.String()))

	profile := NewProfile()
	profile.KaratsubaThreshold = res.Thresholds.Karatsuba
	profile.Toom3Threshold = res.Thresholds.Toom3
	profile.NewtonThreshold = res.Thresholds.Newton
	profile.CalibrationTime = res.Duration.Round(time.Millisecond).String()
	if err := profile.SaveProfile(cfg.CalibrationProfile); err != nil {
		fmt.Fprintf(out, "%sWarning: failed to save profile: %v%s\n", ui.ColorYellow(), err, ui.ColorReset())
		logger.Error("saving calibration profile", err)
		return apperrors.ExitSuccess
	}
	fmt.Fprintf(out, "%sCalibration profile saved to %s%s\n",
		ui.ColorGreen(), resolvePath(cfg.CalibrationProfile), ui.ColorReset())
	return apperrors.ExitSuccess
}

// LoadCachedCalibration fills the thresholds of cfg that were not set by a
// flag or the environment from a valid profile at profilePath. It reports
// whether such a profile was found.
func LoadCachedCalibration(cfg config.AppConfig, profilePath string) (config.AppConfig, bool) {
	profile, loaded := LoadOrCreateProfile(profilePath)
	if !loaded {
		return cfg, false
	}
	if cfg.KaratsubaThreshold == 0 {
		cfg.KaratsubaThreshold = profile.KaratsubaThreshold
	}
	if cfg.Toom3Threshold == 0 {
		cfg.Toom3Threshold = profile.Toom3Threshold
	}
	if cfg.NewtonThreshold == 0 {
		cfg.NewtonThreshold = profile.NewtonThreshold
	}
	return cfg, true
}
