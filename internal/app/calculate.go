package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/bignum/internal/cli"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/metrics"
	"github.com/agbru/bignum/internal/orchestration"
	"github.com/agbru/bignum/internal/ui"
)

// runCalculate evaluates the command-line expression once.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	strategies := orchestration.StrategiesFor(a.Config, nil, a.Logger)
	plain := a.Config.Quiet || a.Config.JSONOutput
	if !plain {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(strategies, out)
	}

	var reporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if plain {
		reporter, progressOut = orchestration.NullProgressReporter{}, io.Discard
	}
	var presenter orchestration.ResultPresenter = cli.CLIResultPresenter{}
	if a.Config.JSONOutput {
		presenter = &cli.JSONResultPresenter{}
	}

	before := metrics.TakeSnapshot()
	results, err := orchestration.ExecuteEvaluations(ctx, strategies, a.Config.Expr, reporter, progressOut)
	if err != nil {
		if a.Config.Quiet {
			return apperrors.HandleEvaluationError(err, 0, a.ErrWriter, ui.ErrorColors{})
		}
		return presenter.HandleError(err, 0, out)
	}
	after := metrics.TakeSnapshot()

	opts := orchestration.PresentationOptions{
		Expr:    a.Config.Expr,
		Radix:   a.Config.Radix,
		Upper:   a.Config.Upper,
		Verbose: a.Config.Verbose,
		Quiet:   a.Config.Quiet,
	}
	if a.Config.Quiet {
		return a.presentQuiet(results, opts, out)
	}

	code := orchestration.AnalyzeComparisonResults(results, opts, presenter, out)
	if code != apperrors.ExitSuccess {
		return code
	}
	if a.Config.Verbose && !a.Config.JSONOutput {
		cli.DisplayMemoryStats(after.Since(before), after, out)
	}
	return a.saveResult(results, out)
}

// presentQuiet prints the bare value; failures go to the error writer.
func (a *Application) presentQuiet(results []orchestration.Result, opts orchestration.PresentationOptions, out io.Writer) int {
	orchestration.SortResults(results)
	best, err := orchestration.CheckConsistency(opts.Expr, results)
	if err != nil {
		return apperrors.HandleEvaluationError(err, results[0].Duration, a.ErrWriter, ui.ErrorColors{})
	}
	cli.DisplayQuietResult(out, best.Value, opts)
	return a.saveResult(results, out)
}

// saveResult writes the agreed result to the output file, if one is set.
func (a *Application) saveResult(results []orchestration.Result, out io.Writer) int {
	if a.Config.OutputFile == "" {
		return apperrors.ExitSuccess
	}
	best, err := orchestration.CheckConsistency(a.Config.Expr, results)
	if err != nil {
		return apperrors.ExitCode(err)
	}
	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Radix:      a.Config.Radix,
		Upper:      a.Config.Upper,
	}
	if err := cli.WriteResultToFile(best, a.Config.Expr, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if !a.Config.Quiet && !a.Config.JSONOutput {
		cli.DisplaySaved(out, a.Config.OutputFile)
	}
	return apperrors.ExitSuccess
}
