// Package app ties the configuration to the run modes of bigcalc: one-shot
// evaluation, REPL, dashboard, calibration, HTTP server and shell
// completion.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/bignum/internal/calibration"
	"github.com/agbru/bignum/internal/cli"
	"github.com/agbru/bignum/internal/config"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/pool"
	"github.com/agbru/bignum/internal/server"
	"github.com/agbru/bignum/internal/tui"
	"github.com/agbru/bignum/internal/ui"
)

// sessionWarmWords is the operand length the scratch pools are warmed for
// in the long-running modes.
const sessionWarmWords = 1 << 12

// Application is one bigcalc invocation.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	In        io.Reader
	ErrWriter io.Writer
}

// New parses args (args[0] is the program name) and resolves the
// thresholds: flags and environment first, then a calibration profile,
// then hardware estimates.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "bigcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		return nil, apperrors.NewConfigError("%v", err)
	}

	if !cfg.Calibrate && cfg.Completion == "" {
		if withProfile, loaded := calibration.LoadCachedCalibration(cfg, cfg.CalibrationProfile); loaded {
			cfg = withProfile
		}
	}
	cfg = config.ApplyAdaptiveThresholds(cfg)

	return &Application{
		Config:    cfg,
		Logger:    logging.NewLogger(errWriter, "bigcalc"),
		In:        os.Stdin,
		ErrWriter: errWriter,
	}, nil
}

// Run executes the selected mode and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor)
	if !a.Config.Calibrate {
		config.InstallThresholds(a.Config.Thresholds(), a.Logger)
	}

	if a.Config.ServerMode || a.Config.TUI {
		if pool.EnsureWarmed(sessionWarmWords) {
			a.Logger.Debug("scratch pools warmed", logging.Int("words", sessionWarmWords))
		}
	}

	switch {
	case a.Config.Calibrate:
		return a.runCalibration(ctx, out)
	case a.Config.ServerMode:
		return a.runServer(ctx, out)
	case a.Config.TUI:
		return tui.Run(ctx, a.Config, a.Logger, Version)
	case a.Config.Interactive:
		return a.runREPL(ctx, out)
	}
	return a.runCalculate(ctx, out)
}

func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, config.Algorithms); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

func (a *Application) runCalibration(ctx context.Context, out io.Writer) int {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return calibration.RunCalibration(ctx, a.Config, out, a.Logger)
}

func (a *Application) runServer(ctx context.Context, out io.Writer) int {
	srv := server.NewServer(a.Config, server.WithLogger(logging.NewLogger(out, "server")))
	if err := srv.Start(ctx); err != nil {
		return apperrors.HandleEvaluationError(err, 0, a.ErrWriter, ui.ErrorColors{})
	}
	return apperrors.ExitSuccess
}

func (a *Application) runREPL(ctx context.Context, out io.Writer) int {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	repl := cli.NewREPL(a.Config, a.Logger)
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start(ctx)
	if ctx.Err() != nil {
		return apperrors.ExitErrorCanceled
	}
	return apperrors.ExitSuccess
}

// IsHelpError reports whether err comes from -h or --help.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
