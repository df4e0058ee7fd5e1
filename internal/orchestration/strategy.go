package orchestration

import (
	"context"

	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/eval"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/nat"
)

type evaluatorStrategy struct {
	ev *eval.Evaluator
}

// NewStrategy wraps an evaluator; its Label is the strategy name.
func NewStrategy(ev *eval.Evaluator) Strategy { return evaluatorStrategy{ev} }

func (s evaluatorStrategy) Name() string { return s.ev.Options().Label }

func (s evaluatorStrategy) Evaluate(ctx context.Context, src string, n eval.Node, progress eval.ProgressFunc) (eval.Value, error) {
	return s.ev.EvaluateNode(ctx, src, n, progress)
}

// StrategiesFor returns the strategies selected by cfg.Algo, in a fixed
// order. "auto" uses the installed thresholds; a named algorithm, or each
// one under "all", forces that algorithm at every recursion level that
// can use it.
func StrategiesFor(cfg config.AppConfig, vars map[string]eval.Value, logger logging.Logger) []Strategy {
	base := nat.CurrentThresholds()
	algos := cfg.MulAlgorithms()
	strategies := make([]Strategy, 0, len(algos))
	for _, a := range algos {
		opts := eval.Options{
			Context:   cfg.FloatContext(),
			FloatBase: nat.Word(cfg.FloatBase),
			Vars:      vars,
			Logger:    logger,
			Label:     a.String(),
		}
		if a != nat.Auto {
			th := nat.ForceAlgorithm(base, a)
			opts.Thresholds = &th
		}
		strategies = append(strategies, NewStrategy(eval.New(opts)))
	}
	return strategies
}
