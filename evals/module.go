package evals

import (
	"github.com/reusee/affine/affineconfigs"
	"github.com/reusee/affine/logs"
	"github.com/reusee/affine/modes"
	"github.com/reusee/affine/terms"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

type NewEvaluator func(store *terms.Store) *Evaluator

func (Module) NewEvaluator(
	logger logs.Logger,
	maxSteps affineconfigs.MaxSteps,
	maxDepth affineconfigs.MaxDepth,
	trace affineconfigs.Trace,
	mode modes.Mode,
) NewEvaluator {
	return func(store *terms.Store) *Evaluator {
		return &Evaluator{
			Store:    store,
			Logger:   logger,
			MaxSteps: int(maxSteps),
			MaxDepth: int(maxDepth),
			Trace:    bool(trace),
			Verify:   mode == modes.ModeDevelopment,
		}
	}
}
