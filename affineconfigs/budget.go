package affineconfigs

import (
	"github.com/reusee/affine/cmds"
	"github.com/reusee/affine/configs"
	"github.com/reusee/affine/vars"
)

// MaxSteps bounds the number of rewrites of one evaluation. Zero is unlimited.
type MaxSteps int

// MaxDepth bounds the evaluator work list. Zero is unlimited.
type MaxDepth int

var (
	// nil when not given
	maxStepsFlag = cmds.Var[*int]("-max-steps")
	maxDepthFlag = cmds.Var[*int]("-max-depth")
)

var _ configs.Configurable = MaxSteps(0)

func (MaxSteps) ScriptConfigurable() {}

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return MaxSteps(max(0, vars.FirstNonNil(
		*maxStepsFlag,
		configs.First[*int](loader, "max_steps"),
	)))
}

var _ configs.Configurable = MaxDepth(0)

func (MaxDepth) ScriptConfigurable() {}

func (Module) MaxDepth(
	loader configs.Loader,
) MaxDepth {
	return MaxDepth(max(0, vars.FirstNonNil(
		*maxDepthFlag,
		configs.First[*int](loader, "max_depth"),
	)))
}
