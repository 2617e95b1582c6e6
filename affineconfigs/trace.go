package affineconfigs

import (
	"github.com/reusee/affine/cmds"
	"github.com/reusee/affine/configs"
)

// Trace logs every evaluation step at info level.
type Trace bool

var traceFlag = cmds.Switch("-trace")

var _ configs.Configurable = Trace(false)

func (Trace) ScriptConfigurable() {}

func (Module) Trace(
	loader configs.Loader,
) Trace {
	return Trace(*traceFlag || configs.First[bool](loader, "trace"))
}
