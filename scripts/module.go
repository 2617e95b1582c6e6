package scripts

import (
	"reflect"

	"github.com/reusee/affine/logs"
	"github.com/reusee/affine/terms"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// LoadScript loads a script and returns its root and the values of the
// settings it defines. Settings may have any of settingTypes.
type LoadScript func(store *terms.Store, filename string, src any, settingTypes ...reflect.Type) (terms.NodeID, []any, error)

func (Module) LoadScript(
	logger logs.Logger,
) LoadScript {
	return func(store *terms.Store, filename string, src any, settingTypes ...reflect.Type) (terms.NodeID, []any, error) {
		return load(logger, store, filename, src, settingTypes)
	}
}
