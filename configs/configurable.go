package configs

import (
	"cmp"
	"reflect"
	"slices"

	"github.com/reusee/dscope"
)

// Configurable marks a provided type that a script may override for one
// evaluation.
type Configurable interface {
	ScriptConfigurable()
}

var configurableType = reflect.TypeFor[Configurable]()

// ConfigurableTypes lists the configurable types provided by scope, sorted by
// name.
func ConfigurableTypes(scope dscope.Scope) []reflect.Type {
	var ret []reflect.Type
	for t := range scope.AllTypes() {
		if t.Implements(configurableType) {
			ret = append(ret, t)
		}
	}
	slices.SortFunc(ret, func(a, b reflect.Type) int {
		return cmp.Compare(a.String(), b.String())
	})
	return ret
}
