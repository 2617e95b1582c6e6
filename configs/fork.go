package configs

import (
	"reflect"

	"github.com/reusee/dscope"
)

// Fork overrides the configurable values of scope with values. The last value
// of a type wins; values of other types are ignored.
func Fork(scope dscope.Scope, values []any) dscope.Scope {
	configTypes := make(map[reflect.Type]bool)
	for _, t := range ConfigurableTypes(scope) {
		configTypes[t] = true
	}
	var defs []any
	seen := make(map[reflect.Type]bool)
	for i := len(values) - 1; i >= 0; i-- {
		v := values[i]
		if v == nil {
			continue
		}
		t := reflect.TypeOf(v)
		if configTypes[t] && !seen[t] {
			defs = append(defs, v)
			seen[t] = true
		}
	}
	if len(defs) == 0 {
		return scope
	}
	return scope.Fork(defs...)
}
