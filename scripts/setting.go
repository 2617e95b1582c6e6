package scripts

import (
	"fmt"
	"reflect"

	"go.starlark.net/starlark"
)

// Setting is a Starlark value holding a configuration value that overrides
// the caller's for the evaluation of the script defining it.
type Setting struct {
	value reflect.Value
}

var _ starlark.Value = Setting{}

func (s Setting) String() string {
	return fmt.Sprintf("%s(%v)", s.value.Type().Name(), s.value.Interface())
}

func (s Setting) Type() string {
	return "setting"
}

func (s Setting) Freeze() {}

func (s Setting) Truth() starlark.Bool {
	return starlark.Bool(!s.value.IsZero())
}

func (s Setting) Hash() (uint32, error) {
	return starlark.String(s.String()).Hash()
}

// Value returns the Go value.
func (s Setting) Value() any {
	return s.value.Interface()
}

// settingBuiltins defines a constructor named after each type.
func settingBuiltins(types []reflect.Type) starlark.StringDict {
	ret := make(starlark.StringDict)
	for _, t := range types {
		name := t.Name()
		ret[name] = starlark.NewBuiltin(name, func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var arg starlark.Value
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &arg); err != nil {
				return nil, err
			}
			value, err := settingValue(t, arg)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", fn.Name(), err)
			}
			return Setting{value: value}, nil
		})
	}
	return ret
}

func settingValue(t reflect.Type, arg starlark.Value) (reflect.Value, error) {
	value := reflect.New(t).Elem()
	switch t.Kind() {

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := arg.(starlark.Int)
		if !ok {
			return value, fmt.Errorf("expecting int, got %s", arg.Type())
		}
		n, ok := i.Int64()
		if !ok || value.OverflowInt(n) {
			return value, fmt.Errorf("%s out of range", i)
		}
		if n < 0 {
			return value, fmt.Errorf("must not be negative, got %d", n)
		}
		value.SetInt(n)

	case reflect.Bool:
		b, ok := arg.(starlark.Bool)
		if !ok {
			return value, fmt.Errorf("expecting bool, got %s", arg.Type())
		}
		value.SetBool(bool(b))

	case reflect.String:
		s, ok := arg.(starlark.String)
		if !ok {
			return value, fmt.Errorf("expecting string, got %s", arg.Type())
		}
		value.SetString(string(s))

	default:
		return value, fmt.Errorf("unsupported kind %s", t.Kind())
	}
	return value, nil
}
