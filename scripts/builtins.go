package scripts

import (
	"fmt"
	"reflect"

	"github.com/reusee/affine/logs"
	"github.com/reusee/affine/terms"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func predeclared(logger logs.Logger, settingTypes []reflect.Type) starlark.StringDict {
	ret := settingBuiltins(settingTypes)
	for name, value := range builtins(logger) {
		ret[name] = value
	}
	return ret
}

func builtins(logger logs.Logger) starlark.StringDict {
	return starlark.StringDict{
		"const": starlark.NewBuiltin("const", builtinConst),
		"app":   starlark.NewBuiltin("app", builtinApp),
		"lam":   starlark.NewBuiltin("lam", builtinLam),
		"log": starlarkutil.MakeFunc("log", func(msg string) {
			logger.Info(msg, "from", "script")
		}),
	}
}

// const(name)
func builtinConst(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name starlark.Value
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &name); err != nil {
		return nil, err
	}
	switch name := name.(type) {
	case starlark.String:
		return constantTerm(string(name)), nil
	case starlark.Int:
		return constantTerm(name.String()), nil
	}
	return nil, fmt.Errorf("%s: expecting string or int, got %s", fn.Name(), name.Type())
}

// app(f, v, ...) applies f to every argument in turn.
func builtinApp(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("%s: unexpected keyword arguments", fn.Name())
	}
	if len(args) < 2 {
		return nil, fmt.Errorf("%s: expecting a function and at least one argument", fn.Name())
	}
	ret, err := toTerm(args[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}
	for _, arg := range args[1:] {
		argTerm, err := toTerm(arg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fn.Name(), err)
		}
		fnFill := ret.fill
		argFill := argTerm.fill
		ret = Term{
			desc: fmt.Sprintf("app(%s, %s)", ret.desc, argTerm.desc),
			fill: func(b *terms.Builder, dest terms.Dest) terms.Done {
				return b.Apply(dest, fnFill, argFill)
			},
		}
	}
	return ret, nil
}

// lam(fn) calls fn with a fresh variable each time the abstraction is built.
func builtinLam(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var body starlark.Callable
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &body); err != nil {
		return nil, err
	}
	return Term{
		desc: fmt.Sprintf("lam(%s)", body.Name()),
		fill: func(b *terms.Builder, dest terms.Dest) terms.Done {
			return b.Lambda(dest, func(b *terms.Builder, v *terms.Var, bodyDest terms.Dest) terms.Done {
				result, err := starlark.Call(thread, body, starlark.Tuple{varTerm(v)}, nil)
				if err != nil {
					return b.Fail(err)
				}
				term, err := toTerm(result)
				if err != nil {
					return b.Fail(fmt.Errorf("%s: %w", body.Name(), err))
				}
				return term.fill(b, bodyDest)
			})
		},
	}, nil
}
