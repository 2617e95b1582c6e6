package scripts

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/reusee/affine/logs"
	"github.com/reusee/affine/terms"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Load executes a script and builds the term bound to its global main. main
// may be a term or a function without parameters returning one. src is
// read from filename when nil.
func Load(store *terms.Store, filename string, src any) (terms.NodeID, error) {
	root, _, err := load(slog.Default(), store, filename, src, nil)
	return root, err
}

// load also returns the values of the globals holding settings, in global
// name order. A constructor is predeclared for each of settingTypes.
func load(logger logs.Logger, store *terms.Store, filename string, src any, settingTypes []reflect.Type) (terms.NodeID, []any, error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(thread *starlark.Thread, msg string) {
			logger.Info(msg, "script", thread.Name)
		},
	}

	globals, err := starlark.ExecFileOptions(
		&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
			Recursion:       true,
		},
		thread,
		filename,
		src,
		predeclared(logger, settingTypes),
	)
	if err != nil {
		return terms.NoNode, nil, wrap(err)
	}

	main, ok := globals["main"]
	if !ok {
		return terms.NoNode, nil, fmt.Errorf("%s: main not defined", filename)
	}
	if callable, ok := main.(starlark.Callable); ok {
		main, err = starlark.Call(thread, callable, nil, nil)
		if err != nil {
			return terms.NoNode, nil, wrap(err)
		}
	}
	term, err := toTerm(main)
	if err != nil {
		return terms.NoNode, nil, fmt.Errorf("%s: main: %w", filename, err)
	}

	// lam bodies run during the build
	root, err := terms.Build(store, term.fill)
	if err != nil {
		return terms.NoNode, nil, fmt.Errorf("%s: %w", filename, err)
	}

	var settings []any
	for _, name := range globals.Keys() {
		if setting, ok := globals[name].(Setting); ok {
			settings = append(settings, setting.Value())
		}
	}

	return root, settings, nil
}
