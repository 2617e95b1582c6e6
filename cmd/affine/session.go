package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/reusee/affine/configs"
	"github.com/reusee/affine/debugs"
	"github.com/reusee/affine/evals"
	"github.com/reusee/affine/logs"
	"github.com/reusee/affine/scripts"
	"github.com/reusee/affine/syntaxes"
	"github.com/reusee/affine/terms"
	"github.com/reusee/dscope"
)

// Session evaluates programs one at a time in a reused store.
type Session struct {
	Store        *terms.Store
	Logger       logs.Logger
	NewSpan      logs.NewSpan
	Compile      syntaxes.Compiler
	LoadScript   scripts.LoadScript
	NewEvaluator evals.NewEvaluator
	Tap          debugs.Tap

	// Scope is forked with the settings a script defines.
	Scope dscope.Scope

	Out  io.Writer
	Dump bool
	// TapAfter opens the debug tap after every evaluation.
	TapAfter bool
}

func (Module) Session(
	logger logs.Logger,
	newSpan logs.NewSpan,
	compile syntaxes.Compiler,
	loadScript scripts.LoadScript,
	newEvaluator evals.NewEvaluator,
	tap debugs.Tap,
) *Session {
	return &Session{
		Store:        terms.NewStore(),
		Logger:       logger,
		NewSpan:      newSpan,
		Compile:      compile,
		LoadScript:   loadScript,
		NewEvaluator: newEvaluator,
		Tap:          tap,
	}
}

func (s *Session) Source(ctx context.Context, name string, r io.Reader) error {
	return s.eval(ctx, name, func(store *terms.Store) (terms.NodeID, evals.NewEvaluator, error) {
		root, err := s.Compile(store, name, r)
		return root, s.NewEvaluator, err
	})
}

func (s *Session) Expr(ctx context.Context, expr string) error {
	return s.Source(ctx, "expr", strings.NewReader(expr))
}

func (s *Session) Script(ctx context.Context, path string) error {
	return s.eval(ctx, path, func(store *terms.Store) (terms.NodeID, evals.NewEvaluator, error) {
		root, settings, err := s.LoadScript(store, path, nil, configs.ConfigurableTypes(s.Scope)...)
		if err != nil {
			return terms.NoNode, nil, err
		}
		if len(settings) == 0 {
			return root, s.NewEvaluator, nil
		}
		s.Logger.DebugContext(ctx, "script settings", "settings", settings)
		scope := configs.Fork(s.Scope, settings)
		return root, dscope.Get[evals.NewEvaluator](scope), nil
	})
}

func (s *Session) eval(
	ctx context.Context,
	name string,
	build func(*terms.Store) (terms.NodeID, evals.NewEvaluator, error),
) (err error) {
	ctx, _ = s.NewSpan(ctx, name)
	defer func() {
		err = logs.WrapSpan(ctx, err)
	}()

	s.Store.Reset()
	root, newEvaluator, err := build(s.Store)
	if err != nil {
		return err
	}
	s.Logger.DebugContext(ctx, "built",
		"nodes", s.Store.Len(),
		"slots", s.Store.NumSlots(),
	)

	evaluator := newEvaluator(s.Store)
	if _, err := evaluator.Eval(ctx, root); err != nil {
		s.after(ctx, name)
		return err
	}

	if _, err := fmt.Fprintln(s.Out, s.Store.Format(root)); err != nil {
		return err
	}
	s.after(ctx, name)
	return nil
}

func (s *Session) after(ctx context.Context, name string) {
	if s.Dump {
		fmt.Fprint(s.Out, s.Store.Dump())
	}
	if s.TapAfter {
		s.Tap(ctx, name, s.Store)
	}
}
