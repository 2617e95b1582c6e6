package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/affine/cmds"
	"github.com/reusee/affine/configs"
	"github.com/reusee/affine/modes"
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"golang.org/x/term"
)

var (
	wrap = e5.Wrap.With(e5.WrapStacktrace)

	exprs      = cmds.Collect[string]("-e")
	scriptPath = cmds.Var[string]("-script")
	dumpStore  = cmds.Switch("-dump")
	tapStore   = cmds.Switch("-tap")

	files []string
)

func init() {
	cmds.Fallback(func(arg string) error {
		files = append(files, arg)
		return nil
	})
}

type options struct {
	Exprs  []string
	Script string
	Files  []string
	Dump   bool
	Tap    bool
}

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	opts := options{
		Exprs:  *exprs,
		Script: *scriptPath,
		Files:  files,
		Dump:   *dumpStore,
		Tap:    *tapStore,
	}
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	var err error
	scope.Call(func(
		loader configs.Loader,
	) {
		err = loader.Err()
	})
	if err == nil {
		scope.Call(func(
			session *Session,
		) {
			session.Scope = scope
			err = run(ctx, session, opts, os.Stdin, interactive, os.Stdout, os.Stderr)
		})
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(
	ctx context.Context,
	session *Session,
	opts options,
	stdin io.Reader,
	interactive bool,
	out io.Writer,
	errOut io.Writer,
) error {
	session.Out = out
	session.Dump = opts.Dump
	session.TapAfter = opts.Tap

	hasInput := false

	for _, expr := range opts.Exprs {
		hasInput = true
		if err := session.Expr(ctx, expr); err != nil {
			return err
		}
	}

	if opts.Script != "" {
		hasInput = true
		if err := session.Script(ctx, opts.Script); err != nil {
			return err
		}
	}

	for _, path := range opts.Files {
		hasInput = true
		if err := evalFile(ctx, session, path); err != nil {
			return err
		}
	}

	if hasInput {
		return nil
	}
	if interactive {
		return runREPL(ctx, session, errOut)
	}
	return session.Source(ctx, "stdin", stdin)
}

func evalFile(ctx context.Context, session *Session, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return wrap(err)
	}
	defer f.Close()
	return session.Source(ctx, path, f)
}
