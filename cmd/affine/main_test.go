package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/affine/affineconfigs"
	"github.com/reusee/affine/configs"
	"github.com/reusee/affine/modes"
	"github.com/reusee/affine/syntaxes"
	"github.com/reusee/affine/terms"
	"github.com/reusee/dscope"
)

func testRun(t *testing.T, opts options, stdin string) (string, error) {
	t.Helper()
	scope := dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, affineconfigs.Schema)),
	)
	out := new(bytes.Buffer)
	var err error
	scope.Call(func(
		session *Session,
	) {
		session.Scope = scope
		err = run(t.Context(), session, opts, strings.NewReader(stdin), false, out, new(bytes.Buffer))
	})
	return out.String(), err
}

func TestExprs(t *testing.T) {
	out, err := testRun(t, options{
		Exprs: []string{
			`true 0 1`,
			`false 0 1`,
			`(\x. x) (\_. ()) 1`,
			`const`,
		},
	}, "")
	if err != nil {
		t.Fatal(err)
	}
	if out != "0\n1\n()\n\\s0. \\s1. s0\n" {
		t.Fatalf("got %q", out)
	}
}

func TestStdin(t *testing.T) {
	out, err := testRun(t, options{}, "# comment\nlet f = false in\nf 0 1\n")
	if err != nil {
		t.Fatal(err)
	}
	if out != "1\n" {
		t.Fatalf("got %q", out)
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	program := filepath.Join(dir, "main.lam")
	if err := os.WriteFile(program, []byte(`pair "a" "b" true`), 0644); err != nil {
		t.Fatal(err)
	}
	script := filepath.Join(dir, "main.star")
	if err := os.WriteFile(script, []byte(`main = app(lam(lambda x: x), "s")`), 0644); err != nil {
		t.Fatal(err)
	}
	out, err := testRun(t, options{
		Script: script,
		Files:  []string{program},
	}, "")
	if err != nil {
		t.Fatal(err)
	}
	if out != "\"s\"\n\"a\"\n" {
		t.Fatalf("got %q", out)
	}

	_, err = testRun(t, options{
		Files: []string{filepath.Join(dir, "missing.lam")},
	}, "")
	if err == nil || !strings.Contains(err.Error(), "missing.lam") {
		t.Fatalf("got %v", err)
	}
}

func TestDump(t *testing.T) {
	out, err := testRun(t, options{
		Exprs: []string{`(\_. ()) 1`},
		Dump:  true,
	}, "")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "()\n@0 ") {
		t.Fatalf("got %q", out)
	}
	if !strings.Contains(out, "s0 written") {
		t.Fatalf("got %q", out)
	}
}

func TestErrors(t *testing.T) {
	_, err := testRun(t, options{
		Exprs: []string{`1 0`},
	}, "")
	if !errors.Is(err, terms.ErrStuck) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "span: ") {
		t.Fatalf("got %v", err)
	}

	_, err = testRun(t, options{
		Exprs: []string{`\x. x x`},
	}, "")
	if !errors.Is(err, syntaxes.ErrVariableReused) {
		t.Fatalf("got %v", err)
	}

	// stops at the first failure
	out, err := testRun(t, options{
		Exprs: []string{`0`, `nope`, `1`},
	}, "")
	if !errors.Is(err, syntaxes.ErrUndefinedName) {
		t.Fatalf("got %v", err)
	}
	if out != "0\n" {
		t.Fatalf("got %q", out)
	}
}

func TestDefinitions(t *testing.T) {
	scope := dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, affineconfigs.Schema)),
		dscope.Provide(affineconfigs.Definitions{
			"choose": `\c. c "left" "right"`,
		}),
	)
	out := new(bytes.Buffer)
	scope.Call(func(
		session *Session,
	) {
		err := run(t.Context(), session, options{
			Exprs: []string{`choose false`},
		}, strings.NewReader(""), false, out, new(bytes.Buffer))
		if err != nil {
			t.Fatal(err)
		}
	})
	if out.String() != "\"right\"\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestMaxSteps(t *testing.T) {
	scope := dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, affineconfigs.Schema)),
		dscope.Provide(affineconfigs.MaxSteps(1)),
	)
	scope.Call(func(
		session *Session,
	) {
		err := run(t.Context(), session, options{
			Exprs: []string{`id id id 0`},
		}, strings.NewReader(""), false, new(bytes.Buffer), new(bytes.Buffer))
		if !errors.Is(err, terms.ErrBudgetExceeded) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestScriptSettings(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}
	program := "main = app(lam(lambda x: x), lam(lambda y: y), 0)\n"

	limited := write("limited.star", "limit = MaxSteps(1)\n"+program)
	_, err := testRun(t, options{
		Script: limited,
	}, "")
	if !errors.Is(err, terms.ErrBudgetExceeded) {
		t.Fatalf("got %v", err)
	}

	// the setting does not outlive its script
	out, err := testRun(t, options{
		Exprs:  []string{`id id id 0`},
		Script: write("plain.star", program),
	}, "")
	if err != nil {
		t.Fatal(err)
	}
	if out != "0\n0\n" {
		t.Fatalf("got %q", out)
	}

	relaxed := write("relaxed.star", "limit = MaxSteps(0)\ndepth = MaxDepth(100)\n"+program)
	scope := dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, affineconfigs.Schema)),
		dscope.Provide(affineconfigs.MaxSteps(1)),
	)
	scope.Call(func(
		session *Session,
	) {
		session.Scope = scope
		out := new(bytes.Buffer)
		err := run(t.Context(), session, options{
			Script: relaxed,
		}, strings.NewReader(""), false, out, new(bytes.Buffer))
		if err != nil {
			t.Fatal(err)
		}
		if out.String() != "0\n" {
			t.Fatalf("got %q", out.String())
		}
	})

	_, err = testRun(t, options{
		Script: write("bad.star", "limit = MaxSteps(-1)\n"+program),
	}, "")
	if err == nil {
		t.Fatal("expecting error")
	}
}
