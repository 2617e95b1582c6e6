package affineconfigs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/affine/cmds"
	"github.com/reusee/affine/configs"
	"github.com/reusee/affine/logs"
	"github.com/reusee/dscope"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "affine.cue")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValues(t *testing.T) {
	path := writeConfig(t, `
max_steps: 1000
max_depth: 64
trace: true
definitions: {
	id: "\\x. x"
}
`)
	dscope.New(
		new(Module),
		new(logs.Module),
	).Fork(
		dscope.Provide(configs.NewLoader([]string{path}, Schema)),
	).Call(func(
		steps MaxSteps,
		depth MaxDepth,
		trace Trace,
		defs Definitions,
	) {
		if steps != 1000 {
			t.Fatalf("got %v", steps)
		}
		if depth != 64 {
			t.Fatalf("got %v", depth)
		}
		if !trace {
			t.Fatal()
		}
		if defs["id"] != `\x. x` {
			t.Fatalf("got %v", defs)
		}
	})
}

func TestDefaults(t *testing.T) {
	dscope.New(
		new(Module),
		new(logs.Module),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, Schema)),
	).Call(func(
		steps MaxSteps,
		depth MaxDepth,
		trace Trace,
		defs Definitions,
	) {
		if steps != 0 || depth != 0 || trace {
			t.Fatalf("got %v %v %v", steps, depth, trace)
		}
		if len(defs) != 0 {
			t.Fatalf("got %v", defs)
		}
	})
}

func TestSchemaRejectsNegativeBudget(t *testing.T) {
	path := writeConfig(t, `max_steps: -1`)
	loader := configs.NewLoader([]string{path}, Schema)
	if err := loader.Err(); err == nil {
		t.Fatal("should error")
	}
}

func TestParseDefinition(t *testing.T) {
	name, src, err := ParseDefinition(`k = \x. \_. x`)
	if err != nil {
		t.Fatal(err)
	}
	if name != "k" || src != ` \x. \_. x` {
		t.Fatalf("got %q %q", name, src)
	}
	if _, _, err := ParseDefinition("nothing"); err == nil {
		t.Fatal("should error")
	}
	if _, _, err := ParseDefinition("=x"); err == nil {
		t.Fatal("should error")
	}
}

func TestFlagOverridesConfig(t *testing.T) {
	path := writeConfig(t, `
max_steps: 1000
max_depth: 64
`)
	cmds.GlobalExecutor.MustExecute([]string{
		"-max-steps", "0",
		"-max-depth", "8",
	})
	t.Cleanup(func() {
		cmds.GlobalExecutor.MustExecute([]string{
			"-max-steps.",
			"-max-depth.",
		})
	})
	dscope.New(
		new(Module),
		new(logs.Module),
	).Fork(
		dscope.Provide(configs.NewLoader([]string{path}, Schema)),
	).Call(func(
		steps MaxSteps,
		depth MaxDepth,
	) {
		// explicit zero is unlimited
		if steps != 0 {
			t.Fatalf("got %v", steps)
		}
		if depth != 8 {
			t.Fatalf("got %v", depth)
		}
	})
}
