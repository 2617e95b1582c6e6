package debugs

import (
	"testing"

	"github.com/reusee/affine/logs"
	"github.com/reusee/affine/terms"
	"github.com/reusee/dscope"
	"go.starlark.net/starlark"
)

func testStore(t *testing.T) (*terms.Store, terms.NodeID) {
	store := terms.NewStore()
	root, err := terms.Build(store, func(b *terms.Builder, dest terms.Dest) terms.Done {
		return b.Apply(dest,
			func(b *terms.Builder, dest terms.Dest) terms.Done {
				return b.Lambda(dest, func(b *terms.Builder, x *terms.Var, body terms.Dest) terms.Done {
					return b.Reference(body, x)
				})
			},
			func(b *terms.Builder, dest terms.Dest) terms.Done {
				return b.Constant(dest, "1")
			},
		)
	})
	if err != nil {
		t.Fatal(err)
	}
	return store, root
}

func TestGlobals(t *testing.T) {
	store, _ := testStore(t)
	globals := Globals(store)

	for expr, expected := range map[string]starlark.Value{
		`len(nodes)`:         starlark.MakeInt(4),
		`nodes[0]["kind"]`:   starlark.String("application"),
		`nodes[1]["slot"]`:   starlark.MakeUint(0),
		`nodes[2]["name"]`:   starlark.String("1"),
		`slots[0]["state"]`:  starlark.String("unwritten"),
		`format(0)`:          starlark.String(`(\s0. s0) 1`),
		`format(100)`:        starlark.String("<unknown>"),
		`dump().count("\n")`: starlark.MakeInt(5),
	} {
		t.Run(expr, func(t *testing.T) {
			thread := &starlark.Thread{
				Name: "test",
			}
			value, err := starlark.Eval(thread, "test", expr, globals)
			if err != nil {
				t.Fatal(err)
			}
			equal, err := starlark.Equal(value, expected)
			if err != nil {
				t.Fatal(err)
			}
			if !equal {
				t.Fatalf("got %v", value)
			}
		})
	}
}

func TestTap(t *testing.T) {
	store, _ := testStore(t)
	dscope.New(
		new(Module),
		new(logs.Module),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", store)
	})
}
