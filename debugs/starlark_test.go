package debugs

import (
	"testing"

	"github.com/reusee/affine/terms"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"string", "hello", starlark.String("hello")},
		{"int", 42, starlark.MakeInt(42)},
		{"int64", int64(42), starlark.MakeInt64(42)},
		{"uint8", uint8(42), starlark.MakeUint64(42)},
		{"node id", terms.NodeID(3), starlark.MakeUint(3)},
		{"no node", terms.NoNode, starlark.None},
		{"no slot", terms.NoSlot, starlark.None},
		{"kind", terms.Application, starlark.String("application")},
		{"slot state", terms.Written, starlark.String("written")},
		{"[]any", []any{1, "a", true}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.String("a"), starlark.True})},
		{"[]string", []string{"a", "b"}, starlark.NewList([]starlark.Value{starlark.String("a"), starlark.String("b")})},
		{"map[string]any", map[string]any{"a": 1}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("a"), starlark.MakeInt(1))
			return d
		}()},
		{"nil pointer", (*int)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}

func TestNodeDict(t *testing.T) {
	d := nodeDict(terms.Node{
		ID:      2,
		Term:    terms.App(3, 4),
		Defined: true,
	})
	for key, expected := range map[string]starlark.Value{
		"id":      starlark.MakeUint(2),
		"kind":    starlark.String("application"),
		"fn":      starlark.MakeUint(3),
		"arg":     starlark.MakeUint(4),
		"defined": starlark.True,
	} {
		value, ok, err := d.Get(starlark.String(key))
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatalf("no %s", key)
		}
		equal, err := starlark.Equal(value, expected)
		if err != nil {
			t.Fatal(err)
		}
		if !equal {
			t.Fatalf("%s: got %v", key, value)
		}
	}
	if _, ok, _ := d.Get(starlark.String("name")); ok {
		t.Fatal()
	}
}
