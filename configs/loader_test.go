package configs

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"testing"
)

var testSchema = `
max_steps?: int & >=0
trace?: bool
definitions?: [string]: string
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)

	var steps int
	if err := loader.AssignFirst("max_steps", &steps); err != nil {
		t.Fatal(err)
	}
	if steps != 100 {
		t.Fatalf("got %v", steps)
	}

	var defs map[string]string
	if err := loader.AssignFirst("definitions", &defs); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%q", slices.Sorted(maps.Keys(defs))); str != `["id" "unit"]` {
		t.Fatalf("got %s", str)
	}
	if defs["id"] != `\x. x` {
		t.Fatalf("got %q", defs["id"])
	}

	err := loader.AssignFirst("max_depth", &steps)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test.cue",
		"testdata/test2.cue",
	}, testSchema)

	var steps []int
	for value, err := range loader.IterCueValues("max_steps") {
		if err != nil {
			t.Fatal(err)
		}
		var n int
		if err := value.Decode(&n); err != nil {
			t.Fatal(err)
		}
		steps = append(steps, n)
	}
	if str := fmt.Sprintf("%v", steps); str != "[100 5]" {
		t.Fatalf("got %s", str)
	}

	steps = steps[:0]
	for n := range All[int](loader, "max_steps") {
		steps = append(steps, n)
	}
	if str := fmt.Sprintf("%v", steps); str != "[100 5]" {
		t.Fatalf("got %s", str)
	}

	if First[int](loader, "max_steps") != 100 {
		t.Fatal()
	}
	if First[bool](loader, "trace") != true {
		t.Fatal()
	}
	if First[int](loader, "max_depth") != 0 {
		t.Fatal()
	}
	if str := fmt.Sprintf("%v", loader.Paths()); str != "[testdata/test.cue testdata/test2.cue]" {
		t.Fatalf("got %s", str)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, testSchema)
	var n int
	if err := loader.AssignFirst("max_steps", &n); err == nil {
		t.Fatal("should error")
	}
	if loader.Err() == nil {
		t.Fatal("should error")
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/missing.cue",
	}, "")
	if err := loader.Err(); err == nil {
		t.Fatal("should error")
	}
}

func TestNoFiles(t *testing.T) {
	loader := NewLoader(nil, testSchema)
	if err := loader.Err(); err != nil {
		t.Fatal(err)
	}
	if First[int](loader, "max_steps") != 0 {
		t.Fatal()
	}
}
