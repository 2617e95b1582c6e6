package terms

import (
	"errors"
	"testing"
)

func TestExplicitBuilder(t *testing.T) {
	store := NewStore()
	b := NewBuilder(store)

	fn, arg, err := b.MakeApplication(b.Root())
	if err != nil {
		t.Fatal(err)
	}
	v, body, err := b.MakeAbstraction(fn)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.MakeReference(body, v); err != nil {
		t.Fatal(err)
	}
	if !v.Used() {
		t.Fatal()
	}

	// incomplete
	if _, err := b.Finish(); !errors.Is(err, ErrUninitialized) {
		t.Fatalf("got %v", err)
	}

	if _, err := b.MakeConstant(arg, "1"); err != nil {
		t.Fatal(err)
	}
	root, err := b.Finish()
	if err != nil {
		t.Fatal(err)
	}
	if root != b.Root().ID() {
		t.Fatalf("got %v", root)
	}
	if str := store.Format(root); str != `(\s0. s0) 1` {
		t.Fatalf("got %s", str)
	}
}

func TestVariableReferencedTwice(t *testing.T) {
	store := NewStore()
	b := NewBuilder(store)
	v, body, err := b.MakeAbstraction(b.Root())
	if err != nil {
		t.Fatal(err)
	}
	fn, arg, err := b.MakeApplication(body)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.MakeReference(fn, v); err != nil {
		t.Fatal(err)
	}
	_, err = b.MakeReference(arg, v)
	if !errors.Is(err, ErrConstruction) {
		t.Fatalf("got %v", err)
	}
	// the builder stays failed
	if _, err := b.MakeConstant(arg, "0"); !errors.Is(err, ErrConstruction) {
		t.Fatalf("got %v", err)
	}
	if _, err := b.Finish(); !errors.Is(err, ErrConstruction) {
		t.Fatalf("got %v", err)
	}
}

func TestBuildDefinedTwice(t *testing.T) {
	store := NewStore()
	b := NewBuilder(store)
	if _, err := b.MakeConstant(b.Root(), "0"); err != nil {
		t.Fatal(err)
	}
	_, _, err := b.MakeAbstraction(b.Root())
	if !errors.Is(err, ErrConstruction) {
		t.Fatalf("got %v", err)
	}
	// nothing was allocated for the rejected abstraction
	if store.Len() != 1 || store.NumSlots() != 0 {
		t.Fatalf("got %v %v", store.Len(), store.NumSlots())
	}
}

func TestBuild(t *testing.T) {
	store := NewStore()
	root, err := Build(store, func(b *Builder, dest Dest) Done {
		return b.Apply(dest,
			func(b *Builder, dest Dest) Done {
				return b.Lambda(dest, func(b *Builder, x *Var, body Dest) Done {
					return b.Lambda(body, func(b *Builder, _ *Var, body Dest) Done {
						return b.Reference(body, x)
					})
				})
			},
			func(b *Builder, dest Dest) Done {
				return b.Constant(dest, "0")
			},
		)
	})
	if err != nil {
		t.Fatal(err)
	}
	if str := store.Format(root); str != `(\s0. \s1. s0) 0` {
		t.Fatalf("got %s", str)
	}
	if err := store.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestBuildWrongDone(t *testing.T) {
	store := NewStore()
	_, err := Build(store, func(b *Builder, dest Dest) Done {
		return b.Lambda(dest, func(b *Builder, _ *Var, body Dest) Done {
			// defines the body but answers with the outer destination
			b.Constant(body, "()")
			return Done{id: dest.ID(), ok: true}
		})
	})
	if !errors.Is(err, ErrConstruction) {
		t.Fatalf("got %v", err)
	}

	store = NewStore()
	_, err = Build(store, func(b *Builder, dest Dest) Done {
		return Done{}
	})
	if !errors.Is(err, ErrConstruction) {
		t.Fatalf("got %v", err)
	}
}

func TestBuildFail(t *testing.T) {
	store := NewStore()
	boom := errors.New("boom")
	called := false
	_, err := Build(store, func(b *Builder, dest Dest) Done {
		return b.Apply(dest,
			func(b *Builder, dest Dest) Done {
				return b.Fail(boom)
			},
			func(b *Builder, dest Dest) Done {
				called = true
				return b.Constant(dest, "0")
			},
		)
	})
	if !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
	if called {
		t.Fatal("argument built after failure")
	}
}
