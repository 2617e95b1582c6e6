package terms

import "fmt"

// Var is the handle to an abstraction's slot. It may back exactly one
// Reference; Go cannot move values, so reuse is detected at run time.
type Var struct {
	slot SlotID
	used bool
}

func (v *Var) Slot() SlotID {
	return v.slot
}

func (v *Var) Used() bool {
	return v.used
}

// Done proves that a destination was defined.
type Done struct {
	id NodeID
	ok bool
}

func (d Done) ID() NodeID {
	return d.id
}

// Fill defines dest, possibly building more of the program below it.
type Fill = func(b *Builder, dest Dest) Done

type Builder struct {
	store *Store
	root  Dest
	err   error
}

func NewBuilder(store *Store) *Builder {
	return &Builder{
		store: store,
		root:  store.Allocate(),
	}
}

func (b *Builder) Store() *Store {
	return b.store
}

func (b *Builder) Root() Dest {
	return b.root
}

func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) define(dest Dest, term Term) (Done, error) {
	if b.err != nil {
		return Done{}, b.err
	}
	if err := b.store.Define(dest, term); err != nil {
		b.err = err
		return Done{}, err
	}
	return Done{
		id: dest.id,
		ok: true,
	}, nil
}

func (b *Builder) reserve(dest Dest) error {
	if b.err != nil {
		return b.err
	}
	if !b.store.Has(dest.id) {
		b.err = newError(KindConstruction, dest.id, NoSlot, "destination was not allocated by this store")
		return b.err
	}
	if b.store.Defined(dest.id) {
		b.err = newError(KindConstruction, dest.id, NoSlot, fmt.Sprintf("already defined as %v", b.store.Read(dest.id)))
		return b.err
	}
	return nil
}

func (b *Builder) MakeConstant(dest Dest, name string) (Done, error) {
	return b.define(dest, Const(name))
}

func (b *Builder) MakeAbstraction(dest Dest) (*Var, Dest, error) {
	if err := b.reserve(dest); err != nil {
		return nil, Dest{}, err
	}
	slot := b.store.NewSlot()
	body := b.store.Allocate()
	if _, err := b.define(dest, Lam(slot, body.id)); err != nil {
		return nil, Dest{}, err
	}
	return &Var{
		slot: slot,
	}, body, nil
}

func (b *Builder) MakeApplication(dest Dest) (fn Dest, arg Dest, err error) {
	if err := b.reserve(dest); err != nil {
		return Dest{}, Dest{}, err
	}
	fn = b.store.Allocate()
	arg = b.store.Allocate()
	if _, err := b.define(dest, App(fn.id, arg.id)); err != nil {
		return Dest{}, Dest{}, err
	}
	return fn, arg, nil
}

func (b *Builder) MakeReference(dest Dest, v *Var) (Done, error) {
	if b.err != nil {
		return Done{}, b.err
	}
	if v == nil {
		b.err = newError(KindConstruction, dest.id, NoSlot, "nil variable")
		return Done{}, b.err
	}
	if v.used {
		b.err = newError(KindConstruction, dest.id, v.slot, "variable already referenced")
		return Done{}, b.err
	}
	done, err := b.define(dest, Ref(v.slot))
	if err != nil {
		return Done{}, err
	}
	v.used = true
	return done, nil
}

// Finish checks that every reserved position got defined and returns the
// root of the program.
func (b *Builder) Finish() (NodeID, error) {
	if b.err != nil {
		return NoNode, b.err
	}
	if err := b.store.Check(); err != nil {
		return NoNode, err
	}
	return b.root.id, nil
}

// Fail aborts the build with err unless an earlier error is already recorded.
func (b *Builder) Fail(err error) Done {
	if b.err == nil && err != nil {
		b.err = err
	}
	return Done{}
}

func (b *Builder) expect(dest Dest, done Done) {
	if b.err != nil {
		return
	}
	if !done.ok || done.id != dest.id {
		b.err = newError(KindConstruction, dest.id, NoSlot, fmt.Sprintf("continuation returned %v instead of defining it", done.id))
	}
}

// Build runs fill on the root destination of a fresh program in store.
func Build(store *Store, fill Fill) (NodeID, error) {
	b := NewBuilder(store)
	b.expect(b.root, fill(b, b.root))
	return b.Finish()
}

func (b *Builder) Constant(dest Dest, name string) Done {
	done, _ := b.MakeConstant(dest, name)
	return done
}

func (b *Builder) Lambda(dest Dest, body func(b *Builder, v *Var, body Dest) Done) Done {
	v, bodyDest, err := b.MakeAbstraction(dest)
	if err != nil {
		return Done{}
	}
	b.expect(bodyDest, body(b, v, bodyDest))
	if b.err != nil {
		return Done{}
	}
	return Done{
		id: dest.id,
		ok: true,
	}
}

func (b *Builder) Apply(dest Dest, fn Fill, arg Fill) Done {
	fnDest, argDest, err := b.MakeApplication(dest)
	if err != nil {
		return Done{}
	}
	b.expect(fnDest, fn(b, fnDest))
	if b.err != nil {
		return Done{}
	}
	b.expect(argDest, arg(b, argDest))
	if b.err != nil {
		return Done{}
	}
	return Done{
		id: dest.id,
		ok: true,
	}
}

func (b *Builder) Reference(dest Dest, v *Var) Done {
	done, _ := b.MakeReference(dest, v)
	return done
}
