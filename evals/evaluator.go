package evals

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/reusee/affine/logs"
	"github.com/reusee/affine/terms"
)

// Evaluator reduces a program in a Store by strict, leftmost-first, in-place
// beta reduction.
type Evaluator struct {
	Store  *terms.Store
	Logger logs.Logger

	// MaxSteps and MaxDepth are budgets; zero means unlimited.
	MaxSteps int
	MaxDepth int

	// Trace logs every step at info level instead of debug.
	Trace bool

	// Verify checks the affine invariant before the first step.
	Verify bool

	work []frame
}

type frame struct {
	id    terms.NodeID
	phase uint8
}

const (
	phaseFn uint8 = iota
	phaseArg
	phaseBeta
)

// Step performs at most one rewrite reachable from id and reports whether it
// did.
func (e *Evaluator) Step(id terms.NodeID) (bool, error) {
	target, term, ok, err := e.redex(id)
	if err != nil || !ok {
		return false, err
	}
	if err := e.rewrite(target, term); err != nil {
		return false, err
	}
	return true, nil
}

// redex finds the next rewrite reachable from id without changing the store.
// The traversal uses an explicit work list, so deep terms do not grow the
// goroutine stack.
func (e *Evaluator) redex(id terms.NodeID) (terms.NodeID, terms.Term, bool, error) {
	store := e.Store
	work := append(e.work[:0], frame{id: id})
	defer func() {
		e.work = work[:0]
	}()

	for len(work) > 0 {
		if e.MaxDepth > 0 && len(work) > e.MaxDepth {
			return terms.NoNode, terms.Term{}, false, &terms.Error{
				Kind:   terms.KindBudgetExceeded,
				Node:   work[len(work)-1].id,
				Slot:   terms.NoSlot,
				Detail: fmt.Sprintf("work list deeper than %d", e.MaxDepth),
			}
		}

		top := &work[len(work)-1]
		if !store.Has(top.id) {
			return terms.NoNode, terms.Term{}, false, &terms.Error{
				Kind:   terms.KindUninitialized,
				Node:   top.id,
				Slot:   terms.NoSlot,
				Detail: "position outside the store",
			}
		}
		term := store.Read(top.id)

		switch term.Kind {

		case terms.Constant, terms.Abstraction:
			// normal form, the parent moves on
			work = work[:len(work)-1]

		case terms.Reference:
			return top.id, term, true, nil

		case terms.Application:
			switch top.phase {
			case phaseFn:
				top.phase = phaseArg
				work = append(work, frame{id: term.Fn})
			case phaseArg:
				top.phase = phaseBeta
				work = append(work, frame{id: term.Arg})
			default:
				if fn := store.Read(term.Fn); fn.Kind != terms.Abstraction {
					return terms.NoNode, terms.Term{}, false, &terms.Error{
						Kind:   terms.KindStuck,
						Node:   top.id,
						Slot:   terms.NoSlot,
						Detail: fmt.Sprintf("function position %v is %s %s", term.Fn, fn.Kind, store.Format(term.Fn)),
					}
				}
				return top.id, term, true, nil
			}

		default:
			detail := "reserved position never defined"
			if store.Defined(top.id) {
				detail = "position already consumed"
			}
			return terms.NoNode, terms.Term{}, false, &terms.Error{
				Kind:   terms.KindUninitialized,
				Node:   top.id,
				Slot:   terms.NoSlot,
				Detail: detail,
			}
		}
	}

	return terms.NoNode, terms.Term{}, false, nil
}

// rewrite replaces a reference at id by its slot value, or beta reduces the
// application at id whose operands are both in normal form.
func (e *Evaluator) rewrite(id terms.NodeID, term terms.Term) error {
	store := e.Store
	if term.Kind == terms.Reference {
		value, err := store.ConsumeSlot(term.Slot)
		if err != nil {
			return attach(err, id)
		}
		store.Replace(id, value)
		return nil
	}

	fn := store.Read(term.Fn)
	if err := store.WriteSlot(fn.Slot, store.Read(term.Arg)); err != nil {
		return attach(err, id)
	}
	store.Take(term.Arg)
	store.Replace(id, store.Take(fn.Body))
	return nil
}

func attach(err error, id terms.NodeID) error {
	if e, ok := err.(*terms.Error); ok {
		return e.At(id)
	}
	return err
}

// Run steps root until it is in normal form, yielding the step number after
// every rewrite. An error ends the sequence. When MaxSteps rewrites did not
// reach normal form, the store is left as it was after the last of them.
func (e *Evaluator) Run(ctx context.Context, root terms.NodeID) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		if e.Verify {
			if err := e.Store.Verify(root); err != nil {
				yield(0, err)
				return
			}
		}

		for n := 1; ; n++ {
			target, term, ok, err := e.redex(root)
			if err != nil {
				yield(n, err)
				return
			}
			if !ok {
				return
			}
			if e.MaxSteps > 0 && n > e.MaxSteps {
				yield(n, &terms.Error{
					Kind:   terms.KindBudgetExceeded,
					Node:   root,
					Slot:   terms.NoSlot,
					Detail: fmt.Sprintf("no normal form within %d steps", e.MaxSteps),
				})
				return
			}
			if err := e.rewrite(target, term); err != nil {
				yield(n, err)
				return
			}
			e.trace(ctx, n, root)
			if !yield(n, nil) {
				return
			}
		}
	}
}

func (e *Evaluator) trace(ctx context.Context, n int, root terms.NodeID) {
	if e.Logger == nil {
		return
	}
	level := slog.LevelDebug
	if e.Trace {
		level = slog.LevelInfo
	}
	if !e.Logger.Enabled(ctx, level) {
		return
	}
	e.Logger.Log(ctx, level, "step",
		"n", n,
		"term", e.Store.Format(root),
	)
}

// Eval reduces root to its value: a constant or an unapplied abstraction.
func (e *Evaluator) Eval(ctx context.Context, root terms.NodeID) (terms.Term, error) {
	for _, err := range e.Run(ctx, root) {
		if err != nil {
			return terms.Term{}, err
		}
	}
	return e.Store.Read(root), nil
}
