package terms

import (
	"errors"
	"strings"
)

type ErrorKind uint8

const (
	KindConstruction ErrorKind = iota + 1
	KindUninitialized
	KindDoubleBeta
	KindStuck
	KindBudgetExceeded
)

var (
	ErrConstruction   = errors.New("construction error")
	ErrUninitialized  = errors.New("uninitialized dereference")
	ErrDoubleBeta     = errors.New("double beta")
	ErrStuck          = errors.New("stuck application")
	ErrBudgetExceeded = errors.New("budget exceeded")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindConstruction:
		return ErrConstruction
	case KindUninitialized:
		return ErrUninitialized
	case KindDoubleBeta:
		return ErrDoubleBeta
	case KindStuck:
		return ErrStuck
	case KindBudgetExceeded:
		return ErrBudgetExceeded
	}
	return nil
}

func (k ErrorKind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return "unknown error"
}

// Error is a fault of an ill-formed program or of its construction. Node and
// Slot name the offending position when there is one.
type Error struct {
	Kind   ErrorKind
	Node   NodeID
	Slot   SlotID
	Detail string
}

func newError(kind ErrorKind, node NodeID, slot SlotID, detail string) *Error {
	return &Error{
		Kind:   kind,
		Node:   node,
		Slot:   slot,
		Detail: detail,
	}
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	if e.Node.IsValid() {
		sb.WriteString(" at ")
		sb.WriteString(e.Node.String())
	}
	if e.Slot.IsValid() {
		sb.WriteString(" slot ")
		sb.WriteString(e.Slot.String())
	}
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

// At returns a copy of the error attributed to node, keeping an existing
// attribution.
func (e *Error) At(node NodeID) *Error {
	if e.Node.IsValid() {
		return e
	}
	ret := *e
	ret.Node = node
	return &ret
}

// KindOf reports the ErrorKind of err, or zero if err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
