package terms

import (
	"fmt"
	"strconv"
)

type Kind uint8

const (
	Undefined Kind = iota
	Constant
	Abstraction
	Application
	Reference
)

func (k Kind) String() string {
	switch k {
	case Undefined:
		return "undefined"
	case Constant:
		return "constant"
	case Abstraction:
		return "abstraction"
	case Application:
		return "application"
	case Reference:
		return "reference"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Term is the content of one position. Children are addressed by NodeID, so
// copying a Term moves the node without touching its subgraph.
type Term struct {
	Kind Kind
	Name string
	Slot SlotID
	Body NodeID
	Fn   NodeID
	Arg  NodeID
}

func Const(name string) Term {
	return Term{
		Kind: Constant,
		Name: name,
		Slot: NoSlot,
		Body: NoNode,
		Fn:   NoNode,
		Arg:  NoNode,
	}
}

func Lam(slot SlotID, body NodeID) Term {
	return Term{
		Kind: Abstraction,
		Slot: slot,
		Body: body,
		Fn:   NoNode,
		Arg:  NoNode,
	}
}

func App(fn, arg NodeID) Term {
	return Term{
		Kind: Application,
		Slot: NoSlot,
		Body: NoNode,
		Fn:   fn,
		Arg:  arg,
	}
}

func Ref(slot SlotID) Term {
	return Term{
		Kind: Reference,
		Slot: slot,
		Body: NoNode,
		Fn:   NoNode,
		Arg:  NoNode,
	}
}

func (t Term) IsValue() bool {
	return t.Kind == Constant || t.Kind == Abstraction
}

func (t Term) String() string {
	switch t.Kind {
	case Constant:
		return fmt.Sprintf("Const(%q)", t.Name)
	case Abstraction:
		return fmt.Sprintf("Lam(%v, %v)", t.Slot, t.Body)
	case Application:
		return fmt.Sprintf("App(%v, %v)", t.Fn, t.Arg)
	case Reference:
		return fmt.Sprintf("Ref(%v)", t.Slot)
	}
	return "Undefined"
}

// children returns the positions a term points at directly.
func (t Term) children() []NodeID {
	switch t.Kind {
	case Abstraction:
		return []NodeID{t.Body}
	case Application:
		return []NodeID{t.Fn, t.Arg}
	}
	return nil
}
