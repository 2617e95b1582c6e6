package scripts

import (
	"fmt"

	"github.com/reusee/affine/terms"
	"go.starlark.net/starlark"
)

// Term is a Starlark value describing a program fragment. The fragment is
// built only when the program is encoded, so every use of a Term value
// produces a fresh copy, except for variables which may be used once.
type Term struct {
	desc string
	fill terms.Fill
}

var _ starlark.Value = Term{}

func (t Term) String() string {
	return t.desc
}

func (t Term) Type() string {
	return "term"
}

func (t Term) Freeze() {}

func (t Term) Truth() starlark.Bool {
	return starlark.True
}

func (t Term) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: term")
}

func (t Term) Fill() terms.Fill {
	return t.fill
}

func constantTerm(name string) Term {
	return Term{
		desc: fmt.Sprintf("const(%s)", terms.FormatName(name)),
		fill: func(b *terms.Builder, dest terms.Dest) terms.Done {
			return b.Constant(dest, name)
		},
	}
}

func varTerm(v *terms.Var) Term {
	return Term{
		desc: v.Slot().String(),
		fill: func(b *terms.Builder, dest terms.Dest) terms.Done {
			if v.Used() {
				return b.Fail(&terms.Error{
					Kind:   terms.KindConstruction,
					Node:   dest.ID(),
					Slot:   v.Slot(),
					Detail: "script variable used more than once",
				})
			}
			return b.Reference(dest, v)
		},
	}
}

// toTerm accepts terms, strings and integers.
func toTerm(value starlark.Value) (Term, error) {
	switch value := value.(type) {
	case Term:
		return value, nil
	case starlark.String:
		return constantTerm(string(value)), nil
	case starlark.Int:
		return constantTerm(value.String()), nil
	case starlark.Tuple:
		if len(value) == 0 {
			return constantTerm("()"), nil
		}
	}
	return Term{}, fmt.Errorf("expecting a term, got %s", value.Type())
}
