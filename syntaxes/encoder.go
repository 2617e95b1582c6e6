package syntaxes

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/reusee/affine/terms"
)

// Definitions are closed terms referenced by name. Every use expands to a
// fresh copy.
type Definitions map[string]Expr

// ParseDefinitions parses textual definitions.
func ParseDefinitions(texts map[string]string) (Definitions, error) {
	ret := make(Definitions, len(texts))
	for _, name := range slices.Sorted(maps.Keys(texts)) {
		expr, err := ParseSource(NewSource("definition "+name, texts[name]))
		if err != nil {
			return nil, fmt.Errorf("definition %s: %w", name, err)
		}
		ret[name] = expr
	}
	return ret, nil
}

type binding struct {
	name string
	v    *terms.Var
}

type Encoder struct {
	Definitions Definitions

	scope     []binding
	expanding map[string]bool
}

// Encode defines dest as the term for expr.
func (e *Encoder) Encode(b *terms.Builder, dest terms.Dest, expr Expr) terms.Done {
	switch expr := expr.(type) {

	case Const:
		return b.Constant(dest, expr.Name)

	case Lambda:
		return b.Lambda(dest, func(b *terms.Builder, v *terms.Var, body terms.Dest) terms.Done {
			if expr.Param == "" {
				return e.Encode(b, body, expr.Body)
			}
			e.scope = append(e.scope, binding{
				name: expr.Param,
				v:    v,
			})
			defer func() {
				e.scope = e.scope[:len(e.scope)-1]
			}()
			return e.Encode(b, body, expr.Body)
		})

	case Apply:
		return b.Apply(dest,
			func(b *terms.Builder, dest terms.Dest) terms.Done {
				return e.Encode(b, dest, expr.Fn)
			},
			func(b *terms.Builder, dest terms.Dest) terms.Done {
				return e.Encode(b, dest, expr.Arg)
			},
		)

	case Name:
		return e.encodeName(b, dest, expr)

	}

	return b.Fail(fmt.Errorf("unknown expression %T", expr))
}

func (e *Encoder) encodeName(b *terms.Builder, dest terms.Dest, name Name) terms.Done {
	for i := len(e.scope) - 1; i >= 0; i-- {
		binding := e.scope[i]
		if binding.name != name.Ident {
			continue
		}
		if binding.v.Used() {
			return b.Fail(WithPos(fmt.Errorf("%w: %s", ErrVariableReused, name.Ident), name.Pos))
		}
		return b.Reference(dest, binding.v)
	}

	def, ok := e.Definitions[name.Ident]
	if !ok {
		return b.Fail(WithPos(fmt.Errorf("%w: %s", ErrUndefinedName, name.Ident), name.Pos))
	}
	if e.expanding[name.Ident] {
		return b.Fail(WithPos(fmt.Errorf("%w: %s", ErrRecursive, name.Ident), name.Pos))
	}
	if e.expanding == nil {
		e.expanding = make(map[string]bool)
	}
	e.expanding[name.Ident] = true
	// definitions are closed
	scope := e.scope
	e.scope = nil
	defer func() {
		e.scope = scope
		delete(e.expanding, name.Ident)
	}()
	return e.Encode(b, dest, def)
}

// Compile parses a program and builds it in store.
func Compile(store *terms.Store, name string, r io.Reader, defs Definitions) (terms.NodeID, error) {
	expr, err := Parse(name, r)
	if err != nil {
		return terms.NoNode, err
	}
	return Build(store, expr, defs)
}

func Build(store *terms.Store, expr Expr, defs Definitions) (terms.NodeID, error) {
	encoder := &Encoder{
		Definitions: defs,
	}
	return terms.Build(store, func(b *terms.Builder, dest terms.Dest) terms.Done {
		return encoder.Encode(b, dest, expr)
	})
}

// CompileString is Compile for in-memory source.
func CompileString(store *terms.Store, name string, src string, defs Definitions) (terms.NodeID, error) {
	return Compile(store, name, strings.NewReader(src), defs)
}
