package syntaxes

import (
	"io"
	"maps"

	"github.com/reusee/affine/affineconfigs"
	"github.com/reusee/affine/combinators"
	"github.com/reusee/affine/terms"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Compiler compiles a program with the prelude and the configured
// definitions in scope.
type Compiler func(store *terms.Store, name string, r io.Reader) (terms.NodeID, error)

func (Module) Compiler(
	definitions affineconfigs.Definitions,
) Compiler {
	texts := maps.Clone(combinators.Prelude)
	maps.Copy(texts, definitions)
	var parsed Definitions
	var parseErr error
	return func(store *terms.Store, name string, r io.Reader) (terms.NodeID, error) {
		if parsed == nil && parseErr == nil {
			parsed, parseErr = ParseDefinitions(texts)
		}
		if parseErr != nil {
			return terms.NoNode, parseErr
		}
		return Compile(store, name, r, parsed)
	}
}
