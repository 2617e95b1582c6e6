package combinators

import "github.com/reusee/affine/terms"

const (
	Zero = "0"
	One  = "1"
	Unit = "()"
)

// Identity is \x. x
func Identity(b *terms.Builder, dest terms.Dest) terms.Done {
	return b.Lambda(dest, func(b *terms.Builder, x *terms.Var, body terms.Dest) terms.Done {
		return b.Reference(body, x)
	})
}

// ConstUnit is \_. ()
func ConstUnit(b *terms.Builder, dest terms.Dest) terms.Done {
	return b.Lambda(dest, func(b *terms.Builder, _ *terms.Var, body terms.Dest) terms.Done {
		return b.Constant(body, Unit)
	})
}

// True is \t. \_. t
func True(b *terms.Builder, dest terms.Dest) terms.Done {
	return b.Lambda(dest, func(b *terms.Builder, t *terms.Var, body terms.Dest) terms.Done {
		return b.Lambda(body, func(b *terms.Builder, _ *terms.Var, body terms.Dest) terms.Done {
			return b.Reference(body, t)
		})
	})
}

// False is \_. \f. f
func False(b *terms.Builder, dest terms.Dest) terms.Done {
	return b.Lambda(dest, func(b *terms.Builder, _ *terms.Var, body terms.Dest) terms.Done {
		return b.Lambda(body, func(b *terms.Builder, f *terms.Var, body terms.Dest) terms.Done {
			return b.Reference(body, f)
		})
	})
}

func Constant(name string) terms.Fill {
	return func(b *terms.Builder, dest terms.Dest) terms.Done {
		return b.Constant(dest, name)
	}
}

// Apply folds args into a left-nested application of fn.
func Apply(fn terms.Fill, args ...terms.Fill) terms.Fill {
	if len(args) == 0 {
		return fn
	}
	last := args[len(args)-1]
	init := Apply(fn, args[:len(args)-1]...)
	return func(b *terms.Builder, dest terms.Dest) terms.Done {
		return b.Apply(dest, init, last)
	}
}

// Prelude holds the textual definitions available to every program.
var Prelude = map[string]string{
	"id":      `\x. x`,
	"const":   `\x. \_. x`,
	"true":    `\t. \_. t`,
	"false":   `\_. \f. f`,
	"unit":    `\_. ()`,
	"apply":   `\f. \x. f x`,
	"flip":    `\f. \x. \y. f y x`,
	"compose": `\f. \g. \x. f (g x)`,
	"not":     `\b. \t. \f. b f t`,
	"pair":    `\a. \b. \k. k a b`,
}
