package syntaxes

import (
	"fmt"

	"github.com/reusee/affine/terms"
)

type Expr interface {
	Position() Pos
}

type Const struct {
	Pos  Pos
	Name string
}

// Name is an identifier: a bound variable or a definition.
type Name struct {
	Pos   Pos
	Ident string
}

// Lambda binds Param in Body. An empty Param binds nothing.
type Lambda struct {
	Pos   Pos
	Param string
	Body  Expr
}

type Apply struct {
	Pos Pos
	Fn  Expr
	Arg Expr
}

var (
	_ Expr = Const{}
	_ Expr = Name{}
	_ Expr = Lambda{}
	_ Expr = Apply{}
)

func (c Const) Position() Pos  { return c.Pos }
func (n Name) Position() Pos   { return n.Pos }
func (l Lambda) Position() Pos { return l.Pos }
func (a Apply) Position() Pos  { return a.Pos }

func (c Const) String() string {
	return terms.FormatName(c.Name)
}

func (n Name) String() string {
	return n.Ident
}

func (l Lambda) String() string {
	param := l.Param
	if param == "" {
		param = "_"
	}
	return fmt.Sprintf(`(\%s. %v)`, param, l.Body)
}

func (a Apply) String() string {
	return fmt.Sprintf("(%v %v)", a.Fn, a.Arg)
}
