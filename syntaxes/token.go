package syntaxes

import "fmt"

type Token struct {
	Kind TokenKind
	Text string
	Pos  Pos
}

func (t *Token) String() string {
	switch t.Kind {
	case TokenEOF:
		return "end of input"
	case TokenString:
		return fmt.Sprintf("string %q", t.Text)
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Text)
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenEOF
	TokenIdentifier
	TokenString
	TokenNumber
	TokenSymbol
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "eof"
	case TokenIdentifier:
		return "identifier"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenSymbol:
		return "symbol"
	}
	return "invalid"
}

const (
	keywordLet = "let"
	keywordIn  = "in"
)

func isKeyword(s string) bool {
	return s == keywordLet || s == keywordIn
}
