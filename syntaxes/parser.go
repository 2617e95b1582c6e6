package syntaxes

import (
	"fmt"
	"io"
)

type parser struct {
	tokens *Tokenizer
}

// Parse reads one term from r.
func Parse(name string, r io.Reader) (Expr, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return ParseSource(NewSource(name, string(content)))
}

func ParseSource(source *Source) (Expr, error) {
	p := &parser{
		tokens: NewTokenizer(source),
	}
	expr, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	tok, err := p.tokens.Current()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenEOF {
		return nil, p.unexpected(tok)
	}
	return expr, nil
}

func (p *parser) unexpected(tok *Token) error {
	return WithPos(fmt.Errorf("%w: %v", ErrUnexpectedToken, tok), tok.Pos)
}

func (p *parser) expectSymbol(text string) error {
	tok, err := p.tokens.Current()
	if err != nil {
		return err
	}
	if tok.Kind != TokenSymbol || tok.Text != text {
		return WithPos(fmt.Errorf("%w: %v, expecting %q", ErrUnexpectedToken, tok, text), tok.Pos)
	}
	p.tokens.Consume()
	return nil
}

func startsAtom(tok *Token) bool {
	switch tok.Kind {
	case TokenNumber, TokenString:
		return true
	case TokenIdentifier:
		return tok.Text != keywordIn
	case TokenSymbol:
		return tok.Text == "(" || tok.Text == `\` || tok.Text == "λ"
	}
	return false
}

// term := atom { atom }
func (p *parser) parseTerm() (Expr, error) {
	expr, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.tokens.Current()
		if err != nil {
			return nil, err
		}
		if !startsAtom(tok) {
			return expr, nil
		}
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		expr = Apply{
			Pos: expr.Position(),
			Fn:  expr,
			Arg: arg,
		}
	}
}

func (p *parser) parseAtom() (Expr, error) {
	tok, err := p.tokens.Current()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {

	case TokenNumber, TokenString:
		p.tokens.Consume()
		return Const{
			Pos:  tok.Pos,
			Name: tok.Text,
		}, nil

	case TokenIdentifier:
		switch tok.Text {
		case keywordLet:
			p.tokens.Consume()
			return p.parseLet(tok.Pos)
		case keywordIn:
			return nil, p.unexpected(tok)
		}
		p.tokens.Consume()
		return Name{
			Pos:   tok.Pos,
			Ident: tok.Text,
		}, nil

	case TokenSymbol:
		switch tok.Text {
		case `\`, "λ":
			p.tokens.Consume()
			return p.parseLambda(tok.Pos)
		case "(":
			p.tokens.Consume()
			next, err := p.tokens.Current()
			if err != nil {
				return nil, err
			}
			if next.Kind == TokenSymbol && next.Text == ")" {
				p.tokens.Consume()
				return Const{
					Pos:  tok.Pos,
					Name: "()",
				}, nil
			}
			expr, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			if err := p.expectSymbol(")"); err != nil {
				return nil, err
			}
			return expr, nil
		}
	}

	return nil, p.unexpected(tok)
}

func (p *parser) parseBinder() (string, error) {
	tok, err := p.tokens.Current()
	if err != nil {
		return "", err
	}
	if tok.Kind != TokenIdentifier || isKeyword(tok.Text) {
		return "", WithPos(fmt.Errorf("%w: %v, expecting a variable", ErrUnexpectedToken, tok), tok.Pos)
	}
	p.tokens.Consume()
	if tok.Text == "_" {
		return "", nil
	}
	return tok.Text, nil
}

// \x. body
func (p *parser) parseLambda(pos Pos) (Expr, error) {
	param, err := p.parseBinder()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol("."); err != nil {
		return nil, err
	}
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return Lambda{
		Pos:   pos,
		Param: param,
		Body:  body,
	}, nil
}

// let x = value in body
func (p *parser) parseLet(pos Pos) (Expr, error) {
	param, err := p.parseBinder()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol("="); err != nil {
		return nil, err
	}
	value, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	tok, err := p.tokens.Current()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenIdentifier || tok.Text != keywordIn {
		return nil, WithPos(fmt.Errorf("%w: %v, expecting %q", ErrUnexpectedToken, tok, keywordIn), tok.Pos)
	}
	p.tokens.Consume()
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return Apply{
		Pos: pos,
		Fn: Lambda{
			Pos:   pos,
			Param: param,
			Body:  body,
		},
		Arg: value,
	}, nil
}
