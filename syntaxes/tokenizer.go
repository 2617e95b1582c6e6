package syntaxes

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

type Tokenizer struct {
	source  *bufio.Reader
	current *Token

	currPos Pos
	prevPos Pos
}

func NewTokenizer(source *Source) *Tokenizer {
	return &Tokenizer{
		source: bufio.NewReader(strings.NewReader(source.Content)),
		currPos: Pos{
			Source: source,
			Line:   1,
			Column: 1,
		},
	}
}

func (t *Tokenizer) readRune() (rune, error) {
	r, _, err := t.source.ReadRune()
	if err != nil {
		return 0, err
	}

	t.prevPos = t.currPos
	if r == '\n' {
		t.currPos.Line++
		t.currPos.Column = 1
	} else {
		t.currPos.Column++
	}

	return r, nil
}

func (t *Tokenizer) unreadRune() {
	t.source.UnreadRune()
	t.currPos = t.prevPos
}

func (t *Tokenizer) Current() (*Token, error) {
	if t.current == nil {
		var err error
		t.current, err = t.parseNext()
		if err != nil {
			return nil, err
		}
	}
	return t.current, nil
}

func (t *Tokenizer) Consume() {
	t.current = nil
}

func isSymbol(r rune) bool {
	switch r {
	case '(', ')', '\\', 'λ', '.', '=':
		return true
	}
	return false
}

func isIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		r == '_' || r == '-' || r == '\'' || r == '?' || r == '!'
}

func (t *Tokenizer) parseNext() (*Token, error) {
	for {
		t.skipWhitespace()
		startPos := t.currPos

		r, err := t.readRune()
		if err == io.EOF {
			return &Token{Kind: TokenEOF, Pos: startPos}, nil
		}
		if err != nil {
			return nil, err
		}

		switch {
		case r == '#':
			t.skipComment()
			continue
		case isSymbol(r):
			return &Token{
				Kind: TokenSymbol,
				Text: string(r),
				Pos:  startPos,
			}, nil
		case r == '"' || r == '`':
			return t.parseString(r, startPos)
		case unicode.IsDigit(r):
			t.unreadRune()
			return t.parseWhile(TokenNumber, unicode.IsDigit)
		case unicode.IsLetter(r) || r == '_':
			t.unreadRune()
			return t.parseWhile(TokenIdentifier, isIdentifierRune)
		}

		return &Token{Kind: TokenInvalid, Text: string(r), Pos: startPos}, nil
	}
}

func (t *Tokenizer) skipWhitespace() {
	for {
		r, err := t.readRune()
		if err != nil {
			return
		}
		if !unicode.IsSpace(r) {
			t.unreadRune()
			return
		}
	}
}

func (t *Tokenizer) skipComment() {
	for {
		r, err := t.readRune()
		if err != nil {
			return
		}
		if r == '\n' {
			return
		}
	}
}

func (t *Tokenizer) parseWhile(kind TokenKind, accept func(rune) bool) (*Token, error) {
	startPos := t.currPos
	var sb strings.Builder
	for {
		r, err := t.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !accept(r) {
			t.unreadRune()
			break
		}
		sb.WriteRune(r)
	}
	return &Token{
		Kind: kind,
		Text: sb.String(),
		Pos:  startPos,
	}, nil
}

func (t *Tokenizer) parseString(quote rune, startPos Pos) (*Token, error) {
	var sb strings.Builder
	for {
		r, err := t.readRune()
		if err == io.EOF {
			// unmatched quote
			return &Token{Kind: TokenInvalid, Text: sb.String(), Pos: startPos}, nil
		}
		if err != nil {
			return nil, err
		}
		if r == quote {
			break
		}

		if quote != '`' && r == '\\' {
			next, err := t.readRune()
			if err == io.EOF {
				return &Token{Kind: TokenInvalid, Text: sb.String(), Pos: startPos}, nil
			}
			if err != nil {
				return nil, err
			}
			switch next {
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			case '\\':
				sb.WriteRune('\\')
			case '"':
				sb.WriteRune('"')
			default:
				sb.WriteRune('\\')
				sb.WriteRune(next)
			}
		} else {
			sb.WriteRune(r)
		}
	}
	return &Token{
		Kind: TokenString,
		Text: sb.String(),
		Pos:  startPos,
	}, nil
}
