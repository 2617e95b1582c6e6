package syntaxes

import (
	"fmt"
	"strings"
)

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

type Pos struct {
	Source *Source
	Line   int
	Column int
}

func (p Pos) String() string {
	name := "-"
	if p.Source != nil {
		name = p.Source.Name
	}
	return fmt.Sprintf("%s:%d:%d", name, p.Line, p.Column)
}
