package terms

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Format renders the term at id in the textual notation. References to written
// slots render as the written value. Undefined positions render as
// <undefined@N> and cannot be parsed back.
func (s *Store) Format(id NodeID) string {
	var sb strings.Builder
	s.format(&sb, id, false, false)
	return sb.String()
}

func (s *Store) format(sb *strings.Builder, id NodeID, fnPos bool, argPos bool) {
	if !s.Has(id) {
		fmt.Fprintf(sb, "<unknown%v>", id)
		return
	}
	s.formatTerm(sb, id, s.nodes[id].term, fnPos, argPos)
}

func (s *Store) formatTerm(sb *strings.Builder, id NodeID, term Term, fnPos bool, argPos bool) {
	switch term.Kind {

	case Constant:
		sb.WriteString(FormatName(term.Name))

	case Reference:
		// a written slot renders as the argument it will be replaced by
		if value, ok := s.SlotValue(term.Slot); ok {
			s.formatTerm(sb, id, value, fnPos, argPos)
			return
		}
		sb.WriteString(term.Slot.String())

	case Abstraction:
		if fnPos || argPos {
			sb.WriteString("(")
		}
		sb.WriteString(`\`)
		sb.WriteString(term.Slot.String())
		sb.WriteString(". ")
		s.format(sb, term.Body, false, false)
		if fnPos || argPos {
			sb.WriteString(")")
		}

	case Application:
		if argPos {
			sb.WriteString("(")
		}
		s.format(sb, term.Fn, true, false)
		sb.WriteString(" ")
		s.format(sb, term.Arg, false, true)
		if argPos {
			sb.WriteString(")")
		}

	default:
		fmt.Fprintf(sb, "<undefined%v>", id)
	}
}

// FormatName renders a constant name, quoting it unless it is a number or the
// unit constant.
func FormatName(name string) string {
	if name == "()" {
		return name
	}
	if name != "" && strings.IndexFunc(name, func(r rune) bool {
		return !unicode.IsDigit(r)
	}) < 0 {
		return name
	}
	return strconv.Quote(name)
}

// Dump writes one line per position and per slot.
func (s *Store) Dump() string {
	var sb strings.Builder
	for i, n := range s.nodes {
		id := NodeID(i)
		mark := ""
		if !n.defined {
			mark = " (reserved)"
		}
		fmt.Fprintf(&sb, "%v %v%s\n", id, n.term, mark)
	}
	for i, sl := range s.slots {
		id := SlotID(i)
		if sl.state == Written {
			fmt.Fprintf(&sb, "%v %v %v\n", id, sl.state, sl.value)
		} else {
			fmt.Fprintf(&sb, "%v %v\n", id, sl.state)
		}
	}
	return sb.String()
}
