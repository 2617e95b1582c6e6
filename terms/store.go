package terms

import "fmt"

type node struct {
	term    Term
	defined bool
}

type Store struct {
	nodes []node
	slots []slot
}

// Dest is a reserved position waiting for its one definition.
type Dest struct {
	id NodeID
}

func (d Dest) ID() NodeID {
	return d.id
}

func NewStore() *Store {
	return &Store{
		nodes: make([]node, 0, 128),
		slots: make([]slot, 0, 32),
	}
}

func (s *Store) Allocate() Dest {
	id := NodeID(len(s.nodes))
	s.nodes = append(s.nodes, node{
		term: Term{
			Kind: Undefined,
			Slot: NoSlot,
			Body: NoNode,
			Fn:   NoNode,
			Arg:  NoNode,
		},
	})
	return Dest{
		id: id,
	}
}

func (s *Store) Len() int {
	return len(s.nodes)
}

func (s *Store) Has(id NodeID) bool {
	return int(id) < len(s.nodes)
}

func (s *Store) Defined(id NodeID) bool {
	return s.Has(id) && s.nodes[id].defined
}

func (s *Store) Define(dest Dest, term Term) error {
	id := dest.id
	if !s.Has(id) {
		return newError(KindConstruction, id, NoSlot, "destination was not allocated by this store")
	}
	if s.nodes[id].defined {
		return newError(KindConstruction, id, NoSlot, fmt.Sprintf("already defined as %v", s.nodes[id].term))
	}
	if err := s.validate(term); err != nil {
		return err.At(id)
	}
	s.nodes[id] = node{
		term:    term,
		defined: true,
	}
	return nil
}

func (s *Store) validate(term Term) *Error {
	switch term.Kind {
	case Undefined:
		return newError(KindConstruction, NoNode, NoSlot, "cannot define a position as undefined")
	case Abstraction, Reference:
		if !s.hasSlot(term.Slot) {
			return newError(KindConstruction, NoNode, term.Slot, "unknown slot")
		}
	}
	for _, child := range term.children() {
		if !s.Has(child) {
			return newError(KindConstruction, NoNode, NoSlot, fmt.Sprintf("unknown child position %v", child))
		}
	}
	return nil
}

func (s *Store) Read(id NodeID) Term {
	return s.nodes[id].term
}

// Take moves the content out of id, leaving the position empty.
func (s *Store) Take(id NodeID) Term {
	term := s.nodes[id].term
	s.nodes[id].term = Term{
		Kind: Undefined,
		Slot: NoSlot,
		Body: NoNode,
		Fn:   NoNode,
		Arg:  NoNode,
	}
	return term
}

func (s *Store) Replace(id NodeID, term Term) {
	s.nodes[id].term = term
}

// Reset drops every position and slot but keeps the backing arrays.
func (s *Store) Reset() {
	clear(s.nodes)
	s.nodes = s.nodes[:0]
	clear(s.slots)
	s.slots = s.slots[:0]
}

// Check reports the first reserved position that was never defined.
func (s *Store) Check() error {
	for i, n := range s.nodes {
		if !n.defined {
			return newError(KindUninitialized, NodeID(i), NoSlot, "reserved position never defined")
		}
	}
	return nil
}

// Verify walks the graph reachable from root and fails if a slot is targeted
// by more than one reference. Abstraction bodies are walked but references to
// unwritten slots are fine.
func (s *Store) Verify(root NodeID) error {
	if !s.Has(root) {
		return newError(KindConstruction, root, NoSlot, "unknown root")
	}
	seen := make(map[NodeID]bool)
	refs := make(map[SlotID]NodeID)
	stack := []NodeID{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			continue
		}
		seen[id] = true
		term := s.nodes[id].term
		if term.Kind == Reference {
			if prev, ok := refs[term.Slot]; ok {
				return newError(KindConstruction, id, term.Slot, fmt.Sprintf("slot also referenced at %v", prev))
			}
			refs[term.Slot] = id
		}
		stack = append(stack, term.children()...)
	}
	return nil
}

type Node struct {
	ID      NodeID
	Term    Term
	Defined bool
}

func (s *Store) Snapshot() []Node {
	ret := make([]Node, 0, len(s.nodes))
	for i, n := range s.nodes {
		ret = append(ret, Node{
			ID:      NodeID(i),
			Term:    n.term,
			Defined: n.defined,
		})
	}
	return ret
}
