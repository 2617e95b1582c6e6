package terms

type SlotState uint8

const (
	Unwritten SlotState = iota
	Written
	Consumed
)

func (s SlotState) String() string {
	switch s {
	case Unwritten:
		return "unwritten"
	case Written:
		return "written"
	case Consumed:
		return "consumed"
	}
	return "invalid"
}

type slot struct {
	state SlotState
	value Term
}

func (s *Store) NewSlot() SlotID {
	id := SlotID(len(s.slots))
	s.slots = append(s.slots, slot{})
	return id
}

func (s *Store) NumSlots() int {
	return len(s.slots)
}

func (s *Store) hasSlot(id SlotID) bool {
	return int(id) < len(s.slots)
}

func (s *Store) Slot(id SlotID) SlotState {
	return s.slots[id].state
}

// SlotValue returns the pending value of a written slot.
func (s *Store) SlotValue(id SlotID) (Term, bool) {
	sl := s.slots[id]
	if sl.state != Written {
		return Term{}, false
	}
	return sl.value, true
}

// WriteSlot binds an argument to a slot. A second write means the owning
// function was applied twice.
func (s *Store) WriteSlot(id SlotID, value Term) error {
	if !s.hasSlot(id) {
		return newError(KindConstruction, NoNode, id, "unknown slot")
	}
	sl := &s.slots[id]
	if sl.state != Unwritten {
		return newError(KindDoubleBeta, NoNode, id, "function applied more than once, slot is "+sl.state.String())
	}
	sl.state = Written
	sl.value = value
	return nil
}

func (s *Store) ConsumeSlot(id SlotID) (Term, error) {
	if !s.hasSlot(id) {
		return Term{}, newError(KindConstruction, NoNode, id, "unknown slot")
	}
	sl := &s.slots[id]
	switch sl.state {
	case Unwritten:
		return Term{}, newError(KindUninitialized, NoNode, id, "slot read before any beta reduction wrote it")
	case Consumed:
		return Term{}, newError(KindUninitialized, NoNode, id, "slot already consumed by another reference")
	}
	value := sl.value
	sl.state = Consumed
	sl.value = Term{}
	return value, nil
}
