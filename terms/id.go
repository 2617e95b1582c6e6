package terms

import (
	"math"
	"strconv"
)

type NodeID uint32

type SlotID uint32

const (
	NoNode NodeID = math.MaxUint32
	NoSlot SlotID = math.MaxUint32
)

func (id NodeID) IsValid() bool { return id != NoNode }
func (id SlotID) IsValid() bool { return id != NoSlot }

func (id NodeID) String() string {
	if !id.IsValid() {
		return "@-"
	}
	return "@" + strconv.FormatUint(uint64(id), 10)
}

func (id SlotID) String() string {
	if !id.IsValid() {
		return "s-"
	}
	return "s" + strconv.FormatUint(uint64(id), 10)
}
