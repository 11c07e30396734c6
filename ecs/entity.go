package ecs

// EntityId encodes the slot generation (upper 32 bits) and the slot index (lower 32 bits).
// Ids stay valid for the whole life of an entity; adding or removing components never changes them.
type EntityId uint64

// NewEntityId creates an EntityId from a generation and a slot index
func NewEntityId(generation uint32, index uint32) EntityId {
	return EntityId(uint64(generation)<<32 | uint64(index))
}

// Generation extracts the slot generation from the entity ID
func (e EntityId) Generation() uint32 {
	return uint32(e >> 32)
}

// Index extracts the slot index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// entitySlot is the per-index bookkeeping of the entity store.
type entitySlot struct {
	generation uint32
	alive      bool
	signature  Signature
}

// Signature is a bitset of registered component ordinals.
type Signature uint64

func (s Signature) contains(other Signature) bool {
	return s&other == other
}
