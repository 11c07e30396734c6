package ecs

import (
	"reflect"

	"github.com/kamstrup/intmap"
)

// maxComponentTypes is bounded by the width of Signature.
const maxComponentTypes = 64

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage instance has its own ComponentRegistry, allowing multiple
// independent ECS systems to coexist without interference.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentStorage
	ordinals  map[reflect.Type]int
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentStorage),
		ordinals:  make(map[reflect.Type]int),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before it can be used.
// Registering the same type twice is a no-op.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	if _, ok := r.ordinals[t]; ok {
		return
	}
	if len(r.ordinals) == maxComponentTypes {
		panic("too many component types registered")
	}
	r.ordinals[t] = len(r.ordinals)
	r.factories[t] = func() iComponentStorage {
		return &genericComponentStorage[T]{
			slots: intmap.New[uint32, int](64),
		}
	}
}

// getFactory returns the factory function for a given component type.
// Returns nil if the type is not registered.
func (r *ComponentRegistry) getFactory(t reflect.Type) func() iComponentStorage {
	return r.factories[t]
}

// bit returns the signature bit of a registered type.
func (r *ComponentRegistry) bit(t reflect.Type) (Signature, bool) {
	ordinal, ok := r.ordinals[t]
	if !ok {
		return 0, false
	}
	return Signature(1) << ordinal, true
}

const (
	genericBlockSize = 64
)

// genericComponentStorage stores components of type T in fixed-size blocks so
// pointers handed out by Get stay valid while other entities are added.
// slots maps an entity index to its storage position.
type genericComponentStorage[T any] struct {
	blocks    []*[genericBlockSize]T
	freeSlots []int
	nextIndex int
	slots     *intmap.Map[uint32, int]
}

// Set stores item for the entity, overwriting a previous value in place.
func (cs *genericComponentStorage[T]) Set(entity uint32, item any) bool {
	var concreteItem T
	if ptr, ok := item.(*T); ok {
		concreteItem = *ptr
	} else if val, ok := item.(T); ok {
		concreteItem = val
	} else {
		return false
	}

	if pos, ok := cs.slots.Get(entity); ok {
		cs.blocks[pos/genericBlockSize][pos%genericBlockSize] = concreteItem
		return true
	}

	var pos int
	if len(cs.freeSlots) > 0 {
		pos = cs.freeSlots[len(cs.freeSlots)-1]
		cs.freeSlots = cs.freeSlots[:len(cs.freeSlots)-1]
	} else {
		pos = cs.nextIndex
		cs.nextIndex++
		if pos/genericBlockSize >= len(cs.blocks) {
			cs.blocks = append(cs.blocks, new([genericBlockSize]T))
		}
	}

	cs.blocks[pos/genericBlockSize][pos%genericBlockSize] = concreteItem
	cs.slots.Put(entity, pos)
	return true
}

// Get returns a pointer to the entity's component, or nil.
func (cs *genericComponentStorage[T]) Get(entity uint32) any {
	pos, ok := cs.slots.Get(entity)
	if !ok {
		return nil
	}
	return &cs.blocks[pos/genericBlockSize][pos%genericBlockSize]
}

// Delete drops the entity's component and recycles its slot.
func (cs *genericComponentStorage[T]) Delete(entity uint32) {
	pos, ok := cs.slots.Get(entity)
	if !ok {
		return
	}
	var zero T
	cs.blocks[pos/genericBlockSize][pos%genericBlockSize] = zero
	cs.freeSlots = append(cs.freeSlots, pos)
	cs.slots.Del(entity)
}

// Has checks if the entity has a component in this storage.
func (cs *genericComponentStorage[T]) Has(entity uint32) bool {
	return cs.slots.Has(entity)
}

// Len returns the number of stored components.
func (cs *genericComponentStorage[T]) Len() int {
	return cs.slots.Len()
}
