package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// Storage is the entity store: a slot table of generational handles plus one
// component storage per registered type.
type Storage struct {
	registry   *ComponentRegistry
	slots      []entitySlot
	free       []uint32
	alive      int
	components map[reflect.Type]iComponentStorage
	singletons map[reflect.Type]*singletonEntry
}

type singletonEntry struct {
	value   reflect.Value
	dataPtr unsafe.Pointer
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		components: make(map[reflect.Type]iComponentStorage),
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// Spawn creates a new entity with the provided components
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	var index uint32
	if n := len(s.free); n > 0 {
		index = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		index = uint32(len(s.slots))
		// generation starts at 1 so the zero EntityId is never alive
		s.slots = append(s.slots, entitySlot{generation: 1})
	}

	slot := &s.slots[index]
	slot.alive = true
	slot.signature = 0
	s.alive++

	for _, comp := range components {
		s.set(index, comp)
	}
	return NewEntityId(slot.generation, index)
}

// IsAlive reports whether the id refers to a live entity of the current generation
func (s *Storage) IsAlive(id EntityId) bool {
	index := id.Index()
	if int(index) >= len(s.slots) {
		return false
	}
	slot := s.slots[index]
	return slot.alive && slot.generation == id.Generation()
}

// Delete removes all data related to the entity ID. Stale ids are ignored.
func (s *Storage) Delete(id EntityId) bool {
	if !s.IsAlive(id) {
		return false
	}
	index := id.Index()
	for _, cs := range s.components {
		cs.Delete(index)
	}
	slot := &s.slots[index]
	slot.alive = false
	slot.signature = 0
	slot.generation++
	s.free = append(s.free, index)
	s.alive--
	return true
}

// AddComponent attaches (or replaces) a component on a live entity.
func (s *Storage) AddComponent(id EntityId, component any) bool {
	if !s.IsAlive(id) {
		return false
	}
	s.set(id.Index(), component)
	return true
}

// RemoveComponent detaches a component from a live entity.
func (s *Storage) RemoveComponent(id EntityId, compType reflect.Type) bool {
	if !s.IsAlive(id) {
		return false
	}
	cs, ok := s.components[compType]
	if !ok || !cs.Has(id.Index()) {
		return false
	}
	cs.Delete(id.Index())
	bit, _ := s.registry.bit(compType)
	s.slots[id.Index()].signature &^= bit
	return true
}

// GetComponent returns the component for the given entity ID and component type
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	if !s.IsAlive(id) {
		return nil
	}
	cs, ok := s.components[compType]
	if !ok {
		return nil
	}
	return cs.Get(id.Index())
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	if !s.IsAlive(id) {
		return false
	}
	bit, ok := s.registry.bit(compType)
	return ok && s.slots[id.Index()].signature.contains(bit)
}

// Len returns the number of live entities.
func (s *Storage) Len() int {
	return s.alive
}

// Entities yields every live entity in ascending slot order.
func (s *Storage) Entities() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for index, slot := range s.slots {
			if !slot.alive {
				continue
			}
			if !yield(NewEntityId(slot.generation, uint32(index))) {
				return
			}
		}
	}
}

// AddSingleton stores value as the singleton of its type, replacing any previous one.
func (s *Storage) AddSingleton(value any) {
	v := reflect.ValueOf(value)
	compType := v.Type()
	if compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
		v = v.Elem()
	}

	if entry, ok := s.singletons[compType]; ok {
		entry.value.Elem().Set(v)
		return
	}

	ptr := reflect.New(compType)
	ptr.Elem().Set(v)
	s.singletons[compType] = &singletonEntry{
		value:   ptr,
		dataPtr: ptr.UnsafePointer(),
	}
}

// ReadSingleton points out (a **T) at the stored singleton of type T.
// Returns false when no such singleton exists.
func (s *Storage) ReadSingleton(out any) bool {
	target := reflect.ValueOf(out)
	if target.Kind() != reflect.Ptr || target.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton expects a pointer to a pointer")
	}
	entry := s.getSingletonEntry(target.Elem().Type().Elem())
	if entry == nil {
		return false
	}
	target.Elem().Set(entry.value)
	return true
}

func (s *Storage) getSingletonEntry(compType reflect.Type) *singletonEntry {
	return s.singletons[compType]
}

func (s *Storage) set(index uint32, component any) {
	compType := reflect.TypeOf(component)
	if compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
	}

	// Components can be structs or primitives (int, string, etc.)
	// But not pointers, maps, channels, or functions (those aren't value types)
	switch compType.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
		panic("components cannot be pointers, maps, channels, or functions")
	}

	bit, ok := s.registry.bit(compType)
	if !ok {
		panic("component type " + compType.String() + " not registered")
	}

	cs := s.storageFor(compType)
	cs.Set(index, component)
	s.slots[index].signature |= bit
}

func (s *Storage) storageFor(compType reflect.Type) iComponentStorage {
	cs, ok := s.components[compType]
	if !ok {
		cs = s.registry.getFactory(compType)()
		s.components[compType] = cs
	}
	return cs
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns a typed pointer to the entity's component, or nil.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}
