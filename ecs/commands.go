package ecs

import "reflect"

// Commands buffers structural changes requested while systems iterate. The
// scheduler applies them once every system of the tick has run, in the order
// they were queued, so a deferred function sees the effect of everything
// queued before it.
type Commands struct {
	queue []func(*Storage)
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues the creation of an entity.
func (c *Commands) Spawn(components ...any) {
	c.queue = append(c.queue, func(s *Storage) { s.Spawn(components...) })
}

// Delete queues the removal of an entity. Stale ids are ignored.
func (c *Commands) Delete(entity EntityId) {
	c.queue = append(c.queue, func(s *Storage) { s.Delete(entity) })
}

// AddComponent queues attaching or replacing a component.
func (c *Commands) AddComponent(entity EntityId, component any) {
	c.queue = append(c.queue, func(s *Storage) { s.AddComponent(entity, component) })
}

// RemoveComponent queues detaching the component of type compType.
func (c *Commands) RemoveComponent(entity EntityId, compType reflect.Type) {
	c.queue = append(c.queue, func(s *Storage) { s.RemoveComponent(entity, compType) })
}

// Defer queues fn to run at the end of the tick.
func (c *Commands) Defer(fn func()) {
	c.queue = append(c.queue, func(*Storage) { fn() })
}

// Len is the number of queued commands.
func (c *Commands) Len() int {
	return len(c.queue)
}

// Flush applies the queue to storage and empties it. Commands queued by a
// deferred function during the flush run in the same flush.
func (c *Commands) Flush(storage *Storage) {
	for i := 0; i < len(c.queue); i++ {
		c.queue[i](storage)
		c.queue[i] = nil
	}
	c.queue = c.queue[:0]
}
