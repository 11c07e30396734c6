package ecs_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/plus3/topdown/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityIdEncoding(t *testing.T) {
	tests := []struct {
		generation uint32
		index      uint32
	}{
		{0, 0},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{1, 0},
		{0, 1},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("generation=%d,index=%d", tt.generation, tt.index), func(t *testing.T) {
			id := ecs.NewEntityId(tt.generation, tt.index)
			assert.Equal(t, tt.generation, id.Generation())
			assert.Equal(t, tt.index, id.Index())
		})
	}
}

func TestSpawnEntity(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(&Position{X: 1, Y: 2}, &Velocity{DX: 0.5, DY: 0.5}, Score(32))
	assert.NotEqual(t, ecs.EntityId(0), id)
	assert.True(t, storage.IsAlive(id))
	assert.Equal(t, 1, storage.Len())

	pos := ecs.ReadComponent[Position](storage, id)
	require.NotNil(t, pos)
	assert.Equal(t, float32(1), pos.X)
	assert.Equal(t, Score(32), *ecs.ReadComponent[Score](storage, id))
}

func TestSpawnPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { storage.Spawn() })
	assert.PanicsWithValue(t, "component type string not registered", func() { storage.Spawn("nope") })
	assert.Panics(t, func() { storage.Spawn(map[string]int{}) })
}

func TestGetComponentMissing(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 3, Y: 4})

	assert.Nil(t, storage.GetComponent(id, reflect.TypeFor[Velocity]()))
	assert.Nil(t, ecs.ReadComponent[Velocity](storage, id))
	assert.False(t, storage.HasComponent(id, reflect.TypeFor[Velocity]()))
	assert.True(t, storage.HasComponent(id, reflect.TypeFor[Position]()))
}

func TestDeleteInvalidatesHandle(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	first := storage.Spawn(Position{X: 1})

	require.True(t, storage.Delete(first))
	assert.False(t, storage.IsAlive(first))
	assert.False(t, storage.Delete(first), "deleting twice is a no-op")
	assert.Nil(t, ecs.ReadComponent[Position](storage, first))

	// The slot is reused with a new generation; the old handle stays dead.
	second := storage.Spawn(Position{X: 2})
	assert.Equal(t, first.Index(), second.Index())
	assert.NotEqual(t, first, second)
	assert.False(t, storage.IsAlive(first))
	assert.Equal(t, float32(2), ecs.ReadComponent[Position](storage, second).X)
	assert.False(t, storage.AddComponent(first, Velocity{}))
}

func TestAddRemoveComponentKeepsHandle(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1, Y: 1})

	require.True(t, storage.AddComponent(id, Velocity{DX: 3}))
	assert.True(t, storage.HasComponent(id, reflect.TypeFor[Velocity]()))
	assert.Equal(t, float32(3), ecs.ReadComponent[Velocity](storage, id).DX)

	// Adding again replaces in place.
	require.True(t, storage.AddComponent(id, &Velocity{DX: 4}))
	assert.Equal(t, float32(4), ecs.ReadComponent[Velocity](storage, id).DX)

	require.True(t, storage.RemoveComponent(id, reflect.TypeFor[Velocity]()))
	assert.False(t, storage.RemoveComponent(id, reflect.TypeFor[Velocity]()))
	assert.Nil(t, ecs.ReadComponent[Velocity](storage, id))
	assert.Equal(t, float32(1), ecs.ReadComponent[Position](storage, id).X)
}

func TestComponentPointersStableAcrossGrowth(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 7})
	pos := ecs.ReadComponent[Position](storage, id)

	for i := 0; i < 500; i++ {
		storage.Spawn(Position{X: float32(i)})
	}

	pos.X = 42
	assert.Equal(t, float32(42), ecs.ReadComponent[Position](storage, id).X)
}

func TestEntitiesAscending(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	a := storage.Spawn(Score(1))
	b := storage.Spawn(Score(2))
	c := storage.Spawn(Score(3))
	storage.Delete(b)

	var got []ecs.EntityId
	for id := range storage.Entities() {
		got = append(got, id)
	}
	assert.Equal(t, []ecs.EntityId{a, c}, got)
}

func TestSingletons(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var missing *Health
	assert.False(t, storage.ReadSingleton(&missing))

	storage.AddSingleton(Health{Current: 5, Max: 10})

	var health *Health
	require.True(t, storage.ReadSingleton(&health))
	assert.Equal(t, 5, health.Current)

	health.Current = 9
	single := ecs.NewSingleton[Health](storage)
	assert.Equal(t, 9, single.Get().Current)

	storage.AddSingleton(&Health{Current: 1, Max: 1})
	assert.Equal(t, 1, single.Get().Current, "replacing keeps the same backing value")
	assert.Panics(t, func() { storage.ReadSingleton(health) })
}
