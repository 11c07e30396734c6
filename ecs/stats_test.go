package ecs_test

import (
	"testing"

	"github.com/plus3/topdown/ecs"
	"github.com/stretchr/testify/assert"
)

func TestStorageStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	stats := storage.CollectStats()
	assert.Zero(t, stats.TotalEntityCount)
	assert.Zero(t, stats.SingletonCount)
	assert.Empty(t, stats.Components)

	storage.Spawn(Position{}, Score(1))
	storage.Spawn(Position{})
	gone := storage.Spawn(Velocity{})
	storage.Delete(gone)
	ecs.NewSingleton[Temperature](storage, 3.5)

	stats = storage.CollectStats()
	assert.Equal(t, 2, stats.TotalEntityCount)
	assert.Equal(t, 1, stats.SingletonCount)
	assert.Equal(t, []ecs.ComponentStats{
		{Name: "ecs_test.Position", Count: 2},
		{Name: "ecs_test.Score", Count: 1},
		{Name: "ecs_test.Velocity", Count: 0},
	}, stats.Components)
}
