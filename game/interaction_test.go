package game_test

import (
	"testing"
	"time"

	"github.com/plus3/topdown/game"
	"github.com/plus3/topdown/geom"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractionsInRange(t *testing.T) {
	w := newWorld(t, nil)

	// engine zone sits at (500, 338); the player's feet center is translation + (-64, 96)
	engine, err := w.Spawner.Spawn("engine", geom.Vec3{X: 500, Y: 200})
	require.NoError(t, err)
	// lever zone sits at translation + (0, 0)
	lever, err := w.Spawner.Spawn("lever", geom.Vec3{X: 530, Y: 338})
	require.NoError(t, err)
	_, err = w.Spawner.Spawn("lever", geom.Vec3{X: -2000, Y: 0})
	require.NoError(t, err)

	spawnPlayer(t, w, geom.Vec3{X: 584, Y: 242})
	w.Tick(game.Intent{}, time.Millisecond)

	state := w.Interactions.Get()
	require.Len(t, state.InRange, 2)
	assert.Equal(t, game.InteractionHit{Entity: lever, Name: "lever", Distance: 10}, state.InRange[0])
	assert.Equal(t, game.InteractionHit{Entity: engine, Name: "engine", Distance: 20}, state.InRange[1])
	assert.Zero(t, state.Focus)
}

func TestInteractionsEmpty(t *testing.T) {
	w := newWorld(t, nil)
	spawnPlayer(t, w, geom.Vec3{})
	_, err := w.Spawner.Spawn("engine", geom.Vec3{X: 5000})
	require.NoError(t, err)

	w.Tick(game.Intent{}, time.Millisecond)
	assert.Empty(t, w.Interactions.Get().InRange)

	w.Tick(game.Intent{Interact: true}, time.Millisecond)
	_, focused := w.Interactions.Get().Focused()
	assert.False(t, focused)
}

func TestInteractionsMaxDistanceIsInclusive(t *testing.T) {
	w := newWorld(t, nil)
	_, err := w.Spawner.Spawn("lever", geom.Vec3{X: 0, Y: 0})
	require.NoError(t, err)
	// feet center lands exactly 50 units right of the lever zone
	spawnPlayer(t, w, geom.Vec3{X: 114, Y: -96})

	w.Tick(game.Intent{}, time.Millisecond)
	require.Len(t, w.Interactions.Get().InRange, 1)
	assert.Equal(t, 50.0, w.Interactions.Get().InRange[0].Distance)
}

func TestInteractionFocus(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	w := game.NewWorld(game.Options{Catalog: newCatalog(t, nil), Log: logger})

	lever, err := w.Spawner.Spawn("lever", geom.Vec3{X: 0, Y: 0})
	require.NoError(t, err)
	spawnPlayer(t, w, geom.Vec3{X: 84, Y: -96})

	w.Tick(game.Intent{Interact: true}, time.Millisecond)
	hit, ok := w.Interactions.Get().Focused()
	require.True(t, ok)
	assert.Equal(t, lever, hit.Entity)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "lever", entry.Data["interaction"])

	w.Tick(game.Intent{}, time.Millisecond)
	_, ok = w.Interactions.Get().Focused()
	assert.True(t, ok, "focus persists while in range")

	w.Tick(game.Intent{Cancel: true}, time.Millisecond)
	_, ok = w.Interactions.Get().Focused()
	assert.False(t, ok)
	assert.Zero(t, w.Interactions.Get().Focus)
}

func TestInteractionFocusDropsOutOfRange(t *testing.T) {
	w := newWorld(t, nil)
	_, err := w.Spawner.Spawn("lever", geom.Vec3{X: 0, Y: 0})
	require.NoError(t, err)
	spawnPlayer(t, w, geom.Vec3{X: 84, Y: -96})

	w.Tick(game.Intent{Interact: true}, time.Millisecond)
	require.NotZero(t, w.Interactions.Get().Focus)

	w.Tick(game.Intent{X: 1}, time.Second)
	assert.Empty(t, w.Interactions.Get().InRange)
	assert.Zero(t, w.Interactions.Get().Focus)
}
