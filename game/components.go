// Package game wires the geometry, collision, mask and animation packages
// into ECS components and the per-tick systems of the game.
package game

import (
	"github.com/plus3/topdown/anim"
	"github.com/plus3/topdown/collision"
	"github.com/plus3/topdown/ecs"
	"github.com/plus3/topdown/geom"
	"github.com/plus3/topdown/mask"
)

// PlayerSpeed is how far full intent moves the player per second.
const PlayerSpeed = 600.0

// Transform places an entity in the world. Translation.Z is the depth index.
type Transform struct {
	Translation geom.Vec3
}

// Sprite names what to draw: the entity's type and the atlas image to show.
type Sprite struct {
	Type  string
	Atlas int
}

type Collider struct {
	Shape collision.Shape
}

// Animation pairs the shared clip table of an entity type with the entity's
// own cursor into it.
type Animation struct {
	Table *anim.Table
	State anim.State
}

type Facing uint8

const (
	FacingRight Facing = iota
	FacingLeft
)

// Player marks the entity driven by Intent.
type Player struct {
	Facing Facing
}

// InteractionZone is a point of interest the player can use when close enough.
type InteractionZone struct {
	Name        string
	Offset      geom.Vec3
	MaxDistance float64
}

// Terrain is the singleton holding the map collision mask. A nil mask
// disables terrain collision.
type Terrain struct {
	Mask *mask.Mask
}

// NewRegistry registers every component type used by the game.
func NewRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Sprite](registry)
	ecs.RegisterComponent[Collider](registry)
	ecs.RegisterComponent[Animation](registry)
	ecs.RegisterComponent[Player](registry)
	ecs.RegisterComponent[InteractionZone](registry)
	return registry
}
