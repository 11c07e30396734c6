package game

import (
	"math"

	"github.com/plus3/topdown/anim"
	"github.com/plus3/topdown/ecs"
	"github.com/plus3/topdown/geom"
)

type moverView struct {
	ecs.EntityId
	*Player
	*Transform
	Collider  *Collider  `ecs:"optional"`
	Animation *Animation `ecs:"optional"`
}

type obstacleView struct {
	ecs.EntityId
	*Collider
}

// MovementSystem moves every player by the tick's intent, pushes it out of
// other colliders, clamps it to walkable terrain and picks its animation.
type MovementSystem struct {
	Players   ecs.Query[moverView]
	Obstacles ecs.Query[obstacleView]
	Intent    ecs.Singleton[Intent]
	Terrain   ecs.Singleton[Terrain]

	// Speed overrides PlayerSpeed when non-zero.
	Speed float64
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	var intent Intent
	if i := s.Intent.Get(); i != nil {
		intent = *i
	}
	speed := s.Speed
	if speed == 0 {
		speed = PlayerSpeed
	}

	for _, player := range s.Players.Iter() {
		name := SelectAnimation(intent, &player.Player.Facing)

		if !intent.Idle() {
			step := geom.Vec3{X: intent.X, Y: intent.Y}.Scale(speed * frame.DeltaTime())
			player.Transform.Translation = s.resolve(player, player.Transform.Translation.Add(step))
		}

		if player.Animation != nil {
			player.Animation.State.Start(name)
		}
	}
}

// resolve runs the collision passes for one player and returns the final
// translation with its depth index.
func (s *MovementSystem) resolve(player moverView, candidate geom.Vec3) geom.Vec3 {
	before := player.Transform.Translation

	if player.Collider != nil {
		for id, obstacle := range s.Obstacles.Iter() {
			if id == player.EntityId {
				continue
			}
			candidate, _ = player.Collider.Shape.Collide(candidate, &obstacle.Collider.Shape)
		}
	}

	if terrain := s.Terrain.Get(); terrain != nil && terrain.Mask != nil {
		candidate, _ = terrain.Mask.Collide(before, candidate)
	}

	if player.Collider != nil {
		candidate.Z = player.Collider.Shape.UpdatePosition(candidate)
	} else {
		candidate.Z = geom.DepthIndex(candidate.Y)
	}
	return candidate
}

// SelectAnimation picks the clip for an intent. The dominant axis decides the
// walk direction and equal magnitudes mean idle. A horizontal walk also turns
// facing, which chooses the side of the interact clip.
func SelectAnimation(intent Intent, facing *Facing) string {
	ax, ay := math.Abs(intent.X), math.Abs(intent.Y)

	name := anim.Idle
	switch {
	case ax > ay && intent.X > 0:
		name = anim.WalkRight
		*facing = FacingRight
	case ax > ay:
		name = anim.WalkLeft
		*facing = FacingLeft
	case ay > ax && intent.Y > 0:
		name = anim.WalkUp
	case ay > ax:
		name = anim.WalkDown
	}

	if intent.Interact {
		if *facing == FacingLeft {
			return anim.InteractLeft
		}
		return anim.InteractRight
	}
	return name
}
