package game

import (
	"cmp"
	"slices"

	"github.com/plus3/topdown/ecs"
	"github.com/plus3/topdown/geom"
	"github.com/sirupsen/logrus"
)

// InteractionHit is one zone within reach of the player.
type InteractionHit struct {
	Entity   ecs.EntityId
	Name     string
	Distance float64
}

// Interactions is the singleton listing the zones in reach, nearest first,
// and the one the player last chose. Focus is zero when nothing is chosen.
type Interactions struct {
	InRange []InteractionHit
	Focus   ecs.EntityId
}

// Focused returns the chosen hit, if it is still in range.
func (i *Interactions) Focused() (InteractionHit, bool) {
	for _, hit := range i.InRange {
		if hit.Entity == i.Focus {
			return hit, true
		}
	}
	return InteractionHit{}, false
}

// InteractionSystem finds the zones within reach of the player and tracks
// which one the player is using.
type InteractionSystem struct {
	Players ecs.Query[struct {
		*Player
		*Transform
		Collider *Collider `ecs:"optional"`
	}]
	Zones ecs.Query[struct {
		ecs.EntityId
		*InteractionZone
		*Transform
	}]
	Intent       ecs.Singleton[Intent]
	Interactions ecs.Singleton[Interactions]

	Log logrus.FieldLogger
}

func (s *InteractionSystem) Execute(frame *ecs.UpdateFrame) {
	state := s.Interactions.Get()
	if state == nil {
		return
	}
	state.InRange = state.InRange[:0]

	for player := range s.Players.Values() {
		center := player.Transform.Translation
		if player.Collider != nil {
			center = player.Collider.Shape.Center()
		}
		state.InRange = s.appendInRange(state.InRange, center)
		// a single controlled entity is supported
		break
	}

	slices.SortFunc(state.InRange, func(a, b InteractionHit) int {
		if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
			return c
		}
		return cmp.Compare(a.Entity, b.Entity)
	})

	var intent Intent
	if i := s.Intent.Get(); i != nil {
		intent = *i
	}

	previous := state.Focus
	if _, ok := state.Focused(); !ok {
		state.Focus = 0
	}
	switch {
	case intent.Cancel:
		state.Focus = 0
	case intent.Interact && len(state.InRange) > 0:
		state.Focus = state.InRange[0].Entity
	}

	if state.Focus != previous && s.Log != nil {
		if hit, ok := state.Focused(); ok {
			s.Log.WithFields(logrus.Fields{
				"interaction": hit.Name,
				"distance":    hit.Distance,
			}).Info("interaction focused")
		} else {
			s.Log.Debug("interaction focus cleared")
		}
	}
}

func (s *InteractionSystem) appendInRange(hits []InteractionHit, center geom.Vec3) []InteractionHit {
	for id, zone := range s.Zones.Iter() {
		distance := center.Distance(zone.Transform.Translation.Add(zone.InteractionZone.Offset))
		if distance <= zone.InteractionZone.MaxDistance {
			hits = append(hits, InteractionHit{
				Entity:   id,
				Name:     zone.InteractionZone.Name,
				Distance: distance,
			})
		}
	}
	return hits
}
