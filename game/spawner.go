package game

import (
	"fmt"

	"github.com/plus3/topdown/anim"
	"github.com/plus3/topdown/assets"
	"github.com/plus3/topdown/collision"
	"github.com/plus3/topdown/ecs"
	"github.com/plus3/topdown/geom"
	"github.com/sirupsen/logrus"
)

// PlayerClips must all be present in the table of a player type.
var PlayerClips = []string{
	anim.Idle,
	anim.WalkRight,
	anim.WalkLeft,
	anim.WalkUp,
	anim.WalkDown,
	anim.InteractLeft,
	anim.InteractRight,
}

// Spawner creates entities from catalog types.
type Spawner struct {
	storage *ecs.Storage
	catalog *assets.Catalog
	log     logrus.FieldLogger
}

func NewSpawner(storage *ecs.Storage, catalog *assets.Catalog, log logrus.FieldLogger) *Spawner {
	return &Spawner{storage: storage, catalog: catalog, log: log}
}

func (s *Spawner) Catalog() *assets.Catalog {
	return s.catalog
}

// SetCatalog makes later spawns use catalog. Existing entities are untouched.
func (s *Spawner) SetCatalog(catalog *assets.Catalog) {
	s.catalog = catalog
}

// Spawn creates an instance of typeName at position. Its depth index is taken
// from the collision box center, or from the sprite's lower edge when the
// type has no collision box.
func (s *Spawner) Spawn(typeName string, position geom.Vec3) (ecs.EntityId, error) {
	et, ok := s.catalog.Type(typeName)
	if !ok {
		return 0, fmt.Errorf("%w: %q", assets.ErrUnknownType, typeName)
	}
	return s.storage.Spawn(s.components(et, position)...), nil
}

// SpawnPlayer spawns typeName as the controlled entity. The type must be
// animated and provide every clip the movement system selects.
func (s *Spawner) SpawnPlayer(typeName string, position geom.Vec3) (ecs.EntityId, error) {
	et, ok := s.catalog.Type(typeName)
	if !ok {
		return 0, fmt.Errorf("%w: %q", assets.ErrUnknownType, typeName)
	}
	if !et.Animated() {
		return 0, fmt.Errorf("game: player type %s is not animated", typeName)
	}
	for _, clip := range PlayerClips {
		if !et.Table.Has(clip) {
			return 0, fmt.Errorf("game: player type %s has no %q clip", typeName, clip)
		}
	}

	components := append(s.components(et, position), Player{Facing: FacingRight})
	id := s.storage.Spawn(components...)
	s.log.WithFields(logrus.Fields{"type": typeName, "entity": id}).Debug("player spawned")
	return id, nil
}

// SpawnMap spawns every placement in order. Placements are checked against
// the catalog first so a bad map spawns nothing.
func (s *Spawner) SpawnMap(placements []assets.Placement) ([]ecs.EntityId, error) {
	if err := s.catalog.Check(placements); err != nil {
		return nil, err
	}

	ids := make([]ecs.EntityId, 0, len(placements))
	for _, p := range placements {
		id, err := s.Spawn(p.Type, geom.Vec3{X: float64(p.X), Y: float64(p.Y)})
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	s.log.WithField("entities", len(ids)).Info("map spawned")
	return ids, nil
}

func (s *Spawner) components(et *assets.EntityType, position geom.Vec3) []any {
	transform := Transform{Translation: position}
	components := []any{
		Sprite{Type: et.Name, Atlas: et.InitialAtlas()},
	}

	if et.Collision != nil {
		shape := collision.NewShape(et.Size, *et.Collision)
		transform.Translation.Z = shape.UpdatePosition(position)
		components = append(components, Collider{Shape: shape})
	} else {
		transform.Translation.Z = geom.DepthIndex(position.Y - float64(et.Height)/2)
	}
	components = append(components, transform)

	if et.Animated() {
		components = append(components, Animation{
			Table: et.Table,
			State: anim.NewState(et.Table, et.Table.Default()),
		})
	}

	if et.Interaction != nil {
		components = append(components, InteractionZone{
			Name:        et.Interaction.Name,
			Offset:      geom.Offset(et.Size, et.Interaction.Position),
			MaxDistance: float64(et.Interaction.MaxDistance),
		})
	}
	return components
}
