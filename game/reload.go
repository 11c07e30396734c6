package game

import (
	"fmt"

	"github.com/plus3/topdown/assets"
	"github.com/plus3/topdown/ecs"
	"github.com/sirupsen/logrus"
)

// AssetReloadSystem applies catalogs delivered by the asset watcher to the
// running world. Atlas indices are only meaningful within one catalog, so a
// catalog is adopted whole or not at all: every live entity's type must still
// exist with the same kind of image, and every clip being played must survive.
// The swap itself is queued on the tick's commands and happens after the
// last system has run.
type AssetReloadSystem struct {
	Entities ecs.Query[struct {
		*Sprite
		Animation *Animation `ecs:"optional"`
	}]

	Updates <-chan *assets.Catalog
	Spawner *Spawner
	Log     logrus.FieldLogger

	// OnApply runs after a catalog was adopted, for the host to rebuild textures.
	OnApply func(*assets.Catalog)
}

func (s *AssetReloadSystem) Execute(frame *ecs.UpdateFrame) {
	select {
	case catalog, ok := <-s.Updates:
		if !ok || catalog == nil {
			return
		}
		// the swap waits for the end of the tick so every system of this tick
		// sees one catalog
		frame.Commands.Defer(func() { s.swap(catalog) })
	default:
	}
}

func (s *AssetReloadSystem) swap(catalog *assets.Catalog) {
	s.Entities.Execute()
	if err := s.check(catalog); err != nil {
		s.Log.WithError(err).Warn("reloaded catalog rejected, keeping the current one")
		return
	}
	s.apply(catalog)
}

func (s *AssetReloadSystem) check(catalog *assets.Catalog) error {
	for item := range s.Entities.Values() {
		et, ok := catalog.Type(item.Sprite.Type)
		if !ok {
			return fmt.Errorf("%w: %q is still in use", assets.ErrUnknownType, item.Sprite.Type)
		}
		if item.Animation == nil {
			if et.Animated() {
				return fmt.Errorf("type %s became animated", et.Name)
			}
			continue
		}
		if !et.Animated() {
			return fmt.Errorf("type %s is no longer animated", et.Name)
		}
		if clip := item.Animation.State.Name(); !et.Table.Has(clip) {
			return fmt.Errorf("type %s dropped clip %q", et.Name, clip)
		}
	}
	return nil
}

func (s *AssetReloadSystem) apply(catalog *assets.Catalog) {
	for item := range s.Entities.Values() {
		et, _ := catalog.Type(item.Sprite.Type)
		if item.Animation == nil {
			item.Sprite.Atlas = et.StaticAtlas
			continue
		}

		item.Animation.Table = et.Table
		item.Sprite.Atlas = item.Animation.State.Rebind(et.Table)
	}

	if s.Spawner != nil {
		s.Spawner.SetCatalog(catalog)
	}
	if s.OnApply != nil {
		s.OnApply(catalog)
	}
	s.Log.WithField("types", len(catalog.Names())).Info("asset catalog applied")
}
