package game

import (
	"time"

	"github.com/plus3/topdown/assets"
	"github.com/plus3/topdown/ecs"
	"github.com/plus3/topdown/mask"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Catalog *assets.Catalog
	// Mask may be nil to play without terrain collision.
	Mask  *mask.Mask
	Speed float64

	// Updates delivers reloaded catalogs. Nil disables reloading.
	Updates  <-chan *assets.Catalog
	OnReload func(*assets.Catalog)

	Log logrus.FieldLogger
}

// World is an entity store with the game systems registered in tick order:
// asset reload, movement, interaction, animation.
type World struct {
	Storage      *ecs.Storage
	Scheduler    *ecs.Scheduler
	Spawner      *Spawner
	Intent       *ecs.Singleton[Intent]
	Interactions *ecs.Singleton[Interactions]
}

func NewWorld(opts Options) *World {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	storage := ecs.NewStorage(NewRegistry())
	w := &World{
		Storage:      storage,
		Scheduler:    ecs.NewScheduler(storage),
		Spawner:      NewSpawner(storage, opts.Catalog, log),
		Intent:       ecs.NewSingleton[Intent](storage),
		Interactions: ecs.NewSingleton[Interactions](storage),
	}
	ecs.NewSingleton(storage, Terrain{Mask: opts.Mask})

	w.Scheduler.Register(&AssetReloadSystem{
		Updates: opts.Updates,
		Spawner: w.Spawner,
		Log:     log,
		OnApply: opts.OnReload,
	})
	w.Scheduler.Register(&MovementSystem{Speed: opts.Speed})
	w.Scheduler.Register(&InteractionSystem{Log: log})
	w.Scheduler.Register(&AnimationSystem{})
	return w
}

// Tick stores intent and runs every system once.
func (w *World) Tick(intent Intent, dt time.Duration) {
	*w.Intent.Get() = intent
	w.Scheduler.Once(dt)
}
