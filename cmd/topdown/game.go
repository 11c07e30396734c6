package main

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/plus3/topdown/config"
	"github.com/plus3/topdown/ecs"
	"github.com/plus3/topdown/game"
	"github.com/plus3/topdown/geom"
)

type drawable struct {
	*game.Transform
	*game.Sprite
}

type sprite struct {
	at    geom.Vec3
	atlas int
}

// Game adapts a game.World to ebiten's update and draw loop.
type Game struct {
	cfg      *config.Config
	world    *game.World
	player   ecs.EntityId
	textures *Textures
	sprites  *ecs.View[drawable]

	gamepads []ebiten.GamepadID
	queue    []sprite
}

func NewGame(cfg *config.Config, world *game.World, player ecs.EntityId, textures *Textures) *Game {
	return &Game{
		cfg:      cfg,
		world:    world,
		player:   player,
		textures: textures,
		sprites:  ecs.NewView[drawable](world.Storage),
	}
}

func (g *Game) Update() error {
	g.gamepads = ebiten.AppendGamepadIDs(g.gamepads[:0])
	g.world.Tick(pollIntent(g.gamepads), g.cfg.Tick.Interval())
	return nil
}

func (g *Game) camera() geom.Vec3 {
	if t := g.sprites.Get(g.player); t != nil {
		return t.Translation
	}
	return geom.Vec3{}
}

// Draw paints sprites back to front. A larger depth index is nearer the
// viewer, so the queue is sorted by ascending Z.
func (g *Game) Draw(screen *ebiten.Image) {
	g.queue = g.queue[:0]
	for item := range g.sprites.Values() {
		g.queue = append(g.queue, sprite{at: item.Translation, atlas: item.Atlas})
	}
	slices.SortStableFunc(g.queue, func(a, b sprite) int { return cmp.Compare(a.at.Z, b.at.Z) })

	cam := g.camera()
	w, h := float64(g.cfg.Window.Width), float64(g.cfg.Window.Height)
	for _, s := range g.queue {
		img, ok := g.textures.Get(s.atlas)
		if !ok {
			continue
		}
		size := img.Bounds().Size()

		// world y points up, screen y points down; translation is the sprite center
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(
			s.at.X-cam.X+w/2-float64(size.X)/2,
			cam.Y-s.at.Y+h/2-float64(size.Y)/2,
		)
		screen.DrawImage(img, op)
	}

	if hit, ok := g.world.Interactions.Get().Focused(); ok {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s (%.0f)", hit.Name, hit.Distance))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
