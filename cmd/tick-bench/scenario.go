package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/plus3/topdown/assets"
	"github.com/plus3/topdown/game"
	"github.com/plus3/topdown/geom"
	"github.com/plus3/topdown/mask"
	"github.com/sirupsen/logrus"
)

// Scenario describes the generated world a benchmark runs against.
type Scenario struct {
	Seed      uint64
	Players   int
	Obstacles int
	Scenery   int
	MaskSize  int
	// Blocked is the share of mask cells that are not walkable.
	Blocked float64
}

var benchTypes = map[string]string{
	"hero": `
width: 256
height: 256
collision: {x: 32, y: 16, width: 64, height: 32}
animations:
  idle:           [{image: idle.png, duration: 100}]
  walk_right:     [{image: r1.png, duration: 80}, {image: r2.png, duration: 80}]
  walk_left:      [{image: l1.png, duration: 80}, {image: l2.png, duration: 80}]
  walk_up:        [{image: u1.png, duration: 80}, {image: u2.png, duration: 80}]
  walk_down:      [{image: d1.png, duration: 80}, {image: d2.png, duration: 80}]
  interact_left:  [{image: il.png, duration: 120}]
  interact_right: [{image: ir.png, duration: 120}]
`,
	"crate": "width: 64\nheight: 64\ncollision: {x: 0, y: 0, width: 64, height: 32}\nimage: crate.png\n",
	"terminal": `
width: 48
height: 96
collision: {x: 0, y: 0, width: 48, height: 24}
interaction: {name: terminal, position: {x: 24, y: 48}, max_distance: 120}
image: terminal.png
`,
	"fern": "width: 40\nheight: 40\nanimation: [{image: f1.png, duration: 150}, {image: f2.png, duration: 150}]\n",
}

func benchCatalog() (*assets.Catalog, error) {
	var types []*assets.EntityType
	for name, src := range benchTypes {
		et, err := assets.ParseEntityTypeBytes(name, []byte(src))
		if err != nil {
			return nil, err
		}
		types = append(types, et)
	}
	return assets.NewCatalog(types...)
}

func (s Scenario) mask(rng *rand.Rand) (*mask.Mask, error) {
	samples := make([]uint8, s.MaskSize*s.MaskSize)
	for i := range samples {
		if rng.Float64() >= s.Blocked {
			samples[i] = 255
		}
	}
	return mask.New(s.MaskSize, s.MaskSize, samples)
}

func (s Scenario) point(rng *rand.Rand) geom.Vec3 {
	half := float64(s.MaskSize) / 2
	return geom.Vec3{X: (rng.Float64()*2 - 1) * half, Y: (rng.Float64()*2 - 1) * half}
}

// Build generates the world. Obstacles alternate between crates and
// interactive terminals; scenery is animated and has no collider.
func (s Scenario) Build(log logrus.FieldLogger) (*game.World, error) {
	rng := rand.New(rand.NewPCG(s.Seed, s.Seed))

	catalog, err := benchCatalog()
	if err != nil {
		return nil, err
	}
	terrain, err := s.mask(rng)
	if err != nil {
		return nil, err
	}

	world := game.NewWorld(game.Options{Catalog: catalog, Mask: terrain, Log: log})

	placements := make([]assets.Placement, 0, s.Obstacles+s.Scenery)
	for i := range s.Obstacles {
		typ := "crate"
		if i%2 == 1 {
			typ = "terminal"
		}
		p := s.point(rng)
		placements = append(placements, assets.Placement{
			Name:     fmt.Sprintf("obstacle-%06d", i),
			Type:     typ,
			Position: geom.Position{X: int16(p.X), Y: int16(p.Y)},
		})
	}
	for i := range s.Scenery {
		p := s.point(rng)
		placements = append(placements, assets.Placement{
			Name:     fmt.Sprintf("scenery-%06d", i),
			Type:     "fern",
			Position: geom.Position{X: int16(p.X), Y: int16(p.Y)},
		})
	}
	if _, err := world.Spawner.SpawnMap(placements); err != nil {
		return nil, err
	}

	for range s.Players {
		if _, err := world.Spawner.SpawnPlayer("hero", s.point(rng)); err != nil {
			return nil, err
		}
	}
	return world, nil
}

// Wander produces a new random heading every few ticks, with the odd
// interact gesture, so every movement and animation branch is exercised.
type Wander struct {
	rng     *rand.Rand
	current game.Intent
	left    int
}

func NewWander(seed uint64) *Wander {
	return &Wander{rng: rand.New(rand.NewPCG(seed, ^seed))}
}

func (w *Wander) Next() game.Intent {
	if w.left == 0 {
		w.left = 5 + w.rng.IntN(30)
		switch w.rng.IntN(6) {
		case 0:
			w.current = game.Intent{}
		case 1:
			w.current = game.Intent{Interact: true}
		default:
			w.current = game.Intent{X: w.rng.Float64()*2 - 1, Y: w.rng.Float64()*2 - 1}
		}
	}
	w.left--

	intent := w.current
	if w.left > 0 {
		intent.Interact = false
	}
	return intent
}
