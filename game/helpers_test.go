package game_test

import (
	"testing"

	"github.com/plus3/topdown/assets"
	"github.com/plus3/topdown/game"
	"github.com/plus3/topdown/mask"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

const playerType = `
width: 256
height: 256
collision: {x: 32, y: 16, width: 64, height: 32}
animations:
  idle:           [{image: idle.png, duration: 100}]
  walk_right:     [{image: wr1.png, duration: 80}, {image: wr2.png, duration: 80}]
  walk_left:      [{image: wl1.png, duration: 80}, {image: wl2.png, duration: 80}]
  walk_up:        [{image: wu1.png, duration: 80}]
  walk_down:      [{image: wd1.png, duration: 80}]
  interact_left:  [{image: il1.png, duration: 120}]
  interact_right: [{image: ir1.png, duration: 120}]
`

var testTypes = map[string]string{
	"player": playerType,
	"pillar": "width: 40\nheight: 100\ncollision: {x: 0, y: 0, width: 40, height: 100}\nimage: pillar.png\n",
	"plant":  "width: 50\nheight: 80\nimage: plant.png\n",
	"engine": `
width: 300
height: 396
collision: {x: 0, y: 0, width: 300, height: 120}
interaction: {name: engine, position: {x: 150, y: 60}, max_distance: 200}
image: motor.png
`,
	"lever": `
width: 20
height: 20
interaction: {name: lever, position: {x: 10, y: 10}, max_distance: 50}
image: lever.png
`,
	"torch": "width: 32\nheight: 64\nanimation: [{image: t1.png, duration: 50}, {image: t2.png, duration: 50}]\n",
	"wisp":  "width: 16\nheight: 16\nanimations: {float: [{image: w1.png, duration: 40}], glow: [{image: w2.png, duration: 40}]}\n",
}

func newCatalog(t *testing.T, overrides map[string]string) *assets.Catalog {
	t.Helper()
	var types []*assets.EntityType
	for name, src := range testTypes {
		if o, ok := overrides[name]; ok {
			src = o
		}
		et, err := assets.ParseEntityTypeBytes(name, []byte(src))
		require.NoError(t, err)
		types = append(types, et)
	}
	catalog, err := assets.NewCatalog(types...)
	require.NoError(t, err)
	return catalog
}

func newWorld(t *testing.T, m *mask.Mask) *game.World {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	return game.NewWorld(game.Options{
		Catalog: newCatalog(t, nil),
		Mask:    m,
		Log:     logger,
	})
}
