package main

import (
	"image/color"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/plus3/topdown/assets"
	"github.com/sirupsen/logrus"
)

// placeholderSize is the edge of the square drawn for images that fail to load.
const placeholderSize = 32

// Textures holds one GPU image per atlas index of the current catalog.
type Textures struct {
	dir    string
	log    logrus.FieldLogger
	images []*ebiten.Image
}

func NewTextures(dir string, log logrus.FieldLogger) *Textures {
	return &Textures{dir: dir, log: log}
}

// Load replaces the textures with the images of catalog's atlas. Missing
// files are drawn as a placeholder so a half-edited asset directory stays
// playable.
func (t *Textures) Load(catalog *assets.Catalog) {
	keys := catalog.Atlas().Images()
	images := make([]*ebiten.Image, len(keys))

	missing := 0
	for i, key := range keys {
		img, _, err := ebitenutil.NewImageFromFile(filepath.Join(t.dir, filepath.FromSlash(key)))
		if err != nil {
			t.log.WithError(err).WithField("image", key).Warn("image not loaded")
			img = ebiten.NewImage(placeholderSize, placeholderSize)
			img.Fill(color.RGBA{R: 0xff, B: 0xff, A: 0xff})
			missing++
		}
		images[i] = img
	}

	for _, old := range t.images {
		old.Deallocate()
	}
	t.images = images
	t.log.WithFields(logrus.Fields{"images": len(images), "missing": missing}).Info("textures loaded")
}

func (t *Textures) Get(atlas int) (*ebiten.Image, bool) {
	if atlas < 0 || atlas >= len(t.images) {
		return nil, false
	}
	return t.images[atlas], true
}
