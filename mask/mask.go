// Package mask implements the world collision raster: a grid of walkability
// samples centered on the world origin, probed along straight lines.
package mask

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/plus3/topdown/geom"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/math/f64"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var ErrEmpty = errors.New("mask: empty image")

// Mask is an immutable walkability grid. A sample of 0 is blocked, anything
// else is walkable. World y grows upward, raster rows grow downward.
type Mask struct {
	width, height int
	samples       []uint8
	toRaster      f64.Aff3
	toWorld       f64.Aff3
}

// New wraps row-major samples in a Mask. The slice is not copied.
func New(width, height int, samples []uint8) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmpty
	}
	if len(samples) != width*height {
		return nil, fmt.Errorf("mask: %d samples for a %dx%d grid", len(samples), width, height)
	}
	toRaster := geom.RasterTransform(width, height)
	return &Mask{
		width:    width,
		height:   height,
		samples:  samples,
		toRaster: toRaster,
		toWorld:  geom.Invert(toRaster),
	}, nil
}

// FromImage converts img to luma and uses it as the sample grid.
func FromImage(img image.Image) (*Mask, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, ErrEmpty
	}

	samples := make([]uint8, 0, width*height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			samples = append(samples, color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y)
		}
	}
	return New(width, height, samples)
}

// Load decodes the image at path. PNG, GIF, JPEG, BMP, TIFF and WebP are supported.
func Load(path string) (*Mask, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mask: load %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("mask: decode %s: %w", path, err)
	}

	m, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("mask: load %s: %w", path, err)
	}
	return m, nil
}

func (m *Mask) Width() int  { return m.width }
func (m *Mask) Height() int { return m.height }

// Walkable reports whether the raster cell p can be entered. Cells outside
// the grid are blocked.
func (m *Mask) Walkable(p image.Point) bool {
	if p.X < 0 || p.Y < 0 || p.X >= m.width || p.Y >= m.height {
		return false
	}
	return m.samples[p.Y*m.width+p.X] > 0
}

// Cell returns the raster cell containing the world point v.
func (m *Mask) Cell(v geom.Vec3) image.Point {
	return geom.Cell(m.toRaster, v)
}

// World returns the world position of raster cell p.
func (m *Mask) World(p image.Point) geom.Vec3 {
	x, y := geom.Apply(m.toWorld, float64(p.X), float64(p.Y))
	return geom.Vec3{X: x, Y: y}
}

// Collide probes the move from source to target.
//
// A walkable target cell is accepted without looking at the cells in between,
// so a fast enough move can cross a thin wall. Otherwise the line from source
// to target is walked and the last cell of its walkable prefix is returned in
// world coordinates with target's Z. If the source cell itself is blocked
// the source cell is returned.
func (m *Mask) Collide(source, target geom.Vec3) (geom.Vec3, bool) {
	to := m.Cell(target)
	if m.Walkable(to) {
		return target, false
	}

	from := m.Cell(source)
	last := from
	for p := range Line(from.X, from.Y, to.X, to.Y) {
		if !m.Walkable(p) {
			break
		}
		last = p
	}

	corrected := m.World(last)
	corrected.Z = target.Z
	return corrected, true
}
