// Package geom holds the coordinate types shared by the collision, mask and
// game packages, and the transform from asset space into render space.
//
// Asset space is what authored data uses: y grows upward and a box is
// anchored at its lower-left corner. Render space puts the origin at the
// entity center, also with y growing upward.
package geom

import "math"

// Vec3 is a render-space point. Z carries the depth index, not a physical coordinate.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

// Distance returns the distance between v and o in the XY plane.
func (v Vec3) Distance(o Vec3) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Size is an entity footprint in asset-space pixels.
type Size struct {
	Width  uint16 `yaml:"width"`
	Height uint16 `yaml:"height"`
}

// Position is an asset-space offset from the lower-left corner of an entity.
type Position struct {
	X int16 `yaml:"x"`
	Y int16 `yaml:"y"`
}

// Rect is an axis-aligned asset-space box. Both halves are inlined when
// decoding, so YAML reads `{x, y, width, height}`.
type Rect struct {
	Position `yaml:",inline"`
	Size     `yaml:",inline"`
}

// Origin converts a collision box into the render-space offset of its center
// relative to the entity center. It is computed once per entity at spawn.
func Origin(size Size, rect Rect) Vec3 {
	return Vec3{
		X: -float64(size.Width)/2 + float64(rect.Width)/2 + float64(rect.X),
		Y: float64(size.Height)/2 - float64(rect.Height)/2 - float64(rect.Y),
	}
}

// Offset converts a single asset-space point into a render-space offset from
// the entity center.
func Offset(size Size, p Position) Vec3 {
	return Vec3{
		X: -float64(size.Width)/2 + float64(p.X),
		Y: float64(size.Height)/2 - float64(p.Y),
	}
}

// depthScale spreads the playfield's y range below one unit of Z.
const depthScale = 65536

// DepthIndex maps a world y to a draw-order key: larger y draws further back.
func DepthIndex(y float64) float64 {
	return 1 - y/depthScale
}
