package collision

import "github.com/plus3/topdown/geom"

// Shape is the collision box of one entity. The origin is fixed at
// construction; the center follows the entity through UpdatePosition.
type Shape struct {
	origin geom.Vec3
	center geom.Vec3
	extent geom.Vec3
}

// NewShape builds the shape for an entity of the given size whose collision
// box is rect. The entity starts at the world origin.
func NewShape(size geom.Size, rect geom.Rect) Shape {
	origin := geom.Origin(size, rect)
	return Shape{
		origin: origin,
		center: origin,
		extent: geom.Vec3{X: float64(rect.Width), Y: float64(rect.Height)},
	}
}

func (s *Shape) Origin() geom.Vec3 { return s.origin }
func (s *Shape) Center() geom.Vec3 { return s.center }
func (s *Shape) Extent() geom.Vec3 { return s.extent }

// Box returns the shape's current world box.
func (s *Shape) Box() Box {
	return Box{Center: s.center, Extent: s.extent}
}

// BoxAt returns the box the shape would occupy at translation.
func (s *Shape) BoxAt(translation geom.Vec3) Box {
	return Box{Center: translation.Add(s.origin), Extent: s.extent}
}

// UpdatePosition moves the shape with its entity and returns the depth index
// for the new box center.
func (s *Shape) UpdatePosition(translation geom.Vec3) float64 {
	s.center = translation.Add(s.origin)
	return geom.DepthIndex(s.center.Y)
}

// Collide tests the box at candidate against other's current box. On overlap
// it returns candidate moved along one axis so the box sits flush against
// other; the remaining components are untouched.
func (s *Shape) Collide(candidate geom.Vec3, other *Shape) (geom.Vec3, bool) {
	side := Test(s.BoxAt(candidate), other.Box())
	return s.resolve(candidate, other, side), side != None
}

func (s *Shape) resolve(candidate geom.Vec3, other *Shape, side Side) geom.Vec3 {
	halfX := other.extent.X/2 + s.extent.X/2
	halfY := other.extent.Y/2 + s.extent.Y/2

	switch side {
	case Left:
		candidate.X = other.center.X - halfX - s.origin.X
	case Right:
		candidate.X = other.center.X + halfX - s.origin.X
	case Top:
		candidate.Y = other.center.Y + halfY - s.origin.Y
	case Bottom:
		candidate.Y = other.center.Y - halfY - s.origin.Y
	}
	return candidate
}
