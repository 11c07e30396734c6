// Package collision resolves axis-aligned boxes against each other.
package collision

import (
	"math"

	"github.com/plus3/topdown/geom"
)

// Box is an axis-aligned rectangle given by its center and full extent.
type Box struct {
	Center geom.Vec3
	Extent geom.Vec3
}

func (b Box) min() (float64, float64) {
	return b.Center.X - b.Extent.X/2, b.Center.Y - b.Extent.Y/2
}

func (b Box) max() (float64, float64) {
	return b.Center.X + b.Extent.X/2, b.Center.Y + b.Extent.Y/2
}

// Side names the face of b that a hit when the boxes overlap.
type Side int

const (
	None Side = iota
	Left
	Right
	Top
	Bottom
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "none"
	}
}

// Test classifies the overlap of a against b by minimum penetration.
//
// Boxes that only touch do not overlap. An axis classifies only when exactly
// one of a's edges lies inside b on that axis. When both axes classify, the
// one with the smaller penetration wins and ties go to x. When a is contained
// in b, or straddles it, on both axes the result is None.
func Test(a, b Box) Side {
	aMinX, aMinY := a.min()
	aMaxX, aMaxY := a.max()
	bMinX, bMinY := b.min()
	bMaxX, bMaxY := b.max()

	if !(aMinX < bMaxX && aMaxX > bMinX && aMinY < bMaxY && aMaxY > bMinY) {
		return None
	}

	xSide, xDepth := classify(aMinX, aMaxX, bMinX, bMaxX, Left, Right)
	ySide, yDepth := classify(aMinY, aMaxY, bMinY, bMaxY, Bottom, Top)

	switch {
	case xSide != None && ySide != None:
		if math.Abs(yDepth) < math.Abs(xDepth) {
			return ySide
		}
		return xSide
	case xSide != None:
		return xSide
	default:
		return ySide
	}
}

func classify(aMin, aMax, bMin, bMax float64, low, high Side) (Side, float64) {
	switch {
	case aMin < bMin && aMax > bMin && aMax < bMax:
		return low, bMin - aMax
	case aMin > bMin && aMin < bMax && aMax > bMax:
		return high, aMin - bMax
	default:
		return None, 0
	}
}
