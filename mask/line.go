package mask

import (
	"image"
	"iter"
)

// Line yields the cells of the Bresenham line from (x0, y0) to (x1, y1),
// both ends included, starting at (x0, y0).
func Line(x0, y0, x1, y1 int) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		dx, sx := abs(x1-x0), sign(x1-x0)
		dy, sy := -abs(y1-y0), sign(y1-y0)
		err := dx + dy

		for {
			if !yield(image.Pt(x0, y0)) {
				return
			}
			if x0 == x1 && y0 == y1 {
				return
			}
			e2 := 2 * err
			if e2 >= dy {
				err += dy
				x0 += sx
			}
			if e2 <= dx {
				err += dx
				y0 += sy
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
