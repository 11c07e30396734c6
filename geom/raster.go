package geom

import (
	"image"
	"math"

	"golang.org/x/image/math/f64"
)

// RasterTransform maps world coordinates onto a width×height raster whose
// center is the world origin. The raster's y axis points down.
func RasterTransform(width, height int) f64.Aff3 {
	return f64.Aff3{
		1, 0, float64(width) / 2,
		0, -1, float64(height) / 2,
	}
}

// Apply transforms (x, y) by m.
func Apply(m f64.Aff3, x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

// Invert returns the inverse of m. m must not be singular.
func Invert(m f64.Aff3) f64.Aff3 {
	det := m[0]*m[4] - m[1]*m[3]
	if det == 0 {
		panic("geom: singular affine transform")
	}
	return f64.Aff3{
		m[4] / det, -m[1] / det, (m[1]*m[5] - m[4]*m[2]) / det,
		-m[3] / det, m[0] / det, (m[3]*m[2] - m[0]*m[5]) / det,
	}
}

// Cell transforms a world point by m and floors it to a grid cell.
func Cell(m f64.Aff3, v Vec3) image.Point {
	x, y := Apply(m, v.X, v.Y)
	return image.Pt(int(math.Floor(x)), int(math.Floor(y)))
}
