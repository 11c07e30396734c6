package geom_test

import (
	"fmt"
	"testing"

	"github.com/plus3/topdown/geom"
	"github.com/stretchr/testify/assert"
)

func TestOrigin(t *testing.T) {
	tests := []struct {
		name string
		size geom.Size
		rect geom.Rect
		want geom.Vec3
	}{
		{
			name: "box covering the whole entity",
			size: geom.Size{Width: 100, Height: 50},
			rect: geom.Rect{Size: geom.Size{Width: 100, Height: 50}},
			want: geom.Vec3{X: 0, Y: 0},
		},
		{
			name: "feet box",
			size: geom.Size{Width: 256, Height: 256},
			rect: geom.Rect{
				Position: geom.Position{X: 32, Y: 16},
				Size:     geom.Size{Width: 64, Height: 32},
			},
			want: geom.Vec3{X: -64, Y: 96},
		},
		{
			name: "negative position",
			size: geom.Size{Width: 10, Height: 10},
			rect: geom.Rect{
				Position: geom.Position{X: -4, Y: -2},
				Size:     geom.Size{Width: 2, Height: 2},
			},
			want: geom.Vec3{X: -8, Y: 6},
		},
		{
			name: "odd sizes keep the half pixel",
			size: geom.Size{Width: 3, Height: 3},
			rect: geom.Rect{Size: geom.Size{Width: 1, Height: 1}},
			want: geom.Vec3{X: -1, Y: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := geom.Origin(tt.size, tt.rect)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, geom.Origin(tt.size, tt.rect), "origin must be pure")
		})
	}
}

func TestOffset(t *testing.T) {
	size := geom.Size{Width: 200, Height: 100}
	assert.Equal(t, geom.Vec3{X: -100, Y: 50}, geom.Offset(size, geom.Position{}))
	assert.Equal(t, geom.Vec3{X: 0, Y: 0}, geom.Offset(size, geom.Position{X: 100, Y: 50}))
}

func TestDepthIndexIsStrictlyDecreasing(t *testing.T) {
	prev := geom.DepthIndex(-4096)
	for y := -4095.0; y <= 4096; y++ {
		z := geom.DepthIndex(y)
		assert.Less(t, z, prev, "y=%v", y)
		prev = z
	}
	assert.Equal(t, 1.0, geom.DepthIndex(0))
}

func TestVec3(t *testing.T) {
	a := geom.Vec3{X: 1, Y: 2, Z: 3}
	b := geom.Vec3{X: 4, Y: 6, Z: 100}

	assert.Equal(t, geom.Vec3{X: 5, Y: 8, Z: 103}, a.Add(b))
	assert.Equal(t, geom.Vec3{X: -3, Y: -4, Z: -97}, a.Sub(b))
	assert.Equal(t, geom.Vec3{X: 2, Y: 4, Z: 6}, a.Scale(2))
	assert.Equal(t, 5.0, a.Distance(b), "distance ignores Z")
}

func ExampleOrigin() {
	size := geom.Size{Width: 128, Height: 192}
	feet := geom.Rect{
		Position: geom.Position{X: 32, Y: 0},
		Size:     geom.Size{Width: 64, Height: 32},
	}
	fmt.Println(geom.Origin(size, feet))

	// Output:
	// {0 80 0}
}
