package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAxisString(t *testing.T) {
	assert.Equal(t, "vertical", Vertical.String())
	assert.Equal(t, "horizontal", Horizontal.String())
}

func TestSizeExtent(t *testing.T) {
	s := Size{Width: 80, Height: 24}

	assert.Equal(t, 24.0, s.Extent(Vertical))
	assert.Equal(t, 80.0, s.Extent(Horizontal))

	assert.Equal(t, Size{Width: 80, Height: 100}, s.WithExtent(Vertical, 100))
	assert.Equal(t, Size{Width: 100, Height: 24}, s.WithExtent(Horizontal, 100))
	// WithExtent does not mutate the receiver.
	assert.Equal(t, Size{Width: 80, Height: 24}, s)
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	assert.Equal(t, 20.0, r.Min(Vertical))
	assert.Equal(t, 60.0, r.Max(Vertical))
	assert.Equal(t, 40.0, r.Extent(Vertical))

	assert.Equal(t, 10.0, r.Min(Horizontal))
	assert.Equal(t, 40.0, r.Max(Horizontal))
	assert.Equal(t, 30.0, r.Extent(Horizontal))

	assert.Equal(t, Size{Width: 30, Height: 40}, r.Size())
}

func TestRectWithMinAndTranslate(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	moved := r.WithMin(Vertical, 0)
	assert.Equal(t, 0.0, moved.Min(Vertical))
	assert.Equal(t, 40.0, moved.Extent(Vertical), "extent preserved")
	assert.Equal(t, 10.0, moved.X, "other axis untouched")

	shifted := r.Translate(Horizontal, -10)
	assert.Equal(t, 0.0, shifted.X)
	assert.Equal(t, 20.0, shifted.Y)
}

func TestIntersectsAlong(t *testing.T) {
	a := Rect{Y: 0, Height: 10}
	b := Rect{Y: 5, Height: 10}
	c := Rect{Y: 10, Height: 10}

	assert.True(t, a.IntersectsAlong(Vertical, b))
	assert.True(t, b.IntersectsAlong(Vertical, a))

	// Touching edges do not overlap.
	assert.False(t, a.IntersectsAlong(Vertical, c))
	assert.False(t, c.IntersectsAlong(Vertical, a))
}
