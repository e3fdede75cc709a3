package rplus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectangleOverlaps(t *testing.T) {
	a := NewRectangle(Point{0, 0}, Point{10, 10})
	b := NewRectangle(Point{10, 0}, Point{20, 10}) // touches a on the right edge
	c := NewRectangle(Point{0, 10}, Point{10, 20}) // touches a on the top edge
	d := NewRectangle(Point{100, 100}, Point{110, 110})

	assert.True(t, a.Overlaps(b), "closed rectangles sharing an edge must overlap")
	assert.True(t, b.Overlaps(a))
	assert.True(t, a.Overlaps(c), "closed rectangles sharing the top edge must overlap")
	assert.True(t, c.Overlaps(a))
	assert.False(t, a.Overlaps(d))
}

func TestRectangleContainsPoint(t *testing.T) {
	r := NewRectangle(Point{0, 0}, Point{10, 10})
	assert.True(t, r.Contains(Point{0, 0}))
	assert.True(t, r.Contains(Point{10, 10}))
	assert.True(t, r.Contains(Point{5, 5}))
	assert.False(t, r.Contains(Point{10.0001, 5}))
}

func TestRectangleContainsRect(t *testing.T) {
	outer := NewRectangle(Point{0, 0}, Point{10, 10})
	inner := NewRectangle(Point{2, 2}, Point{8, 8})
	straddling := NewRectangle(Point{8, 8}, Point{12, 12})

	assert.True(t, outer.ContainsRect(inner))
	assert.True(t, outer.ContainsRect(outer))
	assert.False(t, outer.ContainsRect(straddling))
}

func TestRectangleIntersectsIsStrict(t *testing.T) {
	r := NewRectangle(Point{0, 0}, Point{10, 10})
	assert.True(t, r.Intersects(AxisX, 5))
	assert.False(t, r.Intersects(AxisX, 0), "touching the boundary is not an intersection")
	assert.False(t, r.Intersects(AxisX, 10), "touching the boundary is not an intersection")
	assert.False(t, r.Intersects(AxisX, 20))
}

func TestBoundingBox(t *testing.T) {
	rects := []Rectangle{
		PointRectangle(Point{1, 1}),
		PointRectangle(Point{-3, 4}),
		PointRectangle(Point{2, -2}),
	}
	box := boundingBox(rects)
	assert.Equal(t, Point{-3, -2}, box.BottomLeft())
	assert.Equal(t, Point{2, 4}, box.TopRight())
}
