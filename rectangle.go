package rplus

import (
	"github.com/maja42/vmath"
	"github.com/maja42/vmath/math32"
)

// Point is a 2-D coordinate. It is vmath.Vec2f directly: both are [2]float32
// arrays, so p[0]/p[1] indexing works exactly the way the RangeSearch
// contract requires of a Point, with no adapter type needed.
type Point = vmath.Vec2f

// Axis identifies one of the two coordinate axes a Rectangle can be split
// along.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
)

// emptyBox is the bounding box of an empty set: merging it with any real
// rectangle leaves that rectangle untouched.
var emptyBox = vmath.Rectf{
	Min: Point{math32.Infinity, math32.Infinity},
	Max: Point{math32.NegInfinity, math32.NegInfinity},
}

// Rectangle is an axis-aligned box with bottomLeft[a] <= topRight[a] for
// both axes. It embeds vmath.Rectf for Merge/Area/Normalize, and adds its
// own exact comparison semantics rather than trusting vmath's own
// Intersects.
type Rectangle struct {
	vmath.Rectf
}

// NewRectangle builds a rectangle from its two corners. Callers must ensure
// bl[a] <= tr[a] for both axes; use window (as Tree's queries do, or your own check) to turn
// a violation into ErrInvertedRectangle instead of building a malformed box.
func NewRectangle(bl, tr Point) Rectangle {
	return Rectangle{vmath.Rectf{Min: bl, Max: tr}}
}

// PointRectangle builds the degenerate rectangle enclosing exactly one
// point: bottomLeft == topRight == p.
func PointRectangle(p Point) Rectangle {
	return Rectangle{vmath.Rectf{Min: p, Max: p}}
}

// BottomLeft returns the rectangle's lower corner.
func (r Rectangle) BottomLeft() Point { return r.Min }

// TopRight returns the rectangle's upper corner.
func (r Rectangle) TopRight() Point { return r.Max }

// MinSide returns bottomLeft[axis].
func (r Rectangle) MinSide(axis Axis) float32 { return r.Min[axis] }

// MaxSide returns topRight[axis].
func (r Rectangle) MaxSide(axis Axis) float32 { return r.Max[axis] }

// Overlaps reports whether the two closed rectangles share any point,
// including rectangles that only touch along an edge or at a corner.
func (r Rectangle) Overlaps(other Rectangle) bool {
	return r.Min[0] <= other.Max[0] &&
		r.Max[0] >= other.Min[0] &&
		r.Max[1] >= other.Min[1] &&
		r.Min[1] <= other.Max[1]
}

// Contains reports whether p lies within the closed rectangle.
func (r Rectangle) Contains(p Point) bool {
	return p[0] >= r.Min[0] && p[0] <= r.Max[0] &&
		p[1] >= r.Min[1] && p[1] <= r.Max[1]
}

// ContainsRect reports whether other lies entirely within r.
func (r Rectangle) ContainsRect(other Rectangle) bool {
	return r.Min[0] <= other.Min[0] && other.Max[0] <= r.Max[0] &&
		r.Min[1] <= other.Min[1] && other.Max[1] <= r.Max[1]
}

// Intersects reports whether the axis-aligned line axis=offset strictly
// crosses the interior of r. Endpoint-touching does not count: a rectangle
// whose side lies exactly on offset is handled by the caller's min/max-side
// tie-break, not by this predicate.
func (r Rectangle) Intersects(axis Axis, offset float32) bool {
	return r.Min[axis] < offset && r.Max[axis] > offset
}

// Merge returns the bounding box of r and other.
func (r Rectangle) Merge(other Rectangle) Rectangle {
	return Rectangle{r.Rectf.Merge(other.Rectf)}
}

// Equal reports corner-wise equality.
func (r Rectangle) Equal(other Rectangle) bool {
	return r.Min == other.Min && r.Max == other.Max
}

// boundingBox returns the componentwise min/max over a non-empty slice of
// rectangles. Precondition: len(rects) > 0.
func boundingBox(rects []Rectangle) Rectangle {
	box := Rectangle{emptyBox}
	for _, r := range rects {
		box = box.Merge(r)
	}
	return box
}
