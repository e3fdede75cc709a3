package bench

import "github.com/tharina/rplustree"

// Point is a generated coordinate pair in double precision. It is converted
// down to rplus.Point (float32) only at the point the harness hands data
// to an index, so every distribution's math runs at full precision
// regardless of what the index itself stores.
type Point [2]float64

// Query is a generated range-search window.
type Query struct {
	Min, Max Point
}

// ToRplusPoint narrows a Point to the float32 coordinate pair the indexes
// under test actually store.
func (p Point) ToRplusPoint() rplus.Point {
	return rplus.Point{float32(p[0]), float32(p[1])}
}

// ToRplusPoints narrows a whole batch.
func ToRplusPoints(points []Point) []rplus.Point {
	out := make([]rplus.Point, len(points))
	for i, p := range points {
		out[i] = p.ToRplusPoint()
	}
	return out
}

// Min and Max as rplus.Point, for feeding ReportRange/CountRange.
func (q Query) ToRplusWindow() (min, max rplus.Point) {
	return q.Min.ToRplusPoint(), q.Max.ToRplusPoint()
}
