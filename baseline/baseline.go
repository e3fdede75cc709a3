// Package baseline implements a sequential-scan reference index: the same
// RangeSearch contract the R+-tree satisfies, answered by a predicate
// filter over the full stored set.
package baseline

import (
	"github.com/tharina/rplustree"
)

// Index is a brute-force RangeSearch: Assign stores the points verbatim,
// and every query does a full linear scan. It exists to give the R+-tree's
// test suite and benchmark harness an oracle to compare against, never to
// be fast.
type Index struct {
	points []rplus.Point
}

// Assign stores points verbatim, replacing whatever was previously stored.
func (idx *Index) Assign(points []rplus.Point) error {
	idx.points = append([]rplus.Point(nil), points...)
	return nil
}

// ReportRange appends every stored point within the closed rectangle
// [min, max] to *out, in storage order.
func (idx *Index) ReportRange(min, max rplus.Point, out *[]rplus.Point) error {
	w := rplus.NewRectangle(min, max)
	for _, p := range idx.points {
		if w.Contains(p) {
			*out = append(*out, p)
		}
	}
	return nil
}

// CountRange returns the number of stored points within [min, max],
// equivalent to len(ReportRange(...)) but computed directly instead of
// building a slice.
func (idx *Index) CountRange(min, max rplus.Point) (int, error) {
	w := rplus.NewRectangle(min, max)
	count := 0
	for _, p := range idx.points {
		if w.Contains(p) {
			count++
		}
	}
	return count, nil
}

// Len returns the number of stored points.
func (idx *Index) Len() int { return len(idx.points) }

var _ rplus.RangeSearch = (*Index)(nil)
