package bench

import (
	"fmt"
	"sort"

	"github.com/tharina/rplustree"
)

// Mismatch describes a single query where two indexes disagreed, carrying
// just enough of the symmetric difference to explain why without dumping
// every point (benchmark.h's printPoints caps this the same way).
type Mismatch struct {
	Query     Query
	OnlyInLHS []rplus.Point
	OnlyInRHS []rplus.Point
}

const maxReportedPoints = 10

// Compare runs every query against both indexes and reports every query
// where the sorted result sets differ. It assumes both indexes were already
// populated with the same dataset via Assign. metrics may be nil.
func Compare(lhs, rhs rplus.RangeSearch, queries []Query, metrics *Metrics) ([]Mismatch, error) {
	var mismatches []Mismatch
	for _, q := range queries {
		min, max := q.ToRplusWindow()

		var a, b []rplus.Point
		if err := lhs.ReportRange(min, max, &a); err != nil {
			return nil, fmt.Errorf("lhs.ReportRange: %w", err)
		}
		if err := rhs.ReportRange(min, max, &b); err != nil {
			return nil, fmt.Errorf("rhs.ReportRange: %w", err)
		}
		sortPoints(a)
		sortPoints(b)

		if metrics != nil {
			metrics.QueriesTotal.WithLabelValues("lhs").Inc()
			metrics.QueriesTotal.WithLabelValues("rhs").Inc()
		}

		if pointSetsEqual(a, b) {
			continue
		}

		if metrics != nil {
			metrics.MismatchesTotal.Inc()
		}

		onlyA := setDifference(a, b)
		onlyB := setDifference(b, a)
		mismatches = append(mismatches, Mismatch{
			Query:     q,
			OnlyInLHS: truncate(onlyA),
			OnlyInRHS: truncate(onlyB),
		})
	}
	return mismatches, nil
}

func sortPoints(points []rplus.Point) {
	sort.Slice(points, func(i, j int) bool {
		if points[i][0] != points[j][0] {
			return points[i][0] < points[j][0]
		}
		return points[i][1] < points[j][1]
	})
}

func pointSetsEqual(a, b []rplus.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// setDifference assumes both slices are sorted, mirroring
// std::set_difference's merge-style walk.
func setDifference(a, b []rplus.Point) []rplus.Point {
	var diff []rplus.Point
	i, j := 0, 0
	for i < len(a) {
		for j < len(b) && less(b[j], a[i]) {
			j++
		}
		if j < len(b) && b[j] == a[i] {
			i++
			continue
		}
		diff = append(diff, a[i])
		i++
	}
	return diff
}

func less(p, q rplus.Point) bool {
	if p[0] != q[0] {
		return p[0] < q[0]
	}
	return p[1] < q[1]
}

func truncate(points []rplus.Point) []rplus.Point {
	if len(points) > maxReportedPoints {
		return points[:maxReportedPoints]
	}
	return points
}
