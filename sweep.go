package rplus

import (
	"math/rand"

	"github.com/maja42/vmath/math32"
)

// sweepResult is the outcome of scanning one axis during Partition: the
// proposed cut line and its cost under the tree's configured CostMetric. A
// cost of math32.Infinity means the axis produced no meaningful cut because
// the first capacity+1 entries in MinSide order share their coordinate on
// that axis.
type sweepResult struct {
	axis    Axis
	cutline float32
	cost    float32
}

// sweep partitions set around the position its capacity-th smallest
// MinSide(axis) value would occupy if set were fully sorted, without paying
// for a full sort. The observable result — the cutline value, and
// TotalAreaCost over the first F entries treated as an unordered set — does
// not depend on anything past index `capacity` being in order, so a
// selection partition reaches the same answer for less work.
func sweep(set []entry, axis Axis, capacity int, metric CostMetric) sweepResult {
	selectByMinSide(set, capacity, axis)

	cutline := set[capacity].rect.MinSide(axis)

	minSide := set[0].rect.MinSide(axis)
	for _, e := range set[1:] {
		if v := e.rect.MinSide(axis); v < minSide {
			minSide = v
		}
	}
	if minSide == cutline {
		// The capacity+1 smallest MinSide values on this axis are all equal,
		// so no entry lies strictly before the cut line and the axis cannot
		// produce a meaningful cut. This covers both a fully colinear set
		// and a colinear cluster at the start of an otherwise spread set.
		return sweepResult{axis: axis, cutline: cutline, cost: math32.Infinity}
	}

	return sweepResult{axis: axis, cutline: cutline, cost: metric.Cost(set[:capacity], axis, cutline)}
}

// selectByMinSide performs a partial sort (quickselect) so that every entry
// before position n has a MinSide(axis) no larger than set[n]'s, and every
// entry from n onward has one no smaller — equivalent to finding the n-th
// smallest element by that key. A naive Hoare-style partition benchmarks
// faster here than either a generic nth-element package or a hand-rolled
// Floyd-Rivest selection, so the same shape replaces a full sort.Slice
// call.
func selectByMinSide(set []entry, n int, axis Axis) {
	less := func(i, j int) bool { return set[i].rect.MinSide(axis) < set[j].rect.MinSide(axis) }
	swap := func(i, j int) { set[i], set[j] = set[j], set[i] }

	first, last := 0, len(set)-1
	for {
		guess := first + rand.Intn(last-first+1)
		pivot := partitionAround(first, last, guess, less, swap)
		switch {
		case n == pivot:
			return
		case n < pivot:
			last = pivot - 1
		default:
			first = pivot + 1
		}
	}
}

// partitionAround moves every element smaller than the pivot to its left
// and every larger element to its right, returning the pivot's final
// position.
func partitionAround(firstIdx, lastIdx, pivotIdx int, less func(i, j int) bool, swap func(i, j int)) int {
	swap(firstIdx, pivotIdx)
	pivotIdx = firstIdx

	left, right := firstIdx+1, lastIdx
	for left <= right {
		for left <= lastIdx && less(left, pivotIdx) {
			left++
		}
		for right >= pivotIdx && less(pivotIdx, right) {
			right--
		}
		if left <= right {
			swap(left, right)
			left++
			right--
		}
	}
	swap(pivotIdx, right)
	return right
}
