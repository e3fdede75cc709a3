package rplus

// CostMetric scores a candidate axis cut during Sweep, over the prefix of
// entries that would end up on the "used" side of the cut. Partition picks
// whichever axis yields the lower cost; lower is better.
type CostMetric interface {
	Cost(prefix []entry, axis Axis, cutline float32) float32
}

// TotalAreaCost is the default metric: the area of the bounding box over
// the prefix's corners.
type TotalAreaCost struct{}

// Cost implements CostMetric.
func (TotalAreaCost) Cost(prefix []entry, axis Axis, cutline float32) float32 {
	return boundingBox(entryRects(prefix)).Area()
}

// NumRectangleCuts is an alternative metric: the number of entries in the
// prefix whose rectangle would actually have to be split by the cut line.
// Pluggable via Option so benchmarks can compare it against TotalAreaCost.
type NumRectangleCuts struct{}

// Cost implements CostMetric.
func (NumRectangleCuts) Cost(prefix []entry, axis Axis, cutline float32) float32 {
	cuts := 0
	for _, e := range prefix {
		if e.rect.Intersects(axis, cutline) {
			cuts++
		}
	}
	return float32(cuts)
}
