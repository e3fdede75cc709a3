package rplus

// entry is a tagged variant of a leaf entry (point) and an internal entry
// (child, rectangle): the tag is child == nil, which keeps entries in a
// single inline slice without a virtual base class or distinct
// Leaf/IntermediateNode types.
type entry struct {
	child *node    // nil for a leaf entry
	rect  Rectangle // the entry's own rectangle (degenerate for a leaf entry)
	point Point     // the stored point; only meaningful when child == nil
}

func leafEntry(p Point) entry {
	return entry{rect: PointRectangle(p), point: p}
}

func internalEntry(child *node) entry {
	return entry{child: child, rect: child.bounds}
}

func (e entry) isLeaf() bool { return e.child == nil }

// entryRects extracts the rectangle of each entry, for feeding boundingBox.
func entryRects(entries []entry) []Rectangle {
	rects := make([]Rectangle, len(entries))
	for i, e := range entries {
		rects[i] = e.rect
	}
	return rects
}
