package rplus

// pack builds a tree node covering exactly the given entries. If there are
// more than `capacity` entries, partition is run repeatedly to carve off one
// fully-packed node at a time; the resulting layer of nodes is then packed
// again, one level up, until a single node remains — the root.
//
// Precondition: len(entries) >= 1.
func pack(entries []entry, capacity int, metric CostMetric) (*node, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyInput
	}
	if len(entries) <= capacity {
		return newNode(entries, capacity)
	}

	var layer []entry
	remaining := entries
	for len(remaining) > 0 {
		packed, rest, err := partition(remaining, capacity, metric)
		if err != nil {
			return nil, err
		}
		layer = append(layer, packed)
		remaining = rest
	}
	return pack(layer, capacity, metric)
}

// partition carves one fully-packed parent entry out of set and returns it
// along with the (possibly empty) remainder not consumed by this call.
//
// If set already fits in one node, it is wrapped whole. Otherwise Sweep is
// run along both axes; the axis with the strictly smaller cost is chosen
// (ties favor Y, since the comparison is cost_x < cost_y). Every entry
// straddling the resulting cut line has its child node surgically split so
// that no node on either side of the cut overlaps the line's interior —
// this is what keeps sibling rectangles disjoint across the whole layer.
func partition(set []entry, capacity int, metric CostMetric) (entry, []entry, error) {
	if len(set) <= capacity {
		n, err := newNode(set, capacity)
		if err != nil {
			return entry{}, nil, err
		}
		return internalEntry(n), nil, nil
	}

	x := sweep(append([]entry(nil), set...), AxisX, capacity, metric)
	y := sweep(append([]entry(nil), set...), AxisY, capacity, metric)

	chosen := y
	if x.cost < y.cost {
		chosen = x
	}

	var used, remainder []entry
	for _, e := range set {
		if e.rect.Intersects(chosen.axis, chosen.cutline) {
			if e.isLeaf() {
				// A leaf's rectangle is degenerate (bottomLeft == topRight)
				// and can never straddle a line — only internal entries
				// reach here.
				return entry{}, nil, ErrLeafStraddle
			}
			sibling, err := e.child.split(chosen.axis, chosen.cutline, capacity)
			if err != nil {
				return entry{}, nil, err
			}
			e.child.bounds = boundingBox(entryRects(e.child.entries))
			e.rect = e.child.bounds
			remainder = append(remainder, internalEntry(sibling))
		}

		if e.rect.MinSide(chosen.axis) < chosen.cutline {
			used = append(used, e)
		} else {
			remainder = append(remainder, e)
		}
	}

	n, err := newNode(used, capacity)
	if err != nil {
		return entry{}, nil, err
	}
	return internalEntry(n), remainder, nil
}
