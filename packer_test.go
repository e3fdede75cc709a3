package rplus

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack_FitsInSingleNode(t *testing.T) {
	entries := []entry{leafEntry(Point{1, 1}), leafEntry(Point{2, 2})}
	n, err := pack(entries, 8, TotalAreaCost{})
	require.NoError(t, err)
	assert.True(t, n.leaf)
	assert.Equal(t, 2, n.pointCount)
	assert.Len(t, n.entries, 2)
}

func TestPack_EmptyInputRejected(t *testing.T) {
	_, err := pack(nil, 8, TotalAreaCost{})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestPack_CascadesAcrossLevels(t *testing.T) {
	rnd := rand.New(rand.NewSource(123))
	entries := make([]entry, 2000)
	for i := range entries {
		entries[i] = leafEntry(Point{rnd.Float32() * 1000, rnd.Float32() * 1000})
	}

	root, err := pack(entries, 4, TotalAreaCost{})
	require.NoError(t, err)
	assert.False(t, root.leaf)
	assert.Equal(t, 2000, root.pointCount)
}

// TestPartition_ColinearPrefixStillProducesValidTree is a regression test
// for the colinear-prefix case: the first F+1 entries along X share one
// coordinate while the rest are spread out, so an X cut line would coincide
// with that cluster and leave nothing before it. Sweep scores such an axis
// +Inf, so the build cuts along Y instead and still yields a valid tree.
func TestPartition_ColinearPrefixStillProducesValidTree(t *testing.T) {
	const capacity = 4
	// First capacity+1 points share an X coordinate; the rest are spread out.
	points := []Point{
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4},
		{10, 0}, {20, 5}, {30, -5}, {40, 10}, {50, -10},
	}
	tree := New(capacity)
	require.NoError(t, tree.Assign(points))
	checkInvariants(t, tree, capacity, len(points))

	var out []Point
	require.NoError(t, tree.ReportRange(Point{-100, -100}, Point{100, 100}, &out))
	assertPointSetEqual(t, points, out)
}

func TestNewNode_RejectsCapacityOverflow(t *testing.T) {
	entries := []entry{
		leafEntry(Point{0, 0}),
		leafEntry(Point{1, 1}),
		leafEntry(Point{2, 2}),
	}
	_, err := newNode(entries, 2)
	assert.ErrorIs(t, err, ErrCapacityOverflow)
}

func TestNewNode_RejectsMixedEntryKinds(t *testing.T) {
	leaf, err := newNode([]entry{leafEntry(Point{0, 0})}, 8)
	require.NoError(t, err)

	entries := []entry{leafEntry(Point{1, 1}), internalEntry(leaf)}
	_, err = newNode(entries, 8)
	assert.ErrorIs(t, err, ErrMixedEntryKinds)
}

func TestNode_SplitRejectsLeafStraddle(t *testing.T) {
	// A well-formed leaf entry is a point and never straddles a line, so
	// build a leaf entry with a wide rectangle to reach the straddle check.
	wide := entry{rect: NewRectangle(Point{1, 1}, Point{5, 5}), point: Point{1, 1}}
	n, err := newNode([]entry{wide}, 8)
	require.NoError(t, err)

	_, err = n.split(AxisX, 3, 8)
	assert.ErrorIs(t, err, ErrLeafStraddle)
}

func TestNode_SplitKeepsDisjointSiblings(t *testing.T) {
	leaf1, err := newNode([]entry{leafEntry(Point{0, 0}), leafEntry(Point{1, 1})}, 8)
	require.NoError(t, err)
	leaf2, err := newNode([]entry{leafEntry(Point{9, 0}), leafEntry(Point{9, 9})}, 8)
	require.NoError(t, err)

	parent, err := newNode([]entry{internalEntry(leaf1), internalEntry(leaf2)}, 8)
	require.NoError(t, err)

	sibling, err := parent.split(AxisX, 5, 8)
	require.NoError(t, err)

	assert.Equal(t, 2, parent.pointCount)
	assert.Equal(t, 2, sibling.pointCount)
	assert.False(t, interiorsOverlap(parent.bounds, sibling.bounds))
}

func TestCostMetric_NumRectangleCuts(t *testing.T) {
	set := []entry{
		leafEntry(Point{0, 0}),
		leafEntry(Point{5, 0}),
		leafEntry(Point{10, 0}),
	}
	cost := NumRectangleCuts{}.Cost(set, AxisX, 5)
	// None of these leaf rectangles are degenerate-wide enough to straddle
	// offset=5 (leaf rectangles are points), so the count is 0.
	assert.Equal(t, float32(0), cost)
}
