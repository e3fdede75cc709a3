package rplus

import "errors"

// Precondition violations. Go has no separate debug/release mode at the
// language level, so the check always runs and the violation is always
// surfaced as an error. Callers that want a panic-on-violation feel can
// wrap a call with MustAssign.
var (
	ErrEmptyInput        = errors.New("rplus: input set must not be empty")
	ErrDuplicatePoint    = errors.New("rplus: input set contains a duplicate point")
	ErrInvertedRectangle = errors.New("rplus: query rectangle has min > max on some axis")
	ErrCapacityOverflow  = errors.New("rplus: entry set exceeds node capacity")
	ErrMixedEntryKinds   = errors.New("rplus: node mixes leaf and internal entries")
	ErrLeafStraddle      = errors.New("rplus: a leaf's degenerate rectangle cannot straddle a cut line")
	ErrNotAssigned       = errors.New("rplus: tree has no assigned points")
)
