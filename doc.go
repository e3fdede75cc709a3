// Package rplus implements a bulk-loaded R+-tree: a height-balanced,
// two-dimensional orthogonal range-search index that partitions point data
// into disjoint axis-aligned regions so a query rectangle only visits the
// subtrees it overlaps.
//
// The tree is built once, from a complete point set, by Tree.Assign; after
// that it is read-only, and concurrent ReportRange/CountRange calls are
// safe. There is no incremental insertion or deletion — rebuild with a new
// Tree if the point set changes.
package rplus
