// Package reach performs border-seeded reachability traversals over an
// elevation grid.
//
// What:
//
//   - Edge is a closed enumeration of the four grid sides (Top, Left, Bottom, Right).
//   - Group names a non-empty edge set acting as one drainage target.
//   - Traverse runs a multi-source BFS from a group's edges and returns a Set
//     of all cells reachable under the non-decreasing-elevation rule.
//
// Why:
//
//   - Drainage analysis: a cell drains to a boundary iff the boundary reaches
//     it walking uphill, which turns per-cell questions into one grid pass.
//   - Set operations: two Traverse results intersect to find dual-drainage cells.
//
// Rule:
//
//	From a dequeued cell C, an axis-aligned neighbor N is added iff it is in
//	bounds, unseen, and elevation(N) >= elevation(C). The inequality is
//	inclusive: flat plateaus propagate in full.
//
// Complexity:
//
//   - Traverse: O(rows×cols) time, O(rows×cols) memory (each cell enqueued
//     at most once, membership checked at enqueue time).
//
// Errors:
//
//   - ErrNilGrid: nil grid pointer.
//   - ErrEmptyGroup: a group with no edges.
//   - ErrUnknownEdge: an edge value outside the four known sides.
package reach
