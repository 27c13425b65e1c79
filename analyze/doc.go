// Package analyze answers the dual-drainage question for one elevation grid:
// which cells can water leave toward both boundary groups at once?
//
// What:
//
//   - Analyze runs reach.Traverse once per boundary group, intersects the two
//     reachability sets, and returns sorted flow cells plus metadata.
//   - ComputeStatistics derives coverage, throughput, and per-boundary
//     breakdowns (exact decimal ratios, 4 decimal places).
//
// Why:
//
//   - Hydrology-style queries: continental-divide cells, dual-basin drainage.
//   - Any "reachable from two frontiers" intersection over a monotonic rule.
//
// Determinism:
//
//   - Flow cells are emitted in (row, col) ascending order.
//   - WithParallelTraversal changes wall-clock time only, never the output:
//     each traversal writes exclusively to its own set.
//
// Options:
//
//   - WithGroups(a, b): custom drainage targets (defaults: top+left vs
//     bottom+right). Overlapping groups are accepted and analyzed as given.
//   - WithoutStats(): skip statistics, Result.Stats == nil.
//   - WithParallelTraversal(): run the two traversals concurrently.
//
// Errors:
//
//   - ErrNilGrid: nil grid pointer.
//   - ErrOptionViolation: an empty boundary group supplied via WithGroups.
//   - Traversal errors from the reach package propagate unchanged.
//
// Complexity: O(rows×cols) time and memory per analysis.
package analyze
