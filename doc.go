// Package watershed analyzes rectangular elevation grids to find the cells
// whose water can drain to two (configurable) groups of grid boundaries at once.
//
// 🚀 What is watershed?
//
//	A small, stateless analysis engine built from four composable packages:
//		• grid/    — validation & coercion of raw tabular input into an immutable elevation grid
//		• reach/   — border-seeded multi-source BFS under a monotonic-elevation rule
//		• analyze/ — dual-boundary intersection, flow cells, and coverage statistics
//		• batch/   — ordered multi-grid orchestration with per-item failure isolation
//
// ✨ Why choose watershed?
//
//   - Deterministic — sorted flow-cell output, input-order batch results
//   - Fast — O(rows×cols) per traversal, integer row-major cell keys, no string sets
//   - Safe under concurrency — every call works on locally constructed state only
//   - Typed failures — sentinel errors per package, matched with errors.Is
//
// The flow rule walks "uphill" from each boundary inward: a neighbor is
// reachable when its elevation is greater than or equal to the current cell's.
// That reversal is what keeps a whole-grid answer at O(rows×cols) instead of
// one boundary walk per cell.
//
// Quick ASCII example (default groups: A = top+left, B = bottom+right, ■ = flow cell):
//
//	1 2 2 3 5      . . . . ■
//	3 2 3 4 4      . . . ■ ■
//	2 4 5 3 1  →   . . ■ . .
//	6 7 1 4 5      ■ ■ . . .
//	5 1 1 2 4      ■ . . . .
//
// Dive into the per-package doc.go files for contracts, options, and
// complexity notes, or run the bundled CLI:
//
//	go run github.com/katalvlaran/watershed/cmd/watershed analyze grid.json
package watershed
