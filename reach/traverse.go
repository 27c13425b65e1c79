// Package reach implements the border-seeded breadth-first traversal that
// underlies dual-boundary drainage analysis.
//
// Traverse seeds every cell along a group's edges and expands inward under a
// monotonic-elevation rule: a neighbor joins the set iff its elevation is
// greater than or equal to the current cell's. Walking "uphill" from the
// boundary marks exactly the cells whose water can flow "downhill" to that
// boundary, in a single O(rows×cols) pass.
package reach

import (
	"fmt"

	"github.com/katalvlaran/watershed/grid"
)

// neighborOffsets are the four axis-aligned directions (no diagonals),
// as (drow, dcol) pairs.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Traverse runs a multi-source BFS over g seeded from every cell along the
// group's edges, and returns the set of cells reachable under the
// non-decreasing-elevation rule. Equal elevations always propagate, so a
// perfectly flat grid is fully reachable from any edge.
//
// Returns ErrNilGrid, ErrEmptyGroup, or ErrUnknownEdge on invalid input.
//
// Each cell is enqueued at most once (membership is checked at enqueue time),
// so time and memory are O(rows×cols) regardless of how many edges seed the
// traversal.
func Traverse(g *grid.Grid, group Group) (*Set, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if len(group.Edges) == 0 {
		return nil, fmt.Errorf("%w: group %q", ErrEmptyGroup, group.Name)
	}

	set := newSet(g.Rows, g.Cols)
	queue := make([]int, 0, g.Rows*g.Cols)

	// Seed every cell along each edge. Corner cells shared by two seeded
	// edges are deduplicated by set membership.
	for _, e := range group.Edges {
		switch e {
		case Top:
			for c := 0; c < g.Cols; c++ {
				queue = seed(set, queue, g.Index(0, c))
			}
		case Bottom:
			for c := 0; c < g.Cols; c++ {
				queue = seed(set, queue, g.Index(g.Rows-1, c))
			}
		case Left:
			for r := 0; r < g.Rows; r++ {
				queue = seed(set, queue, g.Index(r, 0))
			}
		case Right:
			for r := 0; r < g.Rows; r++ {
				queue = seed(set, queue, g.Index(r, g.Cols-1))
			}
		default:
			return nil, fmt.Errorf("%w: %d in group %q", ErrUnknownEdge, int(e), group.Name)
		}
	}

	// Multi-source BFS with a slice-backed queue.
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ur, uc := g.Coordinate(u)
		elev := g.At(ur, uc)
		for _, d := range neighborOffsets {
			nr, nc := ur+d[0], uc+d[1]
			if !g.InBounds(nr, nc) || g.At(nr, nc) < elev {
				continue
			}
			if v := g.Index(nr, nc); set.add(v) {
				queue = append(queue, v)
			}
		}
	}

	return set, nil
}

// seed adds idx to the set and queue unless it is already a member.
func seed(set *Set, queue []int, idx int) []int {
	if set.add(idx) {
		queue = append(queue, idx)
	}
	return queue
}
