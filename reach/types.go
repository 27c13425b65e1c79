// Package reach defines boundary edges, boundary groups, reachability sets,
// and sentinel errors for the reach subpackage of github.com/katalvlaran/watershed.
package reach

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for traversal operations.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("reach: grid is nil")
	// ErrEmptyGroup is returned when a boundary group names no edges.
	ErrEmptyGroup = errors.New("reach: boundary group must contain at least one edge")
	// ErrUnknownEdge is returned when an edge value is outside the four known sides.
	ErrUnknownEdge = errors.New("reach: unknown boundary edge")
)

// Edge denotes one side of the rectangular grid.
type Edge int

const (
	// Top is the first row of the grid.
	Top Edge = iota
	// Left is the first column of the grid.
	Left
	// Bottom is the last row of the grid.
	Bottom
	// Right is the last column of the grid.
	Right
)

// String returns the lowercase edge name ("top", "left", "bottom", "right").
func (e Edge) String() string {
	switch e {
	case Top:
		return "top"
	case Left:
		return "left"
	case Bottom:
		return "bottom"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("edge(%d)", int(e))
	}
}

// ParseEdge converts an edge name (case-insensitive) into an Edge.
// Returns ErrUnknownEdge for anything but the four known sides.
func ParseEdge(name string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "top":
		return Top, nil
	case "left":
		return Left, nil
	case "bottom":
		return Bottom, nil
	case "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEdge, name)
	}
}

// Group is a named, non-empty set of boundary edges acting as one drainage
// target. Duplicate edges within a group and overlapping edges across groups
// are accepted as-is; seed deduplication happens during traversal.
type Group struct {
	Name  string
	Edges []Edge
}

// DefaultGroupA returns the conventional first drainage target: top + left.
func DefaultGroupA() Group {
	return Group{Name: "GroupA", Edges: []Edge{Top, Left}}
}

// DefaultGroupB returns the conventional second drainage target: bottom + right.
func DefaultGroupB() Group {
	return Group{Name: "GroupB", Edges: []Edge{Bottom, Right}}
}

// Set is a reachability set over row-major cell indices of one grid.
// The zero value is unusable; Traverse constructs Sets.
type Set struct {
	member []bool
	size   int
	cols   int
}

// newSet allocates an empty set for a rows×cols grid.
func newSet(rows, cols int) *Set {
	return &Set{member: make([]bool, rows*cols), cols: cols}
}

// add marks idx as reachable; reports false if it already was.
func (s *Set) add(idx int) bool {
	if s.member[idx] {
		return false
	}
	s.member[idx] = true
	s.size++
	return true
}

// Has reports whether row-major index idx is in the set. Complexity: O(1).
func (s *Set) Has(idx int) bool {
	return idx >= 0 && idx < len(s.member) && s.member[idx]
}

// HasCell reports whether (row, col) is in the set. Complexity: O(1).
func (s *Set) HasCell(row, col int) bool {
	return s.Has(row*s.cols + col)
}

// Len returns the number of reachable cells. Complexity: O(1).
func (s *Set) Len() int {
	return s.size
}

// Indices returns all reachable row-major indices in ascending order.
// Complexity: O(rows×cols).
func (s *Set) Indices() []int {
	out := make([]int, 0, s.size)
	for idx, in := range s.member {
		if in {
			out = append(out, idx)
		}
	}
	return out
}
