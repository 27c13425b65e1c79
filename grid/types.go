// Package grid defines the validated elevation grid, its size limits,
// and sentinel errors for the grid subpackage of github.com/katalvlaran/watershed.
package grid

import (
	"errors"
)

// Hard and advisory size limits for validated grids.
const (
	// MaxRows is the hard ceiling on row count; larger inputs are rejected.
	MaxRows = 10_000
	// MaxCols is the hard ceiling on column count; larger inputs are rejected.
	MaxCols = 10_000
	// AdvisoryCells is the soft cell-count threshold; exceeding it only
	// attaches a warning to the grid, it never rejects the input.
	AdvisoryCells = 1_000_000
)

// Sentinel errors for grid validation.
var (
	// ErrEmptyGrid indicates input has no rows or a row with no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNonNumericCell indicates a cell value that cannot be coerced to a number.
	ErrNonNumericCell = errors.New("grid: cell value is not numeric")
	// ErrGridTooLarge indicates dimensions beyond MaxRows×MaxCols.
	ErrGridTooLarge = errors.New("grid: dimensions exceed maximum")
)

// Grid is an immutable, validated, rectangular elevation grid.
// Elevations are stored row-major; use Index and Coordinate to translate
// between (row, col) pairs and flat cell indices.
type Grid struct {
	Rows, Cols int
	// Warnings holds non-fatal advisories raised during validation
	// (currently only the AdvisoryCells threshold). Never an error.
	Warnings []string

	elevations []float64
}

// At returns the elevation at (row, col). Bounds are the caller's contract.
// Complexity: O(1).
func (g *Grid) At(row, col int) float64 {
	return g.elevations[row*g.Cols+col]
}

// Index maps (row, col) to a row-major cell index: row*Cols + col.
// Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return row*g.Cols + col
}

// Coordinate converts a row-major cell index back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.Cols, idx % g.Cols
}

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Cells returns the total number of cells, Rows×Cols.
func (g *Grid) Cells() int {
	return g.Rows * g.Cols
}
