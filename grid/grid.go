// Package grid normalizes raw tabular input into a rectangular numeric
// elevation grid and enforces its shape and size invariants. It supports:
//
//   - Coercion of heterogeneous cell values (numbers, numeric strings)
//   - Rectangularity and emptiness checks with positional error detail
//   - A hard 10,000×10,000 dimension ceiling and a 1,000,000-cell advisory
//
// The validated Grid is deep-copied from its input and immutable afterwards.
package grid

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Validate coerces and validates a raw 2D value matrix into a Grid.
// Every cell must be numeric or numeric-looking (e.g. spreadsheet strings);
// the first offending cell fails with its (row, col) position and value.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrNonNumericCell, or
// ErrGridTooLarge on invalid input.
// Complexity: O(rows×cols) time and memory.
func Validate(raw [][]any) (*Grid, error) {
	if len(raw) == 0 || len(raw[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(raw), len(raw[0])
	if err := checkDimensions(rows, cols); err != nil {
		return nil, err
	}

	elevations := make([]float64, 0, rows*cols)
	for i, row := range raw {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d",
				ErrNonRectangular, i, len(row), cols)
		}
		for j, cell := range row {
			v, err := coerce(cell)
			if err != nil {
				return nil, fmt.Errorf("%w: at (%d,%d): %v", ErrNonNumericCell, i, j, err)
			}
			elevations = append(elevations, v)
		}
	}

	return newGrid(rows, cols, elevations), nil
}

// FromFloat64s validates an already-numeric matrix into a Grid, skipping
// coercion. Shape and size rules match Validate.
// The input is deep-copied to ensure immutability.
// Complexity: O(rows×cols) time and memory.
func FromFloat64s(values [][]float64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	if err := checkDimensions(rows, cols); err != nil {
		return nil, err
	}

	elevations := make([]float64, 0, rows*cols)
	for i, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d",
				ErrNonRectangular, i, len(row), cols)
		}
		elevations = append(elevations, row...)
	}

	return newGrid(rows, cols, elevations), nil
}

// checkDimensions enforces the hard MaxRows/MaxCols ceiling.
func checkDimensions(rows, cols int) error {
	if rows > MaxRows || cols > MaxCols {
		return fmt.Errorf("%w: %d×%d, maximum %d×%d", ErrGridTooLarge, rows, cols, MaxRows, MaxCols)
	}
	return nil
}

// newGrid assembles the immutable Grid and attaches the cell-count advisory
// when the soft threshold is crossed.
func newGrid(rows, cols int, elevations []float64) *Grid {
	g := &Grid{Rows: rows, Cols: cols, elevations: elevations}
	if rows*cols > AdvisoryCells {
		g.Warnings = append(g.Warnings, fmt.Sprintf(
			"grid has %d cells (advisory threshold %d); consider splitting the analysis into chunks",
			rows*cols, AdvisoryCells))
	}
	return g
}

// coerce converts a single raw cell value to float64.
// NaN and infinities are rejected: they poison elevation comparisons.
func coerce(cell any) (float64, error) {
	var v float64
	switch c := cell.(type) {
	case float64:
		v = c
	case float32:
		v = float64(c)
	case int:
		v = float64(c)
	case int8:
		v = float64(c)
	case int16:
		v = float64(c)
	case int32:
		v = float64(c)
	case int64:
		v = float64(c)
	case uint:
		v = float64(c)
	case uint8:
		v = float64(c)
	case uint16:
		v = float64(c)
	case uint32:
		v = float64(c)
	case uint64:
		v = float64(c)
	case json.Number:
		f, err := c.Float64()
		if err != nil {
			return 0, fmt.Errorf("value %q", c.String())
		}
		v = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
		if err != nil {
			return 0, fmt.Errorf("value %q", c)
		}
		v = f
	default:
		return 0, fmt.Errorf("value %v of type %T", cell, cell)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("value %v is not finite", v)
	}
	return v, nil
}
