// Package grid turns raw tabular input into an immutable elevation grid.
//
// What:
//
//   - Validate coerces a [][]any matrix (numbers or numeric strings) into a Grid.
//   - FromFloat64s validates an already-numeric matrix without coercion.
//   - Grid stores elevations row-major and exposes O(1) index/coordinate helpers.
//
// Why:
//
//   - Spreadsheet and JSON sources hand over mixed value types; downstream
//     traversal wants one flat float64 slice and integer cell keys.
//   - All shape and size failures are caught here, before any traversal work.
//
// Limits:
//
//   - MaxRows × MaxCols (10,000 × 10,000): hard rejection via ErrGridTooLarge.
//   - AdvisoryCells (1,000,000): soft threshold; crossing it appends a warning
//     to Grid.Warnings and nothing else.
//
// Errors:
//
//   - ErrEmptyGrid: no rows, or a row with no columns.
//   - ErrNonRectangular: a row's length differs from the first row's.
//   - ErrNonNumericCell: a cell cannot be coerced; carries (row,col) and the value.
//   - ErrGridTooLarge: dimensions beyond the hard ceiling.
//
// Complexity: Validate and FromFloat64s are O(rows×cols) time and memory.
package grid
