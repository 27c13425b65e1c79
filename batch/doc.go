// Package batch runs dual-boundary drainage analysis over an ordered list of
// independent grids.
//
// What:
//
//   - Run validates and analyzes each Item sequentially, in input order.
//   - Every item yields an ItemResult at its own index: a Result on success,
//     an error message on failure. One bad item never aborts the rest.
//   - The batch carries a uuid identifier and aggregate timing statistics.
//
// Why:
//
//   - Callers submitting several spreadsheet sheets at once want one
//     round-trip with per-sheet outcomes, not all-or-nothing semantics.
//
// Limits:
//
//   - An empty batch, or one longer than the limit (DefaultLimit = 10,
//     tunable via WithLimit), is rejected up front with ErrBatchSize before
//     any item is processed.
//
// Logging:
//
//   - WithLogger attaches a zap.Logger for item failures and grid advisories.
//     The default is a no-op logger; analysis packages themselves never log.
//
// Invariants:
//
//   - Results order mirrors input order exactly.
//   - Successful + Failed == TotalItems.
package batch
