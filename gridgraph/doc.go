// Package gridgraph loads a pipe grid from text and treats it as a graph of
// connector tiles.
//
// What:
//
//   - Grid wraps a rectangular grid of tile.Tile values, padded internally
//     with a one-cell Ground border so neighbor lookups never leave the grid.
//   - Locates the single entry tile and tracks its shape as an explicit
//     Unresolved → Resolved transition.
//   - Identifies 4-connected regions of cells selected by a predicate,
//     reporting which regions reach the outside border.
//
// Why:
//
//   - Loop tracing and interior classification need O(1) bounds-free
//     neighbor access and a single place that owns the entry's shape.
//
// Complexity:
//
//   - Parse:      O(W×H), Memory: O((W+2)×(H+2)).
//   - Components: O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidTile: a character outside `| - L J 7 F S .` (InvalidTileSymbolError).
//   - ErrNoEntry: no `S` tile.
//   - ErrMultipleEntries: more than one `S` tile.
//   - ErrEntryResolved: the entry shape was already resolved.
//   - ErrEntryShape: a resolution target that is not a fixed-shape tile.
package gridgraph
