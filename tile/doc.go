// Package tile defines the closed set of connector tiles a pipe grid is built
// from, together with the four cardinal directions they connect.
//
// What:
//
//   - Direction: North, South, East, West, plus the None sentinel used before
//     a traversal has taken its first step.
//   - Tile: Entry, Vertical, Horizontal, BendNE, BendNW, BendSE, BendSW and
//     Ground. Every variant except Entry and Ground carries a fixed pair of
//     connectors; Ground connects nothing and Entry is a wildcard that
//     connects every direction until its true shape is known.
//   - Symbol table for the text format `| - L J 7 F S .` and box-drawing
//     glyphs for diagnostic rendering.
//
// Why:
//
//   - "Does tile X connect direction D" is a total, exhaustive match instead
//     of four independent flags that could encode an impossible tile.
//
// Complexity:
//
//   - Every operation is O(1).
//
// Errors:
//
//   - ErrInvalidSymbol: a rune outside the recognized symbol set.
package tile
