package gridgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrInvalidTile indicates a character that is not a tile symbol.
	ErrInvalidTile = errors.New("gridgraph: invalid tile symbol")
	// ErrNoEntry indicates the grid has no entry tile.
	ErrNoEntry = errors.New("gridgraph: no entry tile found")
	// ErrMultipleEntries indicates the grid has more than one entry tile.
	ErrMultipleEntries = errors.New("gridgraph: more than one entry tile")
	// ErrEntryResolved indicates ResolveEntry was called twice.
	ErrEntryResolved = errors.New("gridgraph: entry shape already resolved")
	// ErrEntryShape indicates an entry cannot take the requested shape.
	ErrEntryShape = errors.New("gridgraph: entry must resolve to a fixed-shape tile")
)

// InvalidTileSymbolError locates an unrecognized character in the input.
// It matches both ErrInvalidTile and tile.ErrInvalidSymbol under errors.Is.
type InvalidTileSymbolError struct {
	Pos  Pos
	Rune rune
	Err  error // the underlying *tile.InvalidSymbolError
}

func (e *InvalidTileSymbolError) Error() string {
	return fmt.Sprintf("gridgraph: invalid tile symbol %q at row %d, column %d", e.Rune, e.Pos.Row, e.Pos.Col)
}

// Is reports ErrInvalidTile.
func (e *InvalidTileSymbolError) Is(target error) bool { return target == ErrInvalidTile }

// Unwrap exposes the tile-level error.
func (e *InvalidTileSymbolError) Unwrap() error { return e.Err }
