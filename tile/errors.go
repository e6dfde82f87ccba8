package tile

import (
	"errors"
	"fmt"
)

// ErrInvalidSymbol indicates a rune that is not one of `| - L J 7 F S .`.
var ErrInvalidSymbol = errors.New("tile: invalid tile symbol")

// InvalidSymbolError reports the offending rune. It matches ErrInvalidSymbol
// under errors.Is.
type InvalidSymbolError struct {
	Rune rune
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("tile: invalid tile symbol %q", e.Rune)
}

// Unwrap exposes ErrInvalidSymbol.
func (e *InvalidSymbolError) Unwrap() error { return ErrInvalidSymbol }
