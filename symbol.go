package huffman

import (
	"errors"
	"fmt"
)

// WeightedSymbol pairs a symbol from an arbitrary alphabet with its weight,
// which may be either a probability or a raw frequency.  Weights are expected
// to be non-negative.
type WeightedSymbol[T comparable] struct {
	Symbol T
	Weight float64
}

// MakeWeightedSymbol is a convenience function that constructs a
// WeightedSymbol.
func MakeWeightedSymbol[T comparable](symbol T, weight float64) WeightedSymbol[T] {
	return WeightedSymbol[T]{Symbol: symbol, Weight: weight}
}

// String returns the string representation of this WeightedSymbol.
func (ws WeightedSymbol[T]) String() string {
	return fmt.Sprintf("%v (%v)", ws.Symbol, ws.Weight)
}

var _ fmt.Stringer = WeightedSymbol[string]{}

// ErrEmptyInput is returned when a code is requested for an empty alphabet.
// No tree, and therefore no code, exists for zero symbols.
var ErrEmptyInput = errors.New("huffman: no symbols to build a code from")

// ErrDuplicateSymbol is the error matched by errors.Is for any
// *DuplicateSymbolError.
var ErrDuplicateSymbol = errors.New("huffman: duplicate symbol")

// DuplicateSymbolError reports that the same symbol appears more than once in
// the input.  Each symbol needs exactly one code, so such input is rejected.
type DuplicateSymbolError struct {
	Symbol any
	First  int
	Second int
}

func (err *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("huffman: duplicate symbol %v at index %d and index %d", err.Symbol, err.First, err.Second)
}

// Is reports whether target is ErrDuplicateSymbol.
func (err *DuplicateSymbolError) Is(target error) bool {
	return target == ErrDuplicateSymbol
}

var _ error = (*DuplicateSymbolError)(nil)

// checkSymbols validates the input alphabet.
func checkSymbols[T comparable](symbols []WeightedSymbol[T]) error {
	if len(symbols) == 0 {
		return ErrEmptyInput
	}
	seen := make(map[T]int, len(symbols))
	for index, ws := range symbols {
		if first, found := seen[ws.Symbol]; found {
			return &DuplicateSymbolError{Symbol: ws.Symbol, First: first, Second: index}
		}
		seen[ws.Symbol] = index
	}
	return nil
}

// TotalWeight returns the sum of the weights of all symbols.
func TotalWeight[T comparable](symbols []WeightedSymbol[T]) float64 {
	var sum float64
	for _, ws := range symbols {
		sum += ws.Weight
	}
	return sum
}
