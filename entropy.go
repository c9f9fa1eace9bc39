package huffman

import (
	"math"
)

// Entropy returns the Shannon entropy, in bits, of the given weights, taken
// as a probability distribution: the sum of -w × log2(w).  The weights are
// not normalized.  Non-positive weights contribute nothing.
//
// For a probability distribution, the average length of a Huffman code lies
// in [Entropy, Entropy+1).
func Entropy[T comparable](symbols []WeightedSymbol[T]) float64 {
	var sum float64
	for _, ws := range symbols {
		if ws.Weight > 0 {
			sum -= ws.Weight * math.Log2(ws.Weight)
		}
	}
	return sum
}
