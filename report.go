package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/mattn/go-runewidth"
)

// Report holds a Huffman code built for a fixed list of weighted symbols: the
// original list, the rendered code tree, and the resulting CodeBook.  A Report
// is immutable once constructed.
type Report[T comparable] struct {
	symbols    []WeightedSymbol[T]
	tree       string
	book       *CodeBook[T]
	rootWeight float64
}

// New builds the Huffman code for symbols.
//
// New returns ErrEmptyInput if symbols is empty, and a *DuplicateSymbolError
// if any symbol appears more than once.
func New[T comparable](symbols []WeightedSymbol[T]) (*Report[T], error) {
	if err := checkSymbols(symbols); err != nil {
		return nil, err
	}

	owned := make([]WeightedSymbol[T], len(symbols))
	copy(owned, symbols)

	root := buildTree(owned)
	tree, book := Derive(root)
	assert.Assertf(book.Len() == len(owned), "code book has %d entries for %d symbols", book.Len(), len(owned))

	return &Report[T]{
		symbols:    owned,
		tree:       tree,
		book:       book,
		rootWeight: root.Weight(),
	}, nil
}

// AverageLength returns the expected number of bits per symbol, i.e. the sum
// over all symbols of weight × code length.
func (r *Report[T]) AverageLength() float64 {
	var sum float64
	for _, ws := range r.symbols {
		hc, _ := r.book.Encode(ws.Symbol)
		sum += ws.Weight * float64(hc.Size())
	}
	return sum
}

// Entropy returns the Shannon entropy of the input weights.
func (r *Report[T]) Entropy() float64 {
	return Entropy(r.symbols)
}

// Tree returns the rendered code tree.
func (r *Report[T]) Tree() string {
	return r.tree
}

// Code returns the Code assigned to symbol.
func (r *Report[T]) Code(symbol T) (hc Code, found bool) {
	return r.book.Encode(symbol)
}

// CodeBook returns the symbol/Code mapping.  The caller must not modify it.
func (r *Report[T]) CodeBook() *CodeBook[T] {
	return r.book
}

// Symbols returns a copy of the input list, in input order.
func (r *Report[T]) Symbols() []WeightedSymbol[T] {
	out := make([]WeightedSymbol[T], len(r.symbols))
	copy(out, r.symbols)
	return out
}

// TotalWeight returns the weight of the root of the code tree, which equals
// the sum of all input weights.
func (r *Report[T]) TotalWeight() float64 {
	return r.rootWeight
}

// MinSize is the bit length of the shortest code.
func (r *Report[T]) MinSize() int {
	return r.book.MinSize()
}

// MaxSize is the bit length of the longest code.
func (r *Report[T]) MaxSize() int {
	return r.book.MaxSize()
}

// String lists each input symbol in input order, one per line, as
// "symbol (weight) => code".  The symbol column is padded to a common display
// width.
func (r *Report[T]) String() string {
	labels := make([]string, len(r.symbols))
	width := 0
	for index, ws := range r.symbols {
		labels[index] = fmt.Sprint(ws.Symbol)
		if w := runewidth.StringWidth(labels[index]); w > width {
			width = w
		}
	}

	lines := make([]string, len(r.symbols))
	for index, ws := range r.symbols {
		hc, _ := r.book.Encode(ws.Symbol)
		label := runewidth.FillRight(labels[index], width)
		lines[index] = fmt.Sprintf("%s (%v) => %s", label, ws.Weight, string(hc))
	}
	return strings.Join(lines, "\n")
}

// Dump writes a programmer-readable debugging dump of the Report to the given
// writer.
func (r *Report[T]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Report{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", r.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", r.MaxSize())
	fmt.Fprintf(&buf, "\tTotalWeight() = %.4f\n", r.TotalWeight())
	fmt.Fprintf(&buf, "\tAverageLength() = %.4f\n", r.AverageLength())
	for _, ws := range r.symbols {
		hc, _ := r.book.Encode(ws.Symbol)
		fmt.Fprintf(&buf, "\tCode(%v) = %s\n", ws.Symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the same text that Dump writes.
func (r *Report[T]) DebugString() string {
	var buf bytes.Buffer
	_, _ = r.Dump(&buf)
	return buf.String()
}

var _ fmt.Stringer = (*Report[string])(nil)
