package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// CodeBook is a one-to-one mapping between symbols and their Codes.  Codes
// can be looked up by symbol, and symbols by Code.
type CodeBook[T comparable] struct {
	bySymbol map[T]Code
	byCode   map[Code]T
	order    []T
}

// NewCodeBook returns an empty CodeBook with room for n entries.
func NewCodeBook[T comparable](n int) *CodeBook[T] {
	return &CodeBook[T]{
		bySymbol: make(map[T]Code, n),
		byCode:   make(map[Code]T, n),
		order:    make([]T, 0, n),
	}
}

// Insert adds the pair (symbol, hc) to the CodeBook.  It fails without
// modifying the CodeBook if either the symbol or the Code is already present.
func (book *CodeBook[T]) Insert(symbol T, hc Code) error {
	if old, found := book.bySymbol[symbol]; found {
		return fmt.Errorf("symbol %v already has code %s", symbol, old)
	}
	if old, found := book.byCode[hc]; found {
		return fmt.Errorf("code %s already belongs to symbol %v", hc, old)
	}
	book.bySymbol[symbol] = hc
	book.byCode[hc] = symbol
	book.order = append(book.order, symbol)
	return nil
}

// Encode returns the Code for symbol.  found is false if the symbol is not in
// the CodeBook.
func (book *CodeBook[T]) Encode(symbol T) (hc Code, found bool) {
	hc, found = book.bySymbol[symbol]
	return
}

// Decode returns the symbol whose Code is exactly hc.  found is false if no
// symbol has that Code.
func (book *CodeBook[T]) Decode(hc Code) (symbol T, found bool) {
	symbol, found = book.byCode[hc]
	return
}

// Len returns the number of entries in the CodeBook.
func (book *CodeBook[T]) Len() int {
	return len(book.order)
}

// Symbols returns the symbols in the order they were inserted.
func (book *CodeBook[T]) Symbols() []T {
	out := make([]T, len(book.order))
	copy(out, book.order)
	return out
}

// Codes returns every Code in the CodeBook, sorted by (size, bits).
func (book *CodeBook[T]) Codes() []Code {
	out := make(bySize, 0, len(book.byCode))
	for hc := range book.byCode {
		out = append(out, hc)
	}
	out.Sort()
	return []Code(out)
}

// MinSize is the bit length of the shortest code.
func (book *CodeBook[T]) MinSize() int {
	var minSize int
	for index, symbol := range book.order {
		size := book.bySymbol[symbol].Size()
		if index == 0 || size < minSize {
			minSize = size
		}
	}
	return minSize
}

// MaxSize is the bit length of the longest code.
func (book *CodeBook[T]) MaxSize() int {
	var maxSize int
	for _, symbol := range book.order {
		if size := book.bySymbol[symbol].Size(); size > maxSize {
			maxSize = size
		}
	}
	return maxSize
}

// IsPrefixFree reports whether no Code in the CodeBook is a prefix of
// another.
func (book *CodeBook[T]) IsPrefixFree() bool {
	codes := book.Codes()
	for i, a := range codes {
		for _, b := range codes[i+1:] {
			if b.HasPrefix(a) {
				return false
			}
		}
	}
	return true
}

// Dump writes a programmer-readable debugging dump of the CodeBook to the
// given writer.
func (book *CodeBook[T]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeBook{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", book.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", book.MaxSize())
	for _, hc := range book.Codes() {
		fmt.Fprintf(&buf, "\tDecode(%s) = %v\n", hc, book.byCode[hc])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the same text that Dump writes.
func (book *CodeBook[T]) DebugString() string {
	var buf bytes.Buffer
	_, _ = book.Dump(&buf)
	return buf.String()
}

// String returns a brief description of the CodeBook.
func (book *CodeBook[T]) String() string {
	return fmt.Sprintf("(Huffman code book with %d symbols, with coded lengths of %d .. %d bits)", book.Len(), book.MinSize(), book.MaxSize())
}

var _ fmt.Stringer = (*CodeBook[string])(nil)

// type bySize {{{

type bySize []Code

func (list bySize) Len() int {
	return len(list)
}

func (list bySize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize) Less(i, j int) bool {
	a, b := list[i], list[j]
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

func (list bySize) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySize(nil)

// }}}
