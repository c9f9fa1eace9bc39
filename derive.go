package huffman

import (
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

const (
	branchMid  = "├── "
	branchLast = "└── "
	indentMid  = "│   "
	indentLast = "    "
)

// Derive walks the tree rooted at root and returns a rendered diagram of the
// tree along with the CodeBook it defines.  Each symbol's Code is its path
// from the root, with a left edge contributing '0' and a right edge
// contributing '1'.  A tree consisting of a single leaf assigns the empty
// Code to its symbol.
//
// Every leaf line of the diagram holds the symbol, its weight, and its Code.
// Every internal line holds the Code prefix leading to it ("." at the root)
// and its weight.
func Derive[T comparable](root Node[T]) (string, *CodeBook[T]) {
	assert.Assertf(root != nil, "Derive called with nil root")

	w := treeWalker[T]{book: NewCodeBook[T](0)}
	w.walk(root, "", "")
	return w.buf.String(), w.book
}

type treeWalker[T comparable] struct {
	buf  strings.Builder
	book *CodeBook[T]
}

func (w *treeWalker[T]) walk(n Node[T], indent string, hc Code) {
	if symbol, ok := n.Symbol(); ok {
		err := w.book.Insert(symbol, hc)
		assert.Assertf(err == nil, "duplicate leaf in Huffman tree: %v", err)

		if hc == "" {
			fmt.Fprintf(&w.buf, "%v (%.2f)\n", symbol, n.Weight())
		} else {
			fmt.Fprintf(&w.buf, "%v (%.2f) %s\n", symbol, n.Weight(), string(hc))
		}
		return
	}

	left, right := n.Left(), n.Right()
	assert.Assertf(left != nil && right != nil, "internal node is missing a child")

	label := string(hc)
	if label == "" {
		label = "."
	}
	fmt.Fprintf(&w.buf, "%s (%.2f)\n", label, n.Weight())

	w.buf.WriteString(indent)
	w.buf.WriteString(branchMid)
	w.walk(left, indent+indentMid, hc.Append(0))

	w.buf.WriteString(indent)
	w.buf.WriteString(branchLast)
	w.walk(right, indent+indentLast, hc.Append(1))
}
