package huffman

import (
	"fmt"
	"strings"
)

// Node is a node of a Huffman code tree.  A Node is either a leaf, which
// carries a symbol, or an internal node, which has exactly two children and
// whose weight is the sum of its children's weights.
//
// Nodes are only produced by Build.
type Node[T comparable] interface {
	// Weight returns the total weight of all symbols below this node.
	Weight() float64

	// IsLeaf reports whether this node carries a symbol.
	IsLeaf() bool

	// Symbol returns the symbol of a leaf.  ok is false for internal
	// nodes.
	Symbol() (symbol T, ok bool)

	// Left returns the child reached by a '0' bit, or nil for a leaf.
	Left() Node[T]

	// Right returns the child reached by a '1' bit, or nil for a leaf.
	Right() Node[T]

	fmt.Stringer

	node()
}

type leafNode[T comparable] struct {
	weight float64
	symbol T
}

func (n *leafNode[T]) Weight() float64 { return n.weight }
func (n *leafNode[T]) IsLeaf() bool    { return true }
func (n *leafNode[T]) Left() Node[T]   { return nil }
func (n *leafNode[T]) Right() Node[T]  { return nil }
func (n *leafNode[T]) node()           {}

func (n *leafNode[T]) Symbol() (T, bool) {
	return n.symbol, true
}

func (n *leafNode[T]) String() string {
	return fmt.Sprintf("%.3f %v", n.weight, n.symbol)
}

type internalNode[T comparable] struct {
	weight float64
	left   Node[T]
	right  Node[T]
}

func newInternalNode[T comparable](left, right Node[T]) *internalNode[T] {
	return &internalNode[T]{
		weight: left.Weight() + right.Weight(),
		left:   left,
		right:  right,
	}
}

func (n *internalNode[T]) Weight() float64 { return n.weight }
func (n *internalNode[T]) IsLeaf() bool    { return false }
func (n *internalNode[T]) Left() Node[T]   { return n.left }
func (n *internalNode[T]) Right() Node[T]  { return n.right }
func (n *internalNode[T]) node()           {}

func (n *internalNode[T]) Symbol() (T, bool) {
	var zero T
	return zero, false
}

func (n *internalNode[T]) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "%.3f {%v, %v}", n.weight, n.left, n.right)
	return buf.String()
}

var (
	_ Node[string] = (*leafNode[string])(nil)
	_ Node[string] = (*internalNode[string])(nil)
)

// compareWeights orders two weights.  Pairs that are not ordered by < or >,
// which includes any pair involving NaN, compare as equal.
func compareWeights(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
