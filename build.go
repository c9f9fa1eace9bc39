package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Build constructs a Huffman code tree for the given symbols, using the
// classic greedy algorithm: the two lightest nodes are repeatedly merged
// under a new internal node until only the root remains.  The first node
// removed becomes the left child and the second becomes the right child.
//
// Ties are broken deterministically.  Leaves are ordered by their position in
// symbols, and each newly merged node sorts after every existing node of the
// same weight.  Weights which cannot be ordered (NaN) compare as equal.
//
// Build returns ErrEmptyInput if symbols is empty, and a *DuplicateSymbolError
// if any symbol appears more than once.  A single symbol yields a tree whose
// root is that symbol's leaf.
func Build[T comparable](symbols []WeightedSymbol[T]) (Node[T], error) {
	if err := checkSymbols(symbols); err != nil {
		return nil, err
	}
	return buildTree(symbols), nil
}

func buildTree[T comparable](symbols []WeightedSymbol[T]) Node[T] {
	// Step 1: wrap every symbol as a leaf and build a minheap.

	numSymbols := uint64(len(symbols))
	items := make([]nodeAndSeq[T], 0, numSymbols)
	for index, ws := range symbols {
		leaf := &leafNode[T]{weight: ws.Weight, symbol: ws.Symbol}
		items = append(items, nodeAndSeq[T]{leaf, uint64(index)})
	}

	h := nodeHeap[T]{items}
	h.Init()

	// Step 2: pop the two lightest nodes, combine them into a new internal
	// node, and push the new node back onto the minheap.
	//
	// Merged nodes take sequence numbers after all of the leaves, in the
	// order they are created, so that a merged node never jumps ahead of an
	// existing node of equal weight.

	nextSeq := numSymbols
	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq[T])
		b := heap.Pop(&h).(nodeAndSeq[T])

		merged := newInternalNode(a.node, b.node)
		heap.Push(&h, nodeAndSeq[T]{merged, nextSeq})
		nextSeq++
	}

	// A tree over n leaves has exactly n-1 internal nodes.
	assert.Assertf(nextSeq-numSymbols == numSymbols-1, "merged %d nodes for %d symbols", nextSeq-numSymbols, numSymbols)

	root := heap.Pop(&h).(nodeAndSeq[T])
	return root.node
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq[T comparable] struct {
	node Node[T]
	seq  uint64
}

type nodeHeap[T comparable] struct {
	list []nodeAndSeq[T]
}

func (h *nodeHeap[T]) Init() {
	heap.Init(h)
}

func (h *nodeHeap[T]) Len() int {
	return len(h.list)
}

func (h *nodeHeap[T]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap[T]) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if cmp := compareWeights(a.node.Weight(), b.node.Weight()); cmp != 0 {
		return cmp < 0
	}
	return a.seq < b.seq
}

func (h *nodeHeap[T]) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq[T]))
}

func (h *nodeHeap[T]) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq[T]{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap[string])(nil)

// }}}
