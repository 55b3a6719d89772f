package huffman

import (
	"container/heap"
	"fmt"

	"github.com/chronos-tachyon/assert"

	"github.com/arloliu/hufblob/errs"
)

// Tree is a Huffman code tree. It owns its root node exclusively.
type Tree struct {
	root   Node
	leaves int
}

// BuildTree builds a Huffman tree from freqs by repeatedly merging the two
// lowest-weight nodes.
//
// Ties on weight are broken by sequence number: leaves are numbered in
// ascending symbol order and each merged node takes the next number, so the
// earlier node always wins. The first node popped becomes the left child.
//
// A table with a single distinct symbol yields a tree whose root is that
// leaf. An empty table yields errs.ErrEmptyInput.
func BuildTree(freqs FrequencyTable) (*Tree, error) {
	if freqs.Len() == 0 {
		return nil, fmt.Errorf("cannot build Huffman tree: %w", errs.ErrEmptyInput)
	}

	h := nodeHeap{items: make([]heapItem, 0, freqs.Len())}
	var seq uint32
	for sym, freq := range freqs.All() {
		h.items = append(h.items, heapItem{node: &Leaf{Symbol: sym, Weight: freq}, seq: seq})
		seq++
	}
	leaves := len(h.items)
	heap.Init(&h)

	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)

		sum := a.node.Freq() + b.node.Freq()
		assert.Assertf(sum >= a.node.Freq(), "weight overflow merging %d and %d", a.node.Freq(), b.node.Freq())

		heap.Push(&h, heapItem{
			node: &Internal{Weight: sum, Left: a.node, Right: b.node},
			seq:  seq,
		})
		seq++
	}

	root := heap.Pop(&h).(heapItem).node
	assert.Assertf(root.Freq() == freqs.Total(), "root weight %d != input length %d", root.Freq(), freqs.Total())

	return &Tree{root: root, leaves: leaves}, nil
}

// NewTree wraps an existing root node. It is used when a tree is restored
// from its serialized form.
func NewTree(root Node) *Tree {
	assert.Assertf(root != nil, "nil root")

	return &Tree{root: root, leaves: countLeaves(root)}
}

// Root returns the root node.
func (t *Tree) Root() Node {
	return t.root
}

// Leaves returns the number of leaves, i.e. the number of distinct symbols.
func (t *Tree) Leaves() int {
	return t.leaves
}

// Weight returns the root weight. For a built tree this is the input length;
// restored trees carry no weights and report zero.
func (t *Tree) Weight() uint64 {
	return t.root.Freq()
}

// Depth returns the length of the longest root-to-leaf path.
// A single-leaf tree has depth 0.
func (t *Tree) Depth() int {
	type frame struct {
		n     Node
		depth int
	}

	maxDepth := 0
	stack := []frame{{t.root, 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n := top.n.(type) {
		case *Leaf:
			if top.depth > maxDepth {
				maxDepth = top.depth
			}
		case *Internal:
			stack = append(stack, frame{n.Right, top.depth + 1}, frame{n.Left, top.depth + 1})
		}
	}

	return maxDepth
}

func countLeaves(n Node) int {
	switch n := n.(type) {
	case *Leaf:
		return 1
	case *Internal:
		return countLeaves(n.Left) + countLeaves(n.Right)
	default:
		return 0
	}
}

// type heapItem + type nodeHeap {{{

type heapItem struct {
	node Node
	seq  uint32
}

type nodeHeap struct {
	items []heapItem
}

func (h *nodeHeap) Len() int {
	return len(h.items)
}

func (h *nodeHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if af, bf := a.node.Freq(), b.node.Freq(); af != bf {
		return af < bf
	}

	return a.seq < b.seq
}

func (h *nodeHeap) Push(x any) {
	h.items = append(h.items, x.(heapItem))
}

func (h *nodeHeap) Pop() any {
	last := len(h.items) - 1
	x := h.items[last]
	h.items[last] = heapItem{}
	h.items = h.items[:last]

	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
