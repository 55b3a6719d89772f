package huffman

// Node is a node of a Huffman tree: either a *Leaf or an *Internal.
type Node interface {
	// Freq returns the combined frequency of the subtree rooted at this node.
	Freq() uint64

	node()
}

// Leaf is a terminal node carrying a symbol.
type Leaf struct {
	Symbol Symbol
	Weight uint64
}

// Internal is a merged node. Weight is the sum of its children's weights.
type Internal struct {
	Weight uint64
	Left   Node
	Right  Node
}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// Freq implements Node.
func (l *Leaf) Freq() uint64 { return l.Weight }

// Freq implements Node.
func (n *Internal) Freq() uint64 { return n.Weight }

func (*Leaf) node()     {}
func (*Internal) node() {}
