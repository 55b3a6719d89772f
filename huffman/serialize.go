package huffman

import (
	"fmt"

	"github.com/arloliu/hufblob/errs"
)

// BitWriter is the subset of *bitio.Writer used to persist a tree.
type BitWriter interface {
	WriteBool(b bool) error
	WriteBits(r uint64, n uint8) error
}

// BitReader is the subset of *bitio.Reader used to restore a tree.
type BitReader interface {
	ReadBool() (bool, error)
	ReadBits(n uint8) (uint64, error)
}

const (
	internalMarker = false
	leafMarker     = true
	symbolBits     = 8
)

// TreeBits returns the number of bits WriteTree emits for tree: one marker bit
// per node plus eight bits per leaf symbol.
func TreeBits(tree *Tree) int {
	leaves := tree.Leaves()
	nodes := 2*leaves - 1

	return nodes + symbolBits*leaves
}

// WriteTree writes tree to w in pre-order. An internal node is a 0 bit
// followed by its left and right subtrees; a leaf is a 1 bit followed by its
// symbol, most significant bit first.
func WriteTree(w BitWriter, tree *Tree) error {
	stack := []Node{tree.Root()}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n := n.(type) {
		case *Leaf:
			if err := w.WriteBool(leafMarker); err != nil {
				return err
			}
			if err := w.WriteBits(uint64(n.Symbol), symbolBits); err != nil {
				return err
			}
		case *Internal:
			if err := w.WriteBool(internalMarker); err != nil {
				return err
			}
			stack = append(stack, n.Right, n.Left)
		}
	}

	return nil
}

// ReadTree restores a tree written by WriteTree. The restored nodes carry no
// weights.
//
// It returns errs.ErrCorrupt if r runs out of bits, if a leaf lies deeper
// than MaxCodeSize levels, or if a symbol appears twice.
func ReadTree(r BitReader) (*Tree, error) {
	tr := treeReader{r: r}

	root, err := tr.readNode(0)
	if err != nil {
		return nil, err
	}

	return &Tree{root: root, leaves: tr.leaves}, nil
}

type treeReader struct {
	r      BitReader
	seen   [NumSymbols]bool
	leaves int
}

func (tr *treeReader) readNode(depth int) (Node, error) {
	// every leaf code must fit in a Code
	if depth > MaxCodeSize {
		return nil, fmt.Errorf("%w: tree deeper than %d levels", errs.ErrCorrupt, MaxCodeSize)
	}

	isLeaf, err := tr.r.ReadBool()
	if err != nil {
		return nil, fmt.Errorf("%w: reading tree node: %w", errs.ErrCorrupt, err)
	}

	if isLeaf {
		v, err := tr.r.ReadBits(symbolBits)
		if err != nil {
			return nil, fmt.Errorf("%w: reading leaf symbol: %w", errs.ErrCorrupt, err)
		}
		sym := Symbol(v)
		if tr.seen[sym] {
			return nil, fmt.Errorf("%w: duplicate symbol %d in tree", errs.ErrCorrupt, sym)
		}
		tr.seen[sym] = true
		tr.leaves++

		return &Leaf{Symbol: sym}, nil
	}

	left, err := tr.readNode(depth + 1)
	if err != nil {
		return nil, err
	}
	right, err := tr.readNode(depth + 1)
	if err != nil {
		return nil, err
	}

	return &Internal{Left: left, Right: right}, nil
}
