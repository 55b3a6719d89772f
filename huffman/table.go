package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable is a bijective mapping between symbols and their codes.
type CodeTable struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
	reverse map[Code]Symbol
	minSize uint8
	maxSize uint8
}

// GenerateCodeTable walks tree depth-first, appending 0 on each left edge and
// 1 on each right edge, and records the accumulated code at every leaf.
//
// When the root itself is a leaf the symbol is assigned the one-bit code "0",
// since an empty code could never be matched by the decoder.
func GenerateCodeTable(tree *Tree) *CodeTable {
	ct := &CodeTable{
		reverse: make(map[Code]Symbol, tree.Leaves()),
	}

	if leaf, ok := tree.Root().(*Leaf); ok {
		ct.add(leaf.Symbol, MakeCode(1, 0))
		return ct
	}

	type stackItem struct {
		n    Node
		code Code
	}

	stack := make([]stackItem, 0, tree.Leaves())
	stack = append(stack, stackItem{n: tree.Root()})
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n := top.n.(type) {
		case *Leaf:
			ct.add(n.Symbol, top.code)
		case *Internal:
			assert.Assertf(top.code.Size < MaxCodeSize, "code longer than %d bits", MaxCodeSize)
			// right first so the left subtree is visited first
			stack = append(stack,
				stackItem{n: n.Right, code: top.code.Append(true)},
				stackItem{n: n.Left, code: top.code.Append(false)},
			)
		}
	}

	return ct
}

func (ct *CodeTable) add(sym Symbol, code Code) {
	assert.Assertf(!ct.present[sym], "duplicate symbol %d in tree", sym)

	if len(ct.reverse) == 0 || code.Size < ct.minSize {
		ct.minSize = code.Size
	}
	if code.Size > ct.maxSize {
		ct.maxSize = code.Size
	}

	ct.codes[sym] = code
	ct.present[sym] = true
	ct.reverse[code] = sym
}

// Lookup returns the code assigned to sym.
func (ct *CodeTable) Lookup(sym Symbol) (Code, bool) {
	return ct.codes[sym], ct.present[sym]
}

// Decode returns the symbol whose code is exactly code.
func (ct *CodeTable) Decode(code Code) (Symbol, bool) {
	sym, ok := ct.reverse[code]
	return sym, ok
}

// Len returns the number of symbols in the table.
func (ct *CodeTable) Len() int {
	return len(ct.reverse)
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() uint8 {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() uint8 {
	return ct.maxSize
}

// Codes returns the string form of every code, keyed by symbol.
func (ct *CodeTable) Codes() map[Symbol]string {
	out := make(map[Symbol]string, len(ct.reverse))
	for code, sym := range ct.reverse {
		out[sym] = code.String()
	}

	return out
}

// EncodedBits returns the number of code bits needed to encode an input
// with the given frequencies, excluding any header or padding.
func (ct *CodeTable) EncodedBits(freqs FrequencyTable) uint64 {
	var bits uint64
	for sym, freq := range freqs.All() {
		bits += freq * uint64(ct.codes[sym].Size)
	}

	return bits
}

// Dump writes a programmer-readable debugging dump of the table to w.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for sym := range NumSymbols {
		if !ct.present[sym] {
			continue
		}
		fmt.Fprintf(&buf, "\tLookup(%d) = %q\n", sym, ct.codes[sym].String())
	}
	buf.WriteString("}\n")

	return buf.WriteTo(w)
}
