package bitstream

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"

	"github.com/arloliu/hufblob/errs"
	"github.com/arloliu/hufblob/format"
	"github.com/arloliu/hufblob/huffman"
	"github.com/arloliu/hufblob/internal/pool"
)

// Frame is an encoded, byte-packed symbol sequence.
type Frame struct {
	// Padding is the number of zero bits appended to reach a byte boundary.
	Padding uint8
	// TreeBits is the size of the serialised tree.
	TreeBits int
	// PayloadBits is the size of the concatenated codes, excluding padding.
	PayloadBits int
	// Packed holds [paddingCount][tree][codes][padding], MSB first.
	Packed []byte
}

// BodyBits returns the number of tree and code bits.
func (f *Frame) BodyBits() int {
	return f.TreeBits + f.PayloadBits
}

// Encode codes every symbol of data with table and packs the result, preceded
// by the padding header and the serialised tree.
//
// It fails with errs.ErrUnknownSymbol if data holds a symbol that table does
// not cover. Encoding completes in memory before the frame is returned.
func Encode(data []byte, tree *huffman.Tree, table *huffman.CodeTable, policy format.PaddingPolicy) (*Frame, error) {
	if !policy.IsValid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidPaddingPolicy, policy)
	}

	payloadBits, err := PayloadBits(data, table)
	if err != nil {
		return nil, err
	}

	treeBits := huffman.TreeBits(tree)
	padding := PaddingFor(treeBits+payloadBits, policy)
	totalBits := 8 + treeBits + payloadBits + int(padding)

	bb := pool.GetArtifactBuffer()
	defer pool.PutArtifactBuffer(bb)
	bb.Grow(totalBits / 8)

	w := bitio.NewWriter(bb)
	if err := w.WriteByte(padding); err != nil {
		return nil, fmt.Errorf("failed to write padding header: %w", err)
	}
	if err := huffman.WriteTree(w, tree); err != nil {
		return nil, fmt.Errorf("failed to write tree: %w", err)
	}
	for _, sym := range data {
		code, _ := table.Lookup(sym)
		if err := w.WriteBits(code.Bits, code.Size); err != nil {
			return nil, fmt.Errorf("failed to write code: %w", err)
		}
	}
	if err := w.WriteBits(0, padding); err != nil {
		return nil, fmt.Errorf("failed to write padding: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush frame: %w", err)
	}

	assert.Assertf(bb.Len()*8 == totalBits, "packed %d bytes for %d bits", bb.Len(), totalBits)

	return &Frame{
		Padding:     padding,
		TreeBits:    treeBits,
		PayloadBits: payloadBits,
		Packed:      bb.Clone(),
	}, nil
}

// PayloadBits returns the number of code bits needed for data.
func PayloadBits(data []byte, table *huffman.CodeTable) (int, error) {
	bits := 0
	for i, sym := range data {
		code, ok := table.Lookup(sym)
		if !ok {
			return 0, fmt.Errorf("%w: symbol %d at offset %d", errs.ErrUnknownSymbol, sym, i)
		}
		bits += int(code.Size)
	}

	return bits, nil
}

// CodeString returns the concatenated codes of data as a string of '0' and
// '1' characters, without header, tree or padding. It is meant for tests and
// debugging output.
func CodeString(data []byte, table *huffman.CodeTable) (string, error) {
	out := make([]byte, 0, len(data))
	for i, sym := range data {
		code, ok := table.Lookup(sym)
		if !ok {
			return "", fmt.Errorf("%w: symbol %d at offset %d", errs.ErrUnknownSymbol, sym, i)
		}
		out = append(out, code.String()...)
	}

	return string(out), nil
}
