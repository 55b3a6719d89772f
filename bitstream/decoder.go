package bitstream

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"

	"github.com/arloliu/hufblob/errs"
	"github.com/arloliu/hufblob/huffman"
)

// Decoded is the result of decoding a frame.
type Decoded struct {
	Data        []byte
	Tree        *huffman.Tree
	Table       *huffman.CodeTable
	Padding     uint8
	TreeBits    int
	PayloadBits int
}

// Decode unpacks a frame produced by Encode and returns the first
// originalLength decoded symbols.
func Decode(packed []byte, originalLength uint32) ([]byte, error) {
	d, err := DecodeFrame(packed, originalLength)
	if err != nil {
		return nil, err
	}

	return d.Data, nil
}

// DecodeFrame unpacks a frame and reports its layout along with the data.
//
// Errors:
//   - errs.ErrTruncated: fewer than 8 bits, so no padding header
//   - errs.ErrCorrupt: padding exceeds the remaining bits, the tree is
//     invalid, a bit sequence matches no code, or fewer than originalLength
//     symbols could be decoded
func DecodeFrame(packed []byte, originalLength uint32) (*Decoded, error) {
	if len(packed) < 1 {
		return nil, fmt.Errorf("%w: missing padding header", errs.ErrTruncated)
	}

	padding := packed[0]
	remaining := (len(packed) - 1) * 8
	if int(padding) > remaining {
		return nil, fmt.Errorf("%w: padding %d exceeds %d payload bits", errs.ErrCorrupt, padding, remaining)
	}

	lr := &limitedReader{
		r:    bitio.NewReader(bytes.NewReader(packed[1:])),
		left: remaining - int(padding),
	}
	bodyBits := lr.left

	tree, err := huffman.ReadTree(lr)
	if err != nil {
		return nil, err
	}
	table := huffman.GenerateCodeTable(tree)
	treeBits := bodyBits - lr.left
	payloadBits := lr.left

	data, err := decodeSymbols(lr, table, originalLength)
	if err != nil {
		return nil, err
	}

	return &Decoded{
		Data:        data,
		Tree:        tree,
		Table:       table,
		Padding:     padding,
		TreeBits:    treeBits,
		PayloadBits: payloadBits,
	}, nil
}

// decodeSymbols accumulates bits until the accumulated prefix equals a code,
// emits that code's symbol and starts over, until lr is exhausted.
func decodeSymbols(lr *limitedReader, table *huffman.CodeTable, originalLength uint32) ([]byte, error) {
	// every symbol takes at least one bit
	out := make([]byte, 0, min(uint64(originalLength), uint64(lr.left)))

	var acc huffman.Code
	maxSize := table.MaxSize()
	for lr.left > 0 {
		bit, err := lr.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("%w: reading payload: %w", errs.ErrCorrupt, err)
		}

		acc = acc.Append(bit)
		if sym, ok := table.Decode(acc); ok {
			out = append(out, sym)
			acc = huffman.Code{}

			continue
		}
		if acc.Size >= maxSize {
			return nil, fmt.Errorf("%w: bit sequence %s matches no code", errs.ErrCorrupt, acc)
		}
	}

	if uint64(len(out)) < uint64(originalLength) {
		return nil, fmt.Errorf("%w: decoded %d of %d symbols", errs.ErrCorrupt, len(out), originalLength)
	}

	return out[:originalLength], nil
}
