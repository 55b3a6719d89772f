package compress

import (
	"github.com/arloliu/hufblob"
	"github.com/arloliu/hufblob/format"
)

// HuffmanCompressor adapts the hufblob artifact codec to the Codec interface.
type HuffmanCompressor struct {
	opts []hufblob.Option
}

var _ Codec = (*HuffmanCompressor)(nil)

// NewHuffmanCompressor creates a Huffman codec. The options are applied to
// every Compress call.
func NewHuffmanCompressor(opts ...hufblob.Option) HuffmanCompressor {
	return HuffmanCompressor{opts: opts}
}

// Compress encodes data into a self-describing artifact. Unlike the other
// codecs an empty input is an error (errs.ErrEmptyInput).
func (c HuffmanCompressor) Compress(data []byte) ([]byte, error) {
	return hufblob.Compress(data, c.opts...)
}

// Decompress restores the bytes stored in an artifact.
func (c HuffmanCompressor) Decompress(data []byte) ([]byte, error) {
	return hufblob.Decompress(data)
}

// Type returns format.CompressionHuffman.
func (c HuffmanCompressor) Type() format.CompressionType {
	return format.CompressionHuffman
}
