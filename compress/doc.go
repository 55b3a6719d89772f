// Package compress exposes the Huffman artifact codec alongside general
// purpose baseline codecs behind one interface, so they can be compared on
// the same input.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
//   - Huffman (format.CompressionHuffman): the hufblob artifact format. Output
//     is self-describing and starts with a 4-byte length header. Empty input
//     is rejected with errs.ErrEmptyInput.
//   - None (format.CompressionNone): returns the input unchanged; the size
//     baseline.
//   - Zstd (format.CompressionZstd): klauspost/compress/zstd with pooled
//     encoders and decoders.
//   - S2 (format.CompressionS2): klauspost/compress/s2 block format.
//   - LZ4 (format.CompressionLZ4): pierrec/lz4 block format.
//
// Huffman coding only exploits the symbol distribution of an input, so on
// text with repeated phrases the dictionary coders usually win. On short or
// skewed inputs with no repetition Huffman is often competitive.
//
// # Comparing Codecs
//
//	for _, ct := range compress.Builtin() {
//	    stats, err := compress.Measure(ct, data)
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Printf("%-8s %6.2f%%\n", ct, stats.SpaceSavings())
//	}
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use. Codecs returned by
// GetCodec are shared instances.
package compress
