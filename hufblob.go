// Package hufblob provides a lossless, self-describing Huffman codec for
// in-memory byte slices.
//
// Compress turns an input into an artifact; Decompress restores it exactly.
// An artifact carries everything needed to decode it, so the two calls do not
// have to share any state and may run in different processes.
//
// # Basic Usage
//
//	artifact, err := hufblob.Compress(data)
//	if err != nil {
//	    return err // errs.ErrEmptyInput for an empty input
//	}
//
//	restored, err := hufblob.Decompress(artifact)
//	if err != nil {
//	    return err // errs.ErrTruncated or errs.ErrCorrupt
//	}
//
// # Artifact Layout
//
//	bytes 0-3   original length in bytes, big-endian uint32
//	bytes 4...  packed frame, most significant bit first:
//	              paddingCount (8 bits)
//	              pre-order Huffman tree
//	              concatenated codes of the input bytes
//	              paddingCount zero bits
//
// By default a byte-aligned frame still receives a full byte of padding.
// WithPaddingPolicy(format.PaddingMinimal) drops that byte; Decompress reads
// both.
//
// # Symbols
//
// Symbols are raw bytes. CompressString and DecompressString work on the
// UTF-8 bytes of a string, and the length header counts bytes, not runes.
//
// # Thread Safety
//
// Compress, Decompress and Inspect keep all working state local to the call
// and are safe for concurrent use.
package hufblob

import (
	"fmt"

	"github.com/arloliu/hufblob/bitstream"
	"github.com/arloliu/hufblob/errs"
	"github.com/arloliu/hufblob/huffman"
	"github.com/arloliu/hufblob/internal/hash"
	"github.com/arloliu/hufblob/section"
)

// Compress encodes data into a self-describing Huffman artifact.
//
// Returns errs.ErrEmptyInput if data is empty and errs.ErrInputTooLarge if
// its length does not fit the 32-bit length header. No artifact is returned
// on error.
func Compress(data []byte, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("compress: %w", errs.ErrEmptyInput)
	}

	header, err := section.NewArtifactHeader(len(data))
	if err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}

	freqs := huffman.Analyze(data)
	tree, err := huffman.BuildTree(freqs)
	if err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	table := huffman.GenerateCodeTable(tree)

	frame, err := bitstream.Encode(data, tree, table, cfg.padding)
	if err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}

	artifact := section.AssembleArtifact(header, frame.Packed)

	if cfg.verify {
		if err := verify(artifact, data); err != nil {
			return nil, err
		}
	}

	return artifact, nil
}

// Decompress restores the original bytes from an artifact produced by Compress.
//
// Returns errs.ErrTruncated if the artifact is too short to hold the length
// and padding headers, and errs.ErrCorrupt if it is structurally inconsistent.
func Decompress(artifact []byte) ([]byte, error) {
	header, packed, err := section.SplitArtifact(artifact)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}

	data, err := bitstream.Decode(packed, header.OriginalLength)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}

	return data, nil
}

// CompressString compresses the UTF-8 bytes of s.
func CompressString(s string, opts ...Option) ([]byte, error) {
	return Compress([]byte(s), opts...)
}

// DecompressString decompresses an artifact into a string.
func DecompressString(artifact []byte) (string, error) {
	data, err := Decompress(artifact)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// verify decodes artifact again and compares digests with the input.
func verify(artifact []byte, data []byte) error {
	decoded, err := Decompress(artifact)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	if want, got := hash.Checksum(data), hash.Checksum(decoded); want != got || len(decoded) != len(data) {
		return fmt.Errorf("verify: %w: want %016x, got %016x", errs.ErrChecksumMismatch, want, got)
	}

	return nil
}
