package hufblob

import (
	"fmt"

	"github.com/arloliu/hufblob/bitstream"
	"github.com/arloliu/hufblob/huffman"
	"github.com/arloliu/hufblob/internal/hash"
	"github.com/arloliu/hufblob/section"
)

// Info describes the layout of an artifact.
type Info struct {
	// OriginalLength is the declared input length in bytes.
	OriginalLength uint32
	// ArtifactSize is the artifact size in bytes.
	ArtifactSize int
	// Padding is the number of padding bits at the end of the frame.
	Padding uint8
	// TreeBits is the size of the embedded tree.
	TreeBits int
	// PayloadBits is the size of the coded data.
	PayloadBits int
	// Table is the code table rebuilt from the embedded tree.
	Table *huffman.CodeTable
	// Checksum is the xxHash64 digest of the decoded data.
	Checksum uint64
}

// Ratio returns ArtifactSize / OriginalLength, or 0 for an empty input.
func (i *Info) Ratio() float64 {
	if i.OriginalLength == 0 {
		return 0
	}

	return float64(i.ArtifactSize) / float64(i.OriginalLength)
}

// SpaceSavings returns the space saved as a percentage of the original size.
func (i *Info) SpaceSavings() float64 {
	return (1.0 - i.Ratio()) * 100.0
}

// Inspect fully decodes artifact and reports its layout. It fails with the
// same errors as Decompress.
func Inspect(artifact []byte) (*Info, error) {
	header, packed, err := section.SplitArtifact(artifact)
	if err != nil {
		return nil, fmt.Errorf("inspect: %w", err)
	}

	d, err := bitstream.DecodeFrame(packed, header.OriginalLength)
	if err != nil {
		return nil, fmt.Errorf("inspect: %w", err)
	}

	return &Info{
		OriginalLength: header.OriginalLength,
		ArtifactSize:   len(artifact),
		Padding:        d.Padding,
		TreeBits:       d.TreeBits,
		PayloadBits:    d.PayloadBits,
		Table:          d.Table,
		Checksum:       hash.Checksum(d.Data),
	}, nil
}
