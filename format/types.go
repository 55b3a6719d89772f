package format

type (
	CompressionType uint8
	PaddingPolicy   uint8
)

const (
	CompressionNone    CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd    CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2      CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4     CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionHuffman CompressionType = 0x5 // CompressionHuffman represents the hufblob Huffman container.

	// PaddingAlwaysFull appends 1..8 zero bits, a full byte when the stream is already aligned.
	PaddingAlwaysFull PaddingPolicy = 0x1
	// PaddingMinimal appends 0..7 zero bits.
	PaddingMinimal PaddingPolicy = 0x2
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionHuffman:
		return "Huffman"
	default:
		return "Unknown"
	}
}

func (p PaddingPolicy) String() string {
	switch p {
	case PaddingAlwaysFull:
		return "AlwaysFull"
	case PaddingMinimal:
		return "Minimal"
	default:
		return "Unknown"
	}
}

// IsValid reports whether p is a known padding policy.
func (p PaddingPolicy) IsValid() bool {
	return p == PaddingAlwaysFull || p == PaddingMinimal
}
