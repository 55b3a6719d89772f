package section

import "math"

// artifact layout
const (
	LengthFieldSize   = 4                                  // bytes 0-3: original length in symbols, big-endian
	PaddingFieldSize  = 1                                  // first byte of the packed frame
	HeaderSize        = LengthFieldSize                    // fixed artifact header size in bytes
	PackedOffset      = HeaderSize                         // byte offset where the packed frame starts
	MinArtifactSize   = LengthFieldSize + PaddingFieldSize // smallest artifact that can hold a padding header
	MaxOriginalLength = math.MaxUint32                     // largest input the length field can describe
)
