// Package section defines the byte layout of a hufblob artifact.
//
// An artifact is a fixed 4-byte length header followed by the packed frame
// produced by package bitstream:
//
//	┌──────────────────────────────────────────────┐
//	│ OriginalLength (4 bytes, big-endian uint32)  │
//	├──────────────────────────────────────────────┤
//	│ Packed frame (>= 1 byte)                     │
//	│  - paddingCount (1 byte)                     │
//	│  - pre-order Huffman tree                    │
//	│  - concatenated codes                        │
//	│  - paddingCount zero bits                    │
//	└──────────────────────────────────────────────┘
//
// The package only splits and assembles the outer layer; the bit-level frame
// is owned by bitstream.
package section
