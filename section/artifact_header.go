package section

import (
	"fmt"

	"github.com/arloliu/hufblob/endian"
	"github.com/arloliu/hufblob/errs"
)

// ArtifactHeader is the fixed 4-byte header at the start of every artifact.
type ArtifactHeader struct {
	// OriginalLength is the input length in symbols (bytes), offset 0-3.
	OriginalLength uint32
}

// NewArtifactHeader creates a header for an input of n symbols.
func NewArtifactHeader(n int) (*ArtifactHeader, error) {
	if n < 0 || uint64(n) > MaxOriginalLength {
		return nil, fmt.Errorf("%w: %d symbols, max %d", errs.ErrInputTooLarge, n, uint64(MaxOriginalLength))
	}

	return &ArtifactHeader{OriginalLength: uint32(n)}, nil //nolint: gosec
}

// Parse parses the header from the first HeaderSize bytes of data.
// It returns errs.ErrTruncated if data is shorter than HeaderSize.
func (h *ArtifactHeader) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: %d bytes, need %d for the length header", errs.ErrTruncated, len(data), HeaderSize)
	}

	h.OriginalLength = h.GetEndianEngine().Uint32(data[0:LengthFieldSize])

	return nil
}

// Bytes serializes the header into a new byte slice.
func (h *ArtifactHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to buf.
func (h *ArtifactHeader) AppendTo(buf []byte) []byte {
	return h.GetEndianEngine().AppendUint32(buf, h.OriginalLength)
}

// GetEndianEngine returns the engine used for the header. The length field is
// always big-endian.
func (h *ArtifactHeader) GetEndianEngine() endian.EndianEngine {
	return endian.GetBigEndianEngine()
}

// SplitArtifact parses the header of data and returns it together with the
// packed frame that follows it.
//
// It returns errs.ErrTruncated if the artifact cannot hold the length header
// and at least the 8-bit padding header.
func SplitArtifact(data []byte) (ArtifactHeader, []byte, error) {
	var h ArtifactHeader
	if err := h.Parse(data); err != nil {
		return ArtifactHeader{}, nil, err
	}

	if len(data) < MinArtifactSize {
		return ArtifactHeader{}, nil, fmt.Errorf("%w: no payload after the length header", errs.ErrTruncated)
	}

	return h, data[PackedOffset:], nil
}

// AssembleArtifact concatenates the header and the packed frame.
func AssembleArtifact(h *ArtifactHeader, packed []byte) []byte {
	out := make([]byte, 0, HeaderSize+len(packed))
	out = h.AppendTo(out)

	return append(out, packed...)
}
