package bitstream

import (
	"io"

	"github.com/icza/bitio"
)

// limitedReader reads at most left bits from r, so trailing padding is never
// mistaken for tree or code bits.
type limitedReader struct {
	r    *bitio.Reader
	left int
}

func (lr *limitedReader) ReadBool() (bool, error) {
	if lr.left < 1 {
		return false, io.ErrUnexpectedEOF
	}
	lr.left--

	return lr.r.ReadBool()
}

func (lr *limitedReader) ReadBits(n uint8) (uint64, error) {
	if lr.left < int(n) {
		return 0, io.ErrUnexpectedEOF
	}
	lr.left -= int(n)

	return lr.r.ReadBits(n)
}
