package bitstream

import "github.com/arloliu/hufblob/format"

// PaddingFor returns the number of zero bits appended after bits body bits.
//
// PaddingAlwaysFull returns 1..8, PaddingMinimal returns 0..7.
func PaddingFor(bits int, policy format.PaddingPolicy) uint8 {
	rem := uint8(bits % 8) //nolint: gosec

	if policy == format.PaddingMinimal {
		return (8 - rem) % 8
	}

	return 8 - rem
}
