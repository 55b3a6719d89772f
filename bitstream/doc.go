// Package bitstream packs a Huffman-coded symbol sequence into bytes and
// unpacks it again.
//
// A packed frame is a bit string grouped eight bits at a time, most
// significant bit first:
//
//	+----------------+-----------+-----------+---------------+
//	| paddingCount:8 | tree bits | code bits | paddingCount  |
//	|                |           |           | zero bits     |
//	+----------------+-----------+-----------+---------------+
//
// The tree bits are the pre-order serialisation written by huffman.WriteTree,
// so a frame can be decoded without any state from the encoding side. The
// code bits are the codes of the input symbols concatenated in input order.
//
// paddingCount is the number of zero bits that bring the frame to a byte
// boundary. Under format.PaddingAlwaysFull a stream that is already aligned
// still receives a full byte of padding; under format.PaddingMinimal it
// receives none. Decode trusts the header field, so it reads frames produced
// under either policy.
package bitstream
