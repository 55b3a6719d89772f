package huffman

import (
	"fmt"
	"strconv"
)

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size uint8

	// Bits holds the actual values of the bits. The first bit of the code is
	// the most significant of the Size low-order bits, which matches the
	// order in which bits are packed into bytes.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size uint8, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// ParseCode builds a Code from a string of '0' and '1' characters.
func ParseCode(s string) (Code, error) {
	if len(s) > MaxCodeSize {
		return Code{}, fmt.Errorf("code %q longer than %d bits", s, MaxCodeSize)
	}

	var c Code
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			c = c.Append(false)
		case '1':
			c = c.Append(true)
		default:
			return Code{}, fmt.Errorf("invalid bit %q in code %q", s[i], s)
		}
	}

	return c, nil
}

// Append returns c extended by one bit.
func (c Code) Append(bit bool) Code {
	c.Bits <<= 1
	if bit {
		c.Bits |= 1
	}
	c.Size++

	return c
}

// HasPrefix reports whether p is a prefix of c.
func (c Code) HasPrefix(p Code) bool {
	if p.Size > c.Size {
		return false
	}

	return c.Bits>>(c.Size-p.Size) == p.Bits
}

// String returns the bits of c as a string of '0' and '1' characters.
func (c Code) String() string {
	if c.Size == 0 {
		return ""
	}
	format := "%0" + strconv.FormatUint(uint64(c.Size), 10) + "b"

	return fmt.Sprintf(format, c.Bits)
}

var _ fmt.Stringer = Code{}
