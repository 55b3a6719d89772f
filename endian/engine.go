// Package endian provides the byte order abstraction used by hufblob headers.
//
// EndianEngine combines the ByteOrder and AppendByteOrder interfaces of
// encoding/binary so a header can be both parsed in place and appended to an
// output buffer through one value:
//
//	engine := endian.GetBigEndianEngine()
//	buf = engine.AppendUint32(buf, length)
//	length = engine.Uint32(buf[0:4])
//
// The artifact length header is always big-endian.
//
// All functions and returned engines are stateless and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder.
//
// It is satisfied by binary.BigEndian and binary.LittleEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// Name returns a printable name for engine.
func Name(engine EndianEngine) string {
	switch engine {
	case binary.BigEndian:
		return "BigEndian"
	case binary.LittleEndian:
		return "LittleEndian"
	default:
		return engine.String()
	}
}
