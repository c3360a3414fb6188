// Package endian provides byte order utilities for interpreting TLV
// value payloads.
//
// The TLV wire format itself is endian-neutral: tag and length fields
// are defined bit by bit, and value bytes are opaque. Byte order only
// matters when a caller interprets a value span as a multi-byte integer,
// which is why this package lives next to the codec rather than inside
// it. Integer values on the wire are conventionally big-endian (network
// order); use GetBigEndianEngine for those, and CheckEndianness when the
// host order itself is the question.
//
// EndianEngine combines ByteOrder and AppendByteOrder from
// encoding/binary, so binary.BigEndian and binary.LittleEndian satisfy
// it directly. Engines are stateless and safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine is the byte order contract used by the value helpers:
// encoding/binary's ByteOrder and AppendByteOrder in one interface.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness probes the host's native byte order with a fixed
// 16-bit pattern.
func CheckEndianness() binary.ByteOrder {
	// 0x0100: a big-endian host stores the 0x01 octet first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeBigEndian reports whether the host is big-endian.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine, the conventional
// order for integer TLV values.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
