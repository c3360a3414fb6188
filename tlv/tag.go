package tlv

import "github.com/easytlv/easytlv/errs"

// extendedTagMarker is the low-5-bit pattern that switches the tag
// field to its extended, multi-byte form.
const extendedTagMarker = 0x1F

// trimLeadingZeros left-shifts v until its most significant byte is
// non-zero.
func trimLeadingZeros(v uint32) uint32 {
	for v <= 0x00FFFFFF {
		v <<= 8
	}

	return v
}

// DecodeTag decodes the tag field at the start of src and returns the
// packed tag value together with the number of bytes consumed.
//
// A first byte whose low 5 bits are <= 30 is a complete single-byte
// tag. Otherwise the tag is extended: the marker byte and every
// following byte are packed, big-endian, into the result, and the field
// ends at the first byte whose high (continuation) bit is clear.
//
// Errors:
//   - errs.ErrNoData: src is empty
//   - errs.ErrInvalid: extended form with fewer than 2 bytes available,
//     or a zero first continuation byte
//   - errs.ErrOverflow: the packed tag exceeds 32 bits
//   - errs.ErrMessageTooShort: src ends before a terminating byte
func DecodeTag(src []byte) (uint32, int, error) {
	if len(src) == 0 {
		return 0, 0, errs.ErrNoData
	}

	first := src[0]
	if first&0x1F != extendedTagMarker {
		return uint32(first), 1, nil
	}

	// First subsequent octet must not be 0.
	if len(src) < 2 || src[1] == 0 {
		return 0, 0, errs.ErrInvalid
	}

	tag := uint32(first)
	n := 1
	for {
		if n >= len(src) {
			return 0, 0, errs.ErrMessageTooShort
		}
		// Packing another octet would shift the top octet out.
		if tag&0xFF000000 != 0 {
			return 0, 0, errs.ErrOverflow
		}

		b := src[n]
		tag = tag<<8 | uint32(b)
		n++

		if b&0x80 == 0 { // last octet clears the continuation bit
			return tag, n, nil
		}
	}
}

// EncodeTag writes the tag field for the packed tag value into dst and
// returns the number of bytes written.
//
// A value <= 0xFF is written as a single byte and must not have all of
// its low 5 bits set. A larger value is written in extended form: after
// discarding leading zero octets, its top octet must carry the 0x1F
// marker (the caller packs tags exactly as DecodeTag returns them), and
// octets are emitted most-significant first until only zero octets
// remain. Trailing zero octets are therefore omitted; a packed tag with
// internal zero octets does not round-trip. This mirrors the reference
// encoder and is intentional.
//
// Errors:
//   - errs.ErrOutOfSpace: dst cannot hold the encoded field
//   - errs.ErrInvalid: a single-byte value with the extended marker set,
//     or an extended value whose top octet lacks the marker
func EncodeTag(dst []byte, tag uint32) (int, error) {
	if len(dst) == 0 {
		return 0, errs.ErrOutOfSpace
	}

	if tag <= 0xFF { // short form
		if tag&0x1F == extendedTagMarker {
			return 0, errs.ErrInvalid
		}

		dst[0] = byte(tag)

		return 1, nil
	}

	v := trimLeadingZeros(tag)
	if (v>>24)&0x1F != extendedTagMarker {
		return 0, errs.ErrInvalid
	}

	n := 0
	for v > 0x00FFFFFF {
		if n >= len(dst) {
			return 0, errs.ErrOutOfSpace
		}

		dst[n] = byte(v >> 24)
		v <<= 8
		n++
	}

	return n, nil
}

// encodedTagLen returns the byte count EncodeTag would emit for tag.
func encodedTagLen(tag uint32) (int, error) {
	if tag <= 0xFF {
		if tag&0x1F == extendedTagMarker {
			return 0, errs.ErrInvalid
		}

		return 1, nil
	}

	v := trimLeadingZeros(tag)
	if (v>>24)&0x1F != extendedTagMarker {
		return 0, errs.ErrInvalid
	}

	n := 0
	for v > 0x00FFFFFF {
		v <<= 8
		n++
	}

	return n, nil
}
