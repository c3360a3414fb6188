package tlv

import "github.com/easytlv/easytlv/errs"

// minSize returns the minimum number of bytes required to represent v.
func minSize(v uint32) int {
	n := 0
	for v != 0 {
		v >>= 8
		n++
	}

	return n
}

// DecodeLength decodes the length field at the start of src and returns
// the length value together with the number of bytes consumed.
//
// A first byte with the high bit clear is a complete short-form length
// (0-127). Otherwise the low 7 bits give the count N of big-endian
// length bytes that follow; N is capped at 4, and a 4-byte length must
// keep the high bit of its most significant byte clear so the value
// fits a signed 32-bit quantity.
//
// A length field may not be the last byte of the available input: at
// least one byte must remain past the field, even when the decoded
// length is 0. The reference encoding depends on this rule, so it is
// preserved as-is.
//
// Errors:
//   - errs.ErrNoData: src is empty
//   - errs.ErrInvalid: reserved marker byte 0xFF
//   - errs.ErrOverflow: more than 4 length bytes, or a 4-byte length
//     with its top bit set
//   - errs.ErrMessageTooShort: src ends inside the field or right after
//     it
func DecodeLength(src []byte) (uint32, int, error) {
	if len(src) == 0 {
		return 0, 0, errs.ErrNoData
	}

	first := src[0]

	var length uint32
	n := 1
	if first&0x80 != 0 { // long form
		if first == 0xFF {
			return 0, 0, errs.ErrInvalid
		}

		count := int(first & 0x7F)
		if count > 4 {
			return 0, 0, errs.ErrOverflow
		}
		if 1+count > len(src) {
			return 0, 0, errs.ErrMessageTooShort
		}
		if count == 4 && src[1]&0x80 != 0 {
			return 0, 0, errs.ErrOverflow
		}

		for i := 1; i <= count; i++ {
			length = length<<8 | uint32(src[i])
		}
		n += count
	} else { // short form
		length = uint32(first)
	}

	if n >= len(src) {
		return 0, 0, errs.ErrMessageTooShort
	}

	return length, n, nil
}

// EncodeLength writes the length field for the given value into dst and
// returns the number of bytes written. The encoding is always minimal:
// short form for values up to 127, otherwise a marker byte 0x80|n
// followed by the n (1-4) big-endian value bytes.
//
// A length of 0 is rejected with errs.ErrBadArgument; this codec cannot
// express a zero-length value. Insufficient destination capacity
// returns errs.ErrOutOfSpace.
func EncodeLength(dst []byte, length uint32) (int, error) {
	if length == 0 {
		return 0, errs.ErrBadArgument
	}
	if len(dst) == 0 {
		return 0, errs.ErrOutOfSpace
	}

	if length <= 0x7F { // short form
		dst[0] = byte(length)

		return 1, nil
	}

	n := minSize(length)
	if len(dst) < 1+n {
		return 0, errs.ErrOutOfSpace
	}

	dst[0] = 0x80 | byte(n)

	v := trimLeadingZeros(length)
	for i := 1; i <= n; i++ {
		dst[i] = byte(v >> 24)
		v <<= 8
	}

	return 1 + n, nil
}

// encodedLengthLen returns the byte count EncodeLength would emit.
func encodedLengthLen(length uint32) (int, error) {
	if length == 0 {
		return 0, errs.ErrBadArgument
	}
	if length <= 0x7F {
		return 1, nil
	}

	return 1 + minSize(length), nil
}
