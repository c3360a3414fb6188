package tlv

import "github.com/easytlv/easytlv/errs"

// Serialize encodes the records, in order, into dst and returns the
// total number of bytes written. Each record contributes its tag field,
// its length field, and its value bytes verbatim; destination capacity
// is checked before every write.
//
// On failure the destination's contents past the failure point are
// unspecified: partial writes are not rolled back and callers must not
// assume atomicity. Size dst with EncodedLen to avoid partial output.
//
// The running output total is tracked in 32 bits and wrapping it
// reports errs.ErrOverflow, guarding against record sequences whose
// encoded size cannot be represented.
//
// Errors:
//   - errs.ErrOutOfSpace: dst capacity insufficient
//   - errs.ErrBadArgument: a record with a zero-length value
//   - errs.ErrInvalid: a record whose tag cannot be encoded
//   - errs.ErrOverflow: the 32-bit output total wrapped
func Serialize(dst []byte, records []Record) (int, error) {
	var total uint32
	pos := 0
	for _, rec := range records {
		n, err := EncodeTag(dst[pos:], rec.Tag)
		if err != nil {
			return 0, err
		}
		pos += n
		if total+uint32(n) < total {
			return 0, errs.ErrOverflow
		}
		total += uint32(n)

		n, err = EncodeLength(dst[pos:], rec.Len())
		if err != nil {
			return 0, err
		}
		pos += n
		if total+uint32(n) < total {
			return 0, errs.ErrOverflow
		}
		total += uint32(n)

		if len(dst)-pos < len(rec.Value) {
			return 0, errs.ErrOutOfSpace
		}
		pos += copy(dst[pos:], rec.Value)
		if total+rec.Len() < total {
			return 0, errs.ErrOverflow
		}
		total += rec.Len()
	}

	return pos, nil
}
