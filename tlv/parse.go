package tlv

import (
	"math"

	"github.com/easytlv/easytlv/errs"
)

// Parse walks src end to end and returns the ordered sequence of
// records it contains, together with the number of bytes consumed
// (equal to len(src) on full success). The records' Value spans borrow
// from src and are never copied.
//
// maxRecords bounds the sequence: when src holds more records than
// that, Parse returns the first maxRecords records, the bytes consumed
// up to that point, and errs.ErrOutOfSpace. The partial result lets a
// caller count tokens and retry with a larger capacity. A hard decode
// failure, by contrast, discards all records and returns only the
// error.
//
// Parsing descends one level: a record's value may itself be TLV data,
// in which case Parse can be invoked again on that span. An empty src
// yields an empty sequence and no error.
//
// Errors:
//   - errs.ErrBadArgument: maxRecords is negative
//   - errs.ErrOutOfSpace: record capacity exhausted (partial result)
//   - errs.ErrMessageTooShort: a value span extends past the end of src
//   - any tag or length decode error, verbatim
func Parse(src []byte, maxRecords int) ([]Record, int, error) {
	if maxRecords < 0 {
		return nil, 0, errs.ErrBadArgument
	}

	records := make([]Record, 0, min(maxRecords, 16))

	pos := 0
	for pos < len(src) {
		if len(records) >= maxRecords {
			return records, pos, errs.ErrOutOfSpace
		}

		tag, n, err := DecodeTag(src[pos:])
		if err != nil {
			return nil, 0, err
		}
		pos += n

		length, n, err := DecodeLength(src[pos:])
		if err != nil {
			return nil, 0, err
		}
		pos += n

		end := pos + int(length)
		if end > len(src) {
			return nil, 0, errs.ErrMessageTooShort
		}

		records = append(records, Record{Tag: tag, Value: src[pos:end:end]})
		pos = end
	}

	return records, pos, nil
}

// ParseAll is Parse without a record bound. It never returns
// errs.ErrOutOfSpace.
func ParseAll(src []byte) ([]Record, int, error) {
	return Parse(src, math.MaxInt)
}
