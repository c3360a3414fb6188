package tlv

import "github.com/easytlv/easytlv/errs"

// Find scans src for the first record whose packed tag equals tag and
// returns that record together with the byte offset where its tag field
// begins. Unlike Parse it materializes nothing along the way: each
// skipped record costs one tag and one length decode, and its value
// bytes are stepped over, not scanned.
//
// The returned record's Value borrows from src, exactly as with Parse.
//
// Errors:
//   - errs.ErrNotFound: the buffer is exhausted with no match
//   - errs.ErrMessageTooShort: the matching record's value span extends
//     past the end of src
//   - any tag or length decode error hit before a match, verbatim
func Find(tag uint32, src []byte) (Record, int, error) {
	pos := 0
	for pos < len(src) {
		offset := pos

		found, n, err := DecodeTag(src[pos:])
		if err != nil {
			return Record{}, 0, err
		}
		pos += n

		length, n, err := DecodeLength(src[pos:])
		if err != nil {
			return Record{}, 0, err
		}
		pos += n

		if found == tag {
			end := pos + int(length)
			if end > len(src) {
				return Record{}, 0, errs.ErrMessageTooShort
			}

			return Record{Tag: found, Value: src[pos:end:end]}, offset, nil
		}

		pos += int(length)
	}

	return Record{}, 0, errs.ErrNotFound
}
