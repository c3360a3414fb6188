package tlv

import (
	"github.com/easytlv/easytlv/endian"
	"github.com/easytlv/easytlv/errs"
)

// Record is one decoded TLV object: a packed tag and its value span.
//
// Records decoded by Parse or Find borrow Value from the source buffer;
// the span stays valid only as long as the source does. A record built
// by the caller for Serialize owns whatever bytes it references.
//
// Two records carry the same tag when their packed tag values are
// identical; no tag-class or constructed-bit interpretation is applied.
type Record struct {
	// Tag is the packed identifier octets, including the extended-form
	// marker byte when present.
	Tag uint32

	// Value is the record's payload. Its length is the record's length;
	// the zero-length case cannot be re-encoded (see EncodeLength).
	Value []byte
}

// Len returns the record's value length in bytes.
func (r Record) Len() uint32 {
	return uint32(len(r.Value))
}

// Uint32 interprets the record's value as a 32-bit integer in the given
// byte order. Wire integers are conventionally big-endian, so most
// callers pass endian.GetBigEndianEngine().
//
// Returns errs.ErrBadArgument unless the value is exactly 4 bytes.
func (r Record) Uint32(engine endian.EndianEngine) (uint32, error) {
	if len(r.Value) != 4 {
		return 0, errs.ErrBadArgument
	}

	return engine.Uint32(r.Value), nil
}

// Uint32Record builds a record whose value holds v in the given byte
// order. The 4-byte value is freshly allocated and owned by the record,
// making it safe to serialize after the source of v is gone.
func Uint32Record(tag uint32, v uint32, engine endian.EndianEngine) Record {
	return Record{Tag: tag, Value: engine.AppendUint32(nil, v)}
}

// EncodedLen returns the exact number of bytes Serialize would write
// for the given records, or the error Serialize would fail with for an
// unencodable record. Use it to size destination buffers.
func EncodedLen(records []Record) (int, error) {
	var total uint32
	for _, rec := range records {
		n, err := encodedTagLen(rec.Tag)
		if err != nil {
			return 0, err
		}

		m, err := encodedLengthLen(rec.Len())
		if err != nil {
			return 0, err
		}

		size := uint32(n) + uint32(m) + rec.Len()
		if total+size < total {
			return 0, errs.ErrOverflow
		}
		total += size
	}

	return int(total), nil
}
