// Package tlv implements a codec for the definite-length Tag-Length-Value
// binary encoding of the ASN.1 Basic Encoding Rules (Rec. ITU-T X.690).
//
// A buffer is a concatenation of zero or more records with no
// separators. Each record is a tag field, a length field, and exactly
// that many value bytes:
//
//   - Tag field: one byte when its low 5 bits are <= 30; otherwise an
//     extended form starting with a byte whose low 5 bits equal 31,
//     followed by continuation bytes, each carrying the high bit except
//     the last.
//   - Length field: one byte (0-127) when the high bit is clear;
//     otherwise a marker byte 0x80|N followed by N (1-4) big-endian
//     value bytes. A 4-byte length must keep its top bit clear so the
//     result fits a signed 32-bit quantity.
//   - Value field: exactly length raw bytes, no padding.
//
// The package offers three traversals over that format: Parse walks a
// buffer into an ordered record sequence, Serialize writes a record
// sequence back into a caller-supplied buffer, and Find scans for the
// first record with a given tag without materializing the rest. The
// field codecs (DecodeTag, EncodeTag, DecodeLength, EncodeLength) are
// exported for callers that frame records by hand.
//
// # Tags are packed octets, not numbers
//
// A decoded tag is the packed sequence of identifier octets, including
// the leading extended-form marker byte. Tag 0x1F8801 on the wire
// decodes to the value 0x001F8801; it is not reduced to an abstract
// "tag number". Equality between tags compares these packed values.
// Consequently the tag encoder expects extended tags to already carry
// the 0x1F marker in their top octet, and it omits trailing zero
// octets when writing (a compatibility quirk of the reference encoding;
// see EncodeTag).
//
// # Borrowed value spans
//
// Records produced by Parse and Find borrow their Value bytes from the
// source buffer. They are never copied: a record's value becomes
// invalid the moment the source buffer is mutated or released. Callers
// building records for Serialize own the backing bytes themselves.
//
// # Indefinite lengths
//
// Indefinite-length objects (X.690 section 8.1.3) are not supported,
// nor are tags or lengths wider than 32 bits. Parsing descends one
// level only; to parse nested TLV data, invoke Parse again on a
// record's value span.
//
// All functions are pure and reentrant: they operate only on their
// arguments, never block, and are safe to call concurrently as long as
// no caller mutates a shared source buffer while spans into it are
// live.
package tlv
