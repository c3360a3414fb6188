// Package easytlv encodes and decodes the definite-length Tag-Length-Value
// binary format of the ASN.1 Basic Encoding Rules.
//
// This package is a thin facade over the subpackages, re-exporting the
// common path. For full control, use the subpackages directly:
//
//   - tlv: the codec core (field codecs, Parse, Serialize, Find)
//   - envelope: checksummed, optionally compressed TLV containers
//   - compress: the payload compression codecs
//   - endian: byte order helpers for interpreting integer values
//   - errs: the sentinel errors returned across the module
//
// # Basic usage
//
// Parsing a buffer and reading an integer value:
//
//	records, _, err := easytlv.ParseAll(buf)
//	if err != nil {
//	    return err
//	}
//	v, err := records[0].Uint32(endian.GetBigEndianEngine())
//
// Serializing records back:
//
//	size, _ := easytlv.EncodedLen(records)
//	dst := make([]byte, size)
//	n, err := easytlv.Serialize(dst, records)
//
// Searching without materializing the record list:
//
//	rec, offset, err := easytlv.Find(0x02, buf)
//
// Records borrow their value bytes from the parsed buffer; keep the
// buffer alive and unmodified while records are in use.
package easytlv

import "github.com/easytlv/easytlv/tlv"

// Record is one decoded TLV object. See tlv.Record.
type Record = tlv.Record

// Parse walks src into at most maxRecords records. See tlv.Parse.
func Parse(src []byte, maxRecords int) ([]Record, int, error) {
	return tlv.Parse(src, maxRecords)
}

// ParseAll walks src into records without a capacity bound. See
// tlv.ParseAll.
func ParseAll(src []byte) ([]Record, int, error) {
	return tlv.ParseAll(src)
}

// Serialize encodes records into dst. See tlv.Serialize.
func Serialize(dst []byte, records []Record) (int, error) {
	return tlv.Serialize(dst, records)
}

// Find returns the first record in src with the given packed tag and
// its byte offset. See tlv.Find.
func Find(tag uint32, src []byte) (Record, int, error) {
	return tlv.Find(tag, src)
}

// EncodedLen returns the serialized size of records. See tlv.EncodedLen.
func EncodedLen(records []Record) (int, error) {
	return tlv.EncodedLen(records)
}
