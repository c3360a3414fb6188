// Package envelope seals a byte payload into a small self-describing
// TLV container with integrity checking and optional compression.
//
// The container is a flat, definite-length TLV buffer holding three
// records in fixed order:
//
//	0xC1  codec     1 byte, the compress.Type applied to the payload
//	0xC2  checksum  8 bytes, big-endian xxHash64 of the uncompressed payload
//	0xC3  payload   the stored (possibly compressed) payload bytes
//
// Open locates records by tag rather than position, so a future layout
// may add records without breaking existing readers. The checksum
// always covers the uncompressed payload; a mismatch after
// decompression means the container or its payload was corrupted in
// transit or at rest.
package envelope

import (
	"fmt"

	"github.com/easytlv/easytlv/compress"
	"github.com/easytlv/easytlv/endian"
	"github.com/easytlv/easytlv/errs"
	"github.com/easytlv/easytlv/internal/hash"
	"github.com/easytlv/easytlv/tlv"
)

// Record tags of the sealed container.
const (
	TagCodec    uint32 = 0xC1
	TagChecksum uint32 = 0xC2
	TagPayload  uint32 = 0xC3
)

const checksumSize = 8

// Seal packs payload into a sealed container, compressing it with the
// codec named by t. When compression yields nothing or does not shrink
// the payload, the payload is stored raw and the container records
// TypeNone instead, so Open never needs to guess.
//
// The payload must be non-empty: zero-length TLV values are not
// encodable (errs.ErrBadArgument). An unrecognized codec type returns
// errs.ErrUnknownCodec.
func Seal(payload []byte, t compress.Type) ([]byte, error) {
	if len(payload) == 0 {
		return nil, errs.ErrBadArgument
	}

	codec, err := compress.CodecFor(t)
	if err != nil {
		return nil, err
	}

	stored := payload
	storedType := t
	if t != compress.TypeNone {
		compressed, err := codec.Compress(payload)
		if err != nil {
			return nil, fmt.Errorf("compress payload: %w", err)
		}
		if len(compressed) == 0 || len(compressed) >= len(payload) {
			storedType = compress.TypeNone
		} else {
			stored = compressed
		}
	}

	engine := endian.GetBigEndianEngine()
	records := []tlv.Record{
		{Tag: TagCodec, Value: []byte{byte(storedType)}},
		{Tag: TagChecksum, Value: engine.AppendUint64(nil, hash.Sum(payload))},
		{Tag: TagPayload, Value: stored},
	}

	size, err := tlv.EncodedLen(records)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, size)
	if _, err := tlv.Serialize(dst, records); err != nil {
		return nil, err
	}

	return dst, nil
}

// Open unpacks a container produced by Seal and returns the verified
// payload. The returned slice is freshly allocated when the payload was
// compressed, and borrows from data otherwise.
//
// Errors:
//   - errs.ErrNotFound: a required record is missing
//   - errs.ErrInvalid: a codec or checksum record has the wrong shape
//   - errs.ErrUnknownCodec: the recorded codec type is not recognized
//   - errs.ErrChecksumMismatch: the payload fails verification
//   - any decode error from the underlying TLV walk, verbatim
func Open(data []byte) ([]byte, error) {
	codecRec, _, err := tlv.Find(TagCodec, data)
	if err != nil {
		return nil, fmt.Errorf("locate codec record: %w", err)
	}
	if codecRec.Len() != 1 {
		return nil, errs.ErrInvalid
	}

	sumRec, _, err := tlv.Find(TagChecksum, data)
	if err != nil {
		return nil, fmt.Errorf("locate checksum record: %w", err)
	}
	if sumRec.Len() != checksumSize {
		return nil, errs.ErrInvalid
	}

	payloadRec, _, err := tlv.Find(TagPayload, data)
	if err != nil {
		return nil, fmt.Errorf("locate payload record: %w", err)
	}

	codec, err := compress.CodecFor(compress.Type(codecRec.Value[0]))
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(payloadRec.Value)
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}

	engine := endian.GetBigEndianEngine()
	if hash.Sum(payload) != engine.Uint64(sumRec.Value) {
		return nil, errs.ErrChecksumMismatch
	}

	return payload, nil
}
