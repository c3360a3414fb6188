// Package compress provides compression codecs for TLV value payloads.
//
// TLV values are opaque byte spans, and large ones (bulk records,
// nested TLV trees, archived payloads) often compress well. This
// package offers block codecs with a uniform interface so a container
// format can pick a tradeoff per payload:
//
//   - Zstd: best ratio, moderate speed; cgo-accelerated when available
//   - S2: fastest, modest ratio
//   - LZ4: fast with a balanced ratio
//   - NoOp: passthrough for pre-compressed or tiny payloads
//
// All codecs are stateless values, safe for concurrent use, and operate
// on whole payloads: the compressed output of one codec is only
// readable by the same codec.
package compress

import (
	"fmt"

	"github.com/easytlv/easytlv/errs"
)

// Type identifies a compression codec on the wire.
type Type uint8

const (
	TypeNone Type = 0x1 // no compression
	TypeZstd Type = 0x2 // Zstandard
	TypeS2   Type = 0x3 // S2 (Snappy-compatible)
	TypeLZ4  Type = 0x4 // LZ4 block format
)

// String returns the codec name for the type.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeZstd:
		return "Zstd"
	case TypeS2:
		return "S2"
	case TypeLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether t names a known codec.
func (t Type) Valid() bool {
	switch t {
	case TypeNone, TypeZstd, TypeS2, TypeLZ4:
		return true
	default:
		return false
	}
}

// Compressor compresses a whole payload.
//
// The returned slice is owned by the caller and the input is never
// modified. Codecs may return the input slice itself when no work is
// required (NoOpCodec does); callers that mutate the input afterwards
// should copy first.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor for the same codec. It validates the
// compressed framing and fails on corrupted or foreign data.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CodecFor returns the codec implementing the given type.
//
// Returns errs.ErrUnknownCodec (wrapped with the offending value) for a
// type it does not recognize.
func CodecFor(t Type) (Codec, error) {
	switch t {
	case TypeNone:
		return NoOpCodec{}, nil
	case TypeZstd:
		return ZstdCodec{}, nil
	case TypeS2:
		return S2Codec{}, nil
	case TypeLZ4:
		return LZ4Codec{}, nil
	default:
		return nil, fmt.Errorf("codec type 0x%02X: %w", uint8(t), errs.ErrUnknownCodec)
	}
}
