// Package errs defines the sentinel errors returned by the easytlv
// packages.
//
// All errors are plain sentinel values and should be tested with
// errors.Is. Functions that add context wrap these sentinels with
// fmt.Errorf("...: %w", err), so errors.Is keeps working across package
// boundaries.
package errs

import "errors"

// Codec errors. Each corresponds to one failure kind of the TLV core;
// a given call returns exactly one of them.
var (
	// ErrBadArgument indicates an invalid caller-supplied argument, such
	// as a negative capacity or a zero-length value passed to the length
	// encoder.
	ErrBadArgument = errors.New("bad argument")

	// ErrOverflow indicates a tag or length whose decoded form exceeds
	// 32 bits, or a serialized-size accumulator that wrapped.
	ErrOverflow = errors.New("overflow detected")

	// ErrOutOfSpace indicates an insufficient destination buffer or an
	// exhausted record capacity.
	ErrOutOfSpace = errors.New("not enough space")

	// ErrInvalid indicates a malformed tag or length field, such as a
	// reserved marker byte or a zero first continuation octet.
	ErrInvalid = errors.New("invalid TLV data")

	// ErrMessageTooShort indicates that a declared or implied size
	// exceeds the remaining input.
	ErrMessageTooShort = errors.New("TLV data exceeds provided size")

	// ErrNoData indicates a zero-length input where at least one byte
	// was required.
	ErrNoData = errors.New("no data provided")

	// ErrNotFound indicates that no record with the requested tag exists
	// in the searched buffer.
	ErrNotFound = errors.New("no matching record found")
)

// Envelope errors.
var (
	// ErrChecksumMismatch indicates that an envelope payload does not
	// match its recorded checksum.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrUnknownCodec indicates an unrecognized compression codec
	// identifier.
	ErrUnknownCodec = errors.New("unknown compression codec")
)
