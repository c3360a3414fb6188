package tlv

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/easytlv/easytlv/endian"
	"github.com/easytlv/easytlv/errs"
)

// Two 32-bit integers, short-form tags and lengths.
var testDataShort = []byte{
	0x02, 0x04, 0x00, 0x00, 0x00, 0x2A, // 42
	0x02, 0x04, 0x00, 0x00, 0x01, 0x01, // 257
}

// buildTestDataLong returns a buffer whose first record uses an
// extended tag (0x001F8801) and a long-form length (257 bytes of
// 0x00..0xFF then 0x01), followed by a short-form record holding 257.
func buildTestDataLong() []byte {
	buf := []byte{
		0x1F, 0x88, 0x01, // extended tag
		0x82, 0x01, 0x01, // long-form length: 257
	}
	for i := 0; i < 256; i++ {
		buf = append(buf, byte(i))
	}
	buf = append(buf, 0x01)
	buf = append(buf,
		0x02,       // short tag
		0x04,       // short length
		0x00, 0x00, 0x01, 0x01,
	)

	return buf
}

func TestParse_ShortData(t *testing.T) {
	records, consumed, err := Parse(testDataShort, 4)
	require.NoError(t, err)
	require.Equal(t, len(testDataShort), consumed)
	require.Len(t, records, 2)

	engine := endian.GetBigEndianEngine()

	require.Equal(t, uint32(0x02), records[0].Tag)
	require.Equal(t, uint32(4), records[0].Len())
	v, err := records[0].Uint32(engine)
	require.NoError(t, err)
	require.Equal(t, uint32(42), v)

	require.Equal(t, uint32(0x02), records[1].Tag)
	v, err = records[1].Uint32(engine)
	require.NoError(t, err)
	require.Equal(t, uint32(257), v)
}

func TestParse_LongData(t *testing.T) {
	buf := buildTestDataLong()

	records, consumed, err := Parse(buf, 4)
	require.NoError(t, err)
	require.Equal(t, len(buf), consumed)
	require.Len(t, records, 2)

	require.Equal(t, uint32(0x001F8801), records[0].Tag)
	require.Equal(t, uint32(257), records[0].Len())
	// The value span borrows from the source at offset 6.
	require.Equal(t, buf[6:263], records[0].Value)
	require.Equal(t, &buf[6], &records[0].Value[0])

	require.Equal(t, uint32(0x02), records[1].Tag)
	require.Equal(t, uint32(4), records[1].Len())
}

func TestParse_EmptyInput(t *testing.T) {
	records, consumed, err := Parse(nil, 4)
	require.NoError(t, err)
	require.Zero(t, consumed)
	require.Empty(t, records)
}

func TestParse_CapacityExhausted(t *testing.T) {
	// Capacity exhaustion reports the records found so far, so the
	// caller can retry with more capacity.
	records, consumed, err := Parse(testDataShort, 1)
	require.ErrorIs(t, err, errs.ErrOutOfSpace)
	require.Len(t, records, 1)
	require.Equal(t, 6, consumed)
	require.Equal(t, uint32(0x02), records[0].Tag)

	records, _, err = Parse(testDataShort, 0)
	require.ErrorIs(t, err, errs.ErrOutOfSpace)
	require.Empty(t, records)
}

func TestParse_NegativeCapacity(t *testing.T) {
	_, _, err := Parse(testDataShort, -1)
	require.ErrorIs(t, err, errs.ErrBadArgument)
}

func TestParse_ValueOverrunsBuffer(t *testing.T) {
	// Declared length 4, only 1 value byte present.
	records, _, err := Parse([]byte{0x02, 0x04, 0x00}, 4)
	require.ErrorIs(t, err, errs.ErrMessageTooShort)
	require.Nil(t, records)
}

func TestParse_PropagatesDecodeErrors(t *testing.T) {
	// Zero first continuation octet in the second record's tag.
	_, _, err := Parse([]byte{0x02, 0x01, 0xAA, 0x1F, 0x00}, 4)
	require.ErrorIs(t, err, errs.ErrInvalid)

	// Record truncated after its tag: the length field would be the
	// last byte of the input.
	_, _, err = Parse([]byte{0x02, 0x01, 0xAA, 0x02, 0x01}, 4)
	require.ErrorIs(t, err, errs.ErrMessageTooShort)
}

func TestParseAll(t *testing.T) {
	buf := buildTestDataLong()

	records, consumed, err := ParseAll(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), consumed)
	require.Len(t, records, 2)
}

func TestParse_NestedValues(t *testing.T) {
	// Parsing descends one level; a value span holding TLV data is
	// parsed by a second invocation.
	inner := []byte{0x02, 0x01, 0x2A}
	outer := append([]byte{0xC1, byte(len(inner))}, inner...)

	records, _, err := ParseAll(outer)
	require.NoError(t, err)
	require.Len(t, records, 1)

	nested, _, err := ParseAll(records[0].Value)
	require.NoError(t, err)
	require.Len(t, nested, 1)
	require.Equal(t, uint32(0x02), nested[0].Tag)
	require.Equal(t, []byte{0x2A}, nested[0].Value)
}
