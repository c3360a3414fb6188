package tlv

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/easytlv/easytlv/endian"
	"github.com/easytlv/easytlv/errs"
)

func TestFind_ShortTagAfterLongRecord(t *testing.T) {
	buf := buildTestDataLong()

	rec, offset, err := Find(0x02, buf)
	require.NoError(t, err)
	require.Equal(t, 263, offset)
	require.Equal(t, uint32(0x02), rec.Tag)
	require.Equal(t, uint32(4), rec.Len())

	v, err := rec.Uint32(endian.GetBigEndianEngine())
	require.NoError(t, err)
	require.Equal(t, uint32(257), v)
}

func TestFind_ExtendedTag(t *testing.T) {
	buf := buildTestDataLong()

	rec, offset, err := Find(0x001F8801, buf)
	require.NoError(t, err)
	require.Zero(t, offset)
	require.Equal(t, uint32(257), rec.Len())
	require.Equal(t, &buf[6], &rec.Value[0])
}

func TestFind_FirstMatchWins(t *testing.T) {
	rec, offset, err := Find(0x02, testDataShort)
	require.NoError(t, err)
	require.Zero(t, offset)

	v, err := rec.Uint32(endian.GetBigEndianEngine())
	require.NoError(t, err)
	require.Equal(t, uint32(42), v)
}

func TestFind_NotFound(t *testing.T) {
	_, _, err := Find(0x05, testDataShort)
	require.ErrorIs(t, err, errs.ErrNotFound)

	_, _, err = Find(0x02, nil)
	require.ErrorIs(t, err, errs.ErrNotFound)

	// A skipped record whose value overruns the buffer exhausts the
	// walk without a match.
	_, _, err = Find(0x02, []byte{0x01, 0x05, 0xAA})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestFind_PropagatesDecodeErrors(t *testing.T) {
	_, _, err := Find(0x02, []byte{0x1F, 0x00})
	require.ErrorIs(t, err, errs.ErrInvalid)
}

func TestFind_MatchedValueOverrunsBuffer(t *testing.T) {
	_, _, err := Find(0x02, []byte{0x02, 0x05, 0xAA})
	require.ErrorIs(t, err, errs.ErrMessageTooShort)
}
