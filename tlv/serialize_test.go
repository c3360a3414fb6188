package tlv

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/easytlv/easytlv/errs"
)

func TestSerialize_RoundTripShortData(t *testing.T) {
	records, _, err := Parse(testDataShort, 4)
	require.NoError(t, err)

	dst := make([]byte, len(testDataShort))
	n, err := Serialize(dst, records)
	require.NoError(t, err)
	require.Equal(t, len(testDataShort), n)
	require.Equal(t, testDataShort, dst)
}

func TestSerialize_RoundTripLongData(t *testing.T) {
	buf := buildTestDataLong()

	records, _, err := Parse(buf, 4)
	require.NoError(t, err)

	size, err := EncodedLen(records)
	require.NoError(t, err)
	require.Equal(t, len(buf), size)

	dst := make([]byte, size)
	n, err := Serialize(dst, records)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, buf, dst)
}

func TestSerialize_EmptyRecords(t *testing.T) {
	n, err := Serialize(nil, nil)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestSerialize_OutOfSpace(t *testing.T) {
	records, _, err := Parse(testDataShort, 4)
	require.NoError(t, err)

	// One byte short of the second record's value.
	_, err = Serialize(make([]byte, len(testDataShort)-1), records)
	require.ErrorIs(t, err, errs.ErrOutOfSpace)

	_, err = Serialize(nil, records)
	require.ErrorIs(t, err, errs.ErrOutOfSpace)
}

func TestSerialize_ZeroLengthValue(t *testing.T) {
	// The length encoder cannot express a zero-length value.
	_, err := Serialize(make([]byte, 8), []Record{{Tag: 0x02}})
	require.ErrorIs(t, err, errs.ErrBadArgument)
}

func TestSerialize_InvalidTag(t *testing.T) {
	records := []Record{{Tag: 0x1F, Value: []byte{0x2A}}}

	_, err := Serialize(make([]byte, 8), records)
	require.ErrorIs(t, err, errs.ErrInvalid)
}
