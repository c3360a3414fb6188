package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	order := CheckEndianness()
	require.Contains(t, []binary.ByteOrder{binary.BigEndian, binary.LittleEndian}, order)

	// Exactly one of the two predicates holds.
	require.NotEqual(t, IsNativeBigEndian(), IsNativeLittleEndian())
}

func TestEngines(t *testing.T) {
	big := GetBigEndianEngine()
	require.Equal(t, uint32(257), big.Uint32([]byte{0x00, 0x00, 0x01, 0x01}))
	require.Equal(t, []byte{0x00, 0x00, 0x01, 0x01}, big.AppendUint32(nil, 257))

	little := GetLittleEndianEngine()
	require.Equal(t, uint32(257), little.Uint32([]byte{0x01, 0x01, 0x00, 0x00}))
}
