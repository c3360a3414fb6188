package compress

// NoOpCodec passes payloads through untouched. Useful for
// pre-compressed values and for measuring container overhead without
// compression in the way.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// Compress returns data as-is, sharing the input's memory.
func (NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as-is, sharing the input's memory.
func (NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
