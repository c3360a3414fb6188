package compress

import "github.com/klauspost/compress/s2"

// S2Codec compresses payloads with S2, the Snappy-compatible format
// tuned for speed. The fastest option here; prefer it when payloads are
// short-lived and throughput matters more than ratio.
type S2Codec struct{}

var _ Codec = (*S2Codec)(nil)

// Compress compresses data as a single S2 block stream.
func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes an S2 stream produced by Compress.
func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
