package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4Pool reuses lz4.Compressor instances; their internal hash tables
// benefit from staying warm across payloads.
var lz4Pool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec compresses payloads with the LZ4 block format: fast in both
// directions with a ratio between S2 and Zstd.
//
// The block format does not record the uncompressed size, so Decompress
// sizes its output adaptively starting from 4x the compressed length.
type LZ4Codec struct{}

var _ Codec = (*LZ4Codec)(nil)

// Compress compresses data as a single LZ4 block.
//
// Incompressible input yields an empty result per the block format;
// callers treating this codec as optional should fall back to storing
// the payload raw in that case.
func (LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4Pool.Get().(*lz4.Compressor)
	defer lz4Pool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decodes an LZ4 block produced by Compress.
//
// The output buffer starts at 4x the compressed size and doubles while
// the block reports a short buffer, up to a 128MB ceiling that stops
// corrupted blocks from exhausting memory.
func (LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	const maxSize = 128 * 1024 * 1024

	bufSize := len(data) * 4
	for bufSize <= maxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2

				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
