package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// maxDecodedSize bounds the decoded size announced by a payload header.
const maxDecodedSize = 128 * 1024 * 1024

var errLZ4Header = errors.New("lz4: invalid length header")

// lz4CompressorPool pools lz4.Compressor instances, which keep a hash table
// between calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses with the LZ4 block format.
//
// Payload layout: uvarint(original length) followed by the LZ4 block. The
// block is replaced by the raw input when LZ4 cannot shrink it, which is
// common for short texts; the two cases are told apart by the block length.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress encodes data. Empty input yields nil.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	header := binary.AppendUvarint(nil, uint64(len(data)))
	dst := make([]byte, len(header)+lz4.CompressBlockBound(len(data)))
	copy(dst, header)

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[len(header):])
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}
	// incompressible: CompressBlock reports 0, store the input as is
	if n == 0 || n >= len(data) {
		return append(header, data...), nil
	}

	return dst[:len(header)+n], nil
}

// Decompress decodes a payload produced by Compress.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, hn := binary.Uvarint(data)
	if hn <= 0 || size == 0 || size > maxDecodedSize {
		return nil, errLZ4Header
	}
	body := data[hn:]

	if uint64(len(body)) == size {
		out := make([]byte, size)
		copy(out, body)

		return out, nil
	}

	out := make([]byte, size)
	n, err := lz4.UncompressBlock(body, out)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}
	if uint64(n) != size {
		return nil, fmt.Errorf("lz4 decompression failed: got %d bytes, header says %d", n, size)
	}

	return out, nil
}
