package compress

import (
	"fmt"

	"github.com/arloliu/hufftext/format"
)

// Compressor turns a text payload into a smaller byte representation.
//
// Memory management:
//   - Returned slice is owned by the caller unless documented otherwise
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// Decompress returns an error if the data is corrupted or was produced by a
// different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. Implementations are safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates the general-purpose codec for compressionType.
//
// format.CompressionHuffman needs a frequency table and is created with
// NewHuffmanCompressor instead.
//
// Parameters:
//   - compressionType: None, Zstd, S2 or LZ4
//
// Returns:
//   - Codec: Codec for the requested type
//   - error: Unsupported compression type
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	case format.CompressionHuffman:
		return nil, fmt.Errorf("%s compression needs a codec, use NewHuffmanCompressor", compressionType)
	default:
		return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
	}
}

// Named pairs a codec with the label and type used in comparison reports.
type Named struct {
	Name  string
	Type  format.CompressionType
	Codec Codec
}

// Baselines returns the general-purpose codecs, in ascending order of
// compression effort: None, LZ4, S2, Zstd.
func Baselines() []Named {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionLZ4,
		format.CompressionS2,
		format.CompressionZstd,
	}

	out := make([]Named, 0, len(types))
	for _, t := range types {
		c, _ := CreateCodec(t)
		out = append(out, Named{Name: t.String(), Type: t, Codec: c})
	}

	return out
}
