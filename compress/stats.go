package compress

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/hufftext/format"
)

// ErrRoundTrip is returned by Measure when decompression does not restore the input.
var ErrRoundTrip = errors.New("compress: round trip mismatch")

// CompressionStats describes one compress/decompress round trip.
type CompressionStats struct {
	// Name is the label of the measured codec.
	Name string

	// Algorithm identifies the compression algorithm used.
	Algorithm format.CompressionType

	// OriginalSize is the input size in bytes.
	OriginalSize int64

	// CompressedSize is the compressed size in bytes.
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the data.
	CompressionTimeNs int64

	// DecompressionTimeNs is the time taken to decompress the data.
	DecompressionTimeNs int64
}

// CompressionRatio returns the compressed size divided by the original size.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage; negative values mean
// the payload grew.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// BitsPerByte returns the compressed size in bits per input byte.
func (s CompressionStats) BitsPerByte() float64 {
	return s.CompressionRatio() * 8
}

func (s CompressionStats) String() string {
	return fmt.Sprintf("%s: %d -> %d bytes (%.1f%% saved)",
		s.Name, s.OriginalSize, s.CompressedSize, s.SpaceSavings())
}

// Measure compresses and decompresses data with nc and reports the sizes and
// timings.
//
// Returns ErrRoundTrip if the decompressed bytes differ from data.
func Measure(nc Named, data []byte) (CompressionStats, error) {
	stats := CompressionStats{
		Name:         nc.Name,
		Algorithm:    nc.Type,
		OriginalSize: int64(len(data)),
	}

	start := time.Now()
	compressed, err := nc.Codec.Compress(data)
	stats.CompressionTimeNs = time.Since(start).Nanoseconds()
	if err != nil {
		return stats, fmt.Errorf("%s compress: %w", nc.Name, err)
	}
	stats.CompressedSize = int64(len(compressed))

	start = time.Now()
	restored, err := nc.Codec.Decompress(compressed)
	stats.DecompressionTimeNs = time.Since(start).Nanoseconds()
	if err != nil {
		return stats, fmt.Errorf("%s decompress: %w", nc.Name, err)
	}
	if !bytes.Equal(restored, data) {
		return stats, fmt.Errorf("%w: %s restored %d of %d bytes", ErrRoundTrip, nc.Name, len(restored), len(data))
	}

	return stats, nil
}

// Compare measures every codec on data concurrently and returns the results
// sorted by compressed size, smallest first; equal sizes keep the order of
// codecs. The first failure cancels the remaining measurements.
func Compare(ctx context.Context, data []byte, codecs []Named) ([]CompressionStats, error) {
	results := make([]CompressionStats, len(codecs))

	g, ctx := errgroup.WithContext(ctx)
	for i, nc := range codecs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			stats, err := Measure(nc, data)
			if err != nil {
				return err
			}
			results[i] = stats

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(results, func(a, b CompressionStats) int {
		return cmp.Compare(a.CompressedSize, b.CompressedSize)
	})

	return results, nil
}
