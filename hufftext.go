// Package hufftext compresses short text into compact prefix-code (Huffman)
// bit strings and back.
//
// A code is derived from a frequency table that maps symbols, single
// characters or n-grams, to weights. The most frequent symbols receive the
// shortest codes. The tree that defines the code is built with a fixed
// tie-break rule, so the same table always yields the same codes.
//
// # Core Features
//
//   - Frequency tables built from a corpus with weighted n-gram substitution
//   - Deterministic prefix-code trees and code tables
//   - End-of-sequence marking, byte alignment and fixed-length payloads
//   - Textual output as binary digits, hex or base64, with auto-detection on decode
//   - JSON persistence of frequency tables
//
// # Basic Usage
//
// Encoding with the default printable-ASCII table:
//
//	import "github.com/arloliu/hufftext"
//
//	code, _ := hufftext.Encode("hello world")  // uppercase hex
//	text, _ := hufftext.Decode(code)           // "hello world"
//
// Encoding with a table built from a corpus:
//
//	table, _ := hufftext.BuildFrequencyTable(corpus,
//	    freq.WithMaxNGramLength(3),
//	    freq.WithEndOfSequence(codec.DefaultEndOfSequence),
//	)
//	c, _ := hufftext.NewCodec(codec.WithFrequencyTable(table))
//	code, _ := c.Encode("hello world")
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the freq, tree,
// codec and output packages. Calls with options share a bounded cache of
// codecs keyed by configuration. For fine-grained control, create a
// codec.Codec directly and keep it.
package hufftext

import (
	"sync"

	"github.com/arloliu/hufftext/codec"
	"github.com/arloliu/hufftext/freq"
	"github.com/arloliu/hufftext/internal/cache"
)

var defaultCodec = sync.OnceValues(func() (*codec.Codec, error) {
	return codec.New()
})

var sharedCodecs = sync.OnceValue(func() *cache.Codecs {
	// DefaultSize is positive, New cannot fail.
	c, _ := cache.New(cache.DefaultSize)
	return c
})

// NewCodec creates a codec from options.
//
// Parameters:
//   - opts: Codec options (table, end-of-sequence, padding, encodings)
//
// Returns:
//   - *codec.Codec: New codec, safe for concurrent use
//   - error: errs.ErrMissingInput or errs.ErrConfiguration for invalid options
func NewCodec(opts ...codec.Option) (*codec.Codec, error) {
	return codec.New(opts...)
}

// NewDefaultCodec returns the codec built from the default configuration:
// printable-ASCII table, NUL end-of-sequence, byte alignment, Hex output and
// Auto input. It is built once and shared.
func NewDefaultCodec() (*codec.Codec, error) {
	return defaultCodec()
}

// BuildFrequencyTable derives an optimized frequency table from a corpus.
// See freq.Build.
func BuildFrequencyTable(sequences []string, opts ...freq.BuildOption) (*freq.Table, error) {
	return freq.Build(sequences, opts...)
}

// LoadFrequencyTable parses a frequency table persisted with Table.Serialize.
func LoadFrequencyTable(data []byte) (*freq.Table, error) {
	return freq.Deserialize(data)
}

// Encode encodes text and renders it with the configured output encoding.
func Encode(text string, opts ...codec.Option) (string, error) {
	c, err := codecFor(opts)
	if err != nil {
		return "", err
	}

	return c.Encode(text)
}

// Decode decodes code, interpreted with the configured input encoding.
func Decode(code string, opts ...codec.Option) (string, error) {
	c, err := codecFor(opts)
	if err != nil {
		return "", err
	}

	return c.Decode(code)
}

// EncodeBytes encodes text into packed bytes.
func EncodeBytes(text string, opts ...codec.Option) ([]byte, error) {
	c, err := codecFor(opts)
	if err != nil {
		return nil, err
	}

	return c.EncodeBytes(text)
}

// DecodeBytes decodes bytes produced by EncodeBytes.
func DecodeBytes(data []byte, opts ...codec.Option) (string, error) {
	c, err := codecFor(opts)
	if err != nil {
		return "", err
	}

	return c.DecodeBytes(data)
}

// Measure returns the encoded content length of text in bits, without padding.
func Measure(text string, opts ...codec.Option) (int, error) {
	c, err := codecFor(opts)
	if err != nil {
		return 0, err
	}

	return c.Measure(text)
}

// CanEncode reports whether text can be encoded. It returns false when the
// options are invalid.
func CanEncode(text string, opts ...codec.Option) bool {
	c, err := codecFor(opts)
	if err != nil {
		return false
	}

	return c.CanEncode(text)
}

func codecFor(opts []codec.Option) (*codec.Codec, error) {
	if len(opts) == 0 {
		return defaultCodec()
	}

	return sharedCodecs().Get(opts...)
}
