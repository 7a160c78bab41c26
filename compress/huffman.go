package compress

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/hufftext/codec"
	"github.com/arloliu/hufftext/errs"
)

// HuffmanCompressor adapts a codec.Codec to the Codec interface.
//
// Input must be UTF-8 text whose symbols are all in the codec's table. The
// compressed form is the packed bit payload of codec.Codec.EncodeBytes, so
// the codec must be byte aligned and use an end-of-sequence symbol for the
// round trip to be exact.
type HuffmanCompressor struct {
	codec *codec.Codec
}

var _ Codec = (*HuffmanCompressor)(nil)

// NewHuffmanCompressor wraps c.
//
// Returns errs.ErrMissingInput for a nil codec and errs.ErrConfiguration when
// c cannot produce whole bytes or has no end-of-sequence symbol.
func NewHuffmanCompressor(c *codec.Codec) (*HuffmanCompressor, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: codec", errs.ErrMissingInput)
	}

	cfg := c.Config()
	if cfg.EndOfSequence() == "" {
		return nil, fmt.Errorf("%w: huffman compression needs an end-of-sequence symbol", errs.ErrConfiguration)
	}
	if !cfg.ByteAligned() {
		return nil, fmt.Errorf("%w: huffman compression needs byte alignment", errs.ErrConfiguration)
	}

	return &HuffmanCompressor{codec: c}, nil
}

// Compress encodes data as text.
func (h *HuffmanCompressor) Compress(data []byte) ([]byte, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", errs.ErrUnencodableSymbol)
	}

	return h.codec.EncodeBytes(string(data))
}

// Decompress decodes a payload produced by Compress. Empty input yields nil.
func (h *HuffmanCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	text, err := h.codec.DecodeBytes(data)
	if err != nil {
		return nil, err
	}

	return []byte(text), nil
}
