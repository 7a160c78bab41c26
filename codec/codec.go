// Package codec encodes text into prefix-code bit sequences and back.
//
// A Codec is built once from a Config: the frequency table is turned into a
// tree and a code table, and both are kept for the lifetime of the Codec.
// Every method is read-only, so a Codec can be shared between goroutines.
//
// Encoding tokenizes the input by greedy longest match against the symbols of
// the code table, appends the end-of-sequence code when one is configured,
// then pads with zero bits for byte alignment and for a fixed output length.
// Decoding walks the tree bit by bit and stops at the end-of-sequence symbol
// or when the bits run out, so trailing padding is ignored.
package codec

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arloliu/hufftext/bitstream"
	"github.com/arloliu/hufftext/errs"
	"github.com/arloliu/hufftext/output"
	"github.com/arloliu/hufftext/tree"
)

// Codec encodes and decodes text with a fixed prefix code.
type Codec struct {
	cfg     *Config
	tree    *tree.Tree
	codes   *tree.CodeTable
	eosCode bitstream.Bits
	aligned bool
	in      output.Codec
	out     output.Codec
}

// New creates a Codec from options. See NewConfig for the defaults.
//
// Returns:
//   - *Codec: Ready-to-use codec
//   - error: errs.ErrMissingInput or errs.ErrConfiguration from NewConfig
func New(opts ...Option) (*Codec, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return NewFromConfig(cfg)
}

// NewFromConfig creates a Codec from a configuration returned by NewConfig.
func NewFromConfig(cfg *Config) (*Codec, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: codec configuration", errs.ErrMissingInput)
	}

	in, err := output.Get(cfg.inputEncoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrConfiguration, err)
	}
	out, err := output.Get(cfg.outputEncoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrConfiguration, err)
	}

	t := tree.Build(cfg.table)
	c := &Codec{
		cfg:     cfg,
		tree:    t,
		codes:   tree.Generate(t),
		aligned: cfg.ByteAligned(),
		in:      in,
		out:     out,
	}
	if cfg.endOfSequence != "" {
		c.eosCode, _ = c.codes.Code(cfg.endOfSequence)
	}

	return c, nil
}

// Config returns the configuration the codec was built from.
func (c *Codec) Config() *Config {
	return c.cfg
}

// Tree returns the prefix-code tree.
func (c *Codec) Tree() *tree.Tree {
	return c.tree
}

// CodeTable returns the code of every symbol.
func (c *Codec) CodeTable() *tree.CodeTable {
	return c.codes
}

// EncodeBits encodes text into a bit sequence.
//
// The result holds the code of each symbol of text, then the end-of-sequence
// code if configured, then zero bits up to the next byte boundary if aligned,
// then zero bits up to the fixed length if one is set.
//
// Returns:
//   - bitstream.Bits: Encoded bits
//   - error: *errs.UnencodableSymbolError (matching errs.ErrUnencodableSymbol)
//     if text holds a character no symbol covers
func (c *Codec) EncodeBits(text string) (bitstream.Bits, error) {
	w := bitstream.NewWriter()

	err := c.tokenize(text, func(code bitstream.Bits) {
		w.WriteBits(code)
	})
	if err != nil {
		_, _ = w.Finish()
		return bitstream.Bits{}, err
	}

	w.WriteBits(c.eosCode)
	if c.aligned {
		w.AlignToByte()
	}
	w.PadTo(c.cfg.fixedLengthBits)

	return w.Finish()
}

// DecodeBits decodes a bit sequence produced by EncodeBits.
//
// Decoding stops at the end-of-sequence symbol or at the last complete code;
// an incomplete trailing path is ignored. A codec whose alphabet has a single
// symbol always decodes to the empty string.
func (c *Codec) DecodeBits(bits bitstream.Bits) string {
	if c.tree.IsSingleLeaf() || bits.IsEmpty() {
		return ""
	}

	var sb strings.Builder
	root := c.tree.Root()
	eos := c.cfg.endOfSequence

	r := bitstream.NewReader(bits)
	node := root
	for {
		bit, ok := r.ReadBit()
		if !ok {
			break
		}

		node = c.tree.Child(node, bit)
		leaf := c.tree.Node(node)
		if !leaf.IsLeaf() {
			continue
		}
		if eos != "" && leaf.Symbol == eos {
			break
		}
		sb.WriteString(leaf.Symbol)
		node = root
	}

	return sb.String()
}

// Measure returns the content length of the encoding of text in bits: the
// symbol codes plus the end-of-sequence code. Alignment and fixed-length
// padding are not counted.
func (c *Codec) Measure(text string) (int, error) {
	n := c.eosCode.Len()
	err := c.tokenize(text, func(code bitstream.Bits) {
		n += code.Len()
	})
	if err != nil {
		return 0, err
	}

	return n, nil
}

// CanEncode reports whether every character of text is covered by a symbol.
// The empty string is encodable.
func (c *Codec) CanEncode(text string) bool {
	return c.tokenize(text, func(bitstream.Bits) {}) == nil
}

// Encode encodes text and renders it with the configured output encoding.
func (c *Codec) Encode(text string) (string, error) {
	bits, err := c.EncodeBits(text)
	if err != nil {
		return "", err
	}

	return c.out.Encode(bits)
}

// Decode parses code with the configured input encoding and decodes it.
// The empty string decodes to the empty string.
func (c *Codec) Decode(code string) (string, error) {
	if code == "" {
		return "", nil
	}

	bits, err := c.in.Decode(code)
	if err != nil {
		return "", err
	}

	return c.DecodeBits(bits), nil
}

// EncodeBytes encodes text into packed bytes, first bit most significant.
//
// Returns errs.ErrConfiguration when the codec does not produce whole bytes,
// i.e. byte alignment is off and no fixed length in whole bytes is set.
func (c *Codec) EncodeBytes(text string) ([]byte, error) {
	if !c.aligned && (c.cfg.fixedLengthBits == 0 || c.cfg.fixedLengthBits%8 != 0) {
		return nil, fmt.Errorf("%w: byte output requires byte alignment", errs.ErrConfiguration)
	}

	bits, err := c.EncodeBits(text)
	if err != nil {
		return nil, err
	}

	return bits.Bytes()
}

// DecodeBytes decodes bytes produced by EncodeBytes.
// Returns errs.ErrMissingInput for nil data.
func (c *Codec) DecodeBytes(data []byte) (string, error) {
	if data == nil {
		return "", fmt.Errorf("%w: payload", errs.ErrMissingInput)
	}

	return c.DecodeBits(bitstream.FromBytes(data)), nil
}

// tokenize splits text into symbols by greedy longest match and calls emit
// with the code of each one, in order. The end-of-sequence symbol never
// matches.
func (c *Codec) tokenize(text string, emit func(bitstream.Bits)) error {
	maxRunes := c.codes.MaxSymbolRunes()
	eos := c.cfg.endOfSequence
	ends := make([]int, 0, maxRunes)

	for i := 0; i < len(text); {
		// byte offsets just past each of the next maxRunes runes
		ends = ends[:0]
		for j := i; j < len(text) && len(ends) < maxRunes; {
			_, size := utf8.DecodeRuneInString(text[j:])
			j += size
			ends = append(ends, j)
		}

		matched := false
		for k := len(ends) - 1; k >= 0; k-- {
			symbol := text[i:ends[k]]
			if symbol == eos {
				continue
			}
			if code, ok := c.codes.Code(symbol); ok {
				emit(code)
				i = ends[k]
				matched = true

				break
			}
		}

		if !matched {
			_, size := utf8.DecodeRuneInString(text[i:])
			return &errs.UnencodableSymbolError{Symbol: text[i : i+size], Offset: i}
		}
	}

	return nil
}
