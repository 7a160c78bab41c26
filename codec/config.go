package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/hufftext/errs"
	"github.com/arloliu/hufftext/format"
	"github.com/arloliu/hufftext/freq"
	"github.com/arloliu/hufftext/internal/hash"
	"github.com/arloliu/hufftext/internal/options"
)

// DefaultEndOfSequence is the end-of-sequence symbol used when none is configured.
const DefaultEndOfSequence = "\x00"

type alignmentMode uint8

const (
	alignmentDefault alignmentMode = iota
	alignmentOn
	alignmentOff
)

// Config is the validated, immutable configuration of a Codec.
//
// A Config is created by NewConfig from functional options; its fields are
// unexported and exposed through getters only.
type Config struct {
	table           *freq.Table
	endOfSequence   string
	fixedLengthBits int
	alignment       alignmentMode
	inputEncoding   format.StringEncoding
	outputEncoding  format.StringEncoding
}

// Option is a functional option for New and NewConfig.
type Option = options.Option[*Config]

// NewConfig applies opts over the defaults and validates the result.
//
// Defaults:
//   - frequency table: freq.ASCII()
//   - end-of-sequence symbol: DefaultEndOfSequence
//   - fixed length: none
//   - byte alignment: enabled unless the output encoding is Bin and no fixed
//     length is set
//   - input encoding: format.EncodingAuto
//   - output encoding: format.EncodingHex
//
// Returns:
//   - *Config: The validated configuration
//   - error: errs.ErrMissingInput for a nil table, errs.ErrConfiguration for
//     any inconsistent combination
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		endOfSequence:  DefaultEndOfSequence,
		inputEncoding:  format.EncodingAuto,
		outputEncoding: format.EncodingHex,
	}
	if _, err := options.Resolve(cfg, finalizeConfig, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

func finalizeConfig(c *Config) error {
	if c.table == nil {
		c.table = freq.ASCII()
	}

	return c.validate()
}

func (c *Config) validate() error {
	if !c.inputEncoding.Valid() {
		return fmt.Errorf("%w: input %w: %s", errs.ErrConfiguration, errs.ErrUnknownEncoding, c.inputEncoding)
	}
	if !c.outputEncoding.Valid() {
		return fmt.Errorf("%w: output %w: %s", errs.ErrConfiguration, errs.ErrUnknownEncoding, c.outputEncoding)
	}

	aligned := c.ByteAligned()
	if c.endOfSequence == "" && (aligned || c.fixedLengthBits > 0) {
		return fmt.Errorf("%w: byte alignment and fixed length require an end-of-sequence symbol",
			errs.ErrConfiguration)
	}
	if c.endOfSequence != "" && !c.table.Contains(c.endOfSequence) {
		return fmt.Errorf("%w: end-of-sequence symbol %q is not in the frequency table",
			errs.ErrConfiguration, c.endOfSequence)
	}
	if !aligned && c.outputEncoding.IsByteOriented() && (c.fixedLengthBits == 0 || c.fixedLengthBits%8 != 0) {
		return fmt.Errorf("%w: %s output requires byte alignment or a fixed length in whole bytes",
			errs.ErrConfiguration, c.outputEncoding)
	}
	if aligned && c.fixedLengthBits%8 != 0 {
		return fmt.Errorf("%w: fixed length of %d bits is not a whole number of bytes",
			errs.ErrConfiguration, c.fixedLengthBits)
	}

	return nil
}

// Table returns the frequency table. Callers must not modify it.
func (c *Config) Table() *freq.Table {
	return c.table
}

// EndOfSequence returns the end-of-sequence symbol, or "" when disabled.
func (c *Config) EndOfSequence() string {
	return c.endOfSequence
}

// FixedLengthBits returns the fixed output length in bits, or 0 when unset.
func (c *Config) FixedLengthBits() int {
	return c.fixedLengthBits
}

// ByteAligned reports whether encoded payloads are padded to whole bytes.
func (c *Config) ByteAligned() bool {
	switch c.alignment {
	case alignmentOn:
		return true
	case alignmentOff:
		return false
	default:
		return c.outputEncoding != format.EncodingBin || c.fixedLengthBits > 0
	}
}

// InputEncoding returns the textual encoding expected by Decode.
func (c *Config) InputEncoding() format.StringEncoding {
	return c.inputEncoding
}

// OutputEncoding returns the textual encoding produced by Encode.
func (c *Config) OutputEncoding() format.StringEncoding {
	return c.outputEncoding
}

// Fingerprint identifies the configuration. Configurations with equal
// fingerprints build codecs that behave identically.
func (c *Config) Fingerprint() uint64 {
	settings := make([]byte, 0, 24)
	settings = binary.BigEndian.AppendUint64(settings, c.table.Fingerprint())
	settings = binary.BigEndian.AppendUint64(settings, uint64(c.fixedLengthBits))
	settings = append(settings, byte(c.alignment), byte(c.inputEncoding), byte(c.outputEncoding))

	return hash.FingerprintParts(settings, []byte(c.endOfSequence))
}

// WithFrequencyTable sets the frequency table the code is built from.
// The table must not be modified afterwards. Default is freq.ASCII().
func WithFrequencyTable(table *freq.Table) Option {
	return options.New(func(cfg *Config) error {
		if table == nil {
			return fmt.Errorf("%w: frequency table", errs.ErrMissingInput)
		}
		cfg.table = table

		return nil
	})
}

// WithEndOfSequence sets the symbol appended after the content and used to
// stop decoding. The symbol must be present in the frequency table and is
// reserved: text containing it cannot be encoded. An empty string disables it.
// Default is DefaultEndOfSequence.
func WithEndOfSequence(eos string) Option {
	return options.NoError(func(cfg *Config) {
		cfg.endOfSequence = eos
	})
}

// WithoutEndOfSequence disables the end-of-sequence symbol. Byte alignment
// and fixed lengths are unavailable without it.
func WithoutEndOfSequence() Option {
	return WithEndOfSequence("")
}

// WithFixedLengthBits pads every payload with zero bits up to n bits.
// Content longer than n bits is neither rejected nor truncated.
// n must not be negative; 0 disables the fixed length.
func WithFixedLengthBits(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 0 {
			return fmt.Errorf("%w: negative fixed length %d", errs.ErrConfiguration, n)
		}
		cfg.fixedLengthBits = n

		return nil
	})
}

// WithFixedLengthBytes pads every payload with zero bits up to n bytes.
func WithFixedLengthBytes(n int) Option {
	return WithFixedLengthBits(n * 8)
}

// WithByteAlignment forces byte alignment on or off. Hex and Base64 output
// cannot be combined with alignment off unless a fixed length in whole bytes
// is set.
func WithByteAlignment(enabled bool) Option {
	return options.NoError(func(cfg *Config) {
		if enabled {
			cfg.alignment = alignmentOn
		} else {
			cfg.alignment = alignmentOff
		}
	})
}

// WithInputEncoding sets the textual encoding accepted by Decode.
// Default is format.EncodingAuto.
func WithInputEncoding(enc format.StringEncoding) Option {
	return options.NoError(func(cfg *Config) {
		cfg.inputEncoding = enc
	})
}

// WithOutputEncoding sets the textual encoding produced by Encode.
// Default is format.EncodingHex.
func WithOutputEncoding(enc format.StringEncoding) Option {
	return options.NoError(func(cfg *Config) {
		cfg.outputEncoding = enc
	})
}
