package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hufftext/errs"
	"github.com/arloliu/hufftext/format"
	"github.com/arloliu/hufftext/freq"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	require.Equal(t, freq.ASCII().Serialize(), cfg.Table().Serialize())
	require.Equal(t, DefaultEndOfSequence, cfg.EndOfSequence())
	require.Zero(t, cfg.FixedLengthBits())
	require.True(t, cfg.ByteAligned())
	require.Equal(t, format.EncodingAuto, cfg.InputEncoding())
	require.Equal(t, format.EncodingHex, cfg.OutputEncoding())
}

func TestConfig_ByteAligned(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		expected bool
	}{
		{"hex output", nil, true},
		{"base64 output", []Option{WithOutputEncoding(format.EncodingBase64)}, true},
		{"auto output", []Option{WithOutputEncoding(format.EncodingAuto)}, true},
		{"bin output", []Option{WithOutputEncoding(format.EncodingBin)}, false},
		{"bin output with fixed length", []Option{
			WithOutputEncoding(format.EncodingBin), WithFixedLengthBytes(2),
		}, true},
		{"bin output forced", []Option{
			WithOutputEncoding(format.EncodingBin), WithByteAlignment(true),
		}, true},
		{"hex output with fixed bytes and alignment off", []Option{
			WithByteAlignment(false), WithFixedLengthBytes(4),
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewConfig(tt.opts...)
			require.NoError(t, err)
			require.Equal(t, tt.expected, cfg.ByteAligned())
		})
	}
}

func TestNewConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		err  error
	}{
		{"nil table", []Option{WithFrequencyTable(nil)}, errs.ErrMissingInput},
		{"alignment without end of sequence", []Option{WithoutEndOfSequence()}, errs.ErrConfiguration},
		{"fixed length without end of sequence", []Option{
			WithoutEndOfSequence(), WithOutputEncoding(format.EncodingBin),
			WithByteAlignment(false), WithFixedLengthBits(16),
		}, errs.ErrConfiguration},
		{"end of sequence missing from table", []Option{WithEndOfSequence("<eos>")}, errs.ErrConfiguration},
		{"hex without alignment", []Option{WithByteAlignment(false)}, errs.ErrConfiguration},
		{"base64 without alignment and partial byte", []Option{
			WithOutputEncoding(format.EncodingBase64), WithByteAlignment(false), WithFixedLengthBits(20),
		}, errs.ErrConfiguration},
		{"aligned with partial byte", []Option{WithFixedLengthBits(12)}, errs.ErrConfiguration},
		{"negative fixed length", []Option{WithFixedLengthBits(-8)}, errs.ErrConfiguration},
		{"unknown output", []Option{WithOutputEncoding(format.EncodingUnknown)}, errs.ErrUnknownEncoding},
		{"unknown input", []Option{WithInputEncoding(format.StringEncoding(9))}, errs.ErrConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.opts...)
			require.ErrorIs(t, err, tt.err)

			_, err = New(tt.opts...)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNewConfig_Valid(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"bin without end of sequence", []Option{WithoutEndOfSequence(), WithOutputEncoding(format.EncodingBin)}},
		{"bin with fixed bits", []Option{
			WithOutputEncoding(format.EncodingBin), WithByteAlignment(false), WithFixedLengthBits(12),
		}},
		{"custom end of sequence", []Option{
			WithFrequencyTable(scenarioTable(t)), WithEndOfSequence("c"),
		}},
		{"nil option skipped", []Option{nil, WithOutputEncoding(format.EncodingBase64)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.opts...)
			require.NoError(t, err)
		})
	}
}

func TestConfig_Fingerprint(t *testing.T) {
	fp := func(opts ...Option) uint64 {
		cfg, err := NewConfig(opts...)
		require.NoError(t, err)

		return cfg.Fingerprint()
	}

	require.Equal(t, fp(), fp())
	require.Equal(t, fp(), fp(WithFrequencyTable(freq.ASCII())))
	require.Equal(t, fp(WithFrequencyTable(scenarioTable(t))), fp(WithFrequencyTable(scenarioTable(t))))

	require.NotEqual(t, fp(), fp(WithOutputEncoding(format.EncodingBase64)))
	require.NotEqual(t, fp(), fp(WithFixedLengthBytes(8)))
	require.NotEqual(t, fp(), fp(WithEndOfSequence("\n")))
	require.NotEqual(t, fp(), fp(WithFrequencyTable(scenarioTable(t))))
}
