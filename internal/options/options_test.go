package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type alphabetConfig struct {
	maxRunes int
	eos      string
	calls    []string
}

func withMaxRunes(n int) Option[*alphabetConfig] {
	return New(func(c *alphabetConfig) error {
		if n < 1 {
			return errors.New("max runes must be positive")
		}
		c.maxRunes = n
		c.calls = append(c.calls, "maxRunes")

		return nil
	})
}

func withEOS(eos string) Option[*alphabetConfig] {
	return NoError(func(c *alphabetConfig) {
		c.eos = eos
		c.calls = append(c.calls, "eos")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &alphabetConfig{}
		err := Apply(cfg, withMaxRunes(3), withEOS("\x00"))
		require.NoError(t, err)
		require.Equal(t, 3, cfg.maxRunes)
		require.Equal(t, "\x00", cfg.eos)
		require.Equal(t, []string{"maxRunes", "eos"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &alphabetConfig{}
		err := Apply(cfg, withEOS("$"), withMaxRunes(0), withMaxRunes(2))
		require.Error(t, err)
		require.Contains(t, err.Error(), "max runes must be positive")
		require.Equal(t, []string{"eos"}, cfg.calls)
		require.Zero(t, cfg.maxRunes)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &alphabetConfig{}
		err := Apply(cfg, nil, withMaxRunes(1), nil)
		require.NoError(t, err)
		require.Equal(t, 1, cfg.maxRunes)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &alphabetConfig{}
		require.NoError(t, Apply(cfg))
		require.Empty(t, cfg.calls)
	})
}

func TestResolve(t *testing.T) {
	requireEOS := func(c *alphabetConfig) error {
		if c.maxRunes == 0 {
			c.maxRunes = 1
		}
		if c.eos == "" {
			return errors.New("end-of-sequence symbol required")
		}

		return nil
	}

	t.Run("fills defaults after options", func(t *testing.T) {
		cfg, err := Resolve(&alphabetConfig{}, requireEOS, withEOS("$"))
		require.NoError(t, err)
		require.Equal(t, 1, cfg.maxRunes)
		require.Equal(t, "$", cfg.eos)
	})

	t.Run("option error skips finalize", func(t *testing.T) {
		called := false
		_, err := Resolve(&alphabetConfig{}, func(*alphabetConfig) error {
			called = true
			return nil
		}, withMaxRunes(0))
		require.ErrorContains(t, err, "max runes must be positive")
		require.False(t, called)
	})

	t.Run("finalize error", func(t *testing.T) {
		_, err := Resolve(&alphabetConfig{}, requireEOS, withMaxRunes(2))
		require.ErrorContains(t, err, "end-of-sequence symbol required")
	})

	t.Run("nil finalize", func(t *testing.T) {
		cfg, err := Resolve(&alphabetConfig{}, nil, withMaxRunes(4))
		require.NoError(t, err)
		require.Equal(t, 4, cfg.maxRunes)
	})
}
