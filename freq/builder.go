package freq

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/arloliu/hufftext/errs"
	"github.com/arloliu/hufftext/internal/options"
)

// Builder defaults.
const (
	DefaultMaxNGramLength = 1
	DefaultLengthWeight   = 1.0
)

// BuildConfig holds the frequency table builder settings.
//
// It is populated by BuildOption values inside Build and CountNGrams and is
// never exposed for mutation.
type BuildConfig struct {
	maxNGramLength int
	lengthWeight   float64
	endOfSequence  string
}

// BuildOption is a functional option for Build and CountNGrams.
type BuildOption = options.Option[*BuildConfig]

func newBuildConfig(opts ...BuildOption) (*BuildConfig, error) {
	cfg := &BuildConfig{
		maxNGramLength: DefaultMaxNGramLength,
		lengthWeight:   DefaultLengthWeight,
	}
	return options.Resolve(cfg, nil, opts...)
}

// WithMaxNGramLength sets the longest n-gram, in characters, that is counted.
// n must be at least 1. Default is 1 (unigrams only).
func WithMaxNGramLength(n int) BuildOption {
	return options.New(func(cfg *BuildConfig) error {
		if n < 1 {
			return fmt.Errorf("%w: got %d", errs.ErrInvalidNGramLength, n)
		}
		cfg.maxNGramLength = n

		return nil
	})
}

// WithLengthWeight sets the coefficient w of the selection score
// length(gram)*w + count(gram). Larger values favor longer grams.
// w must be a finite non-negative number. Default is 1.0.
func WithLengthWeight(w float64) BuildOption {
	return options.New(func(cfg *BuildConfig) error {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: length weight %v", errs.ErrConfiguration, w)
		}
		cfg.lengthWeight = w

		return nil
	})
}

// WithEndOfSequence counts eos once per sequence. An empty string disables it;
// any other value must be valid UTF-8. Default is disabled.
func WithEndOfSequence(eos string) BuildOption {
	return options.New(func(cfg *BuildConfig) error {
		if eos != "" {
			if err := ValidSymbol(eos); err != nil {
				return fmt.Errorf("end-of-sequence: %w", err)
			}
		}
		cfg.endOfSequence = eos

		return nil
	})
}

// CountNGrams returns the raw n-gram counts of sequences.
//
// For every sequence and every length from the maximum n-gram length down to
// 1, each contiguous substring of that many characters is counted, overlaps
// included. When an end-of-sequence symbol is configured it is inserted first
// and counted once per sequence.
//
// Parameters:
//   - sequences: Corpus sequences
//   - opts: WithMaxNGramLength, WithEndOfSequence (WithLengthWeight is accepted and ignored)
//
// Returns:
//   - *Table: Raw counts, whose keys overlap in content
//   - error: Invalid option value, or errs.ErrInvalidSymbol for a sequence
//     that is not valid UTF-8
func CountNGrams(sequences []string, opts ...BuildOption) (*Table, error) {
	cfg, err := newBuildConfig(opts...)
	if err != nil {
		return nil, err
	}
	if err := validSequences(sequences); err != nil {
		return nil, err
	}

	return countNGrams(sequences, cfg), nil
}

// Build derives an optimized frequency table from sequences.
//
// Build first counts n-grams (see CountNGrams), then re-tokenizes every
// sequence greedily: grams are ranked by length(gram)*w + count(gram), highest
// first with ties kept in counting order, and each sequence is consumed by
// repeatedly removing every occurrence of the best remaining gram it still
// contains. Each removed occurrence is credited to the result, so the selected
// grams cover the sequence characters exactly: "abcabc" yields abc:2, not one
// credit per removal pass. A residual that no candidate
// matches (text equal to the end-of-sequence symbol) is dropped silently.
//
// The end-of-sequence count is carried over unchanged and the end-of-sequence
// symbol is never used as a substitution candidate. Sequences must be valid
// UTF-8; otherwise errs.ErrInvalidSymbol is returned.
//
// Example:
//
//	table, err := freq.Build([]string{"abc", "abc", "def"},
//	    freq.WithMaxNGramLength(3),
//	    freq.WithEndOfSequence("\x00"),
//	)
func Build(sequences []string, opts ...BuildOption) (*Table, error) {
	cfg, err := newBuildConfig(opts...)
	if err != nil {
		return nil, err
	}
	if err := validSequences(sequences); err != nil {
		return nil, err
	}

	raw := countNGrams(sequences, cfg)

	return optimize(raw, sequences, cfg), nil
}

func countNGrams(sequences []string, cfg *BuildConfig) *Table {
	raw := NewTable(0)
	eos := cfg.endOfSequence
	if eos != "" {
		_ = raw.Increment(eos, 0)
	}

	var offsets []int
	for _, seq := range sequences {
		offsets = runeOffsets(seq, offsets[:0])
		runes := len(offsets) - 1

		for n := cfg.maxNGramLength; n >= 1; n-- {
			for i := 0; i+n <= runes; i++ {
				_ = raw.Increment(seq[offsets[i]:offsets[i+n]], 1)
			}
		}

		if eos != "" {
			_ = raw.Increment(eos, 1)
		}
	}

	return raw
}

type rankedGram struct {
	gram  string
	score float64
}

func optimize(raw *Table, sequences []string, cfg *BuildConfig) *Table {
	eos := cfg.endOfSequence

	ranked := make([]rankedGram, 0, raw.Len())
	for gram, count := range raw.All() {
		if eos != "" && gram == eos {
			continue
		}
		score := float64(utf8.RuneCountInString(gram))*cfg.lengthWeight + count
		ranked = append(ranked, rankedGram{gram: gram, score: score})
	}
	slices.SortStableFunc(ranked, func(a, b rankedGram) int {
		return cmp.Compare(b.score, a.score)
	})

	result := NewTable(0)
	if eos != "" {
		_ = result.Increment(eos, raw.Count(eos))
	}

	for _, seq := range sequences {
		rest := seq
		for _, rg := range ranked {
			if rest == "" {
				break
			}
			for strings.Contains(rest, rg.gram) {
				n := strings.Count(rest, rg.gram)
				rest = strings.ReplaceAll(rest, rg.gram, "")
				_ = result.Increment(rg.gram, float64(n))
			}
		}
	}

	return result
}

func validSequences(sequences []string) error {
	for i, seq := range sequences {
		if !utf8.ValidString(seq) {
			return fmt.Errorf("%w: sequence %d is not valid UTF-8", errs.ErrInvalidSymbol, i)
		}
	}

	return nil
}

// runeOffsets appends the byte offset of every rune of s, followed by len(s).
func runeOffsets(s string, dst []int) []int {
	for i := range s {
		dst = append(dst, i)
	}

	return append(dst, len(s))
}
