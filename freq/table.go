// Package freq provides the symbol frequency tables that drive code construction.
//
// A Table maps symbols (characters or n-grams) to non-negative weights and
// remembers the order in which symbols were first inserted. That order is part
// of the table's identity: the tree builder uses it to break ties between
// equal weights, so two tables with the same entries in a different order may
// produce different codes.
//
// Tables are usually produced by Build from a corpus of sequences, by ASCII for
// the default printable alphabet, or by Deserialize from the JSON persistence
// format. Once handed to a codec a table is treated as read-only.
package freq

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"unicode/utf8"

	"github.com/arloliu/hufftext/errs"
	"github.com/arloliu/hufftext/internal/hash"
	"github.com/arloliu/hufftext/internal/pool"
)

// Table is an insertion-ordered mapping from symbol to weight. Symbols are
// non-empty valid UTF-8 strings.
//
// The zero value is an empty table ready for use. A Table is not safe for
// concurrent mutation; concurrent reads are safe once mutation has stopped.
type Table struct {
	index   map[string]int
	symbols []string
	weights []float64
}

var (
	_ json.Marshaler   = (*Table)(nil)
	_ json.Unmarshaler = (*Table)(nil)
)

// NewTable creates an empty table with room for capacity symbols.
func NewTable(capacity int) *Table {
	return &Table{
		index:   make(map[string]int, capacity),
		symbols: make([]string, 0, capacity),
		weights: make([]float64, 0, capacity),
	}
}

// Count returns the weight of symbol, or 0 if the table does not contain it.
func (t *Table) Count(symbol string) float64 {
	if i, ok := t.index[symbol]; ok {
		return t.weights[i]
	}

	return 0
}

// Contains reports whether symbol is present, even with a zero weight.
func (t *Table) Contains(symbol string) bool {
	_, ok := t.index[symbol]
	return ok
}

// Increment adds delta to the weight of symbol, inserting it at the end of
// the table order if it is not present yet.
//
// Returns errs.ErrInvalidSymbol if symbol is empty or not valid UTF-8, and
// errs.ErrNegativeWeight if delta is negative, NaN or infinite.
func (t *Table) Increment(symbol string, delta float64) error {
	if err := ValidSymbol(symbol); err != nil {
		return err
	}
	if !validWeight(delta) {
		return fmt.Errorf("%w: %q += %v", errs.ErrNegativeWeight, symbol, delta)
	}

	if i, ok := t.index[symbol]; ok {
		t.weights[i] += delta
		return nil
	}

	if t.index == nil {
		t.index = make(map[string]int)
	}
	t.index[symbol] = len(t.symbols)
	t.symbols = append(t.symbols, symbol)
	t.weights = append(t.weights, delta)

	return nil
}

// Len returns the number of symbols.
func (t *Table) Len() int {
	return len(t.symbols)
}

// Total returns the sum of all weights.
func (t *Table) Total() float64 {
	var total float64
	for _, w := range t.weights {
		total += w
	}

	return total
}

// Symbols returns the symbols in insertion order.
func (t *Table) Symbols() []string {
	out := make([]string, len(t.symbols))
	copy(out, t.symbols)

	return out
}

// All iterates over (symbol, weight) pairs in insertion order.
func (t *Table) All() iter.Seq2[string, float64] {
	return func(yield func(string, float64) bool) {
		for i, s := range t.symbols {
			if !yield(s, t.weights[i]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	c := NewTable(t.Len())
	for i, s := range t.symbols {
		c.index[s] = i
	}
	c.symbols = append(c.symbols, t.symbols...)
	c.weights = append(c.weights, t.weights...)

	return c
}

// Fingerprint returns the xxHash64 of the table's symbol bytes and weights.
// Tables with the same entries in the same order have the same fingerprint.
func (t *Table) Fingerprint() uint64 {
	buf := pool.GetTableBuffer()
	defer pool.PutTableBuffer(buf)

	var scratch [binary.MaxVarintLen64]byte
	for i, s := range t.symbols {
		buf.Grow(binary.MaxVarintLen64 + len(s) + 8)
		_, _ = buf.Write(binary.AppendUvarint(scratch[:0], uint64(len(s))))
		_, _ = buf.WriteString(s)
		buf.B = binary.BigEndian.AppendUint64(buf.B, math.Float64bits(t.weights[i]))
	}

	return hash.Fingerprint(buf.Bytes())
}

// Serialize encodes the table as a UTF-8 JSON object mapping each symbol to
// its weight, in insertion order. The empty table serializes to "{}".
func (t *Table) Serialize() []byte {
	buf := pool.GetTableBuffer()
	defer pool.PutTableBuffer(buf)

	t.appendJSON(buf)

	return buf.CopyBytes()
}

// MarshalJSON implements json.Marshaler using the Serialize format.
func (t *Table) MarshalJSON() ([]byte, error) {
	return t.Serialize(), nil
}

// UnmarshalJSON implements json.Unmarshaler using the Deserialize rules.
// It replaces the contents of t.
func (t *Table) UnmarshalJSON(data []byte) error {
	parsed, err := Deserialize(data)
	if err != nil {
		return err
	}
	*t = *parsed

	return nil
}

// Deserialize parses a table produced by Serialize, preserving key order.
//
// Parameters:
//   - data: UTF-8 JSON object of string keys to non-negative numbers
//
// Returns:
//   - *Table: The parsed table; "{}" yields an empty table
//   - error: errs.ErrMissingInput for nil data, errs.ErrMalformedTable when the
//     payload is not an object, holds a non-numeric or negative value, repeats
//     a key, has an empty key, or has trailing content
func Deserialize(data []byte) (*Table, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: frequency table payload", errs.ErrMissingInput)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, malformed(err.Error())
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, malformed("payload is not a JSON object")
	}

	t := NewTable(0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, malformed(err.Error())
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, malformed("object key is not a string")
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, malformed(err.Error())
		}
		num, ok := valTok.(json.Number)
		if !ok {
			return nil, malformed(fmt.Sprintf("value of %q is not a number", key))
		}
		weight, err := num.Float64()
		if err != nil {
			return nil, malformed(fmt.Sprintf("value of %q: %v", key, err))
		}
		if !validWeight(weight) {
			return nil, malformed(fmt.Sprintf("value of %q is negative", key))
		}
		if t.Contains(key) {
			return nil, malformed(fmt.Sprintf("duplicate key %q", key))
		}
		if err := t.Increment(key, weight); err != nil {
			return nil, malformed(err.Error())
		}
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, malformed(err.Error())
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, malformed("trailing data after object")
	}

	return t, nil
}

// appendJSON writes the table as a JSON object. Symbols are valid UTF-8, so
// the encoding is lossless.
func (t *Table) appendJSON(buf *pool.ByteBuffer) {
	_ = buf.WriteByte('{')
	for i, s := range t.symbols {
		if i > 0 {
			_ = buf.WriteByte(',')
		}
		// Marshalling a string cannot fail.
		key, _ := json.Marshal(s)
		weight := formatWeight(t.weights[i])
		buf.Grow(len(key) + len(weight) + 2)
		_, _ = buf.Write(key)
		_ = buf.WriteByte(':')
		_, _ = buf.Write(weight)
	}
	_ = buf.WriteByte('}')
}

// formatWeight renders w with the encoding/json float64 rules; w is always finite.
func formatWeight(w float64) []byte {
	out, _ := json.Marshal(w)
	return out
}

// ValidSymbol returns errs.ErrInvalidSymbol unless symbol is a non-empty,
// valid UTF-8 string.
func ValidSymbol(symbol string) error {
	if symbol == "" {
		return fmt.Errorf("%w: empty symbol", errs.ErrInvalidSymbol)
	}
	if !utf8.ValidString(symbol) {
		return fmt.Errorf("%w: %q", errs.ErrInvalidSymbol, symbol)
	}

	return nil
}

func validWeight(w float64) bool {
	return w >= 0 && !math.IsInf(w, 0)
}

func malformed(reason string) error {
	return fmt.Errorf("%w: %s", errs.ErrMalformedTable, reason)
}
