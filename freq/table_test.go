package freq

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hufftext/errs"
)

func TestTable_Increment(t *testing.T) {
	var tbl Table

	require.NoError(t, tbl.Increment("b", 2))
	require.NoError(t, tbl.Increment("a", 1))
	require.NoError(t, tbl.Increment("b", 0.5))
	require.NoError(t, tbl.Increment("zero", 0))

	require.Equal(t, 2.5, tbl.Count("b"))
	require.Equal(t, 1.0, tbl.Count("a"))
	require.Equal(t, 0.0, tbl.Count("missing"))
	require.True(t, tbl.Contains("zero"))
	require.False(t, tbl.Contains("missing"))
	require.Equal(t, 3, tbl.Len())
	require.Equal(t, 3.5, tbl.Total())
	require.Equal(t, []string{"b", "a", "zero"}, tbl.Symbols())
}

func TestTable_Increment_Invalid(t *testing.T) {
	tbl := NewTable(0)

	err := tbl.Increment("a", -1)
	require.ErrorIs(t, err, errs.ErrNegativeWeight)

	nan := 0.0
	nan /= nan
	err = tbl.Increment("a", nan)
	require.ErrorIs(t, err, errs.ErrNegativeWeight)

	require.Equal(t, 0, tbl.Len())

	for _, symbol := range []string{"", "\xff", "\xfe", "a\xc3", "\xed\xa0\x80"} {
		err := tbl.Increment(symbol, 1)
		require.ErrorIs(t, err, errs.ErrInvalidSymbol, "symbol %q", symbol)
	}
	require.Equal(t, 0, tbl.Len())
}

func TestTable_All(t *testing.T) {
	tbl := NewTable(3)
	_ = tbl.Increment("x", 3)
	_ = tbl.Increment("y", 2)
	_ = tbl.Increment("z", 1)

	var symbols []string
	var weights []float64
	for s, w := range tbl.All() {
		symbols = append(symbols, s)
		weights = append(weights, w)
	}
	require.Equal(t, []string{"x", "y", "z"}, symbols)
	require.Equal(t, []float64{3, 2, 1}, weights)

	// early break
	n := 0
	for range tbl.All() {
		n++
		break
	}
	require.Equal(t, 1, n)
}

func TestTable_Clone(t *testing.T) {
	tbl := NewTable(0)
	_ = tbl.Increment("a", 1)

	c := tbl.Clone()
	_ = c.Increment("a", 1)
	_ = c.Increment("b", 1)

	require.Equal(t, 1.0, tbl.Count("a"))
	require.False(t, tbl.Contains("b"))
	require.Equal(t, 2.0, c.Count("a"))
	require.Equal(t, []string{"a", "b"}, c.Symbols())
}

func TestTable_Serialize(t *testing.T) {
	t.Run("insertion order", func(t *testing.T) {
		tbl := NewTable(0)
		_ = tbl.Increment("b", 0.5)
		_ = tbl.Increment("a", 1)
		_ = tbl.Increment("abc", 2)

		require.Equal(t, `{"b":0.5,"a":1,"abc":2}`, string(tbl.Serialize()))
	})

	t.Run("empty", func(t *testing.T) {
		require.Equal(t, "{}", string(NewTable(0).Serialize()))

		var zero Table
		require.Equal(t, "{}", string(zero.Serialize()))
	})

	t.Run("escaped keys", func(t *testing.T) {
		tbl := NewTable(0)
		_ = tbl.Increment("\x00", 0.1)
		_ = tbl.Increment(`"`, 0.25)

		require.Equal(t, `{"\u0000":0.1,"\"":0.25}`, string(tbl.Serialize()))
	})
}

func TestDeserialize(t *testing.T) {
	t.Run("preserves order", func(t *testing.T) {
		tbl, err := Deserialize([]byte(`{"z": 1, "a": 2.5, "m": 0}`))
		require.NoError(t, err)
		require.Equal(t, []string{"z", "a", "m"}, tbl.Symbols())
		require.Equal(t, 2.5, tbl.Count("a"))
		require.True(t, tbl.Contains("m"))
	})

	t.Run("empty object", func(t *testing.T) {
		tbl, err := Deserialize([]byte(`{}`))
		require.NoError(t, err)
		require.Equal(t, 0, tbl.Len())
	})

	t.Run("nil payload", func(t *testing.T) {
		_, err := Deserialize(nil)
		require.ErrorIs(t, err, errs.ErrMissingInput)
	})

	malformed := []struct {
		name    string
		payload string
	}{
		{"empty payload", ``},
		{"not json", `not json`},
		{"array", `[1, 2]`},
		{"number", `42`},
		{"string value", `{"a": "1"}`},
		{"null value", `{"a": null}`},
		{"nested object", `{"a": {"b": 1}}`},
		{"negative value", `{"a": -1}`},
		{"out of range", `{"a": 1e400}`},
		{"duplicate key", `{"a": 1, "a": 2}`},
		{"empty key", `{"": 1}`},
		{"unterminated", `{"a": 1`},
		{"trailing data", `{"a": 1} {}`},
		{"trailing garbage", `{"a": 1} x`},
	}
	for _, tt := range malformed {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Deserialize([]byte(tt.payload))
			require.ErrorIs(t, err, errs.ErrMalformedTable)
		})
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	tables := map[string]*Table{
		"ascii": ASCII(),
		"empty": NewTable(0),
	}
	built, err := Build([]string{"hello world", "<tag> & \"quotes\"", "héllo"},
		WithMaxNGramLength(3), WithEndOfSequence("\x00"))
	require.NoError(t, err)
	tables["built"] = built

	for name, tbl := range tables {
		t.Run(name, func(t *testing.T) {
			data := tbl.Serialize()
			parsed, err := Deserialize(data)
			require.NoError(t, err)
			require.Equal(t, tbl.Symbols(), parsed.Symbols())
			require.Equal(t, data, parsed.Serialize())
			require.Equal(t, tbl.Fingerprint(), parsed.Fingerprint())
		})
	}
}

func TestTable_JSON(t *testing.T) {
	type document struct {
		Name  string `json:"name"`
		Table *Table `json:"table"`
	}

	tbl := NewTable(0)
	_ = tbl.Increment("q", 3)
	_ = tbl.Increment("p", 1)

	data, err := json.Marshal(document{Name: "set", Table: tbl})
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"set","table":{"q":3,"p":1}}`, string(data))

	var decoded document
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, []string{"q", "p"}, decoded.Table.Symbols())

	err = json.Unmarshal([]byte(`{"name":"x","table":{"q":"bad"}}`), &decoded)
	require.ErrorIs(t, err, errs.ErrMalformedTable)
}

func TestTable_Fingerprint(t *testing.T) {
	a := NewTable(0)
	_ = a.Increment("x", 1)
	_ = a.Increment("y", 2)

	b := NewTable(0)
	_ = b.Increment("y", 2)
	_ = b.Increment("x", 1)

	require.Equal(t, a.Fingerprint(), a.Clone().Fingerprint())
	require.NotEqual(t, a.Fingerprint(), b.Fingerprint(), "order is part of the identity")

	t.Run("symbol boundaries", func(t *testing.T) {
		joined := NewTable(0)
		_ = joined.Increment("a\x00", 1)
		_ = joined.Increment("b", 1)

		split := NewTable(0)
		_ = split.Increment("a", 1)
		_ = split.Increment("\x00b", 1)

		require.NotEqual(t, joined.Fingerprint(), split.Fingerprint())
	})

	t.Run("weights", func(t *testing.T) {
		heavier := a.Clone()
		_ = heavier.Increment("y", 0.5)
		require.NotEqual(t, a.Fingerprint(), heavier.Fingerprint())
	})

	t.Run("distinct non-ASCII symbols", func(t *testing.T) {
		first := NewTable(0)
		_ = first.Increment("a", 2)
		_ = first.Increment("ÿ", 1)
		_ = first.Increment("\x00", 1)

		second := NewTable(0)
		_ = second.Increment("a", 2)
		_ = second.Increment("þ", 1)
		_ = second.Increment("\x00", 1)

		require.NotEqual(t, first.Fingerprint(), second.Fingerprint())
		require.NotEqual(t, first.Serialize(), second.Serialize())
	})
}

func TestASCII(t *testing.T) {
	tbl := ASCII()

	require.Equal(t, 128, tbl.Len())
	require.Equal(t, "\x00", tbl.Symbols()[0])
	require.Equal(t, "\x7f", tbl.Symbols()[127])

	tests := []struct {
		symbol string
		weight float64
	}{
		{"a", ASCIIAlnumWeight},
		{"Z", ASCIIAlnumWeight},
		{"7", ASCIIAlnumWeight},
		{" ", ASCIIWhitespaceWeight},
		{"\t", ASCIIWhitespaceWeight},
		{"\n", ASCIIWhitespaceWeight},
		{"!", ASCIIPunctWeight},
		{"+", ASCIIPunctWeight},
		{"~", ASCIIPunctWeight},
		{"\x00", ASCIIOtherWeight},
		{"\x1b", ASCIIOtherWeight},
		{"\x7f", ASCIIOtherWeight},
	}
	for _, tt := range tests {
		require.Equal(t, tt.weight, tbl.Count(tt.symbol), "symbol %q", tt.symbol)
	}

	// fresh table per call
	_ = tbl.Increment("a", 10)
	require.Equal(t, ASCIIAlnumWeight, ASCII().Count("a"))
}
