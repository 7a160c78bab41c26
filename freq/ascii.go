package freq

import "unicode"

// Weights assigned by ASCII to each character class.
const (
	ASCIIAlnumWeight      = 1.0
	ASCIIWhitespaceWeight = 0.5
	ASCIIPunctWeight      = 0.25
	ASCIIOtherWeight      = 0.1
)

// ASCII returns the default table covering code points 0 through 127 in
// ascending order.
//
// Letters and digits weigh ASCIIAlnumWeight, whitespace ASCIIWhitespaceWeight,
// punctuation and symbols ASCIIPunctWeight, and the remaining control
// characters (including NUL, the default end-of-sequence marker)
// ASCIIOtherWeight.
//
// Each call returns a fresh table.
func ASCII() *Table {
	t := NewTable(unicode.MaxASCII + 1)
	for r := rune(0); r <= unicode.MaxASCII; r++ {
		_ = t.Increment(string(r), asciiWeight(r))
	}

	return t
}

func asciiWeight(r rune) float64 {
	switch {
	case unicode.IsLetter(r) || unicode.IsDigit(r):
		return ASCIIAlnumWeight
	case unicode.IsSpace(r):
		return ASCIIWhitespaceWeight
	case unicode.IsPunct(r) || unicode.IsSymbol(r):
		return ASCIIPunctWeight
	default:
		return ASCIIOtherWeight
	}
}
