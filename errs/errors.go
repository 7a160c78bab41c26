// Package errs defines the error values returned by the hufftext packages.
//
// All errors are returned synchronously; callers should match them with
// errors.Is and errors.As since most call sites wrap them with context.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInput is returned when a required argument (table, payload) is nil.
	ErrMissingInput = errors.New("missing input")

	// ErrUnencodableSymbol is returned when the input contains a symbol that has no code.
	ErrUnencodableSymbol = errors.New("unencodable symbol")

	// ErrConfiguration is returned when a codec or builder configuration is inconsistent.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrLengthAlignment is returned when a byte-oriented representation is requested
	// for a bit sequence whose length is not a multiple of 8.
	ErrLengthAlignment = errors.New("bit length is not a multiple of 8")

	// ErrInvalidSymbol is returned when a symbol is empty or not valid UTF-8.
	ErrInvalidSymbol = errors.New("symbol must be non-empty valid UTF-8")

	// ErrMalformedTable is returned when a persisted frequency table cannot be parsed.
	ErrMalformedTable = errors.New("malformed frequency table")

	// ErrNegativeWeight is returned when a frequency table would hold a negative or NaN weight.
	ErrNegativeWeight = errors.New("weight must be a non-negative number")

	// ErrInvalidNGramLength is returned when the maximum n-gram length is less than 1.
	ErrInvalidNGramLength = errors.New("max n-gram length must be at least 1")

	// ErrUnknownEncoding is returned when a textual encoding is not recognized.
	ErrUnknownEncoding = errors.New("unknown textual encoding")

	// ErrInvalidEncodedText is returned when encoded text is not valid for its declared encoding.
	ErrInvalidEncodedText = errors.New("invalid encoded text")
)

// UnencodableSymbolError reports the first symbol of an input that has no code
// in the code table.
type UnencodableSymbolError struct {
	// Symbol is the offending character.
	Symbol string
	// Offset is the byte offset of Symbol in the input.
	Offset int
}

func (e *UnencodableSymbolError) Error() string {
	return fmt.Sprintf("%s %q at offset %d", ErrUnencodableSymbol, e.Symbol, e.Offset)
}

// Is reports whether target is ErrUnencodableSymbol.
func (e *UnencodableSymbolError) Is(target error) bool {
	return target == ErrUnencodableSymbol
}
