// Package output converts bit sequences to and from their textual
// representations.
//
// Four representations are supported, selected by format.StringEncoding:
//
//   - Bin: one '0' or '1' character per bit, in order.
//   - Hex: bits grouped into bytes (first bit most significant), two uppercase
//     hex digits per byte.
//   - Base64: the same bytes in standard padded base64.
//   - Auto: Hex on encode; on decode the representation is detected with the
//     fixed priority Bin > Hex > Base64.
//
// Hex and Base64 only represent whole bytes, so encoding a sequence whose
// length is not a multiple of 8 fails with errs.ErrLengthAlignment.
package output

import (
	"fmt"

	"github.com/arloliu/hufftext/bitstream"
	"github.com/arloliu/hufftext/errs"
	"github.com/arloliu/hufftext/format"
)

// Codec converts bit sequences to and from one textual representation.
type Codec interface {
	// Encoding returns the representation handled by the codec.
	Encoding() format.StringEncoding

	// Encode renders bits as text.
	Encode(bits bitstream.Bits) (string, error)

	// Decode parses text produced by Encode.
	Decode(text string) (bitstream.Bits, error)
}

var (
	binCodec    = BinCodec{}
	hexCodec    = HexCodec{}
	base64Codec = Base64Codec{}
	autoCodec   = AutoCodec{}
)

// Get returns the codec for encoding.
//
// Returns errs.ErrUnknownEncoding for EncodingUnknown or any unlisted value.
func Get(encoding format.StringEncoding) (Codec, error) {
	switch encoding {
	case format.EncodingBin:
		return binCodec, nil
	case format.EncodingHex:
		return hexCodec, nil
	case format.EncodingBase64:
		return base64Codec, nil
	case format.EncodingAuto:
		return autoCodec, nil
	default:
		return nil, fmt.Errorf("%w: %s (0x%x)", errs.ErrUnknownEncoding, encoding, uint8(encoding))
	}
}

// Encode renders bits with the given encoding.
func Encode(encoding format.StringEncoding, bits bitstream.Bits) (string, error) {
	c, err := Get(encoding)
	if err != nil {
		return "", err
	}

	return c.Encode(bits)
}

// Decode parses text with the given encoding.
func Decode(encoding format.StringEncoding, text string) (bitstream.Bits, error) {
	c, err := Get(encoding)
	if err != nil {
		return bitstream.Bits{}, err
	}

	return c.Decode(text)
}

func invalidText(encoding format.StringEncoding, reason any) error {
	return fmt.Errorf("%w: %s: %v", errs.ErrInvalidEncodedText, encoding, reason)
}
