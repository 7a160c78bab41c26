package output

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/arloliu/hufftext/bitstream"
	"github.com/arloliu/hufftext/errs"
	"github.com/arloliu/hufftext/format"
)

// BinCodec renders one ASCII '0' or '1' per bit.
type BinCodec struct{}

var _ Codec = BinCodec{}

func (BinCodec) Encoding() format.StringEncoding { return format.EncodingBin }

func (BinCodec) Encode(bits bitstream.Bits) (string, error) {
	return bits.String(), nil
}

func (BinCodec) Decode(text string) (bitstream.Bits, error) {
	w := bitstream.NewWriter()
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '0':
			w.WriteBit(false)
		case '1':
			w.WriteBit(true)
		default:
			_, _ = w.Finish()
			return bitstream.Bits{}, invalidText(format.EncodingBin, fmt.Sprintf("unexpected character %q at offset %d", text[i], i))
		}
	}

	return w.Finish()
}

// HexCodec renders two uppercase hex digits per byte. Decoding accepts
// either case.
type HexCodec struct{}

var _ Codec = HexCodec{}

func (HexCodec) Encoding() format.StringEncoding { return format.EncodingHex }

func (HexCodec) Encode(bits bitstream.Bits) (string, error) {
	data, err := bits.Bytes()
	if err != nil {
		return "", err
	}

	return strings.ToUpper(hex.EncodeToString(data)), nil
}

func (HexCodec) Decode(text string) (bitstream.Bits, error) {
	data, err := hex.DecodeString(text)
	if err != nil {
		return bitstream.Bits{}, invalidText(format.EncodingHex, err)
	}

	return bitstream.FromBytes(data), nil
}

// Base64Codec renders bytes with the standard padded base64 alphabet.
type Base64Codec struct{}

var _ Codec = Base64Codec{}

func (Base64Codec) Encoding() format.StringEncoding { return format.EncodingBase64 }

func (Base64Codec) Encode(bits bitstream.Bits) (string, error) {
	data, err := bits.Bytes()
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(data), nil
}

func (Base64Codec) Decode(text string) (bitstream.Bits, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return bitstream.Bits{}, invalidText(format.EncodingBase64, err)
	}

	return bitstream.FromBytes(data), nil
}

// AutoCodec encodes as Hex and decodes whichever representation Detect
// reports.
type AutoCodec struct{}

var _ Codec = AutoCodec{}

func (AutoCodec) Encoding() format.StringEncoding { return format.EncodingAuto }

func (AutoCodec) Encode(bits bitstream.Bits) (string, error) {
	return hexCodec.Encode(bits)
}

// Decode returns the empty sequence for empty text and
// errs.ErrUnknownEncoding when no representation matches.
func (AutoCodec) Decode(text string) (bitstream.Bits, error) {
	if text == "" {
		return bitstream.Bits{}, nil
	}

	detected := Detect(text)
	if detected == format.EncodingUnknown {
		return bitstream.Bits{}, fmt.Errorf("%w: cannot detect the representation of %q",
			errs.ErrUnknownEncoding, truncate(text, 16))
	}

	return Decode(detected, text)
}
