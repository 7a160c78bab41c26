package format

type (
	StringEncoding  uint8
	CompressionType uint8
)

const (
	EncodingAuto    StringEncoding = 0x0 // EncodingAuto detects the format on decode and emits Hex on encode.
	EncodingBin     StringEncoding = 0x1 // EncodingBin renders one '0'/'1' character per bit.
	EncodingHex     StringEncoding = 0x2 // EncodingHex renders two uppercase hex digits per byte.
	EncodingBase64  StringEncoding = 0x3 // EncodingBase64 renders bytes with standard padded base64.
	EncodingUnknown StringEncoding = 0xF // EncodingUnknown is reported by detection when nothing matches.

	CompressionNone    CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd    CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2      CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4     CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionHuffman CompressionType = 0x5 // CompressionHuffman represents the prefix-code codec.
)

func (e StringEncoding) String() string {
	switch e {
	case EncodingAuto:
		return "Auto"
	case EncodingBin:
		return "Bin"
	case EncodingHex:
		return "Hex"
	case EncodingBase64:
		return "Base64"
	default:
		return "Unknown"
	}
}

// IsByteOriented reports whether the encoding groups bits into bytes.
func (e StringEncoding) IsByteOriented() bool {
	return e == EncodingAuto || e == EncodingHex || e == EncodingBase64
}

// Valid reports whether e is one of the selectable encodings.
func (e StringEncoding) Valid() bool {
	switch e {
	case EncodingAuto, EncodingBin, EncodingHex, EncodingBase64:
		return true
	default:
		return false
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionHuffman:
		return "Huffman"
	default:
		return "Unknown"
	}
}
