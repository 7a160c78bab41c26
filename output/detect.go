package output

import (
	"encoding/base64"

	"github.com/arloliu/hufftext/format"
)

// Detect classifies text as Bin, Hex or Base64, in that priority order, and
// returns format.EncodingUnknown when none applies or text is empty.
//
// The classification only looks at the alphabet: "0101" is reported as Bin
// although it is also valid Hex and Base64, and an odd-length run of hex
// digits is reported as Hex although it cannot be decoded.
func Detect(text string) format.StringEncoding {
	if text == "" {
		return format.EncodingUnknown
	}

	bin, hexDigits := true, true
	for i := 0; i < len(text) && (bin || hexDigits); i++ {
		c := text[i]
		if c != '0' && c != '1' {
			bin = false
		}
		if !isHexDigit(c) {
			hexDigits = false
		}
	}

	switch {
	case bin:
		return format.EncodingBin
	case hexDigits:
		return format.EncodingHex
	}

	if _, err := base64.StdEncoding.DecodeString(text); err == nil {
		return format.EncodingBase64
	}

	return format.EncodingUnknown
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n] + "..."
}
