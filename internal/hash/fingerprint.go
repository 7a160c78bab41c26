package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of data.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// FingerprintParts hashes the parts as one stream, separating them with a zero
// byte so that ("ab", "c") and ("a", "bc") produce different fingerprints.
func FingerprintParts(parts ...[]byte) uint64 {
	d := xxhash.New()
	for i, p := range parts {
		if i > 0 {
			_, _ = d.Write([]byte{0})
		}
		_, _ = d.Write(p)
	}

	return d.Sum64()
}
