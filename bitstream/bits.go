// Package bitstream holds the bit sequences produced and consumed by the codec.
//
// A Bits value is an immutable, MSB-first packed sequence of bits with an
// explicit length. Bit 0 is the most significant bit of the first byte, so a
// sequence whose length is a multiple of 8 maps directly onto bytes in order.
// Unused trailing bits of the last byte are always zero.
//
// Writer and Reader stream bits into and out of a Bits value on top of
// github.com/icza/bitio.
package bitstream

import (
	"fmt"
	"strings"

	"github.com/arloliu/hufftext/errs"
)

// Bits is an immutable sequence of bits. The zero value is the empty sequence.
type Bits struct {
	data []byte
	n    int
}

// FromBytes returns the 8*len(data) bits of data, most significant bit first.
// The slice is copied.
func FromBytes(data []byte) Bits {
	if len(data) == 0 {
		return Bits{}
	}
	cp := make([]byte, len(data))
	copy(cp, data)

	return Bits{data: cp, n: len(data) * 8}
}

// FromBools returns the bits in order.
func FromBools(bits ...bool) Bits {
	out := Bits{data: make([]byte, (len(bits)+7)/8), n: len(bits)}
	for i, bit := range bits {
		if bit {
			out.data[i>>3] |= 0x80 >> (i & 7)
		}
	}

	return out
}

// Len returns the number of bits.
func (b Bits) Len() int {
	return b.n
}

// IsEmpty reports whether the sequence holds no bits.
func (b Bits) IsEmpty() bool {
	return b.n == 0
}

// At returns the bit at index i. It panics if i is out of range.
func (b Bits) At(i int) bool {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("bitstream: index %d out of range [0, %d)", i, b.n))
	}

	return b.data[i>>3]&(0x80>>(i&7)) != 0
}

// Append returns a new sequence with bit added at the end. b is not modified.
func (b Bits) Append(bit bool) Bits {
	size := (b.n + 8) / 8
	data := make([]byte, size)
	copy(data, b.data)
	if bit {
		data[b.n>>3] |= 0x80 >> (b.n & 7)
	}

	return Bits{data: data, n: b.n + 1}
}

// Concat returns b followed by other.
func (b Bits) Concat(other Bits) Bits {
	if other.n == 0 {
		return b
	}
	w := NewWriter()
	w.WriteBits(b)
	w.WriteBits(other)
	out, _ := w.Finish()

	return out
}

// HasPrefix reports whether prefix is a prefix of b.
func (b Bits) HasPrefix(prefix Bits) bool {
	if prefix.n > b.n {
		return false
	}
	full := prefix.n / 8
	for i := 0; i < full; i++ {
		if b.data[i] != prefix.data[i] {
			return false
		}
	}
	for i := full * 8; i < prefix.n; i++ {
		if b.At(i) != prefix.At(i) {
			return false
		}
	}

	return true
}

// Equal reports whether b and other hold the same bits.
func (b Bits) Equal(other Bits) bool {
	return b.n == other.n && b.HasPrefix(other)
}

// IsByteAligned reports whether the length is a multiple of 8.
func (b Bits) IsByteAligned() bool {
	return b.n%8 == 0
}

// Bytes returns the bits grouped into bytes, first bit most significant.
//
// Returns:
//   - []byte: A copy of the packed bytes (nil for the empty sequence)
//   - error: errs.ErrLengthAlignment if Len() is not a multiple of 8
func (b Bits) Bytes() ([]byte, error) {
	if !b.IsByteAligned() {
		return nil, fmt.Errorf("%w: length %d", errs.ErrLengthAlignment, b.n)
	}
	if b.n == 0 {
		return nil, nil
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)

	return out, nil
}

// Bools returns the bits as a bool slice.
func (b Bits) Bools() []bool {
	out := make([]bool, b.n)
	for i := range out {
		out[i] = b.At(i)
	}

	return out
}

// String renders the bits as '0' and '1' characters.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		if b.At(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
