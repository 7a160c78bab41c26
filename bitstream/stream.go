package bitstream

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"

	"github.com/arloliu/hufftext/internal/pool"
)

// Writer accumulates bits MSB-first into a pooled buffer.
//
// A Writer is single-use: call Finish exactly once to obtain the result and
// release the buffer. It is not safe for concurrent use.
type Writer struct {
	buf *pool.ByteBuffer
	bw  *bitio.Writer
	n   int
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	buf := pool.GetPayloadBuffer()

	return &Writer{
		buf: buf,
		bw:  bitio.NewWriter(buf),
	}
}

// Len returns the number of bits written so far.
func (w *Writer) Len() int {
	return w.n
}

// WriteBit appends a single bit.
func (w *Writer) WriteBit(bit bool) {
	w.bw.TryWriteBool(bit)
	w.n++
}

// WriteBits appends every bit of b.
func (w *Writer) WriteBits(b Bits) {
	full := b.n / 8
	for i := 0; i < full; i++ {
		w.bw.TryWriteBits(uint64(b.data[i]), 8)
	}
	for i := full * 8; i < b.n; i++ {
		w.bw.TryWriteBool(b.At(i))
	}
	w.n += b.n
}

// PadTo appends zero bits until at least n bits have been written.
// It does nothing when n <= Len().
func (w *Writer) PadTo(n int) {
	for w.n < n {
		w.WriteBit(false)
	}
}

// AlignToByte appends zero bits until Len() is a multiple of 8.
func (w *Writer) AlignToByte() {
	if rem := w.n % 8; rem != 0 {
		w.PadTo(w.n + 8 - rem)
	}
}

// Finish flushes the pending bits and returns the written sequence.
// The Writer must not be used afterwards.
func (w *Writer) Finish() (Bits, error) {
	defer func() {
		pool.PutPayloadBuffer(w.buf)
		w.buf = nil
	}()

	if w.bw.TryError != nil {
		return Bits{}, fmt.Errorf("bit writer: %w", w.bw.TryError)
	}
	// Close pads the last partial byte with zero bits.
	if err := w.bw.Close(); err != nil {
		return Bits{}, fmt.Errorf("bit writer: %w", err)
	}
	if w.n == 0 {
		return Bits{}, nil
	}

	return Bits{data: w.buf.CopyBytes(), n: w.n}, nil
}

// Reader yields the bits of a Bits value in order.
type Reader struct {
	br        *bitio.Reader
	remaining int
}

// NewReader creates a Reader positioned at the first bit of b.
func NewReader(b Bits) *Reader {
	return &Reader{
		br:        bitio.NewReader(bytes.NewReader(b.data)),
		remaining: b.n,
	}
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return r.remaining
}

// ReadBit returns the next bit. ok is false once every bit has been read.
func (r *Reader) ReadBit() (bit bool, ok bool) {
	if r.remaining == 0 {
		return false, false
	}
	bit, err := r.br.ReadBool()
	if err != nil {
		r.remaining = 0
		return false, false
	}
	r.remaining--

	return bit, true
}
