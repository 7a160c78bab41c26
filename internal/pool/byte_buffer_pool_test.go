package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(64)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 64, cap(bb.B))
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(4)

	n, err := bb.Write([]byte("ab"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, bb.WriteByte('c'))

	n, err = bb.WriteString("def")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, []byte("abcdef"), bb.Bytes())
	assert.Equal(t, 6, bb.Len())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.WriteString("some data")
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, originalCap, cap(bb.B))
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("no-op with enough capacity", func(t *testing.T) {
		bb := NewByteBuffer(32)
		bb.Grow(16)
		assert.Equal(t, 32, cap(bb.B))
	})

	t.Run("grows by default size for small buffers", func(t *testing.T) {
		bb := NewByteBuffer(8)
		_, _ = bb.WriteString("12345678")
		bb.Grow(1)
		assert.Equal(t, 8+PayloadBufferDefaultSize, cap(bb.B))
		assert.Equal(t, []byte("12345678"), bb.Bytes())
	})

	t.Run("grows by at least required bytes", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(PayloadBufferDefaultSize * 3)
		assert.GreaterOrEqual(t, cap(bb.B), PayloadBufferDefaultSize*3)
	})
}

func TestByteBuffer_CopyBytes(t *testing.T) {
	bb := NewByteBuffer(8)
	_, _ = bb.WriteString("abc")

	out := bb.CopyBytes()
	bb.Reset()
	_, _ = bb.WriteString("xyz")

	assert.Equal(t, []byte("abc"), out)
}

func TestByteBufferPool(t *testing.T) {
	t.Run("returned buffers are reset", func(t *testing.T) {
		p := NewByteBufferPool(16, 1024)
		bb := p.Get()
		_, _ = bb.WriteString("payload")
		p.Put(bb)

		again := p.Get()
		assert.Equal(t, 0, again.Len())
	})

	t.Run("oversized buffers are dropped", func(t *testing.T) {
		p := NewByteBufferPool(16, 32)
		bb := p.Get()
		bb.Grow(1024)
		p.Put(bb)

		again := p.Get()
		assert.LessOrEqual(t, cap(again.B), 32)
	})

	t.Run("nil put is ignored", func(t *testing.T) {
		p := NewByteBufferPool(16, 32)
		require.NotPanics(t, func() { p.Put(nil) })
	})

	t.Run("concurrent use", func(t *testing.T) {
		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 100 {
					bb := GetPayloadBuffer()
					_ = bb.WriteByte(0xFF)
					PutPayloadBuffer(bb)
					tb := GetTableBuffer()
					_, _ = tb.WriteString("{}")
					PutTableBuffer(tb)
				}
			}()
		}
		wg.Wait()
	})
}
