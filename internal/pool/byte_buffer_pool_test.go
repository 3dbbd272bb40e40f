package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.B = append(bb.B, []byte("abc")...)

	bb.Grow(4) // fits in existing capacity
	require.Equal(t, 8, cap(bb.B))
	require.Equal(t, "abc", string(bb.Bytes()))

	bb.Grow(100)
	require.GreaterOrEqual(t, cap(bb.B), 103)
	require.Equal(t, "abc", string(bb.Bytes()))
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.B = append(bb.B, []byte("hello")...)
	require.Equal(t, 5, bb.Len())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 16, cap(bb.B))
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(32, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	bb.B = append(bb.B, []byte("payload")...)
	p.Put(bb)

	// Buffers come back empty regardless of previous contents.
	bb2 := p.Get()
	require.Equal(t, 0, bb2.Len())
}

func TestByteBufferPool_PutNil(t *testing.T) {
	p := NewByteBufferPool(32, 1024)
	require.NotPanics(t, func() { p.Put(nil) })
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	bb.B = append(bb.B, make([]byte, 1024)...)
	require.NotPanics(t, func() { p.Put(bb) })

	// The oversized buffer was discarded; a fresh one has default capacity.
	bb2 := p.Get()
	require.LessOrEqual(t, cap(bb2.B), 64)
}

func TestDefaultPools(t *testing.T) {
	row := GetRowBuffer()
	require.NotNil(t, row)
	PutRowBuffer(row)

	enc := GetEncodeBuffer()
	require.NotNil(t, enc)
	PutEncodeBuffer(enc)
}
