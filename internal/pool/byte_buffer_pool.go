package pool

import (
	"io"
	"sync"
)

const (
	ArtifactBufferDefaultSize  = 1024 * 4   // 4KiB
	ArtifactBufferMaxThreshold = 1024 * 256 // 256KiB
)

// ByteBuffer is an append-only byte sink. It implements io.Writer and
// io.ByteWriter, so a bit writer can use it without an extra bufio layer.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

var (
	_ io.Writer     = (*ByteBuffer)(nil)
	_ io.ByteWriter = (*ByteBuffer)(nil)
)

// NewByteBuffer creates a new ByteBuffer with the specified capacity.
func NewByteBuffer(size int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, size),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Clone returns a copy of the buffer contents that is safe to keep after the
// buffer goes back to its pool.
func (bb *ByteBuffer) Clone() []byte {
	out := make([]byte, len(bb.B))
	copy(out, bb.B)

	return out
}

// Reset empties the buffer but keeps the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow ensures the buffer can take n more bytes without reallocating.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+n)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends data to the buffer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteByte appends a single byte to the buffer.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// ByteBufferPool is a sync.Pool of ByteBuffers.
//
// Buffers whose capacity grew beyond maxThreshold are dropped on Put instead
// of being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of defaultSize capacity.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns bb to the pool.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var artifactPool = NewByteBufferPool(ArtifactBufferDefaultSize, ArtifactBufferMaxThreshold)

// GetArtifactBuffer retrieves a ByteBuffer from the artifact pool.
func GetArtifactBuffer() *ByteBuffer {
	return artifactPool.Get()
}

// PutArtifactBuffer returns a ByteBuffer to the artifact pool.
func PutArtifactBuffer(bb *ByteBuffer) {
	artifactPool.Put(bb)
}
