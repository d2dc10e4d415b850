package core

import "fmt"

// Buffer is a runtime-tagged numeric array. It is the boundary
// currency of the public API: graph handles, traversal results and
// path buffers cross the dispatch layer type-erased, and the typed
// implementations recover the concrete slice via the As* accessors.
//
// A Buffer does not copy on construction; it aliases the slice it was
// built from. Callers that need isolation copy first.
type Buffer struct {
	kind Kind
	data any
}

// NewInt32Buffer wraps an []int32.
func NewInt32Buffer(v []int32) *Buffer { return &Buffer{kind: KindInt32, data: v} }

// NewInt64Buffer wraps an []int64.
func NewInt64Buffer(v []int64) *Buffer { return &Buffer{kind: KindInt64, data: v} }

// NewFloat32Buffer wraps a []float32.
func NewFloat32Buffer(v []float32) *Buffer { return &Buffer{kind: KindFloat32, data: v} }

// NewFloat64Buffer wraps a []float64.
func NewFloat64Buffer(v []float64) *Buffer { return &Buffer{kind: KindFloat64, data: v} }

// NewBuffer wraps any supported slice type.
func NewBuffer[T Distance](v []T) *Buffer {
	switch s := any(v).(type) {
	case []int32:
		return NewInt32Buffer(s)
	case []int64:
		return NewInt64Buffer(s)
	case []float32:
		return NewFloat32Buffer(s)
	default:
		return NewFloat64Buffer(any(v).([]float64))
	}
}

// Kind returns the element type tag.
func (b *Buffer) Kind() Kind { return b.kind }

// Len returns the number of elements.
func (b *Buffer) Len() int {
	switch s := b.data.(type) {
	case []int32:
		return len(s)
	case []int64:
		return len(s)
	case []float32:
		return len(s)
	case []float64:
		return len(s)
	default:
		return 0
	}
}

// AsInt32 returns the underlying []int32, or nil if the kind differs.
func (b *Buffer) AsInt32() []int32 {
	s, _ := b.data.([]int32)
	return s
}

// AsInt64 returns the underlying []int64, or nil if the kind differs.
func (b *Buffer) AsInt64() []int64 {
	s, _ := b.data.([]int64)
	return s
}

// AsFloat32 returns the underlying []float32, or nil if the kind differs.
func (b *Buffer) AsFloat32() []float32 {
	s, _ := b.data.([]float32)
	return s
}

// AsFloat64 returns the underlying []float64, or nil if the kind differs.
func (b *Buffer) AsFloat64() []float64 {
	s, _ := b.data.([]float64)
	return s
}

// release drops the payload so accessors observe an empty buffer.
func (b *Buffer) release() {
	b.data = nil
}

// Release drops the payload. Accessors on a released buffer return
// nil slices and zero lengths.
func (b *Buffer) Release() { b.release() }

// String describes the buffer for logs and errors.
func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer(%s, len=%d)", b.kind, b.Len())
}

// BufferAs recovers the typed slice from a Buffer, or nil if the
// element types do not match.
func BufferAs[T Distance](b *Buffer) []T {
	s, _ := b.data.([]T)
	return s
}
