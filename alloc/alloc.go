// Package alloc defines the backing memory capability consumed by the
// containers that own raw storage (the chunk pool and the growable array),
// together with ready-made implementations: the Go heap, an anonymous-mmap
// allocator on unix, and a budget-capped wrapper for exercising exhaustion
// paths in tests.
package alloc

// Allocator hands out raw byte buffers. Implementations are not required to
// be thread-safe; callers serialize access externally, like every other
// structure in this module.
//
// A nil return from Allocate or Reallocate means the allocator is exhausted.
// That is the one recoverable failure in this module and consumers must
// leave their own state untouched when they see it.
type Allocator interface {
	// Allocate returns a zeroed buffer of exactly size bytes, or nil.
	Allocate(size int) []byte

	// Reallocate resizes buf to size bytes, preserving its prefix, and
	// returns the resized buffer or nil. Reallocate(nil, size) behaves
	// like Allocate(size). The returned buffer may or may not alias buf;
	// on a nil return buf is still valid and untouched.
	Reallocate(buf []byte, size int) []byte

	// Deallocate releases buf. Deallocate(nil) is a no-op.
	Deallocate(buf []byte)
}

// Heap is an Allocator backed by the Go runtime heap. Its zero value is
// ready to use. Allocate never returns nil: the runtime aborts the process
// on genuine exhaustion, so the recoverable-failure path of consumers is
// exercised with Limited instead.
type Heap struct{}

// Allocate returns a fresh zeroed buffer.
func (Heap) Allocate(size int) []byte {
	return make([]byte, size)
}

// Reallocate grows or shrinks buf, copying its prefix.
func (Heap) Reallocate(buf []byte, size int) []byte {
	if buf == nil {
		return make([]byte, size)
	}
	if size <= cap(buf) {
		return buf[:size]
	}
	next := make([]byte, size)
	copy(next, buf)
	return next
}

// Deallocate drops the buffer for the garbage collector to reclaim.
func (Heap) Deallocate([]byte) {}
