//go:build unix

package alloc

import "golang.org/x/sys/unix"

// Mmap is an Allocator that draws anonymous pages straight from the kernel,
// bypassing the Go heap. Buffers it returns must be released with Deallocate
// on the same Mmap value, passing the exact slice that was handed out.
//
// Only available on unix; other platforms fall back to the Go heap.
type Mmap struct{}

// Allocate maps size bytes of zeroed anonymous memory, or returns nil when
// the kernel refuses.
func (Mmap) Allocate(size int) []byte {
	if size <= 0 {
		return nil
	}
	buf, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil
	}
	return buf
}

// Reallocate maps a new region, copies the prefix, and unmaps the old one.
func (m Mmap) Reallocate(buf []byte, size int) []byte {
	if buf == nil {
		return m.Allocate(size)
	}
	if size <= len(buf) {
		// Shrinking within the same mapping is a no-op success.
		return buf[:size:len(buf)]
	}
	next := m.Allocate(size)
	if next == nil {
		return nil
	}
	copy(next, buf)
	m.Deallocate(buf)
	return next
}

// Deallocate unmaps buf. Double-unmap errors are swallowed, matching munmap
// semantics for callers that treat release as idempotent.
func (Mmap) Deallocate(buf []byte) {
	if buf == nil {
		return
	}
	_ = unix.Munmap(buf[:cap(buf)])
}
