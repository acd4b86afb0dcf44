//go:build !unix

package alloc

// Mmap falls back to the Go heap on platforms without anonymous mmap.
type Mmap struct{ Heap }
