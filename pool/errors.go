package pool

import "errors"

var (
	// ErrOutOfMemory is returned by Get when the backing allocator
	// cannot provide a new chunk.
	ErrOutOfMemory = errors.New("pool: out of memory")

	// ErrObjectSize is returned by New when the object size is not
	// positive.
	ErrObjectSize = errors.New("pool: invalid object size")

	// ErrChunkSize is returned by New when an explicit chunk size
	// cannot hold one object plus the per-chunk bookkeeping, or when
	// no valid default chunk size exists for the object size.
	ErrChunkSize = errors.New("pool: invalid chunk size")
)
