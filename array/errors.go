package array

import "errors"

var (
	// ErrOutOfMemory is returned when the backing allocator cannot
	// satisfy a growth request.
	ErrOutOfMemory = errors.New("array: out of memory")

	// ErrTooLarge is returned when a request would overflow the
	// addressable extent of the buffer.
	ErrTooLarge = errors.New("array: extent too large")
)
