// Package array provides a growable array of fixed-size items stored in
// one contiguous byte buffer obtained from an alloc.Allocator. It trades
// the convenience of Go slices for explicit control over the backing
// allocation, which lets callers account for or cap the memory used.
//
// Failed operations leave the array exactly as it was.
package array

import (
	"math"

	"github.com/joshuapare/intrusive/alloc"
)

// An Array stores length items of itemSize bytes each in a buffer that
// grows by doubling. The zero value is not ready for use, call Init or
// New.
type Array struct {
	allocator alloc.Allocator
	itemSize  int
	capacity  int
	length    int
	buffer    []byte
}

// New returns an initialized empty array of itemSize-byte items backed
// by allocator.
func New(allocator alloc.Allocator, itemSize int) *Array {
	return new(Array).Init(allocator, itemSize)
}

// Init initializes or clears the array. A previous buffer is abandoned,
// not released; call Finalize first to release it.
func (a *Array) Init(allocator alloc.Allocator, itemSize int) *Array {
	if allocator == nil {
		panic("array: Init requires an allocator")
	}
	if itemSize <= 0 {
		panic("array: Init requires a positive item size")
	}
	a.allocator = allocator
	a.itemSize = itemSize
	a.capacity = 0
	a.length = 0
	a.buffer = nil
	return a
}

// Finalize releases the backing buffer. The array must be initialized
// again before reuse.
func (a *Array) Finalize() {
	if a.buffer != nil {
		a.allocator.Deallocate(a.buffer)
		a.buffer = nil
	}
	a.capacity = 0
	a.length = 0
}

// Len returns the number of items stored.
func (a *Array) Len() int { return a.length }

// ItemSize returns the size of one item in bytes.
func (a *Array) ItemSize() int { return a.itemSize }

// Get returns the bytes of n consecutive items starting at index, or
// nil when the range is not fully inside the array.
func (a *Array) Get(index, n int) []byte {
	if index < 0 || n < 0 || index >= a.length || n > a.length-index {
		return nil
	}
	s := index * a.itemSize
	return a.buffer[s : s+n*a.itemSize]
}

// extent returns count*itemSize, guarding against overflow.
func (a *Array) extent(count int) (int, bool) {
	if count > math.MaxInt/a.itemSize {
		return 0, false
	}
	return count * a.itemSize, true
}

// expand grows the buffer by doubling until it can hold n more items.
func (a *Array) expand(n int) error {
	capacity := a.capacity * 2
	if capacity == 0 {
		capacity = 2
	}
	for n > capacity-a.length {
		if capacity > math.MaxInt/2 {
			return ErrTooLarge
		}
		capacity *= 2
	}

	size, ok := a.extent(capacity)
	if !ok {
		return ErrTooLarge
	}
	buffer := a.allocator.Reallocate(a.buffer, size)
	if buffer == nil {
		return ErrOutOfMemory
	}
	a.buffer = buffer
	a.capacity = capacity
	return nil
}

// Insert makes room for n items at index, shifting later items towards
// the end, and returns the bytes of the fresh room. The new items are
// not cleared. An index beyond the end is clamped to the end.
func (a *Array) Insert(index, n int) ([]byte, error) {
	if index < 0 || n < 0 {
		panic("array: negative index or count")
	}
	if index > a.length {
		index = a.length
	}
	s, ok := a.extent(index)
	if !ok {
		return nil, ErrTooLarge
	}
	if n == 0 {
		return a.buffer[s:s], nil
	}
	d, ok := a.extent(n)
	if !ok {
		return nil, ErrTooLarge
	}
	if a.length > math.MaxInt-n {
		return nil, ErrTooLarge
	}

	if a.length+n > a.capacity {
		if err := a.expand(n); err != nil {
			return nil, err
		}
	}

	if moved := a.length - index; moved > 0 {
		size := moved * a.itemSize
		copy(a.buffer[s+d:s+d+size], a.buffer[s:s+size])
	}
	a.length += n

	return a.buffer[s : s+d], nil
}

// Delete removes up to n items at index, shifting later items towards
// the beginning, and returns how many were removed. Any of the items
// being out of range only shortens the removal.
func (a *Array) Delete(index, n int) int {
	if index < 0 || n < 0 {
		panic("array: negative index or count")
	}
	if n == 0 || index >= a.length {
		return 0
	}

	rest := a.length - index
	if n >= rest {
		a.length = index
		return rest
	}

	s := index * a.itemSize
	d := n * a.itemSize
	size := (rest - n) * a.itemSize
	copy(a.buffer[s:s+size], a.buffer[s+d:s+d+size])
	a.length -= n
	return n
}

// Extend appends room for n items and returns their bytes.
func (a *Array) Extend(n int) ([]byte, error) {
	return a.Insert(a.length, n)
}

// Reduce removes up to n items from the end and returns how many were
// removed.
func (a *Array) Reduce(n int) int {
	index := 0
	if a.length > n {
		index = a.length - n
	}
	return a.Delete(index, n)
}
