package alloc

// Limited caps the number of bytes an inner allocator may have outstanding.
// It exists so tests and benchmarks can drive consumers into their
// out-of-memory paths deterministically.
type Limited struct {
	inner  Allocator
	budget int
	used   int
}

// NewLimited wraps inner with a byte budget. A nil inner defaults to the Go
// heap.
func NewLimited(inner Allocator, budget int) *Limited {
	if inner == nil {
		inner = Heap{}
	}
	return &Limited{inner: inner, budget: budget}
}

// Used returns the number of bytes currently outstanding.
func (l *Limited) Used() int { return l.used }

// Allocate returns nil once the budget would be exceeded.
func (l *Limited) Allocate(size int) []byte {
	if size > l.budget-l.used {
		return nil
	}
	buf := l.inner.Allocate(size)
	if buf != nil {
		l.used += size
	}
	return buf
}

// Reallocate accounts for the size delta against the budget.
func (l *Limited) Reallocate(buf []byte, size int) []byte {
	if buf == nil {
		return l.Allocate(size)
	}
	if size-len(buf) > l.budget-l.used {
		return nil
	}
	next := l.inner.Reallocate(buf, size)
	if next != nil {
		l.used += size - len(buf)
	}
	return next
}

// Deallocate returns buf's bytes to the budget.
func (l *Limited) Deallocate(buf []byte) {
	if buf == nil {
		return
	}
	l.used -= len(buf)
	l.inner.Deallocate(buf)
}
