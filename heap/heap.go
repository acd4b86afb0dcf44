// Package heap provides a priority queue of element pointers backed by a
// Go slice. The element with the smallest comparator value sits on top.
//
// An optional index callback reports the current slice index of every
// element whenever it moves, which is what makes Touch and Extract by
// index possible for callers that track their elements.
package heap

// Compare orders two elements. Negative means a has priority over b.
type Compare[T any] func(a, b *T) int

// A Heap is a binary min-heap over element pointers. The zero value is
// not ready for use, call Init or New.
type Heap[T any] struct {
	data     []*T
	compare  Compare[T]
	setIndex func(*T, int)
}

// New returns an initialized empty heap ordered by compare. setIndex,
// when not nil, is called every time an element is assigned a slot.
func New[T any](compare Compare[T], setIndex func(*T, int)) *Heap[T] {
	return new(Heap[T]).Init(compare, setIndex)
}

// Init initializes or clears the heap.
func (h *Heap[T]) Init(compare Compare[T], setIndex func(*T, int)) *Heap[T] {
	if compare == nil {
		panic("heap: Init requires a comparator")
	}
	h.data = h.data[:0]
	h.compare = compare
	h.setIndex = setIndex
	return h
}

// Len returns the number of elements stored.
func (h *Heap[T]) Len() int { return len(h.data) }

// Empty reports whether the heap holds no elements.
func (h *Heap[T]) Empty() bool { return len(h.data) == 0 }

// Top returns the element with the highest priority. The heap must not
// be empty.
func (h *Heap[T]) Top() *T {
	if len(h.data) == 0 {
		panic("heap: Top on an empty heap")
	}
	return h.data[0]
}

func (h *Heap[T]) place(elem *T, index int) {
	h.data[index] = elem
	if h.setIndex != nil {
		h.setIndex(elem, index)
	}
}

// siftUp moves the element at index towards the top while it has
// priority over its parent.
func (h *Heap[T]) siftUp(index int) {
	elem := h.data[index]
	for index > 0 {
		up := (index - 1) / 2
		if h.compare(elem, h.data[up]) >= 0 {
			break
		}
		h.place(h.data[up], index)
		index = up
	}
	h.place(elem, index)
}

// siftDown moves the element at index towards the leaves while one of
// its children has priority over it.
func (h *Heap[T]) siftDown(index int) {
	elem := h.data[index]
	for {
		child := 2*index + 1
		if child >= len(h.data) {
			break
		}
		if next := child + 1; next < len(h.data) &&
			h.compare(h.data[next], h.data[child]) < 0 {
			child = next
		}
		if h.compare(h.data[child], elem) >= 0 {
			break
		}
		h.place(h.data[child], index)
		index = child
	}
	h.place(elem, index)
}

// Push inserts an element.
func (h *Heap[T]) Push(elem *T) {
	h.data = append(h.data, elem)
	h.place(elem, len(h.data)-1)
	h.siftUp(len(h.data) - 1)
}

// Pop removes the element with the highest priority and returns it. The
// heap must not be empty.
func (h *Heap[T]) Pop() *T {
	if len(h.data) == 0 {
		panic("heap: Pop on an empty heap")
	}
	top := h.data[0]
	last := len(h.data) - 1
	elem := h.data[last]
	h.data[last] = nil
	h.data = h.data[:last]
	if last > 0 {
		h.place(elem, 0)
		h.siftDown(0)
	}
	return top
}

// Touch restores heap order after the priority of the element at index
// has increased. Decreased priorities need Extract and a fresh Push.
func (h *Heap[T]) Touch(index int) {
	if index < 0 || index >= len(h.data) {
		panic("heap: Touch index out of range")
	}
	h.siftUp(index)
}

// Extract removes the element at index and returns it.
func (h *Heap[T]) Extract(index int) *T {
	if index < 0 || index >= len(h.data) {
		panic("heap: Extract index out of range")
	}

	// Bring the element on top regardless of its priority, then pop.
	elem := h.data[index]
	for index > 0 {
		up := (index - 1) / 2
		h.place(h.data[up], index)
		index = up
	}
	h.place(elem, 0)
	return h.Pop()
}
