// Package deque implements an intrusive doubly-ended queue.
//
// Each element carries a single forward link, which keeps the footprint
// minimal: insertion and removal after a known reference are O(1), and so is
// appending at either end thanks to a cached pointer to the last node.
// Operations that need the predecessor of an arbitrary node are O(n) as the
// queue has to be walked from the head to find it.
package deque

import "github.com/joshuapare/intrusive"

// Node is the link record an element embeds to join a Deque. It holds no
// payload of its own; Bind associates it with its element exactly once.
type Node[T any] struct {
	next *Node[T]
	elem *T
}

// Bind associates the node with the element embedding it and returns the
// node for chaining.
func (n *Node[T]) Bind(elem *T) *Node[T] {
	n.elem = elem
	return n
}

// Elem returns the element the node was bound to, or nil for sentinels.
func (n *Node[T]) Elem() *T {
	return n.elem
}

// Deque is a doubly-ended queue of intrusive nodes. Use New, or call Init
// before first use.
type Deque[T any] struct {
	head Node[T]
	tail Node[T]
	last *Node[T] // node right before tail
}

// New returns an initialized empty deque.
func New[T any]() *Deque[T] {
	q := &Deque[T]{}
	q.Init()
	return q
}

// Init initializes or clears the deque. Any previously linked nodes are
// abandoned, not unlinked.
func (q *Deque[T]) Init() {
	q.head.next = &q.tail
	q.tail.next = nil
	q.last = &q.head
}

// Head returns the sentinel before the first element. It carries no element
// and must not be dereferenced as one.
func (q *Deque[T]) Head() *Node[T] { return &q.head }

// Tail returns the sentinel after the last element. It carries no element
// and must not be dereferenced as one.
func (q *Deque[T]) Tail() *Node[T] { return &q.tail }

// Walk returns the neighbor of n in the given direction, or nil when moving
// out of range. Walking Next is O(1); walking Prev is O(n) since the queue
// only links forward.
func (q *Deque[T]) Walk(n *Node[T], dir intrusive.Direction) *Node[T] {
	if dir == intrusive.Next {
		return n.next
	}
	if n == &q.tail {
		return q.last
	}
	if n == &q.head {
		return nil
	}
	prev := &q.head
	for prev.next != n {
		prev = prev.next
	}
	return prev
}

// First returns the first element's node, or the tail sentinel when empty.
func (q *Deque[T]) First() *Node[T] { return q.head.next }

// Last returns the last element's node, or the head sentinel when empty.
func (q *Deque[T]) Last() *Node[T] { return q.last }

// Empty reports whether the deque holds no elements.
func (q *Deque[T]) Empty() bool { return q.head.next == &q.tail }

// AddAfter inserts n after prev. Inserting after the tail sentinel is a
// logic error.
func (q *Deque[T]) AddAfter(prev, n *Node[T]) *Node[T] {
	next := prev.next
	if next == nil {
		panic("deque: add after the tail sentinel")
	}
	if prev == q.last {
		q.last = n
	}
	n.next = next
	prev.next = n
	return n
}

// DelAfter removes and returns the node following prev. Removing the tail
// sentinel (or beyond) is a logic error.
func (q *Deque[T]) DelAfter(prev *Node[T]) *Node[T] {
	curr := prev.next
	if curr == nil || curr == &q.tail {
		panic("deque: del at or after the tail sentinel")
	}
	if curr == q.last {
		q.last = prev
	}
	prev.next = curr.next
	curr.next = nil
	return curr
}

// Add inserts n before next. O(n): the predecessor of next has to be found
// first.
func (q *Deque[T]) Add(next, n *Node[T]) *Node[T] {
	return q.AddAfter(q.Walk(next, intrusive.Prev), n)
}

// Del removes n from the queue. O(n): the predecessor of n has to be found
// first.
func (q *Deque[T]) Del(n *Node[T]) *Node[T] {
	return q.DelAfter(q.Walk(n, intrusive.Prev))
}

// AddFirst inserts n at the front. O(1).
func (q *Deque[T]) AddFirst(n *Node[T]) *Node[T] {
	return q.AddAfter(&q.head, n)
}

// AddLast inserts n at the back. O(1).
func (q *Deque[T]) AddLast(n *Node[T]) *Node[T] {
	return q.AddAfter(q.last, n)
}

// DelFirst removes and returns the first node. The deque must not be empty.
func (q *Deque[T]) DelFirst() *Node[T] {
	return q.DelAfter(&q.head)
}

// DelLast removes and returns the last node. O(n). The deque must not be
// empty.
func (q *Deque[T]) DelLast() *Node[T] {
	return q.Del(q.last)
}
