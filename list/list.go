// Package list implements an intrusive doubly-linked list.
//
// Compared to the deque, every element links both ways, so insertion and
// removal anywhere are O(1) at the cost of one extra pointer per element.
// A single self-linked sentinel plays the role of both head and tail.
package list

import "github.com/joshuapare/intrusive"

// Node is the link record an element embeds to join a List.
type Node[T any] struct {
	link [2]*Node[T]
	elem *T
}

// Bind associates the node with the element embedding it and returns the
// node for chaining.
func (n *Node[T]) Bind(elem *T) *Node[T] {
	n.elem = elem
	return n
}

// Elem returns the element the node was bound to, or nil for the sentinel.
func (n *Node[T]) Elem() *T {
	return n.elem
}

// List is a doubly-linked list of intrusive nodes. Use New, or call Init
// before first use.
type List[T any] struct {
	sentinel Node[T]
}

// New returns an initialized empty list.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.Init()
	return l
}

// Init initializes or clears the list. Any previously linked nodes are
// abandoned, not unlinked.
func (l *List[T]) Init() {
	l.sentinel.link[intrusive.Prev] = &l.sentinel
	l.sentinel.link[intrusive.Next] = &l.sentinel
}

// Head returns the sentinel before the first element. It carries no element
// and must not be dereferenced as one.
func (l *List[T]) Head() *Node[T] { return &l.sentinel }

// Tail returns the sentinel after the last element. Head and Tail are the
// same node; the list is circular through it.
func (l *List[T]) Tail() *Node[T] { return &l.sentinel }

// Walk returns the neighbor of n in the given direction. Walking off either
// end lands on the sentinel.
func (l *List[T]) Walk(n *Node[T], dir intrusive.Direction) *Node[T] {
	return n.link[dir]
}

// First returns the first element's node, or the sentinel when empty.
func (l *List[T]) First() *Node[T] { return l.sentinel.link[intrusive.Next] }

// Last returns the last element's node, or the sentinel when empty.
func (l *List[T]) Last() *Node[T] { return l.sentinel.link[intrusive.Prev] }

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool { return l.First() == l.Tail() }

// Add inserts n before next.
func (l *List[T]) Add(next, n *Node[T]) *Node[T] {
	prev := next.link[intrusive.Prev]
	prev.link[intrusive.Next] = n
	next.link[intrusive.Prev] = n
	n.link[intrusive.Prev] = prev
	n.link[intrusive.Next] = next
	return n
}

// Del unlinks n from the list. Removing the sentinel is a logic error.
func (l *List[T]) Del(n *Node[T]) *Node[T] {
	if n == &l.sentinel {
		panic("list: del of the sentinel")
	}
	prev := n.link[intrusive.Prev]
	next := n.link[intrusive.Next]
	prev.link[intrusive.Next] = next
	next.link[intrusive.Prev] = prev
	n.link[intrusive.Prev] = nil
	n.link[intrusive.Next] = nil
	return n
}

// AddFirst inserts n at the front.
func (l *List[T]) AddFirst(n *Node[T]) *Node[T] {
	return l.Add(l.First(), n)
}

// AddLast inserts n at the back.
func (l *List[T]) AddLast(n *Node[T]) *Node[T] {
	return l.Add(l.Tail(), n)
}

// DelFirst removes and returns the first node. The list must not be empty.
func (l *List[T]) DelFirst() *Node[T] {
	return l.Del(l.First())
}

// DelLast removes and returns the last node. The list must not be empty.
func (l *List[T]) DelLast() *Node[T] {
	return l.Del(l.Last())
}
