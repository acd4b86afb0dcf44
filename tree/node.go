package tree

import "github.com/joshuapare/intrusive"

// Compare is the three-way comparator supplied at construction: negative
// when a orders before b, zero when equal, positive otherwise.
type Compare[T any] func(a, b *T) int

// Examine is a free-form search probe: it reports how the candidate element
// orders relative to the target the caller has in mind (negative when the
// candidate is smaller). It is never called with a sentinel, so the element
// is always valid.
type Examine[T any] func(candidate *T) int

// Node is the link record an element embeds to join a Tree: two children
// indexed by direction, the parent, the direction from the parent to this
// node, and a one-byte balance tag whose meaning belongs to the active
// strategy (height difference for AVL, color for red-black).
type Node[T any] struct {
	child   [2]*Node[T]
	parent  *Node[T]
	dir     intrusive.Direction
	balance int8
	elem    *T
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

// Child returns the child in the given direction, or nil.
func (n *Node[T]) Child(dir intrusive.Direction) *Node[T] {
	return n.child[dir]
}

// Parent returns the parent node. The structural root's parent is the
// tree's super-root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// rotate lifts n's child on the opp side into n's place, pushing n down in
// direction dir. opp must be dir.Opposite() and the child must exist. All
// parent/direction bookkeeping is rewired; balance tags are the caller's
// business.
func rotate[T any](n *Node[T], dir, opp intrusive.Direction) {
	p := n.child[opp]
	q := p.child[dir]
	parent, pdir := n.parent, n.dir

	if q != nil {
		q.parent = n
		q.dir = opp
	}
	n.child[opp] = q
	p.parent = parent
	parent.child[pdir] = p
	n.parent = p
	p.child[dir] = n
	p.dir = pdir
	n.dir = dir
}
