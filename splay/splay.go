package splay

import "github.com/joshuapare/intrusive"

// Compare orders two bound elements. Negative means a sorts before b.
type Compare[T any] func(a, b *T) int

// Examine evaluates a candidate element against a search target. It
// returns a negative value when the candidate sorts before the target,
// zero on a match and a positive value otherwise.
type Examine[T any] func(candidate *T) int

// A Node ties one element into a splay tree. Embed it in the element
// type and bind it once before use. Splay nodes carry no parent link
// and no balance tag.
type Node[T any] struct {
	child [2]*Node[T]
	elem  *T
}

// Bind associates the node with the element embedding it and returns
// the node for chaining.
func (n *Node[T]) Bind(elem *T) *Node[T] {
	n.elem = elem
	return n
}

// Elem returns the element bound to the node, nil for sentinels.
func (n *Node[T]) Elem() *T { return n.elem }

// A Splay is an intrusive self-adjusting search tree. The zero value is
// not ready for use, call Init or New.
type Splay[T any] struct {
	head, tail Node[T]
	root       *Node[T]
	compare    Compare[T]
}

// New returns an initialized splay tree ordered by compare.
func New[T any](compare Compare[T]) *Splay[T] {
	return new(Splay[T]).Init(compare)
}

// Init initializes or clears the tree. Nodes of a previous use are
// discarded, not unlinked.
func (t *Splay[T]) Init(compare Compare[T]) *Splay[T] {
	if compare == nil {
		panic("splay: Init requires a comparator")
	}
	t.head.child[intrusive.Prev] = nil
	t.head.child[intrusive.Next] = &t.tail
	t.tail.child[intrusive.Prev] = nil
	t.tail.child[intrusive.Next] = nil
	t.root = &t.head
	t.compare = compare
	return t
}

// Head returns the sentinel before every element.
func (t *Splay[T]) Head() *Node[T] { return &t.head }

// Tail returns the sentinel after every element.
func (t *Splay[T]) Tail() *Node[T] { return &t.tail }

// Root returns the most recently accessed node. It is a sentinel when
// the last operation ran off the range of stored elements.
func (t *Splay[T]) Root() *Node[T] { return t.root }

// Empty reports whether the tree holds no elements.
func (t *Splay[T]) Empty() bool {
	return t.head.child[intrusive.Next] == &t.tail ||
		t.tail.child[intrusive.Prev] == &t.head
}

// order evaluates a node during descent. Sentinels sort strictly
// outside every element and are never passed to examine.
func (t *Splay[T]) order(n *Node[T], examine Examine[T]) int {
	if n == &t.head {
		return -1
	}
	if n == &t.tail {
		return 1
	}
	return examine(n.elem)
}

// splay restructures the tree top-down so that the node matching
// examine, or the last node inspected when there is no match, becomes
// the root. It returns the examine result for the new root. The
// technique follows D. Sleator's top-down splay: the descent path is
// split into two pending trees hooked on a temporary node, reassembled
// around the final root in one pass.
func (t *Splay[T]) splay(examine Examine[T]) int {
	var tmp Node[T]
	var hooks [2]*Node[T]
	hooks[intrusive.Prev] = &tmp
	hooks[intrusive.Next] = &tmp

	res := t.order(t.root, examine)
	for res != 0 {
		dir := intrusive.DirectionOf(-res)
		opp := dir.Opposite()

		if t.root.child[dir] == nil {
			break
		}
		if res == t.order(t.root.child[dir], examine) {
			// Zig-zig: rotate the child above the root before
			// linking so the path halves in depth.
			swp := t.root.child[dir]
			t.root.child[dir] = swp.child[opp]
			swp.child[opp] = t.root
			t.root = swp
			if t.root.child[dir] == nil {
				break
			}
		}
		hooks[opp].child[dir] = t.root
		hooks[opp] = t.root
		t.root = t.root.child[dir]

		res = t.order(t.root, examine)
	}

	hooks[intrusive.Prev].child[intrusive.Next] = t.root.child[intrusive.Prev]
	hooks[intrusive.Next].child[intrusive.Prev] = t.root.child[intrusive.Next]
	t.root.child[intrusive.Prev] = tmp.child[intrusive.Next]
	t.root.child[intrusive.Next] = tmp.child[intrusive.Prev]

	return res
}

// Add inserts a node unless an equal element is already stored. It
// returns the new root, which is n on success or the equal node already
// present. The node must be bound.
func (t *Splay[T]) Add(n *Node[T]) *Node[T] {
	if n.elem == nil {
		panic("splay: Add requires a bound node")
	}
	res := t.splay(func(candidate *T) int {
		return t.compare(candidate, n.elem)
	})
	if res == 0 {
		return t.root
	}

	// The old root compared res against n: it goes on the side it
	// sorts toward, taking one of its former subtrees along.
	opp := intrusive.DirectionOf(res)
	dir := opp.Opposite()

	n.child[dir] = t.root.child[dir]
	n.child[opp] = t.root
	t.root.child[dir] = nil
	t.root = n
	return n
}

// Del removes the root and returns it. The root must be a stored
// element, which holds after any successful Search or Add. The
// predecessor of the removed root is promoted in its place; the head
// sentinel serves when no predecessor exists.
func (t *Splay[T]) Del() *Node[T] {
	n := t.root
	if n == &t.head || n == &t.tail {
		panic("splay: Del on a sentinel root")
	}

	top := n.child[intrusive.Prev]
	cur := top.child[intrusive.Next]
	if cur != nil {
		for cur.child[intrusive.Next] != nil {
			top = cur
			cur = cur.child[intrusive.Next]
		}
		top.child[intrusive.Next] = cur.child[intrusive.Prev]
		cur.child[intrusive.Prev] = n.child[intrusive.Prev]
		cur.child[intrusive.Next] = n.child[intrusive.Next]
		t.root = cur
	} else {
		top.child[intrusive.Next] = n.child[intrusive.Next]
		t.root = top
	}

	n.child[intrusive.Prev] = nil
	n.child[intrusive.Next] = nil
	return n
}

// Search splays the tree around the element examine designates and
// returns its node, or nil when no element matches. On a match the
// returned node is the new root.
func (t *Splay[T]) Search(examine Examine[T]) *Node[T] {
	if t.splay(examine) != 0 {
		return nil
	}
	return t.root
}

// Remove searches for the element examine designates, removes it and
// returns its node, or nil when no element matches.
func (t *Splay[T]) Remove(examine Examine[T]) *Node[T] {
	if t.Search(examine) == nil {
		return nil
	}
	return t.Del()
}

// Walk returns the in-order neighbor of n in the given direction, or
// nil past the ends of the sequence. Without parent links a node with
// no subtree on that side is located by descending from the root,
// remembering the nearest ancestor on the proper side.
func (t *Splay[T]) Walk(n *Node[T], dir intrusive.Direction) *Node[T] {
	if c := n.child[dir]; c != nil {
		opp := dir.Opposite()
		for c.child[opp] != nil {
			c = c.child[opp]
		}
		return c
	}

	var top Node[T]
	cur := t.root
	for cur != n {
		res := t.orderOf(n, cur)
		d := intrusive.DirectionOf(res)
		top.child[d.Opposite()] = cur
		cur = cur.child[d]
	}
	return top.child[dir]
}

// orderOf compares two nodes during a Walk descent, keeping sentinels
// away from the user comparator on either side.
func (t *Splay[T]) orderOf(n, cur *Node[T]) int {
	switch {
	case n == &t.head || cur == &t.tail:
		return -1
	case n == &t.tail || cur == &t.head:
		return 1
	}
	return t.compare(n.elem, cur.elem)
}

// First returns the node of the smallest element, or the tail sentinel
// when the tree is empty.
func (t *Splay[T]) First() *Node[T] { return t.Walk(&t.head, intrusive.Next) }

// Last returns the node of the greatest element, or the head sentinel
// when the tree is empty.
func (t *Splay[T]) Last() *Node[T] { return t.Walk(&t.tail, intrusive.Prev) }
