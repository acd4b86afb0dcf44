package tree

import "github.com/joshuapare/intrusive"

// Strategy is the rebalancing discipline of a tree. The two implementations
// are AVL and RedBlack; the interface is closed on purpose (spec'd as a sum
// type) so the engine can rely on exactly these two sets of invariants.
type Strategy[T any] interface {
	// fixInsert restores the balancing invariant after n was wired into
	// the structure as a leaf.
	fixInsert(t *Tree[T], n *Node[T])

	// fixDelete restores the balancing invariant after removed was taken
	// out of the structure; parent/dir locate the vacated slot. removed
	// is already detached and only its balance tag may be read.
	fixDelete(t *Tree[T], parent *Node[T], dir intrusive.Direction, removed *Node[T])

	// verify recursively checks the subtree rooted at n and returns its
	// height measure (strategy-defined) or a negative value together
	// with the deepest offending subtree.
	verify(t *Tree[T], n *Node[T]) (int, *Node[T])
}

// Tree is an intrusive binary search tree balanced by a Strategy fixed at
// construction.
type Tree[T any] struct {
	head     Node[T]
	tail     Node[T]
	root     Node[T] // super-root; its Prev child is the structural root
	compare  Compare[T]
	strategy Strategy[T]
}

// NewAVL returns an empty AVL-balanced tree ordered by compare.
func NewAVL[T any](compare Compare[T]) *Tree[T] {
	return newTree(compare, avl[T]{})
}

// NewRedBlack returns an empty red-black tree ordered by compare.
func NewRedBlack[T any](compare Compare[T]) *Tree[T] {
	return newTree(compare, redBlack[T]{})
}

func newTree[T any](compare Compare[T], strategy Strategy[T]) *Tree[T] {
	t := &Tree[T]{compare: compare, strategy: strategy}

	// Head and tail are ordinary structural nodes at the extremes. The
	// initial shape (head under the super-root, tail as head's greater
	// child) satisfies both disciplines: head's tag reads as height
	// difference +1 for AVL and as black for red-black, tail's as even
	// and red.
	t.head.parent = &t.root
	t.head.child[intrusive.Next] = &t.tail
	t.head.dir = intrusive.Prev
	t.head.balance = 1

	t.tail.parent = &t.head
	t.tail.dir = intrusive.Next
	t.tail.balance = 0

	t.root.child[intrusive.Prev] = &t.head
	return t
}

// Head returns the virtual-minimum sentinel. It carries no element and must
// not be dereferenced as one.
func (t *Tree[T]) Head() *Node[T] { return &t.head }

// Tail returns the virtual-maximum sentinel. It carries no element and must
// not be dereferenced as one.
func (t *Tree[T]) Tail() *Node[T] { return &t.tail }

// Empty reports whether the tree holds no elements.
func (t *Tree[T]) Empty() bool {
	return t.head.child[intrusive.Next] == &t.tail ||
		t.tail.child[intrusive.Prev] == &t.head
}

// First returns the smallest element's node, or Tail when empty.
func (t *Tree[T]) First() *Node[T] {
	return t.Walk(&t.head, intrusive.Next)
}

// Last returns the greatest element's node, or Head when empty.
func (t *Tree[T]) Last() *Node[T] {
	return t.Walk(&t.tail, intrusive.Prev)
}

// Search descends from the super-root looking for the element examine
// reports as equal. Hitting the head or tail sentinel steers the descent
// back toward the in-range side; examine is never called on them.
//
// On a match Search returns the node and the position it occupies. On a
// miss it returns a nil node plus the attachment point (parent, dir) where
// Insert would wire the missing element.
func (t *Tree[T]) Search(examine Examine[T]) (found, parent *Node[T], dir intrusive.Direction) {
	parent = &t.root
	dir = intrusive.Prev

	for {
		ref := parent.child[dir]
		switch {
		case ref == &t.head:
			dir = intrusive.Next
		case ref == &t.tail:
			dir = intrusive.Prev
		default:
			order := examine(ref.elem)
			if order == 0 {
				return ref, parent, dir
			}
			dir = intrusive.DirectionOf(-order)
		}
		parent = ref
		if parent.child[dir] == nil {
			return nil, parent, dir
		}
	}
}

// Insert wires n as parent's child in direction dir and runs the strategy's
// insert fix-up. The slot must be empty: inserting over an existing child
// is a logic error, as Search never reports an occupied position.
func (t *Tree[T]) Insert(parent *Node[T], dir intrusive.Direction, n *Node[T]) *Node[T] {
	if parent.child[dir] != nil {
		panic("tree: insert position already occupied")
	}
	n.parent = parent
	n.child[intrusive.Prev] = nil
	n.child[intrusive.Next] = nil
	n.dir = dir
	parent.child[dir] = n

	t.strategy.fixInsert(t, n)
	return n
}

// Add inserts n at the position dictated by the tree's comparator. If an
// equal element is already present, the tree is left untouched and the
// existing node is returned; otherwise n is returned.
func (t *Tree[T]) Add(n *Node[T]) *Node[T] {
	if t.compare == nil {
		panic("tree: Add requires a comparator")
	}
	found, parent, dir := t.Search(func(candidate *T) int {
		return t.compare(candidate, n.elem)
	})
	if found != nil {
		return found
	}
	return t.Insert(parent, dir, n)
}

// Remove searches with examine and deletes the match, returning its node or
// nil when nothing matched.
func (t *Tree[T]) Remove(examine Examine[T]) *Node[T] {
	found, _, _ := t.Search(examine)
	if found != nil {
		t.Delete(found)
	}
	return found
}

// Delete unlinks n from the tree and returns it. n must be linked in this
// tree and must not be a sentinel.
//
// A node with at most one child is replaced by that child (or by nothing).
// A node with two children is first reduced: the in-order neighbor on the
// heavier side (picked by the balance tag as a cost hint; either side would
// be correct) is spliced out of its own position, then takes over n's
// structural place and balance tag, so the strategy's fix-up always sees a
// structurally sound tree with the vacancy at the splice point.
func (t *Tree[T]) Delete(n *Node[T]) *Node[T] {
	if n == &t.head || n == &t.tail {
		panic("tree: delete of a sentinel")
	}
	dir := n.dir
	parent := n.parent

	switch {
	case n.child[intrusive.Prev] == nil:
		if next := n.child[intrusive.Next]; next != nil {
			next.dir = dir
			next.parent = parent
			parent.child[dir] = next
		} else {
			parent.child[dir] = nil
		}
		t.strategy.fixDelete(t, parent, dir, n)

	case n.child[intrusive.Next] == nil:
		prev := n.child[intrusive.Prev]
		prev.dir = dir
		prev.parent = parent
		parent.child[dir] = prev
		t.strategy.fixDelete(t, parent, dir, n)

	default:
		// Walk the subtree on the heavier side toward n: its nearest
		// in-order neighbor there will stand in for n.
		walk := intrusive.Next
		if n.balance > 0 {
			walk = intrusive.Prev
		}
		side := walk.Opposite()
		aux := n.child[side]

		if aux.child[walk] != nil {
			for aux.child[walk] != nil {
				aux = aux.child[walk]
			}
			hole := aux.parent

			// Splice aux out of its own slot, its only possible
			// child taking its place.
			hole.child[walk] = aux.child[side]
			if hole.child[walk] != nil {
				hole.child[walk].parent = hole
				hole.child[walk].dir = walk
			}

			// Let aux take over n's structural role and tag.
			parent.child[dir] = aux
			aux.parent = parent
			aux.child[side] = n.child[side]
			aux.child[walk] = n.child[walk]
			aux.child[side].parent = aux
			aux.child[walk].parent = aux
			aux.dir = dir
			aux.balance, n.balance = n.balance, aux.balance

			t.strategy.fixDelete(t, hole, walk, n)
		} else {
			// aux is n's direct neighbor: promote it in place.
			parent.child[dir] = aux
			aux.parent = parent
			aux.dir = dir
			aux.child[walk] = n.child[walk]
			aux.child[walk].parent = aux
			aux.balance, n.balance = n.balance, aux.balance

			t.strategy.fixDelete(t, aux, side, n)
		}
	}

	n.parent = nil
	n.child[intrusive.Prev] = nil
	n.child[intrusive.Next] = nil
	return n
}

// Walk returns n's in-order neighbor in the given direction. With a child
// on that side, it is the extreme of that subtree in the opposite
// direction; otherwise the first ancestor reached from the opposite side.
// Walking past the smallest or greatest element lands on a sentinel.
func (t *Tree[T]) Walk(n *Node[T], dir intrusive.Direction) *Node[T] {
	if c := n.child[dir]; c != nil {
		opp := dir.Opposite()
		for c.child[opp] != nil {
			c = c.child[opp]
		}
		return c
	}
	for n.dir == dir && n != &t.root {
		n = n.parent
	}
	return n.parent
}

// Check runs the strategy's recursive verifier over the whole structure,
// sentinels included. It reports ok, or the deepest subtree where the
// balancing invariant is first violated (Prev subtree inspected before
// Next). Diagnostics only; never called by the engine itself.
func (t *Tree[T]) Check() (ok bool, offending *Node[T]) {
	h, bad := t.strategy.verify(t, t.root.child[intrusive.Prev])
	return h >= 0, bad
}
