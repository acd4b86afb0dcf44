package tree

import "github.com/joshuapare/intrusive"

// avl balances by storing, per node, the height of the Next subtree minus
// the height of the Prev subtree. The counter is maintained incrementally
// ({-1, 0, +1}, transiently ±2 during fix-up); heights are never recomputed
// outside verify.
type avl[T any] struct{}

// rebalanceAVL resolves a ±2 imbalance at n with one single or one double
// rotation, chosen by the heavy child's own lean. It returns that child's
// balance before rotating: zero means the rotation preserved the subtree
// height (only possible after a deletion), nonzero means the height shrank
// back to its pre-insertion value.
//
// Single rotation (right shown; p does not lean the other way):
//
//	    n(-2)              p(0)
//	    /   \             /   \
//	 p(-1)  C[h] ==> A[h+1]  n(0)
//	 /   \                   /  \
//	A[h+1] B[h]           B[h]  C[h]
//
// Double rotation (left on p, then right on n; p leans the other way):
//
//	   n(-2)            __q(0)__
//	   /   \           /        \
//	 p(+1)  C[h] ==> p(*)       n(*)
//	 /  \           /  \        /  \
//	A[h] q         A[h] B      D   C[h]
//	    / \
//	   B   D
//
// where the new balances of p and n follow from q's old lean.
func rebalanceAVL[T any](n *Node[T]) int8 {
	heavy := intrusive.DirectionOf(int(n.balance))
	light := heavy.Opposite()
	weight := light.Weight()

	p := n.child[heavy]
	lean := p.balance

	if lean == weight {
		// p leans away from its own subtree's excess: double
		// rotation around the grandchild q.
		q := p.child[light]
		switch q.balance {
		case -weight:
			n.balance, p.balance = weight, 0
		case weight:
			n.balance, p.balance = 0, -weight
		default:
			n.balance, p.balance = 0, 0
		}
		q.balance = 0
		rotate(p, heavy, light)
	} else {
		p.balance += weight
		n.balance = -p.balance
	}

	rotate(n, light, heavy)
	return lean
}

// fixInsert walks from the freshly inserted leaf upward, bumping each
// ancestor's counter toward the side that grew. It stops as soon as an
// ancestor comes out even (its height did not change) or after the single
// rotation a ±2 imbalance requires, which restores the previous height.
func (avl[T]) fixInsert(t *Tree[T], n *Node[T]) {
	n.balance = 0

	for {
		weight := n.dir.Weight()
		n = n.parent
		if n == &t.root {
			break
		}

		before := n.balance
		n.balance += weight
		if n.balance == 0 {
			break
		}
		if before != 0 {
			rebalanceAVL(n)
			break
		}
	}
}

// fixDelete walks upward from the vacated slot, shrinking counters on the
// side that lost height. Unlike insertion, a rotation here can itself
// shrink the subtree and force the fix-up to continue, so in the worst
// case rotations cascade all the way to the root. The walk stops early
// when an ancestor was leaning before the decrement (its height is
// unchanged) or when a rebalance keeps the subtree height.
func (avl[T]) fixDelete(t *Tree[T], parent *Node[T], dir intrusive.Direction, _ *Node[T]) {
	n := parent
	for {
		before := n.balance
		n.balance -= dir.Weight()
		dir = n.dir
		up := n.parent

		if before == 0 {
			break
		}
		if n.balance != 0 && rebalanceAVL(n) == 0 {
			break
		}
		n = up
		if n == &t.root {
			break
		}
	}
}

// verify recursively recomputes subtree heights and flags the deepest node
// whose children differ by more than one. Prev subtree first.
func (avl[T]) verify(t *Tree[T], n *Node[T]) (int, *Node[T]) {
	var h [2]int
	for _, dir := range []intrusive.Direction{intrusive.Prev, intrusive.Next} {
		if c := n.child[dir]; c != nil {
			height, bad := avl[T]{}.verify(t, c)
			if height < 0 {
				return height, bad
			}
			h[dir] = height
		}
	}

	diff := h[intrusive.Next] - h[intrusive.Prev]
	if diff < -1 || diff > 1 {
		return -1, n
	}
	return 1 + max(h[intrusive.Prev], h[intrusive.Next]), nil
}
