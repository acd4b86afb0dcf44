package tree

import "github.com/joshuapare/intrusive"

// Red-black color values stored in the balance tag. The zero value is red
// on purpose: a missing child reads as a black leaf only through the
// explicit nil checks below, never through the tag.
const (
	red   int8 = 0
	black int8 = 1
)

// redBlack balances with the four classic rules: the structural root is
// black, a red node has black children, every root-to-leaf path carries the
// same number of black nodes, and absent children count as black leaves.
// The head and tail sentinels satisfy the rules like any other node.
type redBlack[T any] struct{}

func isRed[T any](n *Node[T]) bool {
	return n != nil && n.balance == red
}

// fixInsert paints the new leaf red, then climbs while its parent is red.
// A red uncle means recolor and continue from the grandparent; a black (or
// absent) uncle is resolved with at most two rotations, straightening a
// zig-zag first, and terminates the loop.
func (redBlack[T]) fixInsert(t *Tree[T], n *Node[T]) {
	parent := n.parent
	if parent == &t.root {
		n.balance = black
		return
	}
	n.balance = red

	for parent.balance == red {
		// A red parent cannot be the structural root, so the
		// grandparent is a real node.
		grand := parent.parent
		dir := parent.dir
		opp := dir.Opposite()

		if uncle := grand.child[opp]; isRed(uncle) {
			parent.balance = black
			uncle.balance = black
			grand.balance = red

			n = grand
			parent = n.parent
			if parent != &t.root {
				continue
			}
			n.balance = black
			break
		}

		if parent.child[dir] != n {
			// Zig-zag: rotate n above its parent first so both
			// red nodes line up on the same side.
			rotate(parent, dir, opp)
			parent, n = n, parent
		}
		parent.balance = black
		grand.balance = red
		rotate(grand, opp, dir)
		break
	}
}

// fixDelete repairs the missing black introduced by unlinking a black node.
// A red removed node costs nothing; a red replacement is simply repainted.
// Otherwise the deficiency walks up, dispatching on the sibling:
//
//  1. red sibling: rotate it above the parent, swap their colors, retry
//     with the new (black) sibling;
//  2. black sibling, both its children black: paint it red and push the
//     deficiency to the parent (stopping if the parent was red);
//  3. black sibling with a red child on the far side: rotate at the parent,
//     recolor, done;
//  4. black sibling with only a near red child: rotate the sibling first to
//     turn it into case 3.
func (redBlack[T]) fixDelete(t *Tree[T], parent *Node[T], dir intrusive.Direction, removed *Node[T]) {
	if removed.balance == red {
		return
	}
	if c := parent.child[dir]; isRed(c) {
		c.balance = black
		return
	}

	n := parent
	for {
		opp := dir.Opposite()
		sibling := n.child[opp]

		if sibling.balance == red {
			n.balance = red
			sibling.balance = black
			rotate(n, dir, opp)
			sibling = n.child[opp]
		}

		var color [2]int8
		color[intrusive.Prev] = black
		color[intrusive.Next] = black
		if c := sibling.child[intrusive.Prev]; c != nil {
			color[intrusive.Prev] = c.balance
		}
		if c := sibling.child[intrusive.Next]; c != nil {
			color[intrusive.Next] = c.balance
		}

		if color[intrusive.Prev] == red || color[intrusive.Next] == red {
			if color[opp] != red {
				// Near red child only: convert to the far
				// case first.
				sibling.child[dir].balance = black
				sibling.balance = red
				rotate(sibling, opp, dir)
				sibling = n.child[opp]
			}
			sibling.balance = n.balance
			n.balance = black
			sibling.child[opp].balance = black
			rotate(n, dir, opp)
			break
		}

		sibling.balance = red
		if n.balance == red {
			n.balance = black
			break
		}
		dir = n.dir
		n = n.parent
		if n == &t.root {
			break
		}
	}
}

// verify recursively checks black-height equality and the red-red rule,
// Prev subtree before Next, and that the structural root is black. The
// returned height counts black nodes only.
func (redBlack[T]) verify(t *Tree[T], n *Node[T]) (int, *Node[T]) {
	if n.parent == &t.root && n.balance == red {
		return -1, n
	}

	h := 0
	switch {
	case n.child[intrusive.Prev] != nil:
		height, bad := redBlack[T]{}.verify(t, n.child[intrusive.Prev])
		if height < 0 {
			return height, bad
		}
		h = height

		if n.child[intrusive.Next] != nil {
			other, bad := redBlack[T]{}.verify(t, n.child[intrusive.Next])
			if other < 0 {
				return other, bad
			}
			if other != h {
				return -1, n
			}
		}
	case n.child[intrusive.Next] != nil:
		height, bad := redBlack[T]{}.verify(t, n.child[intrusive.Next])
		if height < 0 {
			return height, bad
		}
		h = height
	}

	if n.balance != red {
		return 1 + h, nil
	}
	if !isRed(n.child[intrusive.Prev]) && !isRed(n.child[intrusive.Next]) {
		return h, nil
	}
	return -2, n
}
