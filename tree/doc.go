// Package tree implements an intrusive self-balancing binary search tree
// driven by a pluggable rebalancing strategy.
//
// # Overview
//
// A Tree links Node records that elements embed; it never allocates element
// storage. The structural algorithms (search, insert, delete, in-order walk)
// are shared, and the balancing discipline is delegated to one of exactly
// two strategies chosen at construction time:
//
//   - AVL: a signed height-difference counter per node, rotations on a ±2
//     imbalance. Stricter balance, cheaper lookups, potentially cascading
//     delete fix-ups.
//   - Red-black: a color bit per node, the classic recoloring/rotation
//     cases. Looser balance, O(1) amortized insert fix-up.
//
// Both disciplines store their per-node state in the same one-byte balance
// tag, so the Node layout is identical either way. Strategies are never
// mixed on one tree.
//
// # Sentinels
//
// Every tree owns three sentinel nodes: head (a virtual minimum), tail (a
// virtual maximum), and a super-root whose Prev child is the structural
// root. Head and tail take part in the node structure and in rebalancing
// like any node, but they are never associated with an element and search
// never examines them: reaching one simply steers the descent back into
// range. Iterating from First to Tail visits every element in order.
//
// # Positional insertion
//
// Search reports where a missing key would attach (parent and direction),
// and Insert wires a node at such a position directly. Add combines the two
// with the tree's comparator and rejects duplicates by returning the
// element already present.
//
// # Verification
//
// Check runs the active strategy's recursive invariant checker and reports
// the deepest subtree violating it. It exists for tests and diagnostics and
// sits on no hot path. Its recursion depth is O(log n) on a well-formed
// tree but unbounded on a corrupted one.
package tree
