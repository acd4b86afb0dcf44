// Package splay provides an intrusive self-adjusting binary search tree.
//
// # Overview
//
// A splay tree keeps no balance metadata at all. Instead, every search,
// insertion and removal finishes by splaying, a top-down restructuring
// that moves the last node touched to the root. Recently accessed
// elements therefore cluster near the top, which makes the tree adaptive:
// skewed access patterns run in amortized O(log n) even though a single
// operation may degenerate to O(n).
//
// Like the other containers in this module the tree is intrusive. An
// element embeds a Node and binds it once with Bind; the tree links nodes
// and never allocates element storage. Two permanent sentinel nodes, a
// head smaller than every element and a tail larger than every element,
// bracket the ordering so that boundary cases vanish from the splay loop.
//
// Concurrent use requires external synchronization.
package splay
