// Package pool provides a chunked allocator for objects of one fixed
// size, built on the list and tree containers of this module.
//
// # Overview
//
// A Pool hands out fixed-size slots carved from large chunks obtained
// from a backing alloc.Allocator. Slots are addressed by opaque Ref
// handles in a virtual address space where every chunk owns one
// chunk-sized extent, so resolving a handle to its owning chunk is an
// interval containment search over an AVL tree of chunks, O(log n) in
// the number of chunks.
//
// Freed slots form a queue threaded through the slot bytes themselves:
// the object size is rounded up so every slot can hold the encoded
// handle of the next free slot, and the queue costs no memory beyond
// the slots it links. Get prefers draining this queue over carving
// fresh slots.
//
// When the last live object of a chunk is returned the chunk is
// condemned, but nothing is reclaimed right away. Put stays O(log n)
// and reclamation happens lazily while Get drains the free queue: a
// drained slot that belongs to a condemned chunk is merged back into
// the chunk instead of being returned, and the chunk is released once
// every slot it handed out has come home. One released chunk is kept
// aside and reused by the next chunk allocation.
//
// Concurrent use requires external synchronization.
package pool
