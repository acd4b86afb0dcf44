// Package intrusive defines the shared vocabulary for a family of intrusive
// containers: deques, lists, balanced search trees, splay trees, and the
// chunk pool allocator built on top of them.
//
// # Overview
//
// An intrusive container never owns the storage of the elements it holds.
// Each element embeds a small node record (one per container it can belong
// to) and the container only rewires node links. Linking and unlinking
// therefore never allocate, and an element can sit in several containers at
// once by embedding several nodes:
//
//	type conn struct {
//		addr    netip.Addr
//		byAddr  tree.Node[conn]
//		byAge   list.Node[conn]
//	}
//
// A node is bound to its element once, typically right after the element is
// created:
//
//	c := &conn{addr: addr}
//	c.byAddr.Bind(c)
//	c.byAge.Bind(c)
//
// Every container keeps sentinel nodes (head and tail) that bracket the
// stored elements. Sentinels belong to the container, carry no element, and
// must never be treated as one; walking off either end of a container lands
// on a sentinel, which is how iteration terminates.
//
// # Concurrency
//
// Nothing in this module locks. Rewiring an intrusive node touches several
// fields of several nodes and is never atomic, so callers that share a
// container across goroutines must serialize access around the whole
// container themselves.
package intrusive
