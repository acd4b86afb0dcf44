package pool

import (
	"github.com/joshuapare/intrusive/list"
	"github.com/joshuapare/intrusive/tree"
)

// chunkOverhead accounts for the per-chunk descriptor when sizing
// chunks, mirroring the bookkeeping share of each reserved block.
const chunkOverhead = 64

// slotAlign is the minimum slot size. A freed slot stores the encoded
// handle of the next free slot in its first slotAlign bytes.
const slotAlign = 8

// A chunk is one reserved block of backing memory, carved into slots
// from the front by a bump cursor. Chunks are linked in a list for
// sweeping and recycling and in an AVL tree keyed by their virtual
// base address for handle resolution.
type chunk struct {
	base   Ref    // first handle of the chunk's virtual extent
	buf    []byte // backing block, slots live in buf[:usable]
	cursor int    // offset of the next never-issued slot
	free   int    // slot bytes not currently issued
	used   int    // live objects

	// condemned marks a chunk whose live count reached zero. Its
	// queued slots are merged back instead of reissued.
	condemned bool

	link list.Node[chunk]
	node tree.Node[chunk]
}

func compareChunks(a, b *chunk) int {
	switch {
	case a.base < b.base:
		return -1
	case a.base > b.base:
		return 1
	}
	return 0
}

// contains reports whether a handle falls inside the chunk's virtual
// extent. The extent spans the whole reserved block, not only the
// slot area, so any handle the chunk ever issued resolves to it.
func (c *chunk) contains(ref Ref) bool {
	return ref >= c.base && ref-c.base < Ref(len(c.buf))
}

// order places the chunk relative to a handle for the containment
// search: negative when the whole extent is below the handle, positive
// when above, zero on containment.
func (c *chunk) order(ref Ref) int {
	switch {
	case c.base > ref:
		return 1
	case !c.contains(ref):
		return -1
	}
	return 0
}

// slot returns the byte offset of the slot holding ref.
func (c *chunk) slot(ref Ref) int {
	return int(ref - c.base)
}
