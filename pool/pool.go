package pool

import (
	"encoding/binary"
	"math"

	"github.com/joshuapare/intrusive"
	"github.com/joshuapare/intrusive/alloc"
	"github.com/joshuapare/intrusive/list"
	"github.com/joshuapare/intrusive/tree"
)

// A Ref is an opaque handle for one slot issued by a Pool. Handles live
// in the pool's virtual address space, not in machine memory. The zero
// Ref is never issued.
type Ref uint64

// A Pool allocates objects of one fixed size out of chunks reserved
// from a backing allocator. Use New; the zero value is not usable.
type Pool struct {
	allocator  alloc.Allocator
	objectSize int
	chunkSize  int // bytes reserved per chunk
	usable     int // slot bytes per chunk

	curr *chunk // chunk the bump cursor carves from
	free *chunk // cached released chunk, reused first

	queue Ref // freed slots, linked through their bytes
	next  Ref // virtual base of the next fresh chunk

	chunks list.List[chunk]
	tree   *tree.Tree[chunk]
}

// New returns a pool issuing objectSize-byte slots from chunks of
// chunkSize bytes reserved from allocator. The object size is rounded
// up so every slot can hold a free-queue link. A zero chunkSize picks
// the smallest power of two of at least 4096 bytes that holds one
// object plus bookkeeping; an explicit chunkSize must do the same.
func New(allocator alloc.Allocator, objectSize, chunkSize int) (*Pool, error) {
	if allocator == nil {
		panic("pool: New requires an allocator")
	}
	if objectSize <= 0 {
		return nil, ErrObjectSize
	}
	objectSize = (objectSize + slotAlign - 1) &^ (slotAlign - 1)

	if chunkSize == 0 {
		for chunkSize = 4096; chunkSize-chunkOverhead-slotAlign < objectSize; chunkSize *= 2 {
			if chunkSize > math.MaxInt/2 {
				return nil, ErrChunkSize
			}
		}
	} else if chunkSize < chunkOverhead+slotAlign ||
		chunkSize-chunkOverhead-slotAlign < objectSize {
		return nil, ErrChunkSize
	}

	p := &Pool{
		allocator:  allocator,
		objectSize: objectSize,
		chunkSize:  chunkSize,
		usable:     chunkSize - chunkOverhead - slotAlign,
		next:       Ref(chunkSize),
		tree:       tree.NewAVL(compareChunks),
	}
	p.chunks.Init()
	return p, nil
}

// ObjectSize returns the slot size in bytes, after rounding.
func (p *Pool) ObjectSize() int { return p.objectSize }

// ChunkSize returns the bytes reserved per chunk.
func (p *Pool) ChunkSize() int { return p.chunkSize }

// find resolves a handle to the chunk whose extent contains it.
func (p *Pool) find(ref Ref) *chunk {
	found, _, _ := p.tree.Search(func(candidate *chunk) int {
		return candidate.order(ref)
	})
	if found == nil {
		return nil
	}
	return found.Elem()
}

// slice returns the slot at offset s of c, capped to the object size.
func (p *Pool) slice(c *chunk, s int) []byte {
	return c.buf[s : s+p.objectSize : s+p.objectSize]
}

// initializeChunk resets a chunk and registers it for lookup. The
// virtual base survives recycling; stale handles of a previous life
// are gone from the queue by the time the chunk is released.
func (p *Pool) initializeChunk(c *chunk) {
	c.cursor = 0
	c.free = p.usable
	c.used = 0
	c.condemned = false

	p.chunks.AddFirst(&c.link)
	p.tree.Add(&c.node)
}

// unlinkChunk removes a chunk from the list and the tree.
func (p *Pool) unlinkChunk(c *chunk) {
	if c == p.curr {
		p.curr = nil
	}
	p.chunks.Del(&c.link)
	p.tree.Delete(&c.node)
}

// allocateChunk produces a chunk, preferring the cached released one
// over reserving fresh memory.
func (p *Pool) allocateChunk() (*chunk, error) {
	if c := p.free; c != nil {
		p.free = nil
		return c, nil
	}

	buf := p.allocator.Allocate(p.chunkSize)
	if buf == nil {
		return nil, ErrOutOfMemory
	}
	c := &chunk{base: p.next, buf: buf}
	c.link.Bind(c)
	c.node.Bind(c)
	p.next += Ref(p.chunkSize)
	return c, nil
}

// releaseChunk gives a chunk back, caching one for reuse.
func (p *Pool) releaseChunk(c *chunk) {
	if p.free == nil {
		p.free = c
		return
	}
	p.allocator.Deallocate(c.buf)
}

// Get issues one slot and returns its handle and its bytes. The bytes
// are not cleared. Freed slots are reissued first; slots owned by a
// condemned chunk are merged back into it instead, releasing the chunk
// once it is whole again, so a single Get may reclaim several chunks.
// The drain is unbounded on purpose: its total cost is amortized over
// the Puts that filled the queue.
func (p *Pool) Get() (Ref, []byte, error) {
	for p.queue != 0 {
		ref := p.queue
		c := p.find(ref)
		if c == nil {
			panic("pool: free queue holds a handle outside any chunk")
		}
		s := c.slot(ref)
		p.queue = Ref(binary.LittleEndian.Uint64(c.buf[s:]))

		if !c.condemned {
			c.used++
			return ref, p.slice(c, s), nil
		}

		c.free += p.objectSize
		if c.free == p.usable {
			p.unlinkChunk(c)
			p.releaseChunk(c)
		}
	}

	if p.curr == nil || p.curr.cursor+p.objectSize > p.usable {
		c, err := p.allocateChunk()
		if err != nil {
			return 0, nil, err
		}
		p.initializeChunk(c)
		p.curr = c
	}

	c := p.curr
	s := c.cursor
	c.cursor += p.objectSize
	c.free -= p.objectSize
	c.used++
	return c.base + Ref(s), p.slice(c, s), nil
}

// Put returns a slot to the pool. The handle must be live. The slot
// joins the free queue and the owning chunk is condemned when its last
// live object goes; actual reclamation is deferred to later Gets.
func (p *Pool) Put(ref Ref) {
	c := p.find(ref)
	if c == nil {
		panic("pool: Put of a handle outside any chunk")
	}
	if c.used == 0 {
		panic("pool: Put without a matching Get")
	}

	s := c.slot(ref)
	binary.LittleEndian.PutUint64(c.buf[s:], uint64(p.queue))
	p.queue = ref

	c.used--
	c.condemned = c.used == 0
}

// Bytes returns the bytes of a live slot.
func (p *Pool) Bytes(ref Ref) []byte {
	c := p.find(ref)
	if c == nil {
		panic("pool: handle outside any chunk")
	}
	return p.slice(c, c.slot(ref))
}

// Finalize releases every chunk, live objects included, and the cached
// released chunk. The pool is unusable afterwards.
func (p *Pool) Finalize() {
	for !p.chunks.Empty() {
		c := p.chunks.First().Elem()
		p.unlinkChunk(c)
		p.releaseChunk(c)
	}
	if c := p.free; c != nil {
		p.free = nil
		p.allocator.Deallocate(c.buf)
	}
	p.queue = 0
	p.curr = nil
}

// Stats reports the current shape of the pool.
type Stats struct {
	ObjectSize    int  // slot size in bytes, after rounding
	ChunkSize     int  // bytes reserved per chunk
	SlotsPerChunk int  // slots one chunk can issue
	Chunks        int  // registered chunks
	Live          int  // objects currently issued
	BytesReserved int  // backing bytes held, cached chunk included
	BytesLive     int  // bytes of issued objects
	CachedFree    bool // a released chunk is cached for reuse
}

// Stats walks the chunk list and returns usage counters.
func (p *Pool) Stats() Stats {
	s := Stats{
		ObjectSize:    p.objectSize,
		ChunkSize:     p.chunkSize,
		SlotsPerChunk: p.usable / p.objectSize,
		CachedFree:    p.free != nil,
	}
	for n := p.chunks.First(); n != p.chunks.Tail(); n = p.chunks.Walk(n, intrusive.Next) {
		s.Chunks++
		s.Live += n.Elem().used
	}
	s.BytesReserved = s.Chunks * p.chunkSize
	if p.free != nil {
		s.BytesReserved += p.chunkSize
	}
	s.BytesLive = s.Live * p.objectSize
	return s
}
