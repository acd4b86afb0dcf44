package pool

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/intrusive/alloc"
)

// Test_Fuzz_RandomGetPut_GuardInvariants churns a pool with random
// get/put traffic and validates after every step that no live handle is
// issued twice and that issued bytes never exceed reserved bytes.
func Test_Fuzz_RandomGetPut_GuardInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) // Fixed seed for reproducibility

	p, err := New(alloc.Heap{}, 24, 512)
	require.NoError(t, err)
	defer p.Finalize()

	live := make(map[Ref]byte)
	order := make([]Ref, 0, 512)

	for i := 0; i < 5000; i++ {
		if len(live) == 0 || rng.Intn(5) < 3 {
			ref, buf, getErr := p.Get()
			require.NoError(t, getErr, "step %d", i)
			_, clash := live[ref]
			require.False(t, clash, "step %d: live handle 0x%X issued twice", i, ref)

			tag := byte(rng.Intn(256))
			buf[len(buf)-1] = tag
			live[ref] = tag
			order = append(order, ref)
		} else {
			j := rng.Intn(len(order))
			ref := order[j]
			order[j] = order[len(order)-1]
			order = order[:len(order)-1]

			// The slot must still carry this handle's data: the pool
			// never hands one slot to two owners. The first bytes may
			// hold a queue link, the tag byte is past them.
			require.Equal(t, live[ref], p.Bytes(ref)[p.ObjectSize()-1],
				"step %d: slot 0x%X was clobbered while live", i, ref)

			p.Put(ref)
			delete(live, ref)
		}

		s := p.Stats()
		require.Equal(t, len(live), s.Live, "step %d", i)
		require.LessOrEqual(t, s.BytesLive, s.BytesReserved,
			"step %d: more bytes issued than reserved", i)
	}
}

// Test_Fuzz_DrainAfterBulkFree frees everything in random order, then
// reacquires the same population and checks the pool settles back to the
// same chunk count.
func Test_Fuzz_DrainAfterBulkFree(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))

	p, err := New(alloc.Heap{}, 48, 0)
	require.NoError(t, err)
	defer p.Finalize()

	const population = 2000
	refs := make([]Ref, population)
	for i := range refs {
		ref, _, getErr := p.Get()
		require.NoError(t, getErr)
		refs[i] = ref
	}
	chunks := p.Stats().Chunks

	rng.Shuffle(len(refs), func(i, j int) { refs[i], refs[j] = refs[j], refs[i] })
	for _, ref := range refs {
		p.Put(ref)
	}

	for i := 0; i < population; i++ {
		_, _, getErr := p.Get()
		require.NoError(t, getErr)
	}

	s := p.Stats()
	require.Equal(t, population, s.Live)
	require.LessOrEqual(t, s.Chunks, chunks+1,
		"refilling the same population must not inflate the chunk count")
}
