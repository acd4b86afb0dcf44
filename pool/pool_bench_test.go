package pool

import (
	"math/rand"
	"testing"

	"github.com/joshuapare/intrusive/alloc"
)

func BenchmarkPool_Get(b *testing.B) {
	p, err := New(alloc.Heap{}, 64, 0)
	if err != nil {
		b.Fatal(err)
	}
	defer p.Finalize()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := p.Get(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPool_GetPutChurn(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	p, err := New(alloc.Heap{}, 64, 0)
	if err != nil {
		b.Fatal(err)
	}
	defer p.Finalize()

	const window = 1024
	refs := make([]Ref, 0, window)
	for i := 0; i < window; i++ {
		ref, _, getErr := p.Get()
		if getErr != nil {
			b.Fatal(getErr)
		}
		refs = append(refs, ref)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := rng.Intn(len(refs))
		p.Put(refs[j])
		ref, _, getErr := p.Get()
		if getErr != nil {
			b.Fatal(getErr)
		}
		refs[j] = ref
	}
}

func BenchmarkPool_GetHeapBaseline(b *testing.B) {
	// Plain Go allocations of the same size, for comparison.
	var sink []byte
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = make([]byte, 64)
	}
	_ = sink
}
