package tree

import (
	"math/rand"
	"testing"

	"github.com/joshuapare/intrusive"
)

func benchmarkAdd(b *testing.B, mk func(Compare[record]) *Tree[record]) {
	rng := rand.New(rand.NewSource(42))
	keys := rng.Perm(b.N)
	records := make([]record, b.N)
	for i := range records {
		records[i].key = keys[i]
		records[i].node.Bind(&records[i])
	}
	tr := mk(byKey)

	b.ResetTimer()
	for i := range records {
		tr.Add(&records[i].node)
	}
}

func BenchmarkAVL_Add(b *testing.B)      { benchmarkAdd(b, NewAVL[record]) }
func BenchmarkRedBlack_Add(b *testing.B) { benchmarkAdd(b, NewRedBlack[record]) }

func benchmarkAddDelete(b *testing.B, mk func(Compare[record]) *Tree[record]) {
	rng := rand.New(rand.NewSource(42))
	keys := rng.Perm(b.N)
	records := make([]record, b.N)
	for i := range records {
		records[i].key = keys[i]
		records[i].node.Bind(&records[i])
	}
	tr := mk(byKey)

	b.ResetTimer()
	for i := range records {
		tr.Add(&records[i].node)
	}
	for i := range records {
		tr.Delete(&records[i].node)
	}
}

func BenchmarkAVL_AddDelete(b *testing.B)      { benchmarkAddDelete(b, NewAVL[record]) }
func BenchmarkRedBlack_AddDelete(b *testing.B) { benchmarkAddDelete(b, NewRedBlack[record]) }

func BenchmarkAVL_Walk(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	records := make([]record, 4096)
	tr := NewAVL(byKey)
	keys := rng.Perm(len(records))
	for i := range records {
		records[i].key = keys[i]
		records[i].node.Bind(&records[i])
		tr.Add(&records[i].node)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for n := tr.First(); n != tr.Tail(); n = tr.Walk(n, intrusive.Next) {
			_ = n.Elem()
		}
	}
}
