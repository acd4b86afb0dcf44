package heap

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

type job struct {
	priority int
	index    int
}

func byPriority(a, b *job) int {
	return a.priority - b.priority
}

func trackIndex(j *job, i int) {
	j.index = i
}

func TestHeap_Empty(t *testing.T) {
	h := New(byPriority, nil)

	require.True(t, h.Empty())
	require.Zero(t, h.Len())
	require.Panics(t, func() { h.Top() })
	require.Panics(t, func() { h.Pop() })
}

func TestHeap_PushPopOrder(t *testing.T) {
	h := New(byPriority, nil)

	for _, p := range []int{5, 1, 4, 2, 3} {
		h.Push(&job{priority: p})
	}
	require.Equal(t, 5, h.Len())
	require.Equal(t, 1, h.Top().priority)

	var got []int
	for !h.Empty() {
		got = append(got, h.Pop().priority)
	}
	require.Equal(t, []int{1, 2, 3, 4, 5}, got)
}

func TestHeap_PopOrderEqualsSortedOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) // Fixed seed for reproducibility
	h := New(byPriority, trackIndex)

	want := make([]int, 500)
	for i := range want {
		want[i] = rng.Intn(1000)
		h.Push(&job{priority: want[i]})
	}
	sort.Ints(want)

	got := make([]int, 0, len(want))
	for !h.Empty() {
		got = append(got, h.Pop().priority)
	}
	require.Equal(t, want, got)
}

func TestHeap_IndexCallbackTracksSlots(t *testing.T) {
	h := New(byPriority, trackIndex)

	jobs := make([]*job, 6)
	for i := range jobs {
		jobs[i] = &job{priority: 10 - i}
		h.Push(jobs[i])
	}

	// Every live element must know exactly where it sits.
	for _, j := range jobs {
		require.Same(t, j, h.data[j.index])
	}
}

func TestHeap_TouchAfterPriorityIncrease(t *testing.T) {
	h := New(byPriority, trackIndex)

	jobs := make([]*job, 5)
	for i := range jobs {
		jobs[i] = &job{priority: (i + 1) * 10}
		h.Push(jobs[i])
	}

	// Promote the last job to the most urgent and notify the heap.
	last := jobs[4]
	last.priority = 1
	h.Touch(last.index)

	require.Same(t, last, h.Top())
	require.Same(t, last, h.Pop())
	require.Equal(t, 10, h.Top().priority)
}

func TestHeap_ExtractByIndex(t *testing.T) {
	h := New(byPriority, trackIndex)

	jobs := make([]*job, 5)
	for i := range jobs {
		jobs[i] = &job{priority: (i + 1) * 10}
		h.Push(jobs[i])
	}

	victim := jobs[2]
	require.Same(t, victim, h.Extract(victim.index))
	require.Equal(t, 4, h.Len())

	var got []int
	for !h.Empty() {
		got = append(got, h.Pop().priority)
	}
	require.Equal(t, []int{10, 20, 40, 50}, got)
}

func TestHeap_ExtractLowersThenReinsert(t *testing.T) {
	h := New(byPriority, trackIndex)

	jobs := make([]*job, 4)
	for i := range jobs {
		jobs[i] = &job{priority: i + 1}
		h.Push(jobs[i])
	}

	// A priority decrease is modeled as extract plus fresh push.
	demoted := jobs[0]
	h.Extract(demoted.index)
	demoted.priority = 99
	h.Push(demoted)

	var got []int
	for !h.Empty() {
		got = append(got, h.Pop().priority)
	}
	require.Equal(t, []int{2, 3, 4, 99}, got)
}

func TestHeap_IndexOutOfRangePanics(t *testing.T) {
	h := New(byPriority, nil)
	h.Push(&job{priority: 1})

	require.Panics(t, func() { h.Touch(-1) })
	require.Panics(t, func() { h.Touch(1) })
	require.Panics(t, func() { h.Extract(1) })
}
