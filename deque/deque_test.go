package deque

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/intrusive"
)

type event struct {
	id   int
	node Node[event]
}

func newEvent(id int) *event {
	e := &event{id: id}
	e.node.Bind(e)
	return e
}

func collect(q *Deque[event]) []int {
	var ids []int
	for n := q.First(); n != q.Tail(); n = q.Walk(n, intrusive.Next) {
		ids = append(ids, n.Elem().id)
	}
	return ids
}

func TestDeque_Empty(t *testing.T) {
	q := New[event]()

	require.True(t, q.Empty())
	require.Equal(t, q.Tail(), q.First())
	require.Nil(t, collect(q))
}

func TestDeque_AddFirst_AddLast(t *testing.T) {
	q := New[event]()

	q.AddLast(&newEvent(2).node)
	q.AddFirst(&newEvent(1).node)
	q.AddLast(&newEvent(3).node)

	require.False(t, q.Empty())
	require.Equal(t, []int{1, 2, 3}, collect(q))
	require.Equal(t, 1, q.First().Elem().id)
	require.Equal(t, 3, q.Last().Elem().id)
}

func TestDeque_AddAfter_DelAfter(t *testing.T) {
	q := New[event]()

	a := newEvent(1)
	b := newEvent(2)
	c := newEvent(3)
	q.AddLast(&a.node)
	q.AddLast(&c.node)
	q.AddAfter(&a.node, &b.node)
	require.Equal(t, []int{1, 2, 3}, collect(q))

	del := q.DelAfter(&a.node)
	require.Same(t, &b.node, del)
	require.Equal(t, []int{1, 3}, collect(q))

	// Removing the last element must retarget the cached last pointer.
	q.DelAfter(&a.node)
	require.Equal(t, 1, q.Last().Elem().id)
}

func TestDeque_DelFirst_DelLast(t *testing.T) {
	q := New[event]()
	for i := 1; i <= 4; i++ {
		q.AddLast(&newEvent(i).node)
	}

	require.Equal(t, 1, q.DelFirst().Elem().id)
	require.Equal(t, 4, q.DelLast().Elem().id)
	require.Equal(t, []int{2, 3}, collect(q))

	q.DelFirst()
	q.DelFirst()
	require.True(t, q.Empty())
}

func TestDeque_WalkBackwards(t *testing.T) {
	q := New[event]()
	for i := 1; i <= 3; i++ {
		q.AddLast(&newEvent(i).node)
	}

	// Backwards walks scan from the head, the links are one way.
	n := q.Walk(q.Tail(), intrusive.Prev)
	require.Equal(t, 3, n.Elem().id)
	n = q.Walk(n, intrusive.Prev)
	require.Equal(t, 2, n.Elem().id)
	n = q.Walk(n, intrusive.Prev)
	require.Equal(t, 1, n.Elem().id)
	require.Equal(t, q.Head(), q.Walk(n, intrusive.Prev))
}

func TestDeque_AddAfterTailPanics(t *testing.T) {
	q := New[event]()
	require.Panics(t, func() { q.AddAfter(q.Tail(), &newEvent(1).node) })
}

func TestDeque_DelAfterLastPanics(t *testing.T) {
	q := New[event]()
	e := newEvent(1)
	q.AddLast(&e.node)
	require.Panics(t, func() { q.DelAfter(&e.node) })
}

func TestDeque_InterleavedOps(t *testing.T) {
	q := New[event]()
	events := make([]*event, 0, 16)
	for i := 0; i < 16; i++ {
		events = append(events, newEvent(i))
	}

	for _, e := range events[:8] {
		q.AddLast(&e.node)
	}
	for i := 0; i < 4; i++ {
		q.DelFirst()
	}
	for _, e := range events[8:] {
		q.AddFirst(&e.node)
	}

	want := []int{15, 14, 13, 12, 11, 10, 9, 8, 4, 5, 6, 7}
	require.Equal(t, want, collect(q))
	require.Equal(t, 7, q.Last().Elem().id)
}
