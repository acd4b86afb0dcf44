package array

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/intrusive/alloc"
)

func TestArray_InitValidation(t *testing.T) {
	require.Panics(t, func() { New(nil, 4) })
	require.Panics(t, func() { New(alloc.Heap{}, 0) })
	require.Panics(t, func() { New(alloc.Heap{}, -1) })
}

func TestArray_ExtendAndGet(t *testing.T) {
	a := New(alloc.Heap{}, 4)
	defer a.Finalize()

	buf, err := a.Extend(3)
	require.NoError(t, err)
	require.Len(t, buf, 12)
	copy(buf, []byte{1, 0, 0, 0, 2, 0, 0, 0, 3, 0, 0, 0})

	require.Equal(t, 3, a.Len())
	require.Equal(t, byte(2), a.Get(1, 1)[0])
	require.Len(t, a.Get(0, 3), 12)

	require.Nil(t, a.Get(3, 1), "past the end")
	require.Nil(t, a.Get(1, 3), "range runs off the end")
	require.Nil(t, a.Get(-1, 1))
}

func TestArray_InsertShiftsTail(t *testing.T) {
	a := New(alloc.Heap{}, 1)
	defer a.Finalize()

	buf, err := a.Extend(4)
	require.NoError(t, err)
	copy(buf, "acde")

	mid, err := a.Insert(1, 1)
	require.NoError(t, err)
	mid[0] = 'b'

	require.Equal(t, 5, a.Len())
	require.Equal(t, []byte("abcde"), a.Get(0, 5))
}

func TestArray_InsertPastEndAppends(t *testing.T) {
	a := New(alloc.Heap{}, 1)
	defer a.Finalize()

	buf, _ := a.Extend(2)
	copy(buf, "ab")

	end, err := a.Insert(99, 1)
	require.NoError(t, err)
	end[0] = 'c'
	require.Equal(t, []byte("abc"), a.Get(0, 3))
}

func TestArray_DeleteShiftsTailDown(t *testing.T) {
	a := New(alloc.Heap{}, 1)
	defer a.Finalize()

	buf, _ := a.Extend(5)
	copy(buf, "abcde")

	require.Equal(t, 2, a.Delete(1, 2))
	require.Equal(t, []byte("ade"), a.Get(0, 3))
	require.Equal(t, 3, a.Len())
}

func TestArray_DeleteClampsToEnd(t *testing.T) {
	a := New(alloc.Heap{}, 1)
	defer a.Finalize()

	buf, _ := a.Extend(3)
	copy(buf, "abc")

	require.Equal(t, 2, a.Delete(1, 10), "removal shortens at the end")
	require.Equal(t, 1, a.Len())
	require.Equal(t, 0, a.Delete(5, 1), "index past the end removes nothing")
	require.Equal(t, 0, a.Delete(0, 0))
}

func TestArray_Reduce(t *testing.T) {
	a := New(alloc.Heap{}, 2)
	defer a.Finalize()

	_, err := a.Extend(4)
	require.NoError(t, err)

	require.Equal(t, 2, a.Reduce(2))
	require.Equal(t, 2, a.Len())
	require.Equal(t, 2, a.Reduce(5), "reduce clamps to the length")
	require.Equal(t, 0, a.Len())
}

func TestArray_GrowthFailureLeavesArrayUntouched(t *testing.T) {
	// Room for the initial 2-item buffer and its growth to 4, nothing more.
	limited := alloc.NewLimited(nil, 4*8)
	a := New(limited, 8)
	defer a.Finalize()

	buf, err := a.Extend(4)
	require.NoError(t, err)
	copy(buf, "sentinel")

	_, err = a.Extend(1)
	require.ErrorIs(t, err, ErrOutOfMemory)

	require.Equal(t, 4, a.Len(), "failed grow must not change the length")
	require.Equal(t, []byte("sentinel"), a.Get(0, 1), "failed grow must not move data")

	// Shrinking makes room within the already reserved capacity.
	a.Delete(2, 2)
	_, err = a.Extend(1)
	require.NoError(t, err)
}

func TestArray_InsertZeroItems(t *testing.T) {
	a := New(alloc.Heap{}, 4)
	defer a.Finalize()

	buf, err := a.Insert(0, 0)
	require.NoError(t, err)
	require.Empty(t, buf)
	require.Equal(t, 0, a.Len())
}

func TestArray_NegativeArgsPanic(t *testing.T) {
	a := New(alloc.Heap{}, 4)
	require.Panics(t, func() { a.Insert(-1, 1) })
	require.Panics(t, func() { a.Insert(0, -1) })
	require.Panics(t, func() { a.Delete(-1, 1) })
	require.Panics(t, func() { a.Delete(0, -1) })
}
