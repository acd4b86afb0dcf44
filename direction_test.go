package intrusive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirection_Opposite(t *testing.T) {
	require.Equal(t, Next, Prev.Opposite())
	require.Equal(t, Prev, Next.Opposite())
}

func TestDirection_Weight(t *testing.T) {
	require.Equal(t, int8(-1), Prev.Weight())
	require.Equal(t, int8(1), Next.Weight())
}

func TestDirectionOf(t *testing.T) {
	require.Equal(t, Prev, DirectionOf(-42))
	require.Equal(t, Prev, DirectionOf(-1))
	require.Equal(t, Next, DirectionOf(1))
	require.Equal(t, Next, DirectionOf(42))

	// DirectionOf inverts Weight for nonzero orderings.
	require.Equal(t, Prev, DirectionOf(int(Prev.Weight())))
	require.Equal(t, Next, DirectionOf(int(Next.Weight())))
}

func TestDirection_String(t *testing.T) {
	require.Equal(t, "prev", Prev.String())
	require.Equal(t, "next", Next.String())
}
