package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/intrusive/alloc"
	"github.com/joshuapare/intrusive/pool"
	"github.com/joshuapare/intrusive/tree"
)

func TestTreeWorkload_Smoke(t *testing.T) {
	treeKeys = 2000
	treeCheckEvery = 500

	res := treeWorkload("avl", tree.NewAVL(compareItems))
	require.Equal(t, "avl", res.strategy)
	require.Equal(t, 2000, res.keys)
	require.Positive(t, res.checks)

	out := renderTreeResults([]treeResult{res})
	require.Contains(t, out, "avl")
	require.Contains(t, out, "2,000")
}

func TestPoolWorkload_Smoke(t *testing.T) {
	poolObjects = 500
	poolObjectSize = 32
	poolChurn = 3

	p, err := pool.New(alloc.Heap{}, poolObjectSize, 0)
	require.NoError(t, err)
	defer p.Finalize()

	res, err := poolWorkload(p)
	require.NoError(t, err)
	require.Equal(t, 500, res.stats.Live)
	require.LessOrEqual(t, res.stats.BytesLive, res.stats.BytesReserved)

	out := renderPoolResult(res)
	require.Contains(t, out, "Chunks")
	require.Contains(t, out, "Bytes reserved")
}
