package main

import (
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/joshuapare/intrusive/alloc"
	"github.com/joshuapare/intrusive/pool"
)

var (
	poolObjects    int
	poolObjectSize int
	poolChunkSize  int
	poolChurn      int
	poolMmap       bool
)

func init() {
	cmd := newPoolCmd()
	cmd.Flags().IntVar(&poolObjects, "objects", 100000, "Objects to keep live")
	cmd.Flags().IntVar(&poolObjectSize, "object-size", 64, "Object size in bytes")
	cmd.Flags().IntVar(&poolChunkSize, "chunk-size", 0, "Chunk size in bytes (0 picks a default)")
	cmd.Flags().IntVar(&poolChurn, "churn", 10, "Put/Get churn rounds over the live set")
	cmd.Flags().BoolVar(&poolMmap, "mmap", false, "Reserve chunks with mmap instead of the Go heap")
	rootCmd.AddCommand(cmd)
}

func newPoolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pool",
		Short: "Benchmark the chunked pool allocator",
		Long: `The pool command fills a pool with live objects, then churns it by
returning and reacquiring random subsets, timing each phase and
reporting the final memory shape.

Example:
  poolbench pool --objects 1000000 --object-size 48
  poolbench pool --chunk-size 65536 --churn 50 --mmap`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPool()
		},
	}
}

type poolResult struct {
	fill  time.Duration
	churn time.Duration
	stats pool.Stats
}

func runPool() error {
	var backing alloc.Allocator = alloc.Heap{}
	if poolMmap {
		backing = alloc.Mmap{}
	}

	p, err := pool.New(backing, poolObjectSize, poolChunkSize)
	if err != nil {
		return err
	}
	defer p.Finalize()

	res, err := poolWorkload(p)
	if err != nil {
		return err
	}

	printInfo("%s\n", renderPoolResult(res))
	return nil
}

// poolWorkload acquires poolObjects slots, then runs poolChurn rounds
// where a random half of the live set is returned and reacquired.
func poolWorkload(p *pool.Pool) (poolResult, error) {
	rng := rand.New(rand.NewSource(seed))
	var res poolResult

	refs := make([]pool.Ref, poolObjects)
	start := time.Now()
	for i := range refs {
		ref, _, err := p.Get()
		if err != nil {
			return res, err
		}
		refs[i] = ref
	}
	res.fill = time.Since(start)

	start = time.Now()
	for round := 0; round < poolChurn; round++ {
		half := rng.Perm(len(refs))[:len(refs)/2]
		for _, i := range half {
			p.Put(refs[i])
		}
		for _, i := range half {
			ref, _, err := p.Get()
			if err != nil {
				return res, err
			}
			refs[i] = ref
		}
	}
	res.churn = time.Since(start)

	res.stats = p.Stats()
	return res, nil
}

func renderPoolResult(res poolResult) string {
	s := res.stats
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Metric", "Value"})
	tbl.AppendRow(table.Row{"Fill", res.fill.Round(time.Millisecond)})
	tbl.AppendRow(table.Row{"Churn", res.churn.Round(time.Millisecond)})
	tbl.AppendRow(table.Row{"Object size", humanize.IBytes(uint64(s.ObjectSize))})
	tbl.AppendRow(table.Row{"Chunk size", humanize.IBytes(uint64(s.ChunkSize))})
	tbl.AppendRow(table.Row{"Slots per chunk", s.SlotsPerChunk})
	tbl.AppendRow(table.Row{"Chunks", humanize.Comma(int64(s.Chunks))})
	tbl.AppendRow(table.Row{"Live objects", humanize.Comma(int64(s.Live))})
	tbl.AppendRow(table.Row{"Bytes reserved", humanize.IBytes(uint64(s.BytesReserved))})
	tbl.AppendRow(table.Row{"Bytes live", humanize.IBytes(uint64(s.BytesLive))})
	tbl.AppendRow(table.Row{"Cached free chunk", s.CachedFree})
	return tbl.Render()
}
