package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/joshuapare/intrusive"
	"github.com/joshuapare/intrusive/tree"
)

var (
	treeKeys       int
	treeStrategy   string
	treeCheckEvery int
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeKeys, "keys", 100000, "Number of keys to insert and delete")
	cmd.Flags().StringVar(&treeStrategy, "strategy", "both", "Balancing strategy: avl, rb or both")
	cmd.Flags().IntVar(&treeCheckEvery, "check-every", 0, "Verify invariants every N operations (0 disables)")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Benchmark the balanced tree strategies",
		Long: `The tree command inserts random keys into a balanced tree, walks it
in order and deletes the keys in random order, timing each phase.

Example:
  poolbench tree --keys 500000 --strategy avl
  poolbench tree --check-every 1000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree()
		},
	}
}

type treeItem struct {
	key  int
	node tree.Node[treeItem]
}

func compareItems(a, b *treeItem) int {
	return a.key - b.key
}

type treeResult struct {
	strategy string
	keys     int
	insert   time.Duration
	walk     time.Duration
	remove   time.Duration
	checks   int
}

func runTree() error {
	var results []treeResult

	switch treeStrategy {
	case "avl":
		results = append(results, treeWorkload("avl", tree.NewAVL(compareItems)))
	case "rb":
		results = append(results, treeWorkload("rb", tree.NewRedBlack(compareItems)))
	case "both":
		results = append(results, treeWorkload("avl", tree.NewAVL(compareItems)))
		results = append(results, treeWorkload("rb", tree.NewRedBlack(compareItems)))
	default:
		return fmt.Errorf("unknown strategy %q", treeStrategy)
	}

	printInfo("%s\n", renderTreeResults(results))
	return nil
}

// treeWorkload inserts treeKeys random keys, walks the tree in order
// and removes the keys in a different random order.
func treeWorkload(name string, t *tree.Tree[treeItem]) treeResult {
	rng := rand.New(rand.NewSource(seed))
	res := treeResult{strategy: name, keys: treeKeys}

	items := make([]treeItem, treeKeys)
	for i := range items {
		items[i].key = rng.Int()
		items[i].node.Bind(&items[i])
	}

	check := func(step int) {
		if treeCheckEvery > 0 && step%treeCheckEvery == 0 {
			if ok, _ := t.Check(); !ok {
				panic("tree invariant violated during workload")
			}
			res.checks++
		}
	}

	start := time.Now()
	for i := range items {
		t.Add(&items[i].node)
		check(i)
	}
	res.insert = time.Since(start)

	start = time.Now()
	for n := t.First(); n != t.Tail(); n = t.Walk(n, intrusive.Next) {
		_ = n.Elem()
	}
	res.walk = time.Since(start)

	order := rng.Perm(len(items))
	start = time.Now()
	for i, j := range order {
		t.Delete(&items[j].node)
		check(i)
	}
	res.remove = time.Since(start)

	return res
}

func renderTreeResults(results []treeResult) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Strategy", "Keys", "Insert", "Walk", "Delete", "Checks"})
	for _, r := range results {
		tbl.AppendRow(table.Row{
			r.strategy,
			humanize.Comma(int64(r.keys)),
			r.insert.Round(time.Millisecond),
			r.walk.Round(time.Millisecond),
			r.remove.Round(time.Millisecond),
			r.checks,
		})
	}
	return tbl.Render()
}
