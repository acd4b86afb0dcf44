package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	quiet bool
	seed  int64
)

var rootCmd = &cobra.Command{
	Use:   "poolbench",
	Short: "Benchmark the intrusive containers and the pool allocator",
	Long: `poolbench drives synthetic workloads against the balanced tree
strategies and the chunked pool allocator and prints timing and memory
tables. Workloads are seeded and reproducible.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().
		Int64Var(&seed, "seed", 42, "Seed for the workload generator")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints a message unless quiet mode is on.
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
