// Command weft-bench exercises the reconciliation engine with synthetic
// workloads and reports pass latencies. It is the quickest way to see what
// keyed reordering costs relative to steady-state frames, and doubles as a
// live metrics source when pointed at a Prometheus scraper.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "weft-bench",
		Short:         "Benchmark the weft reconciliation engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(runCmd(), versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Printf("weft-bench %s (%s)\n", version, commit)
		},
	}
}
