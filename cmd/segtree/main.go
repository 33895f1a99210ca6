// Package main provides the segtree command, a small driver that builds the
// segment tree variants over a sequence and prints range query results.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

// referenceValues is the sequence used when --values is not given.
var referenceValues = []int{1, 3, 4, -3, 8, 6, 1, 4, 2}

type app struct {
	values  []int
	verbose bool
	logger  *slog.Logger
}

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "segtree",
		Short: "Segment tree range queries",
		Long: `segtree builds segment trees over a sequence of integers and answers
range sum and range minimum queries.

Commands:
  demo      Print the reference queries for all three tree variants
  query     Apply updates and answer a single range query`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}

	rootCmd.PersistentFlags().IntSliceVar(&a.values, "values", referenceValues, "sequence to build the trees over")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newDemoCommand(a))
	rootCmd.AddCommand(newQueryCommand(a))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "segtree %s\n", Version)
		},
	}
}
