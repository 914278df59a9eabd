package main

import (
	"fmt"

	"github.com/milk9111/rampball/storage"
	"github.com/milk9111/rampball/ui"
	"github.com/spf13/cobra"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the longest runs",
	Args:  cobra.NoArgs,
	RunE:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	total, err := store.RunCount()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Longest runs (%d played)\n\n", total)
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Distance", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "--------", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-10s  %s\n", i+1, ui.FormatDistance(r.Distance), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
