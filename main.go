// rampball is an endless side-scroller: hold to pull the ball down the ramps,
// let go to fly, and stay ahead of the spikes.
//
// Usage:
//
//	rampball                 - Play
//	rampball play            - Play
//	rampball scores          - Show the longest runs
//
// Global flags:
//
//	--debug         - Debug logging and the platform overlay
//	--db <path>     - Scores database (default: ~/.rampball/scores.db)
//	--seed <value>  - Seed handed to platform shape scripts
//	--monitor       - Use the first monitor instead of the primary one
//	--watch         - Reload tuning from ./prefabs when it changes
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/milk9111/rampball/storage"
	"github.com/spf13/cobra"
)

var (
	flagDebug   bool
	flagDBPath  string
	flagSeed    int64
	flagMonitor bool
	flagWatch   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "rampball",
	Short:        "Ramp Ball - roll down the ramps, outrun the spikes",
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging and the debug overlay")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Seed for platform shape scripts (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagMonitor, "monitor", false, "Use the first monitor instead of the primary one")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload tuning from ./prefabs when files change")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rampball",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
