package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/rampball/prefabs"
	"github.com/milk9111/rampball/sim"
	"github.com/milk9111/rampball/storage"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Ramp Ball",
	Long: `Open the game window.

Press anywhere to drop the ball. While a press is held the ball is pulled
down hard; release it to fly off the next ramp. Escape pauses and Space
toggles the collider wireframe.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		logger.Warn("tuning unreadable, using defaults", "err", err)
		tuning = prefabs.DefaultTuning()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := sim.Options{Tuning: tuning, Seed: seed, Logger: logger}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("scores disabled", "db", flagDBPath, "err", err)
	} else {
		defer store.Close()
		opts.Recorder = store
	}

	var watcher *prefabs.Watcher
	if flagWatch {
		watcher, err = prefabs.NewWatcher(prefabs.DiskDir, prefabs.DiskDir+"/scripts")
		if err != nil {
			logger.Error("tuning watch disabled", "dir", prefabs.DiskDir, "err", err)
		} else {
			defer watcher.Close()
		}
	}

	if flagMonitor {
		if monitors := ebiten.AppendMonitors(nil); len(monitors) > 0 {
			ebiten.SetMonitor(monitors[0])
		}
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("Ramp Ball")

	game := NewGame(sim.New(opts), watcher, logger, flagDebug)
	logger.Info("starting", "seed", seed, "watch", watcher != nil)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
