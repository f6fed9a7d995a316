package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"flaptty/internal/config"
	"flaptty/internal/core"
	"flaptty/internal/platform/tui"
	"flaptty/internal/replay"
	"flaptty/internal/storage"
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse and watch recorded replays",
	Long: `Open an interactive browser of recorded runs.

Select a replay with Up/Down and press Enter to watch it.
Press D to delete the selected replay.

Examples:
  flaptty replays
  flaptty replays --db ./replays.db`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Watch a specific replay",
	Long: `Play back a recorded run by its id.

The run is re-simulated from its seed and input log, so playback is
tick-for-tick identical to the original.

Examples:
  flaptty replay 7`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplays(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replays database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Loop so the browser comes back after each playback.
	for {
		entry, err := tui.RunReplays(store, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if entry == nil {
			return
		}
		if err := playBack(entry.Log, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error playing replay: %v\n", err)
			os.Exit(1)
		}
	}
}

func runReplay(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid replay id %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replays database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entry, err := store.Replay(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving replay: %v\n", err)
		os.Exit(1)
	}
	if entry == nil {
		fmt.Fprintf(os.Stderr, "Error: no replay with id %d\n", id)
		fmt.Fprintln(os.Stderr, "Run 'flaptty replays' to see recorded replays.")
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := playBack(entry.Log, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error playing replay: %v\n", err)
		os.Exit(1)
	}
}

// playBack re-runs a recorded log through the normal game UI.
func playBack(l replay.Log, width, height int) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	tickRate := l.TickRate
	if tickRate <= 0 {
		tickRate = cfg.Timing.TickRate
	}
	if flagFPS > 0 {
		// Allow fast-forward or slow-motion playback.
		tickRate = flagFPS
	}

	return tui.Run(tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: tickRate,
			Seed:     l.Seed,
		},
		Params:     cfg.SimParams(),
		SpawnEvery: time.Duration(cfg.Timing.SpawnEveryMs) * time.Millisecond,
		Playback:   &l,
	})
}
