// flaptty is a terminal flappy-bird style game with replay recording.
//
// Usage:
//
//	flaptty play             - Play the game
//	flaptty replays          - Browse and watch recorded replays
//	flaptty replay <id>      - Watch a specific replay
//	flaptty serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: from config)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.flaptty/replays.db)
//	--config <path>  - Path to custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flaptty",
	Short: "flaptty - Flap through pipes in your terminal",
	Long: `flaptty is a terminal game: hold your nerve, tap space, and
thread the bird through an endless run of pipes.

Every run is recorded as a deterministic replay that you can watch back.

Available commands:
  play     - Play the game (default)
  replays  - Browse and watch recorded replays
  replay   - Watch a specific replay by id
  serve    - Start SSH server for remote play

Examples:
  flaptty play
  flaptty play --seed 42
  flaptty replays
  flaptty replay 7
  flaptty serve --ssh :2222`,
	// Running without a subcommand starts a game.
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flaptty/replays.db", "Path to replays database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
}
