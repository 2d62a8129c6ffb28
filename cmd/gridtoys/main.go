// gridtoys plays small grid games in the terminal, in a window or in a
// line-oriented debug console.
//
// Usage:
//
//	gridtoys list                      - List available games
//	gridtoys play <game> [ui]          - Play a game (ui: terminal, window, debug)
//	gridtoys menu                      - Start menu to pick games interactively
//	gridtoys serve                     - Start SSH server for remote play
//	gridtoys scores <game>             - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>         - Override the game's frame rate (0 = game default)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.gridtoys/scores.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridtoys/gridtoys/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridtoys",
	Short: "gridtoys - falling sand and other grid games",
	Long: `gridtoys is a small collection of grid games: a falling-sand particle
sandbox, tetris, snake, Conway's game of life, a racing game and noise.

Every game can be played in the terminal, in a desktop window (when built
with -tags ebiten) or in a line-oriented debug console.

Examples:
  gridtoys list
  gridtoys play particles
  gridtoys play tetris window
  gridtoys play conway debug
  gridtoys menu
  gridtoys serve --ssh :2222
  gridtoys scores snake`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = game's own frame rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
