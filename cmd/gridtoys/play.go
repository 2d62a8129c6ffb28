package main

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridtoys/gridtoys/internal/core"
	"github.com/gridtoys/gridtoys/internal/platform/debug"
	"github.com/gridtoys/gridtoys/internal/platform/tui"
	"github.com/gridtoys/gridtoys/internal/platform/window"
	"github.com/gridtoys/gridtoys/internal/storage"
)

var (
	flagConfig string
	flagUI     string
)

// uiNames lists the front-ends in the order they are offered.
var uiNames = []string{"terminal", "window", "debug"}

var playCmd = &cobra.Command{
	Use:   "play <game> [terminal|window|debug]",
	Short: "Play a game",
	Long: `Start playing the specified game.

Front-ends:
  terminal - full-screen terminal UI (default)
  window   - desktop window (requires a build with -tags ebiten)
  debug    - prints the grid after every line of input; the first
             character of each line is sent to the game as a key

Controls (terminal):
  W/A/S/D, arrows - play
  R               - Restart (after game over)
  Esc, Q/Ctrl+C   - Quit

Examples:
  gridtoys play particles
  gridtoys play tetris window
  gridtoys play race --ui debug
  gridtoys play snake --config ./my-snake.yaml`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagUI, "ui", "terminal", "Front-end: "+strings.Join(uiNames, ", "))
}

// resolveUI picks the front-end from the positional argument, falling back to --ui.
func resolveUI(args []string, flag string) (string, error) {
	ui := flag
	if len(args) > 1 {
		ui = args[1]
	}
	ui = strings.ToLower(ui)
	if !slices.Contains(uiNames, ui) {
		return "", fmt.Errorf("unknown ui %q (available: %s)", ui, strings.Join(uiNames, ", "))
	}
	return ui, nil
}

func runtimeConfig() core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{TickRate: flagFPS, Seed: seed}
}

func runPlay(_ *cobra.Command, args []string) error {
	ui, err := resolveUI(args, flagUI)
	if err != nil {
		return err
	}

	game, err := createGame(args[0], flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(ui == "terminal")
	if err != nil {
		return err
	}
	defer closeLog()

	rt := runtimeConfig()
	logger.Info("starting game", "game", game.ID(), "ui", ui, "seed", rt.Seed, "fps", rt.TickRate)

	switch ui {
	case "window":
		return window.Run(game, rt, logger)
	case "debug":
		return debug.Run(game, rt, os.Stdin, os.Stdout, debug.WithLogger(logger))
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, tui.Options{
		Store:   store,
		Logger:  logger,
		Player:  os.Getenv("USER"),
		Runtime: rt,
	})
}
