package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gridtoys/gridtoys/internal/core"
	"github.com/gridtoys/gridtoys/internal/platform/tui"
	"github.com/gridtoys/gridtoys/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick games from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Press Esc in a game to return to the menu, Tab for high scores.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - High scores
  Q            - Quit

Examples:
  gridtoys menu
  gridtoys menu --fps 30
  gridtoys menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return tui.RunSession(tui.Options{
		Store:   store,
		Logger:  logger,
		Player:  os.Getenv("USER"),
		Runtime: core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed},
	}, width, height)
}
