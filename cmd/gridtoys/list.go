package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridtoys/gridtoys/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all registered games with their native frame rate.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	fmt.Fprintln(out, "Available games:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %-10s  %s\n", maxIDLen, "ID", "Title", "FPS")
	fmt.Fprintf(out, "  %-*s  %-10s  %s\n", maxIDLen, "--", "-----", "---")

	for _, g := range games {
		fps := "-"
		if game, err := registry.Create(g.ID); err == nil {
			fps = fmt.Sprint(game.FrameRate())
		}
		fmt.Fprintf(out, "  %-*s  %-10s  %s\n", maxIDLen, g.ID, g.Title, fps)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'gridtoys play <id>' to play a game.")
}
