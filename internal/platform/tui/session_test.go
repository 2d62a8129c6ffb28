package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/gridtoys/gridtoys/internal/registry"
)

// checkedGame is a stub whose configuration check can fail.
type checkedGame struct {
	*stubGame
	checkErr error
}

func (g checkedGame) ID() string   { return "checked" }
func (g checkedGame) Check() error { return g.checkErr }

var errBadConfig = errors.New("spawn.rate_step must be within (0, 1]")

func init() {
	registry.Register("checked", func() registry.Game {
		return checkedGame{stubGame: newStubGame(0, 0), checkErr: errBadConfig}
	})
}

func TestCreateGameWarnsOnInvalidConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	game, err := createGame("checked", logger)
	if err != nil {
		t.Fatalf("createGame: %v", err)
	}
	if game.ID() != "checked" {
		t.Errorf("ID() = %q, want checked", game.ID())
	}

	out := buf.String()
	for _, want := range []string{"invalid config", "game=checked", "rate_step"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}
}

func TestCreateGameUnknown(t *testing.T) {
	var buf bytes.Buffer
	if _, err := createGame("no-such-game", log.New(&buf)); err == nil {
		t.Error("expected error for unknown game")
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output %q", buf.String())
	}
}
