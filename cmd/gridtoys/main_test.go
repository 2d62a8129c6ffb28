package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gridtoys/gridtoys/internal/registry"
	"github.com/gridtoys/gridtoys/internal/storage"
)

func TestResolveUI(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		flag    string
		want    string
		wantErr bool
	}{
		{"default flag", []string{"snake"}, "terminal", "terminal", false},
		{"positional wins", []string{"snake", "debug"}, "terminal", "debug", false},
		{"flag only", []string{"snake"}, "window", "window", false},
		{"case folded", []string{"snake", "Window"}, "terminal", "window", false},
		{"unknown", []string{"snake", "vr"}, "terminal", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveUI(tt.args, tt.flag)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveUI() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("resolveUI() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAllGamesRegistered(t *testing.T) {
	for _, id := range []string{"conway", "noise", "particles", "race", "snake", "tetris"} {
		if !registry.Exists(id) {
			t.Errorf("game %q is not registered", id)
		}
		if _, ok := configSetters[id]; !ok {
			t.Errorf("game %q has no config setter", id)
		}
	}
}

func TestCreateGame(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	game, err := createGame("particles", "")
	if err != nil {
		t.Fatalf("createGame() error = %v", err)
	}
	if game.ID() != "particles" {
		t.Errorf("ID() = %q", game.ID())
	}

	_, err = createGame("pong", "")
	if err == nil || !strings.Contains(err.Error(), "particles") {
		t.Errorf("unknown game error should list games, got %v", err)
	}

	t.Cleanup(func() { configSetters["snake"]("") })
	_, err = createGame("snake", "/does/not/exist.yaml")
	if err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestListCommand(t *testing.T) {
	var out bytes.Buffer
	listCmd.SetOut(&out)
	runList(listCmd, nil)

	for _, want := range []string{"particles", "Tetris", "Run 'gridtoys play <id>'"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("list output missing %q:\n%s", want, out.String())
		}
	}
}

func TestScoresCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	for i := 1; i <= 12; i++ {
		if _, err := store.SaveScore("snake", "ann", i*10); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}
	store.Close()

	oldDB, oldLimit, oldAll := flagDBPath, flagLimit, flagAll
	t.Cleanup(func() { flagDBPath, flagLimit, flagAll = oldDB, oldLimit, oldAll })
	flagDBPath = path

	tests := []struct {
		name  string
		limit int
		all   bool
		rows  int
	}{
		{"limited", 10, false, 10},
		{"all", 3, true, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagLimit, flagAll = tt.limit, tt.all

			var out bytes.Buffer
			scoresCmd.SetOut(&out)
			if err := runScores(scoresCmd, []string{"snake"}); err != nil {
				t.Fatalf("runScores: %v", err)
			}
			if got := strings.Count(out.String(), " ann "); got != tt.rows {
				t.Errorf("rows = %d, want %d:\n%s", got, tt.rows, out.String())
			}
			if !strings.Contains(out.String(), "Best: 120") {
				t.Errorf("output missing best score:\n%s", out.String())
			}
		})
	}
}
