package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridtoys/gridtoys/internal/core"
	"github.com/gridtoys/gridtoys/internal/storage"
)

// stubGame records what the front-end delivers to it.
type stubGame struct {
	graphics *core.Graphics
	keys     []core.KeyEvent
	steps    int
	resets   int
	overAt   int
	score    int
}

func newStubGame(overAt, score int) *stubGame {
	return &stubGame{overAt: overAt, score: score}
}

func (g *stubGame) ID() string     { return "stub" }
func (g *stubGame) Title() string  { return "Stub" }
func (g *stubGame) FrameRate() int { return 10 }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.graphics = core.NewGraphics("Stub", core.NewBuffer(2, 2))
	g.steps = 0
	g.resets++
}

func (g *stubGame) Step() core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}

func (g *stubGame) HandleKey(ev core.KeyEvent) { g.keys = append(g.keys, ev) }
func (g *stubGame) Graphics() *core.Graphics   { return g.graphics }

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.overAt > 0 && g.steps >= g.overAt}
}

func tick(m GameModel) GameModel {
	next, _ := m.Update(TickMsg{ID: m.tickID})
	return next.(GameModel)
}

func TestGameModelForwardsKeys(t *testing.T) {
	game := newStubGame(0, 0)
	m := NewGameModel(game, Options{})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(GameModel)

	want := []core.KeyEvent{core.Press('a'), core.Release('a')}
	if len(game.keys) != 2 || game.keys[0] != want[0] || game.keys[1] != want[1] {
		t.Errorf("keys = %v, want %v", game.keys, want)
	}
	if game.resets != 1 {
		t.Errorf("expected one reset, got %d", game.resets)
	}
	if m.IsQuitting() {
		t.Error("a game key must not quit")
	}
}

func TestGameModelTicks(t *testing.T) {
	game := newStubGame(0, 0)
	m := NewGameModel(game, Options{})

	m = tick(m)
	m = tick(m)
	if game.steps != 2 {
		t.Errorf("steps = %d, want 2", game.steps)
	}

	// Ticks from another loop are ignored
	next, cmd := m.Update(TickMsg{ID: m.tickID + 100})
	m = next.(GameModel)
	if game.steps != 2 || cmd != nil {
		t.Errorf("stale tick should be ignored, steps = %d", game.steps)
	}
}

func TestGameModelQuitAndBack(t *testing.T) {
	m := NewGameModel(newStubGame(0, 0), Options{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(GameModel).BackToMenu() {
		t.Error("esc should go back to menu")
	}
}

func TestGameModelSavesScoreOnceAndRestarts(t *testing.T) {
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	game := newStubGame(1, 42)
	m := NewGameModel(game, Options{Store: store, Player: "ann"})

	m = tick(m)
	m = tick(m)
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 42 || scores[0].Player != "ann" {
		t.Fatalf("scores = %+v, want one entry of 42 by ann", scores)
	}
	if m.Best() != 42 {
		t.Errorf("Best() = %d, want 42 after saving", m.Best())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(GameModel)
	m = tick(m)
	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
	if m.State().GameOver {
		t.Error("restart should clear game over")
	}
}

func TestGameModelView(t *testing.T) {
	m := NewGameModel(newStubGame(0, 0), Options{})
	if m.View() == "" {
		t.Error("expected non-empty view")
	}
}

func TestGameModelShowsStoredBest(t *testing.T) {
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	for _, score := range []int{15, 70, 30} {
		if _, err := store.SaveScore("stub", "ann", score); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	m := NewGameModel(newStubGame(0, 0), Options{Store: store})
	if m.Best() != 70 {
		t.Errorf("Best() = %d, want 70", m.Best())
	}
	if !strings.Contains(m.View(), "Best: 70") {
		t.Error("view should show the stored best score")
	}

	if strings.Contains(NewGameModel(newStubGame(0, 0), Options{}).View(), "Best:") {
		t.Error("view without a store should not show a best score")
	}
}
