package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/gridtoys/gridtoys/internal/core"
	"github.com/gridtoys/gridtoys/internal/registry"
	"github.com/gridtoys/gridtoys/internal/storage"
)

// Options carries the collaborators shared by every model in this package.
type Options struct {
	Store   *storage.Store // may be nil; scores are then not saved
	Logger  *log.Logger    // may be nil
	Player  string         // recorded with saved scores
	Runtime core.RuntimeConfig
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

// GameModel is the Bubble Tea model running one game.
type GameModel struct {
	game       registry.Game
	opts       Options
	keyMapper  *KeyMapper
	keys       GameKeyMap
	help       help.Model
	gameState  core.GameState
	tickID     int64
	width      int
	height     int
	restart    bool // restart on the next tick
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
	best       int  // stored high score, 0 without a store
}

// NewGameModel creates a new Bubble Tea model for the given game.
// The game is reset immediately so the first frame can be drawn.
func NewGameModel(game registry.Game, opts Options) GameModel {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	game.Reset(opts.Runtime)

	m := GameModel{
		game:      game,
		opts:      opts,
		keyMapper: NewKeyMapper(),
		keys:      DefaultGameKeyMap(),
		help:      help.New(),
		gameState: game.State(),
		tickID:    nextTickID(),
	}
	m.loadBest()
	return m
}

func (m *GameModel) loadBest() {
	if m.opts.Store == nil {
		return
	}
	best, err := m.opts.Store.HighScore(m.game.ID())
	if err != nil {
		m.opts.logger().Warn("could not load high score", "game", m.game.ID(), "error", err)
		return
	}
	m.best = best
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.tickID, m.rate())
}

func (m GameModel) rate() int {
	return tickRate(m.opts.Runtime.TickRate, m.game.FrameRate())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Game keys are delivered right away,
// between ticks, as a press followed by a release.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToGameAction(msg, m.gameState.GameOver) {
	case GameActionQuit:
		m.quitting = true
		return m, tea.Quit
	case GameActionBack:
		m.backToMenu = true
		return m, nil
	case GameActionRestart:
		m.restart = true
		return m, nil
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	for _, ev := range m.keyMapper.MapKeyToEvents(msg) {
		m.game.HandleKey(ev)
	}
	m.gameState = m.game.State()
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if m.restart {
		m.opts.Runtime.Seed = time.Now().UnixNano()
		m.game.Reset(m.opts.Runtime)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.restart = false
		return m, tickCmd(m.tickID, m.rate())
	}

	result := m.game.Step()
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		if m.saveScore() {
			m.best = max(m.best, m.gameState.Score)
		}
		m.scoreSaved = true
	}

	return m, tickCmd(m.tickID, m.rate())
}

func (m GameModel) saveScore() bool {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return false
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), m.opts.Player, m.gameState.Score); err != nil {
		m.opts.logger().Warn("could not save score", "game", m.game.ID(), "error", err)
		return false
	}
	m.opts.logger().Info("score saved", "game", m.game.ID(), "player", m.opts.Player, "score", m.gameState.Score)
	return true
}

// saveScreenshot writes the current grid as text under ~/.gridtoys/screenshots.
func (m GameModel) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".gridtoys", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.logger().Warn("could not create screenshot dir", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.game.Graphics().Buf.String()), 0o600); err != nil {
		m.opts.logger().Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	parts := []string{RenderGraphics(m.game.Graphics())}
	if m.opts.Store != nil {
		parts = append(parts, bestStyle.Render(fmt.Sprintf("Best: %d", m.best)))
	}
	parts = append(parts, m.help.View(m.keys))
	screen := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, screen)
	}
	return screen
}

// Best returns the stored high score for the running game.
func (m GameModel) Best() int {
	return m.best
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// standaloneModel quits the program where a session would return to the menu.
type standaloneModel struct {
	GameModel
}

func (m standaloneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.GameModel.Update(msg)
	m.GameModel = next.(GameModel)
	if m.backToMenu {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// Run plays one game full-screen until the user quits.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(
		standaloneModel{NewGameModel(game, opts)},
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
