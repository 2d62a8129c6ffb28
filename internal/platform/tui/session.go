package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/gridtoys/gridtoys/internal/registry"
)

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenScoreboard
)

// SessionModel manages the full session flow: menu -> game or scoreboard -> menu.
// Used both for the local menu command and for SSH sessions.
type SessionModel struct {
	opts       Options
	screen     screen
	menu       MenuModel
	game       GameModel
	scoreboard ScoreboardModel
	width      int
	height     int
	quitting   bool
}

// NewSessionModel creates a new session model starting at the menu.
func NewSessionModel(opts Options, width, height int) SessionModel {
	return SessionModel{
		opts:   opts,
		menu:   NewMenuModel(width, height),
		width:  width,
		height: height,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) sizeMsg() tea.Cmd {
	w, h := m.width, m.height
	return func() tea.Msg { return tea.WindowSizeMsg{Width: w, Height: h} }
}

// updateMenu handles updates when in menu mode. The menu's own tea.Quit
// is swallowed unless the user really quit.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.width, m.height)
		m.screen = screenScoreboard
		return m, m.sizeMsg()

	case m.menu.Selected() != nil:
		game, err := createGame(m.menu.Selected().GameID, m.opts.logger())
		if err != nil {
			m.opts.logger().Error("could not create game", "error", err)
			m.menu = NewMenuModel(m.width, m.height)
			return m, nil
		}
		m.opts.logger().Info("game started", "game", game.ID(), "player", m.opts.Player)
		m.game = NewGameModel(game, m.opts)
		m.screen = screenGame
		return m, tea.Batch(m.game.Init(), m.sizeMsg())
	}

	return m, cmd
}

// createGame builds a registered game. A game whose configuration fails
// its check still runs on defaults, with a warning logged.
func createGame(id string, logger *log.Logger) (registry.Game, error) {
	game, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	if c, ok := game.(registry.Checker); ok {
		if err := c.Check(); err != nil {
			logger.Warn("invalid config, using defaults", "game", id, "error", err)
		}
	}
	return game, nil
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.backToMenu()
	}
	return m, cmd
}

// updateScoreboard handles updates when showing high scores.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	m.scoreboard = next.(ScoreboardModel)

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.width, m.height)
	return m, m.menu.Init()
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScoreboard:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// RunSession runs the interactive menu locally until the user quits.
func RunSession(opts Options, width, height int) error {
	p := tea.NewProgram(NewSessionModel(opts, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
