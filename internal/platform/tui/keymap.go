package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridtoys/gridtoys/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game key events.
// Arrow keys are folded onto wasd so every game gets both layouts.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// GameAction is what the front-end itself does with a key,
// before anything reaches the game.
type GameAction int

const (
	GameActionNone GameAction = iota
	GameActionQuit
	GameActionBack
	GameActionRestart
)

// MapKey translates a key message to a game key rune.
// Returns ok=false for keys that have no rune form.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (r rune, ok bool) {
	switch msg.Type {
	case tea.KeyUp:
		return 'w', true
	case tea.KeyLeft:
		return 'a', true
	case tea.KeyDown:
		return 's', true
	case tea.KeyRight:
		return 'd', true
	case tea.KeySpace:
		return ' ', true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return core.Press(msg.Runes[0]).Key, true
		}
	}
	return 0, false
}

// MapKeyToEvents returns the events a terminal key press stands for.
// Terminals never report releases, so each press is followed by its release.
func (km *KeyMapper) MapKeyToEvents(msg tea.KeyMsg) []core.KeyEvent {
	r, ok := km.MapKey(msg)
	if !ok {
		return nil
	}
	return []core.KeyEvent{core.Press(r), core.Release(r)}
}

// MapKeyToGameAction reports front-end actions. Restart is only offered
// once the game is over so that 'r' stays free for games while running.
func (km *KeyMapper) MapKeyToGameAction(msg tea.KeyMsg, gameOver bool) GameAction {
	keys := DefaultGameKeyMap()
	switch {
	case key.Matches(msg, keys.Quit):
		return GameActionQuit
	case key.Matches(msg, keys.Back):
		return GameActionBack
	case gameOver && key.Matches(msg, keys.Restart):
		return GameActionRestart
	}
	return GameActionNone
}

// GameKeyMap lists the bindings shown in the in-game help footer.
type GameKeyMap struct {
	Move    key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Restart, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Move}, {k.Restart, k.Back, k.Quit}}
}

// DefaultGameKeyMap returns default in-game key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Move: key.NewBinding(
			key.WithKeys("w", "a", "s", "d", "up", "left", "down", "right"),
			key.WithHelp("wasd/arrows", "play"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart (game over)"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
