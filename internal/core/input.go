package core

import "unicode"

// KeyEvent is a single key press or release delivered to a game.
// Keys are lower-case runes; games never see platform key names.
type KeyEvent struct {
	Key     rune
	Pressed bool
}

// Press returns a press event for the given key.
func Press(key rune) KeyEvent {
	return KeyEvent{Key: unicode.ToLower(key), Pressed: true}
}

// Release returns a release event for the given key.
func Release(key rune) KeyEvent {
	return KeyEvent{Key: unicode.ToLower(key), Pressed: false}
}

// String returns a human-readable name for the event.
func (e KeyEvent) String() string {
	if e.Pressed {
		return "press " + string(e.Key)
	}
	return "release " + string(e.Key)
}
