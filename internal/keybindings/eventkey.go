package keybindings

import (
	"strings"

	"github.com/havocrow/lined/internal/inputstream"
)

// FromEvent converts one decoded input event into the KeyStroke vocabulary a
// KeyBindingMap matches against. ok is false for events this package's
// vocabulary doesn't cover: plain character inserts and any other key that
// is neither a single Ctrl+<key>, Tab, an arrow nor a supported Alt
// combination. It has no notion of a Ctrl-X prefix; handlers keep
// Ctrl-X-prefixed combinations out of it themselves.
func FromEvent(ev inputstream.Event, alt bool) (ks KeyStroke, ok bool) {
	if ev.Kind == inputstream.KindChar {
		if alt {
			return NewAltKeyStroke(ev.Char, ""), true
		}
		return KeyStroke{}, false
	}

	if alt {
		switch ev.Name {
		case "backspace", "delete", "enter":
			return NewAltKeyStroke(0, ev.Name), true
		}
		return KeyStroke{}, false
	}

	switch ev.Name {
	case "tab":
		return NewTabKeyStroke(), true
	case "ctrl_underscore":
		return NewCtrlKeyStroke('_'), true
	case "arrow_up":
		return NewUpArrowKeyStroke(), true
	case "arrow_down":
		return NewDownArrowKeyStroke(), true
	case "arrow_left":
		return NewLeftArrowKeyStroke(), true
	case "arrow_right":
		return NewRightArrowKeyStroke(), true
	}

	if strings.HasPrefix(ev.Name, "ctrl_") && len(ev.Name) == len("ctrl_")+1 {
		return NewCtrlKeyStroke(rune(ev.Name[len("ctrl_")])), true
	}

	return KeyStroke{}, false
}
