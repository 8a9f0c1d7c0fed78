package keybindings

// KeyBindingMap holds resolved key strokes for editor actions, grouped by the
// edit-buffer operation they trigger rather than by raw control byte. Several
// keystrokes may map to the same action (e.g. an arrow key and its emacs
// control-key equivalent both drive cursor_left).
type KeyBindingMap struct {
	DeleteWord         []KeyStroke // delete_word_before_cursor, default: [Ctrl+W]
	ClearLine          []KeyStroke // delete_from_start_of_line, default: [Ctrl+U]
	DeleteToEnd        []KeyStroke // delete_until_end_of_line, default: [Ctrl+K]
	MoveToBeginning    []KeyStroke // cursor_to_start_of_line, default: [Ctrl+A]
	MoveToEnd          []KeyStroke // cursor_to_end_of_line, default: [Ctrl+E]
	MoveUp             []KeyStroke // history_backward / cursor_up, default: [Ctrl+P], can add: [up arrow]
	MoveDown           []KeyStroke // history_forward / cursor_down, default: [Ctrl+N], can add: [down arrow]
	MoveLeft           []KeyStroke // cursor_left, default: [], can add: [left arrow]
	MoveRight          []KeyStroke // cursor_right, default: [], can add: [right arrow]
	WordLeft           []KeyStroke // cursor_word_back, default: [Alt+B]
	WordRight          []KeyStroke // cursor_word_forward, default: [Alt+F]
	Undo               []KeyStroke // undo, default: [Ctrl+_]
	ReverseSearch      []KeyStroke // reverse_search, default: [Ctrl+R]
	ForwardSearch      []KeyStroke // forward_search, default: [Ctrl+S]
	Paste              []KeyStroke // paste_from_clipboard, default: [Ctrl+Y]
	Transpose          []KeyStroke // swap_characters_before_cursor, default: [Ctrl+T]
	Complete           []KeyStroke // complete, default: [Tab]
	SoftCancel         []KeyStroke // abort, default: [Ctrl+G, Ctrl+C]
}

// DefaultKeyBindingMap returns the built-in Emacs-equivalent control bindings.
func DefaultKeyBindingMap() *KeyBindingMap {
	return &KeyBindingMap{
		DeleteWord:      []KeyStroke{NewCtrlKeyStroke('w')},
		ClearLine:       []KeyStroke{NewCtrlKeyStroke('u')},
		DeleteToEnd:     []KeyStroke{NewCtrlKeyStroke('k')},
		MoveToBeginning: []KeyStroke{NewCtrlKeyStroke('a')},
		MoveToEnd:       []KeyStroke{NewCtrlKeyStroke('e')},
		MoveUp:          []KeyStroke{NewCtrlKeyStroke('p')},
		MoveDown:        []KeyStroke{NewCtrlKeyStroke('n')},
		MoveLeft:        []KeyStroke{},
		MoveRight:       []KeyStroke{},
		WordLeft:        []KeyStroke{NewAltKeyStroke('b', "")},
		WordRight:       []KeyStroke{NewAltKeyStroke('f', "")},
		Undo:            []KeyStroke{NewCtrlKeyStroke('_')},
		ReverseSearch:   []KeyStroke{NewCtrlKeyStroke('r')},
		ForwardSearch:   []KeyStroke{NewCtrlKeyStroke('s')},
		Paste:           []KeyStroke{NewCtrlKeyStroke('y')},
		Transpose:       []KeyStroke{NewCtrlKeyStroke('t')},
		Complete:        []KeyStroke{NewTabKeyStroke()},
		SoftCancel:      []KeyStroke{NewCtrlKeyStroke('g'), NewCtrlKeyStroke('c')},
	}
}

// MatchesKeyStroke checks if any KeyStroke bound to the given action matches the input.
func (km *KeyBindingMap) MatchesKeyStroke(action string, input KeyStroke) bool {
	actionMap := map[string][]KeyStroke{
		"delete_word":      km.DeleteWord,
		"clear_line":       km.ClearLine,
		"delete_to_end":    km.DeleteToEnd,
		"move_to_beginning": km.MoveToBeginning,
		"move_to_end":      km.MoveToEnd,
		"move_up":          km.MoveUp,
		"move_down":        km.MoveDown,
		"move_left":        km.MoveLeft,
		"move_right":       km.MoveRight,
		"word_left":        km.WordLeft,
		"word_right":       km.WordRight,
		"undo":             km.Undo,
		"reverse_search":   km.ReverseSearch,
		"forward_search":   km.ForwardSearch,
		"paste":            km.Paste,
		"transpose":        km.Transpose,
		"complete":         km.Complete,
		"soft_cancel":      km.SoftCancel,
	}

	keyStrokes, exists := actionMap[action]
	if !exists {
		return false
	}

	for _, ks := range keyStrokes {
		if input.Equals(ks) {
			return true
		}
	}
	return false
}
