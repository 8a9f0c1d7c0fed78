package emacs

import (
	"github.com/havocrow/lined/internal/editbuffer"
	"github.com/havocrow/lined/internal/inputstream"
	"github.com/havocrow/lined/internal/keybindings"
)

func eventBaseName(ev inputstream.Event) string {
	if ev.Kind == inputstream.KindChar {
		return "insert_char"
	}
	return ev.Name
}

// dispatch resolves dk to a concrete operation on the bound Line, returning
// the resolved binding name (for arg-count/ctrl-x bookkeeping in Handle)
// and the resulting outcome.
func (h *Handler) dispatch(dk dispatchKey) (string, editbuffer.DispatchOutcome) {
	ev := dk.event
	base := eventBaseName(ev)

	// Pseudo-bindings that only arm a prefix flag for the *next* event.
	if !dk.alt && !dk.ctrlX && base == "escape" {
		h.escapePressed = true
		return "escape", editbuffer.ContinueOutcome()
	}
	if !dk.alt && !dk.ctrlX && base == "ctrl_x" {
		h.ctrlXPressed = true
		return "ctrl_x", editbuffer.ContinueOutcome()
	}

	name := base
	if dk.alt {
		if ev.Kind == inputstream.KindChar {
			name = "alt_" + string(ev.Char)
		} else {
			name = "alt_" + base
		}
	}
	if dk.ctrlX {
		name = "ctrl_x_" + name
	}

	return name, h.run(name, dk)
}

func (h *Handler) run(name string, dk dispatchKey) editbuffer.DispatchOutcome {
	l := h.line
	ev := dk.event
	cont := editbuffer.ContinueOutcome()

	if l.Isearch != nil {
		h.enterIsearch()
	} else {
		h.exitIsearch()
	}

	switch name {
	case "insert_char":
		if h.lastWasInsert {
			l.InsertText(string(ev.Char), false, true)
		} else {
			for i := 0; i < h.arg(); i++ {
				l.InsertText(string(ev.Char), false, i > 0)
			}
		}
		h.lastWasInsert = true
		return cont

	case "ctrl_b":
		l.CursorLeft()
	case "ctrl_c":
		return editbuffer.AbortOutcome()
	case "ctrl_d":
		if l.Text == "" {
			return editbuffer.ExitOutcome()
		}
		l.Delete()
	case "ctrl_f":
		l.CursorRight()
	case "ctrl_g":
		l.ExitIsearch(true)
		h.exitIsearch()
	case "ctrl_h", "backspace":
		l.DeleteCharacterBeforeCursor()
	case "ctrl_j", "ctrl_m", "enter":
		return l.ReturnInput()
	case "ctrl_l":
		l.Clear()
	case "page_down":
		l.HistoryForward()
	case "page_up":
		l.HistoryBackward()
	case "arrow_down":
		l.AutoDown()
	case "arrow_up":
		l.AutoUp()
	case "arrow_left":
		l.CursorLeft()
	case "arrow_right":
		l.CursorRight()
	case "home":
		l.Home()
	case "end":
		l.End()
	case "delete":
		l.Delete()

	case "alt_d":
		l.SetClipboard(editbuffer.ClipboardData{Text: l.DeleteWord(), Type: editbuffer.Characters})
	case "alt_c":
		words := l.Document().GetFollowingWords(h.arg(), true)
		l.InsertText(capitalize(words), true, false)
	case "alt_l":
		words := l.Document().GetFollowingWords(h.arg(), true)
		l.InsertText(toLower(words), true, false)
	case "alt_u":
		words := l.Document().GetFollowingWords(h.arg(), true)
		l.InsertText(toUpper(words), true, false)
	case "alt_enter", "alt_ctrl_j", "alt_ctrl_m":
		l.Newline(true)

	case "ctrl_x_ctrl_u":
		l.Undo()
	case "ctrl_x_ctrl_x":
		if l.Document().CurrentChar() == "\n" {
			l.CursorToStartOfLine(false)
		} else {
			l.CursorToEndOfLine()
		}
	case "ctrl_x_ctrl_e":
		// External-editor suspend is a host responsibility (spawning
		// $EDITOR needs terminal control this package doesn't own); the
		// editor orchestrator wires this one up.

	default:
		if !dk.ctrlX && h.runBoundAction(dk) {
			return cont
		}
		// Unbound key: no-op (ctrl_o/ctrl_q/ctrl_v/ctrl_z and the like).
	}

	return cont
}

// runBoundAction consults the active KeyBindingMap for the event that fell
// through the structural switch above, so the movement/editing/search keys
// a config can rebind are dispatched through one explicit table instead of
// a second hardcoded case list. Ctrl+C/Ctrl+G stay structural: they're the
// reserved Global-context keys profile.go documents, not user-rebindable.
// Ctrl-X-prefixed combinations aren't part of this table at all.
func (h *Handler) runBoundAction(dk dispatchKey) bool {
	ks, ok := keybindings.FromEvent(dk.event, dk.alt)
	if !ok {
		return false
	}
	km := h.active()
	l := h.line

	switch {
	case km.MatchesKeyStroke("delete_word", ks):
		for i := 0; i < h.arg(); i++ {
			l.DeleteWordBeforeCursor()
		}
	case km.MatchesKeyStroke("clear_line", ks):
		l.DeleteFromStartOfLine()
	case km.MatchesKeyStroke("delete_to_end", ks):
		l.SetClipboard(editbuffer.ClipboardData{Text: l.DeleteUntilEndOfLine(), Type: editbuffer.Characters})
	case km.MatchesKeyStroke("move_to_beginning", ks):
		l.CursorToStartOfLine(false)
	case km.MatchesKeyStroke("move_to_end", ks):
		l.CursorToEndOfLine()
	case km.MatchesKeyStroke("move_up", ks):
		l.HistoryBackward()
	case km.MatchesKeyStroke("move_down", ks):
		l.HistoryForward()
	case km.MatchesKeyStroke("word_left", ks):
		l.CursorWordBack()
	case km.MatchesKeyStroke("word_right", ks):
		l.CursorWordForward()
	case km.MatchesKeyStroke("undo", ks):
		l.Undo()
	case km.MatchesKeyStroke("reverse_search", ks):
		l.ReverseSearch()
		h.enterIsearch()
	case km.MatchesKeyStroke("forward_search", ks):
		l.ForwardSearch()
		h.enterIsearch()
	case km.MatchesKeyStroke("paste", ks):
		l.PasteFromClipboard(false)
	case km.MatchesKeyStroke("transpose", ks):
		l.SwapCharactersBeforeCursor()
	case km.MatchesKeyStroke("complete", ks):
		l.Complete()
	default:
		return false
	}
	return true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = toUpperRune(r[0])
	for i := 1; i < len(r); i++ {
		r[i] = toLowerRune(r[i])
	}
	return string(r)
}

func toLower(s string) string {
	r := []rune(s)
	for i := range r {
		r[i] = toLowerRune(r[i])
	}
	return string(r)
}

func toUpper(s string) string {
	r := []rune(s)
	for i := range r {
		r[i] = toUpperRune(r[i])
	}
	return string(r)
}

func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func toUpperRune(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
