package vi

import (
	"github.com/havocrow/lined/internal/editbuffer"
	"github.com/havocrow/lined/internal/inputstream"
	"github.com/havocrow/lined/internal/keybindings"
)

// namedKey dispatches the common bindings shared by every Vi mode, grounded
// in InputStreamHandler's base method table: movement, deletion, history,
// search and completion keys that aren't overridden by navigation mode.
//
// Ctrl+C/Ctrl+D/Ctrl+G and the arrow/backspace/delete aliases stay
// structural (Vi has no concept of rebinding them); everything else routes
// through the active KeyBindingMap so a config override reaches Vi the same
// way it reaches Emacs.
func (h *Handler) namedKey(name string) editbuffer.DispatchOutcome {
	l := h.line
	h.lastWasInsert = false

	switch name {
	case "ctrl_b", "arrow_left":
		l.CursorLeft()
		return editbuffer.ContinueOutcome()
	case "ctrl_c":
		return editbuffer.AbortOutcome()
	case "ctrl_d":
		if l.Text == "" {
			return editbuffer.ExitOutcome()
		}
		l.Delete()
		return editbuffer.ContinueOutcome()
	case "ctrl_f", "arrow_right":
		l.CursorRight()
		return editbuffer.ContinueOutcome()
	case "ctrl_g":
		l.ExitIsearch(true)
		return editbuffer.ContinueOutcome()
	case "ctrl_h", "backspace":
		l.DeleteCharacterBeforeCursor()
		return editbuffer.ContinueOutcome()
	case "ctrl_l":
		l.Clear()
		return editbuffer.ContinueOutcome()
	case "arrow_up":
		l.AutoUp()
		return editbuffer.ContinueOutcome()
	case "arrow_down":
		l.AutoDown()
		return editbuffer.ContinueOutcome()
	case "delete":
		l.Delete()
		return editbuffer.ContinueOutcome()
	}

	h.runBoundAction(name)
	return editbuffer.ContinueOutcome()
}

// runBoundAction consults the active KeyBindingMap for a named key event,
// the Vi-side counterpart of Emacs's runBoundAction: the same explicit
// table drives both handlers' rebindable keys.
func (h *Handler) runBoundAction(name string) bool {
	km := h.active()
	l := h.line

	ks, ok := keybindings.FromEvent(inputstream.Event{Kind: inputstream.KindKey, Name: name}, false)
	matches := func(action string) bool { return ok && km.MatchesKeyStroke(action, ks) }

	switch {
	case matches("move_to_beginning") || name == "home":
		l.CursorToStartOfLine(false)
	case matches("move_to_end") || name == "end":
		l.CursorToEndOfLine()
	case matches("move_up") || name == "page_up":
		l.HistoryBackward()
	case matches("move_down") || name == "page_down":
		l.HistoryForward()
	case matches("delete_to_end"):
		l.SetClipboard(editbuffer.ClipboardData{Text: l.DeleteUntilEndOfLine(), Type: editbuffer.Characters})
	case matches("clear_line"):
		l.DeleteFromStartOfLine()
	case matches("delete_word"):
		for i := 0; i < h.arg(); i++ {
			l.DeleteWordBeforeCursor()
		}
	case matches("undo"):
		l.Undo()
	case matches("reverse_search"):
		l.ReverseSearch()
	case matches("forward_search"):
		l.ForwardSearch()
	case matches("paste"):
		l.PasteFromClipboard(false)
	case matches("transpose"):
		l.SwapCharactersBeforeCursor()
	case matches("complete") || name == "tab":
		l.Complete()
	default:
		return false
	}
	return true
}
