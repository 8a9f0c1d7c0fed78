package vi

import (
	"github.com/havocrow/lined/internal/editbuffer"
	"github.com/havocrow/lined/internal/inputstream"
	"github.com/havocrow/lined/internal/keybindings"
)

// navFunc is one navigation-mode command, repeated arg times by its caller
// where the original repeats inline.
type navFunc func(h *Handler, arg int)

// Handler is the Vi key dispatcher bound to one Line for the duration of a
// read_input() call.
type Handler struct {
	line *editbuffer.Line

	mode     Mode
	bindings *keybindings.ContextualKeyBindingMap

	allHandles     map[string]navFunc
	currentHandles map[string]navFunc

	oneCharCallback func(ch rune)

	argCount      *int
	lastWasInsert bool
}

// New returns a Handler driving line, starting in Insert mode with the
// default Vi keybinding table. Call SetBindings to wire in a
// config-resolved one.
func New(line *editbuffer.Line) *Handler {
	ckm := keybindings.NewContextualKeyBindingMap(keybindings.ProfileVi, "", "")
	ckm.SetContext(keybindings.ContextGlobal, keybindings.DefaultKeyBindingMap())
	h := &Handler{line: line, mode: Insert, bindings: ckm}
	h.allHandles = buildNavigationHandles()
	h.currentHandles = h.allHandles
	return h
}

// SetBindings replaces the handler's keybinding table, e.g. with one
// resolved from a loaded config.
func (h *Handler) SetBindings(ckm *keybindings.ContextualKeyBindingMap) {
	h.bindings = ckm
}

// currentContext derives the active keybinding context straight from
// existing Handler state rather than tracking it separately: Vi's mode and
// the Line's isearch state are already authoritative.
func (h *Handler) currentContext() keybindings.Context {
	if h.line.Isearch != nil {
		return keybindings.ContextIsearch
	}
	if h.mode == Navigation {
		return keybindings.ContextNavigation
	}
	return keybindings.ContextInsert
}

// active returns the KeyBindingMap for the handler's current context.
func (h *Handler) active() *keybindings.KeyBindingMap {
	return h.bindings.Lookup(h.currentContext())
}

// Handle feeds one decoded event to the handler and returns its outcome.
func (h *Handler) Handle(ev inputstream.Event) editbuffer.DispatchOutcome {
	if ev.Kind == inputstream.KindChar {
		return h.insertChar(ev.Char)
	}

	switch ev.Name {
	case "escape":
		h.escape()
		return editbuffer.ContinueOutcome()
	case "enter":
		return h.enter()
	case "ctrl_v":
		return editbuffer.ContinueOutcome() // quoted insert: not implemented
	default:
		return h.namedKey(ev.Name)
	}
}

// escape always drops into Navigation mode and clears any pending count,
// matching readline Vi's use of Escape as the universal mode exit.
func (h *Handler) escape() {
	h.mode = Navigation
	h.currentHandles = h.allHandles
	h.clearArg()
	h.lastWasInsert = false
}

// enter accepts the line in Navigation mode; in Insert/Replace mode it's a
// plain newline, since multi-line input is still being composed.
func (h *Handler) enter() editbuffer.DispatchOutcome {
	if h.mode == Navigation {
		return h.line.ReturnInput()
	}
	h.line.Newline(true)
	return editbuffer.ContinueOutcome()
}

func (h *Handler) insertChar(r rune) editbuffer.DispatchOutcome {
	if h.oneCharCallback != nil {
		cb := h.oneCharCallback
		h.oneCharCallback = nil
		cb(r)
		return editbuffer.ContinueOutcome()
	}

	switch h.mode {
	case Navigation:
		h.navigationChar(r)
		return editbuffer.ContinueOutcome()
	case Replace:
		h.line.InsertText(string(r), true, h.lastWasInsert)
		h.lastWasInsert = true
		return editbuffer.ContinueOutcome()
	default:
		h.line.InsertText(string(r), false, h.lastWasInsert)
		h.lastWasInsert = true
		return editbuffer.ContinueOutcome()
	}
}

func (h *Handler) arg() int {
	if h.argCount == nil {
		return 1
	}
	return *h.argCount
}

func (h *Handler) clearArg() {
	h.argCount = nil
	h.line.SetArgPrompt("")
}
