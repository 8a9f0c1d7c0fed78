// Package emacs implements the Emacs-style key handler: a modeless dispatcher
// over inputstream.Events that composes Alt- and Ctrl-X-prefixed commands
// from two trailing flags, dispatching through an explicit tagged key rather
// than building the bound name up by string concatenation.
package emacs

import (
	"github.com/havocrow/lined/internal/editbuffer"
	"github.com/havocrow/lined/internal/inputstream"
	"github.com/havocrow/lined/internal/keybindings"
)

// dispatchKey tags an inputstream.Event with the Alt/Ctrl-X prefix state
// active when it arrived, the Go-native replacement for the Python
// handler's "alt_"/"ctrl_x_" name-prefixing trick.
type dispatchKey struct {
	event inputstream.Event
	alt   bool
	ctrlX bool
}

// Handler is the Emacs key dispatcher bound to one Line for the duration of
// a read_input() call.
type Handler struct {
	line *editbuffer.Line

	bindings *keybindings.ContextualKeyBindingMap
	ctx      *keybindings.ContextManager

	escapePressed bool
	ctrlXPressed  bool
	argCount      *int
	argIsSet      bool
	lastWasInsert bool
}

// New returns a Handler driving line, with the default Emacs keybinding
// table. Call SetBindings to wire in a config-resolved one.
func New(line *editbuffer.Line) *Handler {
	ckm := keybindings.NewContextualKeyBindingMap(keybindings.ProfileEmacs, "", "")
	ckm.SetContext(keybindings.ContextGlobal, keybindings.DefaultKeyBindingMap())
	return &Handler{line: line, bindings: ckm, ctx: keybindings.NewContextManager()}
}

// SetBindings replaces the handler's keybinding table, e.g. with one
// resolved from a loaded config.
func (h *Handler) SetBindings(ckm *keybindings.ContextualKeyBindingMap) {
	h.bindings = ckm
}

// active returns the KeyBindingMap for whichever context the handler is
// currently in (Isearch while a search is in progress, Global otherwise).
func (h *Handler) active() *keybindings.KeyBindingMap {
	return h.bindings.Lookup(h.ctx.GetCurrentContext())
}

// enterIsearch and exitIsearch push/pop the Isearch context around an
// incremental search so its bindings (if the config overrides any) apply
// only while the search is live.
func (h *Handler) enterIsearch() {
	if h.ctx.GetCurrentContext() != keybindings.ContextIsearch {
		h.ctx.EnterContext(keybindings.ContextIsearch)
	}
}

func (h *Handler) exitIsearch() {
	if h.ctx.GetCurrentContext() == keybindings.ContextIsearch {
		h.ctx.ExitContext()
	}
}

// Handle feeds one decoded event to the handler and returns its outcome.
func (h *Handler) Handle(ev inputstream.Event) editbuffer.DispatchOutcome {
	dk := dispatchKey{event: ev, alt: h.escapePressed, ctrlX: h.ctrlXPressed}
	h.escapePressed = false

	resetArgAfter := true
	resetCtrlX := true

	var outcome editbuffer.DispatchOutcome
	var name string

	if dk.alt && ev.Kind == inputstream.KindChar && isDigitOrMinus(ev.Char) {
		h.altDigit(ev.Char)
		name = "alt_digit"
		resetArgAfter = false
	} else {
		name, outcome = h.dispatch(dk)
	}

	if name != "insert_char" {
		h.lastWasInsert = false
	}
	if name == "escape" {
		resetArgAfter = false
	}
	if resetArgAfter {
		h.clearArgCount()
	}
	if dk.ctrlX && name != "ctrl_x" {
		resetCtrlX = true
	} else if name == "ctrl_x" {
		resetCtrlX = false
	}
	if resetCtrlX {
		h.ctrlXPressed = false
	}

	return outcome
}

func isDigitOrMinus(r rune) bool {
	return (r >= '0' && r <= '9') || r == '-'
}

func (h *Handler) altDigit(r rune) {
	v := 0
	if h.argIsSet {
		v = *h.argCount
	}
	if r == '-' {
		if !h.argIsSet {
			v = 0
			h.setArgCount(-1)
			return
		}
		return
	}
	digit := int(r - '0')
	if v < 0 {
		v = v*10 - digit
	} else {
		v = v*10 + digit
	}
	h.setArgCount(v)
}

func (h *Handler) setArgCount(v int) {
	h.argCount = &v
	h.argIsSet = true
	h.line.SetArgPrompt(argPromptText(v))
}

func (h *Handler) clearArgCount() {
	h.argCount = nil
	h.argIsSet = false
	h.line.SetArgPrompt("")
}

func (h *Handler) arg() int {
	if !h.argIsSet || h.argCount == nil {
		return 1
	}
	if *h.argCount == 0 {
		return 1
	}
	return *h.argCount
}

func argPromptText(v int) string {
	if v == -1 {
		return "-"
	}
	digits := "0123456789"
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var out []byte
	for v > 0 {
		out = append([]byte{digits[v%10]}, out...)
		v /= 10
	}
	if neg {
		out = append([]byte{'-'}, out...)
	}
	return string(out)
}
