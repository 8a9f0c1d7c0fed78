package editor

import (
	"github.com/havocrow/lined/internal/editbuffer"
	"github.com/havocrow/lined/internal/emacs"
	"github.com/havocrow/lined/internal/inputstream"
	"github.com/havocrow/lined/internal/keybindings"
	"github.com/havocrow/lined/internal/vi"
)

// KeyMode selects which key handler drives a session.
type KeyMode int

const (
	Emacs KeyMode = iota
	Vi
)

// keyHandler is the common shape of emacs.Handler and vi.Handler: feed one
// decoded event, get back the outcome of whatever it did.
type keyHandler interface {
	Handle(ev inputstream.Event) editbuffer.DispatchOutcome
	SetBindings(ckm *keybindings.ContextualKeyBindingMap)
}

func newHandler(mode KeyMode, line *editbuffer.Line, bindings *keybindings.ContextualKeyBindingMap) keyHandler {
	var h keyHandler
	if mode == Vi {
		h = vi.New(line)
	} else {
		h = emacs.New(line)
	}
	if bindings != nil {
		h.SetBindings(bindings)
	}
	return h
}
