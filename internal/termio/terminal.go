// Package termio provides small terminal utilities shared across the interactive UI.
package termio

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal abstracts terminal raw mode operations so callers can swap implementations in tests.
type Terminal interface {
	MakeRaw(fd int) (*term.State, error)
	Restore(fd int, state *term.State) error
}

// Dimensions reports the terminal size backing w, falling back to
// fallbackWidth/fallbackHeight when w isn't an *os.File or the ioctl fails
// (piped output, tests). CommandLine uses this to size the render width
// instead of hardcoding 80 columns.
func Dimensions(w io.Writer, fallbackWidth, fallbackHeight int) (width, height int) {
	if f, ok := w.(*os.File); ok {
		if fw, fh, err := term.GetSize(int(f.Fd())); err == nil && fw > 0 && fh > 0 {
			return fw, fh
		}
	}
	if fallbackWidth <= 0 {
		fallbackWidth = 80
	}
	if fallbackHeight <= 0 {
		fallbackHeight = 24
	}
	return fallbackWidth, fallbackHeight
}

// DefaultTerminal uses golang.org/x/term to manage terminal state.
type DefaultTerminal struct{}

// MakeRaw switches the terminal into raw mode.
func (DefaultTerminal) MakeRaw(fd int) (*term.State, error) {
	return term.MakeRaw(fd)
}

// Restore returns the terminal to its previous state.
func (DefaultTerminal) Restore(fd int, state *term.State) error {
	return term.Restore(fd, state)
}

var pendingInputHook = pendingInput

// PendingInput reports the number of immediately readable bytes for the given descriptor.
func PendingInput(fd uintptr) (int, error) {
	return pendingInputHook(fd)
}

// SetPendingInputFunc overrides the pending-input probe; the returned closure restores the default implementation.
func SetPendingInputFunc(fn func(uintptr) (int, error)) func() {
	prev := pendingInputHook
	pendingInputHook = fn
	return func() { pendingInputHook = prev }
}
