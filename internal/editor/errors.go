package editor

import "errors"

// ErrAborted is returned from ReadInput when the line was cancelled (e.g.
// Ctrl+C) and the caller asked for AbortPropagate.
var ErrAborted = errors.New("lined: input aborted")

// ErrExit is returned from ReadInput when the host requested exit (e.g.
// Ctrl+D on an empty line) and the caller asked for ExitPropagate.
var ErrExit = errors.New("lined: exit requested")

// AbortAction selects what ReadInput does when the buffer raises Abort.
type AbortAction int

const (
	// AbortRetry starts a fresh Line and keeps reading, as if the aborted
	// attempt had never happened.
	AbortRetry AbortAction = iota
	// AbortReturnEmpty returns ("", nil) immediately.
	AbortReturnEmpty
	// AbortPropagate returns ("", ErrAborted).
	AbortPropagate
)

// ExitAction selects what ReadInput does when the buffer raises Exit.
type ExitAction int

const (
	// ExitPropagate returns ("", ErrExit).
	ExitPropagate ExitAction = iota
	// ExitIgnore starts a fresh Line and keeps reading.
	ExitIgnore
)
