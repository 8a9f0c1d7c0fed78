package emacs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havocrow/lined/internal/document"
	"github.com/havocrow/lined/internal/editbuffer"
	"github.com/havocrow/lined/internal/inputstream"
	"github.com/havocrow/lined/internal/keybindings"
)

func keyEv(name string) inputstream.Event {
	return inputstream.Event{Kind: inputstream.KindKey, Name: name}
}

func charEv(r rune) inputstream.Event {
	return inputstream.Event{Kind: inputstream.KindChar, Char: r}
}

func TestInsertCharTypesIntoLine(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.Handle(charEv('h'))
	h.Handle(charEv('i'))
	assert.Equal(t, "hi", h.line.Text)
	assert.Equal(t, 2, h.line.CursorPosition)
}

func TestCtrlAEAndBF(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.line.Text = "abc"
	h.line.CursorPosition = 3

	h.Handle(keyEv("ctrl_a"))
	assert.Equal(t, 0, h.line.CursorPosition)

	h.Handle(keyEv("ctrl_f"))
	assert.Equal(t, 1, h.line.CursorPosition)

	h.Handle(keyEv("ctrl_e"))
	assert.Equal(t, 3, h.line.CursorPosition)

	h.Handle(keyEv("ctrl_b"))
	assert.Equal(t, 2, h.line.CursorPosition)
}

func TestCtrlCAborts(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	outcome := h.Handle(keyEv("ctrl_c"))
	assert.Equal(t, editbuffer.Abort, outcome.Kind)
}

func TestCtrlDOnEmptyLineExits(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	outcome := h.Handle(keyEv("ctrl_d"))
	assert.Equal(t, editbuffer.Exit, outcome.Kind)
}

func TestCtrlDOnNonEmptyLineDeletesForward(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.line.Text = "abc"
	h.line.CursorPosition = 0
	outcome := h.Handle(keyEv("ctrl_d"))
	assert.Equal(t, editbuffer.Continue, outcome.Kind)
	assert.Equal(t, "bc", h.line.Text)
}

func TestEnterReturnsAccept(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.line.Text = "done"
	outcome := h.Handle(keyEv("enter"))
	require.Equal(t, editbuffer.Accept, outcome.Kind)
	assert.Equal(t, "done", outcome.Text)
}

func TestCtrlKKillsToEndOfLineIntoClipboard(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.line.Text = "hello world"
	h.line.CursorPosition = 5
	h.Handle(keyEv("ctrl_k"))
	assert.Equal(t, "hello", h.line.Text)
	assert.Equal(t, " world", h.line.Clipboard.Text)

	h.Handle(keyEv("ctrl_a"))
	h.Handle(keyEv("ctrl_y"))
	assert.Equal(t, " worldhello", h.line.Text)
}

func TestAltFMovesForwardOneWordViaCharEvent(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.line.Text = "foo bar baz"
	h.line.CursorPosition = 0

	h.Handle(keyEv("escape"))
	assert.True(t, h.escapePressed)
	h.Handle(charEv('f'))
	assert.Equal(t, 4, h.line.CursorPosition)

	h.Handle(keyEv("escape"))
	h.Handle(charEv('b'))
	assert.Equal(t, 0, h.line.CursorPosition)
}

func TestAltDDeletesWordIntoClipboard(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.line.Text = "foo bar"
	h.line.CursorPosition = 0

	h.Handle(keyEv("escape"))
	h.Handle(charEv('d'))
	assert.Equal(t, "bar", h.line.Text)
	assert.Equal(t, "foo ", h.line.Clipboard.Text)
}

func TestAltUUppercasesFollowingWord(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.line.Text = "foo bar"
	h.line.CursorPosition = 0

	h.Handle(keyEv("escape"))
	h.Handle(charEv('u'))
	assert.Equal(t, "FOO bar", h.line.Text)
}

func TestAltDigitsAccumulateNumericArgument(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.line.Text = ""
	h.line.CursorPosition = 0

	h.Handle(keyEv("escape"))
	h.Handle(charEv('3'))
	assert.Equal(t, "3", h.line.ArgPromptText)
	assert.Equal(t, 3, h.arg())

	h.Handle(charEv('a'))
	assert.Equal(t, "aaa", h.line.Text)
	assert.Equal(t, "", h.line.ArgPromptText)
	assert.Equal(t, 1, h.arg())
}

func TestCtrlXCtrlUUndoesLastChange(t *testing.T) {
	h := New(editbuffer.NewLine(nil))

	h.Handle(charEv('a'))
	assert.Equal(t, "a", h.line.Text)

	h.Handle(keyEv("ctrl_x"))
	assert.True(t, h.ctrlXPressed)
	h.Handle(keyEv("ctrl_u"))
	assert.False(t, h.ctrlXPressed)
	assert.Equal(t, "", h.line.Text)
}

func TestHistoryBackwardAndForwardViaCtrlPN(t *testing.T) {
	hist := document.NewHistory()
	require.NoError(t, hist.Append("first"))
	require.NoError(t, hist.Append("second"))

	h := New(editbuffer.NewLine(hist))
	h.Handle(keyEv("ctrl_p"))
	assert.Equal(t, "second", h.line.Text)

	h.Handle(keyEv("ctrl_p"))
	assert.Equal(t, "first", h.line.Text)

	h.Handle(keyEv("ctrl_n"))
	assert.Equal(t, "second", h.line.Text)
}

func TestUnboundKeyIsNoop(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.line.Text = "x"
	outcome := h.Handle(keyEv("ctrl_o"))
	assert.Equal(t, editbuffer.Continue, outcome.Kind)
	assert.Equal(t, "x", h.line.Text)
}

func TestRebindingWordRightMovesDefaultKeyOffAndNewKeyOn(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.line.Text = "foo bar"
	h.line.CursorPosition = 0

	km, err := keybindings.ApplyOverrides(keybindings.DefaultKeyBindingMap(), map[string]interface{}{
		"word_right": "ctrl+o",
	})
	require.NoError(t, err)
	ckm := keybindings.NewContextualKeyBindingMap(keybindings.ProfileEmacs, "", "")
	ckm.SetContext(keybindings.ContextGlobal, km)
	h.SetBindings(ckm)

	h.Handle(keyEv("escape"))
	h.Handle(charEv('f'))
	assert.Equal(t, 0, h.line.CursorPosition, "alt+f no longer moves once word_right is rebound")

	h.Handle(keyEv("ctrl_o"))
	assert.Equal(t, 4, h.line.CursorPosition)
}
