package vi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestStartsInInsertModeAndTypesNormally(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.Handle(charEv('h'))
	h.Handle(charEv('i'))
	assert.Equal(t, "hi", h.line.Text)
	assert.Equal(t, Insert, h.mode)
}

func TestEscapeEntersNavigationAndEnterAccepts(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.line.Text = "hello"
	h.line.CursorPosition = 5

	h.Handle(keyEv("escape"))
	assert.Equal(t, Navigation, h.mode)

	outcome := h.Handle(keyEv("enter"))
	require.Equal(t, editbuffer.Accept, outcome.Kind)
	assert.Equal(t, "hello", outcome.Text)
}

func TestEnterInsertsNewlineInInsertMode(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.line.Text = "foo"
	h.line.CursorPosition = 3
	outcome := h.Handle(keyEv("enter"))
	assert.Equal(t, editbuffer.Continue, outcome.Kind)
	assert.Equal(t, "foo\n", h.line.Text)
}

func TestNavigationHHLMoveCursor(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.line.Text = "abcde"
	h.line.CursorPosition = 2
	h.Handle(keyEv("escape"))

	h.Handle(charEv('h'))
	assert.Equal(t, 1, h.line.CursorPosition)

	h.Handle(charEv('l'))
	h.Handle(charEv('l'))
	assert.Equal(t, 3, h.line.CursorPosition)
}

func TestNavigationNumericArgumentRepeatsMotion(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.line.Text = "abcdefgh"
	h.line.CursorPosition = 0
	h.Handle(keyEv("escape"))

	h.Handle(charEv('3'))
	h.Handle(charEv('l'))
	assert.Equal(t, 3, h.line.CursorPosition)
	assert.Equal(t, "", h.line.ArgPromptText)
}

func TestNavigationXDeletesCharacterIntoClipboard(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.line.Text = "abc"
	h.line.CursorPosition = 0
	h.Handle(keyEv("escape"))
	h.Handle(charEv('x'))
	assert.Equal(t, "bc", h.line.Text)
	assert.Equal(t, "a", h.line.Clipboard.Text)
}

func TestNavigationDDDeletesCurrentLineAsLinesClipboard(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.line.Text = "one\ntwo\nthree"
	h.line.CursorPosition = 5 // inside "two"
	h.Handle(keyEv("escape"))

	h.Handle(charEv('d'))
	h.Handle(charEv('d'))

	assert.Equal(t, "one\nthree", h.line.Text)
	assert.Equal(t, "two", h.line.Clipboard.Text)
	assert.Equal(t, editbuffer.Lines, h.line.Clipboard.Type)
}

func TestNavigationDPrefixResetsOnNonMatchingFollowup(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.line.Text = "abc"
	h.line.CursorPosition = 0
	h.Handle(keyEv("escape"))

	h.Handle(charEv('d'))
	assert.NotEqual(t, len(h.allHandles), len(h.currentHandles))

	h.Handle(charEv('z')) // not a valid followup for 'd'
	assert.Equal(t, len(h.allHandles), len(h.currentHandles))
	assert.Equal(t, "abc", h.line.Text) // untouched
}

func TestNavigationIEntersInsertMode(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.line.Text = "bc"
	h.line.CursorPosition = 0
	h.Handle(keyEv("escape"))
	h.Handle(charEv('i'))
	assert.Equal(t, Insert, h.mode)

	h.Handle(charEv('a'))
	assert.Equal(t, "abc", h.line.Text)
}

func TestNavigationCWChangesWordAndEntersInsert(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.line.Text = "foo bar"
	h.line.CursorPosition = 0
	h.Handle(keyEv("escape"))

	h.Handle(charEv('c'))
	h.Handle(charEv('w'))

	assert.Equal(t, Insert, h.mode)
	assert.Equal(t, "foo", h.line.Clipboard.Text)
}

func TestNavigationFMovesToNextOccurrenceOfChar(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.line.Text = "abcxabc"
	h.line.CursorPosition = 0
	h.Handle(keyEv("escape"))

	h.Handle(charEv('f'))
	h.Handle(charEv('x'))
	assert.Equal(t, 3, h.line.CursorPosition)
}

func TestNavigationRReplacesCharacterUnderCursor(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.line.Text = "abc"
	h.line.CursorPosition = 0
	h.Handle(keyEv("escape"))

	h.Handle(charEv('r'))
	h.Handle(charEv('Z'))
	assert.Equal(t, "Zbc", h.line.Text)
}

func TestNavigationTildeTogglesCase(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.line.Text = "aBc"
	h.line.CursorPosition = 0
	h.Handle(keyEv("escape"))

	h.Handle(charEv('~'))
	assert.Equal(t, "ABc", h.line.Text)
}

func TestCtrlCAbortsFromAnyMode(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	outcome := h.Handle(keyEv("ctrl_c"))
	assert.Equal(t, editbuffer.Abort, outcome.Kind)
}

func TestCtrlDOnEmptyLineExits(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	outcome := h.Handle(keyEv("ctrl_d"))
	assert.Equal(t, editbuffer.Exit, outcome.Kind)
}

func TestRebindingClearLineMovesDefaultKeyOffAndNewKeyOn(t *testing.T) {
	h := New(editbuffer.NewLine(nil))
	h.line.Text = "hello"
	h.line.CursorPosition = 5

	km, err := keybindings.ApplyOverrides(keybindings.DefaultKeyBindingMap(), map[string]interface{}{
		"clear_line": "ctrl+o",
	})
	require.NoError(t, err)
	ckm := keybindings.NewContextualKeyBindingMap(keybindings.ProfileVi, "", "")
	ckm.SetContext(keybindings.ContextGlobal, km)
	h.SetBindings(ckm)

	h.Handle(keyEv("ctrl_u"))
	assert.Equal(t, "hello", h.line.Text, "ctrl_u should no longer be bound once clear_line is moved off it")

	h.Handle(keyEv("ctrl_o"))
	assert.Equal(t, "", h.line.Text)
}
