package editor

import (
	"strings"
	"testing"

	"github.com/havocrow/lined/internal/document"
	"github.com/havocrow/lined/internal/editbuffer"
	"github.com/havocrow/lined/internal/screen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLineForPaintTest(t *testing.T, hist *document.History) *editbuffer.Line {
	t.Helper()
	line := editbuffer.NewLine(hist)
	line.SetCompleter(PlainTextTokenizer{})
	return line
}

func newTestCommandLine(t *testing.T, input string, hist *document.History) *CommandLine {
	t.Helper()
	if hist == nil {
		hist = document.NewHistory()
	}
	var out strings.Builder
	return New(Options{
		Input:   strings.NewReader(input),
		Output:  &out,
		History: hist,
		FD:      -1, // disables raw mode and signal handling for tests
	})
}

func TestReadInputAcceptReturnsTextAndAppendsHistory(t *testing.T) {
	hist := document.NewHistory()
	cl := newTestCommandLine(t, "hi\r", hist)

	text, err := cl.ReadInput(AbortPropagate, ExitPropagate)
	require.NoError(t, err)
	assert.Equal(t, "hi", text)
	require.Equal(t, 1, hist.Len())
	assert.Equal(t, "hi", hist.At(0))
}

func TestReadInputAbortRetryStartsFreshLine(t *testing.T) {
	// ctrl_c aborts the first attempt; AbortRetry loops back to a new Line
	// and keeps reading from the same stream.
	cl := newTestCommandLine(t, "ab\x03ok\r", nil)

	text, err := cl.ReadInput(AbortRetry, ExitPropagate)
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestReadInputAbortReturnEmpty(t *testing.T) {
	cl := newTestCommandLine(t, "ab\x03", nil)

	text, err := cl.ReadInput(AbortReturnEmpty, ExitPropagate)
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestReadInputAbortPropagate(t *testing.T) {
	cl := newTestCommandLine(t, "ab\x03", nil)

	_, err := cl.ReadInput(AbortPropagate, ExitPropagate)
	assert.ErrorIs(t, err, ErrAborted)
}

func TestReadInputExitPropagateOnEmptyCtrlD(t *testing.T) {
	cl := newTestCommandLine(t, "\x04", nil)

	_, err := cl.ReadInput(AbortPropagate, ExitPropagate)
	assert.ErrorIs(t, err, ErrExit)
}

func TestReadInputExitIgnoreKeepsReading(t *testing.T) {
	// ctrl_d on an empty line raises Exit; ExitIgnore starts a fresh Line
	// and keeps reading, so the input typed afterward is still accepted.
	cl := newTestCommandLine(t, "\x04x\r", nil)

	text, err := cl.ReadInput(AbortPropagate, ExitIgnore)
	require.NoError(t, err)
	assert.Equal(t, "x", text)
}

func TestPaintUsesPlainPromptByDefault(t *testing.T) {
	hist := document.NewHistory()
	var out strings.Builder
	cl := New(Options{
		Input:         strings.NewReader(""),
		Output:        &out,
		History:       hist,
		FD:            -1,
		PromptAdapter: NewDefaultPrompt("$ "),
	})

	line := newLineForPaintTest(t, hist)
	cl.paint(line, false, false)

	assert.Contains(t, out.String(), "$ ")
}

func TestPaintUsesArgPromptWhenSet(t *testing.T) {
	hist := document.NewHistory()
	var out strings.Builder
	cl := New(Options{
		Input:         strings.NewReader(""),
		Output:        &out,
		History:       hist,
		FD:            -1,
		PromptAdapter: NewDefaultPrompt("$ "),
	})

	line := newLineForPaintTest(t, hist)
	line.ArgPromptText = "(arg: 4) "
	cl.paint(line, false, false)

	assert.Contains(t, out.String(), "(arg: 4) ")
	assert.Contains(t, out.String(), "$ ")
}

type panickingCodeAdapter struct{}

func (panickingCodeAdapter) Tokenize(string) []screen.StyledText {
	panic("tokenizer exploded")
}

func (panickingCodeAdapter) Complete(document.Document) []editbuffer.Completion { return nil }

func TestPaintAbsorbsTokenizerPanicIntoDebugLog(t *testing.T) {
	hist := document.NewHistory()
	var out, debug strings.Builder
	cl := New(Options{
		Input:     strings.NewReader(""),
		Output:    &out,
		History:   hist,
		FD:        -1,
		Tokenizer: panickingCodeAdapter{},
		Debug:     &debug,
	})

	line := newLineForPaintTest(t, hist)
	assert.NotPanics(t, func() { cl.paint(line, false, false) })
	assert.Contains(t, debug.String(), "tokenizer panic")
}

func TestRuneColumnCountsRunesNotBytes(t *testing.T) {
	// "中" is three bytes wide in UTF-8 but one rune.
	line := "中x"
	assert.Equal(t, 1, runeColumn(line, 3))
	assert.Equal(t, 2, runeColumn(line, 4))
}
