package editbuffer

import (
	"strings"
	"unicode/utf8"

	"github.com/havocrow/lined/internal/document"
)

// ClipboardType distinguishes a character-wise yank from a line-wise one;
// line-wise data is pasted as whole lines above/below the cursor instead of
// splicing into the middle of the current line.
type ClipboardType int

const (
	Characters ClipboardType = iota
	Lines
)

// ClipboardData is the buffer's single-slot kill ring entry.
type ClipboardData struct {
	Text string
	Type ClipboardType
}

// Completion is one candidate offered by a completer: Suffix is inserted at
// the cursor, Display is what a completion menu would show for it.
type Completion struct {
	Display string
	Suffix  string
}

// Completer produces candidates for the text currently in the buffer. It is
// a host-supplied adapter; the editor package wires a concrete implementation in.
type Completer interface {
	Complete(doc document.Document) []Completion
}

type isearchDirection int

const (
	SearchBackward isearchDirection = iota
	SearchForward
)

// IsearchState captures everything needed to resume normal editing after an
// incremental search is cancelled.
type IsearchState struct {
	Direction      isearchDirection
	Pattern        string
	OriginalText   string
	OriginalCursor int
}

// CompletionState tracks an in-progress Tab-cycling session.
type CompletionState struct {
	Candidates     []Completion
	Index          int
	OriginalText   string
	OriginalCursor int
}

type undoSnapshot struct {
	text   string
	cursor int
}

// Line is the mutable edit buffer for a single read_input() call: text,
// cursor, undo history, clipboard, and the transient isearch/completion
// states layered over it.
type Line struct {
	Text           string
	CursorPosition int

	undoStack []undoSnapshot
	Clipboard ClipboardData

	History           *document.History
	historyIndex      int // -1 means "not currently browsing history"
	historyPrefix     string
	historyOriginal   string
	historyOriginalAt int

	Isearch    *IsearchState
	Completion *CompletionState

	ArgPromptText string

	Multiline bool
	PasteMode bool

	completer Completer

	lastOpWasCoalescingInsert bool
}

// NewLine returns an empty Line bound to hist (which may be nil for a
// history-less buffer).
func NewLine(hist *document.History) *Line {
	return &Line{History: hist, historyIndex: -1}
}

// SetCompleter wires the completion adapter; may be called once before use.
func (l *Line) SetCompleter(c Completer) { l.completer = c }

// Document returns a read-only snapshot of the buffer's current state.
func (l *Line) Document() document.Document {
	return document.New(l.Text, l.CursorPosition)
}

func (l *Line) setArgPrompt(s string) { l.ArgPromptText = s }

// pushUndo appends a snapshot of the pre-mutation state, unless this call is
// a coalescing single-character insert immediately following another
// single-character insert.
func (l *Line) pushUndo(coalesce bool) {
	if coalesce && l.lastOpWasCoalescingInsert {
		return
	}
	l.undoStack = append(l.undoStack, undoSnapshot{text: l.Text, cursor: l.CursorPosition})
}

func (l *Line) clearTransientState() {
	l.Isearch = nil
	l.Completion = nil
}

// prevRuneWidth returns the byte width of the rune immediately before pos.
func prevRuneWidth(s string, pos int) int {
	if pos == 0 {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(s[:pos])
	return size
}

// nextRuneWidth returns the byte width of the rune starting at pos.
func nextRuneWidth(s string, pos int) int {
	if pos >= len(s) {
		return 0
	}
	_, size := utf8.DecodeRuneInString(s[pos:])
	return size
}

// InsertText inserts s at the cursor. When overwrite is true, it instead
// replaces the runes that would otherwise follow the cursor (clipped to the
// end of the buffer). A coalescing single-rune insert shares the undo
// snapshot of the single-rune insert directly before it, whether or not
// that one was itself coalescing; a newline ends the run.
func (l *Line) InsertText(s string, overwrite bool, coalesce bool) {
	l.clearTransientState()
	isSingleRuneInsert := !overwrite && utf8.RuneCountInString(s) == 1
	l.pushUndo(coalesce && isSingleRuneInsert)

	if overwrite {
		end := l.CursorPosition
		remaining := utf8.RuneCountInString(s)
		for remaining > 0 && end < len(l.Text) {
			end += nextRuneWidth(l.Text, end)
			remaining--
		}
		l.Text = l.Text[:l.CursorPosition] + s + l.Text[end:]
	} else {
		l.Text = l.Text[:l.CursorPosition] + s + l.Text[l.CursorPosition:]
	}
	l.CursorPosition += len(s)
	l.lastOpWasCoalescingInsert = isSingleRuneInsert && s != "\n"
}

// Delete removes the rune at the cursor and returns it.
func (l *Line) Delete() string {
	if l.CursorPosition >= len(l.Text) {
		return ""
	}
	l.clearTransientState()
	l.pushUndo(false)
	width := nextRuneWidth(l.Text, l.CursorPosition)
	removed := l.Text[l.CursorPosition : l.CursorPosition+width]
	l.Text = l.Text[:l.CursorPosition] + l.Text[l.CursorPosition+width:]
	l.lastOpWasCoalescingInsert = false
	return removed
}

// DeleteCharacterBeforeCursor removes the rune before the cursor and returns it.
func (l *Line) DeleteCharacterBeforeCursor() string {
	if l.CursorPosition == 0 {
		return ""
	}
	l.clearTransientState()
	l.pushUndo(false)
	width := prevRuneWidth(l.Text, l.CursorPosition)
	removed := l.Text[l.CursorPosition-width : l.CursorPosition]
	l.Text = l.Text[:l.CursorPosition-width] + l.Text[l.CursorPosition:]
	l.CursorPosition -= width
	l.lastOpWasCoalescingInsert = false
	return removed
}

// DeleteWord removes the word starting at the cursor (lowercase word-class
// rules) and returns it.
func (l *Line) DeleteWord() string {
	doc := l.Document()
	end := l.CursorPosition + doc.FindNextWordStart()
	if end > len(l.Text) {
		end = len(l.Text)
	}
	return l.deleteRange(l.CursorPosition, end)
}

// DeleteWordBeforeCursor removes the word ending at the cursor and returns it.
func (l *Line) DeleteWordBeforeCursor() string {
	doc := l.Document()
	start := l.CursorPosition + doc.FindPreviousWordStart()
	if start < 0 {
		start = 0
	}
	removed := l.deleteRange(start, l.CursorPosition)
	l.CursorPosition = start
	return removed
}

// DeleteUntilEndOfLine removes from the cursor to the end of the current
// line (not including the trailing newline) and returns it.
func (l *Line) DeleteUntilEndOfLine() string {
	doc := l.Document()
	rest := doc.CurrentLineAfterCursor()
	end := l.CursorPosition + len(rest)
	return l.deleteRange(l.CursorPosition, end)
}

// DeleteFromStartOfLine removes from the start of the current line to the
// cursor and returns it.
func (l *Line) DeleteFromStartOfLine() string {
	doc := l.Document()
	before := doc.CurrentLineBeforeCursor()
	start := l.CursorPosition - len(before)
	removed := l.deleteRange(start, l.CursorPosition)
	l.CursorPosition = start
	return removed
}

// DeleteCurrentLine removes the entire current line, including its trailing
// newline if present, and returns the line's text (without the newline).
func (l *Line) DeleteCurrentLine() string {
	doc := l.Document()
	before := doc.CurrentLineBeforeCursor()
	after := doc.CurrentLineAfterCursor()
	start := l.CursorPosition - len(before)
	end := l.CursorPosition + len(after)
	if end < len(l.Text) && l.Text[end] == '\n' {
		end++
	} else if start > 0 {
		start--
	}
	removed := l.deleteRange(start, end)
	l.CursorPosition = start
	return strings.TrimSuffix(removed, "\n")
}

// deleteRange removes text[start:end] and returns it, pushing one undo
// snapshot. The cursor is left untouched by this helper; callers reposition
// it as needed.
func (l *Line) deleteRange(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(l.Text) {
		end = len(l.Text)
	}
	if start >= end {
		return ""
	}
	l.clearTransientState()
	l.pushUndo(false)
	removed := l.Text[start:end]
	l.Text = l.Text[:start] + l.Text[end:]
	l.lastOpWasCoalescingInsert = false
	return removed
}

// Clear resets the buffer to empty, leaving history untouched.
func (l *Line) Clear() {
	l.clearTransientState()
	l.pushUndo(false)
	l.Text = ""
	l.CursorPosition = 0
	l.lastOpWasCoalescingInsert = false
}

// Newline inserts a line break at the cursor. When autoIndent is true, the
// new line is seeded with the current line's leading whitespace, plus four
// extra spaces if the current line ends with ':'.
func (l *Line) Newline(autoIndent bool) {
	indent := ""
	if autoIndent {
		current := l.Document().CurrentLineBeforeCursor()
		i := 0
		for i < len(current) && (current[i] == ' ' || current[i] == '\t') {
			i++
		}
		indent = current[:i]
		if strings.HasSuffix(strings.TrimRight(l.Document().CurrentLine(), " \t"), ":") {
			indent += "    "
		}
	}
	l.InsertText("\n"+indent, false, false)
}
