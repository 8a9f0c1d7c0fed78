// Package document provides an immutable, derived view over an edit
// buffer's (text, cursor) pair: line/column arithmetic, word boundaries,
// and the slices a key handler needs without mutating anything.
package document

import "strings"

// Document is a read-only snapshot of text and a cursor position within it.
type Document struct {
	Text           string
	CursorPosition int
}

// New builds a Document, clamping the cursor into [0, len(text)].
func New(text string, cursor int) Document {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(text) {
		cursor = len(text)
	}
	return Document{Text: text, CursorPosition: cursor}
}

// Lines splits the text on newlines.
func (d Document) Lines() []string {
	return strings.Split(d.Text, "\n")
}

// CursorRow returns the zero-based row the cursor sits on.
func (d Document) CursorRow() int {
	return strings.Count(d.Text[:d.CursorPosition], "\n")
}

// CursorCol returns the zero-based column the cursor sits on within its row.
func (d Document) CursorCol() int {
	before := d.Text[:d.CursorPosition]
	if idx := strings.LastIndexByte(before, '\n'); idx >= 0 {
		return len(before) - idx - 1
	}
	return len(before)
}

// CurrentLine returns the full text of the row the cursor is on.
func (d Document) CurrentLine() string {
	lines := d.Lines()
	row := d.CursorRow()
	if row < 0 || row >= len(lines) {
		return ""
	}
	return lines[row]
}

// CurrentLineBeforeCursor returns the current line's text up to the cursor.
func (d Document) CurrentLineBeforeCursor() string {
	line := d.CurrentLine()
	col := d.CursorCol()
	if col > len(line) {
		col = len(line)
	}
	return line[:col]
}

// CurrentLineAfterCursor returns the current line's text after the cursor.
func (d Document) CurrentLineAfterCursor() string {
	line := d.CurrentLine()
	col := d.CursorCol()
	if col > len(line) {
		col = len(line)
	}
	return line[col:]
}

// TextBeforeCursor returns the full buffer up to the cursor.
func (d Document) TextBeforeCursor() string {
	return d.Text[:d.CursorPosition]
}

// TextAfterCursor returns the full buffer after the cursor.
func (d Document) TextAfterCursor() string {
	return d.Text[d.CursorPosition:]
}

// CurrentChar returns the rune at the cursor, or "" at end of buffer.
func (d Document) CurrentChar() string {
	rest := d.TextAfterCursor()
	if rest == "" {
		return ""
	}
	r := []rune(rest)
	return string(r[0])
}

// AtEnd reports whether the cursor sits at the end of the buffer.
func (d Document) AtEnd() bool {
	return d.CursorPosition == len(d.Text)
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// wordClass categorizes a byte into one of three classes used by the
// lowercase Vi word motions: whitespace, word characters, or punctuation.
// Each class forms its own maximal run, so "foo.bar" is three words.
func wordClass(b byte) int {
	switch {
	case isSpaceByte(b):
		return 0
	case isWordByte(b):
		return 1
	default:
		return 2
	}
}

// FindNextWordStart returns the byte offset (relative to the cursor) of the
// next lowercase-word boundary, or len(TextAfterCursor()) if there is none.
func (d Document) FindNextWordStart() int {
	rest := d.TextAfterCursor()
	if rest == "" {
		return 0
	}
	i := 0
	if i < len(rest) {
		cls := wordClass(rest[i])
		for i < len(rest) && wordClass(rest[i]) == cls && cls != 0 {
			i++
		}
	}
	for i < len(rest) && wordClass(rest[i]) == 0 {
		i++
	}
	return i
}

// FindPreviousWordStart returns the byte offset (relative to the cursor,
// negative or zero) of the previous lowercase-word boundary.
func (d Document) FindPreviousWordStart() int {
	before := d.TextBeforeCursor()
	i := len(before)
	for i > 0 && isSpaceByte(before[i-1]) {
		i--
	}
	if i == 0 {
		return -len(before)
	}
	cls := wordClass(before[i-1])
	for i > 0 && wordClass(before[i-1]) == cls {
		i--
	}
	return i - len(before)
}

// FindEndOfCurrentWord returns the byte offset (relative to the cursor) of
// the end of the current or next lowercase word.
func (d Document) FindEndOfCurrentWord() int {
	rest := d.TextAfterCursor()
	if rest == "" {
		return 0
	}
	i := 0
	for i < len(rest) && isSpaceByte(rest[i]) {
		i++
	}
	if i >= len(rest) {
		return i
	}
	cls := wordClass(rest[i])
	i++
	for i < len(rest) && wordClass(rest[i]) == cls {
		i++
	}
	if i == 0 {
		return 0
	}
	return i - 1
}

// FindNextBigWordStart is the WORD-family counterpart of FindNextWordStart:
// only whitespace bounds a WORD, so punctuation never splits it.
func (d Document) FindNextBigWordStart() int {
	rest := d.TextAfterCursor()
	if rest == "" {
		return 0
	}
	i := 0
	for i < len(rest) && !isSpaceByte(rest[i]) {
		i++
	}
	for i < len(rest) && isSpaceByte(rest[i]) {
		i++
	}
	return i
}

// FindPreviousBigWordStart is the WORD-family counterpart of FindPreviousWordStart.
func (d Document) FindPreviousBigWordStart() int {
	before := d.TextBeforeCursor()
	i := len(before)
	for i > 0 && isSpaceByte(before[i-1]) {
		i--
	}
	for i > 0 && !isSpaceByte(before[i-1]) {
		i--
	}
	return i - len(before)
}

// FindEndOfCurrentBigWord is the WORD-family counterpart of FindEndOfCurrentWord.
func (d Document) FindEndOfCurrentBigWord() int {
	rest := d.TextAfterCursor()
	if rest == "" {
		return 0
	}
	i := 0
	for i < len(rest) && isSpaceByte(rest[i]) {
		i++
	}
	for i < len(rest) && !isSpaceByte(rest[i]) {
		i++
	}
	if i == 0 {
		return 0
	}
	return i - 1
}

// GetFollowingWords returns the substring spanning the next n words after
// the cursor. When consumeNonWordBefore is true, leading whitespace
// immediately at the cursor is included in the span.
func (d Document) GetFollowingWords(n int, consumeNonWordBefore bool) string {
	rest := d.TextAfterCursor()
	pos := 0
	if consumeNonWordBefore {
		for pos < len(rest) && isSpaceByte(rest[pos]) {
			pos++
		}
	}
	for w := 0; w < n && pos < len(rest); w++ {
		sub := Document{Text: d.Text, CursorPosition: d.CursorPosition + pos}
		pos += sub.FindNextWordStart()
	}
	if pos > len(rest) {
		pos = len(rest)
	}
	return rest[:pos]
}
