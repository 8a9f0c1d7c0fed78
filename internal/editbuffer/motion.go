package editbuffer

import "strings"

// CursorLeft moves the cursor back one rune, stopping at the start of text.
func (l *Line) CursorLeft() {
	l.clearTransientState()
	l.CursorPosition -= prevRuneWidth(l.Text, l.CursorPosition)
}

// CursorRight moves the cursor forward one rune, stopping at the end of text.
func (l *Line) CursorRight() {
	l.clearTransientState()
	l.CursorPosition += nextRuneWidth(l.Text, l.CursorPosition)
}

// CursorUp moves to the same column on the previous line, clipping the
// column to that line's length. No-op on the first line.
func (l *Line) CursorUp() {
	l.clearTransientState()
	doc := l.Document()
	row, col := doc.CursorRow(), doc.CursorCol()
	if row == 0 {
		return
	}
	lines := doc.Lines()
	target := lines[row-1]
	if col > len(target) {
		col = len(target)
	}
	l.CursorPosition = lineStart(lines, row-1) + col
}

// CursorDown is the downward counterpart of CursorUp.
func (l *Line) CursorDown() {
	l.clearTransientState()
	doc := l.Document()
	row, col := doc.CursorRow(), doc.CursorCol()
	lines := doc.Lines()
	if row >= len(lines)-1 {
		return
	}
	target := lines[row+1]
	if col > len(target) {
		col = len(target)
	}
	l.CursorPosition = lineStart(lines, row+1) + col
}

func lineStart(lines []string, row int) int {
	pos := 0
	for i := 0; i < row; i++ {
		pos += len(lines[i]) + 1
	}
	return pos
}

// AutoUp moves up geometrically when the buffer spans multiple lines,
// otherwise walks backward through history.
func (l *Line) AutoUp() {
	if len(l.Document().Lines()) > 1 {
		l.CursorUp()
		return
	}
	l.HistoryBackward()
}

// AutoDown is the downward counterpart of AutoUp.
func (l *Line) AutoDown() {
	if len(l.Document().Lines()) > 1 {
		l.CursorDown()
		return
	}
	l.HistoryForward()
}

// CursorWordForward moves to the start of the next lowercase-family word.
func (l *Line) CursorWordForward() {
	l.clearTransientState()
	l.CursorPosition += l.Document().FindNextWordStart()
}

// CursorWordBack moves to the start of the previous lowercase-family word.
func (l *Line) CursorWordBack() {
	l.clearTransientState()
	l.CursorPosition += l.Document().FindPreviousWordStart()
}

// CursorToStartOfLine moves to column 0 of the current line, or past any
// leading whitespace when afterWhitespace is true.
func (l *Line) CursorToStartOfLine(afterWhitespace bool) {
	l.clearTransientState()
	doc := l.Document()
	before := doc.CurrentLineBeforeCursor()
	l.CursorPosition -= len(before)
	if afterWhitespace {
		line := doc.CurrentLine()
		i := 0
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		l.CursorPosition += i
	}
}

// CursorToEndOfLine moves to the end of the current line.
func (l *Line) CursorToEndOfLine() {
	l.clearTransientState()
	l.CursorPosition += len(l.Document().CurrentLineAfterCursor())
}

// CursorToEndOfWord moves to the end of the current or next lowercase-family word.
func (l *Line) CursorToEndOfWord() {
	l.clearTransientState()
	l.CursorPosition += l.Document().FindEndOfCurrentWord()
}

// Home moves to the very start of the buffer.
func (l *Line) Home() {
	l.clearTransientState()
	l.CursorPosition = 0
}

// End moves to the very end of the buffer.
func (l *Line) End() {
	l.clearTransientState()
	l.CursorPosition = len(l.Text)
}

// GoToCharacterInLine moves the cursor to the next occurrence of ch on the
// current line, returning whether one was found.
func (l *Line) GoToCharacterInLine(ch rune) bool {
	after := l.Document().CurrentLineAfterCursor()
	idx := strings.IndexRune(after, ch)
	if idx < 0 {
		return false
	}
	l.clearTransientState()
	l.CursorPosition += idx
	return true
}

var bracketPairs = map[rune]rune{'(': ')', '[': ']', '{': '}', ')': '(', ']': '[', '}': '{'}

// GoToMatchingBracket jumps to the bracket matching the one under the
// cursor, if any, returning whether a match was found.
func (l *Line) GoToMatchingBracket() bool {
	doc := l.Document()
	cur := doc.CurrentChar()
	if cur == "" {
		return false
	}
	open := []rune(cur)[0]
	match, ok := bracketPairs[open]
	if !ok {
		return false
	}
	forward := open == '(' || open == '[' || open == '{'
	depth := 0
	text := []rune(l.Text)
	pos := []rune(l.Text[:l.CursorPosition])
	idx := len(pos)
	if forward {
		for i := idx; i < len(text); i++ {
			if text[i] == open {
				depth++
			} else if text[i] == match {
				depth--
				if depth == 0 {
					l.clearTransientState()
					l.CursorPosition = len(string(text[:i]))
					return true
				}
			}
		}
	} else {
		for i := idx; i >= 0; i-- {
			if text[i] == open {
				depth++
			} else if text[i] == match {
				depth--
				if depth == 0 {
					l.clearTransientState()
					l.CursorPosition = len(string(text[:i]))
					return true
				}
			}
		}
	}
	return false
}

// SwapCharactersBeforeCursor transposes the two runes immediately before the
// cursor (emacs/vi transpose-chars).
func (l *Line) SwapCharactersBeforeCursor() {
	if l.CursorPosition < 2 {
		return
	}
	w2 := prevRuneWidth(l.Text, l.CursorPosition)
	w1 := prevRuneWidth(l.Text, l.CursorPosition-w2)
	start := l.CursorPosition - w2 - w1
	a := l.Text[start : start+w1]
	b := l.Text[start+w1 : start+w1+w2]
	l.pushUndo(false)
	l.clearTransientState()
	l.Text = l.Text[:start] + b + a + l.Text[start+w1+w2:]
	l.lastOpWasCoalescingInsert = false
}
