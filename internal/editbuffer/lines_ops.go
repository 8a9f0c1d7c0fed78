package editbuffer

// InsertLineAbove opens a new empty line above the current one and places
// the cursor on it.
func (l *Line) InsertLineAbove() {
	doc := l.Document()
	before := doc.CurrentLineBeforeCursor()
	start := l.CursorPosition - len(before)

	l.clearTransientState()
	l.pushUndo(false)
	l.Text = l.Text[:start] + "\n" + l.Text[start:]
	l.CursorPosition = start
	l.lastOpWasCoalescingInsert = false
}

// InsertLineBelow opens a new empty line below the current one and places
// the cursor on it.
func (l *Line) InsertLineBelow() {
	doc := l.Document()
	after := doc.CurrentLineAfterCursor()
	end := l.CursorPosition + len(after)

	l.clearTransientState()
	l.pushUndo(false)
	l.Text = l.Text[:end] + "\n" + l.Text[end:]
	l.CursorPosition = end + 1
	l.lastOpWasCoalescingInsert = false
}

// JoinNextLine merges the current line with the one following it, collapsing
// the next line's leading whitespace to a single joining space. A no-op on
// the last line.
func (l *Line) JoinNextLine() {
	doc := l.Document()
	after := doc.CurrentLineAfterCursor()
	end := l.CursorPosition + len(after)
	if end >= len(l.Text) {
		return
	}

	rest := l.Text[end+1:]
	i := 0
	for i < len(rest) && (rest[i] == ' ' || rest[i] == '\t') {
		i++
	}

	l.clearTransientState()
	l.pushUndo(false)
	l.Text = l.Text[:end] + " " + rest[i:]
	l.CursorPosition = end
	l.lastOpWasCoalescingInsert = false
}
