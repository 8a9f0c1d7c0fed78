package editbuffer

import "strings"

// SetClipboard replaces the buffer's single-slot kill ring entry.
func (l *Line) SetClipboard(data ClipboardData) {
	l.Clipboard = data
}

// PasteFromClipboard inserts the clipboard contents. CHARACTERS-type data
// is spliced at the cursor; LINES-type data is inserted as whole lines,
// above the current line when before is true, otherwise below it.
func (l *Line) PasteFromClipboard(before bool) {
	if l.Clipboard.Text == "" {
		return
	}
	if l.Clipboard.Type == Lines {
		l.pasteLines(before)
		return
	}
	l.InsertText(l.Clipboard.Text, false, false)
}

func (l *Line) pasteLines(before bool) {
	doc := l.Document()
	lineBefore := doc.CurrentLineBeforeCursor()
	lineAfter := doc.CurrentLineAfterCursor()
	start := l.CursorPosition - len(lineBefore)
	end := l.CursorPosition + len(lineAfter)

	text := l.Clipboard.Text
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	l.clearTransientState()
	l.pushUndo(false)
	if before {
		l.Text = l.Text[:start] + text + l.Text[start:]
		l.CursorPosition = start
	} else {
		l.Text = l.Text[:end] + "\n" + text[:len(text)-1] + l.Text[end:]
		l.CursorPosition = end + 1
	}
	l.lastOpWasCoalescingInsert = false
}
