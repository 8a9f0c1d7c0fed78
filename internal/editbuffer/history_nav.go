package editbuffer

// HistoryBackward walks to the most recent not-yet-shown entry whose prefix
// matches the text the cursor sat after when history browsing began. A
// no-op when there is no earlier matching entry.
func (l *Line) HistoryBackward() {
	if l.History == nil || l.History.Len() == 0 {
		return
	}
	if l.historyIndex < 0 {
		l.historyPrefix = l.Document().TextBeforeCursor()
		l.historyOriginal = l.Text
		l.historyOriginalAt = l.CursorPosition
		l.historyIndex = l.History.Len()
	}
	idx := l.History.SearchBackward(l.historyIndex-1, l.historyPrefix)
	if idx < 0 {
		return
	}
	l.historyIndex = idx
	l.Text = l.History.At(idx)
	l.CursorPosition = len(l.Text)
}

// HistoryForward is the forward counterpart of HistoryBackward. Walking
// forward past the most recent entry restores the text present when
// browsing began.
func (l *Line) HistoryForward() {
	if l.History == nil || l.historyIndex < 0 {
		return
	}
	idx := l.History.SearchForward(l.historyIndex+1, l.historyPrefix)
	if idx < 0 {
		l.historyIndex = -1
		l.Text = l.historyOriginal
		l.CursorPosition = l.historyOriginalAt
		return
	}
	l.historyIndex = idx
	l.Text = l.History.At(idx)
	l.CursorPosition = len(l.Text)
}
