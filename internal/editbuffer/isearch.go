package editbuffer

// ReverseSearch enters (or continues) a backward incremental search through
// history. The first call saves the buffer's current text/cursor so Ctrl+G
// can restore it.
func (l *Line) ReverseSearch() {
	l.enterIsearch(SearchBackward)
}

// ForwardSearch is the forward counterpart of ReverseSearch.
func (l *Line) ForwardSearch() {
	l.enterIsearch(SearchForward)
}

func (l *Line) enterIsearch(dir isearchDirection) {
	if l.Isearch != nil {
		l.Isearch.Direction = dir
		l.jumpToNextMatch()
		return
	}
	l.Completion = nil
	l.Isearch = &IsearchState{
		Direction:      dir,
		OriginalText:   l.Text,
		OriginalCursor: l.CursorPosition,
	}
}

// IsearchAppend appends ch to the active search pattern and jumps the
// buffer to the next history entry containing it. A no-op when isearch is
// not active.
func (l *Line) IsearchAppend(ch rune) {
	if l.Isearch == nil {
		return
	}
	l.Isearch.Pattern += string(ch)
	l.jumpToNextMatch()
}

// IsearchBackspace removes the last rune of the active search pattern.
func (l *Line) IsearchBackspace() {
	if l.Isearch == nil || l.Isearch.Pattern == "" {
		return
	}
	r := []rune(l.Isearch.Pattern)
	l.Isearch.Pattern = string(r[:len(r)-1])
	l.jumpToNextMatch()
}

func (l *Line) jumpToNextMatch() {
	if l.History == nil || l.History.Len() == 0 || l.Isearch.Pattern == "" {
		return
	}
	start := l.historyIndex
	if start < 0 {
		start = l.History.Len() - 1
	}
	if l.Isearch.Direction == SearchBackward {
		for i := start; i >= 0; i-- {
			if l.History.Contains(i, l.Isearch.Pattern) {
				l.historyIndex = i
				l.Text = l.History.At(i)
				l.CursorPosition = len(l.Text)
				return
			}
		}
	} else {
		for i := start; i < l.History.Len(); i++ {
			if l.History.Contains(i, l.Isearch.Pattern) {
				l.historyIndex = i
				l.Text = l.History.At(i)
				l.CursorPosition = len(l.Text)
				return
			}
		}
	}
}

// ExitIsearch leaves isearch mode. When restoreOriginal is true (Ctrl+G),
// the buffer reverts to the text/cursor it had before the search began;
// otherwise the current match is kept as the accepted result.
func (l *Line) ExitIsearch(restoreOriginal bool) {
	if l.Isearch == nil {
		return
	}
	if restoreOriginal {
		l.Text = l.Isearch.OriginalText
		l.CursorPosition = l.Isearch.OriginalCursor
	}
	l.Isearch = nil
}
