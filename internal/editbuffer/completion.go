package editbuffer

// Complete asks the wired Completer for candidates on the current text.
// Zero candidates is a no-op returning true (caller may e.g. treat this as
// done); a single candidate is accepted immediately; multiple candidates
// open a cycling CompletionState positioned on the first one, returning
// false so a repeated Tab can advance via Next.
func (l *Line) Complete() bool {
	if l.completer == nil {
		return true
	}
	candidates := l.completer.Complete(l.Document())
	switch len(candidates) {
	case 0:
		return true
	case 1:
		l.InsertText(candidates[0].Suffix, false, false)
		return true
	default:
		l.Completion = &CompletionState{
			Candidates:     candidates,
			Index:          0,
			OriginalText:   l.Text,
			OriginalCursor: l.CursorPosition,
		}
		l.applyCompletion(0)
		return false
	}
}

// NextCompletion advances the cycling completion to the next candidate,
// wrapping around. A no-op when no completion is in progress.
func (l *Line) NextCompletion() {
	if l.Completion == nil {
		return
	}
	l.Completion.Index = (l.Completion.Index + 1) % len(l.Completion.Candidates)
	l.applyCompletion(l.Completion.Index)
}

// PreviousCompletion is the backward counterpart of NextCompletion.
func (l *Line) PreviousCompletion() {
	if l.Completion == nil {
		return
	}
	n := len(l.Completion.Candidates)
	l.Completion.Index = (l.Completion.Index - 1 + n) % n
	l.applyCompletion(l.Completion.Index)
}

func (l *Line) applyCompletion(index int) {
	state := l.Completion
	suffix := state.Candidates[index].Suffix
	l.Text = state.OriginalText[:state.OriginalCursor] + suffix + state.OriginalText[state.OriginalCursor:]
	l.CursorPosition = state.OriginalCursor + len(suffix)
}

// CancelCompletion reverts to the text that was present before Complete was
// first invoked, discarding the cycling state.
func (l *Line) CancelCompletion() {
	if l.Completion == nil {
		return
	}
	l.Text = l.Completion.OriginalText
	l.CursorPosition = l.Completion.OriginalCursor
	l.Completion = nil
}
