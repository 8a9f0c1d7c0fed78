package editbuffer

// ReturnInput produces the Accept outcome carrying the buffer's text,
// ending the read loop successfully.
func (l *Line) ReturnInput() DispatchOutcome {
	return AcceptOutcome(l.Text)
}

// AbortLine produces the Abort outcome, ending the read loop as cancelled.
func (l *Line) AbortLine() DispatchOutcome {
	return AbortOutcome()
}

// ExitLine produces the Exit outcome, asking the host to terminate.
func (l *Line) ExitLine() DispatchOutcome {
	return ExitOutcome()
}

// SetArgPrompt sets the text shown alongside a pending numeric argument
// (e.g. "3" after emacs's Alt+3).
func (l *Line) SetArgPrompt(s string) { l.setArgPrompt(s) }
