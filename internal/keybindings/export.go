package keybindings

// KeybindingExport is the YAML-serializable form of a KeyBindingMap: each
// action maps to its bound keystrokes rendered as parseable strings (the
// same vocabulary ParseKeyStroke accepts), so a map can be written to disk
// and later re-read with ImportKeybindings.
type KeybindingExport struct {
	DeleteWord      []string `yaml:"delete_word,omitempty"`
	ClearLine       []string `yaml:"clear_line,omitempty"`
	DeleteToEnd     []string `yaml:"delete_to_end,omitempty"`
	MoveToBeginning []string `yaml:"move_to_beginning,omitempty"`
	MoveToEnd       []string `yaml:"move_to_end,omitempty"`
	MoveUp          []string `yaml:"move_up,omitempty"`
	MoveDown        []string `yaml:"move_down,omitempty"`
	MoveLeft        []string `yaml:"move_left,omitempty"`
	MoveRight       []string `yaml:"move_right,omitempty"`
	WordLeft        []string `yaml:"word_left,omitempty"`
	WordRight       []string `yaml:"word_right,omitempty"`
	Undo            []string `yaml:"undo,omitempty"`
	ReverseSearch   []string `yaml:"reverse_search,omitempty"`
	ForwardSearch   []string `yaml:"forward_search,omitempty"`
	Paste           []string `yaml:"paste,omitempty"`
	Transpose       []string `yaml:"transpose,omitempty"`
	Complete        []string `yaml:"complete,omitempty"`
	SoftCancel      []string `yaml:"soft_cancel,omitempty"`
}

func formatAll(strokes []KeyStroke) []string {
	if len(strokes) == 0 {
		return nil
	}
	out := make([]string, len(strokes))
	for i, ks := range strokes {
		out[i] = keyStrokeToParseable(ks)
	}
	return out
}

// keyStrokeToParseable renders a KeyStroke back into a string that
// ParseKeyStroke would accept, the inverse of that function for the subset
// of keystrokes a KeyBindingMap actually holds.
func keyStrokeToParseable(ks KeyStroke) string {
	switch ks.Kind {
	case KeyStrokeCtrl:
		return "ctrl+" + string(ks.Rune)
	case KeyStrokeAlt:
		if ks.Name != "" {
			return "alt+" + ks.Name
		}
		return "alt+" + string(ks.Rune)
	case KeyStrokeRawSeq:
		return rawSeqToParseable(ks.Seq)
	case KeyStrokeFnKey:
		return ks.Name
	default:
		return ""
	}
}

func rawSeqToParseable(seq []byte) string {
	if len(seq) == 1 {
		switch seq[0] {
		case 9:
			return "tab"
		case 13:
			return "enter"
		case 27:
			return "escape"
		case 32:
			return "space"
		}
	}
	if len(seq) == 3 && seq[0] == 27 && seq[1] == '[' {
		switch seq[2] {
		case 'A':
			return "up"
		case 'B':
			return "down"
		case 'C':
			return "right"
		case 'D':
			return "left"
		}
	}
	return ""
}

// Export converts a resolved KeyBindingMap into its YAML-serializable form.
func Export(km *KeyBindingMap) KeybindingExport {
	return KeybindingExport{
		DeleteWord:      formatAll(km.DeleteWord),
		ClearLine:       formatAll(km.ClearLine),
		DeleteToEnd:     formatAll(km.DeleteToEnd),
		MoveToBeginning: formatAll(km.MoveToBeginning),
		MoveToEnd:       formatAll(km.MoveToEnd),
		MoveUp:          formatAll(km.MoveUp),
		MoveDown:        formatAll(km.MoveDown),
		MoveLeft:        formatAll(km.MoveLeft),
		MoveRight:       formatAll(km.MoveRight),
		WordLeft:        formatAll(km.WordLeft),
		WordRight:       formatAll(km.WordRight),
		Undo:            formatAll(km.Undo),
		ReverseSearch:   formatAll(km.ReverseSearch),
		ForwardSearch:   formatAll(km.ForwardSearch),
		Paste:           formatAll(km.Paste),
		Transpose:       formatAll(km.Transpose),
		Complete:        formatAll(km.Complete),
		SoftCancel:      formatAll(km.SoftCancel),
	}
}
