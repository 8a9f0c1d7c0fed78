package keybindings

import "fmt"

// ActionBindings is the single-keystroke-per-action shape config files use
// on disk. Resolve adapts it into the []KeyStroke-per-action shape Import
// already knows how to parse, so a config value of "" just means "leave the
// default binding alone".
type ActionBindings struct {
	DeleteWord      string
	ClearLine       string
	DeleteToEnd     string
	MoveToBeginning string
	MoveToEnd       string
	MoveUp          string
	MoveDown        string
	MoveLeft        string
	MoveRight       string
	WordLeft        string
	WordRight       string
	Undo            string
	ReverseSearch   string
	ForwardSearch   string
	Paste           string
	Transpose       string
	Complete        string
	SoftCancel      string
}

func single(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

// Resolve builds a KeyBindingMap from a config's single-keystroke-per-action
// overrides, falling back to DefaultKeyBindingMap for anything left blank.
func Resolve(ab ActionBindings) (*KeyBindingMap, error) {
	return Import(KeybindingExport{
		DeleteWord:      single(ab.DeleteWord),
		ClearLine:       single(ab.ClearLine),
		DeleteToEnd:     single(ab.DeleteToEnd),
		MoveToBeginning: single(ab.MoveToBeginning),
		MoveToEnd:       single(ab.MoveToEnd),
		MoveUp:          single(ab.MoveUp),
		MoveDown:        single(ab.MoveDown),
		MoveLeft:        single(ab.MoveLeft),
		MoveRight:       single(ab.MoveRight),
		WordLeft:        single(ab.WordLeft),
		WordRight:       single(ab.WordRight),
		Undo:            single(ab.Undo),
		ReverseSearch:   single(ab.ReverseSearch),
		ForwardSearch:   single(ab.ForwardSearch),
		Paste:           single(ab.Paste),
		Transpose:       single(ab.Transpose),
		Complete:        single(ab.Complete),
		SoftCancel:      single(ab.SoftCancel),
	})
}

// actionFields maps an action name to the field of a KeyBindingMap that
// holds it, used by ApplyOverrides to patch individual actions without
// rebuilding the whole map.
func actionFields(km *KeyBindingMap) map[string]*[]KeyStroke {
	return map[string]*[]KeyStroke{
		"delete_word":       &km.DeleteWord,
		"clear_line":        &km.ClearLine,
		"delete_to_end":     &km.DeleteToEnd,
		"move_to_beginning": &km.MoveToBeginning,
		"move_to_end":       &km.MoveToEnd,
		"move_up":           &km.MoveUp,
		"move_down":         &km.MoveDown,
		"move_left":         &km.MoveLeft,
		"move_right":        &km.MoveRight,
		"word_left":         &km.WordLeft,
		"word_right":        &km.WordRight,
		"undo":              &km.Undo,
		"reverse_search":    &km.ReverseSearch,
		"forward_search":    &km.ForwardSearch,
		"paste":             &km.Paste,
		"transpose":         &km.Transpose,
		"complete":          &km.Complete,
		"soft_cancel":       &km.SoftCancel,
	}
}

// ApplyOverrides returns a copy of base with every action named in overrides
// replaced by its parsed keystrokes; actions base doesn't recognize are
// ignored. overrides values accept anything ParseKeyStrokes does: a single
// string or a string array.
func ApplyOverrides(base *KeyBindingMap, overrides map[string]interface{}) (*KeyBindingMap, error) {
	out := *base
	fields := actionFields(&out)

	for action, raw := range overrides {
		dst, ok := fields[action]
		if !ok {
			continue
		}
		strokes, err := ParseKeyStrokes(raw)
		if err != nil {
			return nil, fmt.Errorf("lined: keybinding override %q: %w", action, err)
		}
		*dst = strokes
	}
	return &out, nil
}

// BuildContextual resolves a complete ContextualKeyBindingMap: base becomes
// the Global context every key handler falls back to, and contextOverrides
// layers per-context deltas (e.g. Vi's Navigation-only "dd"/"yy" multi-key
// commands live outside this table, but its single-key overrides don't) on
// top of that baseline.
func BuildContextual(profile Profile, platform, terminal string, base ActionBindings, contextOverrides map[Context]map[string]interface{}) (*ContextualKeyBindingMap, error) {
	global, err := Resolve(base)
	if err != nil {
		return nil, fmt.Errorf("lined: resolving keybindings: %w", err)
	}

	ckm := NewContextualKeyBindingMap(profile, platform, terminal)
	ckm.SetContext(ContextGlobal, global)

	for ctx, overrides := range contextOverrides {
		if len(overrides) == 0 {
			continue
		}
		km, err := ApplyOverrides(global, overrides)
		if err != nil {
			return nil, fmt.Errorf("lined: resolving %s keybindings: %w", ctx, err)
		}
		ckm.SetContext(ctx, km)
	}

	return ckm, nil
}
