package keybindings

import "fmt"

// Import converts a KeybindingExport loaded from YAML back into a resolved
// KeyBindingMap, falling back to the built-in default for any action left
// empty in the export.
func Import(exp KeybindingExport) (*KeyBindingMap, error) {
	km := DefaultKeyBindingMap()

	fields := []struct {
		name string
		src  []string
		dst  *[]KeyStroke
	}{
		{"delete_word", exp.DeleteWord, &km.DeleteWord},
		{"clear_line", exp.ClearLine, &km.ClearLine},
		{"delete_to_end", exp.DeleteToEnd, &km.DeleteToEnd},
		{"move_to_beginning", exp.MoveToBeginning, &km.MoveToBeginning},
		{"move_to_end", exp.MoveToEnd, &km.MoveToEnd},
		{"move_up", exp.MoveUp, &km.MoveUp},
		{"move_down", exp.MoveDown, &km.MoveDown},
		{"move_left", exp.MoveLeft, &km.MoveLeft},
		{"move_right", exp.MoveRight, &km.MoveRight},
		{"word_left", exp.WordLeft, &km.WordLeft},
		{"word_right", exp.WordRight, &km.WordRight},
		{"undo", exp.Undo, &km.Undo},
		{"reverse_search", exp.ReverseSearch, &km.ReverseSearch},
		{"forward_search", exp.ForwardSearch, &km.ForwardSearch},
		{"paste", exp.Paste, &km.Paste},
		{"transpose", exp.Transpose, &km.Transpose},
		{"complete", exp.Complete, &km.Complete},
		{"soft_cancel", exp.SoftCancel, &km.SoftCancel},
	}

	for _, f := range fields {
		if f.src == nil {
			continue
		}
		strokes, err := parseAll(f.src)
		if err != nil {
			return nil, fmt.Errorf("lined: importing keybinding %q: %w", f.name, err)
		}
		*f.dst = strokes
	}
	return km, nil
}

func parseAll(specs []string) ([]KeyStroke, error) {
	out := make([]KeyStroke, 0, len(specs))
	for _, s := range specs {
		ks, err := ParseKeyStroke(s)
		if err != nil {
			return nil, err
		}
		out = append(out, ks)
	}
	return out, nil
}
