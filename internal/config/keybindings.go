package config

import (
	"fmt"
	"strings"
)

// validateKeybindings validates the keybinding configuration.
func (c *Config) validateKeybindings() error {
	if err := c.validateProfile(); err != nil {
		return err
	}

	bindings := map[string]string{
		"delete_word":       c.Interactive.Keybindings.DeleteWord,
		"clear_line":        c.Interactive.Keybindings.ClearLine,
		"delete_to_end":     c.Interactive.Keybindings.DeleteToEnd,
		"move_to_beginning": c.Interactive.Keybindings.MoveToBeginning,
		"move_to_end":       c.Interactive.Keybindings.MoveToEnd,
		"move_up":           c.Interactive.Keybindings.MoveUp,
		"move_down":         c.Interactive.Keybindings.MoveDown,
		"move_left":         c.Interactive.Keybindings.MoveLeft,
		"move_right":        c.Interactive.Keybindings.MoveRight,
		"word_left":         c.Interactive.Keybindings.WordLeft,
		"word_right":        c.Interactive.Keybindings.WordRight,
		"undo":              c.Interactive.Keybindings.Undo,
		"reverse_search":    c.Interactive.Keybindings.ReverseSearch,
		"forward_search":    c.Interactive.Keybindings.ForwardSearch,
		"paste":             c.Interactive.Keybindings.Paste,
		"transpose":         c.Interactive.Keybindings.Transpose,
		"complete":          c.Interactive.Keybindings.Complete,
		"soft_cancel":       c.Interactive.Keybindings.SoftCancel,
	}

	for action, keyStr := range bindings {
		if keyStr == "" {
			continue
		}
		if err := parseKeyBinding(keyStr); err != nil {
			return &ValidationError{
				Field:   fmt.Sprintf("interactive.keybindings.%s", action),
				Value:   keyStr,
				Message: err.Error(),
			}
		}
	}

	if err := c.validateContextKeybindings(); err != nil {
		return err
	}
	return c.validatePlatformKeybindings()
}

// validateProfile validates the profile selection.
func (c *Config) validateProfile() error {
	profile := c.Interactive.Profile
	if profile == "" {
		return nil
	}

	validProfiles := map[string]bool{
		"default":  true,
		"emacs":    true,
		"vi":       true,
		"readline": true,
	}

	if !validProfiles[profile] {
		return &ValidationError{
			Field:   "interactive.profile",
			Value:   profile,
			Message: "must be one of: default, emacs, vi, readline",
		}
	}
	return nil
}

// validateContextKeybindings validates context-specific keybindings.
func (c *Config) validateContextKeybindings() error {
	contexts := map[string]map[string]interface{}{
		"insert":     c.Interactive.Contexts.Insert.Keybindings,
		"navigation": c.Interactive.Contexts.Navigation.Keybindings,
		"isearch":    c.Interactive.Contexts.Isearch.Keybindings,
	}

	nonNil := 0
	for _, bindings := range contexts {
		if bindings != nil {
			nonNil++
		}
	}

	for contextName, bindings := range contexts {
		if bindings == nil {
			if nonNil > 0 {
				return &ValidationError{
					Field:   fmt.Sprintf("interactive.contexts.%s.keybindings", contextName),
					Value:   bindings,
					Message: "keybindings map is missing for this context",
				}
			}
			continue
		}
		for action, value := range bindings {
			if err := validateKeybindingValue(fmt.Sprintf("interactive.contexts.%s.keybindings.%s", contextName, action), value); err != nil {
				return err
			}
		}
	}
	return nil
}

// validatePlatformKeybindings validates platform and terminal specific keybindings.
func (c *Config) validatePlatformKeybindings() error {
	platforms := map[string]map[string]interface{}{
		"darwin":  c.Interactive.Darwin.Keybindings,
		"linux":   c.Interactive.Linux.Keybindings,
		"windows": c.Interactive.Windows.Keybindings,
	}

	for platformName, bindings := range platforms {
		if bindings == nil {
			continue
		}
		for action, value := range bindings {
			if err := validateKeybindingValue(fmt.Sprintf("interactive.%s.keybindings.%s", platformName, action), value); err != nil {
				return err
			}
		}
	}

	if c.Interactive.Terminals != nil {
		for termName, termConfig := range c.Interactive.Terminals {
			if termConfig.Keybindings == nil {
				continue
			}
			for action, value := range termConfig.Keybindings {
				if err := validateKeybindingValue(fmt.Sprintf("interactive.terminals.%s.keybindings.%s", termName, action), value); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// validateKeybindingValue validates a keybinding value (string or array of strings).
func validateKeybindingValue(fieldPath string, value interface{}) error {
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil
		}
		if err := parseKeyBinding(v); err != nil {
			return &ValidationError{Field: fieldPath, Value: v, Message: err.Error()}
		}
	case []interface{}:
		for i, item := range v {
			itemStr, ok := item.(string)
			if !ok {
				return &ValidationError{
					Field:   fmt.Sprintf("%s[%d]", fieldPath, i),
					Value:   item,
					Message: "keybinding array items must be strings",
				}
			}
			if itemStr != "" {
				if err := parseKeyBinding(itemStr); err != nil {
					return &ValidationError{
						Field:   fmt.Sprintf("%s[%d]", fieldPath, i),
						Value:   itemStr,
						Message: err.Error(),
					}
				}
			}
		}
	default:
		return &ValidationError{Field: fieldPath, Value: value, Message: "keybinding must be a string or array of strings"}
	}
	return nil
}

// parseKeyBinding validates key binding strings.
// Implemented here rather than delegating to internal/keybindings to avoid a
// circular import: that package has no reason to depend on config, but config
// needs a cheap syntax check before a value is ever handed to the parser.
func parseKeyBinding(keyStr string) error {
	s := strings.TrimSpace(keyStr)
	if s == "" {
		return fmt.Errorf("empty key binding")
	}

	sLower := strings.ToLower(s)

	if (strings.HasPrefix(sLower, "ctrl+") && len(s) >= 6) ||
		(strings.HasPrefix(sLower, "alt+") && len(s) >= 5) ||
		(strings.HasPrefix(s, "^") && len(s) == 2) ||
		(strings.HasPrefix(sLower, "c-") && len(s) == 3) {
		return nil
	}

	switch sLower {
	case "tab", "enter", "escape", "space", "up", "down", "left", "right":
		return nil
	}

	return fmt.Errorf("unsupported key binding format: %s (supported: 'ctrl+<key>', 'alt+<key>', '^<key>', 'c-<key>', or a named key)", keyStr)
}
