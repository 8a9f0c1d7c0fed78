// Package config loads and persists user preferences for the line editor:
// the active keybinding profile, per-context overrides, history settings,
// and display behavior.
package config

import "regexp"

var configPathSegmentRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Config represents the complete configuration structure.
type Config struct {
	Meta struct {
		ConfigVersion string `yaml:"config-version"`
	} `yaml:"meta"`

	UI struct {
		Color   bool `yaml:"color"`
		TabWidth int `yaml:"tab-width"`
	} `yaml:"ui"`

	History struct {
		Path       string `yaml:"path"`
		MaxEntries int    `yaml:"max-entries"`
		Dedupe     bool   `yaml:"dedupe"`
	} `yaml:"history"`

	Editing struct {
		AutoIndent     bool `yaml:"auto-indent"`
		MultilineEnter bool `yaml:"multiline-enter"`
	} `yaml:"editing"`

	Interactive struct {
		Profile string `yaml:"profile,omitempty"`

		Keybindings struct {
			DeleteWord      string `yaml:"delete_word"`
			ClearLine       string `yaml:"clear_line"`
			DeleteToEnd     string `yaml:"delete_to_end"`
			MoveToBeginning string `yaml:"move_to_beginning"`
			MoveToEnd       string `yaml:"move_to_end"`
			MoveUp          string `yaml:"move_up"`
			MoveDown        string `yaml:"move_down"`
			MoveLeft        string `yaml:"move_left"`
			MoveRight       string `yaml:"move_right"`
			WordLeft        string `yaml:"word_left"`
			WordRight       string `yaml:"word_right"`
			Undo            string `yaml:"undo"`
			ReverseSearch   string `yaml:"reverse_search"`
			ForwardSearch   string `yaml:"forward_search"`
			Paste           string `yaml:"paste"`
			Transpose       string `yaml:"transpose"`
			Complete        string `yaml:"complete"`
			SoftCancel      string `yaml:"soft_cancel"`
		} `yaml:"keybindings"`

		Contexts struct {
			Insert     KeybindingsConfig `yaml:"insert,omitempty"`
			Navigation KeybindingsConfig `yaml:"navigation,omitempty"`
			Isearch    KeybindingsConfig `yaml:"isearch,omitempty"`
		} `yaml:"contexts,omitempty"`

		Darwin  KeybindingsConfig `yaml:"darwin,omitempty"`
		Linux   KeybindingsConfig `yaml:"linux,omitempty"`
		Windows KeybindingsConfig `yaml:"windows,omitempty"`

		Terminals map[string]KeybindingsConfig `yaml:"terminals,omitempty"`
	} `yaml:"interactive"`
}

// Manager handles configuration loading, saving, and in-place editing.
type Manager struct {
	config     *Config
	configPath string
}

// NewConfigManager creates a new configuration manager with default values.
func NewConfigManager() *Manager {
	return &Manager{config: getDefaultConfig()}
}

// GetConfig returns the current configuration.
func (cm *Manager) GetConfig() *Config {
	return cm.config
}

func getDefaultConfig() *Config {
	config := &Config{}

	config.Meta.ConfigVersion = "1.0"

	config.UI.Color = true
	config.UI.TabWidth = 4

	config.History.MaxEntries = 10000
	config.History.Dedupe = true

	config.Editing.AutoIndent = true

	config.Interactive.Profile = "emacs"

	return config
}
