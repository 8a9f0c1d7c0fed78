// Command linedemo is a manual smoke-test harness for the editor package: it
// drives one interactive prompt against the real terminal and prints
// whatever was accepted. It is not part of the library's scope.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/havocrow/lined/internal/config"
	"github.com/havocrow/lined/internal/document"
	"github.com/havocrow/lined/internal/editor"
	"github.com/havocrow/lined/internal/keybindings"
	"github.com/havocrow/lined/internal/prompt"
	"github.com/havocrow/lined/internal/termio"
	"github.com/havocrow/lined/internal/ui"
)

func main() {
	var err error
	if len(os.Args) > 1 && os.Args[1] == "config" {
		err = runConfig(os.Args[2:])
	} else {
		err = run()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "linedemo:", err)
		os.Exit(1)
	}
}

// runConfig implements "linedemo config get/set/list", the CLI surface for
// config.Manager's dotted-path accessors: get/set one field without hand
// editing the YAML file, list to see every resolved key.
func runConfig(args []string) error {
	cm := config.NewConfigManager()
	if err := cm.Load(); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if len(args) == 0 {
		return errors.New("usage: linedemo config <get|set|list> [args...]")
	}

	switch args[0] {
	case "get":
		if len(args) != 2 {
			return errors.New("usage: linedemo config get <key>")
		}
		value, err := cm.Get(args[1])
		if err != nil {
			return err
		}
		fmt.Println(value)
	case "set":
		if len(args) != 3 {
			return errors.New("usage: linedemo config set <key> <value>")
		}
		current, _ := cm.Get(args[1])
		ok, _, err := prompt.NewDefault().Confirm(fmt.Sprintf("set %s from %v to %v? [y/N] ", args[1], current, args[2]))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := cm.Set(args[1], args[2]); err != nil {
			return err
		}
	case "list":
		for key, value := range cm.List() {
			fmt.Printf("%s = %v\n", key, value)
		}
	default:
		return fmt.Errorf("unknown config subcommand %q", args[0])
	}
	return nil
}

func run() error {
	cm := config.NewConfigManager()
	if err := cm.Load(); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := cm.GetConfig()

	histPath := os.Getenv("LINEDEMO_HISTFILE")
	if histPath == "" {
		histPath = cfg.History.Path
	}
	hist, err := document.NewFileHistory(histPath)
	if err != nil {
		return err
	}

	mode := editor.Emacs
	profile := keybindings.ProfileEmacs
	if cfg.Interactive.Profile == "vi" {
		mode = editor.Vi
		profile = keybindings.ProfileVi
	}

	bindings, err := resolveBindings(profile, cfg)
	if err != nil {
		return fmt.Errorf("resolving keybindings: %w", err)
	}

	cl := editor.New(editor.Options{
		Input:         os.Stdin,
		Output:        os.Stdout,
		Terminal:      termio.DefaultTerminal{},
		FD:            int(os.Stdin.Fd()),
		History:       hist,
		Mode:          mode,
		KeyBindings:   bindings,
		PromptAdapter: editor.NewDefaultPrompt("linedemo> "),
	})
	formatter := ui.NewFormatter(os.Stdout)
	picker := prompt.NewDefault()

	for {
		text, err := cl.ReadInput(editor.AbortRetry, editor.ExitPropagate)
		if err != nil {
			if errors.Is(err, editor.ErrExit) {
				return nil
			}
			return err
		}

		if text == ":history" {
			browseHistory(hist, picker, formatter)
			continue
		}
		fmt.Printf("you said: %q\n", text)
	}
}

// resolveBindings translates the loaded config's flat keybinding fields into
// the table internal/keybindings resolves key events against: one Global
// map from cfg.Interactive.Keybindings, with per-context deltas layered on
// top from cfg.Interactive.Contexts.
func resolveBindings(profile keybindings.Profile, cfg *config.Config) (*keybindings.ContextualKeyBindingMap, error) {
	ab := keybindings.ActionBindings{
		DeleteWord:      cfg.Interactive.Keybindings.DeleteWord,
		ClearLine:       cfg.Interactive.Keybindings.ClearLine,
		DeleteToEnd:     cfg.Interactive.Keybindings.DeleteToEnd,
		MoveToBeginning: cfg.Interactive.Keybindings.MoveToBeginning,
		MoveToEnd:       cfg.Interactive.Keybindings.MoveToEnd,
		MoveUp:          cfg.Interactive.Keybindings.MoveUp,
		MoveDown:        cfg.Interactive.Keybindings.MoveDown,
		MoveLeft:        cfg.Interactive.Keybindings.MoveLeft,
		MoveRight:       cfg.Interactive.Keybindings.MoveRight,
		WordLeft:        cfg.Interactive.Keybindings.WordLeft,
		WordRight:       cfg.Interactive.Keybindings.WordRight,
		Undo:            cfg.Interactive.Keybindings.Undo,
		ReverseSearch:   cfg.Interactive.Keybindings.ReverseSearch,
		ForwardSearch:   cfg.Interactive.Keybindings.ForwardSearch,
		Paste:           cfg.Interactive.Keybindings.Paste,
		Transpose:       cfg.Interactive.Keybindings.Transpose,
		Complete:        cfg.Interactive.Keybindings.Complete,
		SoftCancel:      cfg.Interactive.Keybindings.SoftCancel,
	}

	contextOverrides := map[keybindings.Context]map[string]interface{}{
		keybindings.ContextInsert:     cfg.Interactive.Contexts.Insert.Keybindings,
		keybindings.ContextNavigation: cfg.Interactive.Contexts.Navigation.Keybindings,
		keybindings.ContextIsearch:    cfg.Interactive.Contexts.Isearch.Keybindings,
	}

	return keybindings.BuildContextual(profile, "", "", ab, contextOverrides)
}

// browseHistory lists every accepted entry through the numbered-selection UI
// and prints back whichever one the user picks. It is the one place this
// demo drops out of the raw-mode editor loop and back into a plain
// line-buffered prompt, since picking from a list needs neither escape
// decoding nor a redrawn screen.
func browseHistory(hist *document.History, picker prompt.Interface, formatter *ui.Formatter) {
	entries := hist.All()
	if len(entries) == 0 {
		formatter.Warning("history is empty")
		return
	}

	loop := ui.NewHistorySelectionLoop(formatter, entries)
	loop.Display()

	line, canceled, err := picker.Input("")
	if canceled {
		return
	}
	if err != nil {
		formatter.Error(err)
		return
	}

	selection, invalid := loop.ParseInput(line)
	if invalid != "" {
		formatter.Errorf("not a valid entry: %s", invalid)
		return
	}
	switch selection.Result {
	case ui.SelectionCanceled, ui.SelectionNone:
		return
	case ui.SelectionAll:
		for _, e := range entries {
			formatter.Println(e)
		}
	case ui.SelectionItems:
		for _, idx := range selection.Indices {
			if idx >= 0 && idx < len(entries) {
				formatter.Success(entries[idx])
			}
		}
	}
}
