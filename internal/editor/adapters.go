// Package editor implements the CommandLine orchestrator: it wires the
// input decoder, an Emacs or Vi key handler, the edit buffer and the screen
// renderer into one read-dispatch-render cycle.
package editor

import (
	"strings"

	"github.com/havocrow/lined/internal/document"
	"github.com/havocrow/lined/internal/editbuffer"
	"github.com/havocrow/lined/internal/screen"
)

// CodeAdapter tokenizes the buffer's text for styled rendering and offers
// completion candidates. It embeds editbuffer.Completer so any CodeAdapter
// can be wired straight into a Line.
type CodeAdapter interface {
	editbuffer.Completer
	Tokenize(text string) []screen.StyledText
}

// Prompt is the set of token-stream accessors a host supplies for the
// chrome around the edited text.
type Prompt interface {
	Prompt() []screen.StyledText
	SecondLinePrefix() []screen.StyledText
	IsearchPrompt(state *editbuffer.IsearchState) []screen.StyledText
	ArgPrompt(text string) []screen.StyledText
	HelpTokens() []screen.StyledText
}

// PlainTextTokenizer is the reference CodeAdapter: it renders text completely
// unstyled and offers no completions. Real lexer/completion bindings are a
// host concern (spec §1's Out Of Scope collaborators).
type PlainTextTokenizer struct{}

func (PlainTextTokenizer) Tokenize(text string) []screen.StyledText {
	if text == "" {
		return nil
	}
	return []screen.StyledText{{Text: text}}
}

func (PlainTextTokenizer) Complete(document.Document) []editbuffer.Completion { return nil }

// WordListCompleter is the reference completion oracle: it offers every
// word in Words whose prefix matches the token the cursor sits in.
type WordListCompleter struct {
	Words []string
}

func (w WordListCompleter) Tokenize(text string) []screen.StyledText {
	return PlainTextTokenizer{}.Tokenize(text)
}

func (w WordListCompleter) Complete(doc document.Document) []editbuffer.Completion {
	before := doc.TextBeforeCursor()
	start := strings.LastIndexAny(before, " \t\n")
	prefix := before[start+1:]
	if prefix == "" {
		return nil
	}

	var out []editbuffer.Completion
	for _, word := range w.Words {
		if strings.HasPrefix(word, prefix) && word != prefix {
			out = append(out, editbuffer.Completion{Display: word, Suffix: word[len(prefix):]})
		}
	}
	return out
}

// DefaultPrompt is the reference Prompt adapter: a static "> " prompt, a
// dotted continuation prefix as wide as the prompt, a readline-style
// isearch banner, and an arg-count
// toolbar mirroring Emacs's "(arg: N)" display.
type DefaultPrompt struct {
	Text string
}

func NewDefaultPrompt(text string) DefaultPrompt {
	if text == "" {
		text = "> "
	}
	return DefaultPrompt{Text: text}
}

func (p DefaultPrompt) Prompt() []screen.StyledText {
	return []screen.StyledText{{Text: p.Text}}
}

func (p DefaultPrompt) SecondLinePrefix() []screen.StyledText {
	return []screen.StyledText{{Text: strings.Repeat(".", len(p.Text)-1) + " "}}
}

func (p DefaultPrompt) IsearchPrompt(state *editbuffer.IsearchState) []screen.StyledText {
	if state == nil {
		return p.Prompt()
	}
	dir := "reverse-i-search"
	if state.Direction == editbuffer.SearchForward {
		dir = "i-search"
	}
	return []screen.StyledText{{Text: "(" + dir + ")`" + state.Pattern + "': "}}
}

func (p DefaultPrompt) ArgPrompt(text string) []screen.StyledText {
	if text == "" {
		return nil
	}
	return []screen.StyledText{{Text: "(arg: " + text + ") "}}
}

func (p DefaultPrompt) HelpTokens() []screen.StyledText { return nil }
