package editor

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/havocrow/lined/internal/document"
	"github.com/havocrow/lined/internal/editbuffer"
	"github.com/havocrow/lined/internal/inputstream"
	"github.com/havocrow/lined/internal/keybindings"
	"github.com/havocrow/lined/internal/screen"
	"github.com/havocrow/lined/internal/termio"
)

// Options configures a CommandLine. FD is the terminal file descriptor used
// for raw-mode acquisition, the bounded lone-ESC pending-input check, and
// SIGINT delivery; a negative FD disables all three (used by tests and by
// non-interactive input).
type Options struct {
	Input    io.Reader
	Output   io.Writer
	Terminal termio.Terminal
	FD       int

	History       *document.History
	Mode          KeyMode
	KeyBindings   *keybindings.ContextualKeyBindingMap
	Tokenizer     CodeAdapter
	PromptAdapter Prompt
	Width         int
	Multiline     bool

	// Debug, if set, receives one line per panic recovered from a
	// misbehaving Tokenizer/PromptAdapter call. Per the propagation
	// policy, only Accept/Abort/Exit cross ReadInput's boundary; a
	// panicking adapter must not wedge the whole session.
	Debug io.Writer
}

// CommandLine is the read loop orchestrator: it owns the terminal descriptor and
// History for as many ReadInput calls as the host makes, constructing a
// fresh Line and key handler for each one.
type CommandLine struct {
	opts     Options
	renderer *screen.Renderer
}

// New returns a CommandLine ready to drive ReadInput, filling in reference
// adapters and sane defaults for any zero-valued Options fields.
func New(opts Options) *CommandLine {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.History == nil {
		opts.History = document.NewHistory()
	}
	if opts.Tokenizer == nil {
		opts.Tokenizer = PlainTextTokenizer{}
	}
	if opts.PromptAdapter == nil {
		opts.PromptAdapter = NewDefaultPrompt("")
	}
	if opts.Width <= 0 {
		opts.Width, _ = termio.Dimensions(opts.Output, 80, 24)
	}
	return &CommandLine{opts: opts, renderer: screen.NewRenderer()}
}

type eventOrErr struct {
	ev  inputstream.Event
	err error
}

// ReadInput drives one logical read: it acquires raw mode, repaints after
// every dispatched event, and returns the accepted text once the handler
// raises ReturnInput. onAbort/onExit decide what happens when the handler
// instead raises Abort or Exit.
func (cl *CommandLine) ReadInput(onAbort AbortAction, onExit ExitAction) (string, error) {
	restore, err := cl.acquireRawMode()
	if err != nil {
		return "", err
	}
	defer restore()

	sigCh := cl.notifyInterrupt()
	if sigCh != nil {
		defer signal.Stop(sigCh)
	}

	decoder := inputstream.New(cl.opts.Input)
	if cl.opts.FD >= 0 {
		fd := cl.opts.FD
		decoder.SetPendingCheck(func() bool {
			n, err := termio.PendingInput(uintptr(fd))
			return err == nil && n > 0
		})
	}
	events := make(chan eventOrErr)
	go pumpEvents(decoder, events)

	for {
		text, outcome, err := cl.readOnce(events, sigCh)
		if err != nil {
			return "", err
		}

		switch outcome {
		case editbuffer.Accept:
			return text, nil
		case editbuffer.Abort:
			switch onAbort {
			case AbortRetry:
				continue
			case AbortReturnEmpty:
				return "", nil
			default:
				return "", ErrAborted
			}
		case editbuffer.Exit:
			switch onExit {
			case ExitIgnore:
				continue
			default:
				return "", ErrExit
			}
		}
	}
}

// readOnce drives a single Line from creation to a terminal outcome
// (Accept, Abort or Exit), repainting after every dispatched event. It
// shares the decoder's event channel across retries so at most one
// goroutine ever reads the underlying input stream.
func (cl *CommandLine) readOnce(events chan eventOrErr, sigCh chan os.Signal) (string, editbuffer.OutcomeKind, error) {
	line := editbuffer.NewLine(cl.opts.History)
	line.SetCompleter(cl.opts.Tokenizer)
	line.Multiline = cl.opts.Multiline
	handler := newHandler(cl.opts.Mode, line, cl.opts.KeyBindings)

	cl.paint(line, false, false)

	for {
		select {
		case <-sigCh:
			outcome := handler.Handle(inputstream.Event{Kind: inputstream.KindKey, Name: "ctrl_c"})
			if done, text, kind := terminalOutcome(outcome); done {
				cl.paint(line, kind == editbuffer.Accept, kind == editbuffer.Abort)
				if kind == editbuffer.Accept {
					_ = cl.opts.History.Append(text)
				}
				return text, kind, nil
			}
			cl.paint(line, false, false)

		case item := <-events:
			if item.err != nil {
				return "", editbuffer.Continue, item.err
			}
			outcome := handler.Handle(item.ev)
			if done, text, kind := terminalOutcome(outcome); done {
				cl.paint(line, kind == editbuffer.Accept, kind == editbuffer.Abort)
				if kind == editbuffer.Accept {
					_ = cl.opts.History.Append(text)
				}
				return text, kind, nil
			}
			cl.paint(line, false, false)
		}
	}
}

func pumpEvents(decoder *inputstream.Decoder, events chan<- eventOrErr) {
	for {
		ev, err := decoder.Next()
		events <- eventOrErr{ev, err}
		if err != nil {
			return
		}
	}
}

func terminalOutcome(outcome editbuffer.DispatchOutcome) (done bool, text string, kind editbuffer.OutcomeKind) {
	switch outcome.Kind {
	case editbuffer.Accept, editbuffer.Abort, editbuffer.Exit:
		return true, outcome.Text, outcome.Kind
	default:
		return false, "", editbuffer.Continue
	}
}

// paint builds a RenderContext from the Line's current state and the wired
// adapters, then hands it to the Renderer. Every adapter call is wrapped in
// panic recovery: tokenization, prompt chrome and completion are host
// collaborators outside this package's control, and the one contract they
// must not violate is wedging the whole read loop.
func (cl *CommandLine) paint(line *editbuffer.Line, accept, abort bool) {
	doc := line.Document()

	ctx := screen.RenderContext{
		Code:      cl.safeTokenize(line.Text),
		Width:     cl.opts.Width,
		CursorRow: doc.CursorRow(),
		CursorCol: runeColumn(doc.CurrentLine(), doc.CursorCol()),
		Accept:    accept,
		Abort:     abort,
	}

	if line.Isearch != nil {
		ctx.Prompt = cl.safeTokens("isearch_prompt", func() []screen.StyledText {
			return cl.opts.PromptAdapter.IsearchPrompt(line.Isearch)
		})
	} else {
		arg := cl.safeTokens("arg_prompt", func() []screen.StyledText {
			return cl.opts.PromptAdapter.ArgPrompt(line.ArgPromptText)
		})
		prompt := cl.safeTokens("prompt", cl.opts.PromptAdapter.Prompt)
		ctx.Prompt = append(arg, prompt...)
	}

	if !accept && !abort {
		ctx.Toolbar = cl.safeTokens("help_tokens", cl.opts.PromptAdapter.HelpTokens)
	}

	out := cl.renderer.Render(ctx)
	_, _ = io.WriteString(cl.opts.Output, out)
}

// safeTokenize runs the Tokenizer, absorbing any panic into a debug log line
// and an empty token stream rather than letting it propagate out of ReadInput.
func (cl *CommandLine) safeTokenize(text string) (tokens []screen.StyledText) {
	defer func() {
		if r := recover(); r != nil {
			cl.logf("tokenizer panic: %v", r)
			tokens = nil
		}
	}()
	return cl.opts.Tokenizer.Tokenize(text)
}

// safeTokens runs one Prompt adapter accessor under the same panic-absorption
// contract as safeTokenize, tagging the debug line with which accessor failed.
func (cl *CommandLine) safeTokens(name string, fn func() []screen.StyledText) (tokens []screen.StyledText) {
	defer func() {
		if r := recover(); r != nil {
			cl.logf("prompt adapter %s panic: %v", name, r)
			tokens = nil
		}
	}()
	return fn()
}

func (cl *CommandLine) logf(format string, args ...any) {
	if cl.opts.Debug == nil {
		return
	}
	_, _ = fmt.Fprintf(cl.opts.Debug, format+"\n", args...)
}

// runeColumn converts a byte offset within line into the rune count
// preceding it, since Screen's input coordinate map counts runes written,
// not bytes.
func runeColumn(line string, byteCol int) int {
	if byteCol > len(line) {
		byteCol = len(line)
	}
	count := 0
	for range line[:byteCol] {
		count++
	}
	return count
}

func (cl *CommandLine) acquireRawMode() (func(), error) {
	if cl.opts.Terminal == nil || cl.opts.FD < 0 {
		return func() {}, nil
	}
	state, err := cl.opts.Terminal.MakeRaw(cl.opts.FD)
	if err != nil {
		return nil, err
	}
	return func() { _ = cl.opts.Terminal.Restore(cl.opts.FD, state) }, nil
}

func (cl *CommandLine) notifyInterrupt() chan os.Signal {
	if cl.opts.FD < 0 {
		return nil
	}
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	return ch
}
