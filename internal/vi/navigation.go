package vi

import (
	"strconv"
	"strings"

	"github.com/havocrow/lined/internal/editbuffer"
)

// navigationChar feeds one rune to the active navigation handle table,
// mirroring ViInputStreamHandler's insert_char-in-NAVIGATION branch: digits
// accumulate an argument count, a full match fires and resets the table, a
// partial prefix match narrows it, and anything else resets to the full set.
func (h *Handler) navigationChar(r rune) {
	if isArgDigit(r, h.argCount) {
		h.appendArgDigit(r)
		return
	}

	key := string(r)

	if fn, ok := h.currentHandles[key]; ok {
		arg := h.arg()
		h.clearArg()
		fn(h, arg)
		h.currentHandles = h.allHandles
		return
	}

	narrowed := make(map[string]navFunc)
	for k, fn := range h.currentHandles {
		if strings.HasPrefix(k, key) && len(k) > len(key) {
			narrowed[k[len(key):]] = fn
		}
	}
	if len(narrowed) > 0 {
		h.currentHandles = narrowed
	} else {
		h.currentHandles = h.allHandles
	}
}

func isArgDigit(r rune, current *int) bool {
	if r >= '1' && r <= '9' {
		return true
	}
	return r == '0' && current != nil
}

func (h *Handler) appendArgDigit(r rune) {
	v := 0
	if h.argCount != nil {
		v = *h.argCount
	}
	v = v*10 + int(r-'0')
	if v >= 1000000 {
		h.clearArg()
		return
	}
	h.argCount = &v
	h.line.SetArgPrompt(strconv.Itoa(v))
}

// buildNavigationHandles constructs the Navigation-mode command table,
// grounded in ViInputStreamHandler._get_navigation_mode_handles. Keys marked
// TODO in that source (F, G, n, N, +, -, {}, >>, <<, |, /, ?, yw, cc/S, T,
// alt-case searches) have no observable effect there either, so they're
// simply absent here rather than reimplemented as no-ops.
func buildNavigationHandles() map[string]navFunc {
	h := map[string]navFunc{}

	h["a"] = func(h *Handler, arg int) { h.mode = Insert; h.line.CursorRight() }
	h["A"] = func(h *Handler, arg int) { h.mode = Insert; h.line.CursorToEndOfLine() }
	h["b"] = repeatMotion((*editbuffer.Line).CursorWordBack)
	h["B"] = repeatMotion((*editbuffer.Line).CursorWordBack)
	h["C"] = killToEndOfLineAndInsert
	h["c$"] = killToEndOfLineAndInsert
	h["cw"] = changeWord
	h["ce"] = changeWord
	h["D"] = func(h *Handler, arg int) {
		h.line.SetClipboard(editbuffer.ClipboardData{Text: h.line.DeleteUntilEndOfLine(), Type: editbuffer.Characters})
	}
	h["d$"] = h["D"]
	h["dd"] = deleteLines
	h["dw"] = deleteWords
	h["e"] = func(h *Handler, arg int) { h.line.CursorToEndOfWord() }
	h["E"] = h["e"]
	h["f"] = func(h *Handler, arg int) {
		h.oneCharCallback = func(ch rune) {
			for i := 0; i < arg; i++ {
				h.line.GoToCharacterInLine(ch)
			}
		}
	}
	h["h"] = repeatMotion((*editbuffer.Line).CursorLeft)
	h["H"] = func(h *Handler, arg int) { h.line.CursorPosition = 0 }
	h["i"] = func(h *Handler, arg int) { h.mode = Insert }
	h["I"] = func(h *Handler, arg int) { h.mode = Insert; h.line.CursorToStartOfLine(false) }
	h["j"] = repeatMotion((*editbuffer.Line).AutoDown)
	h["J"] = func(h *Handler, arg int) { h.line.JoinNextLine() }
	h["k"] = repeatMotion((*editbuffer.Line).AutoUp)
	h["l"] = repeatMotion((*editbuffer.Line).CursorRight)
	h[" "] = h["l"]
	h["L"] = func(h *Handler, arg int) { h.line.CursorPosition = len(h.line.Text) }
	h["p"] = repeatMotion(func(l *editbuffer.Line) { l.PasteFromClipboard(false) })
	h["P"] = repeatMotion(func(l *editbuffer.Line) { l.PasteFromClipboard(true) })
	h["r"] = func(h *Handler, arg int) {
		h.oneCharCallback = func(ch rune) {
			h.line.InsertText(strings.Repeat(string(ch), arg), true, false)
		}
	}
	h["R"] = func(h *Handler, arg int) { h.mode = Replace }
	h["s"] = func(h *Handler, arg int) {
		var removed strings.Builder
		for i := 0; i < arg; i++ {
			removed.WriteString(h.line.Delete())
		}
		h.line.SetClipboard(editbuffer.ClipboardData{Text: removed.String(), Type: editbuffer.Characters})
		h.mode = Insert
	}
	h["t"] = func(h *Handler, arg int) {
		h.oneCharCallback = func(ch rune) {
			for i := 0; i < arg; i++ {
				h.line.GoToCharacterInLine(ch)
			}
			h.line.CursorLeft()
		}
	}
	h["u"] = repeatMotion((*editbuffer.Line).Undo)
	h["w"] = repeatMotion((*editbuffer.Line).CursorWordForward)
	h["W"] = h["w"]
	h["x"] = func(h *Handler, arg int) {
		var removed strings.Builder
		for i := 0; i < arg; i++ {
			removed.WriteString(h.line.Delete())
		}
		h.line.SetClipboard(editbuffer.ClipboardData{Text: removed.String(), Type: editbuffer.Characters})
	}
	h["X"] = func(h *Handler, arg int) { h.line.DeleteCharacterBeforeCursor() }
	h["yy"] = yankLines
	h["^"] = func(h *Handler, arg int) { h.line.CursorToStartOfLine(true) }
	h["0"] = func(h *Handler, arg int) { h.line.CursorToStartOfLine(false) }
	h["$"] = func(h *Handler, arg int) { h.line.CursorToEndOfLine() }
	h["%"] = func(h *Handler, arg int) { h.line.GoToMatchingBracket() }
	h["O"] = func(h *Handler, arg int) { h.line.InsertLineAbove(); h.mode = Insert }
	h["o"] = func(h *Handler, arg int) { h.line.InsertLineBelow(); h.mode = Insert }
	h["~"] = func(h *Handler, arg int) {
		c := h.line.Document().CurrentChar()
		if c != "" && c != "\n" {
			h.line.InsertText(swapCase(c), true, false)
		}
	}

	return h
}

func repeatMotion(fn func(l *editbuffer.Line)) navFunc {
	return func(h *Handler, arg int) {
		for i := 0; i < arg; i++ {
			fn(h.line)
		}
	}
}

func killToEndOfLineAndInsert(h *Handler, arg int) {
	h.line.SetClipboard(editbuffer.ClipboardData{Text: h.line.DeleteUntilEndOfLine(), Type: editbuffer.Characters})
	h.mode = Insert
}

func changeWord(h *Handler, arg int) {
	var removed strings.Builder
	for i := 0; i < arg; i++ {
		removed.WriteString(h.line.DeleteWord())
	}
	h.line.SetClipboard(editbuffer.ClipboardData{Text: removed.String(), Type: editbuffer.Characters})
	h.mode = Insert
}

func deleteWords(h *Handler, arg int) {
	var removed strings.Builder
	for i := 0; i < arg; i++ {
		removed.WriteString(h.line.DeleteWord())
	}
	h.line.SetClipboard(editbuffer.ClipboardData{Text: removed.String(), Type: editbuffer.Characters})
}

func deleteLines(h *Handler, arg int) {
	lines := make([]string, 0, arg)
	for i := 0; i < arg; i++ {
		lines = append(lines, h.line.DeleteCurrentLine())
	}
	h.line.SetClipboard(editbuffer.ClipboardData{Text: strings.Join(lines, "\n"), Type: editbuffer.Lines})
}

func yankLines(h *Handler, arg int) {
	doc := h.line.Document()
	lines := doc.Lines()
	row := doc.CursorRow()
	end := row + arg
	if end > len(lines) {
		end = len(lines)
	}
	text := strings.Join(lines[row:end], "\n")
	h.line.SetClipboard(editbuffer.ClipboardData{Text: text, Type: editbuffer.Lines})
}

func swapCase(s string) string {
	r := []rune(s)
	for i, c := range r {
		switch {
		case c >= 'a' && c <= 'z':
			r[i] = c - ('a' - 'A')
		case c >= 'A' && c <= 'Z':
			r[i] = c + ('a' - 'A')
		}
	}
	return string(r)
}
