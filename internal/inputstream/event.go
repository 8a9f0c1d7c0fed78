// Package inputstream decodes a raw terminal byte stream into a sequence of
// key events: named keys (arrows, function keys, control combinations) and
// plain printable runes, recognizing the VT100/xterm CSI escape-sequence
// subset along a small table-driven automaton.
package inputstream

// EventKind distinguishes a named key from a plain printable rune.
type EventKind int

const (
	KindKey EventKind = iota
	KindChar
)

// Event is one decoded input event: either a named Key (e.g. "ctrl_a",
// "arrow_left", "F1") or a literal Char rune.
type Event struct {
	Kind EventKind
	Name string // valid when Kind == KindKey
	Char rune   // valid when Kind == KindChar
}

func keyEvent(name string) Event { return Event{Kind: KindKey, Name: name} }
func charEvent(r rune) Event     { return Event{Kind: KindChar, Char: r} }

// Named keys emitted by the decoder.
const (
	KeyEscape    = "escape"
	KeyEnter     = "enter"
	KeyTab       = "tab"
	KeyBackspace = "backspace"
	KeyDelete    = "delete"
	KeyHome      = "home"
	KeyEnd       = "end"
	KeyPageUp    = "page_up"
	KeyPageDown  = "page_down"
	KeyUp        = "arrow_up"
	KeyDown      = "arrow_down"
	KeyLeft      = "arrow_left"
	KeyRight     = "arrow_right"
)

func ctrlKeyName(b byte) string {
	switch b {
	case 0x1F:
		return "ctrl_underscore"
	case 0x09:
		return KeyTab
	case 0x0D:
		return KeyEnter
	case 0x7F:
		return KeyBackspace
	}
	if b >= 1 && b <= 26 {
		return "ctrl_" + string(rune('a'+b-1))
	}
	return ""
}

func fnKeyName(n int) string {
	switch n {
	case 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12:
		digits := "0123456789"
		tens, ones := n/10, n%10
		if tens == 0 {
			return "F" + string(digits[ones])
		}
		return "F" + string(digits[tens]) + string(digits[ones])
	}
	return ""
}
