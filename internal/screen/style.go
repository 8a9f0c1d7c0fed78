// Package screen implements the virtual screen and its renderer: a dense
// grid of styled cells built fresh each tick from prompt/code/help token
// streams, with an explicit map from logical input coordinates to the
// physical screen cell they landed in after wrapping and prefix insertion.
package screen

// RGB is an 8-bit-per-channel color triple, or nil for "use terminal default".
type RGB struct {
	R, G, B uint8
}

// Style is the paint applied to one cell: foreground/background color plus
// bold/underline attributes. A nil color leaves that channel at the
// terminal's default.
type Style struct {
	FG        *RGB
	BG        *RGB
	Bold      bool
	Underline bool
}

// Aborted is the style every cell is repainted with once the line has been
// accepted or aborted, graying out the whole rendered line.
var Aborted = Style{FG: &RGB{R: 0x80, G: 0x80, B: 0x80}}

// StyledText is one token in a token stream: a run of text sharing one
// style, as produced by a Prompt or CodeTokenizer adapter.
type StyledText struct {
	Text  string
	Style Style
}

func (a Style) equal(b Style) bool {
	return rgbEqual(a.FG, b.FG) && rgbEqual(a.BG, b.BG) && a.Bold == b.Bold && a.Underline == b.Underline
}

func rgbEqual(a, b *RGB) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
