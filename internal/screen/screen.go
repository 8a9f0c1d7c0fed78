package screen

import (
	"strings"

	"github.com/havocrow/lined/internal/wcwidth"
)

// Cell is one rendered terminal cell. An empty Glyph marks the trailing
// half of a double-width glyph written into the preceding cell; it is
// skipped during serialization but keeps column indices aligned with the
// screen's physical width.
type Cell struct {
	Glyph string
	Style Style
}

// Screen is a virtual 2-D grid of styled cells built fresh for one paint,
// together with the map from logical input coordinates to the physical
// cell they landed in after wrapping and prefix insertion.
type Screen struct {
	width int
	rows  map[int][]Cell

	y, x int // current write position

	secondLinePrefix func() []StyledText

	inputToScreen      map[[2]int][2]int
	inputRow, inputCol int

	savedY, savedX int
}

// New returns an empty screen width columns wide.
func New(width int) *Screen {
	if width <= 0 {
		width = 80
	}
	return &Screen{
		width:         width,
		rows:          map[int][]Cell{},
		inputToScreen: map[[2]int][2]int{},
	}
}

// SetSecondLinePrefix installs fn as the token stream written at the start
// of every row that input text wraps or breaks onto. A nil fn clears it.
func (s *Screen) SetSecondLinePrefix(fn func() []StyledText) {
	s.secondLinePrefix = fn
}

// WriteHighlighted writes tokens at the current position. When isInput is
// true, the logical input coordinate of every written cell is recorded in
// the input-to-screen map before the cell itself is written.
func (s *Screen) WriteHighlighted(tokens []StyledText, isInput bool) {
	for _, tok := range tokens {
		for _, r := range tok.Text {
			if r == '\n' {
				s.newline(isInput)
				continue
			}
			s.writeRune(r, tok.Style, isInput)
		}
	}
}

// newline handles an explicit line break in the text: it advances the
// logical input coordinate (when isInput) as well as the screen position,
// since it starts a genuinely new document line.
func (s *Screen) newline(isInput bool) {
	s.wrapRow()
	if isInput {
		s.inputRow++
		s.inputCol = 0
	}
}

// wrapRow advances only the physical screen position, for when a line
// wraps because it hit the right margin. The logical input coordinate is
// untouched: callers still look cells up by the document's (row, col), not
// by which wrapped screen row they ended up on.
func (s *Screen) wrapRow() {
	s.y++
	s.x = 0
	if s.secondLinePrefix != nil {
		s.WriteHighlighted(s.secondLinePrefix(), false)
	}
}

func (s *Screen) writeRune(r rune, style Style, isInput bool) {
	w := wcwidth.Rune(r)
	if w == 0 {
		s.appendCombining(r)
		return
	}
	if s.x+w > s.width {
		s.wrapRow()
	}

	if isInput {
		s.inputToScreen[[2]int{s.inputRow, s.inputCol}] = [2]int{s.y, s.x}
	}

	row := s.growRow(s.y, s.x+w)
	row[s.x] = Cell{Glyph: string(r), Style: style}
	if w == 2 {
		row[s.x+1] = Cell{Glyph: "", Style: style}
	}
	s.rows[s.y] = row

	s.x += w
	if isInput {
		s.inputCol++
	}
}

// appendCombining attaches a zero-width rune (combining mark, variation
// selector, ZWJ) to the glyph immediately before the write cursor, rather
// than occupying a cell of its own.
func (s *Screen) appendCombining(r rune) {
	row := s.rows[s.y]
	if len(row) == 0 || s.x == 0 {
		return
	}
	row[s.x-1].Glyph += string(r)
}

func (s *Screen) growRow(row, minLen int) []Cell {
	r := s.rows[row]
	for len(r) < minLen {
		r = append(r, Cell{Glyph: " "})
	}
	return r
}

// HighlightLine underlines every cell currently in row, marking it as the
// active line.
func (s *Screen) HighlightLine(row int) {
	cells := s.rows[row]
	for i := range cells {
		cells[i].Style.Underline = true
	}
}

// HighlightCharacter overrides the color of the cell at (row, col). A nil
// fg or bg leaves that channel untouched.
func (s *Screen) HighlightCharacter(row, col int, fg, bg *RGB) {
	cells := s.rows[row]
	if col < 0 || col >= len(cells) {
		return
	}
	if fg != nil {
		cells[col].Style.FG = fg
	}
	if bg != nil {
		cells[col].Style.BG = bg
	}
}

// SaveInputPos records the current write position, marking the end of the
// input region for callers that need to resume writing after it (e.g. to
// clear or overwrite a stale toolbar).
func (s *Screen) SaveInputPos() {
	s.savedY, s.savedX = s.y, s.x
}

// SavedPos returns the position last recorded by SaveInputPos, used as the
// cursor's resting place when it sits just past the last written input
// cell (end of line) rather than on top of one.
func (s *Screen) SavedPos() (int, int) { return s.savedY, s.savedX }

// CursorScreenPos looks up the physical screen cell an input coordinate
// (row, col) was written to.
func (s *Screen) CursorScreenPos(row, col int) (screenRow, screenCol int, ok bool) {
	v, ok := s.inputToScreen[[2]int{row, col}]
	return v[0], v[1], ok
}

// EndPos returns the write cursor's final screen position.
func (s *Screen) EndPos() (int, int) { return s.y, s.x }

// RowCount returns one past the highest row index written to.
func (s *Screen) RowCount() int {
	max := 0
	for r := range s.rows {
		if r+1 > max {
			max = r + 1
		}
	}
	return max
}

// MarkAborted restyles every cell on the screen with Aborted, graying out
// the whole paint once the line has been accepted or cancelled.
func (s *Screen) MarkAborted() {
	for row := range s.rows {
		for i := range s.rows[row] {
			s.rows[row][i].Style = Aborted
		}
	}
}

// Output serializes the screen row by row with CRLF separators, calling
// colorIndex to translate any RGB color into a 256-palette SGR code.
func (s *Screen) Output(colorIndex func(RGB) uint8) string {
	var sb strings.Builder
	rows := s.RowCount()

	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteString(CRLF)
		}
		writeRowCells(&sb, s.rows[row], colorIndex)
	}
	return sb.String()
}

var zeroStyle Style

func writeRowCells(sb *strings.Builder, cells []Cell, colorIndex func(RGB) uint8) {
	var current Style
	started := false
	styled := false

	for _, c := range cells {
		if c.Glyph == "" {
			continue
		}
		if !started || !current.equal(c.Style) {
			if styled {
				sb.WriteString(Reset)
				styled = false
			}
			if !c.Style.equal(zeroStyle) {
				sb.WriteString(styleEscapes(c.Style, colorIndex))
				styled = true
			}
			current = c.Style
			started = true
		}
		sb.WriteString(c.Glyph)
	}
	if styled {
		sb.WriteString(Reset)
	}
}

func styleEscapes(st Style, colorIndex func(RGB) uint8) string {
	var sb strings.Builder
	if st.FG != nil {
		sb.WriteString(FGEscape(colorIndex(*st.FG)))
	}
	if st.BG != nil {
		sb.WriteString(BGEscape(colorIndex(*st.BG)))
	}
	if st.Bold {
		sb.WriteString(BoldOn)
	}
	if st.Underline {
		sb.WriteString(UnderlineOn)
	}
	return sb.String()
}
