package screen

// RenderContext is everything one paint tick needs: the prompt and code
// token streams, the input cursor's logical position, and the optional
// help/toolbar line shown below the input while it is still being edited.
type RenderContext struct {
	Prompt    []StyledText
	Code      []StyledText
	Toolbar   []StyledText
	Width     int
	CursorRow int
	CursorCol int
	Accept    bool
	Abort     bool
}

// Renderer paints one RenderContext at a time against a real terminal,
// tracking how many lines and which cursor line the previous paint used so
// the next tick can erase exactly that much before repainting. The
// RGB-to-palette-index cache is a field here, not package state, so two
// independently operating Renderers never share or race on it (spec §9:
// no global mutable color-cache singleton).
type Renderer struct {
	linesInUse int
	cursorLine int

	paletteCache map[RGB]uint8
}

// NewRenderer returns a Renderer with no prior paint recorded.
func NewRenderer() *Renderer {
	return &Renderer{paletteCache: map[RGB]uint8{}}
}

func (r *Renderer) colorIndex(c RGB) uint8 {
	if idx, ok := r.paletteCache[c]; ok {
		return idx
	}
	idx := rgbToPaletteIndex(c)
	r.paletteCache[c] = idx
	return idx
}

// Render builds the escape sequence for one paint tick: erase what the
// previous tick left behind, draw the new screen, then move the cursor
// from wherever the draw left it to the input cursor's mapped position.
func (r *Renderer) Render(ctx RenderContext) string {
	var out string

	out += r.prologue()

	scr := New(ctx.Width)
	scr.WriteHighlighted(ctx.Prompt, false)
	scr.WriteHighlighted(ctx.Code, true)
	scr.SaveInputPos()

	if !ctx.Accept && !ctx.Abort && len(ctx.Toolbar) > 0 {
		scr.WriteHighlighted(ctx.Toolbar, false)
	}

	if ctx.Accept || ctx.Abort {
		scr.MarkAborted()
	}

	out += scr.Output(r.colorIndex)

	endRow, endCol := scr.EndPos()

	if ctx.Accept || ctx.Abort {
		out += CRLF
		r.linesInUse = 0
		r.cursorLine = 0
		return out
	}

	savedRow, savedCol := scr.SavedPos()
	out += r.moveCursor(scr, endRow, endCol, savedRow, savedCol, ctx.CursorRow, ctx.CursorCol)

	r.linesInUse = scr.RowCount()
	r.cursorLine = r.findCursorLine(scr, ctx.CursorRow, ctx.CursorCol, savedRow)
	return out
}

// prologue erases the previous paint: move up to the line the cursor was
// left on, return to column 0, then erase everything below.
func (r *Renderer) prologue() string {
	return CursorUp(r.cursorLine) + CarriageReturn + EraseDown
}

func (r *Renderer) moveCursor(scr *Screen, fromRow, fromCol, fallbackRow, fallbackCol, inputRow, inputCol int) string {
	targetRow, targetCol, ok := scr.CursorScreenPos(inputRow, inputCol)
	if !ok {
		targetRow, targetCol = fallbackRow, fallbackCol
	}

	var out string
	if targetRow < fromRow {
		out += CursorUp(fromRow - targetRow)
	} else if targetRow > fromRow {
		out += CursorDown(targetRow - fromRow)
	}

	if targetCol < fromCol {
		out += CursorBackward(fromCol - targetCol)
	} else if targetCol > fromCol {
		out += CursorForward(targetCol - fromCol)
	}

	return out
}

func (r *Renderer) findCursorLine(scr *Screen, inputRow, inputCol, fallbackRow int) int {
	row, _, ok := scr.CursorScreenPos(inputRow, inputCol)
	if !ok {
		return fallbackRow
	}
	return row
}
