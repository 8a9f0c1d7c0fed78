package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHighlightedPlacesInputCellsAndMapsCoordinates(t *testing.T) {
	s := New(80)
	s.WriteHighlighted([]StyledText{{Text: "> "}}, false)
	s.WriteHighlighted([]StyledText{{Text: "abc"}}, true)

	row, col, ok := s.CursorScreenPos(0, 1)
	require.True(t, ok)
	assert.Equal(t, 0, row)
	assert.Equal(t, 3, col) // "> " occupies columns 0-1, input starts at column 2

	out := s.Output(func(RGB) uint8 { return 0 })
	assert.Equal(t, "> abc", out)
}

func TestWriteHighlightedWrapsAtWidth(t *testing.T) {
	s := New(5)
	s.WriteHighlighted([]StyledText{{Text: "abcdef"}}, true)

	// A mid-line width wrap doesn't advance the logical input row: the
	// coordinate map still keys 'f' by its position in the one logical
	// line, (0, 5), even though it physically lands on screen row 1.
	row, col, ok := s.CursorScreenPos(0, 5)
	require.True(t, ok)
	assert.Equal(t, 1, row)
	assert.Equal(t, 0, col)

	out := s.Output(func(RGB) uint8 { return 0 })
	assert.Equal(t, "abcde\r\nf", out)
}

func TestWriteHighlightedNewlineAdvancesInputRow(t *testing.T) {
	s := New(80)
	s.WriteHighlighted([]StyledText{{Text: "one\ntwo"}}, true)

	row, col, ok := s.CursorScreenPos(1, 0)
	require.True(t, ok)
	assert.Equal(t, 1, row)
	assert.Equal(t, 0, col)

	out := s.Output(func(RGB) uint8 { return 0 })
	assert.Equal(t, "one\r\ntwo", out)
}

func TestSecondLinePrefixWrittenOnEveryWrap(t *testing.T) {
	s := New(80)
	s.SetSecondLinePrefix(func() []StyledText {
		return []StyledText{{Text: ". "}}
	})
	s.WriteHighlighted([]StyledText{{Text: "one\ntwo"}}, true)

	out := s.Output(func(RGB) uint8 { return 0 })
	assert.Equal(t, "one\r\n. two", out)

	row, col, ok := s.CursorScreenPos(1, 0)
	require.True(t, ok)
	assert.Equal(t, 1, row)
	assert.Equal(t, 2, col) // prefix occupies columns 0-1
}

func TestDoubleWidthGlyphOccupiesTwoCellsAndIsNotSplit(t *testing.T) {
	s := New(2)
	s.WriteHighlighted([]StyledText{{Text: "a中bc"}}, true)

	// 'a' fills row 0's only column; 中 needs 2 columns so it cannot share
	// row 0 and must wrap whole rather than splitting across rows.
	out := s.Output(func(RGB) uint8 { return 0 })
	assert.Equal(t, "a\r\n中\r\nbc", out)

	row, col, ok := s.CursorScreenPos(0, 1)
	require.True(t, ok)
	assert.Equal(t, 1, row)
	assert.Equal(t, 0, col)
}

func TestCombiningMarkAttachesToPrecedingCellWithoutAdvancing(t *testing.T) {
	s := New(80)
	text := "e\u0301" // 'e' followed by a combining acute accent
	s.WriteHighlighted([]StyledText{{Text: text}}, true)

	_, col, ok := s.CursorScreenPos(0, 0)
	require.True(t, ok)
	assert.Equal(t, 0, col)

	out := s.Output(func(RGB) uint8 { return 0 })
	assert.Equal(t, text, out)
}

func TestHighlightLineUnderlinesRow(t *testing.T) {
	s := New(80)
	s.WriteHighlighted([]StyledText{{Text: "abc"}}, true)
	s.HighlightLine(0)

	out := s.Output(func(RGB) uint8 { return 7 })
	assert.Contains(t, out, UnderlineOn)
}

func TestMarkAbortedOverridesAllStyles(t *testing.T) {
	s := New(80)
	s.WriteHighlighted([]StyledText{{Text: "abc", Style: Style{Bold: true}}}, true)
	s.MarkAborted()

	out := s.Output(func(c RGB) uint8 {
		assert.Equal(t, *Aborted.FG, c)
		return 244
	})
	assert.Equal(t, FGEscape(244)+"abc"+Reset, out)
}

func TestOutputCoalescesRunsOfIdenticalStyle(t *testing.T) {
	s := New(80)
	bold := Style{Bold: true}
	s.WriteHighlighted([]StyledText{{Text: "ab", Style: bold}, {Text: "cd", Style: bold}}, false)

	out := s.Output(func(RGB) uint8 { return 0 })
	assert.Equal(t, BoldOn+"abcd"+Reset, out)
}
