package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClampsCursor(t *testing.T) {
	d := New("hello", -3)
	assert.Equal(t, 0, d.CursorPosition)

	d = New("hello", 99)
	assert.Equal(t, 5, d.CursorPosition)
}

func TestCursorRowCol(t *testing.T) {
	d := New("foo\nbar\nbaz", 5)
	assert.Equal(t, 1, d.CursorRow())
	assert.Equal(t, 1, d.CursorCol())
	assert.Equal(t, "bar", d.CurrentLine())
}

func TestCurrentLineSplits(t *testing.T) {
	d := New("abcdef", 3)
	assert.Equal(t, "abc", d.CurrentLineBeforeCursor())
	assert.Equal(t, "def", d.CurrentLineAfterCursor())
}

func TestCurrentCharAndAtEnd(t *testing.T) {
	d := New("abc", 1)
	assert.Equal(t, "b", d.CurrentChar())
	assert.False(t, d.AtEnd())

	d = New("abc", 3)
	assert.Equal(t, "", d.CurrentChar())
	assert.True(t, d.AtEnd())
}

func TestFindNextWordStartTreatsPunctuationAsOwnClass(t *testing.T) {
	d := New("foo.bar baz", 0)
	// "foo" -> "." is a boundary into punctuation class
	offset := d.FindNextWordStart()
	assert.Equal(t, 3, offset, "foo|.bar baz: next word start is the '.'")

	d = New("foo.bar baz", 3)
	offset = d.FindNextWordStart()
	assert.Equal(t, 1, offset, ".|bar baz: next word start is 'b'")

	d = New("foo.bar baz", 4)
	offset = d.FindNextWordStart()
	assert.Equal(t, 4, offset, "bar| baz: skips 'bar' then the space")
}

func TestFindNextBigWordStartOnlyRespectsWhitespace(t *testing.T) {
	d := New("foo.bar baz", 0)
	offset := d.FindNextBigWordStart()
	assert.Equal(t, 8, offset, "foo.bar is one WORD; next WORD starts after the space")
}

func TestFindPreviousWordStart(t *testing.T) {
	d := New("foo.bar baz", 7)
	offset := d.FindPreviousWordStart()
	assert.Equal(t, -3, offset, "cursor after 'bar': previous word start is 'b' in bar")

	d = New("foo.bar baz", 4)
	offset = d.FindPreviousWordStart()
	assert.Equal(t, -1, offset, "cursor at 'b' of bar: previous word start is the '.'")
}

func TestFindPreviousBigWordStart(t *testing.T) {
	d := New("foo.bar baz", 11)
	offset := d.FindPreviousBigWordStart()
	assert.Equal(t, -3, offset, "cursor after baz: previous WORD start is the 'b' of baz")
}

func TestFindEndOfCurrentWord(t *testing.T) {
	d := New("foo.bar baz", 0)
	offset := d.FindEndOfCurrentWord()
	assert.Equal(t, 2, offset, "end of 'foo' is index 2 relative to cursor")
}

func TestFindEndOfCurrentBigWord(t *testing.T) {
	d := New("foo.bar baz", 0)
	offset := d.FindEndOfCurrentBigWord()
	assert.Equal(t, 6, offset, "end of WORD 'foo.bar' is index 6 relative to cursor")
}

func TestGetFollowingWords(t *testing.T) {
	d := New("foo.bar baz qux", 0)
	span := d.GetFollowingWords(2, false)
	assert.Equal(t, "foo.", span, "two lowercase-family tokens: 'foo' then the punctuation token '.'")
}

func TestLinesSplitsOnNewline(t *testing.T) {
	d := New("a\nb\nc", 0)
	assert.Equal(t, []string{"a", "b", "c"}, d.Lines())
}
