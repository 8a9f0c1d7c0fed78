package inputstream

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodesPlainChar(t *testing.T) {
	d := New(bytes.NewReader([]byte("a")))
	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, KindChar, ev.Kind)
	assert.Equal(t, 'a', ev.Char)
}

func TestDecodesMultibyteRune(t *testing.T) {
	d := New(bytes.NewReader([]byte("世")))
	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, KindChar, ev.Kind)
	assert.Equal(t, '世', ev.Char)
}

func TestDecodesCtrlKey(t *testing.T) {
	d := New(bytes.NewReader([]byte{1})) // Ctrl+A
	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, KindKey, ev.Kind)
	assert.Equal(t, "ctrl_a", ev.Name)
}

func TestDecodesLoneEscapeAtEOF(t *testing.T) {
	d := New(bytes.NewReader([]byte{0x1B}))
	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, KeyEscape, ev.Name)
}

func TestDecodesArrowKeys(t *testing.T) {
	d := New(bytes.NewReader([]byte{0x1B, '[', 'A', 0x1B, '[', 'B', 0x1B, '[', 'C', 0x1B, '[', 'D'}))

	names := []string{}
	for i := 0; i < 4; i++ {
		ev, err := d.Next()
		require.NoError(t, err)
		names = append(names, ev.Name)
	}
	assert.Equal(t, []string{KeyUp, KeyDown, KeyRight, KeyLeft}, names)
}

func TestDecodesDeleteViaTilde(t *testing.T) {
	d := New(bytes.NewReader([]byte{0x1B, '[', '3', '~'}))
	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, KeyDelete, ev.Name)
}

func TestDecodesSS3FunctionKeys(t *testing.T) {
	d := New(bytes.NewReader([]byte{0x1B, 'O', 'P'}))
	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, "F1", ev.Name)
}

func TestEscapeFollowedByOtherByteSplitsIntoTwoEvents(t *testing.T) {
	d := New(bytes.NewReader([]byte{0x1B, 'x'}))

	ev1, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, KeyEscape, ev1.Name)

	ev2, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, KindChar, ev2.Kind)
	assert.Equal(t, 'x', ev2.Char)
}

func TestUnrecognizedCSIIsDroppedNotDelivered(t *testing.T) {
	// ESC [ Z (unrecognized final byte) followed by a real char.
	d := New(bytes.NewReader([]byte{0x1B, '[', 'Z', 'q'}))
	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, KindChar, ev.Kind)
	assert.Equal(t, 'q', ev.Char)
}

func TestEnterAndTabAndBackspace(t *testing.T) {
	d := New(bytes.NewReader([]byte{0x0D, 0x09, 0x7F}))

	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, KeyEnter, ev.Name)

	ev, err = d.Next()
	require.NoError(t, err)
	assert.Equal(t, KeyTab, ev.Name)

	ev, err = d.Next()
	require.NoError(t, err)
	assert.Equal(t, KeyBackspace, ev.Name)
}
