package document

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHistoryEmpty(t *testing.T) {
	h := NewHistory()
	assert.Equal(t, 0, h.Len())
}

func TestHistoryAppendInMemory(t *testing.T) {
	h := NewHistory()
	require.NoError(t, h.Append("first"))
	require.NoError(t, h.Append("second"))
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, "first", h.At(0))
	assert.Equal(t, "second", h.At(1))
}

func TestFileHistoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	h, err := NewFileHistory(path)
	require.NoError(t, err)
	require.NoError(t, h.Append("echo hello"))
	require.NoError(t, h.Append("multi\nline"))

	reloaded, err := NewFileHistory(path)
	require.NoError(t, err)
	require.Equal(t, 2, reloaded.Len())
	assert.Equal(t, "echo hello", reloaded.At(0))
	assert.Equal(t, "multi\nline", reloaded.At(1))
}

func TestFileHistoryMissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist")
	h, err := NewFileHistory(path)
	require.NoError(t, err)
	assert.Equal(t, 0, h.Len())
}

func TestSearchBackwardAndForward(t *testing.T) {
	h := NewHistory()
	require.NoError(t, h.Append("git status"))
	require.NoError(t, h.Append("git commit"))
	require.NoError(t, h.Append("ls -la"))

	idx := h.SearchBackward(2, "git")
	assert.Equal(t, 1, idx)

	idx = h.SearchForward(0, "ls")
	assert.Equal(t, 2, idx)

	idx = h.SearchBackward(2, "nomatch")
	assert.Equal(t, -1, idx)
}

func TestContains(t *testing.T) {
	h := NewHistory()
	require.NoError(t, h.Append("find the needle here"))
	assert.True(t, h.Contains(0, "needle"))
	assert.False(t, h.Contains(0, "haystack"))
}
