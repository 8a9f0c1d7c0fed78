package keybindings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "go.yaml.in/yaml/v3"
)

func TestExportDefaultMapProducesParseableStrings(t *testing.T) {
	exp := Export(DefaultKeyBindingMap())
	require.NotEmpty(t, exp.DeleteWord)
	assert.Equal(t, "ctrl+w", exp.DeleteWord[0])
	assert.Equal(t, "ctrl+p", exp.MoveUp[0])
}

func TestExportImportRoundTrip(t *testing.T) {
	original := DefaultKeyBindingMap()
	exp := Export(original)

	imported, err := Import(exp)
	require.NoError(t, err)

	assert.True(t, imported.MatchesKeyStroke("delete_word", NewCtrlKeyStroke('w')))
	assert.True(t, imported.MatchesKeyStroke("move_up", NewCtrlKeyStroke('p')))
	assert.True(t, imported.MatchesKeyStroke("complete", NewTabKeyStroke()))
}

func TestExportMarshalsAsYAML(t *testing.T) {
	exp := Export(DefaultKeyBindingMap())
	out, err := yaml.Marshal(exp)
	require.NoError(t, err)
	assert.Contains(t, string(out), "delete_word:")

	var roundTripped KeybindingExport
	require.NoError(t, yaml.Unmarshal(out, &roundTripped))
	assert.Equal(t, exp.DeleteWord, roundTripped.DeleteWord)
}

func TestImportFallsBackToDefaultForOmittedActions(t *testing.T) {
	exp := KeybindingExport{DeleteWord: []string{"ctrl+w"}}
	km, err := Import(exp)
	require.NoError(t, err)
	assert.True(t, km.MatchesKeyStroke("move_up", NewCtrlKeyStroke('p')), "omitted action keeps the built-in binding")
}

func TestImportRejectsUnparseableKeystroke(t *testing.T) {
	exp := KeybindingExport{Undo: []string{"not-a-real-key"}}
	_, err := Import(exp)
	assert.Error(t, err)
}
