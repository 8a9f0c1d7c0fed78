package main

import (
	"strings"
	"testing"

	"github.com/havocrow/lined/internal/document"
	"github.com/havocrow/lined/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedPicker struct {
	line     string
	canceled bool
	err      error
}

func (p scriptedPicker) Input(string) (string, bool, error) { return p.line, p.canceled, p.err }
func (p scriptedPicker) Select(string, []string, string) (int, bool, error) {
	return -1, p.canceled, p.err
}
func (p scriptedPicker) Confirm(string) (bool, bool, error) { return false, p.canceled, p.err }

func TestBrowseHistoryPrintsSelectedEntry(t *testing.T) {
	hist := document.NewHistory()
	_ = hist.Append("git status")
	_ = hist.Append("git commit -m wip")

	var out strings.Builder
	formatter := ui.NewFormatter(&out)

	browseHistory(hist, scriptedPicker{line: "2"}, formatter)

	assert.Contains(t, out.String(), "git commit -m wip")
}

func TestBrowseHistoryOnEmptyHistoryWarnsWithoutPrompting(t *testing.T) {
	hist := document.NewHistory()
	var out strings.Builder
	formatter := ui.NewFormatter(&out)

	browseHistory(hist, scriptedPicker{line: "1"}, formatter)

	assert.Contains(t, out.String(), "history is empty")
}

func TestBrowseHistoryCanceledPickerStopsBeforeParsingInput(t *testing.T) {
	hist := document.NewHistory()
	_ = hist.Append("ls -la")

	var out strings.Builder
	formatter := ui.NewFormatter(&out)

	browseHistory(hist, scriptedPicker{canceled: true}, formatter)

	assert.NotContains(t, out.String(), "not a valid entry")
}

func TestRunConfigGetReadsInteractiveProfile(t *testing.T) {
	err := runConfig([]string{"get", "interactive.profile"})
	require.NoError(t, err)
}

func TestRunConfigRejectsUnknownSubcommand(t *testing.T) {
	err := runConfig([]string{"bogus"})
	assert.Error(t, err)
}

func TestRunConfigGetRequiresExactlyOneKey(t *testing.T) {
	err := runConfig([]string{"get"})
	assert.Error(t, err)
}
