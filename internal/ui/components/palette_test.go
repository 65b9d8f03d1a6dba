// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/mdcheat/internal/commands"
)

func testRegistry() *commands.Registry {
	r := commands.NewRegistry()
	r.Register(&commands.Command{ID: "markdown-cheatsheet.show", Title: "Markdown: Show Cheatsheet", Category: "Markdown", Keys: []string{"ctrl+k"}})
	r.Register(&commands.Command{ID: "workbench.quit", Title: "Quit", Category: "Workbench", Keys: []string{"ctrl+q"}})
	r.Register(&commands.Command{ID: "workbench.closePanel", Title: "Close Panel", Category: "Workbench"})
	return r
}

func typeText(cp *CommandPalette, s string) {
	cp.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestPaletteShowsAllCommands(t *testing.T) {
	cp := NewCommandPalette(testRegistry())
	cp.Show()

	assert.True(t, cp.IsVisible())
	assert.Len(t, cp.Filtered(), 3)
}

func TestPaletteFiltersAndExecutes(t *testing.T) {
	cp := NewCommandPalette(testRegistry())
	cp.Show()

	typeText(cp, "cheat")
	require.Equal(t, []string{"markdown-cheatsheet.show"}, cp.Filtered())

	_, cmd := cp.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, commands.ExecuteMsg{ID: "markdown-cheatsheet.show"}, cmd())
	assert.False(t, cp.IsVisible())
}

func TestPaletteRecentFirst(t *testing.T) {
	cp := NewCommandPalette(testRegistry())
	cp.Show()
	typeText(cp, "quit")
	cp.Update(tea.KeyMsg{Type: tea.KeyEnter})

	cp.Show()
	assert.Equal(t, "workbench.quit", cp.Filtered()[0])
	assert.Contains(t, cp.View(), "Quit *")
}

func TestPaletteNavigationWraps(t *testing.T) {
	cp := NewCommandPalette(testRegistry())
	cp.Show()

	cp.Update(tea.KeyMsg{Type: tea.KeyUp})
	last := cp.Selected()
	require.NotNil(t, last)
	assert.Equal(t, cp.Filtered()[2], last.ID)

	cp.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, cp.Filtered()[0], cp.Selected().ID)
}

func TestPaletteNoMatch(t *testing.T) {
	cp := NewCommandPalette(testRegistry())
	cp.Show()
	typeText(cp, "zzzz")

	assert.Empty(t, cp.Filtered())
	assert.Nil(t, cp.Selected())
	assert.True(t, strings.Contains(cp.View(), "No matching commands"))

	_, cmd := cp.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestPaletteEscHides(t *testing.T) {
	cp := NewCommandPalette(testRegistry())
	cp.Show()
	cp.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, cp.IsVisible())
	assert.Empty(t, cp.View())
}

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		query, target string
		want          bool
	}{
		{"", "anything", true},
		{"msc", "Markdown: Show Cheatsheet", true},
		{"qt", "Quit", true},
		{"xyz", "Quit", false},
		{"quitt", "Quit", false},
	}
	for _, tc := range tests {
		if _, got := FuzzyMatch(tc.query, tc.target); got != tc.want {
			t.Errorf("FuzzyMatch(%q, %q) = %v, want %v", tc.query, tc.target, got, tc.want)
		}
	}

	prefix, _ := FuzzyMatch("qu", "Quit")
	scattered, _ := FuzzyMatch("qt", "Quit")
	if prefix <= scattered {
		t.Errorf("consecutive prefix score %d should beat scattered %d", prefix, scattered)
	}
}
