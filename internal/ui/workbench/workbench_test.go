// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package workbench

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/mdcheat/internal/cheatsheet"
	"github.com/jeranaias/mdcheat/internal/clipboard"
	"github.com/jeranaias/mdcheat/internal/commands"
	"github.com/jeranaias/mdcheat/internal/config"
	"github.com/jeranaias/mdcheat/internal/extension"
	"github.com/jeranaias/mdcheat/internal/host"
	"github.com/jeranaias/mdcheat/internal/panel"
	"github.com/jeranaias/mdcheat/internal/ui/components"
	"github.com/jeranaias/mdcheat/internal/ui/snippets"
	"github.com/jeranaias/mdcheat/internal/ui/styles"
)

type stubDoc struct {
	msgs   []tea.Msg
	resets int
	w, h   int
}

func (d *stubDoc) Init() tea.Cmd { return nil }
func (d *stubDoc) Update(msg tea.Msg) (host.Document, tea.Cmd) {
	d.msgs = append(d.msgs, msg)
	return d, nil
}
func (d *stubDoc) View() string         { return "stub" }
func (d *stubDoc) SetSize(w, h int)     { d.w, d.h = w, h }
func (d *stubDoc) Reset()               { d.resets++ }
func (d *stubDoc) keys() []tea.KeyMsg   { return filter[tea.KeyMsg](d.msgs) }
func (d *stubDoc) mice() []tea.MouseMsg { return filter[tea.MouseMsg](d.msgs) }

func filter[T any](msgs []tea.Msg) []T {
	var out []T
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

type fixture struct {
	wb   *Model
	ext  *extension.Extension
	clip *clipboard.Memory
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clip := &clipboard.Memory{}
	theme := styles.NewTheme()
	wb := New(Options{
		Theme:     theme,
		Clipboard: clipboard.NewSwitch(clip),
		Placement: host.PlacementBeside,
	})
	ext := extension.Activate(wb.Context(), wb.Registry(), extension.WithTheme(theme))
	wb.Load(ext)
	wb.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return &fixture{wb: wb, ext: ext, clip: clip}
}

func (f *fixture) key(t tea.KeyType) tea.Cmd {
	_, cmd := f.wb.Update(tea.KeyMsg{Type: t})
	return cmd
}

func (f *fixture) typeText(s string) {
	for _, r := range s {
		f.wb.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (f *fixture) cheatsheet(t *testing.T) *snippets.Model {
	t.Helper()
	doc, ok := f.wb.Document(f.wb.ActiveHandle()).(*snippets.Model)
	require.True(t, ok, "active panel is not the cheatsheet")
	return doc
}

// =============================================================================
// PANEL LIFECYCLE
// =============================================================================

func TestShowKeyOpensSinglePanel(t *testing.T) {
	f := newFixture(t)

	f.key(tea.KeyCtrlK)
	require.Equal(t, []string{panel.Title}, f.wb.Panels())
	first := f.wb.ActiveHandle()
	assert.True(t, f.wb.FocusedPanel())

	f.key(tea.KeyCtrlK)
	f.key(tea.KeyCtrlK)
	assert.Equal(t, []string{panel.Title}, f.wb.Panels())
	assert.Equal(t, first, f.wb.ActiveHandle())
	assert.Equal(t, panel.StateShown, f.ext.Controller().State())

	placement, ok := f.wb.Placement(first)
	require.True(t, ok)
	assert.Equal(t, host.PlacementBeside, placement)
}

func TestRevealKeepsQuery(t *testing.T) {
	f := newFixture(t)

	f.key(tea.KeyCtrlK)
	f.typeText("link")
	assert.Equal(t, "link", f.cheatsheet(t).Query())

	f.key(tea.KeyTab)
	assert.False(t, f.wb.FocusedPanel())
	f.key(tea.KeyCtrlK)
	assert.True(t, f.wb.FocusedPanel())
	assert.Equal(t, "link", f.cheatsheet(t).Query())
	assert.Equal(t, 1, f.cheatsheet(t).Visibility().Count())
}

func TestClosePanelReturnsToAbsent(t *testing.T) {
	f := newFixture(t)

	f.key(tea.KeyCtrlK)
	f.key(tea.KeyCtrlW)

	assert.Empty(t, f.wb.Panels())
	assert.False(t, f.wb.FocusedPanel())
	assert.Equal(t, panel.StateAbsent, f.ext.Controller().State())

	f.key(tea.KeyCtrlK)
	assert.Len(t, f.wb.Panels(), 1)
	assert.Equal(t, "", f.cheatsheet(t).Query(), "a new panel starts fresh")
}

func TestCloseIgnoredWhileEditorFocused(t *testing.T) {
	f := newFixture(t)

	f.key(tea.KeyCtrlK)
	f.key(tea.KeyTab)
	f.key(tea.KeyCtrlW)
	assert.Len(t, f.wb.Panels(), 1)
}

func TestToggleColumn(t *testing.T) {
	f := newFixture(t)

	f.key(tea.KeyCtrlK)
	f.typeText("bold")

	f.key(tea.KeyCtrlBackslash)
	assert.True(t, f.wb.ColumnHidden())
	assert.False(t, f.wb.FocusedPanel())
	assert.NotContains(t, f.wb.View(), panel.Title)

	f.key(tea.KeyCtrlBackslash)
	assert.False(t, f.wb.ColumnHidden())
	assert.True(t, f.wb.FocusedPanel())
	assert.Equal(t, "bold", f.cheatsheet(t).Query(), "retained context survives hiding")
}

func TestToggleColumnWithoutPanels(t *testing.T) {
	f := newFixture(t)

	f.key(tea.KeyCtrlBackslash)
	assert.False(t, f.wb.ColumnHidden())
}

func TestPanelWithoutRetainedContextIsReset(t *testing.T) {
	f := newFixture(t)
	doc := &stubDoc{}

	h := f.wb.Create("stub", "Stub", host.PlacementBeside, host.PanelOptions{EnableScripts: true})
	f.wb.SetContent(h, doc)
	assert.Equal(t, 0, doc.resets)

	f.key(tea.KeyCtrlBackslash)
	f.key(tea.KeyCtrlBackslash)
	assert.Equal(t, 1, doc.resets)
}

func TestDisposeFiresListenersOnce(t *testing.T) {
	f := newFixture(t)

	h := f.wb.Create("stub", "Stub", host.PlacementBeside, host.PanelOptions{})
	calls := 0
	f.wb.OnDispose(h, func() { calls++ })
	removed := f.wb.OnDispose(h, func() { t.Error("unsubscribed listener ran") })
	removed.Dispose()

	f.wb.Dispose(h)
	f.wb.Dispose(h)
	assert.Equal(t, 1, calls)
	assert.Empty(t, f.wb.Panels())
}

func TestTabsListEveryPanel(t *testing.T) {
	f := newFixture(t)

	f.key(tea.KeyCtrlK)
	h := f.wb.Create("stub", "Second", host.PlacementBeside, host.PanelOptions{})
	f.wb.SetContent(h, &stubDoc{})

	view := f.wb.View()
	assert.Contains(t, view, panel.Title)
	assert.Contains(t, view, "Second")
	assert.Contains(t, view, "stub")

	f.wb.Dispose(h)
	assert.Equal(t, []string{panel.Title}, f.wb.Panels())
	assert.Equal(t, f.ext.Controller().Handle(), f.wb.ActiveHandle())
}

// =============================================================================
// INPUT ROUTING
// =============================================================================

func TestTabMovesFocus(t *testing.T) {
	f := newFixture(t)

	f.key(tea.KeyCtrlK)
	f.key(tea.KeyTab)
	assert.False(t, f.wb.FocusedPanel())
	f.typeText("# hi")
	assert.Equal(t, "# hi", f.wb.EditorValue())
	assert.Equal(t, "", f.cheatsheet(t).Query())

	f.key(tea.KeyTab)
	assert.True(t, f.wb.FocusedPanel())
}

func TestDocumentWithoutScriptsGetsNoInput(t *testing.T) {
	f := newFixture(t)
	doc := &stubDoc{}

	h := f.wb.Create("stub", "Stub", host.PlacementBeside, host.PanelOptions{})
	f.wb.SetContent(h, doc)
	f.typeText("abc")

	assert.Empty(t, doc.keys())
	assert.Equal(t, "", f.wb.EditorValue())
}

func TestMouseCoordinatesAreLocal(t *testing.T) {
	f := newFixture(t)
	doc := &stubDoc{}

	h := f.wb.Create("stub", "Stub", host.PlacementBeside, host.PanelOptions{EnableScripts: true})
	f.wb.SetContent(h, doc)
	l := f.wb.computeLayout()

	f.wb.Update(tea.MouseMsg{X: l.docX + 2, Y: l.docY + 1, Type: tea.MouseLeft})
	mice := doc.mice()
	require.Len(t, mice, 1)
	assert.Equal(t, 2, mice[0].X)
	assert.Equal(t, 1, mice[0].Y)
	assert.Equal(t, doc.w, l.docW)
	assert.Equal(t, doc.h, l.docH)

	// A click in the editor moves focus there and is not forwarded.
	f.wb.Update(tea.MouseMsg{X: 1, Y: 5, Type: tea.MouseLeft})
	assert.False(t, f.wb.FocusedPanel())
	assert.Len(t, doc.mice(), 1)
}

func TestClickCopiesFromCheatsheet(t *testing.T) {
	f := newFixture(t)

	f.key(tea.KeyCtrlK)
	l := f.wb.computeLayout()

	// Row 0 of the document is the search field, row 1 the separator, row 2
	// the first category title and row 3 the first item.
	_, cmd := f.wb.Update(tea.MouseMsg{X: l.docX + 4, Y: l.docY + 3, Type: tea.MouseLeft})
	require.NotNil(t, cmd)

	item, ok := f.cheatsheet(t).Selected()
	require.True(t, ok)
	assert.Equal(t, "見出し", item.Label)
}

func TestCopyToastRoutedThroughWorkbench(t *testing.T) {
	f := newFixture(t)

	f.key(tea.KeyCtrlK)
	doc := f.cheatsheet(t)
	cmd := doc.Activate(cheatsheet.Ref{Category: 2, Item: 2})
	require.NotNil(t, cmd)
	f.wb.Update(cmd())

	assert.Equal(t, "---", f.clip.Text())
	toast, ok := doc.Toast()
	require.True(t, ok)
	assert.Contains(t, f.wb.View(), snippets.CopiedMessage)

	f.wb.Update(components.ToastExpireMsg{ID: toast.ID})
	_, ok = doc.Toast()
	assert.False(t, ok)
}

func TestLateCopyFromClosedPanelIsDropped(t *testing.T) {
	f := newFixture(t)

	f.key(tea.KeyCtrlK)
	cmd := f.cheatsheet(t).Activate(cheatsheet.Ref{Category: 0, Item: 0})
	require.NotNil(t, cmd)
	msg := cmd()

	f.key(tea.KeyCtrlW)
	require.Equal(t, panel.StateAbsent, f.ext.Controller().State())
	f.key(tea.KeyCtrlK)

	f.wb.Update(msg)
	_, ok := f.cheatsheet(t).Toast()
	assert.False(t, ok, "new panel shows the closed panel's toast")
	assert.NotContains(t, f.wb.View(), snippets.CopiedMessage)
}

func TestAnyTerminalWidthRenders(t *testing.T) {
	f := newFixture(t)
	f.key(tea.KeyCtrlK)

	for w := 0; w <= 60; w++ {
		for _, h := range []int{0, 3, 24} {
			require.NotPanics(t, func() {
				f.wb.Update(tea.WindowSizeMsg{Width: w, Height: h})
				_ = f.wb.View()
			}, "terminal %dx%d", w, h)
		}
	}
}

// =============================================================================
// COMMANDS AND CONFIG
// =============================================================================

func TestExecuteMsgRunsCommand(t *testing.T) {
	f := newFixture(t)

	f.wb.Update(commands.ExecuteMsg{ID: extension.ShowCommand})
	assert.Len(t, f.wb.Panels(), 1)
}

func TestUnknownCommandShowsToast(t *testing.T) {
	f := newFixture(t)

	_, cmd := f.wb.Update(commands.ExecuteMsg{ID: "nope"})
	assert.NotNil(t, cmd)

	toasts := f.wb.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, components.ToastKindError, toasts[0].Kind)
	assert.Contains(t, toasts[0].Message, "nope")

	f.wb.Update(components.ToastExpireMsg{ID: toasts[0].ID})
	assert.Empty(t, f.wb.Toasts())
}

func TestPaletteRunsCommand(t *testing.T) {
	f := newFixture(t)

	f.key(tea.KeyCtrlP)
	f.typeText("show cheat")
	cmd := f.key(tea.KeyEnter)
	require.NotNil(t, cmd)

	// The palette answers with an ExecuteMsg; run it through the loop.
	msg := cmd()
	exec, ok := msg.(commands.ExecuteMsg)
	require.True(t, ok, "palette returned %T", msg)
	f.wb.Update(exec)

	assert.Len(t, f.wb.Panels(), 1)
}

func TestConfigReloadSwapsBackendAndPlacement(t *testing.T) {
	f := newFixture(t)

	cfg := config.Default()
	cfg.Clipboard.Backend = "memory"
	cfg.UI.Placement = "active"
	f.wb.Update(ConfigReloadedMsg{Config: cfg})

	assert.Equal(t, host.PlacementActive, f.wb.Context().Placement)

	f.key(tea.KeyCtrlK)
	placement, _ := f.wb.Placement(f.wb.ActiveHandle())
	assert.Equal(t, host.PlacementActive, placement)
	assert.Equal(t, 0, f.computeEditorWidth())

	// The old backend no longer receives writes.
	cmd := f.cheatsheet(t).Activate(cheatsheet.Ref{Category: 0, Item: 1})
	f.wb.Update(cmd())
	assert.Equal(t, 0, f.clip.Writes())
}

func (f *fixture) computeEditorWidth() int {
	return f.wb.computeLayout().editorW
}

func TestConfigReloadError(t *testing.T) {
	f := newFixture(t)

	f.wb.Update(ConfigReloadedMsg{Err: errors.New("bad toml\nline 2")})
	toasts := f.wb.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, components.ToastKindError, toasts[0].Kind)
	assert.False(t, strings.Contains(toasts[0].Message, "\n"))
}

func TestQuitDeactivates(t *testing.T) {
	f := newFixture(t)

	f.key(tea.KeyCtrlK)
	cmd := f.key(tea.KeyCtrlQ)
	assert.NotNil(t, cmd)

	assert.True(t, f.wb.Quitting())
	assert.Empty(t, f.wb.Panels())
	assert.Nil(t, f.wb.Registry().Get(extension.ShowCommand))
	assert.Equal(t, panel.StateAbsent, f.ext.Controller().State())

	// A second shutdown is a no-op.
	f.wb.Shutdown()
}

func TestViewFitsWindow(t *testing.T) {
	f := newFixture(t)

	f.key(tea.KeyCtrlK)
	lines := strings.Split(f.wb.View(), "\n")
	assert.LessOrEqual(t, len(lines), 40)
	assert.Contains(t, lines[0], "mdcheat")
}
