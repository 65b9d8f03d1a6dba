// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package snippets implements the cheatsheet document shown in a workbench
// panel: a search field over the snippet catalogue, a scrollable list of
// categories and items, copy-on-activation and a transient acknowledgment.
//
// All state lives in the Model and is only touched from Update. The
// clipboard write is the one asynchronous step; it reports back as a
// CopiedMsg.
package snippets

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/mdcheat/internal/cheatsheet"
	"github.com/jeranaias/mdcheat/internal/host"
	"github.com/jeranaias/mdcheat/internal/ui/components"
	"github.com/jeranaias/mdcheat/internal/ui/styles"
	"github.com/jeranaias/mdcheat/internal/util"
)

// ToastDelay is how long the copy acknowledgment stays visible.
const ToastDelay = 2000 * time.Millisecond

// User-facing text.
const (
	SearchPlaceholder = "チートシートを検索..."
	CopiedMessage     = "コピーしました！"
	CopyFailedMessage = "コピーに失敗しました"
	NoMatchMessage    = "一致する項目がありません"
)

// Rows taken by the search field, its separator and the footer line.
const chromeRows = 3

var errNoClipboard = errors.New("no clipboard configured")

// CopiedMsg reports the outcome of a clipboard write. Doc is the ID of the
// document that started it; other documents ignore the message.
type CopiedMsg struct {
	Doc     int
	Payload string
	Err     error
}

// Model is the cheatsheet document.
type Model struct {
	id int

	catalogue cheatsheet.Catalogue
	clipboard host.Clipboard
	theme     *styles.Theme
	keys      KeyMap

	search   textinput.Model
	vis      cheatsheet.Visibility
	refs     []cheatsheet.Ref
	selected int

	viewport  viewport.Model
	lineRefs  []int // content line -> index into refs, or -1
	itemLines []int // index into refs -> content line of its label

	toast components.ToastSlot

	showPreview bool
	preview     *previewer

	width  int
	height int
}

// New creates a cheatsheet document over cat that copies through clip.
func New(cat cheatsheet.Catalogue, clip host.Clipboard, theme *styles.Theme) *Model {
	if theme == nil {
		theme = styles.NewTheme()
	}

	ti := textinput.New()
	ti.Placeholder = SearchPlaceholder
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.PromptStyle = theme.SearchPrompt
	ti.TextStyle = theme.SearchText
	ti.PlaceholderStyle = theme.SearchPlaceholder
	ti.Focus()

	m := &Model{
		id:        generateDocID(),
		catalogue: cat,
		clipboard: clip,
		theme:     theme,
		keys:      DefaultKeyMap(),
		search:    ti,
		viewport:  viewport.New(0, 0),
		preview:   newPreviewer(theme.IsDark),
	}
	m.applyFilter()
	return m
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the cursor blink.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input, clipboard results and toast expiry.
func (m *Model) Update(msg tea.Msg) (host.Document, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case CopiedMsg:
		if msg.Doc != m.id {
			return m, nil
		}
		if msg.Err != nil {
			log.Printf("CHEATSHEET: clipboard write failed: %v", msg.Err)
			return m, m.toast.Show(CopyFailedMessage, components.ToastKindError, ToastDelay)
		}
		return m, m.toast.Show(CopiedMessage, components.ToastKindSuccess, ToastDelay)

	case components.ToastExpireMsg:
		m.toast.Expire(msg.ID)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
		return nil
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
		return nil
	case key.Matches(msg, m.keys.PageUp):
		m.moveSelection(-m.pageItems())
		return nil
	case key.Matches(msg, m.keys.PageDown):
		m.moveSelection(m.pageItems())
		return nil
	case key.Matches(msg, m.keys.First):
		m.moveSelection(-len(m.refs))
		return nil
	case key.Matches(msg, m.keys.Last):
		m.moveSelection(len(m.refs))
		return nil
	case key.Matches(msg, m.keys.Copy):
		return m.activate(m.selected)
	case key.Matches(msg, m.keys.Preview):
		m.showPreview = !m.showPreview
		m.layout()
		return nil
	case key.Matches(msg, m.keys.Clear):
		if m.search.Value() != "" {
			m.SetQuery("")
		}
		return nil
	}

	previous := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != previous {
		m.applyFilter()
	}
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Type {
	case tea.MouseWheelUp:
		m.viewport.LineUp(3)
	case tea.MouseWheelDown:
		m.viewport.LineDown(3)
	case tea.MouseLeft:
		if idx := m.refAt(msg.Y); idx >= 0 {
			m.selected = idx
			m.render()
			return m.activate(idx)
		}
	}
	return nil
}

// View renders the document at its current size.
func (m *Model) View() string {
	rows := []string{
		m.searchView(),
		m.separator(),
		m.viewport.View(),
	}
	if h := m.previewHeight(); h > 0 {
		rows = append(rows, m.previewView(h))
	}
	rows = append(rows, m.footer())
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// SetSize lays the document out for width x height cells.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.search.Width = width - lipgloss.Width(m.search.Prompt) - 1
	if m.search.Width < 1 {
		m.search.Width = 1
	}
	m.preview.setWidth(width)
	m.layout()
}

// Reset drops the query, selection, scroll position, preview and toast.
func (m *Model) Reset() {
	m.search.Reset()
	m.showPreview = false
	m.toast.Clear()
	m.applyFilter()
	m.layout()
}

// =============================================================================
// QUERIES AND STATE
// =============================================================================

// SetQuery replaces the search text and refilters.
func (m *Model) SetQuery(q string) {
	m.search.SetValue(q)
	m.applyFilter()
}

// Query returns the current search text.
func (m *Model) Query() string {
	return m.search.Value()
}

// ID returns the process-unique document ID carried by its CopiedMsg.
func (m *Model) ID() int {
	return m.id
}

// Visibility returns the current filter result.
func (m *Model) Visibility() cheatsheet.Visibility {
	return m.vis
}

// Selected returns the selected item.
func (m *Model) Selected() (cheatsheet.Item, bool) {
	if m.selected < 0 || m.selected >= len(m.refs) {
		return cheatsheet.Item{}, false
	}
	return m.catalogue.Item(m.refs[m.selected])
}

// Toast returns the visible acknowledgment, if any.
func (m *Model) Toast() (components.Toast, bool) {
	return m.toast.Current()
}

// PreviewVisible reports whether the preview pane is open.
func (m *Model) PreviewVisible() bool {
	return m.showPreview
}

// Activate copies the item at ref, as a click on it would.
func (m *Model) Activate(ref cheatsheet.Ref) tea.Cmd {
	for i, r := range m.refs {
		if r == ref {
			m.selected = i
			m.render()
			return m.activate(i)
		}
	}
	return nil
}

// applyFilter recomputes visibility from the query and resets selection to
// the first visible item.
func (m *Model) applyFilter() {
	m.vis = m.catalogue.Filter(m.search.Value())
	m.refs = m.vis.Refs()
	m.selected = 0
	if len(m.refs) == 0 {
		m.selected = -1
	}
	m.render()
	m.viewport.GotoTop()
}

func (m *Model) activate(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.refs) {
		return nil
	}
	item, ok := m.catalogue.Item(m.refs[idx])
	if !ok {
		return nil
	}
	clip := m.clipboard
	id := m.id
	payload := item.Payload
	return func() tea.Msg {
		if clip == nil {
			return CopiedMsg{Doc: id, Payload: payload, Err: errNoClipboard}
		}
		return CopiedMsg{Doc: id, Payload: payload, Err: clip.WriteText(payload)}
	}
}

func (m *Model) moveSelection(delta int) {
	if len(m.refs) == 0 {
		return
	}
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= len(m.refs) {
		m.selected = len(m.refs) - 1
	}
	m.render()
	m.ensureVisible()
}

// pageItems is how many items fit in one viewport page.
func (m *Model) pageItems() int {
	n := m.viewport.Height / 2
	if n < 1 {
		n = 1
	}
	return n
}

// =============================================================================
// LAYOUT AND RENDERING
// =============================================================================

func (m *Model) previewHeight() int {
	if !m.showPreview || m.height < chromeRows+4 {
		return 0
	}
	h := m.height / 3
	if h > 12 {
		h = 12
	}
	if h < 3 {
		h = 3
	}
	return h
}

func (m *Model) layout() {
	listHeight := m.height - chromeRows - m.previewHeight()
	if listHeight < 1 {
		listHeight = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = listHeight
	m.render()
	m.ensureVisible()
}

// render rebuilds the list content and the line maps used for hit testing.
func (m *Model) render() {
	var lines []string
	m.lineRefs = m.lineRefs[:0]
	m.itemLines = make([]int, len(m.refs))

	add := func(line string, ref int) {
		lines = append(lines, line)
		m.lineRefs = append(m.lineRefs, ref)
	}

	width := m.width
	if width <= 0 {
		width = 40
	}

	idx := 0
	for ci, cat := range m.catalogue.Categories {
		if !m.vis.Category(ci) {
			continue
		}
		if len(lines) > 0 {
			add("", -1)
		}
		add(m.theme.CategoryTitle.Render(util.TruncateWidth(cat.Name, width)), -1)

		for ii, item := range cat.Items {
			if !m.vis.Item(ci, ii) {
				continue
			}
			m.itemLines[idx] = len(lines)
			if idx == m.selected {
				label := util.JoinEnds("▸ "+item.Label, item.CopyHint()+" ", width)
				add(m.theme.ItemSelected.Render(label), idx)
			} else {
				add(m.theme.ItemLabel.Render(util.TruncateWidth("  "+item.Label, width)), idx)
			}
			syntax := util.TruncateWidth("    "+util.FirstLine(item.Syntax), width)
			add(m.theme.ItemSyntax.Render(syntax), idx)
			idx++
		}
	}

	if len(lines) == 0 {
		add(m.theme.NoMatch.Render(NoMatchMessage), -1)
	}

	m.viewport.SetContent(strings.Join(lines, "\n"))
}

// ensureVisible scrolls so the selected item's two lines are on screen.
func (m *Model) ensureVisible() {
	if m.selected < 0 || m.selected >= len(m.itemLines) || m.viewport.Height <= 0 {
		return
	}
	top := m.itemLines[m.selected]
	bottom := top + 1
	// Keep the category title in view for the first item of a category.
	if top > 0 && m.lineRefs[top-1] == -1 {
		top--
	}
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height + 1)
	}
}

// refAt maps a document row to the index of the item drawn there, or -1.
func (m *Model) refAt(y int) int {
	row := y - 2
	if row < 0 || row >= m.viewport.Height {
		return -1
	}
	line := row + m.viewport.YOffset
	if line < 0 || line >= len(m.lineRefs) {
		return -1
	}
	return m.lineRefs[line]
}

// searchView renders the search field clipped to the document width. An
// empty field is drawn unsized: textinput measures the placeholder in cells
// but slices it in runes, which breaks on double-width text.
func (m *Model) searchView() string {
	ti := m.search
	if ti.Value() == "" {
		ti.Width = 0
	}
	v := ti.View()
	if m.width > 0 {
		v = lipgloss.NewStyle().MaxWidth(m.width).Render(v)
	}
	return v
}

func (m *Model) separator() string {
	count := " " + strconv.Itoa(m.vis.Count()) + "/" + strconv.Itoa(m.catalogue.Len()) + " "
	width := m.width
	if width <= 0 {
		width = 40
	}
	left := width - util.Width(count) - 2
	if left < 0 {
		return m.theme.Separator.Render(strings.Repeat("─", width))
	}
	return m.theme.Separator.Render(strings.Repeat("─", left) + count + "──")
}

func (m *Model) previewView(height int) string {
	item, ok := m.Selected()
	if !ok {
		return lipgloss.NewStyle().Height(height).Render("")
	}
	body := m.preview.render(m.refs[m.selected], item)
	title := m.theme.PreviewTitle.Render("Preview: " + item.Label)

	lines := strings.Split(body, "\n")
	// One row for the border, one for the title.
	if limit := height - 2; len(lines) > limit {
		lines = lines[:limit]
	}
	content := title + "\n" + strings.Join(lines, "\n")
	return m.theme.PreviewBox.
		Width(m.width).
		Height(height - 1).
		MaxHeight(height).
		Render(content)
}

func (m *Model) footer() string {
	if t, ok := m.toast.Current(); ok {
		style := m.theme.ToastSuccess
		if t.Kind == components.ToastKindError {
			style = m.theme.ToastError
		}
		pill := style.Render(t.Message)
		if m.width > 0 {
			return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, pill)
		}
		return pill
	}

	var parts []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	help := strings.Join(parts, " · ")
	if m.width > 0 {
		help = util.TruncateWidth(help, m.width)
	}
	return m.theme.ShortcutDesc.Render(help)
}

var (
	docIDMutex   sync.Mutex
	docIDCounter int
)

func generateDocID() int {
	docIDMutex.Lock()
	defer docIDMutex.Unlock()
	docIDCounter++
	return docIDCounter
}
