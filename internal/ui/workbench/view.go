// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package workbench

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/mdcheat/internal/host"
	"github.com/jeranaias/mdcheat/internal/ui/components"
	"github.com/jeranaias/mdcheat/internal/util"
)

// Layout constants. The header and status bar are one row each; a panel
// has a tab row above its bordered box.
const (
	headerHeight    = 1
	statusBarHeight = 1
	tabRowHeight    = 1
	borderSize      = 2

	minColumnWidth = 44
	minEditorWidth = 20
)

// layoutInfo is the computed geometry of the body.
type layoutInfo struct {
	bodyH int

	editorW int

	// columnX is the first screen column of the panel column.
	columnX int
	columnW int

	// Document origin and size in screen cells.
	docX, docY int
	docW, docH int
}

func (m *Model) computeLayout() layoutInfo {
	l := layoutInfo{bodyH: m.height - headerHeight - statusBarHeight}
	if l.bodyH < 1 {
		l.bodyH = 1
	}

	p := m.visiblePanel()
	switch {
	case p == nil:
		l.editorW = m.width
		l.columnX = m.width
	case p.placement == host.PlacementActive:
		l.columnW = m.width
	default:
		l.columnW = m.width * 2 / 5
		if l.columnW < minColumnWidth {
			l.columnW = minColumnWidth
		}
		if m.width-l.columnW < minEditorWidth {
			l.columnW = m.width
		}
		l.editorW = m.width - l.columnW
		l.columnX = l.editorW
	}

	if l.columnW > 0 {
		l.docX = l.columnX + 1
		l.docY = headerHeight + tabRowHeight + 1
		l.docW = max0(l.columnW - borderSize)
		l.docH = max0(l.bodyH - tabRowHeight - borderSize)
	}
	return l
}

// layout pushes sizes down to the components and documents.
func (m *Model) layout() {
	l := m.computeLayout()

	m.header.SetWidth(m.width)
	m.status.SetWidth(m.width)
	m.palette.SetSize(m.width, l.bodyH)

	if l.editorW > 0 {
		m.editor.SetWidth(max0(l.editorW - borderSize))
		m.editor.SetHeight(max0(l.bodyH - borderSize))
	}

	// Hidden documents keep the size they will get when shown.
	docW, docH := l.docW, l.docH
	if docW == 0 {
		docW = max0(m.width*2/5 - borderSize)
		docH = max0(l.bodyH - tabRowHeight - borderSize)
	}
	for _, p := range m.panels {
		if p.doc != nil {
			p.doc.SetSize(docW, docH)
		}
	}
}

func (m *Model) editorVisible() bool {
	return m.computeLayout().editorW > 0
}

// View renders the workbench.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	l := m.computeLayout()

	m.header.SetFocus(m.focusLabel())
	m.header.SetPanels(len(m.panels))
	m.status.SetMessage(m.statusMessage())
	m.status.SetHints(m.hints()...)

	var body string
	if m.palette.IsVisible() {
		body = m.palette.View()
	} else {
		body = m.renderBody(l)
	}
	body = m.overlayToasts(body, l.bodyH)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		body,
		m.status.View(),
	)
}

func (m *Model) renderBody(l layoutInfo) string {
	var parts []string
	if l.editorW > 0 {
		style := m.theme.PanelBorder
		if !m.focusPanel {
			style = m.theme.PanelBorderFocused
		}
		parts = append(parts, style.Render(m.editor.View()))
	}
	if l.columnW > 0 {
		parts = append(parts, m.renderColumn(l))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return lipgloss.NewStyle().
		Width(m.width).
		Height(l.bodyH).
		MaxHeight(l.bodyH).
		Render(body)
}

func (m *Model) renderColumn(l layoutInfo) string {
	p := m.visiblePanel()

	var content string
	if p != nil && p.doc != nil {
		content = p.doc.View()
	}
	style := m.theme.PanelBorder
	if m.focusPanel {
		style = m.theme.PanelBorderFocused
	}
	box := style.
		Width(l.docW).
		Height(l.docH).
		MaxHeight(l.docH + borderSize).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(l.columnW), box)
}

// renderTabs renders one tab per panel, truncated to width.
func (m *Model) renderTabs(width int) string {
	var tabs []string
	for i, p := range m.panels {
		style := m.theme.PanelTab
		if i == m.active {
			style = m.theme.PanelTabActive
		}
		tabs = append(tabs, style.Render(util.TruncateWidth(p.title, 28)))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return lipgloss.NewStyle().MaxWidth(width).Render(row)
}

// overlayToasts draws the toast stack over the bottom rows of body.
func (m *Model) overlayToasts(body string, height int) string {
	toasts := m.toasts.Toasts()
	if len(toasts) == 0 {
		return body
	}
	stack := strings.Split(components.RenderToastStack(toasts, m.width), "\n")
	lines := strings.Split(body, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	start := len(lines) - len(stack)
	if start < 0 {
		stack = stack[-start:]
		start = 0
	}
	copy(lines[start:], stack)
	return strings.Join(lines, "\n")
}

func (m *Model) focusLabel() string {
	if m.focusPanel {
		if p := m.visiblePanel(); p != nil {
			return p.title
		}
	}
	return "editor"
}

func (m *Model) statusMessage() string {
	lines := m.editor.LineCount()
	return "Ln " + strconv.Itoa(m.editor.Line()+1) + "/" + strconv.Itoa(lines)
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
