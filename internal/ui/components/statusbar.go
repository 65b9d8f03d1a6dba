// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/mdcheat/internal/ui/styles"
	"github.com/jeranaias/mdcheat/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// StatusBar is the bottom line of the workbench: a status message on the
// left and key hints on the right. Hints are dropped from the end until
// they fit.
type StatusBar struct {
	Message string
	Hints   []key.Binding
	Width   int
	theme   *styles.Theme
}

// NewStatusBar creates a new status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the status bar width
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetMessage sets the left-hand status text.
func (s *StatusBar) SetMessage(msg string) {
	s.Message = msg
}

// SetHints sets the key hints.
func (s *StatusBar) SetHints(hints ...key.Binding) {
	s.Hints = hints
}

// View renders the status bar.
func (s *StatusBar) View() string {
	width := s.Width
	if width < 10 {
		width = 10
	}
	inner := width - 2

	shortcuts := s.renderShortcuts(inner * 2 / 3)
	room := inner - lipgloss.Width(shortcuts) - 1
	if room < 0 {
		room = 0
	}
	left := util.TruncateWidth(s.Message, room)

	gap := inner - util.Width(left) - lipgloss.Width(shortcuts)
	if gap < 1 {
		gap = 1
	}
	return s.theme.StatusBar.Width(width).MaxWidth(width).
		Render(left + strings.Repeat(" ", gap) + shortcuts)
}

// renderShortcuts renders as many enabled hints as fit in limit cells.
func (s *StatusBar) renderShortcuts(limit int) string {
	var parts []string
	used := 0
	for _, b := range s.Hints {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		part := s.theme.ShortcutKey.Render(h.Key) + " " + s.theme.ShortcutDesc.Render(h.Desc)
		w := lipgloss.Width(part)
		if len(parts) > 0 {
			w += 2
		}
		if used+w > limit {
			break
		}
		parts = append(parts, part)
		used += w
	}
	return strings.Join(parts, "  ")
}
