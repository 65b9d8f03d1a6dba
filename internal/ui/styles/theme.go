// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// WORKBENCH STYLES
	// ==========================================================================

	Header       lipgloss.Style
	HeaderTitle  lipgloss.Style
	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	PanelBorder        lipgloss.Style
	PanelBorderFocused lipgloss.Style
	PanelTab           lipgloss.Style
	PanelTabActive     lipgloss.Style

	// ==========================================================================
	// CHEATSHEET STYLES
	// ==========================================================================

	SearchPrompt      lipgloss.Style
	SearchText        lipgloss.Style
	SearchPlaceholder lipgloss.Style
	Separator         lipgloss.Style

	CategoryTitle lipgloss.Style
	ItemLabel     lipgloss.Style
	ItemSelected  lipgloss.Style
	ItemSyntax    lipgloss.Style
	CopyHint      lipgloss.Style
	NoMatch       lipgloss.Style

	PreviewBox   lipgloss.Style
	PreviewTitle lipgloss.Style

	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()
	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.initStyles()
	return t
}

func (t *Theme) initStyles() {
	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)
	t.HeaderTitle = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextMuted).
		Padding(0, 1)
	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)
	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.PanelBorder = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay)
	t.PanelBorderFocused = t.PanelBorder.
		BorderForeground(Purple)
	t.PanelTab = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 1)
	t.PanelTabActive = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Purple).
		Bold(true).
		Padding(0, 1)

	t.SearchPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)
	t.SearchText = lipgloss.NewStyle().
		Foreground(TextPrimary)
	t.SearchPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)
	t.Separator = lipgloss.NewStyle().
		Foreground(Overlay)

	t.CategoryTitle = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true).
		Underline(true)
	t.ItemLabel = lipgloss.NewStyle().
		Foreground(TextPrimary)
	t.ItemSelected = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(SelectionBg).
		Bold(true)
	t.ItemSyntax = lipgloss.NewStyle().
		Foreground(Preformat)
	t.CopyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)
	t.NoMatch = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true).
		Padding(1, 0)

	t.PreviewBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay)
	t.PreviewTitle = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)

	t.ToastSuccess = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(Emerald).
		Bold(true).
		Padding(0, 2)
	t.ToastError = t.ToastSuccess.
		Foreground(Rose)
}
