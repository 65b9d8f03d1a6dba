// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared styles for CLI output.
//
// Colors are dropped automatically when ConfigureColors selects the Ascii
// profile, so callers render unconditionally.

package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// TitleStyle is used for command titles and headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")) // Cyan

	// SectionStyle is used for category names in listings
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")) // White

	// IndexStyle is used for item numbers
	IndexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")) // Light gray

	// ValueStyle is used for regular values and text
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Off-white

	// SyntaxStyle is used for Markdown syntax samples
	SyntaxStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")) // Bright green

	// SuccessStyle is used for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")). // Green
			Bold(true)

	// ErrorStyle is used for error messages and failures
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	// DimStyle is used for secondary information and hints
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")) // Dim gray

	// SeparatorStyle is used for visual separators
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Dark gray
)

// RenderSeparator renders a horizontal separator line of width cells.
// Default width is 40 characters if not specified.
func RenderSeparator(width ...int) string {
	w := 40
	if len(width) > 0 && width[0] > 0 {
		w = width[0]
	}
	return SeparatorStyle.Render(strings.Repeat("─", w))
}
