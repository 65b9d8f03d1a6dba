// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/mdcheat/internal/ui/styles"
	"github.com/jeranaias/mdcheat/internal/util"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the workbench title bar: product name on the left, the focused
// pane and panel count on the right.
type Header struct {
	Title  string
	Focus  string
	Panels int
	Width  int
	theme  *styles.Theme
}

// NewHeader creates a new Header component with default values
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: "mdcheat",
		Focus: "editor",
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetFocus sets the name of the focused pane.
func (h *Header) SetFocus(name string) {
	h.Focus = name
}

// SetPanels sets the number of open panels.
func (h *Header) SetPanels(n int) {
	h.Panels = n
}

// View renders the header as a single line.
func (h *Header) View() string {
	width := h.Width
	if width < 20 {
		width = 20
	}
	inner := width - 2

	title := h.renderTitle()

	right := h.Focus
	if h.Panels > 0 {
		right += " · " + plural(h.Panels, "panel")
	}
	right = h.theme.ShortcutDesc.Render(util.TruncateWidth(right, inner/2))

	gap := inner - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := title + strings.Repeat(" ", gap) + right
	return h.theme.Header.Width(width).MaxWidth(width).Render(line)
}

func (h *Header) renderTitle() string {
	if h.theme.HasTrueColor {
		start, end := styles.Purple.Light, styles.Cyan.Light
		if h.theme.IsDark {
			start, end = styles.Purple.Dark, styles.Cyan.Dark
		}
		return lipgloss.NewStyle().Bold(true).Render(
			GradientTitle(h.Title, lipgloss.Color(start), lipgloss.Color(end)))
	}
	return h.theme.HeaderTitle.Render(h.Title)
}

// =============================================================================
// GRADIENT TITLE (for terminals with true color support)
// =============================================================================

// GradientTitle colors text with a left-to-right gradient between two hex
// colors.
func GradientTitle(text string, startColor, endColor lipgloss.Color) string {
	chars := []rune(text)
	n := len(chars)
	if n == 0 {
		return ""
	}
	if n < 3 {
		return lipgloss.NewStyle().Foreground(startColor).Render(text)
	}

	var result strings.Builder
	for i, char := range chars {
		t := float64(i) / float64(n-1)
		color := interpolateColor(startColor, endColor, t)
		result.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(char)))
	}
	return result.String()
}

// interpolateColor interpolates between two hex colors
func interpolateColor(start, end lipgloss.Color, t float64) lipgloss.Color {
	sr, sg, sb := parseHexColor(strings.TrimPrefix(string(start), "#"))
	er, eg, eb := parseHexColor(strings.TrimPrefix(string(end), "#"))

	r := uint8(float64(sr) + t*(float64(er)-float64(sr)))
	g := uint8(float64(sg) + t*(float64(eg)-float64(sg)))
	b := uint8(float64(sb) + t*(float64(eb)-float64(sb)))

	return lipgloss.Color(formatHexColor(r, g, b))
}

// parseHexColor parses "RRGGBB"; anything shorter is white.
func parseHexColor(hex string) (r, g, b uint8) {
	if len(hex) < 6 {
		return 255, 255, 255
	}
	return parseHexByte(hex[0:2]), parseHexByte(hex[2:4]), parseHexByte(hex[4:6])
}

// parseHexByte parses a two-character hex string into a byte
func parseHexByte(s string) uint8 {
	if len(s) != 2 {
		return 255
	}

	var result uint8
	for _, c := range s {
		result *= 16
		switch {
		case c >= '0' && c <= '9':
			result += uint8(c - '0')
		case c >= 'a' && c <= 'f':
			result += uint8(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			result += uint8(c - 'A' + 10)
		default:
			return 255
		}
	}
	return result
}

// formatHexColor formats RGB values as a hex color string
func formatHexColor(r, g, b uint8) string {
	const hexChars = "0123456789ABCDEF"
	return "#" +
		string(hexChars[r>>4]) + string(hexChars[r&0xF]) +
		string(hexChars[g>>4]) + string(hexChars[g&0xF]) +
		string(hexChars[b>>4]) + string(hexChars[b&0xF])
}
