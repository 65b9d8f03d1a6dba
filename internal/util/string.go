// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// UNICODE: Widths are terminal cells, not bytes or runes. Japanese labels
// occupy two cells per character.

// Ellipsis is appended to truncated text.
const Ellipsis = "..."

// Width returns the display width of s in terminal cells.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateWidth truncates s to at most maxWidth cells, ending with an
// ellipsis when something was cut.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth < runewidth.StringWidth(Ellipsis) {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// PadRight truncates or pads s with spaces to exactly width cells.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(TruncateWidth(s, width), width)
}

// JoinEnds places left and right on one line of exactly width cells, with
// right flush to the end. left is truncated first when both do not fit.
func JoinEnds(left, right string, width int) string {
	rw := runewidth.StringWidth(right)
	if rw >= width {
		return PadRight(right, width)
	}
	space := width - rw
	left = TruncateWidth(left, space-1)
	gap := space - runewidth.StringWidth(left)
	if gap < 0 {
		gap = 0
	}
	return left + strings.Repeat(" ", gap) + right
}

// FirstLine returns s up to its first newline.
func FirstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
