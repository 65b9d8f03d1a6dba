// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for mdcheat.

Colors are package-level lipgloss.AdaptiveColor values that resolve to a
light or dark variant at render time. Theme bundles the lipgloss styles the
workbench and the cheatsheet draw with:

	theme := styles.NewTheme()
	title := theme.CategoryTitle.Render("基本構文")

Status output uses shape indicators ([OK], [X], [i]) in addition to color,
so it stays readable on monochrome terminals and for colorblind users.
*/
package styles
