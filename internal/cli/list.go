// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// list.go - The list command.
//
// Command: list [query]
//
// Prints every category with at least one visible item, and its visible
// items numbered from 1 in display order. The numbers are the ones the
// plain command accepts with :N.
//
// Examples:
//
//	mdcheat list
//	mdcheat list link
//	mdcheat --no-color list 見出し | less

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jeranaias/mdcheat/internal/cheatsheet"
	"github.com/jeranaias/mdcheat/internal/ui/snippets"
	"github.com/jeranaias/mdcheat/internal/util"
)

const (
	listIndexWidth = 4
	listLabelWidth = 18
)

// WriteListing prints the catalogue filtered by query and returns the
// visible items in the order they were numbered. Lines are truncated to
// width cells when width is positive.
func WriteListing(w io.Writer, cat cheatsheet.Catalogue, query string, width int) []cheatsheet.Ref {
	vis := cat.Filter(query)
	refs := vis.Refs()
	if len(refs) == 0 {
		fmt.Fprintln(w, DimStyle.Render(snippets.NoMatchMessage))
		return refs
	}

	n := 0
	for ci, category := range cat.Categories {
		if !vis.Category(ci) {
			continue
		}
		if n > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, SectionStyle.Render(truncate(category.Name, width)))

		for ii, item := range category.Items {
			if !vis.Item(ci, ii) {
				continue
			}
			n++
			fmt.Fprintln(w, formatItem(n, item, width))
		}
	}
	return refs
}

// formatItem renders "  N  label  syntax" with the label padded so the
// syntax column lines up for CJK labels too.
func formatItem(n int, item cheatsheet.Item, width int) string {
	index := util.PadRight(strconv.Itoa(n), listIndexWidth-2)
	label := util.PadRight(item.Label, listLabelWidth)
	syntax := util.FirstLine(item.Syntax)

	if width > 0 {
		room := width - listIndexWidth - 2 - listLabelWidth - 2
		if room < 1 {
			return "  " + IndexStyle.Render(index) + "  " + ValueStyle.Render(truncate(item.Label, width-listIndexWidth-2))
		}
		syntax = util.TruncateWidth(syntax, room)
	}
	return "  " + IndexStyle.Render(index) + "  " + ValueStyle.Render(label) + "  " + SyntaxStyle.Render(syntax)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return util.TruncateWidth(s, width)
}

// HandleList runs the list command.
func HandleList(w io.Writer, cat cheatsheet.Catalogue, a Args) error {
	WriteListing(w, cat, a.Query, GetTerminalWidth())
	return nil
}
