// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cheatsheet

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Fold prepares text for comparison: NFC normalization then lower case.
func Fold(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// Matches reports whether an item with the given search key is visible
// under query. The query is not trimmed or tokenized.
func Matches(search, query string) bool {
	return matchFolded(search, Fold(query))
}

// matchFolded is Matches with the query already folded.
func matchFolded(search, folded string) bool {
	if folded == "" {
		return true
	}
	return strings.Contains(Fold(search), folded)
}

// Visibility is the result of filtering a catalogue.
type Visibility struct {
	Query      string
	categories []bool
	items      [][]bool
	visible    int
}

// Filter computes item and category visibility for query.
func (c Catalogue) Filter(query string) Visibility {
	v := Visibility{
		Query:      query,
		categories: make([]bool, len(c.Categories)),
		items:      make([][]bool, len(c.Categories)),
	}
	folded := Fold(query)
	for ci, cat := range c.Categories {
		v.items[ci] = make([]bool, len(cat.Items))
		for ii, item := range cat.Items {
			if matchFolded(item.Search, folded) {
				v.items[ci][ii] = true
				v.categories[ci] = true
				v.visible++
			}
		}
	}
	return v
}

// Category reports whether category ci has at least one visible item.
func (v Visibility) Category(ci int) bool {
	if ci < 0 || ci >= len(v.categories) {
		return false
	}
	return v.categories[ci]
}

// Item reports whether item ii of category ci is visible.
func (v Visibility) Item(ci, ii int) bool {
	if ci < 0 || ci >= len(v.items) || ii < 0 || ii >= len(v.items[ci]) {
		return false
	}
	return v.items[ci][ii]
}

// Count returns the number of visible items.
func (v Visibility) Count() int {
	return v.visible
}

// Refs returns the visible item references in display order.
func (v Visibility) Refs() []Ref {
	refs := make([]Ref, 0, v.visible)
	for ci, items := range v.items {
		for ii, ok := range items {
			if ok {
				refs = append(refs, Ref{Category: ci, Item: ii})
			}
		}
	}
	return refs
}
