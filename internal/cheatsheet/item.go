// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cheatsheet

// DefaultHint is shown on a selected item that has no hint of its own.
const DefaultHint = "Click to copy"

// Item is one catalogued syntax example.
type Item struct {
	Label   string `toml:"label"`
	Syntax  string `toml:"syntax"`
	Search  string `toml:"search"`
	Payload string `toml:"payload"`
	Hint    string `toml:"hint"`
	Example string `toml:"example"`
}

// CopyHint returns the hint text for the item.
func (i Item) CopyHint() string {
	if i.Hint == "" {
		return DefaultHint
	}
	return i.Hint
}

// Category is a named, ordered group of items.
type Category struct {
	Name  string `toml:"name"`
	Items []Item `toml:"item"`
}

// Ref addresses an item by category and item index.
type Ref struct {
	Category int
	Item     int
}

// Catalogue is the ordered list of categories.
type Catalogue struct {
	Categories []Category `toml:"category"`
}

// Len returns the total number of items across all categories.
func (c Catalogue) Len() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Items)
	}
	return n
}

// Item returns the item at ref. ok is false if ref is out of range.
func (c Catalogue) Item(ref Ref) (item Item, ok bool) {
	if ref.Category < 0 || ref.Category >= len(c.Categories) {
		return Item{}, false
	}
	items := c.Categories[ref.Category].Items
	if ref.Item < 0 || ref.Item >= len(items) {
		return Item{}, false
	}
	return items[ref.Item], true
}

// Refs returns every item reference in display order.
func (c Catalogue) Refs() []Ref {
	refs := make([]Ref, 0, c.Len())
	for ci, cat := range c.Categories {
		for ii := range cat.Items {
			refs = append(refs, Ref{Category: ci, Item: ii})
		}
	}
	return refs
}
