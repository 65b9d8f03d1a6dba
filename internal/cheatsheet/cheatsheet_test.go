// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cheatsheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// CATALOGUE TESTS
// =============================================================================

func TestDefaultCatalogue(t *testing.T) {
	cat := Default()

	require.Len(t, cat.Categories, 3)
	assert.Equal(t, "基本構文", cat.Categories[0].Name)
	assert.Equal(t, "リスト & リンク", cat.Categories[1].Name)
	assert.Equal(t, "その他", cat.Categories[2].Name)
	assert.Equal(t, 9, cat.Len())

	hr, ok := cat.Item(Ref{Category: 2, Item: 2})
	require.True(t, ok)
	assert.Equal(t, "水平線", hr.Label)
	assert.Equal(t, "---", hr.Payload)

	code, ok := cat.Item(Ref{Category: 2, Item: 0})
	require.True(t, ok)
	assert.Equal(t, "```\n\n``` ", code.Payload)
	assert.Equal(t, "```言語名\\n...```", code.Syntax)
}

func TestDefaultCatalogueIsNotShared(t *testing.T) {
	a := Default()
	a.Categories[0].Items[0].Payload = "mutated"
	a.Categories[0].Name = "mutated"

	b := Default()
	if b.Categories[0].Items[0].Payload != "# " {
		t.Errorf("payload leaked between callers: %q", b.Categories[0].Items[0].Payload)
	}
	if b.Categories[0].Name != "基本構文" {
		t.Errorf("category name leaked between callers: %q", b.Categories[0].Name)
	}
}

func TestCopyHint(t *testing.T) {
	cat := Default()
	heading, _ := cat.Item(Ref{0, 0})
	bold, _ := cat.Item(Ref{0, 1})

	assert.Equal(t, "Click to copy '#'", heading.CopyHint())
	assert.Equal(t, DefaultHint, bold.CopyHint())
}

func TestItemOutOfRange(t *testing.T) {
	cat := Default()
	for _, ref := range []Ref{{-1, 0}, {3, 0}, {0, -1}, {0, 3}} {
		if _, ok := cat.Item(ref); ok {
			t.Errorf("Item(%v) ok = true, want false", ref)
		}
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"empty", "", "no categories"},
		{"syntax", "[[category]\n", "decode catalogue"},
		{"unknown key", "[[category]]\nname = \"a\"\ncolour = 1\n", "unknown key"},
		{"no name", "[[category]]\n[[category.item]]\nlabel = \"x\"\n", "missing name"},
		{"no payload", "[[category]]\nname = \"a\"\n[[category.item]]\nlabel = \"x\"\nsearch = \"x\"\n", "missing payload"},
		{"no search", "[[category]]\nname = \"a\"\n[[category.item]]\nlabel = \"x\"\npayload = \"x\"\n", "missing search key"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

// =============================================================================
// FILTER TESTS
// =============================================================================

func TestFilterLinkExample(t *testing.T) {
	cat := Catalogue{Categories: []Category{{
		Name: "basic",
		Items: []Item{
			{Label: "見出し", Search: "見出し h1 h2 h3", Payload: "# "},
			{Label: "太字", Search: "太字 bold", Payload: "**"},
			{Label: "リンク", Search: "リンク link url", Payload: "[]()"},
		},
	}}}

	vis := cat.Filter("link")

	assert.False(t, vis.Item(0, 0))
	assert.False(t, vis.Item(0, 1))
	assert.True(t, vis.Item(0, 2))
	assert.Equal(t, 1, vis.Count())
	assert.Equal(t, []Ref{{0, 2}}, vis.Refs())
}

func TestFilterMatchesDefinition(t *testing.T) {
	cat := Default()
	queries := []string{"", "l", "LIST", "リスト", "h", " ", "bold ", "xyz", "リンク link", "Url", "番号"}

	for _, q := range queries {
		vis := cat.Filter(q)
		for ci, category := range cat.Categories {
			anyVisible := false
			for ii, item := range category.Items {
				want := q == "" || strings.Contains(strings.ToLower(item.Search), strings.ToLower(q))
				if got := vis.Item(ci, ii); got != want {
					t.Errorf("Filter(%q) item %s = %v, want %v", q, item.Label, got, want)
				}
				if got := Matches(item.Search, q); got != want {
					t.Errorf("Matches(%q, %q) = %v, want %v", item.Search, q, got, want)
				}
				anyVisible = anyVisible || want
			}
			if got := vis.Category(ci); got != anyVisible {
				t.Errorf("Filter(%q) category %s = %v, want %v", q, category.Name, got, anyVisible)
			}
		}
	}
}

func TestFilterEmptyRestoresEverything(t *testing.T) {
	cat := Default()

	narrowed := cat.Filter("hr")
	require.Equal(t, 1, narrowed.Count())
	assert.False(t, narrowed.Category(0))

	all := cat.Filter("")
	assert.Equal(t, cat.Len(), all.Count())
	for ci := range cat.Categories {
		assert.True(t, all.Category(ci))
	}
	assert.Equal(t, cat.Refs(), all.Refs())
}

func TestFilterListSpansOneCategory(t *testing.T) {
	vis := Default().Filter("list")

	assert.False(t, vis.Category(0))
	assert.True(t, vis.Category(1))
	assert.False(t, vis.Category(2))
	assert.Equal(t, []Ref{{1, 0}, {1, 1}}, vis.Refs())
}

func TestMatches(t *testing.T) {
	tests := []struct {
		search string
		query  string
		want   bool
	}{
		{"太字 bold", "", true},
		{"太字 bold", "BOLD", true},
		{"太字 bold", "bo ld", false},
		{"太字 bold", "bld", false},
		{"リンク link url", "ンク li", true},
		// decomposed ガ (カ + combining dakuten) matches the composed form
		{"\u30ac\u30a4\u30c9 guide", "\u30ab\u3099\u30a4\u30c9", true},
	}

	for _, tc := range tests {
		if got := Matches(tc.search, tc.query); got != tc.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tc.search, tc.query, got, tc.want)
		}
	}
}

func TestVisibilityOutOfRange(t *testing.T) {
	vis := Default().Filter("")
	assert.False(t, vis.Category(-1))
	assert.False(t, vis.Category(99))
	assert.False(t, vis.Item(0, 99))
	assert.False(t, vis.Item(99, 0))
}
