// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package cheatsheet holds the built-in Markdown snippet catalogue and the
search filter applied to it.

The catalogue is static data compiled into the binary (catalogue.toml via
go:embed). It is decoded once and never mutated; callers receive values, not
pointers into shared state.

# Filtering

Filter implements the literal substring semantics of the search box:

	vis := cheatsheet.Default().Filter("link")
	vis.Item(1, 2) // true: "リンク link url" contains "link"
	vis.Category(0) // false: no item of 基本構文 matches

An empty query shows everything. Matching is case-insensitive and never
reorders categories or items.
*/
package cheatsheet
