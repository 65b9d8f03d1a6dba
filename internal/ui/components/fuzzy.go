// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"unicode"
)

// =============================================================================
// FUZZY MATCHING
// =============================================================================

// FuzzyMatch performs fuzzy matching between a query and a target string.
// Returns a score (higher is better) and whether the match succeeded.
//
// Matching rules:
//   - Each character in query must appear in order in target
//   - Consecutive matches get bonus points
//   - Matches at word boundaries get bonus points
//   - Matches at start of string get bonus points
//   - Case-insensitive matching
//
// Examples:
//   - "msc" matches "Markdown: Show Cheatsheet"
//   - "qt" matches "Quit"
//   - "xyz" does not match "Quit"
//
// The palette uses this for command titles only; the cheatsheet search is a
// plain substring match.
func FuzzyMatch(query, target string) (score int, matched bool) {
	if query == "" {
		return 0, true
	}

	queryRunes := []rune(strings.ToLower(query))
	targetRunes := []rune(strings.ToLower(target))
	if len(queryRunes) > len(targetRunes) {
		return 0, false
	}

	targetOrig := []rune(target)
	queryOrig := []rune(query)

	queryPos := 0
	lastMatchPos := -1

	for targetPos := 0; targetPos < len(targetRunes) && queryPos < len(queryRunes); targetPos++ {
		if targetRunes[targetPos] != queryRunes[queryPos] {
			continue
		}

		matchScore := 1
		if lastMatchPos == targetPos-1 {
			matchScore += 5
		}
		if targetPos == 0 {
			matchScore += 10
		}
		if isWordBoundary(targetRunes, targetPos) {
			matchScore += 7
		}
		if targetPos < len(targetOrig) && queryPos < len(queryOrig) &&
			targetOrig[targetPos] == queryOrig[queryPos] {
			matchScore += 2
		}

		score += matchScore
		lastMatchPos = targetPos
		queryPos++
	}

	matched = queryPos == len(queryRunes)
	if matched {
		// Shorter targets are better matches
		score -= len(targetRunes) / 4
	}
	return score, matched
}

// isWordBoundary returns true if the position is at a word boundary.
func isWordBoundary(runes []rune, pos int) bool {
	if pos == 0 {
		return true
	}
	if pos >= len(runes) {
		return false
	}

	prev := runes[pos-1]
	switch prev {
	case ' ', '/', '-', '_', '.', ':':
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(runes[pos])
}
