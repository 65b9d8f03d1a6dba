// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import "strconv"

// toStr converts an int to its decimal form.
func toStr(n int) string {
	return strconv.Itoa(n)
}

// plural returns "n word" or "n words".
func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return toStr(n) + " " + word + "s"
}
