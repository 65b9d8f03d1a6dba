// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"testing"
)

// =============================================================================
// HELPER FUNCTION TESTS
// =============================================================================

func TestToStr(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "0"},
		{9, "9"},
		{123, "123"},
		{-1, "-1"},
		{-9223372036854775808, "-9223372036854775808"},
	}

	for _, tc := range tests {
		got := toStr(tc.input)
		if got != tc.want {
			t.Errorf("toStr(%d) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 panels"},
		{1, "1 panel"},
		{2, "2 panels"},
	}

	for _, tc := range tests {
		if got := plural(tc.n, "panel"); got != tc.want {
			t.Errorf("plural(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
