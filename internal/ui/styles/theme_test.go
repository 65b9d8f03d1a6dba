// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
)

func TestNewTheme(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme() returned nil")
	}

	// Styles must render their input even without color support.
	for name, style := range map[string]func(...string) string{
		"CategoryTitle": theme.CategoryTitle.Render,
		"ItemSelected":  theme.ItemSelected.Render,
		"ToastSuccess":  theme.ToastSuccess.Render,
		"ToastError":    theme.ToastError.Render,
	} {
		if got := style("コピー"); !strings.Contains(got, "コピー") {
			t.Errorf("%s.Render dropped its text: %q", name, got)
		}
	}
}

func TestRenderHelpersIncludeIndicators(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"success", RenderSuccess("copied"), StatusIndicators.Success},
		{"error", RenderError("failed"), StatusIndicators.Error},
		{"info", RenderInfo("note"), StatusIndicators.Info},
	}
	for _, tc := range tests {
		if !strings.Contains(tc.got, tc.want) {
			t.Errorf("%s: %q missing indicator %q", tc.name, tc.got, tc.want)
		}
	}
}
