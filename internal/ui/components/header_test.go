// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/mdcheat/internal/ui/styles"
)

// =============================================================================
// HEADER TESTS
// =============================================================================

func TestHeaderView(t *testing.T) {
	h := NewHeader(styles.NewTheme())
	h.SetWidth(60)
	h.SetFocus("Markdown Cheatsheet")
	h.SetPanels(2)

	view := h.View()
	if !strings.Contains(view, "2 panels") {
		t.Errorf("header should show the panel count: %q", view)
	}
	if w := lipgloss.Width(view); w != 60 {
		t.Errorf("header width = %d, want 60", w)
	}
	if strings.Contains(view, "\n") {
		t.Error("header should be a single line")
	}
}

func TestHeaderNarrow(t *testing.T) {
	h := NewHeader(styles.NewTheme())
	h.SetWidth(5)
	h.SetFocus("a very long focus label that cannot fit")

	if w := lipgloss.Width(h.View()); w > 20 {
		t.Errorf("narrow header width = %d, want <= 20", w)
	}
}

func TestGradientTitle(t *testing.T) {
	if got := GradientTitle("", lipgloss.Color("#000000"), lipgloss.Color("#FFFFFF")); got != "" {
		t.Errorf("GradientTitle(\"\") = %q", got)
	}
	out := GradientTitle("mdcheat", lipgloss.Color("#000000"), lipgloss.Color("#FFFFFF"))
	if lipgloss.Width(out) != len("mdcheat") {
		t.Errorf("gradient should not change the visible width: %q", out)
	}
}

func TestInterpolateColor(t *testing.T) {
	tests := []struct {
		t    float64
		want lipgloss.Color
	}{
		{0, "#000000"},
		{1, "#FFFFFF"},
		{0.5, "#7F7F7F"},
	}
	for _, tc := range tests {
		got := interpolateColor("#000000", "#FFFFFF", tc.t)
		if got != tc.want {
			t.Errorf("interpolateColor(%v) = %q, want %q", tc.t, got, tc.want)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	r, g, b := parseHexColor("A78BFA")
	if r != 0xA7 || g != 0x8B || b != 0xFA {
		t.Errorf("parseHexColor = %x %x %x", r, g, b)
	}
	r, g, b = parseHexColor("zz")
	if r != 255 || g != 255 || b != 255 {
		t.Error("short input should fall back to white")
	}
}

// =============================================================================
// STATUS BAR TESTS
// =============================================================================

func TestStatusBarView(t *testing.T) {
	s := NewStatusBar(styles.NewTheme())
	s.SetWidth(80)
	s.SetMessage("Ready")
	s.SetHints(
		key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("^K", "cheatsheet")),
		key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("^P", "commands")),
	)

	view := s.View()
	for _, want := range []string{"Ready", "^K", "cheatsheet", "^P"} {
		if !strings.Contains(view, want) {
			t.Errorf("status bar missing %q: %q", want, view)
		}
	}
	if w := lipgloss.Width(view); w != 80 {
		t.Errorf("status bar width = %d, want 80", w)
	}
}

func TestStatusBarDropsHintsThatDoNotFit(t *testing.T) {
	s := NewStatusBar(styles.NewTheme())
	s.SetWidth(24)
	s.SetHints(
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "one")),
		key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "two")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "three-is-long")),
	)

	view := s.View()
	if !strings.Contains(view, "one") {
		t.Errorf("first hint should fit: %q", view)
	}
	if strings.Contains(view, "three-is-long") {
		t.Errorf("last hint should be dropped: %q", view)
	}
}
