// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection for mdcheat output.
//
// Colors are used only when stdout is a terminal, NO_COLOR is unset and
// --no-color was not given. FORCE_COLOR overrides TTY detection.

package cli

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsTTY returns true if stdin is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY returns true if stdout is a terminal.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// =============================================================================
// TERMINAL WIDTH DETECTION
// =============================================================================

const (
	// DefaultTerminalWidth is the fallback width when detection fails
	DefaultTerminalWidth = 80

	// MinTerminalWidth is the minimum width we'll use for wrapping
	MinTerminalWidth = 40
)

// GetTerminalWidth returns the current terminal width, or 0 when stdout is
// not a terminal so piped output is never truncated.
func GetTerminalWidth() int {
	if !IsStdoutTTY() {
		return 0
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	return width
}

// =============================================================================
// COLOR OUTPUT CONTROL
// =============================================================================

var (
	colorsMu       sync.Mutex
	colorsDisabled bool
)

// DisableColors turns colored output off for the rest of the process.
// It is what --no-color does.
func DisableColors() {
	colorsMu.Lock()
	colorsDisabled = true
	colorsMu.Unlock()
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ColorsEnabled returns true if colored output should be used.
// See https://no-color.org/ for the NO_COLOR specification.
func ColorsEnabled() bool {
	colorsMu.Lock()
	disabled := colorsDisabled
	colorsMu.Unlock()
	if disabled || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	return IsStdoutTTY()
}

// GetColorProfile returns the termenv profile for CLI output.
func GetColorProfile() termenv.Profile {
	if !ColorsEnabled() {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}

// ConfigureColors applies the detected profile to lipgloss.
func ConfigureColors(noColor bool) {
	if noColor {
		DisableColors()
		return
	}
	lipgloss.SetColorProfile(GetColorProfile())
}
