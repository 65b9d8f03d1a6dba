// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package host defines the services an extension consumes from the
// workbench: panels, the clipboard and disposable registrations.
//
// Everything here is called from the Bubble Tea update loop. Implementations
// need not be safe for concurrent use unless stated otherwise.
package host

import (
	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// PANELS
// =============================================================================

// Placement says where a panel is shown relative to the editor.
type Placement int

const (
	// PlacementActive shows the panel in place of the editor.
	PlacementActive Placement = iota
	// PlacementBeside shows the panel in a column next to the editor.
	PlacementBeside
)

// String returns the config name of the placement.
func (p Placement) String() string {
	switch p {
	case PlacementActive:
		return "active"
	case PlacementBeside:
		return "beside"
	default:
		return "unknown"
	}
}

// ParsePlacement converts a config name into a Placement.
func ParsePlacement(s string) (Placement, bool) {
	switch s {
	case "active":
		return PlacementActive, true
	case "beside", "":
		return PlacementBeside, true
	default:
		return PlacementBeside, false
	}
}

// PanelOptions control how the host treats a panel's document.
type PanelOptions struct {
	// EnableScripts lets the document receive key and mouse input.
	EnableScripts bool
	// RetainContextWhenHidden keeps document state while the panel is hidden.
	// Without it the host resets the document when it is shown again.
	RetainContextWhenHidden bool
}

// Handle identifies a panel created by a PanelService.
type Handle string

// PanelService creates and manages panels.
type PanelService interface {
	Create(viewType, title string, placement Placement, opts PanelOptions) Handle
	Reveal(h Handle, placement Placement)
	SetContent(h Handle, doc Document)
	OnDispose(h Handle, fn func()) Disposable
	Dispose(h Handle)
}

// Document is the content of a panel. It follows the Bubble Tea model
// contract; the host forwards messages to it and draws its View inside the
// panel frame.
type Document interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Document, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Resetter is implemented by documents that can drop their ephemeral state.
type Resetter interface {
	Reset()
}

// =============================================================================
// CLIPBOARD
// =============================================================================

// Clipboard writes text to the clipboard. WriteText may be called from a
// tea.Cmd goroutine, so implementations must be safe for concurrent use.
type Clipboard interface {
	WriteText(text string) error
}
