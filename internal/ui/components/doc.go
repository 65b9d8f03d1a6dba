// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides reusable UI components for the mdcheat workbench.

Each component is built on Bubble Tea and Lip Gloss and takes its colors from
styles.Theme.

# Core Components

Header (header.go) - One-line header with the title, focus and panel count.
StatusBar (statusbar.go) - Bottom bar with a message and key hints.
CommandPalette (palette.go) - Fuzzy-searchable command palette (Ctrl+P).
Toast (toast.go) - Transient notifications with id-matched expiry.

# Toasts

Toast ids are unique per process, so an expiry message only ever hides the
toast that scheduled it:

	var slot components.ToastSlot
	cmd := slot.Show("コピーしました！", components.ToastKindSuccess, 2*time.Second)
	// later, in Update:
	case components.ToastExpireMsg:
	    slot.Expire(msg.ID)

ToastManager keeps a stack of toasts for the workbench; ToastSlot keeps the
single toast a document shows in its own footer.

# Helper Functions

The package includes shared helper functions in helpers.go:
  - toStr() - Integer to string conversion without fmt
  - plural() - "1 panel" / "2 panels"
*/
package components
