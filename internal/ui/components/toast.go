// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the mdcheat workbench.
//
// This file implements non-blocking toasts. A toast appears, stays for its
// duration and disappears on a ToastExpireMsg carrying its ID. Expiry is
// message driven, so a toast that was replaced before its timer fired is
// simply not found and nothing flickers.
package components

import (
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/mdcheat/internal/ui/styles"
)

// =============================================================================
// TOAST TYPES
// =============================================================================

// ToastKind represents the type of toast notification.
type ToastKind int

const (
	// ToastKindStatus is an informational toast (cyan color)
	ToastKindStatus ToastKind = iota
	// ToastKindError is an error toast (rose/red color)
	ToastKindError
	// ToastKindWarning is a warning toast (amber color)
	ToastKindWarning
	// ToastKindSuccess is a success toast (emerald color)
	ToastKindSuccess
)

// DefaultToastDuration is the default auto-dismiss duration for status toasts.
const DefaultToastDuration = 4 * time.Second

// ErrorToastDuration is the auto-dismiss duration for error toasts (longer to read).
const ErrorToastDuration = 8 * time.Second

// WarningToastDuration is the auto-dismiss duration for warning toasts.
const WarningToastDuration = 6 * time.Second

// DurationFor returns the default duration for kind.
func DurationFor(kind ToastKind) time.Duration {
	switch kind {
	case ToastKindError:
		return ErrorToastDuration
	case ToastKindWarning:
		return WarningToastDuration
	default:
		return DefaultToastDuration
	}
}

// Toast is a transient notification.
type Toast struct {
	ID       int
	Message  string
	Kind     ToastKind
	Duration time.Duration
}

// NewToast creates a toast with a process-unique ID.
func NewToast(message string, kind ToastKind, d time.Duration) Toast {
	return Toast{
		ID:       generateToastID(),
		Message:  message,
		Kind:     kind,
		Duration: d,
	}
}

// ToastExpireMsg ends the toast with the given ID.
type ToastExpireMsg struct {
	ID int
}

// ExpireCmd schedules the toast's expiry.
func (t Toast) ExpireCmd() tea.Cmd {
	id := t.ID
	return tea.Tick(t.Duration, func(time.Time) tea.Msg {
		return ToastExpireMsg{ID: id}
	})
}

// =============================================================================
// TOAST SLOT
// =============================================================================

// ToastSlot holds at most one toast. Showing a new toast replaces the old
// one and makes the old one's pending expiry a no-op.
type ToastSlot struct {
	current *Toast
}

// Show replaces the current toast and returns the command that hides it.
func (s *ToastSlot) Show(message string, kind ToastKind, d time.Duration) tea.Cmd {
	t := NewToast(message, kind, d)
	s.current = &t
	return t.ExpireCmd()
}

// Expire hides the toast if id is still the current one. It reports
// whether anything was hidden.
func (s *ToastSlot) Expire(id int) bool {
	if s.current == nil || s.current.ID != id {
		return false
	}
	s.current = nil
	return true
}

// Current returns the visible toast.
func (s *ToastSlot) Current() (Toast, bool) {
	if s.current == nil {
		return Toast{}, false
	}
	return *s.current, true
}

// Visible reports whether a toast is showing.
func (s *ToastSlot) Visible() bool {
	return s.current != nil
}

// Clear hides the toast immediately.
func (s *ToastSlot) Clear() {
	s.current = nil
}

// =============================================================================
// TOAST MANAGER
// =============================================================================

// ToastManager keeps a bounded stack of toasts, newest first.
type ToastManager struct {
	toasts    []Toast
	maxToasts int
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{maxToasts: 3}
}

// Add pushes a toast and returns the command that expires it.
func (m *ToastManager) Add(message string, kind ToastKind) tea.Cmd {
	t := NewToast(message, kind, DurationFor(kind))
	m.toasts = append([]Toast{t}, m.toasts...)
	if len(m.toasts) > m.maxToasts {
		m.toasts = m.toasts[:m.maxToasts]
	}
	return t.ExpireCmd()
}

// Expire removes the toast with the given ID, if present.
func (m *ToastManager) Expire(id int) bool {
	for i, t := range m.toasts {
		if t.ID == id {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			return true
		}
	}
	return false
}

// Toasts returns a copy of the current toasts.
func (m *ToastManager) Toasts() []Toast {
	out := make([]Toast, len(m.toasts))
	copy(out, m.toasts)
	return out
}

// HasToasts returns true if there are any active toasts.
func (m *ToastManager) HasToasts() bool {
	return len(m.toasts) > 0
}

// =============================================================================
// TOAST RENDERING
// =============================================================================

func kindStyle(kind ToastKind) (lipgloss.AdaptiveColor, string) {
	switch kind {
	case ToastKindError:
		return styles.Rose, styles.StatusIndicators.Error
	case ToastKindWarning:
		return styles.Amber, styles.StatusIndicators.Warning
	case ToastKindSuccess:
		return styles.Emerald, styles.StatusIndicators.Success
	default:
		return styles.Cyan, styles.StatusIndicators.Info
	}
}

// RenderToast renders a single toast notification.
func RenderToast(toast Toast, width int) string {
	maxWidth := 60
	if width > 0 && width-8 < maxWidth {
		maxWidth = width - 8
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	color, icon := kindStyle(toast.Kind)
	iconStyle := lipgloss.NewStyle().
		Foreground(color).
		Bold(true)
	messageStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	message := toast.Message
	if lipgloss.Width(message) > maxWidth-10 {
		message = wrapToastText(message, maxWidth-10)
	}

	toastStyle := lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 2).
		MaxWidth(maxWidth)

	return toastStyle.Render(iconStyle.Render(icon+" ") + messageStyle.Render(message))
}

// RenderToastStack renders toasts stacked vertically, right aligned.
func RenderToastStack(toasts []Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, RenderToast(t, width))
	}
	stack := lipgloss.JoinVertical(lipgloss.Right, rendered...)
	if width > 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, stack)
	}
	return stack
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// Global toast ID counter; IDs are unique across slots and managers so an
// expiry message can be broadcast safely.
var toastIDMutex sync.Mutex
var toastIDCounter int

func generateToastID() int {
	toastIDMutex.Lock()
	defer toastIDMutex.Unlock()
	toastIDCounter++
	return toastIDCounter
}

// wrapToastText performs simple word wrapping for toast messages.
func wrapToastText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	var currentLine strings.Builder

	for _, word := range words {
		if currentLine.Len() == 0 {
			currentLine.WriteString(word)
		} else if lipgloss.Width(currentLine.String())+1+lipgloss.Width(word) <= maxWidth {
			currentLine.WriteString(" ")
			currentLine.WriteString(word)
		} else {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentLine.WriteString(word)
		}
	}

	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return strings.Join(lines, "\n")
}
