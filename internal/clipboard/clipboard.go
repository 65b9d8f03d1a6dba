// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package clipboard provides the clipboard backends the workbench offers to
// extensions.
//
// Backends:
//   - system: the OS clipboard through github.com/atotto/clipboard
//   - osc52:  the terminal's clipboard escape sequence (works over SSH)
//   - memory: an in-process buffer, for tests and headless runs
//   - auto:   system, falling back to osc52
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"

	"github.com/jeranaias/mdcheat/internal/host"
)

// Backend names accepted by New.
const (
	BackendAuto   = "auto"
	BackendSystem = "system"
	BackendOSC52  = "osc52"
	BackendMemory = "memory"
)

// ErrUnknownBackend is returned by New for unrecognized backend names.
var ErrUnknownBackend = errors.New("unknown clipboard backend")

// ErrUnsupported is returned by System when no clipboard utility exists.
var ErrUnsupported = errors.New("system clipboard unsupported")

// Backends lists the valid backend names.
func Backends() []string {
	return []string{BackendAuto, BackendSystem, BackendOSC52, BackendMemory}
}

// New returns the backend with the given name.
func New(name string) (host.Clipboard, error) {
	switch name {
	case BackendAuto, "":
		return NewAuto(System{}, NewOSC52(os.Stdout)), nil
	case BackendSystem:
		return System{}, nil
	case BackendOSC52:
		return NewOSC52(os.Stdout), nil
	case BackendMemory:
		return &Memory{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// =============================================================================
// SYSTEM
// =============================================================================

// System writes to the OS clipboard.
type System struct{}

// WriteText implements host.Clipboard.
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard: %w", err)
	}
	return nil
}

// =============================================================================
// OSC52
// =============================================================================

// OSC52 asks the terminal to set its clipboard.
type OSC52 struct {
	mu  sync.Mutex
	out *termenv.Output
}

// NewOSC52 returns a backend writing escape sequences to w.
func NewOSC52(w io.Writer) *OSC52 {
	return &OSC52{out: termenv.NewOutput(w)}
}

// WriteText implements host.Clipboard. The terminal gives no
// acknowledgment, so this never fails.
func (o *OSC52) WriteText(text string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.out.Copy(text)
	return nil
}

// =============================================================================
// MEMORY
// =============================================================================

// Memory keeps the clipboard in process.
type Memory struct {
	mu     sync.Mutex
	text   string
	writes int
}

// WriteText implements host.Clipboard.
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.writes++
	return nil
}

// Text returns the last written text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes returns how many times WriteText was called.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// =============================================================================
// AUTO
// =============================================================================

// Auto tries a primary backend and falls back to a secondary one.
type Auto struct {
	primary  host.Clipboard
	fallback host.Clipboard
}

// NewAuto returns a backend that uses fallback when primary fails.
func NewAuto(primary, fallback host.Clipboard) *Auto {
	return &Auto{primary: primary, fallback: fallback}
}

// WriteText implements host.Clipboard.
func (a *Auto) WriteText(text string) error {
	err := a.primary.WriteText(text)
	if err == nil {
		return nil
	}
	if ferr := a.fallback.WriteText(text); ferr != nil {
		return errors.Join(err, ferr)
	}
	return nil
}

// =============================================================================
// SWITCH
// =============================================================================

// Switch delegates to a backend that can be replaced at runtime.
type Switch struct {
	mu      sync.RWMutex
	current host.Clipboard
}

// NewSwitch returns a Switch delegating to c.
func NewSwitch(c host.Clipboard) *Switch {
	return &Switch{current: c}
}

// Set replaces the delegate.
func (s *Switch) Set(c host.Clipboard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = c
}

// WriteText implements host.Clipboard.
func (s *Switch) WriteText(text string) error {
	s.mu.RLock()
	c := s.current
	s.mu.RUnlock()
	if c == nil {
		return ErrUnsupported
	}
	return c.WriteText(text)
}
