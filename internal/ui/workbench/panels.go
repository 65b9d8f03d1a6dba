// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package workbench

import (
	"log"

	"github.com/google/uuid"

	"github.com/jeranaias/mdcheat/internal/host"
)

// panelEntry is one open panel in the column.
type panelEntry struct {
	handle    host.Handle
	viewType  string
	title     string
	placement host.Placement
	opts      host.PanelOptions
	doc       host.Document

	listeners map[int]func()

	// hidden is true while the panel is not on screen.
	hidden bool
}

// =============================================================================
// host.PanelService
// =============================================================================

// Create opens a panel and focuses it.
func (m *Model) Create(viewType, title string, placement host.Placement, opts host.PanelOptions) host.Handle {
	p := &panelEntry{
		handle:    host.Handle(uuid.NewString()),
		viewType:  viewType,
		title:     title,
		placement: placement,
		opts:      opts,
		listeners: make(map[int]func()),
		hidden:    true,
	}
	m.panels = append(m.panels, p)
	m.active = len(m.panels) - 1
	m.columnHidden = false
	m.setFocus(true)
	m.updateVisibility()
	m.layout()
	log.Printf("WORKBENCH: created panel %s %q (%s)", p.handle, title, placement)
	return p.handle
}

// Reveal focuses the panel, moving it to placement.
func (m *Model) Reveal(h host.Handle, placement host.Placement) {
	idx := m.indexOf(h)
	if idx < 0 {
		return
	}
	m.panels[idx].placement = placement
	m.active = idx
	m.columnHidden = false
	m.setFocus(true)
	m.updateVisibility()
	m.layout()
}

// SetContent installs doc as the panel's document. Its Init command runs
// with the next update.
func (m *Model) SetContent(h host.Handle, doc host.Document) {
	idx := m.indexOf(h)
	if idx < 0 || doc == nil {
		return
	}
	m.panels[idx].doc = doc
	m.layout()
	m.queue(doc.Init())
}

// OnDispose registers fn to run when the panel is disposed.
func (m *Model) OnDispose(h host.Handle, fn func()) host.Disposable {
	idx := m.indexOf(h)
	if idx < 0 {
		return host.DisposableFunc(nil)
	}
	p := m.panels[idx]
	m.nextListener++
	id := m.nextListener
	p.listeners[id] = fn
	return host.Once(func() { delete(p.listeners, id) })
}

// Dispose closes the panel and notifies its listeners once.
func (m *Model) Dispose(h host.Handle) {
	idx := m.indexOf(h)
	if idx < 0 {
		return
	}
	p := m.panels[idx]
	m.panels = append(m.panels[:idx], m.panels[idx+1:]...)

	switch {
	case len(m.panels) == 0:
		m.active = -1
		m.setFocus(false)
	case idx < m.active:
		m.active--
	case m.active >= len(m.panels):
		m.active = len(m.panels) - 1
	}
	m.updateVisibility()
	m.layout()
	log.Printf("WORKBENCH: disposed panel %s %q", p.handle, p.title)

	listeners := make([]func(), 0, len(p.listeners))
	for _, fn := range p.listeners {
		listeners = append(listeners, fn)
	}
	p.listeners = map[int]func(){}
	for _, fn := range listeners {
		fn()
	}
}

// =============================================================================
// PANEL HELPERS
// =============================================================================

func (m *Model) indexOf(h host.Handle) int {
	for i, p := range m.panels {
		if p.handle == h {
			return i
		}
	}
	return -1
}

// activePanel returns the panel shown in the column, or nil.
func (m *Model) activePanel() *panelEntry {
	if m.active < 0 || m.active >= len(m.panels) {
		return nil
	}
	return m.panels[m.active]
}

// visiblePanel returns the panel on screen, or nil.
func (m *Model) visiblePanel() *panelEntry {
	if m.columnHidden {
		return nil
	}
	return m.activePanel()
}

// updateVisibility resets panels that come back on screen without
// retained context.
func (m *Model) updateVisibility() {
	visible := m.visiblePanel()
	for _, p := range m.panels {
		onScreen := p == visible
		if onScreen && p.hidden && !p.opts.RetainContextWhenHidden && p.doc != nil {
			if r, ok := p.doc.(host.Resetter); ok {
				r.Reset()
			}
		}
		p.hidden = !onScreen
	}
	if visible == nil && m.focusPanel {
		m.setFocus(false)
	}
}

// Panels returns the titles of the open panels in tab order.
func (m *Model) Panels() []string {
	titles := make([]string, len(m.panels))
	for i, p := range m.panels {
		titles[i] = p.title
	}
	return titles
}

// ActiveHandle returns the handle of the panel shown in the column, or "".
func (m *Model) ActiveHandle() host.Handle {
	if p := m.activePanel(); p != nil {
		return p.handle
	}
	return ""
}

// Document returns the document of the panel with handle h.
func (m *Model) Document(h host.Handle) host.Document {
	if idx := m.indexOf(h); idx >= 0 {
		return m.panels[idx].doc
	}
	return nil
}

// Placement returns where the panel with handle h is shown.
func (m *Model) Placement(h host.Handle) (host.Placement, bool) {
	if idx := m.indexOf(h); idx >= 0 {
		return m.panels[idx].placement, true
	}
	return 0, false
}
