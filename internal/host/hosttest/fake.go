// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package hosttest provides an in-memory host.PanelService for tests.
package hosttest

import (
	"fmt"

	"github.com/jeranaias/mdcheat/internal/host"
)

// Panel is a panel recorded by Panels.
type Panel struct {
	Handle    host.Handle
	ViewType  string
	Title     string
	Placement host.Placement
	Options   host.PanelOptions
	Document  host.Document
	Disposed  bool

	listeners map[int]func()
}

// Panels records every call made to it.
type Panels struct {
	Created  []*Panel
	Reveals  []host.Handle
	Contents int

	byHandle map[host.Handle]*Panel
	nextID   int
}

// NewPanels returns an empty fake.
func NewPanels() *Panels {
	return &Panels{byHandle: make(map[host.Handle]*Panel)}
}

// Create implements host.PanelService.
func (p *Panels) Create(viewType, title string, placement host.Placement, opts host.PanelOptions) host.Handle {
	p.nextID++
	h := host.Handle(fmt.Sprintf("panel-%d", len(p.Created)+1))
	panel := &Panel{
		Handle:    h,
		ViewType:  viewType,
		Title:     title,
		Placement: placement,
		Options:   opts,
		listeners: make(map[int]func()),
	}
	p.Created = append(p.Created, panel)
	p.byHandle[h] = panel
	return h
}

// Reveal implements host.PanelService.
func (p *Panels) Reveal(h host.Handle, placement host.Placement) {
	if panel, ok := p.byHandle[h]; ok {
		panel.Placement = placement
	}
	p.Reveals = append(p.Reveals, h)
}

// SetContent implements host.PanelService.
func (p *Panels) SetContent(h host.Handle, doc host.Document) {
	if panel, ok := p.byHandle[h]; ok {
		panel.Document = doc
		p.Contents++
	}
}

// OnDispose implements host.PanelService.
func (p *Panels) OnDispose(h host.Handle, fn func()) host.Disposable {
	panel, ok := p.byHandle[h]
	if !ok {
		return host.DisposableFunc(nil)
	}
	p.nextID++
	id := p.nextID
	panel.listeners[id] = fn
	return host.Once(func() { delete(panel.listeners, id) })
}

// Dispose implements host.PanelService. It behaves like the user closing
// the panel: listeners fire once and the panel is gone.
func (p *Panels) Dispose(h host.Handle) {
	panel, ok := p.byHandle[h]
	if !ok || panel.Disposed {
		return
	}
	panel.Disposed = true
	delete(p.byHandle, h)
	for _, fn := range panel.listeners {
		fn()
	}
}

// Live returns the panels that have not been disposed.
func (p *Panels) Live() []*Panel {
	var live []*Panel
	for _, panel := range p.Created {
		if !panel.Disposed {
			live = append(live, panel)
		}
	}
	return live
}

// Listeners returns the number of registered dispose listeners across all
// panels, disposed or not.
func (p *Panels) Listeners() int {
	n := 0
	for _, panel := range p.Created {
		n += len(panel.listeners)
	}
	return n
}

// Fire invokes the dispose listeners of h without removing the panel,
// simulating a late or duplicated host notification.
func (p *Panels) Fire(h host.Handle) {
	for _, panel := range p.Created {
		if panel.Handle != h {
			continue
		}
		for _, fn := range panel.listeners {
			fn()
		}
	}
}
