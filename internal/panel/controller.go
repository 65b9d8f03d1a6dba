// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package panel owns the lifecycle of the cheatsheet panel: at most one live
// panel per Controller, revealed instead of recreated while it is open.
package panel

import (
	"log"

	"github.com/jeranaias/mdcheat/internal/host"
)

const (
	// ViewType identifies cheatsheet panels to the host.
	ViewType = "markdownCheatsheet"
	// Title is shown in the panel's tab.
	Title = "Markdown Cheatsheet"
)

// State is the controller's lifecycle state.
type State int

const (
	// StateAbsent means no panel exists.
	StateAbsent State = iota
	// StateShown means a live panel exists.
	StateShown
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateAbsent:
		return "ABSENT"
	case StateShown:
		return "SHOWN"
	default:
		return "UNKNOWN"
	}
}

// instance is one live panel and the registrations made for it.
type instance struct {
	handle      host.Handle
	disposables []host.Disposable
}

// Controller shows the cheatsheet panel.
type Controller struct {
	panels      host.PanelService
	newDocument func() host.Document
	placement   host.Placement

	current *instance
}

// Option configures a Controller.
type Option func(*Controller)

// WithPlacement sets where the panel is created and revealed.
func WithPlacement(p host.Placement) Option {
	return func(c *Controller) {
		c.placement = p
	}
}

// New returns a controller in StateAbsent. newDocument is called once per
// created panel.
func New(panels host.PanelService, newDocument func() host.Document, opts ...Option) *Controller {
	c := &Controller{
		panels:      panels,
		newDocument: newDocument,
		placement:   host.PlacementBeside,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Show creates the panel, or reveals it if it already exists. A revealed
// panel is not re-rendered, so its search query survives.
func (c *Controller) Show() {
	if c.current != nil {
		c.panels.Reveal(c.current.handle, c.placement)
		return
	}

	h := c.panels.Create(ViewType, Title, c.placement, host.PanelOptions{
		EnableScripts:           true,
		RetainContextWhenHidden: true,
	})
	inst := &instance{handle: h}
	c.panels.SetContent(h, c.newDocument())
	inst.disposables = append(inst.disposables, c.panels.OnDispose(h, func() {
		c.disposed(inst)
	}))
	c.current = inst
	log.Printf("CHEATSHEET: panel %s created (%s)", h, c.placement)
}

// disposed runs when the host ends the panel's lifetime.
func (c *Controller) disposed(inst *instance) {
	if c.current == inst {
		c.current = nil
		log.Printf("CHEATSHEET: panel %s disposed", inst.handle)
	}
	for len(inst.disposables) > 0 {
		last := len(inst.disposables) - 1
		d := inst.disposables[last]
		inst.disposables = inst.disposables[:last]
		d.Dispose()
	}
}

// Dispose closes the panel if one is shown. The host's dispose notification
// returns the controller to StateAbsent.
func (c *Controller) Dispose() {
	if c.current == nil {
		return
	}
	inst := c.current
	c.panels.Dispose(inst.handle)
	// Hosts that do not notify synchronously still must not leave us SHOWN.
	if c.current == inst {
		c.disposed(inst)
	}
}

// SetPlacement changes where the panel is shown from the next Show on.
func (c *Controller) SetPlacement(p host.Placement) {
	c.placement = p
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	if c.current == nil {
		return StateAbsent
	}
	return StateShown
}

// Handle returns the live panel's handle, or "" when absent.
func (c *Controller) Handle() host.Handle {
	if c.current == nil {
		return ""
	}
	return c.current.handle
}
