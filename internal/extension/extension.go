// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package extension is the cheatsheet's entry point into the workbench. It
// registers the cheatsheet commands and owns the panel controller for the
// lifetime of the activation.
package extension

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/mdcheat/internal/cheatsheet"
	"github.com/jeranaias/mdcheat/internal/commands"
	"github.com/jeranaias/mdcheat/internal/host"
	"github.com/jeranaias/mdcheat/internal/panel"
	"github.com/jeranaias/mdcheat/internal/ui/snippets"
	"github.com/jeranaias/mdcheat/internal/ui/styles"
)

// Command identifiers.
const (
	ShowCommand  = "markdown-cheatsheet.show"
	CloseCommand = "markdown-cheatsheet.close"
)

// ShowKey opens the cheatsheet from anywhere in the workbench.
const ShowKey = "ctrl+k"

// ActivatedMessage is logged once per activation.
const ActivatedMessage = "Markdown Cheatsheet is now active!"

// Extension is an activated cheatsheet extension.
type Extension struct {
	ctx        *host.ExtensionContext
	controller *panel.Controller
}

type options struct {
	catalogue *cheatsheet.Catalogue
	theme     *styles.Theme
}

// Option configures Activate.
type Option func(*options)

// WithCatalogue replaces the built-in catalogue.
func WithCatalogue(cat cheatsheet.Catalogue) Option {
	return func(o *options) {
		o.catalogue = &cat
	}
}

// WithTheme sets the theme used by cheatsheet documents.
func WithTheme(t *styles.Theme) Option {
	return func(o *options) {
		o.theme = t
	}
}

// Activate registers the cheatsheet commands. Every registration is pushed
// onto ctx.Subscriptions so ctx.DisposeAll undoes the activation.
func Activate(ctx *host.ExtensionContext, reg *commands.Registry, opts ...Option) *Extension {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	cat := cheatsheet.Default()
	if o.catalogue != nil {
		cat = *o.catalogue
	}
	theme := o.theme
	if theme == nil {
		theme = styles.NewTheme()
	}

	newDocument := func() host.Document {
		return snippets.New(cat, ctx.Clipboard, theme)
	}
	ext := &Extension{
		ctx:        ctx,
		controller: panel.New(ctx.Panels, newDocument, panel.WithPlacement(ctx.Placement)),
	}

	ctx.Push(
		reg.Register(&commands.Command{
			ID:       ShowCommand,
			Title:    "Markdown: Show Cheatsheet",
			Category: "Markdown",
			Keys:     []string{ShowKey},
			Run: func() tea.Cmd {
				ext.controller.Show()
				return nil
			},
		}),
		reg.Register(&commands.Command{
			ID:       CloseCommand,
			Title:    "Markdown: Close Cheatsheet",
			Category: "Markdown",
			Run: func() tea.Cmd {
				ext.controller.Dispose()
				return nil
			},
		}),
		host.DisposableFunc(ext.controller.Dispose),
	)

	log.Print(ActivatedMessage)
	return ext
}

// Controller returns the panel controller.
func (e *Extension) Controller() *panel.Controller {
	return e.controller
}

// SetPlacement changes where the cheatsheet opens from the next show on.
func (e *Extension) SetPlacement(p host.Placement) {
	e.ctx.Placement = p
	e.controller.SetPlacement(p)
}

// Deactivate closes the panel and unregisters the commands.
func (e *Extension) Deactivate() {
	e.ctx.DisposeAll()
	log.Printf("CHEATSHEET: deactivated")
}
