// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package workbench is the terminal editor that hosts extension panels. It
// implements host.PanelService on top of a Bubble Tea program: a textarea
// editor, a panel column with a tab strip, a command palette and toasts.
//
// Everything here runs on the Bubble Tea update goroutine. PanelService
// calls made from a command handler queue their document's Init command,
// which is returned from the same Update.
package workbench

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/mdcheat/internal/clipboard"
	"github.com/jeranaias/mdcheat/internal/commands"
	"github.com/jeranaias/mdcheat/internal/config"
	"github.com/jeranaias/mdcheat/internal/host"
	"github.com/jeranaias/mdcheat/internal/ui/components"
	"github.com/jeranaias/mdcheat/internal/ui/styles"
	"github.com/jeranaias/mdcheat/internal/util"
)

// Workbench command identifiers.
const (
	CommandPalette     = "workbench.palette"
	CommandTogglePanel = "workbench.togglePanel"
	CommandClosePanel  = "workbench.closePanel"
	CommandQuit        = "workbench.quit"
)

// ConfigReloadedMsg carries a configuration reloaded from disk.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// Extension is a loaded extension.
type Extension interface {
	Deactivate()
}

// placementSetter is implemented by extensions that open panels at a
// configurable placement.
type placementSetter interface {
	SetPlacement(host.Placement)
}

// Options configures New.
type Options struct {
	Theme *styles.Theme

	// Clipboard is the backend offered to extensions.
	Clipboard *clipboard.Switch

	// Placement is where extensions open new panels.
	Placement host.Placement

	// StartupCommands run once the program starts.
	StartupCommands []string
}

// Model is the workbench.
type Model struct {
	theme    *styles.Theme
	registry *commands.Registry
	palette  *components.CommandPalette
	toasts   *components.ToastManager
	header   *components.Header
	status   *components.StatusBar

	editor textarea.Model

	ctx        *host.ExtensionContext
	clipboard  *clipboard.Switch
	extensions []Extension
	startup    []string

	panels       []*panelEntry
	active       int
	focusPanel   bool
	columnHidden bool
	nextListener int

	pending []tea.Cmd

	width    int
	height   int
	quitting bool
}

// New creates a workbench. Extensions are loaded with Load before the
// program starts.
func New(opts Options) *Model {
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme()
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.NewSwitch(&clipboard.Memory{})
	}

	ta := textarea.New()
	ta.Placeholder = "Write Markdown here. Press ctrl+k for the cheatsheet."
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.Focus()

	registry := commands.NewRegistry()
	m := &Model{
		theme:     theme,
		registry:  registry,
		palette:   components.NewCommandPalette(registry),
		toasts:    components.NewToastManager(),
		header:    components.NewHeader(theme),
		status:    components.NewStatusBar(theme),
		editor:    ta,
		clipboard: clip,
		startup:   opts.StartupCommands,
		active:    -1,
		width:     80,
		height:    24,
	}
	m.ctx = &host.ExtensionContext{
		Clipboard: clip,
		Panels:    m,
		Placement: opts.Placement,
	}
	m.registerCommands()
	m.layout()
	return m
}

func (m *Model) registerCommands() {
	m.registry.Register(&commands.Command{
		ID:       CommandPalette,
		Title:    "Show All Commands",
		Category: "View",
		Keys:     []string{"ctrl+p"},
		Hidden:   true,
		Run:      m.palette.Show,
	})
	m.registry.Register(&commands.Command{
		ID:       CommandTogglePanel,
		Title:    "Toggle Panel Column",
		Category: "View",
		Keys:     []string{"ctrl+\\"},
		Run: func() tea.Cmd {
			m.toggleColumn()
			return nil
		},
	})
	m.registry.Register(&commands.Command{
		ID:       CommandClosePanel,
		Title:    "Close Panel",
		Category: "View",
		Keys:     []string{"ctrl+w"},
		Run: func() tea.Cmd {
			if p := m.visiblePanel(); p != nil && m.focusPanel {
				m.Dispose(p.handle)
			}
			return nil
		},
	})
	m.registry.Register(&commands.Command{
		ID:       CommandQuit,
		Title:    "Quit",
		Category: "Workbench",
		Keys:     []string{"ctrl+q", "ctrl+c"},
		Run: func() tea.Cmd {
			m.Shutdown()
			return tea.Quit
		},
	})
}

// Context returns the context handed to extensions on activation.
func (m *Model) Context() *host.ExtensionContext {
	return m.ctx
}

// Registry returns the workbench command registry.
func (m *Model) Registry() *commands.Registry {
	return m.registry
}

// Load records an activated extension so it is deactivated on quit.
func (m *Model) Load(ext Extension) {
	m.extensions = append(m.extensions, ext)
}

// Shutdown deactivates extensions, newest first, and closes any panels
// they left open. It is safe to call more than once.
func (m *Model) Shutdown() {
	if m.quitting {
		return
	}
	m.quitting = true
	for i := len(m.extensions) - 1; i >= 0; i-- {
		m.extensions[i].Deactivate()
	}
	m.extensions = nil
	for len(m.panels) > 0 {
		m.Dispose(m.panels[len(m.panels)-1].handle)
	}
	log.Printf("WORKBENCH: shut down")
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the editor cursor and runs the startup commands.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink}
	for _, id := range m.startup {
		cmds = append(cmds, commands.ExecuteCmd(id))
	}
	return tea.Batch(cmds...)
}

// Update routes msg and returns any commands queued by panel operations.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	if len(m.pending) == 0 {
		return m, cmd
	}
	cmds := append(m.pending, cmd)
	m.pending = nil
	return m, tea.Batch(cmds...)
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case commands.ExecuteMsg:
		return m.execute(msg.ID)

	case ConfigReloadedMsg:
		return m.applyConfig(msg)

	case components.ToastExpireMsg:
		m.toasts.Expire(msg.ID)
		return m.broadcast(msg)
	}

	return m.broadcast(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.palette.IsVisible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return cmd
	}

	if c := m.registry.ForKey(msg.String()); c != nil {
		return m.execute(c.ID)
	}

	if msg.Type == tea.KeyTab && m.visiblePanel() != nil {
		m.setFocus(!m.focusPanel)
		return nil
	}

	if m.focusPanel {
		p := m.visiblePanel()
		if p == nil || p.doc == nil || !p.opts.EnableScripts {
			return nil
		}
		var cmd tea.Cmd
		p.doc, cmd = p.doc.Update(msg)
		return cmd
	}

	if !m.editorVisible() {
		return nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.palette.IsVisible() {
		return nil
	}
	l := m.computeLayout()
	p := m.visiblePanel()

	if p != nil && msg.X >= l.columnX {
		if msg.Type == tea.MouseLeft {
			m.setFocus(true)
		}
		if p.doc == nil || !p.opts.EnableScripts {
			return nil
		}
		local := msg
		local.X = msg.X - l.docX
		local.Y = msg.Y - l.docY
		if local.X < 0 || local.Y < 0 || local.X >= l.docW || local.Y >= l.docH {
			return nil
		}
		var cmd tea.Cmd
		p.doc, cmd = p.doc.Update(local)
		return cmd
	}

	if l.editorW > 0 && msg.Type == tea.MouseLeft {
		m.setFocus(false)
	}
	return nil
}

// broadcast sends msg to the editor and every document.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)
	if m.palette.IsVisible() {
		m.palette, cmd = m.palette.Update(msg)
		cmds = append(cmds, cmd)
	}
	for _, p := range m.panels {
		if p.doc == nil {
			continue
		}
		p.doc, cmd = p.doc.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) execute(id string) tea.Cmd {
	cmd, err := m.registry.Execute(id)
	if err != nil {
		log.Printf("WORKBENCH: %v", err)
		return m.toasts.Add("Unknown command: "+id, components.ToastKindError)
	}
	return cmd
}

func (m *Model) applyConfig(msg ConfigReloadedMsg) tea.Cmd {
	if msg.Err != nil {
		return m.toasts.Add("Config reload failed: "+util.FirstLine(msg.Err.Error()), components.ToastKindError)
	}
	cfg := msg.Config
	backend, err := clipboard.New(cfg.Clipboard.Backend)
	if err != nil {
		return m.toasts.Add(err.Error(), components.ToastKindError)
	}
	m.clipboard.Set(backend)

	placement := cfg.Placement()
	m.ctx.Placement = placement
	for _, ext := range m.extensions {
		if ps, ok := ext.(placementSetter); ok {
			ps.SetPlacement(placement)
		}
	}
	log.Printf("WORKBENCH: config applied (clipboard=%s, placement=%s)", cfg.Clipboard.Backend, placement)
	return m.toasts.Add("Configuration reloaded", components.ToastKindStatus)
}

// =============================================================================
// FOCUS AND VISIBILITY
// =============================================================================

func (m *Model) setFocus(panel bool) {
	if panel && m.visiblePanel() == nil {
		panel = false
	}
	m.focusPanel = panel
	if panel {
		m.editor.Blur()
	} else {
		m.queue(m.editor.Focus())
	}
}

func (m *Model) toggleColumn() {
	if len(m.panels) == 0 {
		return
	}
	m.columnHidden = !m.columnHidden
	m.setFocus(!m.columnHidden)
	m.updateVisibility()
	m.layout()
}

func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

// FocusedPanel reports whether keyboard input goes to the visible panel.
func (m *Model) FocusedPanel() bool {
	return m.focusPanel
}

// ColumnHidden reports whether the panel column is hidden.
func (m *Model) ColumnHidden() bool {
	return m.columnHidden
}

// EditorValue returns the editor text.
func (m *Model) EditorValue() string {
	return m.editor.Value()
}

// Toasts returns the workbench notifications.
func (m *Model) Toasts() []components.Toast {
	return m.toasts.Toasts()
}

// Quitting reports whether Shutdown has run.
func (m *Model) Quitting() bool {
	return m.quitting
}

// hints returns key hints for the visible commands that have bindings.
func (m *Model) hints() []key.Binding {
	var out []key.Binding
	if p := m.visiblePanel(); p != nil {
		out = append(out, key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")))
	}
	for _, c := range m.registry.All() {
		if len(c.Keys) == 0 {
			continue
		}
		title := c.Title
		if i := strings.Index(title, ": "); i >= 0 {
			title = title[i+2:]
		}
		out = append(out, key.NewBinding(
			key.WithKeys(c.Keys...),
			key.WithHelp(c.Keys[0], strings.ToLower(title)),
		))
	}
	out = append(out, key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "commands")))
	return out
}
