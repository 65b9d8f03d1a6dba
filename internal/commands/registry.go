// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/mdcheat/internal/host"
)

// ErrUnknownCommand is returned when executing an id nobody registered.
var ErrUnknownCommand = errors.New("unknown command")

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Command is an action the workbench can run.
type Command struct {
	// ID is the stable identifier (e.g., "markdown-cheatsheet.show")
	ID string

	// Title is shown in the command palette
	Title string

	// Category groups commands in the palette
	Category string

	// Keys are key bindings in tea.KeyMsg.String() form (e.g., "ctrl+k")
	Keys []string

	// Run executes the command on the update loop
	Run func() tea.Cmd

	// Hidden commands don't appear in the palette
	Hidden bool
}

// ExecuteMsg requests running the command with the given id.
type ExecuteMsg struct {
	ID string
}

// ExecuteCmd returns a tea.Cmd producing ExecuteMsg for id.
func ExecuteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return ExecuteMsg{ID: id}
	}
}

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry holds all registered commands.
type Registry struct {
	commands map[string]*Command
	keys     map[string]*Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*Command),
		keys:     make(map[string]*Command),
	}
}

// Register adds a command. Registering an existing id replaces it. The
// returned Disposable removes the command and its key bindings.
func (r *Registry) Register(cmd *Command) host.Disposable {
	if old, ok := r.commands[cmd.ID]; ok {
		r.unbind(old)
	}
	r.commands[cmd.ID] = cmd
	for _, k := range cmd.Keys {
		r.keys[k] = cmd
	}
	return host.Once(func() {
		if r.commands[cmd.ID] != cmd {
			return
		}
		delete(r.commands, cmd.ID)
		r.unbind(cmd)
	})
}

func (r *Registry) unbind(cmd *Command) {
	for _, k := range cmd.Keys {
		if r.keys[k] == cmd {
			delete(r.keys, k)
		}
	}
}

// Get retrieves a command by id.
func (r *Registry) Get(id string) *Command {
	return r.commands[id]
}

// ForKey retrieves the command bound to key.
func (r *Registry) ForKey(key string) *Command {
	return r.keys[key]
}

// All returns the visible commands sorted by category, then title.
func (r *Registry) All() []*Command {
	cmds := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		if !cmd.Hidden {
			cmds = append(cmds, cmd)
		}
	}
	sort.Slice(cmds, func(i, j int) bool {
		if cmds[i].Category != cmds[j].Category {
			return cmds[i].Category < cmds[j].Category
		}
		return cmds[i].Title < cmds[j].Title
	})
	return cmds
}

// Len returns the number of registered commands, hidden ones included.
func (r *Registry) Len() int {
	return len(r.commands)
}

// Execute runs the command with the given id.
func (r *Registry) Execute(id string) (tea.Cmd, error) {
	cmd, ok := r.commands[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, id)
	}
	if cmd.Run == nil {
		return nil, nil
	}
	return cmd.Run(), nil
}
