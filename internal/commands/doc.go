// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the workbench command system.
//
// Extensions register commands by id; the workbench runs them from key
// bindings and from the command palette.
//
// # Key Types
//
//   - Command: id, title, key bindings and the function to run
//   - Registry: registered commands, looked up by id or key
//   - ExecuteMsg: asks the workbench to run a command on its update loop
//
// # Usage
//
//	sub := registry.Register(&commands.Command{
//	    ID:    "markdown-cheatsheet.show",
//	    Title: "Markdown: Show Cheatsheet",
//	    Keys:  []string{"ctrl+k"},
//	    Run:   func() tea.Cmd { controller.Show(); return nil },
//	})
//	defer sub.Dispose()
package commands
