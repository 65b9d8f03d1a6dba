// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the non-interactive
// commands of mdcheat.
//
// # Key Types
//
//   - Command: Enumeration of the available commands
//   - Args: Parsed global flags and command arguments
//   - ArgParser: Flag and positional splitting shared by all commands
//   - PlainSession: State of a line-mode cheatsheet session
//
// # Usage
//
//	cmd, args, err := cli.Parse(os.Args[1:])
//	if err != nil {
//	    cli.DisplayError(os.Stderr, err)
//	    os.Exit(cli.GetExitCode(err))
//	}
//	switch cmd {
//	case cli.CmdList:
//	    return cli.HandleList(os.Stdout, cheatsheet.Default(), args)
//	// ... other commands
//	}
//
// # Commands Overview
//
//   - tui: The workbench (default, handled by main)
//   - list: Print the filtered cheatsheet
//   - plain: Interactive line-mode cheatsheet (peterh/liner)
//   - config: Show, locate or initialize the config file
//   - version, help
//
// Exit codes: 0 success, 1 general error, 2 usage error, 3 config error.
package cli
