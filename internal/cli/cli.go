// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command-line parsing for mdcheat.
package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdList
	CmdPlain
	CmdConfig
	CmdVersion
	CmdHelp
)

func (c Command) String() string {
	switch c {
	case CmdTUI:
		return "tui"
	case CmdList:
		return "list"
	case CmdPlain:
		return "plain"
	case CmdConfig:
		return "config"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// Args holds the parsed command line. Empty strings mean "not given".
type Args struct {
	// Global flags
	ConfigPath string // --config PATH
	LogFile    string // --log FILE
	Clipboard  string // --clipboard BACKEND
	Placement  string // --placement beside|active
	Open       bool   // --open
	NoColor    bool   // --no-color

	// Query is the filter for list.
	Query string

	// Subcommand is the config subcommand.
	Subcommand string
}

// Flags that take no value.
var boolFlagNames = []string{"open", "no-color", "help", "h", "version", "v"}

// Flags that take a value.
var valueFlagNames = []string{"config", "log", "clipboard", "placement"}

const usageText = `mdcheat - Markdown cheatsheet for the terminal

Usage:
  mdcheat [flags] [command]

Commands:
  tui             Open the workbench (default)
  list [query]    Print the cheatsheet, filtered by query
  plain           Line-mode cheatsheet: type to filter, :N to copy, :q to quit
  config [show|path|init]
                  Show the effective configuration, its path, or write defaults
  version         Show version information
  help            Show this help

Flags:
  --config PATH         Config file (default ~/.mdcheat/config.toml)
  --log FILE            Write logs to FILE
  --clipboard BACKEND   auto | system | osc52 | memory
  --placement WHERE     beside | active
  --open                Show the cheatsheet on startup
  --no-color            Disable colored output

Keys (tui):
  ctrl+k   show cheatsheet       ctrl+p   command palette
  tab      switch focus          ctrl+\   toggle panel column
  ctrl+w   close panel           ctrl+q   quit

Environment:
  MDCHEAT_CLIPBOARD, MDCHEAT_PLACEMENT, MDCHEAT_LOG_FILE, NO_COLOR
`

// PrintUsage writes the help text to w.
func PrintUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}

// PrintVersion writes version information to w.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "mdcheat %s\n", Version)
	fmt.Fprintf(w, "  Commit:  %s\n", GitCommit)
	fmt.Fprintf(w, "  Built:   %s\n", BuildDate)
	fmt.Fprintf(w, "  Go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Parse parses argv (without the program name).
func Parse(argv []string) (Command, Args, error) {
	p := NewArgParser(argv, boolFlagNames...)

	var args Args
	if err := checkFlags(p); err != nil {
		return CmdHelp, args, err
	}

	args.ConfigPath = p.Flag("config")
	args.LogFile = p.Flag("log")
	args.Clipboard = p.Flag("clipboard")
	args.Placement = p.Flag("placement")
	args.Open = p.BoolFlag("open")
	args.NoColor = p.BoolFlag("no-color")

	if p.BoolFlag("help", "h") {
		return CmdHelp, args, nil
	}
	if p.BoolFlag("version", "v") {
		return CmdVersion, args, nil
	}

	sub := strings.ToLower(p.Subcommand())
	switch sub {
	case "", "tui":
		if p.PositionalCount() > 1 {
			return CmdTUI, args, NewUsageErrorWithHint(
				"unexpected argument: "+p.Positional(1), "mdcheat [flags] tui")
		}
		return CmdTUI, args, nil

	case "list", "ls":
		args.Query = JoinPositionalArgs(p, 1)
		return CmdList, args, nil

	case "plain", "repl":
		return CmdPlain, args, nil

	case "config":
		args.Subcommand = strings.ToLower(p.Positional(1))
		return CmdConfig, args, nil

	case "version":
		return CmdVersion, args, nil

	case "help":
		return CmdHelp, args, nil

	default:
		return CmdHelp, args, NewUsageErrorWithHint(
			"unknown command: "+p.Subcommand(), "mdcheat [flags] [tui|list|plain|config|version|help]")
	}
}

// checkFlags rejects unknown flags and value flags given without a value.
func checkFlags(p *ArgParser) error {
	known := make(map[string]bool)
	for _, name := range boolFlagNames {
		known[name] = true
	}
	for _, name := range valueFlagNames {
		known[name] = true
	}

	for _, name := range p.FlagNames() {
		if !known[name] {
			return NewUsageError("unknown flag: --" + name)
		}
	}
	for _, name := range valueFlagNames {
		if p.HasFlag(name) && p.Flag(name) == "" {
			return NewUsageError("flag --" + name + " requires a value")
		}
	}
	return nil
}
