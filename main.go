// mdcheat - A Markdown cheatsheet panel for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/mdcheat/internal/cheatsheet"
	"github.com/jeranaias/mdcheat/internal/cli"
	"github.com/jeranaias/mdcheat/internal/clipboard"
	"github.com/jeranaias/mdcheat/internal/config"
	"github.com/jeranaias/mdcheat/internal/extension"
	"github.com/jeranaias/mdcheat/internal/ui/styles"
	"github.com/jeranaias/mdcheat/internal/ui/workbench"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	cmd, args, err := cli.Parse(argv)
	cli.ConfigureColors(args.NoColor)
	if err != nil {
		cli.DisplayError(os.Stderr, err)
		return cli.GetExitCode(err)
	}

	switch cmd {
	case cli.CmdHelp:
		cli.PrintUsage(os.Stdout)
		return cli.ExitSuccess
	case cli.CmdVersion:
		cli.PrintVersion(os.Stdout)
		return cli.ExitSuccess
	case cli.CmdConfig:
		return exit(cli.HandleConfig(os.Stdout, args))
	}

	cfg, err := cli.LoadConfig(args)
	if err != nil {
		return exit(err)
	}
	config.SetGlobal(cfg)

	switch cmd {
	case cli.CmdList:
		log.SetOutput(io.Discard)
		return exit(cli.HandleList(os.Stdout, cheatsheet.Default(), args))
	case cli.CmdPlain:
		closeLog := setupLogging(cfg, os.Stderr)
		defer closeLog()
		clip, err := clipboard.New(cfg.Clipboard.Backend)
		if err != nil {
			return exit(&cli.ConfigError{Err: err})
		}
		return exit(cli.RunPlain(cheatsheet.Default(), clip))
	default:
		return exit(runTUI(args, cfg))
	}
}

func exit(err error) int {
	if err != nil {
		cli.DisplayError(os.Stderr, err)
	}
	return cli.GetExitCode(err)
}

// setupLogging sends the standard logger to the configured file, or
// discards it. Logs must never reach the terminal the UI is drawn on.
// Failures are reported to warn and leave logging disabled.
func setupLogging(cfg *config.Config, warn io.Writer) func() {
	path := cfg.LogFile()
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}
	err := os.MkdirAll(filepath.Dir(path), 0700)
	var f *os.File
	if err == nil {
		f, err = tea.LogToFile(path, "mdcheat")
	}
	if err != nil {
		fmt.Fprintf(warn, "Warning: logging disabled: %v\n", err)
		log.SetOutput(io.Discard)
		return func() {}
	}
	return func() { f.Close() }
}

// runTUI starts the workbench with the cheatsheet extension loaded.
func runTUI(args cli.Args, cfg *config.Config) error {
	closeLog := setupLogging(cfg, os.Stderr)
	defer closeLog()

	backend, err := clipboard.New(cfg.Clipboard.Backend)
	if err != nil {
		return &cli.ConfigError{Err: err}
	}

	theme := styles.NewTheme()
	opts := workbench.Options{
		Theme:     theme,
		Clipboard: clipboard.NewSwitch(backend),
		Placement: cfg.Placement(),
	}
	if cfg.UI.OpenOnStart {
		opts.StartupCommands = []string{extension.ShowCommand}
	}

	wb := workbench.New(opts)
	ext := extension.Activate(wb.Context(), wb.Registry(),
		extension.WithCatalogue(cheatsheet.Default()),
		extension.WithTheme(theme),
	)
	wb.Load(ext)
	defer wb.Shutdown()

	p := tea.NewProgram(
		wb,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if path, err := args.ConfigFile(); err == nil {
		err := config.Watch(ctx, path, func(reloaded *config.Config, err error) {
			if err == nil {
				args.ApplyTo(reloaded)
				err = reloaded.Validate()
			}
			if err == nil {
				config.SetGlobal(reloaded)
			}
			p.Send(workbench.ConfigReloadedMsg{Config: reloaded, Err: err})
		})
		if err != nil {
			log.Printf("CONFIG: hot reload disabled: %v", err)
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running mdcheat: %w", err)
	}
	return nil
}
