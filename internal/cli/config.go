// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Config loading and the config command.
//
// Command: config [subcommand]
//
// Subcommands:
//
//	show (default)   Print the effective configuration as TOML
//	path             Print the config file path
//	init             Write the default configuration if no file exists
//
// Examples:
//
//	mdcheat config
//	mdcheat --clipboard osc52 config show
//	mdcheat config init

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jeranaias/mdcheat/internal/config"
)

// ConfigFile returns the config path in effect: --config, or the default.
func (a Args) ConfigFile() (string, error) {
	if a.ConfigPath != "" {
		return a.ConfigPath, nil
	}
	return config.ConfigPath()
}

// ApplyTo overrides cfg with the flags that were given.
func (a Args) ApplyTo(cfg *config.Config) {
	if a.Clipboard != "" {
		cfg.Clipboard.Backend = strings.ToLower(a.Clipboard)
	}
	if a.Placement != "" {
		cfg.UI.Placement = strings.ToLower(a.Placement)
	}
	if a.LogFile != "" {
		cfg.Log.File = a.LogFile
		cfg.Log.Enabled = true
	}
	if a.Open {
		cfg.UI.OpenOnStart = true
	}
}

// LoadConfig loads configuration with flags applied on top. An explicit
// --config file must exist.
func LoadConfig(a Args) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if a.ConfigPath != "" {
		cfg, err = config.LoadFromPath(a.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, &ConfigError{Path: a.ConfigPath, Err: err}
	}

	a.ApplyTo(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{Err: err}
	}
	return cfg, nil
}

// HandleConfig runs the config command.
func HandleConfig(w io.Writer, a Args) error {
	switch a.Subcommand {
	case "", "show":
		cfg, err := LoadConfig(a)
		if err != nil {
			return err
		}
		fmt.Fprint(w, cfg.String())
		return nil

	case "path":
		path, err := a.ConfigFile()
		if err != nil {
			return &ConfigError{Err: err}
		}
		fmt.Fprintln(w, path)
		return nil

	case "init":
		path, err := a.ConfigFile()
		if err != nil {
			return &ConfigError{Err: err}
		}
		if _, err := os.Stat(path); err == nil {
			return &ConfigError{Path: path, Err: errors.New("file already exists")}
		}
		if err := config.SaveTOML(config.Default(), path); err != nil {
			return &ConfigError{Path: path, Err: err}
		}
		fmt.Fprintf(w, "%s %s\n", SuccessStyle.Render("Wrote"), path)
		return nil

	default:
		return NewUsageErrorWithHint("unknown config subcommand: "+a.Subcommand,
			"mdcheat config [show|path|init]")
	}
}
