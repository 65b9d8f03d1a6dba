// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for mdcheat.
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Command line flags (applied by the caller)
//   - Environment variables (MDCHEAT_*)
//   - ~/.mdcheat/config.toml
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Watch for changes:
//
//	err := config.Watch(ctx, path, func(cfg *config.Config, err error) {
//	    // runs on the watcher goroutine
//	})
package config
