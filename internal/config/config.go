// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/mdcheat/internal/clipboard"
	"github.com/jeranaias/mdcheat/internal/host"
	"github.com/jeranaias/mdcheat/internal/util"
)

// Environment variables read by ApplyEnvOverrides.
const (
	EnvClipboard = "MDCHEAT_CLIPBOARD"
	EnvPlacement = "MDCHEAT_PLACEMENT"
	EnvLogFile   = "MDCHEAT_LOG_FILE"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete mdcheat configuration.
type Config struct {
	UI        UIConfig        `toml:"ui"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	Log       LogConfig       `toml:"log"`
}

// UIConfig contains workbench settings.
type UIConfig struct {
	// Placement is where the cheatsheet opens: "beside" or "active"
	Placement string `toml:"placement"`

	// OpenOnStart shows the cheatsheet when the workbench starts
	OpenOnStart bool `toml:"open_on_start"`
}

// ClipboardConfig selects the clipboard backend.
type ClipboardConfig struct {
	// Backend is one of auto, system, osc52, memory
	Backend string `toml:"backend"`
}

// LogConfig controls the log file used in TUI mode.
type LogConfig struct {
	Enabled bool `toml:"enabled"`

	// File defaults to ~/.mdcheat/mdcheat.log when empty
	File string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Placement: host.PlacementBeside.String(),
		},
		Clipboard: ClipboardConfig{
			Backend: clipboard.BackendAuto,
		},
		Log: LogConfig{
			Enabled: true,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the mdcheat configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".mdcheat"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DefaultLogFile returns ~/.mdcheat/mdcheat.log.
func DefaultLogFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "mdcheat.log"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load reads ~/.mdcheat/config.toml if it exists and falls back to
// defaults otherwise. Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadFromPath(path)
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file with full
// validation. Keys missing from the file keep their defaults.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults. Unknown keys are an error.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	cfg.SetDefaults()
	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration atomically to path.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# mdcheat configuration file\n")
	buf.WriteString("# Changes are picked up while mdcheat is running.\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600, 0700); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks every field and returns all problems at once.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if _, ok := host.ParsePlacement(c.UI.Placement); !ok {
		errs = append(errs, ValidationError{
			Field:   "ui.placement",
			Message: fmt.Sprintf("must be beside or active, got %q", c.UI.Placement),
		})
	}

	if !validBackend(c.Clipboard.Backend) {
		errs = append(errs, ValidationError{
			Field: "clipboard.backend",
			Message: fmt.Sprintf("must be one of %s, got %q",
				strings.Join(clipboard.Backends(), ", "), c.Clipboard.Backend),
		})
	}

	if c.Log.File != "" && strings.HasSuffix(c.Log.File, string(filepath.Separator)) {
		errs = append(errs, ValidationError{
			Field:   "log.file",
			Message: "must be a file, not a directory",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validBackend(name string) bool {
	for _, b := range clipboard.Backends() {
		if b == name {
			return true
		}
	}
	return false
}

// SetDefaults fills empty fields with default values.
func (c *Config) SetDefaults() {
	d := Default()
	if c.UI.Placement == "" {
		c.UI.Placement = d.UI.Placement
	}
	if c.Clipboard.Backend == "" {
		c.Clipboard.Backend = d.Clipboard.Backend
	}
	c.UI.Placement = strings.ToLower(strings.TrimSpace(c.UI.Placement))
	c.Clipboard.Backend = strings.ToLower(strings.TrimSpace(c.Clipboard.Backend))
}

// ApplyEnvOverrides applies environment variable overrides:
//   - MDCHEAT_CLIPBOARD: overrides clipboard.backend
//   - MDCHEAT_PLACEMENT: overrides ui.placement
//   - MDCHEAT_LOG_FILE: overrides log.file and enables logging
func (c *Config) ApplyEnvOverrides() {
	if backend := os.Getenv(EnvClipboard); backend != "" {
		c.Clipboard.Backend = strings.ToLower(backend)
	}
	if placement := os.Getenv(EnvPlacement); placement != "" {
		c.UI.Placement = strings.ToLower(placement)
	}
	if file := os.Getenv(EnvLogFile); file != "" {
		c.Log.File = file
		c.Log.Enabled = true
	}
}

// Placement returns the parsed cheatsheet placement. Invalid values map to
// beside; Validate reports them.
func (c *Config) Placement() host.Placement {
	p, ok := host.ParsePlacement(c.UI.Placement)
	if !ok {
		return host.PlacementBeside
	}
	return p
}

// LogFile returns the effective log path, or "" when logging is disabled.
func (c *Config) LogFile() string {
	if !c.Log.Enabled {
		return ""
	}
	if c.Log.File != "" {
		return c.Log.File
	}
	path, err := DefaultLogFile()
	if err != nil {
		return ""
	}
	return path
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String renders the configuration as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return buf.String()
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig   *Config
	globalConfigMu sync.RWMutex
)

// Global returns the configuration installed by SetGlobal, or defaults.
func Global() *Config {
	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	if globalConfig == nil {
		return Default()
	}
	return globalConfig.Clone()
}

// SetGlobal installs cfg as the process configuration. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg.Clone()
}

// ResetGlobalForTesting clears the installed configuration.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
}
