// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error types and exit codes for mdcheat commands.
//
// Commands always return errors; main decides how to display them and
// which exit code to use.

package cli

import (
	"errors"
	"fmt"
	"io"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates configuration file or settings error
	ExitConfigError = 3
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// UsageError reports a malformed command line.
type UsageError struct {
	Reason string
	Hint   string // optional example of valid usage
}

func (e *UsageError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s\nUsage: %s", e.Reason, e.Hint)
	}
	return e.Reason
}

// ConfigError wraps a failure to load or validate configuration.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("config: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewUsageError creates a usage error.
func NewUsageError(reason string) error {
	return &UsageError{Reason: reason}
}

// NewUsageErrorWithHint creates a usage error with a usage line.
func NewUsageErrorWithHint(reason, hint string) error {
	return &UsageError{Reason: reason, Hint: hint}
}

// =============================================================================
// DISPLAY
// =============================================================================

// DisplayError writes err to w in the CLI error format.
func DisplayError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("[ERROR]"), err.Error())
}

// GetExitCode determines the exit code for err.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsageError
	}

	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return ExitConfigError
	}

	return ExitGeneralError
}

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
