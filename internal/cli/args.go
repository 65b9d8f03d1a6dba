// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Argument parsing for mdcheat commands.

package cli

import (
	"sort"
	"strings"
)

// =============================================================================
// ARG PARSER
// =============================================================================

// ArgParser splits raw arguments into flags and positionals.
// It handles these flag formats:
//   - Long flags: --flag value or --flag=value
//   - Short flags: -f value
//   - Boolean flags: --flag (never consume the next argument)
//   - Positional arguments: arguments without flags
//   - Subcommands: first positional argument
//
// A lone "--" ends flag parsing; everything after it is positional.
type ArgParser struct {
	subcommand string
	flags      map[string]string
	boolFlags  map[string]bool
	positional []string
	raw        []string
}

// NewArgParser parses raw. Names in boolNames are boolean flags and never
// take the following argument as their value.
//
// Example:
//
//	args := NewArgParser([]string{"--open", "list", "--placement", "active", "link"}, "open")
//	args.Subcommand()          // "list"
//	args.Flag("placement")     // "active"
//	args.BoolFlag("open")      // true
//	args.PositionalFrom(1)     // []string{"link"}
func NewArgParser(raw []string, boolNames ...string) *ArgParser {
	isBool := make(map[string]bool, len(boolNames))
	for _, name := range boolNames {
		isBool[name] = true
	}

	parser := &ArgParser{
		flags:      make(map[string]string),
		boolFlags:  make(map[string]bool),
		positional: make([]string, 0),
		raw:        raw,
	}

	i := 0
	for i < len(raw) {
		arg := raw[i]

		if arg == "--" {
			parser.positional = append(parser.positional, raw[i+1:]...)
			break
		}

		// "-" alone is a positional (conventionally stdin).
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			parser.positional = append(parser.positional, arg)
			i++
			continue
		}

		// --flag=value
		if name, value, ok := strings.Cut(arg, "="); ok {
			name = strings.TrimLeft(name, "-")
			if isBool[name] || value == "true" || value == "false" {
				b, err := ParseBoolString(value)
				parser.boolFlags[name] = err == nil && b
			} else {
				parser.flags[name] = value
			}
			i++
			continue
		}

		name := strings.TrimLeft(arg, "-")
		if !isBool[name] && i+1 < len(raw) && !strings.HasPrefix(raw[i+1], "-") {
			parser.flags[name] = raw[i+1]
			i += 2
			continue
		}
		parser.boolFlags[name] = true
		i++
	}

	if len(parser.positional) > 0 {
		parser.subcommand = parser.positional[0]
	}
	return parser
}

// Subcommand returns the first positional argument, or "".
func (p *ArgParser) Subcommand() string {
	return p.subcommand
}

// Flag returns the value of a string flag, or "" if it was not given.
// Any of names may match, so long and short forms can be looked up together.
func (p *ArgParser) Flag(names ...string) string {
	for _, name := range names {
		if val, ok := p.flags[strings.TrimLeft(name, "-")]; ok {
			return val
		}
	}
	return ""
}

// FlagOrDefault returns the flag value or a default if not found.
func (p *ArgParser) FlagOrDefault(name, defaultValue string) string {
	if val := p.Flag(name); val != "" {
		return val
	}
	return defaultValue
}

// BoolFlag reports whether any of names was given as a true boolean flag.
func (p *ArgParser) BoolFlag(names ...string) bool {
	for _, name := range names {
		if p.boolFlags[strings.TrimLeft(name, "-")] {
			return true
		}
	}
	return false
}

// Positional returns the positional argument at index, or "".
// Index 0 is the subcommand.
func (p *ArgParser) Positional(index int) string {
	if index < 0 || index >= len(p.positional) {
		return ""
	}
	return p.positional[index]
}

// PositionalFrom returns all positional arguments starting from index.
func (p *ArgParser) PositionalFrom(index int) []string {
	if index < 0 || index >= len(p.positional) {
		return []string{}
	}
	return p.positional[index:]
}

// PositionalCount returns the number of positional arguments.
func (p *ArgParser) PositionalCount() int {
	return len(p.positional)
}

// HasFlag returns true if the flag exists (either as string or bool flag).
func (p *ArgParser) HasFlag(name string) bool {
	name = strings.TrimLeft(name, "-")
	_, hasString := p.flags[name]
	_, hasBool := p.boolFlags[name]
	return hasString || hasBool
}

// FlagNames returns every flag name seen, sorted.
func (p *ArgParser) FlagNames() []string {
	names := make([]string, 0, len(p.flags)+len(p.boolFlags))
	for name := range p.flags {
		names = append(names, name)
	}
	for name := range p.boolFlags {
		if _, dup := p.flags[name]; !dup {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Raw returns the original raw arguments.
func (p *ArgParser) Raw() []string {
	return p.raw
}

// =============================================================================
// HELPERS
// =============================================================================

// ParseBoolString parses a boolean from various string representations.
// Accepts: true/false, yes/no, y/n, 1/0, on/off (case-insensitive)
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1", "on":
		return true, nil
	case "false", "no", "n", "0", "off":
		return false, nil
	default:
		return false, NewUsageError("invalid boolean value: " + s)
	}
}

// JoinPositionalArgs joins positional arguments from startIndex into a
// single string, for multi-word queries.
func JoinPositionalArgs(parser *ArgParser, startIndex int) string {
	return strings.Join(parser.PositionalFrom(startIndex), " ")
}
