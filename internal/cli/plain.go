// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// plain.go - The plain command: a line-mode cheatsheet.
//
// Command: plain
//
// Input:
//
//	<query>   Filter the cheatsheet and print the numbered listing
//	(empty)   Print the full listing
//	:N        Copy item N of the last listing
//	:h        Show input help
//	:q        Quit (also ctrl+d, ctrl+c)

package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/mdcheat/internal/cheatsheet"
	"github.com/jeranaias/mdcheat/internal/config"
	"github.com/jeranaias/mdcheat/internal/host"
	"github.com/jeranaias/mdcheat/internal/ui/snippets"
)

const (
	plainPrompt      = "cheatsheet> "
	plainHistoryFile = "plain_history"
)

const plainHelp = `  <query>  filter the cheatsheet
  :N       copy item N
  :q       quit`

// =============================================================================
// SESSION
// =============================================================================

// PlainSession holds the state of a plain session. It has no terminal
// dependency; RunPlain drives it from liner.
type PlainSession struct {
	cat   cheatsheet.Catalogue
	clip  host.Clipboard
	out   io.Writer
	width int

	// last is the most recent listing, numbered from 1.
	last []cheatsheet.Ref
}

// NewPlainSession creates a session writing to out. The full listing is
// the initial "last listing", so :N works before any query.
func NewPlainSession(cat cheatsheet.Catalogue, clip host.Clipboard, out io.Writer, width int) *PlainSession {
	return &PlainSession{
		cat:   cat,
		clip:  clip,
		out:   out,
		width: width,
		last:  cat.Filter("").Refs(),
	}
}

// Handle processes one input line. It returns false when the session
// should end.
func (s *PlainSession) Handle(line string) bool {
	input := strings.TrimSpace(line)

	if !strings.HasPrefix(input, ":") {
		s.last = WriteListing(s.out, s.cat, input, s.width)
		return true
	}

	switch cmd := strings.ToLower(strings.TrimPrefix(input, ":")); cmd {
	case "q", "quit", "exit":
		return false
	case "h", "help", "?":
		fmt.Fprintln(s.out, DimStyle.Render(plainHelp))
	default:
		n, err := strconv.Atoi(cmd)
		if err != nil {
			DisplayError(s.out, fmt.Errorf("unknown input %q (:h for help)", input))
			return true
		}
		s.copy(n)
	}
	return true
}

// Last returns the refs of the most recent listing.
func (s *PlainSession) Last() []cheatsheet.Ref {
	return s.last
}

func (s *PlainSession) copy(n int) {
	if n < 1 || n > len(s.last) {
		DisplayError(s.out, fmt.Errorf("no item %d in the last listing (1-%d)", n, len(s.last)))
		return
	}
	item, ok := s.cat.Item(s.last[n-1])
	if !ok {
		DisplayError(s.out, fmt.Errorf("no item %d", n))
		return
	}

	if s.clip == nil {
		DisplayError(s.out, errors.New(snippets.CopyFailedMessage))
		return
	}
	if err := s.clip.WriteText(item.Payload); err != nil {
		log.Printf("CLI: clipboard write failed: %v", err)
		DisplayError(s.out, fmt.Errorf("%s: %w", snippets.CopyFailedMessage, err))
		return
	}
	fmt.Fprintf(s.out, "%s %s\n", SuccessStyle.Render(snippets.CopiedMessage), DimStyle.Render(item.Label))
}

// =============================================================================
// LINER LOOP
// =============================================================================

// RunPlain runs an interactive plain session on the terminal until :q,
// ctrl+d or ctrl+c. Input history is kept in the config directory.
func RunPlain(cat cheatsheet.Catalogue, clip host.Clipboard) error {
	if !IsTTY() {
		return NewUsageError("plain needs an interactive terminal; use list instead")
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyFile := ""
	if dir, err := config.ConfigDir(); err == nil {
		historyFile = filepath.Join(dir, plainHistoryFile)
		if f, err := os.Open(historyFile); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}
	defer saveHistory(line, historyFile)

	session := NewPlainSession(cat, clip, os.Stdout, GetTerminalWidth())
	fmt.Println(TitleStyle.Render("Markdown Cheatsheet") + "  " + DimStyle.Render(":h for help"))
	session.Handle("")

	for {
		input, err := line.Prompt(plainPrompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Println()
				return nil
			}
			return WrapError(err, "read input")
		}
		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
		if !session.Handle(input) {
			return nil
		}
	}
}

// saveHistory persists input history with owner-only permissions.
func saveHistory(line *liner.State, path string) {
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	line.WriteHistory(f)
}
