// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/mdcheat/internal/commands"
	"github.com/jeranaias/mdcheat/internal/ui/styles"
	"github.com/jeranaias/mdcheat/internal/util"
)

// =============================================================================
// COMMAND PALETTE
// =============================================================================

// CommandPalette is an overlay component for searching and running commands.
type CommandPalette struct {
	input    textinput.Model
	registry *commands.Registry

	filtered []scoredCommand
	selected int

	width  int
	height int

	visible bool

	maxItems int

	// Recent command ids (most recent first)
	recentCommands []string
	maxRecent      int
}

// scoredCommand holds a command with its fuzzy match score.
type scoredCommand struct {
	command *commands.Command
	score   int
}

// NewCommandPalette creates a new command palette.
func NewCommandPalette(registry *commands.Registry) *CommandPalette {
	ti := textinput.New()
	ti.Placeholder = "Type a command..."
	ti.Prompt = "> "
	ti.CharLimit = 100
	ti.Width = 50
	ti.PromptStyle = lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.TextPrimary)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.TextMuted).Italic(true)

	return &CommandPalette{
		input:          ti,
		registry:       registry,
		maxItems:       10,
		recentCommands: make([]string, 0, 10),
		maxRecent:      10,
	}
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Update handles messages for the command palette.
func (cp *CommandPalette) Update(msg tea.Msg) (*CommandPalette, tea.Cmd) {
	if !cp.visible {
		return cp, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "ctrl+p":
			cp.Hide()
			return cp, nil

		case "enter":
			if cp.selected >= 0 && cp.selected < len(cp.filtered) {
				selected := cp.filtered[cp.selected].command
				cp.recordRecentCommand(selected.ID)
				cp.Hide()
				return cp, commands.ExecuteCmd(selected.ID)
			}
			return cp, nil

		case "up", "shift+tab":
			if len(cp.filtered) > 0 {
				cp.selected--
				if cp.selected < 0 {
					cp.selected = len(cp.filtered) - 1
				}
			}
			return cp, nil

		case "down", "tab", "ctrl+n":
			if len(cp.filtered) > 0 {
				cp.selected++
				if cp.selected >= len(cp.filtered) {
					cp.selected = 0
				}
			}
			return cp, nil
		}
	}

	previousValue := cp.input.Value()
	var cmd tea.Cmd
	cp.input, cmd = cp.input.Update(msg)

	if cp.input.Value() != previousValue {
		cp.updateFiltered()
		cp.selected = 0
	}

	return cp, cmd
}

// View renders the command palette.
func (cp *CommandPalette) View() string {
	if !cp.visible {
		return ""
	}

	boxWidth := 60
	if cp.width > 0 && cp.width < boxWidth+10 {
		boxWidth = cp.width - 10
	}
	if boxWidth < 30 {
		boxWidth = 30
	}

	header := lipgloss.NewStyle().
		Foreground(styles.Purple).
		Bold(true).
		Padding(0, 1).
		Render("Commands")

	separator := lipgloss.NewStyle().
		Foreground(styles.Overlay).
		Render(strings.Repeat("-", boxWidth-4))

	cp.input.Width = boxWidth - 8
	inputView := cp.input.View()

	var listItems []string
	for i, sc := range cp.filtered {
		if i >= cp.maxItems {
			remaining := len(cp.filtered) - cp.maxItems
			listItems = append(listItems, lipgloss.NewStyle().
				Foreground(styles.TextMuted).
				Italic(true).
				Render("  ... "+strconv.Itoa(remaining)+" more"))
			break
		}
		listItems = append(listItems, cp.renderItem(sc.command, i == cp.selected, boxWidth-6))
	}
	list := strings.Join(listItems, "\n")

	if len(cp.filtered) == 0 {
		list = lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Italic(true).
			Padding(1, 0).
			Render("No matching commands")
	}

	help := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Padding(1, 0, 0, 0).
		Render("Up/Down navigate | Enter run | Esc close")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		separator,
		inputView,
		separator,
		list,
		help,
	)

	box := lipgloss.NewStyle().
		Background(styles.Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Purple).
		Padding(1, 2).
		Width(boxWidth).
		Render(content)

	if cp.width > 0 && cp.height > 0 {
		return lipgloss.Place(cp.width, cp.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

// =============================================================================
// INTERNAL METHODS
// =============================================================================

// renderItem renders a single command row: title, key binding, category.
func (cp *CommandPalette) renderItem(cmd *commands.Command, selected bool, width int) string {
	indicator := "  "
	if selected {
		indicator = "> "
	}

	title := cmd.Title
	if title == "" {
		title = cmd.ID
	}
	if cp.isRecentCommand(cmd.ID) {
		title += " *"
	}

	keys := strings.Join(cmd.Keys, ", ")
	line := util.JoinEnds(indicator+title, keys, width)

	if selected {
		return lipgloss.NewStyle().
			Background(styles.Purple).
			Foreground(styles.TextInverse).
			Render(line)
	}
	return lipgloss.NewStyle().Foreground(styles.TextPrimary).Render(line)
}

// updateFiltered updates the filtered command list using fuzzy matching.
func (cp *CommandPalette) updateFiltered() {
	if cp.registry == nil {
		cp.filtered = nil
		return
	}

	filter := strings.TrimSpace(cp.input.Value())

	var scored []scoredCommand
	for _, cmd := range cp.registry.All() {
		best, matched := 0, filter == ""
		if filter != "" {
			for i, target := range []string{cmd.Title, cmd.ID, cmd.Category} {
				score, ok := FuzzyMatch(filter, target)
				if !ok {
					continue
				}
				if i > 0 {
					// Id and category matches rank below title matches
					score /= 2
				}
				if !matched || score > best {
					best = score
				}
				matched = true
			}
		}
		if !matched {
			continue
		}
		if idx := cp.getRecentIndex(cmd.ID); idx >= 0 {
			best += 1000 - idx
		}
		scored = append(scored, scoredCommand{command: cmd, score: best})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	cp.filtered = scored
}

func (cp *CommandPalette) isRecentCommand(id string) bool {
	return cp.getRecentIndex(id) >= 0
}

// getRecentIndex returns the index of a command in the recent list, or -1.
func (cp *CommandPalette) getRecentIndex(id string) int {
	for i, recent := range cp.recentCommands {
		if recent == id {
			return i
		}
	}
	return -1
}

// recordRecentCommand moves id to the front of the recent list.
func (cp *CommandPalette) recordRecentCommand(id string) {
	for i, recent := range cp.recentCommands {
		if recent == id {
			cp.recentCommands = append(cp.recentCommands[:i], cp.recentCommands[i+1:]...)
			break
		}
	}
	cp.recentCommands = append([]string{id}, cp.recentCommands...)
	if len(cp.recentCommands) > cp.maxRecent {
		cp.recentCommands = cp.recentCommands[:cp.maxRecent]
	}
}

// =============================================================================
// PUBLIC METHODS
// =============================================================================

// Show opens the palette with an empty filter.
func (cp *CommandPalette) Show() tea.Cmd {
	cp.visible = true
	cp.input.Reset()
	cp.updateFiltered()
	cp.selected = 0
	return cp.input.Focus()
}

// Hide hides the command palette.
func (cp *CommandPalette) Hide() {
	cp.visible = false
	cp.input.Blur()
}

// IsVisible returns true if the command palette is visible.
func (cp *CommandPalette) IsVisible() bool {
	return cp.visible
}

// SetSize sets the area the palette centers itself in.
func (cp *CommandPalette) SetSize(width, height int) {
	cp.width = width
	cp.height = height
}

// Selected returns the highlighted command, or nil.
func (cp *CommandPalette) Selected() *commands.Command {
	if cp.selected < 0 || cp.selected >= len(cp.filtered) {
		return nil
	}
	return cp.filtered[cp.selected].command
}

// Filtered returns the ids of the listed commands in display order.
func (cp *CommandPalette) Filtered() []string {
	ids := make([]string, len(cp.filtered))
	for i, sc := range cp.filtered {
		ids[i] = sc.command.ID
	}
	return ids
}
