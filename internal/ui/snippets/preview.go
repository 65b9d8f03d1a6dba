// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package snippets

import (
	"bytes"
	"log"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/mdcheat/internal/cheatsheet"
)

// previewer renders the preview pane of the selected item: its syntax
// highlighted as Markdown source and its example rendered as Markdown.
type previewer struct {
	dark     bool
	width    int
	renderer *glamour.TermRenderer
	cache    map[cheatsheet.Ref]string
}

func newPreviewer(dark bool) *previewer {
	return &previewer{dark: dark, cache: make(map[cheatsheet.Ref]string)}
}

// setWidth drops cached output when the wrap width changes.
func (p *previewer) setWidth(width int) {
	if width == p.width {
		return
	}
	p.width = width
	p.renderer = nil
	p.cache = make(map[cheatsheet.Ref]string)
}

// render returns the preview body for item, cached per ref.
func (p *previewer) render(ref cheatsheet.Ref, item cheatsheet.Item) string {
	if out, ok := p.cache[ref]; ok {
		return out
	}

	var b strings.Builder
	b.WriteString(highlightMarkdown(item.Syntax))
	if item.Example != "" {
		b.WriteString("\n")
		b.WriteString(p.renderExample(item.Example))
	}
	out := strings.TrimRight(b.String(), "\n")
	p.cache[ref] = out
	return out
}

func (p *previewer) renderExample(md string) string {
	if p.renderer == nil {
		style := "light"
		if p.dark {
			style = "dark"
		}
		wrap := p.width - 4
		if wrap < 20 {
			wrap = 20
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			log.Printf("CHEATSHEET: preview renderer: %v", err)
			return md
		}
		p.renderer = r
	}
	out, err := p.renderer.Render(md)
	if err != nil {
		log.Printf("CHEATSHEET: preview render: %v", err)
		return md
	}
	return strings.Trim(out, "\n")
}

// highlightMarkdown applies Markdown syntax highlighting using chroma.
func highlightMarkdown(src string) string {
	lexer := lexers.Get("markdown")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return src
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return src
	}
	return buf.String()
}
