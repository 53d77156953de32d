package main

import (
	"log/slog"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

// preview renders the buffer with glamour into a scrollable pane. Rendering
// is skipped while the text and width are unchanged.
type preview struct {
	theme    string
	viewport viewport.Model
	renderer *glamour.TermRenderer
	width    int
	textHash uint64
	rendered bool
	lines    int
	logger   *slog.Logger
}

func newPreview(theme string, logger *slog.Logger) preview {
	return preview{theme: theme, viewport: viewport.New(0, 0), logger: logger}
}

func (p *preview) setSize(width, height int) {
	p.viewport.Width = width
	p.viewport.Height = height
	if width != p.width {
		p.width = width
		p.renderer = nil
		p.rendered = false
	}
}

// render refreshes the pane content for text. Glamour failures fall back to
// the raw markdown.
func (p *preview) render(text string) {
	h := xxhash.Sum64String(text)
	if p.rendered && h == p.textHash {
		return
	}
	p.textHash = h
	p.rendered = true

	out, err := p.glamourize(text)
	if err != nil {
		p.logger.Warn("preview render failed", "err", err)
		out = text
	}
	out = strings.TrimRight(out, "\n")
	p.lines = strings.Count(out, "\n") + 1
	p.viewport.SetContent(out)
}

func (p *preview) glamourize(text string) (string, error) {
	if p.renderer == nil {
		wrap := p.width - 2
		if wrap < 10 {
			wrap = 10
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(p.theme),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			return "", err
		}
		p.renderer = r
	}
	return p.renderer.Render(text)
}

// follow scrolls the pane to the same relative position as the source row.
func (p *preview) follow(row, sourceLines int) {
	if sourceLines <= 1 || p.lines <= p.viewport.Height {
		p.viewport.SetYOffset(0)
		return
	}
	p.viewport.SetYOffset(row * (p.lines - p.viewport.Height) / (sourceLines - 1))
}

func (p preview) view() string {
	return p.viewport.View()
}
