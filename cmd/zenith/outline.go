package main

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/zenith/markdown"
)

const outlineWidth = 28

type outlineStyle struct {
	Title   lipgloss.Style
	Entry   lipgloss.Style
	Current lipgloss.Style
	Empty   lipgloss.Style
}

func defaultOutlineStyle() outlineStyle {
	return outlineStyle{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Entry:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Current: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")),
		Empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
	}
}

// outlinePage is the slice of headings visible in a pane of a given height.
// The title takes the first row.
type outlinePage struct {
	headings []markdown.Heading
	current  int // index into headings, -1 before the first heading
	first    int
	count    int
}

func pageOutline(text string, row, height int) outlinePage {
	p := outlinePage{headings: slices.Collect(markdown.ExtractHeadings(text)), current: -1}
	if h, ok := markdown.SectionAt(text, row); ok {
		p.current = slices.IndexFunc(p.headings, func(x markdown.Heading) bool { return x.Line == h.Line })
	}
	p.first, p.count = outlineWindow(max(p.current, 0), len(p.headings), height-1)
	return p
}

// outlineWindow keeps current near the middle of visible rows.
func outlineWindow(current, n, visible int) (first, count int) {
	count = min(visible, n)
	if count <= 0 {
		return 0, 0
	}
	first = current - count/2
	return max(0, min(first, n-count)), count
}

// outlineRows renders the visible page, highlighting the section holding
// row.
func outlineRows(text string, row, width, height int, st outlineStyle, l labels) []string {
	if height <= 0 {
		return nil
	}
	rows := []string{st.Title.Render(ansi.Truncate(l.Outline, width, ""))}
	p := pageOutline(text, row, height)
	if len(p.headings) == 0 {
		if height > 1 {
			rows = append(rows, st.Empty.Render(ansi.Truncate(l.NoHeadings, width, "…")))
		}
		return rows
	}

	for i := p.first; i < p.first+p.count; i++ {
		h := p.headings[i]
		entry := strings.Repeat("  ", h.Level-1) + h.Text
		entry = ansi.Truncate(entry, width, "…")
		if pad := width - ansi.StringWidth(entry); pad > 0 {
			entry += strings.Repeat(" ", pad)
		}
		if i == p.current {
			rows = append(rows, st.Current.Render(entry))
			continue
		}
		rows = append(rows, st.Entry.Render(entry))
	}
	return rows
}

// headingAtRow maps a clicked outline row to its heading.
func headingAtRow(text string, row, height, y int) (markdown.Heading, bool) {
	p := pageOutline(text, row, height)
	if y < 1 || y > p.count {
		return markdown.Heading{}, false
	}
	return p.headings[p.first+y-1], true
}

// adjacentHeading returns the nearest heading above (dir < 0) or below
// (dir > 0) row.
func adjacentHeading(text string, row, dir int) (markdown.Heading, bool) {
	var (
		found markdown.Heading
		ok    bool
	)
	for h := range markdown.ExtractHeadings(text) {
		if dir > 0 && h.Line > row {
			return h, true
		}
		if dir < 0 {
			if h.Line >= row {
				break
			}
			found, ok = h, true
		}
	}
	return found, ok
}
