package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/zenith/buffer"
	"github.com/iw2rmb/zenith/internal/grapheme"
)

type spanKind uint8

const (
	spanText spanKind = iota
	spanSelection
	spanCursor
)

func (m *Model) renderContent() string {
	lines := strings.Split(m.text, "\n")
	sel := m.Selection()
	cursorRow := buffer.LineIndex(m.text, m.head)

	digitCount := 0
	if m.cfg.ShowLineNums {
		digitCount = gutterDigits(len(lines))
	}

	out := make([]string, 0, len(lines)*m.cfg.LineHeight)
	lineStart := 0
	for row, line := range lines {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursorRow {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digitCount, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}
		sb.WriteString(m.renderLine(line, lineStart, sel))
		out = append(out, sb.String())

		// Spacer rows keep the gutter column aligned.
		for i := 1; i < m.cfg.LineHeight; i++ {
			if m.cfg.ShowLineNums {
				out = append(out, m.cfg.Style.LineNum.Render(strings.Repeat(" ", digitCount))+m.cfg.Style.Gutter.Render(" "))
			} else {
				out = append(out, "")
			}
		}
		lineStart += utf8.RuneCountInString(line) + 1
	}
	return strings.Join(out, "\n")
}

// renderLine draws one logical line. Tabs expand to the next tab stop; the
// cursor past the last cluster is drawn as a styled blank.
func (m *Model) renderLine(line string, lineStart int, sel buffer.Selection) string {
	st := m.cfg.Style
	styleFor := func(k spanKind) lipgloss.Style {
		switch k {
		case spanCursor:
			return st.Cursor
		case spanSelection:
			return st.Selection
		}
		return st.Text
	}

	var sb, run strings.Builder
	kind := spanText
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(styleFor(kind).Render(run.String()))
		run.Reset()
	}

	col := 0
	for _, c := range grapheme.Split(line) {
		start, end := lineStart+c.Start, lineStart+c.End
		k := spanText
		switch {
		case m.focused && m.head >= start && m.head < end:
			k = spanCursor
		case start >= sel.Start && start < sel.End:
			k = spanSelection
		}
		if k != kind || k == spanCursor {
			flush()
			kind = k
		}

		w := grapheme.Width(c.Text, col, m.cfg.TabWidth)
		col += w
		if c.Text == "\t" {
			run.WriteString(strings.Repeat(" ", w))
			continue
		}
		run.WriteString(c.Text)
	}
	flush()

	if m.focused && m.head == lineStart+utf8.RuneCountInString(line) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(buffer.LineCount(m.text)) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}
