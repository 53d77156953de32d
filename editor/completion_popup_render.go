package editor

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/zenith/internal/grapheme"
	"github.com/iw2rmb/zenith/shortcode"
)

type completionPopupRender struct {
	View string
	X, Y int
	Rows int
}

func (m Model) completionPopupRender(base string) (completionPopupRender, bool) {
	state := m.completion
	if !state.Active || !m.focused || len(state.Items) == 0 {
		return completionPopupRender{}, false
	}

	viewportWidth := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	viewportHeight := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if viewportWidth <= 0 || viewportHeight <= 0 {
		return completionPopupRender{}, false
	}

	anchorX, anchorY := m.cfg.Measurer.MeasureCaret(m.text, state.Match.Start)
	anchorX += m.gutterWidth()
	anchorY -= m.viewport.YOffset
	if anchorY < 0 || anchorY >= viewportHeight {
		return completionPopupRender{}, false
	}

	first, rowCount := completionWindow(state.Selected, len(state.Items), m.cfg.CompletionMaxVisibleRows)

	belowAvail := max(viewportHeight-(anchorY+1), 0)
	aboveAvail := max(anchorY, 0)
	showBelow := true
	if rowCount > belowAvail {
		if aboveAvail >= rowCount {
			showBelow = false
		} else if aboveAvail > belowAvail {
			showBelow = false
			rowCount = aboveAvail
		} else {
			rowCount = belowAvail
		}
		first, rowCount = completionWindow(state.Selected, len(state.Items), rowCount)
	}
	if rowCount <= 0 {
		return completionPopupRender{}, false
	}

	items := state.Items[first : first+rowCount]
	popupWidth := 0
	for _, e := range items {
		popupWidth = max(popupWidth, completionRowWidth(e))
	}
	popupWidth = min(popupWidth, viewportWidth)

	rendered := make([]string, 0, len(items))
	for i, e := range items {
		rendered = append(rendered, m.renderCompletionRow(e, first+i == state.Selected, popupWidth))
	}

	y := anchorY + 1
	if !showBelow {
		y = anchorY - len(rendered)
	}
	y = clampInt(y, 0, max(viewportHeight-len(rendered), 0))
	x := clampInt(anchorX, 0, max(viewportWidth-popupWidth, 0))

	leftFrame := m.viewport.Style.GetMarginLeft() + m.viewport.Style.GetBorderLeftSize() + m.viewport.Style.GetPaddingLeft()
	topFrame := m.viewport.Style.GetMarginTop() + m.viewport.Style.GetBorderTopSize() + m.viewport.Style.GetPaddingTop()

	return completionPopupRender{
		View: overlay.Composite(
			strings.Join(rendered, "\n"),
			base,
			overlay.Left,
			overlay.Top,
			leftFrame+x,
			topFrame+y,
		),
		X:    x,
		Y:    y,
		Rows: len(rendered),
	}, true
}

// completionWindow returns the first visible item and the number of rows so
// that selected stays in view.
func completionWindow(selected, n, rows int) (first, count int) {
	count = min(rows, n)
	if count <= 0 {
		return 0, 0
	}
	if selected >= count {
		first = selected - count + 1
	}
	return clampInt(first, 0, n-count), count
}

// A row reads " <symbol> :<code> ".
func completionRowWidth(e shortcode.Entry) int {
	return grapheme.StringWidth(e.Symbol, 1) + len(e.Code) + 4
}

func (m Model) renderCompletionRow(e shortcode.Entry, selected bool, width int) string {
	base := m.cfg.Style.CompletionItem
	if selected {
		base = m.cfg.Style.CompletionSelected
	}
	code := m.cfg.Style.CompletionCode.Inherit(base)

	var sb strings.Builder
	sb.WriteString(base.Render(" " + e.Symbol + " "))
	sb.WriteString(code.Render(string(shortcode.Trigger) + e.Code))
	if pad := width - completionRowWidth(e) + 1; pad > 0 {
		sb.WriteString(base.Render(strings.Repeat(" ", pad)))
	}
	row := sb.String()
	if ansi.StringWidth(row) > width {
		row = ansi.Truncate(row, width, "")
	}
	return row
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
