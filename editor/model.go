package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/zenith/buffer"
	"github.com/iw2rmb/zenith/markdown"
	"github.com/iw2rmb/zenith/shortcode"
)

// Model is a Bubble Tea component that edits markdown text.
type Model struct {
	cfg  Config
	text string

	// anchor stays put while head follows the cursor. Both are rune offsets.
	anchor, head int
	// goalCol is the column kept across vertical moves; -1 when unset.
	goalCol int

	focused bool

	viewport   viewport.Model
	completion shortcode.State
	history    buffer.History
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:      cfg,
		text:     cfg.Text,
		goalCol:  -1,
		focused:  true,
		viewport: viewport.New(0, 0),
		history:  buffer.NewHistory(cfg.HistoryLimit),
	}
	m.rebuildContent()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Text returns the current document.
func (m Model) Text() string { return m.text }

// Selection returns the normalized selection.
func (m Model) Selection() buffer.Selection {
	return buffer.Selection{Start: m.anchor, End: m.head}.Normalize()
}

// CursorOffset returns the rune offset of the moving end of the selection.
func (m Model) CursorOffset() int { return m.head }

// Cursor returns the row and column of the moving end of the selection.
func (m Model) Cursor() buffer.Pos {
	p, _ := buffer.PosFromOffset(m.text, m.head, buffer.OffsetClamp)
	return p
}

// CompletionState returns the short-code popup state.
func (m Model) CompletionState() shortcode.State { return m.completion }

// SetText replaces the document without emitting a change event. The
// selection is clamped into the new text and the popup is closed. The
// replacement can be undone.
func (m Model) SetText(text string) Model {
	if text != m.text {
		m.history.Record(m.snapshot())
	}
	m.text = text
	m.anchor = buffer.ClampOffset(text, m.anchor)
	m.head = buffer.ClampOffset(text, m.head)
	m.goalCol = -1
	m.completion = shortcode.State{}
	m.rebuildContent()
	m.followCursor()
	return m
}

// SetSelection moves the selection. End becomes the cursor.
func (m Model) SetSelection(sel buffer.Selection) Model {
	m.anchor = buffer.ClampOffset(m.text, sel.Start)
	m.head = buffer.ClampOffset(m.text, sel.End)
	m.goalCol = -1
	m.refreshCompletion()
	m.rebuildContent()
	m.followCursor()
	return m
}

// JumpToLine puts the caret at the start of row and scrolls it to the top of
// the viewport.
func (m Model) JumpToLine(row int) Model {
	start, ok := buffer.LineStart(m.text, row)
	if !ok {
		return m
	}
	m.anchor, m.head = start, start
	m.goalCol = -1
	m.completion = shortcode.State{}
	m.rebuildContent()
	m.viewport.SetYOffset(markdown.ScrollOffset(row, m.cfg.LineHeight))
	return m
}

// Apply runs cmd against the current selection and commits the result.
func (m Model) Apply(cmd markdown.Command) Model {
	if m.cfg.ReadOnly || cmd == nil {
		return m
	}
	res := cmd.Apply(m.text, m.Selection())
	m.commit(res.Text, res.Selection(), ChangeEvent{Reason: ReasonAction, Action: cmd.Name()})
	m.cfg.Logger.Debug("action applied", "action", cmd.Name(), "cursor", res.Cursor)
	m.refreshCompletion()
	m.rebuildContent()
	m.followCursor()
	return m
}

// Format normalizes the whole document. The cursor keeps its offset,
// clamped into the formatted text.
func (m Model) Format() Model {
	if m.cfg.ReadOnly {
		return m
	}
	text := markdown.FormatDocument(m.text)
	m.commit(text, buffer.Caret(buffer.ClampOffset(text, m.head)), ChangeEvent{Reason: ReasonFormat})
	m.completion = shortcode.State{}
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

// Blur removes focus and closes the popup.
func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.completion = shortcode.State{}
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// YOffset returns the first visible terminal row.
func (m Model) YOffset() int { return m.viewport.YOffset }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) View() string {
	base := m.viewport.View()
	if popup, ok := m.completionPopupRender(base); ok {
		return popup.View
	}
	return base
}

// Undo restores the state before the last change.
func (m Model) Undo() Model {
	if m.cfg.ReadOnly {
		return m
	}
	prev, ok := m.history.Undo(m.snapshot())
	if !ok {
		return m
	}
	m.restore(prev, ReasonUndo)
	return m
}

// Redo reapplies the last undone change.
func (m Model) Redo() Model {
	if m.cfg.ReadOnly {
		return m
	}
	next, ok := m.history.Redo(m.snapshot())
	if !ok {
		return m
	}
	m.restore(next, ReasonRedo)
	return m
}

func (m Model) CanUndo() bool { return m.history.CanUndo() }

func (m Model) CanRedo() bool { return m.history.CanRedo() }

// ResetHistory forgets all undo and redo steps.
func (m Model) ResetHistory() Model {
	m.history.Reset()
	return m
}

func (m Model) snapshot() buffer.Snapshot {
	return buffer.Snapshot{Text: m.text, Sel: buffer.Selection{Start: m.anchor, End: m.head}}
}

func (m *Model) restore(s buffer.Snapshot, reason ChangeReason) {
	m.text = s.Text
	m.anchor = buffer.ClampOffset(s.Text, s.Sel.Start)
	m.head = buffer.ClampOffset(s.Text, s.Sel.End)
	m.goalCol = -1
	m.completion = shortcode.State{}
	m.rebuildContent()
	m.followCursor()
	m.notify(ChangeEvent{Reason: reason})
}

// commit stores a transform result and notifies the host.
func (m *Model) commit(text string, sel buffer.Selection, ev ChangeEvent) {
	changed := text != m.text
	if changed {
		m.history.Record(m.snapshot())
	}
	m.text = text
	m.anchor = buffer.ClampOffset(text, sel.Start)
	m.head = buffer.ClampOffset(text, sel.End)
	m.goalCol = -1
	if changed {
		m.notify(ev)
	}
}

func (m *Model) notify(ev ChangeEvent) {
	if m.cfg.OnChange == nil {
		return
	}
	ev.Text = m.text
	ev.Selection = m.Selection()
	ev.Cursor = m.Cursor()
	m.cfg.OnChange(ev)
}

func (m *Model) refreshCompletion() {
	if m.cfg.ReadOnly || !m.focused {
		m.completion = shortcode.State{}
		return
	}
	m.completion = shortcode.Lookup(m.cfg.Shortcodes, m.text, m.Selection())
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	lh := m.cfg.LineHeight
	top := buffer.LineIndex(m.text, m.head) * lh

	y := m.viewport.YOffset
	if top < y {
		m.viewport.SetYOffset(top)
		return
	}
	if top+lh > y+h {
		m.viewport.SetYOffset(top + lh - h)
	}
}
