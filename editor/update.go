package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/zenith/buffer"
	"github.com/iw2rmb/zenith/markdown"
	"github.com/iw2rmb/zenith/shortcode"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	if m.completion.Active {
		if next, handled := m.updateCompletionKey(msg); handled {
			next.rebuildContent()
			next.followCursor()
			return next, nil
		}
		// Any other key closes the popup; the lookup below may reopen it.
		m.completion = shortcode.State{}
	}

	m.handleKey(msg)
	m.refreshCompletion()
	m.rebuildContent()
	m.followCursor()
	return m, nil
}

func (m Model) updateCompletionKey(msg tea.KeyMsg) (Model, bool) {
	km := m.cfg.CompletionKeyMap
	switch {
	case key.Matches(msg, km.Next):
		m.completion = m.completion.Next()
	case key.Matches(msg, km.Prev):
		m.completion = m.completion.Prev()
	case key.Matches(msg, km.Accept), km.AcceptTab && msg.Type == tea.KeyTab:
		m.acceptCompletion()
	case key.Matches(msg, km.Dismiss):
		m.completion = m.completion.Dismiss()
	default:
		return m, false
	}
	return m, true
}

func (m *Model) acceptCompletion() {
	e, _ := m.completion.Current()
	res, ok := m.completion.Accept(m.text)
	m.completion = shortcode.State{}
	if !ok {
		return
	}
	m.commit(res.Text, res.Selection(), ChangeEvent{Reason: ReasonShortcode})
	m.cfg.Logger.Debug("shortcode accepted", "code", e.Code, "cursor", res.Cursor)
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.replaceSelection(buffer.NormalizeNewlines(string(msg.Runes)), ReasonPaste)
		}
		return
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		if sel := m.Selection(); !sel.IsCaret() {
			m.moveTo(sel.Start, false)
		} else {
			m.moveTo(prevBoundary(m.text, m.head), false)
		}
	case key.Matches(msg, km.Right):
		if sel := m.Selection(); !sel.IsCaret() {
			m.moveTo(sel.End, false)
		} else {
			m.moveTo(nextBoundary(m.text, m.head), false)
		}
	case key.Matches(msg, km.Up):
		m.moveVertical(-1, false)
	case key.Matches(msg, km.Down):
		m.moveVertical(1, false)

	case key.Matches(msg, km.ShiftLeft):
		m.moveTo(prevBoundary(m.text, m.head), true)
	case key.Matches(msg, km.ShiftRight):
		m.moveTo(nextBoundary(m.text, m.head), true)
	case key.Matches(msg, km.ShiftUp):
		m.moveVertical(-1, true)
	case key.Matches(msg, km.ShiftDown):
		m.moveVertical(1, true)

	case key.Matches(msg, km.WordLeft):
		m.moveTo(wordLeft(m.text, m.head), false)
	case key.Matches(msg, km.WordRight):
		m.moveTo(wordRight(m.text, m.head), false)

	case key.Matches(msg, km.Home):
		m.moveTo(buffer.LineStartBefore(m.text, m.head), false)
	case key.Matches(msg, km.End):
		m.moveTo(buffer.LineEndAfter(m.text, m.head), false)

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.deleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.deleteForward()
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.insertNewline()
		}
	case key.Matches(msg, km.Indent):
		if !m.cfg.ReadOnly {
			sel := m.Selection()
			res := markdown.IndentSelection(m.text, sel.Start, sel.End)
			m.commit(res.Text, res.Selection(), ChangeEvent{Reason: ReasonIndent})
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}
	case key.Matches(msg, km.Format):
		*m = m.Format()
	case key.Matches(msg, km.Undo):
		*m = m.Undo()
	case key.Matches(msg, km.Redo):
		*m = m.Redo()

	default:
		if cmd, ok := m.actionFor(msg); ok {
			*m = m.Apply(cmd)
			return
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			if !m.cfg.ReadOnly {
				m.replaceSelection(string(msg.Runes), ReasonInsert)
			}
		}
	}
}

func (m Model) actionFor(msg tea.KeyMsg) (markdown.Command, bool) {
	for _, cmd := range markdown.Commands() {
		b, ok := m.cfg.KeyMap.Actions[cmd.Name()]
		if ok && key.Matches(msg, b) {
			return cmd, true
		}
	}
	return nil, false
}

func (m *Model) moveTo(off int, extend bool) {
	m.head = buffer.ClampOffset(m.text, off)
	if !extend {
		m.anchor = m.head
	}
	m.goalCol = -1
}

func (m *Model) moveVertical(dir int, extend bool) {
	p := m.Cursor()
	col := p.Col
	if m.goalCol >= 0 {
		col = m.goalCol
	}
	target := p.Row + dir
	switch {
	case target < 0:
		m.moveTo(0, extend)
		return
	case target >= buffer.LineCount(m.text):
		m.moveTo(buffer.Len(m.text), extend)
		return
	}
	off, _ := buffer.OffsetFromPos(m.text, buffer.Pos{Row: target, Col: col}, buffer.OffsetClamp)
	m.moveTo(off, extend)
	m.goalCol = col
}

func (m *Model) replaceSelection(s string, reason ChangeReason) {
	sel := m.Selection()
	res := buffer.Replace(m.text, sel.Start, sel.End, s)
	m.commit(res.Text, res.Selection(), ChangeEvent{Reason: reason})
}

func (m *Model) deleteBackward() {
	sel := m.Selection()
	if sel.IsCaret() {
		if sel.Start == 0 {
			return
		}
		sel.Start = prevBoundary(m.text, sel.Start)
	}
	res := buffer.Delete(m.text, sel.Start, sel.End)
	m.commit(res.Text, res.Selection(), ChangeEvent{Reason: ReasonDelete})
}

func (m *Model) deleteForward() {
	sel := m.Selection()
	if sel.IsCaret() {
		if sel.End == buffer.Len(m.text) {
			return
		}
		sel.End = nextBoundary(m.text, sel.End)
	}
	res := buffer.Delete(m.text, sel.Start, sel.End)
	m.commit(res.Text, res.Selection(), ChangeEvent{Reason: ReasonDelete})
}

// insertNewline continues or ends list items and falls back to a plain
// newline. A selection is removed first.
func (m *Model) insertNewline() {
	sel := m.Selection()
	text := m.text
	if !sel.IsCaret() {
		text = buffer.Delete(text, sel.Start, sel.End).Text
	}
	if res := markdown.SmartEnter(text, sel.Start); res.Handled {
		m.commit(res.Text, res.Selection(), ChangeEvent{Reason: ReasonSmartEnter})
		m.cfg.Logger.Debug("smart enter", "line", buffer.LineIndex(text, sel.Start), "cursor", res.Cursor)
		return
	}
	res := buffer.Replace(text, sel.Start, sel.Start, "\n")
	m.commit(res.Text, res.Selection(), ChangeEvent{Reason: ReasonNewline})
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	sel := m.Selection()
	if sel.IsCaret() {
		return
	}
	if err := m.cfg.Clipboard.WriteText(buffer.Slice(m.text, sel.Start, sel.End)); err != nil {
		m.cfg.Logger.Warn("clipboard write failed", "err", err)
	}
}

func (m *Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	sel := m.Selection()
	if sel.IsCaret() {
		return
	}
	if err := m.cfg.Clipboard.WriteText(buffer.Slice(m.text, sel.Start, sel.End)); err != nil {
		m.cfg.Logger.Warn("clipboard write failed", "err", err)
		return
	}
	res := buffer.Delete(m.text, sel.Start, sel.End)
	m.commit(res.Text, res.Selection(), ChangeEvent{Reason: ReasonCut})
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.cfg.Logger.Warn("clipboard read failed", "err", err)
		return
	}
	if s == "" {
		return
	}
	m.replaceSelection(buffer.NormalizeNewlines(s), ReasonPaste)
}

