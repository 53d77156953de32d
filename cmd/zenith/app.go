package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/zenith/buffer"
	"github.com/iw2rmb/zenith/editor"
	"github.com/iw2rmb/zenith/internal/config"
	"github.com/iw2rmb/zenith/markdown"
	"github.com/iw2rmb/zenith/shortcode"
)

type appKeyMap struct {
	Quit          key.Binding
	Save          key.Binding
	New           key.Binding
	ToggleOutline key.Binding
	TogglePreview key.Binding
	Zen           key.Binding
	LeaveZen      key.Binding
	ToggleTask    key.Binding
	PrevHeading   key.Binding
	NextHeading   key.Binding
}

func defaultAppKeyMap() appKeyMap {
	return appKeyMap{
		Quit:          key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Save:          key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		New:           key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new file")),
		ToggleOutline: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "outline")),
		TogglePreview: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "preview")),
		Zen:           key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "zen mode")),
		LeaveZen:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave zen mode")),
		ToggleTask:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toggle task")),
		PrevHeading:   key.NewBinding(key.WithKeys("alt+up"), key.WithHelp("alt+↑", "previous heading")),
		NextHeading:   key.NewBinding(key.WithKeys("alt+down"), key.WithHelp("alt+↓", "next heading")),
	}
}

type appStyle struct {
	Outline   outlineStyle
	Border    lipgloss.Style
	Status    lipgloss.Style
	Modified  lipgloss.Style
	StatusMsg lipgloss.Style
	Modal     lipgloss.Style
}

func defaultAppStyle() appStyle {
	return appStyle{
		Outline:   defaultOutlineStyle(),
		Border:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Modified:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		StatusMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(0, 2),
	}
}

// model is the zenith application: editor, outline, preview and status line.
type model struct {
	editor  editor.Model
	preview preview
	doc     document
	labels  labels
	keys    appKeyMap
	style   appStyle
	logger  *slog.Logger
	now     func() time.Time

	watcher *fileWatcher

	showOutline bool
	showPreview bool
	zen         bool
	// confirmNew is set while the discard prompt for a new file is open.
	confirmNew bool

	width, height int
	status        string
}

func newModel(cfg *config.Config, text string, doc document, logger *slog.Logger) model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ed := editor.New(editor.Config{
		Text:                     text,
		ShowLineNums:             cfg.UI.LineNumbers,
		Style:                    editor.DefaultStyle(),
		TabWidth:                 cfg.Editor.TabWidth,
		LineHeight:               cfg.Editor.LineHeight,
		KeyMap:                   cfg.ApplyKeys(editor.DefaultKeyMap()),
		CompletionMaxVisibleRows: cfg.Editor.PopupRows,
		Shortcodes:               cfg.ShortcodeTable(shortcode.Emoji()),
		Clipboard:                editor.SystemClipboard{},
		Logger:                   logger,
	})
	return model{
		editor:      ed.Focus(),
		preview:     newPreview(cfg.UI.Theme, logger),
		doc:         doc,
		labels:      labelsFor(cfg.UI.Language),
		keys:        defaultAppKeyMap(),
		style:       defaultAppStyle(),
		logger:      logger,
		now:         time.Now,
		showOutline: cfg.UI.Outline,
		showPreview: cfg.UI.Preview,
	}
}

func (m model) Init() tea.Cmd {
	if m.doc.path == "" {
		return nil
	}
	return startWatcher(m.doc.path, m.logger)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case watchStartedMsg:
		if msg.watcher.path != m.doc.path {
			_ = msg.watcher.Stop()
			return m, nil
		}
		m.stopWatcher()
		m.watcher = msg.watcher
		return m, m.watcher.listen()

	case fileChangedMsg:
		if msg.path == m.doc.path {
			m.reload()
		}
		if msg.watcher == nil || msg.watcher != m.watcher {
			return m, nil
		}
		return m, m.watcher.listen()

	case tea.MouseMsg:
		if m.confirmNew {
			return m, nil
		}
		if m.outlineVisible() && msg.X < outlineWidth {
			if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
				if h, ok := headingAtRow(m.editor.Text(), m.editor.Cursor().Row, m.bodyHeight(), msg.Y); ok {
					m.editor = m.editor.JumpToLine(h.Line)
					m.syncPreview()
				}
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmNew {
		m.confirmNew = false
		m.status = ""
		if msg.String() == m.labels.ConfirmKey {
			m.newDocument()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Save):
		return m, m.save()
	case key.Matches(msg, m.keys.New):
		if m.doc.dirty(m.editor.Text()) {
			m.confirmNew = true
			m.status = m.labels.ConfirmDiscard
			return m, nil
		}
		m.newDocument()
		return m, nil
	case key.Matches(msg, m.keys.ToggleOutline):
		m.showOutline = !m.showOutline
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.TogglePreview):
		m.showPreview = !m.showPreview
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Zen):
		m.zen = !m.zen
		m.layout()
		return m, nil
	case m.zen && key.Matches(msg, m.keys.LeaveZen) && !m.editor.CompletionState().Active:
		m.zen = false
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.ToggleTask):
		m.toggleTask()
		return m, nil
	case key.Matches(msg, m.keys.PrevHeading):
		m.jumpHeading(-1)
		return m, nil
	case key.Matches(msg, m.keys.NextHeading):
		m.jumpHeading(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.status = ""
	m.syncPreview()
	return m, cmd
}

// save writes the buffer. The first save of an untitled document starts
// watching the new file.
func (m *model) save() tea.Cmd {
	untitled := m.doc.path == ""
	if err := m.doc.save(m.editor.Text(), m.now()); err != nil {
		m.logger.Error("save failed", "path", m.doc.path, "err", err)
		m.status = m.labels.SaveFailed
		return nil
	}
	m.logger.Info("saved", "path", m.doc.path)
	m.status = m.labels.Saved
	if untitled {
		return startWatcher(m.doc.path, m.logger)
	}
	return nil
}

// newDocument replaces the buffer with an empty untitled document.
func (m *model) newDocument() {
	m.stopWatcher()
	m.doc = document{savedHash: xxhash.Sum64String("")}
	m.editor = m.editor.SetText("").ResetHistory()
	m.status = m.labels.NewDocument
	m.syncPreview()
}

func (m *model) stopWatcher() {
	if m.watcher == nil {
		return
	}
	if err := m.watcher.Stop(); err != nil {
		m.logger.Warn("stopping file watcher", "path", m.watcher.path, "err", err)
	}
	m.watcher = nil
}

// reload replaces the buffer with the file on disk unless it has unsaved
// edits.
func (m *model) reload() {
	if m.doc.dirty(m.editor.Text()) {
		m.status = m.labels.ChangedOnDisk
		return
	}
	text, changed, err := m.doc.reload()
	if err != nil {
		m.logger.Warn("reload failed", "path", m.doc.path, "err", err)
		return
	}
	if !changed {
		return
	}
	m.editor = m.editor.SetText(text)
	m.status = m.labels.Reloaded
	m.syncPreview()
}

func (m *model) toggleTask() {
	text := m.editor.Text()
	row := m.editor.Cursor().Row
	checked, ok := markdown.TaskAt(text, row)
	if !ok {
		return
	}
	next, ok := markdown.ToggleTask(text, row, checked)
	if !ok {
		return
	}
	sel := m.editor.Selection()
	m.editor = m.editor.SetText(next).SetSelection(sel)
	m.syncPreview()
}

func (m *model) jumpHeading(dir int) {
	h, ok := adjacentHeading(m.editor.Text(), m.editor.Cursor().Row, dir)
	if !ok {
		return
	}
	m.editor = m.editor.JumpToLine(h.Line)
	m.syncPreview()
}

func (m model) outlineVisible() bool { return m.showOutline && !m.zen }
func (m model) previewVisible() bool { return m.showPreview && !m.zen }

func (m model) bodyHeight() int {
	if m.zen {
		return m.height
	}
	return max(m.height-1, 0)
}

// layout splits the width between outline, editor and preview. Each visible
// side pane is separated from the editor by a one-cell border.
func (m *model) layout() {
	width := m.width
	if m.outlineVisible() {
		width -= outlineWidth + 1
	}
	previewWidth := 0
	if m.previewVisible() {
		previewWidth = (width - 1) / 2
		width -= previewWidth + 1
	}
	m.editor = m.editor.SetSize(max(width, 0), m.bodyHeight())
	m.preview.setSize(max(previewWidth, 0), m.bodyHeight())
	m.syncPreview()
}

func (m *model) syncPreview() {
	if !m.previewVisible() || m.preview.width <= 0 {
		return
	}
	text := m.editor.Text()
	m.preview.render(text)
	m.preview.follow(m.editor.Cursor().Row, buffer.LineCount(text))
}

func (m model) View() string {
	height := m.bodyHeight()
	border := m.style.Border.Render(strings.TrimSuffix(strings.Repeat("│\n", height), "\n"))

	var panes []string
	if m.outlineVisible() {
		rows := outlineRows(m.editor.Text(), m.editor.Cursor().Row, outlineWidth, height, m.style.Outline, m.labels)
		outline := lipgloss.NewStyle().Width(outlineWidth).Height(height).Render(strings.Join(rows, "\n"))
		panes = append(panes, outline, border)
	}
	panes = append(panes, m.editor.View())
	if m.previewVisible() {
		panes = append(panes, border, m.preview.view())
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, panes...)
	if m.confirmNew {
		body = m.confirmModal(body)
	}
	if m.zen {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusLine())
}

// confirmModal draws the discard prompt centered over body.
func (m model) confirmModal(body string) string {
	box := m.style.Modal.Render(m.labels.NewDocument + "\n\n" + m.labels.ConfirmDiscard)
	x := max((lipgloss.Width(body)-lipgloss.Width(box))/2, 0)
	y := max((lipgloss.Height(body)-lipgloss.Height(box))/2, 0)
	return overlay.Composite(box, body, overlay.Left, overlay.Top, x, y)
}

func (m model) statusLine() string {
	text := m.editor.Text()
	pos := m.editor.Cursor()
	parts := []string{m.doc.name(m.labels.Untitled)}
	if m.doc.dirty(text) {
		parts = append(parts, m.style.Modified.Render(m.labels.Modified))
	}
	if h, ok := markdown.SectionAt(text, pos.Row); ok {
		parts = append(parts, h.Text)
	}
	parts = append(parts, fmt.Sprintf("%d:%d", pos.Row+1, pos.Col+1))
	if m.status != "" {
		parts = append(parts, m.style.StatusMsg.Render(m.status))
	} else {
		parts = append(parts, m.labels.Help)
	}
	return m.style.Status.Width(m.width).MaxHeight(1).Render(strings.Join(parts, " · "))
}
