package editor

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/zenith/buffer"
)

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) ReadText() (string, error) { return c.s, c.err }
func (c *memClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.s = s
	return nil
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func alt(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: true} }

func press(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := New(Config{
		Text:  "ab",
		Style: Style{}, // keep styles minimal for this test
	})

	m = press(m, tea.KeyMsg{Type: tea.KeyRight}, runes("X"))
	if got := m.Text(); got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}
	if got := m.Cursor(); got != (buffer.Pos{Row: 0, Col: 2}) {
		t.Fatalf("cursor after insert: got %v, want %v", got, buffer.Pos{Row: 0, Col: 2})
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Text(); got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}
	if got := m.Cursor(); got != (buffer.Pos{Row: 0, Col: 1}) {
		t.Fatalf("cursor after backspace: got %v, want %v", got, buffer.Pos{Row: 0, Col: 1})
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyDelete})
	if got := m.Text(); got != "a" {
		t.Fatalf("text after delete: got %q, want %q", got, "a")
	}
}

func TestUpdate_ReadOnly_IgnoresMutations(t *testing.T) {
	m := New(Config{
		Text:     "ab",
		ReadOnly: true,
	})

	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Cursor(); got != (buffer.Pos{Row: 0, Col: 1}) {
		t.Fatalf("cursor after move: got %v, want %v", got, buffer.Pos{Row: 0, Col: 1})
	}

	m = press(m, runes("X"), tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyCtrlB})
	if got := m.Text(); got != "ab" {
		t.Fatalf("text after edits in read-only: got %q, want %q", got, "ab")
	}
}

func TestUpdate_GraphemeAwareMovement(t *testing.T) {
	text := "a" + "é" + "🔥" + "\nb"
	m := New(Config{Text: text})

	wantCols := []int{1, 3, 4}
	for i, want := range wantCols {
		m = press(m, tea.KeyMsg{Type: tea.KeyRight})
		if got := m.Cursor().Col; got != want {
			t.Fatalf("right #%d: got col %d, want %d", i+1, got, want)
		}
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Cursor(); got != (buffer.Pos{Row: 1, Col: 0}) {
		t.Fatalf("right over newline: got %v, want row 1 col 0", got)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Cursor().Col; got != 3 {
		t.Fatalf("left over emoji: got col %d, want 3", got)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got, want := m.Text(), "a🔥\nb"; got != want {
		t.Fatalf("backspace removes whole cluster: got %q, want %q", got, want)
	}
}

func TestUpdate_VerticalMovementKeepsGoalColumn(t *testing.T) {
	m := New(Config{Text: "abcdef\nab\nabcdef"})
	m = m.SetSelection(buffer.Caret(5))

	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.Cursor(); got != (buffer.Pos{Row: 1, Col: 2}) {
		t.Fatalf("down onto short line: got %v, want row 1 col 2", got)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.Cursor(); got != (buffer.Pos{Row: 2, Col: 5}) {
		t.Fatalf("down keeps goal column: got %v, want row 2 col 5", got)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.CursorOffset(); got != buffer.Len(m.Text()) {
		t.Fatalf("down on last line: got %d, want end of text", got)
	}
}

func TestUpdate_WordMovement(t *testing.T) {
	m := New(Config{Text: "hello, big world"})

	m = press(m, tea.KeyMsg{Type: tea.KeyRight, Alt: true})
	if got := m.CursorOffset(); got != 5 {
		t.Fatalf("word right: got %d, want 5", got)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyRight, Alt: true})
	if got := m.CursorOffset(); got != 6 {
		t.Fatalf("word right over punctuation: got %d, want 6", got)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyEnd}, tea.KeyMsg{Type: tea.KeyLeft, Alt: true})
	if got := m.CursorOffset(); got != 11 {
		t.Fatalf("word left: got %d, want 11", got)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyHome})
	if got := m.CursorOffset(); got != 0 {
		t.Fatalf("home: got %d, want 0", got)
	}
}

func TestUpdate_SmartEnterContinuesAndEndsList(t *testing.T) {
	m := New(Config{Text: "- item"})
	m = m.SetSelection(buffer.Caret(6))

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if got, want := m.Text(), "- item\n- "; got != want {
		t.Fatalf("continue: got %q, want %q", got, want)
	}
	if got := m.CursorOffset(); got != 9 {
		t.Fatalf("continue cursor: got %d, want 9", got)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if got, want := m.Text(), "- item\n"; got != want {
		t.Fatalf("terminate: got %q, want %q", got, want)
	}
	if got := m.CursorOffset(); got != 7 {
		t.Fatalf("terminate cursor: got %d, want 7", got)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if got, want := m.Text(), "- item\n\n"; got != want {
		t.Fatalf("plain newline: got %q, want %q", got, want)
	}
}

func TestUpdate_SmartEnterReplacesSelection(t *testing.T) {
	m := New(Config{Text: "1. first XYZ"})
	m = m.SetSelection(buffer.Selection{Start: 8, End: 12})

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if got, want := m.Text(), "1. first\n2. "; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestUpdate_TabIndentsCaretAndBlock(t *testing.T) {
	m := New(Config{Text: "a\nb\nc"})
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if got, want := m.Text(), "  a\nb\nc"; got != want {
		t.Fatalf("caret indent: got %q, want %q", got, want)
	}
	if got := m.CursorOffset(); got != 2 {
		t.Fatalf("caret indent cursor: got %d, want 2", got)
	}

	m = m.SetSelection(buffer.Selection{Start: 3, End: 5})
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if got, want := m.Text(), "    a\n  b\nc"; got != want {
		t.Fatalf("block indent: got %q, want %q", got, want)
	}
	if got, want := m.Selection(), (buffer.Selection{Start: 5, End: 9}); got != want {
		t.Fatalf("block selection: got %+v, want %+v", got, want)
	}
}

func TestUpdate_ActionKeys(t *testing.T) {
	m := New(Config{Text: "word"})
	m = m.SetSelection(buffer.Selection{Start: 0, End: 4})

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlB})
	if got, want := m.Text(), "**word**"; got != want {
		t.Fatalf("bold: got %q, want %q", got, want)
	}
	if got := m.CursorOffset(); got != 8 {
		t.Fatalf("bold cursor: got %d, want 8", got)
	}

	m = press(m, alt("1"))
	if got, want := m.Text(), "# **word**"; got != want {
		t.Fatalf("heading: got %q, want %q", got, want)
	}

	m = New(Config{Text: ""})
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlK})
	if got, want := m.Text(), "[]()"; got != want {
		t.Fatalf("link: got %q, want %q", got, want)
	}
	if got := m.CursorOffset(); got != 3 {
		t.Fatalf("link cursor: got %d, want 3", got)
	}
}

func TestUpdate_FormatKey(t *testing.T) {
	m := New(Config{Text: "#A  \n\n\n\nb"})
	m = m.SetSelection(buffer.Caret(100))
	m = press(m, alt("f"))
	if got, want := m.Text(), "#A\n\nb"; got != want {
		t.Fatalf("format: got %q, want %q", got, want)
	}
	if got := m.CursorOffset(); got != buffer.Len(m.Text()) {
		t.Fatalf("cursor clamped: got %d, want %d", got, buffer.Len(m.Text()))
	}
}

func TestUpdate_Clipboard(t *testing.T) {
	cb := &memClipboard{}
	m := New(Config{Text: "hello world", Clipboard: cb})
	m = m.SetSelection(buffer.Selection{Start: 0, End: 5})

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cb.s != "hello" {
		t.Fatalf("copy: got %q, want %q", cb.s, "hello")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlX})
	if got, want := m.Text(), " world"; got != want {
		t.Fatalf("cut: got %q, want %q", got, want)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEnd})
	cb.s = "\r\nagain"
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlV})
	if got, want := m.Text(), " world\nagain"; got != want {
		t.Fatalf("paste: got %q, want %q", got, want)
	}

	cb.err = errors.New("no clipboard")
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlV})
	if got, want := m.Text(), " world\nagain"; got != want {
		t.Fatalf("failed paste must not change text: got %q", got)
	}
}

func TestUpdate_BracketedPasteIsLiteral(t *testing.T) {
	m := New(Config{Text: ""})
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(":fire"), Paste: true})
	if got := m.Text(); got != ":fire" {
		t.Fatalf("paste: got %q", got)
	}
}

func TestUpdate_OnChangeReasons(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text:     "- a",
		OnChange: func(ev ChangeEvent) { events = append(events, ev) },
	})
	m = m.SetSelection(buffer.Caret(3))
	m = press(m,
		tea.KeyMsg{Type: tea.KeyEnter},
		runes("b"),
		tea.KeyMsg{Type: tea.KeyLeft},
		tea.KeyMsg{Type: tea.KeyCtrlB},
	)

	want := []ChangeReason{ReasonSmartEnter, ReasonInsert, ReasonAction}
	if len(events) != len(want) {
		t.Fatalf("events: got %d, want %d", len(events), len(want))
	}
	for i, r := range want {
		if events[i].Reason != r {
			t.Fatalf("event %d: got %q, want %q", i, events[i].Reason, r)
		}
	}
	last := events[len(events)-1]
	if last.Action != "bold" || last.Text != m.Text() {
		t.Fatalf("last event: got %+v", last)
	}
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m := New(Config{Text: "a"}).Blur()
	m = press(m, runes("b"))
	if got := m.Text(); got != "a" {
		t.Fatalf("blurred: got %q, want %q", got, "a")
	}
}

func TestUpdate_UndoRedo(t *testing.T) {
	var reasons []ChangeReason
	m := New(Config{
		Text:     "- a",
		OnChange: func(ev ChangeEvent) { reasons = append(reasons, ev.Reason) },
	})
	m = m.SetSelection(buffer.Caret(3))
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter}, runes("b"))

	steps := []struct {
		msg    tea.KeyMsg
		text   string
		cursor int
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlZ}, "- a\n- ", 6},
		{tea.KeyMsg{Type: tea.KeyCtrlZ}, "- a", 3},
		{tea.KeyMsg{Type: tea.KeyCtrlZ}, "- a", 3},
		{tea.KeyMsg{Type: tea.KeyCtrlY}, "- a\n- ", 6},
		{tea.KeyMsg{Type: tea.KeyCtrlY}, "- a\n- b", 7},
	}
	for i, st := range steps {
		m = press(m, st.msg)
		if got := m.Text(); got != st.text {
			t.Fatalf("step %d text: got %q, want %q", i, got, st.text)
		}
		if got := m.CursorOffset(); got != st.cursor {
			t.Fatalf("step %d cursor: got %d, want %d", i, got, st.cursor)
		}
	}

	want := []ChangeReason{ReasonSmartEnter, ReasonInsert, ReasonUndo, ReasonUndo, ReasonRedo, ReasonRedo}
	if len(reasons) != len(want) {
		t.Fatalf("events: got %v, want %v", reasons, want)
	}
	for i, r := range want {
		if reasons[i] != r {
			t.Fatalf("event %d: got %q, want %q", i, reasons[i], r)
		}
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlZ}, runes("c"))
	if m.CanRedo() {
		t.Fatalf("typing after undo kept redo steps")
	}
	if got, want := m.Text(), "- a\n- c"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestUpdate_UndoSetTextAndLimit(t *testing.T) {
	m := New(Config{Text: "- [ ] a"})
	m = m.SetText("- [x] a")
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got, want := m.Text(), "- [ ] a"; got != want {
		t.Fatalf("undo SetText: got %q, want %q", got, want)
	}

	m = New(Config{Text: "", HistoryLimit: -1})
	m = press(m, runes("x"), tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.Text(); got != "x" {
		t.Fatalf("disabled history undid: got %q", got)
	}

	m = New(Config{Text: ""})
	m = press(m, runes("x")).ResetHistory()
	if m.CanUndo() {
		t.Fatalf("ResetHistory kept undo steps")
	}
}
