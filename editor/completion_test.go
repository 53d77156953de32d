package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/zenith/buffer"
	"github.com/iw2rmb/zenith/shortcode"
)

func TestCompletion_TypeAndAccept(t *testing.T) {
	m := New(Config{Text: "so hot "})
	m = m.SetSelection(buffer.Caret(7))

	m = press(m, runes(":fir"))
	st := m.CompletionState()
	if !st.Active {
		t.Fatalf("expected popup after typing :fir")
	}
	if len(st.Items) != 1 || st.Items[0].Code != "fire" {
		t.Fatalf("items: got %+v, want [fire]", st.Items)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if got, want := m.Text(), "so hot 🔥"; got != want {
		t.Fatalf("text after accept: got %q, want %q", got, want)
	}
	if got := m.CursorOffset(); got != buffer.Len("so hot 🔥") {
		t.Fatalf("cursor after accept: got %d, want after symbol", got)
	}
	if m.CompletionState().Active {
		t.Fatalf("popup should close after accept")
	}
}

func TestCompletion_NavigationDoesNotMoveCaret(t *testing.T) {
	m := New(Config{})
	m = press(m, runes(":he"))
	n := len(m.CompletionState().Items)
	if n < 2 {
		t.Fatalf("expected several heart candidates, got %d", n)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	if got := m.CompletionState().Selected; got != n-1 {
		t.Fatalf("up wraps: got %d, want %d", got, n-1)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.CompletionState().Selected; got != 0 {
		t.Fatalf("down wraps: got %d, want 0", got)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.CursorOffset(); got != 3 {
		t.Fatalf("caret moved while navigating: got %d, want 3", got)
	}

	want := m.CompletionState().Items[1].Symbol
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.Text(); got != want {
		t.Fatalf("tab accept: got %q, want %q", got, want)
	}
}

func TestCompletion_EscDismissesUntilNextEdit(t *testing.T) {
	m := New(Config{})
	m = press(m, runes(":he"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.CompletionState().Active {
		t.Fatalf("esc should dismiss")
	}
	if got := m.Text(); got != ":he" {
		t.Fatalf("esc must not edit: got %q", got)
	}

	m = press(m, runes("a"))
	if !m.CompletionState().Active {
		t.Fatalf("typing should reopen the popup")
	}
	if got := m.CompletionState().Match.Query; got != "hea" {
		t.Fatalf("query: got %q, want %q", got, "hea")
	}
}

func TestCompletion_OtherKeysDismissAndApply(t *testing.T) {
	m := New(Config{})
	m = press(m, runes(":fi"), runes(" "))
	if m.CompletionState().Active {
		t.Fatalf("space should close the popup")
	}
	if got := m.Text(); got != ":fi " {
		t.Fatalf("text: got %q, want %q", got, ":fi ")
	}

	m = New(Config{Text: ":fire"})
	m = m.SetSelection(buffer.Caret(5))
	if !m.CompletionState().Active {
		t.Fatalf("caret placement should open the popup")
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.CompletionState().Match.Query; got != "fir" {
		t.Fatalf("query after left: got %q, want %q", got, "fir")
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyShiftLeft})
	if m.CompletionState().Active {
		t.Fatalf("range selection should close the popup")
	}
}

func TestCompletion_Disabled(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{name: "read only", cfg: Config{Text: ":fire", ReadOnly: true}},
		{name: "empty table", cfg: Config{Text: ":fire", Shortcodes: shortcode.MustTable()}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := New(tc.cfg).SetSelection(buffer.Caret(5))
			if m.CompletionState().Active {
				t.Fatalf("popup should stay closed")
			}
		})
	}

	m := New(Config{Text: ":fire"}).SetSelection(buffer.Caret(5)).Blur()
	if m.CompletionState().Active {
		t.Fatalf("blur should close the popup")
	}
}

func TestCompletion_CustomTable(t *testing.T) {
	m := New(Config{Shortcodes: shortcode.MustTable(shortcode.Entry{Code: "go", Symbol: "🐹"})})
	m = press(m, runes("i :go"), tea.KeyMsg{Type: tea.KeyEnter})
	if got, want := m.Text(), "i 🐹"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}
