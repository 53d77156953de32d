package markdown

import (
	"testing"

	"github.com/iw2rmb/zenith/buffer"
)

func TestSmartEnter_ContinuesBulletList(t *testing.T) {
	text := "- item"
	got := SmartEnter(text, buffer.Len(text))
	if !got.Handled {
		t.Fatalf("expected handled")
	}
	if want := "- item\n- "; got.Text != want {
		t.Fatalf("text: got %q, want %q", got.Text, want)
	}
	if want := buffer.Len("- item\n- "); got.Cursor != want {
		t.Fatalf("cursor: got %d, want %d", got.Cursor, want)
	}
}

func TestSmartEnter_TerminatesEmptyItem(t *testing.T) {
	got := SmartEnter("- ", 2)
	if !got.Handled {
		t.Fatalf("expected handled")
	}
	if got.Text != "" || got.Cursor != 0 {
		t.Fatalf("got (%q,%d), want (%q,%d)", got.Text, got.Cursor, "", 0)
	}

	text := "- one\n- "
	got = SmartEnter(text, buffer.Len(text))
	if want := "- one\n"; got.Text != want {
		t.Fatalf("text: got %q, want %q", got.Text, want)
	}
	if want := 6; got.Cursor != want {
		t.Fatalf("cursor: got %d, want %d", got.Cursor, want)
	}
}

func TestSmartEnter_Variants(t *testing.T) {
	cases := []struct {
		name        string
		text        string
		cursor      int
		wantHandled bool
		wantText    string
		wantCursor  int
	}{
		{name: "ordered increments", text: "1. first", cursor: 8, wantHandled: true, wantText: "1. first\n2. ", wantCursor: 12},
		{name: "multi digit ordered", text: "9. nine", cursor: 7, wantHandled: true, wantText: "9. nine\n10. ", wantCursor: 12},
		{name: "star bullet keeps spacing", text: "*  wide", cursor: 7, wantHandled: true, wantText: "*  wide\n*  ", wantCursor: 11},
		{name: "nested indent", text: "  - sub", cursor: 7, wantHandled: true, wantText: "  - sub\n  - ", wantCursor: 12},
		{name: "quote", text: "> said", cursor: 6, wantHandled: true, wantText: "> said\n> ", wantCursor: 9},
		{name: "empty quote ends", text: "> a\n> ", cursor: 6, wantHandled: true, wantText: "> a\n", wantCursor: 4},
		{name: "whitespace-only content ends", text: "-    ", cursor: 5, wantHandled: true, wantText: "", wantCursor: 0},
		{name: "task continues unchecked", text: "- [x] done", cursor: 10, wantHandled: true, wantText: "- [x] done\n- [ ] ", wantCursor: 17},
		{name: "empty task ends", text: "- [ ] ", cursor: 6, wantHandled: true, wantText: "", wantCursor: 0},
		{name: "mid-line split", text: "- ab", cursor: 3, wantHandled: true, wantText: "- a\n- b", wantCursor: 6},
		{name: "plain paragraph", text: "hello", cursor: 5, wantHandled: false, wantText: "hello", wantCursor: 5},
		{name: "marker without space", text: "-item", cursor: 5, wantHandled: false, wantText: "-item", wantCursor: 5},
		{name: "emphasis is not a bullet", text: "*word*", cursor: 6, wantHandled: false, wantText: "*word*", wantCursor: 6},
		{name: "lettered list stays unsupported", text: "a. item", cursor: 7, wantHandled: false, wantText: "a. item", wantCursor: 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SmartEnter(tc.text, tc.cursor)
			if got.Handled != tc.wantHandled {
				t.Fatalf("handled: got %v, want %v", got.Handled, tc.wantHandled)
			}
			if got.Text != tc.wantText {
				t.Fatalf("text: got %q, want %q", got.Text, tc.wantText)
			}
			if got.Cursor != tc.wantCursor {
				t.Fatalf("cursor: got %d, want %d", got.Cursor, tc.wantCursor)
			}
		})
	}
}
