package markdown

import "testing"

func TestToggleTask_RoundTrip(t *testing.T) {
	text := "Check:\n- [ ] task\n"

	checked, ok := ToggleTask(text, 1, false)
	if !ok {
		t.Fatalf("expected toggle to apply")
	}
	if want := "Check:\n- [x] task\n"; checked != want {
		t.Fatalf("checked: got %q, want %q", checked, want)
	}

	back, ok := ToggleTask(checked, 1, true)
	if !ok {
		t.Fatalf("expected second toggle to apply")
	}
	if back != text {
		t.Fatalf("round trip: got %q, want %q", back, text)
	}
}

func TestToggleTask_KeepsRestOfLine(t *testing.T) {
	text := "  1. [X] ship [x] it  \nnext"
	got, ok := ToggleTask(text, 0, true)
	if !ok {
		t.Fatalf("expected toggle to apply")
	}
	if want := "  1. [ ] ship [x] it  \nnext"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToggleTask_NotApplicable(t *testing.T) {
	cases := []struct {
		name string
		text string
		line int
	}{
		{name: "line out of range", text: "- [ ] a", line: 3},
		{name: "negative line", text: "- [ ] a", line: -1},
		{name: "not a list item", text: "see [x] here", line: 0},
		{name: "list item without box", text: "- plain", line: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ToggleTask(tc.text, tc.line, false)
			if ok {
				t.Fatalf("expected not applicable")
			}
			if got != tc.text {
				t.Fatalf("text changed: got %q, want %q", got, tc.text)
			}
		})
	}
}

func TestTaskAt(t *testing.T) {
	text := "- [ ] open\n* [x] done\nplain"
	if checked, ok := TaskAt(text, 0); !ok || checked {
		t.Fatalf("line 0: got (%v,%v), want (false,true)", checked, ok)
	}
	if checked, ok := TaskAt(text, 1); !ok || !checked {
		t.Fatalf("line 1: got (%v,%v), want (true,true)", checked, ok)
	}
	if _, ok := TaskAt(text, 2); ok {
		t.Fatalf("line 2 should not be a task")
	}
}
