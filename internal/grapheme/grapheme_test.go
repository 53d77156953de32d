package grapheme

import "testing"

const family = "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466"

func TestSplit_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1].Text != "e\u0301" || got[1].Start != 1 || got[1].End != 3 {
		t.Fatalf("split[1]=%+v, want e+combining at [1,3)", got[1])
	}
	if got[2].Text != family || got[2].Start != 3 || got[2].End != 10 {
		t.Fatalf("split[2]=%+v, want family emoji at [3,10)", got[2])
	}
}

func TestNextPrev_StepWholeClusters(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"
	cases := []struct {
		off, next, prev int
	}{
		{off: 0, next: 1, prev: 0},
		{off: 1, next: 3, prev: 0},
		{off: 2, next: 3, prev: 1},
		{off: 3, next: 10, prev: 1},
		{off: 10, next: 11, prev: 3},
		{off: 11, next: 11, prev: 10},
	}
	for _, tc := range cases {
		if got := Next(text, tc.off); got != tc.next {
			t.Fatalf("Next(%d): got %d, want %d", tc.off, got, tc.next)
		}
		if got := Prev(text, tc.off); got != tc.prev {
			t.Fatalf("Prev(%d): got %d, want %d", tc.off, got, tc.prev)
		}
	}
	if got := Next("", 0); got != 0 {
		t.Fatalf("Next on empty: got %d, want 0", got)
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		name    string
		cluster string
		col     int
		want    int
	}{
		{name: "ascii", cluster: "a", want: 1},
		{name: "wide cjk", cluster: "界", want: 2},
		{name: "emoji", cluster: "🔥", want: 2},
		{name: "tab at 0", cluster: "\t", col: 0, want: 4},
		{name: "tab at 3", cluster: "\t", col: 3, want: 1},
		{name: "tab at 5", cluster: "\t", col: 5, want: 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Width(tc.cluster, tc.col, 4); got != tc.want {
				t.Fatalf("width: got %d, want %d", got, tc.want)
			}
		})
	}
	if got := StringWidth("a\tb界", 4); got != 7 {
		t.Fatalf("StringWidth: got %d, want 7", got)
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") {
		t.Fatalf("letter should not be space")
	}
	if !IsPunct("!") {
		t.Fatalf("exclamation should be punct")
	}
	if IsPunct("a") {
		t.Fatalf("letter should not be punct")
	}
}
