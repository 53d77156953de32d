package shortcode

import "github.com/iw2rmb/zenith/buffer"

const (
	// MaxCandidates caps the candidate list.
	MaxCandidates = 10

	// Trigger opens a short code.
	Trigger = ':'

	minQueryLen = 2
)

// Match is a trigger found right before the caret. [Start, End) covers the
// trigger character and the query.
type Match struct {
	Query string
	Start int
	End   int
}

// QueryAt looks for ":code" ending exactly at caret, where code is at least
// two characters of [a-z0-9_+-].
func QueryAt(text string, caret int) (Match, bool) {
	caret = buffer.ClampOffset(text, caret)
	line := buffer.Slice(text, buffer.LineStartBefore(text, caret), caret)

	i := len(line)
	for i > 0 && isCodeByte(line[i-1]) {
		i--
	}
	query := line[i:]
	if len(query) < minQueryLen || i == 0 || line[i-1] != Trigger {
		return Match{}, false
	}
	return Match{
		Query: query,
		Start: caret - len(query) - 1,
		End:   caret,
	}, true
}

// State is the candidate popup state. The zero value is inactive.
type State struct {
	Active   bool
	Match    Match
	Items    []Entry
	Selected int
}

// Lookup computes a fresh State for text and sel. It is active only for a
// caret that follows a trigger with at least one candidate; the selection
// starts at the first candidate.
func Lookup(t *Table, text string, sel buffer.Selection) State {
	if !sel.IsCaret() {
		return State{}
	}
	m, ok := QueryAt(text, sel.End)
	if !ok {
		return State{}
	}
	items := t.Candidates(m.Query)
	if len(items) == 0 {
		return State{}
	}
	return State{Active: true, Match: m, Items: items}
}

// Next moves the selection down, wrapping to the first candidate.
func (s State) Next() State {
	if n := len(s.Items); s.Active && n > 0 {
		s.Selected = (s.Selected + 1) % n
	}
	return s
}

// Prev moves the selection up, wrapping to the last candidate.
func (s State) Prev() State {
	if n := len(s.Items); s.Active && n > 0 {
		s.Selected = (s.Selected - 1 + n) % n
	}
	return s
}

// Current returns the selected candidate.
func (s State) Current() (Entry, bool) {
	if !s.Active || s.Selected < 0 || s.Selected >= len(s.Items) {
		return Entry{}, false
	}
	return s.Items[s.Selected], true
}

// Accept replaces the matched trigger and query with the selected symbol.
// The cursor lands right after the symbol.
func (s State) Accept(text string) (buffer.Result, bool) {
	e, ok := s.Current()
	if !ok {
		return buffer.Result{Text: text, Cursor: s.Match.End}, false
	}
	return buffer.Replace(text, s.Match.Start, s.Match.End, e.Symbol), true
}

// Dismiss closes the popup without touching the buffer.
func (s State) Dismiss() State {
	return State{}
}
