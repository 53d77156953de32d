package markdown

import (
	"regexp"

	"github.com/iw2rmb/zenith/buffer"
)

var taskItemRE = regexp.MustCompile(`^(\s*(?:[-*+]|\d+\.)\s+)\[([ xX])\]`)

// TaskAt reports whether line holds a task list item and whether it is
// checked.
func TaskAt(text string, line int) (checked, ok bool) {
	s, ok := buffer.Line(text, line)
	if !ok {
		return false, false
	}
	m := taskItemRE.FindStringSubmatch(s)
	if m == nil {
		return false, false
	}
	return m[2] != " ", true
}

// ToggleTask flips the checkbox of the task item on line. wasChecked is the
// state the renderer displayed before the toggle: false writes "x", true
// writes a space. All other bytes of the line are kept.
func ToggleTask(text string, line int, wasChecked bool) (string, bool) {
	start, ok := buffer.LineStart(text, line)
	if !ok {
		return text, false
	}
	end := buffer.LineEndAfter(text, start)
	s := buffer.Slice(text, start, end)

	loc := taskItemRE.FindStringSubmatchIndex(s)
	if loc == nil {
		return text, false
	}
	mark := "x"
	if wasChecked {
		mark = " "
	}
	patched := s[:loc[4]] + mark + s[loc[5]:]
	return buffer.Replace(text, start, end, patched).Text, true
}
