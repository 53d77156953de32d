package markdown

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/iw2rmb/zenith/buffer"
)

var (
	listItemRE = regexp.MustCompile(`^(\s*)([-*>]|\d+\.)(\s+)(.*)$`)
	taskBoxRE  = regexp.MustCompile(`^\[[ xX]\](\s+|$)`)
)

// EnterResult is the outcome of SmartEnter. When Handled is false the text
// and cursor are unchanged and the caller inserts a plain newline.
type EnterResult struct {
	buffer.Result
	Handled bool
}

// SmartEnter continues or ends the list item or quote the cursor is in.
//
// The line is classified from its start up to the cursor. A marker followed by
// content continues the construct on a new line (ordered numerals count up,
// task items start unchecked). A marker with nothing after it ends the
// construct: the marker text is removed and the cursor moves to the start of
// the now blank line.
func SmartEnter(text string, cursor int) EnterResult {
	lineStart := buffer.LineStartBefore(text, cursor)
	m := listItemRE.FindStringSubmatch(buffer.Slice(text, lineStart, cursor))
	if m == nil {
		return EnterResult{Result: buffer.Result{Text: text, Cursor: cursor}}
	}
	indent, marker, spacing, content := m[1], m[2], m[3], m[4]

	box := ""
	if marker != ">" {
		if loc := taskBoxRE.FindStringIndex(content); loc != nil {
			box = "[ ] "
			content = content[loc[1]:]
		}
	}

	if strings.TrimSpace(content) == "" {
		return EnterResult{Result: buffer.Delete(text, lineStart, cursor), Handled: true}
	}

	next := "\n" + indent + nextMarker(marker) + spacing + box
	return EnterResult{Result: buffer.InsertAt(text, cursor, cursor, next, ""), Handled: true}
}

func nextMarker(marker string) string {
	num, ok := strings.CutSuffix(marker, ".")
	if !ok {
		return marker
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return marker
	}
	return strconv.Itoa(n+1) + "."
}
