package markdown

import (
	"strings"

	"github.com/iw2rmb/zenith/buffer"
)

// IndentUnit is inserted by IndentSelection.
const IndentUnit = "  "

// PrefixLine inserts insertion at the start of the line containing cursor.
// The cursor shifts right by the inserted length so it stays on the same
// character of the line.
func PrefixLine(text string, cursor int, insertion string) buffer.Result {
	start := buffer.LineStartBefore(text, cursor)
	res := buffer.InsertAt(text, start, start, insertion, "")
	return buffer.Result{Text: res.Text, Cursor: cursor + buffer.Len(insertion)}
}

// InsertListMarker inserts marker at the cursor when the line up to the
// cursor is blank, and "\n"+marker otherwise, so existing content is never
// split into a list item.
func InsertListMarker(text string, cursor int, marker string) buffer.Result {
	start := buffer.LineStartBefore(text, cursor)
	ins := marker
	if strings.TrimSpace(buffer.Slice(text, start, cursor)) != "" {
		ins = "\n" + marker
	}
	return buffer.InsertAt(text, cursor, cursor, ins, "")
}

// IndentSelection indents a caret by IndentUnit, or every line touched by a
// range selection, including a first line that is only partly selected.
func IndentSelection(text string, start, end int) buffer.BlockResult {
	width := buffer.Len(IndentUnit)
	if start == end {
		res := buffer.InsertAt(text, start, start, IndentUnit, "")
		return buffer.BlockResult{Text: res.Text, Start: start + width, End: end + width}
	}

	sel := buffer.Selection{Start: start, End: end}.Normalize()
	lineStart := buffer.LineStartBefore(text, sel.Start)
	block := buffer.Slice(text, lineStart, sel.End)

	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = IndentUnit + lines[i]
	}
	indented := strings.Join(lines, "\n")

	res := buffer.Replace(text, lineStart, sel.End, indented)
	return buffer.BlockResult{
		Text:  res.Text,
		Start: sel.Start + width,
		End:   sel.End + buffer.Len(indented) - buffer.Len(block),
	}
}
