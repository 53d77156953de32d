package buffer

import "strings"

// InsertAt wraps text[start:end] with prefix and suffix.
//
// The cursor lands after the whole inserted span, so wrapping a selection and
// inserting markers at a caret behave the same way.
func InsertAt(text string, start, end int, prefix, suffix string) Result {
	s := Selection{Start: start, End: end}.Normalize()
	bs, start := locate(text, s.Start)
	be, _ := locate(text, s.End)
	selected := text[bs:be]

	var sb strings.Builder
	sb.Grow(len(text) + len(prefix) + len(suffix))
	sb.WriteString(text[:bs])
	sb.WriteString(prefix)
	sb.WriteString(selected)
	sb.WriteString(suffix)
	sb.WriteString(text[be:])

	return Result{
		Text:   sb.String(),
		Cursor: start + Len(prefix) + Len(selected) + Len(suffix),
	}
}

// Replace substitutes repl for text[start:end]. The cursor lands right after
// repl.
func Replace(text string, start, end int, repl string) Result {
	s := Selection{Start: start, End: end}.Normalize()
	bs, start := locate(text, s.Start)
	be, _ := locate(text, s.End)
	return Result{
		Text:   text[:bs] + repl + text[be:],
		Cursor: start + Len(repl),
	}
}

// Delete removes text[start:end].
func Delete(text string, start, end int) Result {
	return Replace(text, start, end, "")
}
