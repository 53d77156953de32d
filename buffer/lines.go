package buffer

import (
	"strings"
	"unicode/utf8"
)

// LineStartBefore returns the offset of the first rune of the line that
// contains off. The rune at off-1 is the search anchor, so an offset right
// after a '\n' belongs to the line that newline opens.
func LineStartBefore(text string, off int) int {
	b, _ := locate(text, off)
	i := strings.LastIndexByte(text[:b], '\n')
	if i < 0 {
		return 0
	}
	return utf8.RuneCountInString(text[:i+1])
}

// LineEndAfter returns the offset of the first '\n' at or after off, or
// Len(text) when the line is the last one.
func LineEndAfter(text string, off int) int {
	b, off := locate(text, off)
	i := strings.IndexByte(text[b:], '\n')
	if i < 0 {
		return off + utf8.RuneCountInString(text[b:])
	}
	return off + utf8.RuneCountInString(text[b:b+i])
}

// LineIndex returns the 0-based row that contains off.
func LineIndex(text string, off int) int {
	b, _ := locate(text, off)
	return strings.Count(text[:b], "\n")
}

// LineStart returns the offset of the first rune of row.
func LineStart(text string, row int) (int, bool) {
	if row < 0 {
		return 0, false
	}
	b := 0
	for r := 0; r < row; r++ {
		i := strings.IndexByte(text[b:], '\n')
		if i < 0 {
			return 0, false
		}
		b += i + 1
	}
	return utf8.RuneCountInString(text[:b]), true
}

// Line returns the content of row without its trailing newline.
func Line(text string, row int) (string, bool) {
	start, ok := LineStart(text, row)
	if !ok {
		return "", false
	}
	return Slice(text, start, LineEndAfter(text, start)), true
}
