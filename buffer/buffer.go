package buffer

import (
	"strings"
	"unicode/utf8"
)

// Len returns the length of text in runes.
func Len(text string) int {
	return utf8.RuneCountInString(text)
}

// ClampOffset clamps off into [0, Len(text)].
func ClampOffset(text string, off int) int {
	return clampInt(off, 0, Len(text))
}

// ClampSelection clamps both bounds of s into text and normalizes it.
func ClampSelection(text string, s Selection) Selection {
	n := Len(text)
	s = Selection{Start: clampInt(s.Start, 0, n), End: clampInt(s.End, 0, n)}
	return s.Normalize()
}

// Slice returns the text between two rune offsets.
func Slice(text string, start, end int) string {
	s := Selection{Start: start, End: end}.Normalize()
	bs, _ := locate(text, s.Start)
	be, _ := locate(text, s.End)
	return text[bs:be]
}

// locate maps a rune offset to its byte index, clamping into text. It also
// returns the clamped rune offset.
func locate(text string, off int) (byteIdx, runeOff int) {
	if off <= 0 {
		return 0, 0
	}
	n := 0
	for i := range text {
		if n == off {
			return i, n
		}
		n++
	}
	return len(text), n
}

// LineCount returns the number of logical lines. An empty buffer has one.
func LineCount(text string) int {
	return strings.Count(text, "\n") + 1
}

// NormalizeNewlines converts CRLF and lone CR line endings to LF. Text from
// files, the clipboard and pastes goes through it before reaching a buffer.
func NormalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
