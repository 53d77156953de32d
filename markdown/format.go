package markdown

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	blankRunRE   = regexp.MustCompile(`\n{3,}`)
	atxHeadingRE = regexp.MustCompile(`^#{1,6}\s`)
)

// FormatDocument normalizes whitespace: trailing spaces are stripped from
// every line, runs of blank lines collapse to one, headings get a blank line
// above them, and the document is trimmed. Heading-like lines inside fenced
// code blocks are left alone. FormatDocument is idempotent.
func FormatDocument(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRightFunc(l, unicode.IsSpace)
	}
	text = blankRunRE.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	text = spaceHeadings(text)
	return strings.TrimSpace(text)
}

func spaceHeadings(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	inFence := false
	for _, l := range lines {
		if isFence(l) {
			inFence = !inFence
		}
		if !inFence && len(out) > 0 && out[len(out)-1] != "" && atxHeadingRE.MatchString(l) {
			out = append(out, "")
		}
		out = append(out, l)
	}
	return strings.Join(out, "\n")
}

func isFence(line string) bool {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	return strings.HasPrefix(line, "```") || strings.HasPrefix(line, "~~~")
}
