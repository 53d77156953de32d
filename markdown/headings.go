package markdown

import (
	"iter"
	"regexp"
	"strings"
)

var headingRE = regexp.MustCompile(`^(#{1,3})\s+(.+)$`)

// Heading is an outline entry. Line is the 0-based row of the heading.
type Heading struct {
	Level int
	Text  string
	Line  int
}

// ExtractHeadings yields the level 1-3 ATX headings of text in document
// order. The sequence scans text again each time it is ranged over.
func ExtractHeadings(text string) iter.Seq[Heading] {
	return func(yield func(Heading) bool) {
		line := 0
		for s := range strings.SplitSeq(text, "\n") {
			if m := headingRE.FindStringSubmatch(s); m != nil {
				if !yield(Heading{Level: len(m[1]), Text: m[2], Line: line}) {
					return
				}
			}
			line++
		}
	}
}

// SectionAt returns the last heading at or above row.
func SectionAt(text string, row int) (Heading, bool) {
	var (
		found Heading
		ok    bool
	)
	for h := range ExtractHeadings(text) {
		if h.Line > row {
			break
		}
		found, ok = h, true
	}
	return found, ok
}

// ScrollOffset maps a heading line to a scroll position for a surface that
// draws every line lineHeight units tall.
func ScrollOffset(line, lineHeight int) int {
	if line < 0 || lineHeight <= 0 {
		return 0
	}
	return line * lineHeight
}
