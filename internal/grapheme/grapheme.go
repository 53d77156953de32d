// Package grapheme measures text in grapheme clusters and terminal cells.
//
// Offsets in and out of this package are rune offsets, matching the buffer
// package.
package grapheme

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cluster is one grapheme cluster and the rune offsets it spans.
type Cluster struct {
	Text  string
	Start int
	End   int
}

// Split returns grapheme clusters for text in visual order.
func Split(text string) []Cluster {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]Cluster, 0, len(text))
	off := 0
	for g.Next() {
		n := len(g.Runes())
		out = append(out, Cluster{Text: g.Str(), Start: off, End: off + n})
		off += n
	}
	return out
}

// Next returns the rune offset of the first cluster boundary after off, or
// the rune length of text when off is at or past the last cluster.
func Next(text string, off int) int {
	end := 0
	for _, c := range Split(text) {
		end = c.End
		if c.End > off {
			return c.End
		}
	}
	return end
}

// Prev returns the rune offset of the last cluster boundary before off, or 0.
func Prev(text string, off int) int {
	prev := 0
	for _, c := range Split(text) {
		if c.Start >= off {
			break
		}
		prev = c.Start
	}
	return prev
}

// Width returns the cell width of cluster drawn at visual column col. Tabs
// advance to the next multiple of tabWidth.
func Width(cluster string, col, tabWidth int) int {
	if cluster == "\t" {
		if tabWidth <= 0 {
			return 1
		}
		return tabWidth - col%tabWidth
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		// Zero-width joiner sequences and variation selectors.
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}

// StringWidth returns the cell width of a single line starting at column 0.
func StringWidth(line string, tabWidth int) int {
	col := 0
	for _, c := range Split(line) {
		col += Width(c.Text, col, tabWidth)
	}
	return col
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether all runes in cluster are Unicode punctuation.
func IsPunct(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}
