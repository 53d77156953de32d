package editor

import (
	"github.com/iw2rmb/zenith/buffer"
	"github.com/iw2rmb/zenith/internal/grapheme"
)

// prevBoundary steps one grapheme cluster left. A line start steps over the
// newline.
func prevBoundary(text string, off int) int {
	off = buffer.ClampOffset(text, off)
	start := buffer.LineStartBefore(text, off)
	if off == start {
		return max(off-1, 0)
	}
	line := buffer.Slice(text, start, buffer.LineEndAfter(text, start))
	return start + grapheme.Prev(line, off-start)
}

// nextBoundary steps one grapheme cluster right. A line end steps over the
// newline.
func nextBoundary(text string, off int) int {
	off = buffer.ClampOffset(text, off)
	start := buffer.LineStartBefore(text, off)
	end := buffer.LineEndAfter(text, off)
	if off == end {
		return min(off+1, buffer.Len(text))
	}
	line := buffer.Slice(text, start, end)
	return start + grapheme.Next(line, off-start)
}

type clusterClass uint8

const (
	classSpace clusterClass = iota
	classPunct
	classWord
)

func classify(cluster string) clusterClass {
	switch {
	case grapheme.IsSpace(cluster):
		return classSpace
	case grapheme.IsPunct(cluster):
		return classPunct
	}
	return classWord
}

// wordLeft moves to the start of the previous word or punctuation run on the
// current line. A line start steps to the end of the previous line.
func wordLeft(text string, off int) int {
	off = buffer.ClampOffset(text, off)
	start := buffer.LineStartBefore(text, off)
	if off == start {
		return max(off-1, 0)
	}
	line := buffer.Slice(text, start, off)
	clusters := grapheme.Split(line)
	i := len(clusters) - 1
	for i >= 0 && classify(clusters[i].Text) == classSpace {
		i--
	}
	if i < 0 {
		return start
	}
	class := classify(clusters[i].Text)
	for i > 0 && classify(clusters[i-1].Text) == class {
		i--
	}
	return start + clusters[i].Start
}

// wordRight moves past the next word or punctuation run on the current line.
// A line end steps to the start of the next line.
func wordRight(text string, off int) int {
	off = buffer.ClampOffset(text, off)
	end := buffer.LineEndAfter(text, off)
	if off == end {
		return min(off+1, buffer.Len(text))
	}
	clusters := grapheme.Split(buffer.Slice(text, off, end))
	i := 0
	for i < len(clusters) && classify(clusters[i].Text) == classSpace {
		i++
	}
	if i == len(clusters) {
		return end
	}
	class := classify(clusters[i].Text)
	for i < len(clusters) && classify(clusters[i].Text) == class {
		i++
	}
	if i == len(clusters) {
		return end
	}
	return off + clusters[i].Start
}
