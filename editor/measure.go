package editor

import (
	"github.com/iw2rmb/zenith/buffer"
	"github.com/iw2rmb/zenith/internal/grapheme"
)

// CaretMeasurer reports where the caret at off is drawn, in cells relative
// to the first cell of the document.
type CaretMeasurer interface {
	MeasureCaret(text string, off int) (x, y int)
}

// CellMeasurer measures terminal cells with grapheme widths.
type CellMeasurer struct {
	TabWidth   int
	LineHeight int
}

func (c CellMeasurer) MeasureCaret(text string, off int) (x, y int) {
	off = buffer.ClampOffset(text, off)
	start := buffer.LineStartBefore(text, off)
	x = grapheme.StringWidth(buffer.Slice(text, start, off), c.TabWidth)
	y = buffer.LineIndex(text, off) * max(c.LineHeight, 1)
	return x, y
}
