package buffer

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

// PosFromOffset converts a rune offset into a (row, col) position.
func PosFromOffset(text string, off int, mode OffsetClampMode) (Pos, bool) {
	off, ok := clampOffset(off, Len(text), mode)
	if !ok {
		return Pos{}, false
	}
	start := LineStartBefore(text, off)
	return Pos{Row: LineIndex(text, off), Col: off - start}, true
}

// OffsetFromPos converts a (row, col) position into a rune offset.
//
// With OffsetError, rows past the end and columns past the line length are
// rejected. With OffsetClamp they are pulled back into the document.
func OffsetFromPos(text string, p Pos, mode OffsetClampMode) (int, bool) {
	rows := LineCount(text)
	switch mode {
	case OffsetError:
		if p.Row < 0 || p.Row >= rows || p.Col < 0 {
			return 0, false
		}
	case OffsetClamp:
		p.Row = clampInt(p.Row, 0, rows-1)
	default:
		return 0, false
	}

	start, _ := LineStart(text, p.Row)
	end := LineEndAfter(text, start)
	if mode == OffsetError && p.Col > end-start {
		return 0, false
	}
	return start + clampInt(p.Col, 0, end-start), true
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		if off < 0 {
			return 0, true
		}
		if off > max {
			return max, true
		}
		return off, true
	default:
		return 0, false
	}
}
