package buffer

// Pos points into the document by (row, col) in runes.
// Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

// Selection is a half-open pair of rune offsets. Start == End is a caret.
type Selection struct {
	Start int
	End   int
}

// Caret returns the empty selection at off.
func Caret(off int) Selection {
	return Selection{Start: off, End: off}
}

func (s Selection) IsCaret() bool {
	return s.Start == s.End
}

// Len returns the number of selected runes.
func (s Selection) Len() int {
	s = s.Normalize()
	return s.End - s.Start
}

// Normalize orders Start and End.
func (s Selection) Normalize() Selection {
	if s.Start <= s.End {
		return s
	}
	return Selection{Start: s.End, End: s.Start}
}

// Result is the outcome of a transform that leaves a caret behind.
type Result struct {
	Text   string
	Cursor int
}

// Selection returns the caret left by the transform.
func (r Result) Selection() Selection {
	return Caret(r.Cursor)
}

// BlockResult is the outcome of a transform that keeps a selection, such as
// block indentation.
type BlockResult struct {
	Text  string
	Start int
	End   int
}

func (r BlockResult) Selection() Selection {
	return Selection{Start: r.Start, End: r.End}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
