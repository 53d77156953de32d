package buffer

import "slices"

// DefaultHistoryLimit is the number of undo steps kept when a limit of zero
// is requested.
const DefaultHistoryLimit = 1000

// Snapshot is a document state kept for undo.
type Snapshot struct {
	Text string
	Sel  Selection
}

// History is a bounded undo/redo stack of snapshots. Copies share no
// mutable state, so a History can live inside a value-receiver model.
type History struct {
	limit int
	undo  []Snapshot
	redo  []Snapshot
}

// NewHistory returns a history keeping at most limit undo steps. Zero means
// DefaultHistoryLimit; a negative limit records nothing.
func NewHistory(limit int) History {
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	return History{limit: limit}
}

// Record pushes the state before an edit and clears the redo stack.
func (h *History) Record(prev Snapshot) {
	if h.limit <= 0 {
		return
	}
	h.undo = append(slices.Clip(h.undo), prev)
	if len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
	h.redo = nil
}

func (h History) CanUndo() bool { return len(h.undo) > 0 }

func (h History) CanRedo() bool { return len(h.redo) > 0 }

// Undo pops the last recorded state and keeps cur for Redo.
func (h *History) Undo(cur Snapshot) (Snapshot, bool) {
	if len(h.undo) == 0 {
		return Snapshot{}, false
	}
	i := len(h.undo) - 1
	prev := h.undo[i]
	h.undo = slices.Clip(h.undo[:i])
	h.redo = append(slices.Clip(h.redo), cur)
	return prev, true
}

// Redo reapplies the last undone state and keeps cur for Undo.
func (h *History) Redo(cur Snapshot) (Snapshot, bool) {
	if len(h.redo) == 0 {
		return Snapshot{}, false
	}
	i := len(h.redo) - 1
	next := h.redo[i]
	h.redo = slices.Clip(h.redo[:i])
	h.undo = append(slices.Clip(h.undo), cur)
	if len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
	return next, true
}

// Reset drops both stacks.
func (h *History) Reset() {
	h.undo, h.redo = nil, nil
}
