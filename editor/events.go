package editor

import "github.com/iw2rmb/zenith/buffer"

// ChangeReason names the intent that produced a change.
type ChangeReason string

const (
	ReasonInsert     ChangeReason = "insert"
	ReasonDelete     ChangeReason = "delete"
	ReasonNewline    ChangeReason = "newline"
	ReasonSmartEnter ChangeReason = "smart-enter"
	ReasonIndent     ChangeReason = "indent"
	ReasonPaste      ChangeReason = "paste"
	ReasonCut        ChangeReason = "cut"
	ReasonFormat     ChangeReason = "format"
	ReasonShortcode  ChangeReason = "shortcode"
	ReasonAction     ChangeReason = "action"
	ReasonUndo       ChangeReason = "undo"
	ReasonRedo       ChangeReason = "redo"
)

type ChangeEvent struct {
	Reason ChangeReason
	// Action is the command name for ReasonAction.
	Action string

	Text      string
	Selection buffer.Selection
	Cursor    buffer.Pos
}
