package markdown

import "github.com/iw2rmb/zenith/buffer"

// Command is an editing intent bound to a toolbar button or key.
type Command interface {
	Name() string
	Apply(text string, sel buffer.Selection) buffer.Result
}

// Wrap surrounds the selection (or the caret) with Prefix and Suffix, then
// moves the cursor by CursorShift.
type Wrap struct {
	ID          string
	Prefix      string
	Suffix      string
	CursorShift int
}

func (w Wrap) Name() string { return w.ID }

func (w Wrap) Apply(text string, sel buffer.Selection) buffer.Result {
	sel = sel.Normalize()
	res := buffer.InsertAt(text, sel.Start, sel.End, w.Prefix, w.Suffix)
	res.Cursor = buffer.ClampOffset(res.Text, res.Cursor+w.CursorShift)
	return res
}

// LinePrefix prepends Insertion to the line holding the selection start.
type LinePrefix struct {
	ID        string
	Insertion string
}

func (p LinePrefix) Name() string { return p.ID }

func (p LinePrefix) Apply(text string, sel buffer.Selection) buffer.Result {
	return PrefixLine(text, sel.Normalize().Start, p.Insertion)
}

// ListMarker starts a list item at the selection start.
type ListMarker struct {
	ID     string
	Marker string
}

func (l ListMarker) Name() string { return l.ID }

func (l ListMarker) Apply(text string, sel buffer.Selection) buffer.Result {
	return InsertListMarker(text, sel.Normalize().Start, l.Marker)
}

var (
	Bold          = Wrap{ID: "bold", Prefix: "**", Suffix: "**"}
	Italic        = Wrap{ID: "italic", Prefix: "*", Suffix: "*"}
	Strikethrough = Wrap{ID: "strikethrough", Prefix: "~~", Suffix: "~~"}
	Code          = Wrap{ID: "code", Prefix: "`", Suffix: "`"}
	Link          = Wrap{ID: "link", Prefix: "[", Suffix: "]()", CursorShift: -1}
	Image         = Wrap{ID: "image", Prefix: "![Alt text](", Suffix: ")", CursorShift: -1}
	Table         = Wrap{ID: "table", Prefix: "\n| Col 1 | Col 2 |\n|---|---|\n| Val 1 | Val 2 |"}
	Divider       = Wrap{ID: "divider", Prefix: "\n---\n"}

	Heading1 = LinePrefix{ID: "heading1", Insertion: "# "}
	Heading2 = LinePrefix{ID: "heading2", Insertion: "## "}
	Heading3 = LinePrefix{ID: "heading3", Insertion: "### "}
	Quote    = LinePrefix{ID: "quote", Insertion: "> "}

	BulletList  = ListMarker{ID: "bullet-list", Marker: "- "}
	OrderedList = ListMarker{ID: "ordered-list", Marker: "1. "}
)

// Commands returns the built-in commands in toolbar order.
func Commands() []Command {
	return []Command{
		Heading1, Heading2, Heading3,
		Bold, Italic, Strikethrough, Code,
		Quote, BulletList, OrderedList,
		Image, Link, Table, Divider,
	}
}

// CommandByName looks up a built-in command.
func CommandByName(name string) (Command, bool) {
	for _, c := range Commands() {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}
