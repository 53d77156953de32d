package editor

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/zenith/markdown"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	Home, End                                 key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding
	Indent            key.Binding

	Copy, Cut, Paste key.Binding
	Format           key.Binding
	Undo, Redo       key.Binding

	// Actions binds markdown command names to keys.
	Actions map[string]key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Indent:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),

		Copy:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:    key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste:  key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		Format: key.NewBinding(key.WithKeys("alt+f"), key.WithHelp("alt+f", "format document")),
		Undo:   key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:   key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),

		Actions: map[string]key.Binding{
			markdown.Heading1.Name():      key.NewBinding(key.WithKeys("alt+1"), key.WithHelp("alt+1", "heading 1")),
			markdown.Heading2.Name():      key.NewBinding(key.WithKeys("alt+2"), key.WithHelp("alt+2", "heading 2")),
			markdown.Heading3.Name():      key.NewBinding(key.WithKeys("alt+3"), key.WithHelp("alt+3", "heading 3")),
			markdown.Bold.Name():          key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "bold")),
			markdown.Italic.Name():        key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "italic")),
			markdown.Strikethrough.Name(): key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "strikethrough")),
			markdown.Code.Name():          key.NewBinding(key.WithKeys("alt+`"), key.WithHelp("alt+`", "code")),
			markdown.Quote.Name():         key.NewBinding(key.WithKeys("alt+q"), key.WithHelp("alt+q", "quote")),
			markdown.BulletList.Name():    key.NewBinding(key.WithKeys("alt+l"), key.WithHelp("alt+l", "bullet list")),
			markdown.OrderedList.Name():   key.NewBinding(key.WithKeys("alt+o"), key.WithHelp("alt+o", "ordered list")),
			markdown.Image.Name():         key.NewBinding(key.WithKeys("alt+g"), key.WithHelp("alt+g", "image")),
			markdown.Link.Name():          key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "link")),
			markdown.Table.Name():         key.NewBinding(key.WithKeys("alt+t"), key.WithHelp("alt+t", "table")),
			markdown.Divider.Name():       key.NewBinding(key.WithKeys("alt+-"), key.WithHelp("alt+-", "divider")),
		},
	}
}

// Bind replaces the keys of the binding called name. Names are the markdown
// command names plus the editor bindings listed in BindingNames. It reports
// false for unknown names.
func (km KeyMap) Bind(name string, keys ...string) (KeyMap, bool) {
	if _, ok := markdown.CommandByName(name); ok {
		actions := make(map[string]key.Binding, len(km.Actions)+1)
		for k, v := range km.Actions {
			actions[k] = v
		}
		actions[name] = rebind(actions[name], keys)
		km.Actions = actions
		return km, true
	}
	b := km.binding(name)
	if b == nil {
		return km, false
	}
	*b = rebind(*b, keys)
	return km, true
}

// BindingNames lists the editor binding names accepted by Bind.
func BindingNames() []string {
	return []string{
		"left", "right", "up", "down",
		"select-left", "select-right", "select-up", "select-down",
		"word-left", "word-right", "home", "end",
		"backspace", "delete", "enter", "indent",
		"copy", "cut", "paste", "format",
		"undo", "redo",
	}
}

func (km *KeyMap) binding(name string) *key.Binding {
	switch name {
	case "left":
		return &km.Left
	case "right":
		return &km.Right
	case "up":
		return &km.Up
	case "down":
		return &km.Down
	case "select-left":
		return &km.ShiftLeft
	case "select-right":
		return &km.ShiftRight
	case "select-up":
		return &km.ShiftUp
	case "select-down":
		return &km.ShiftDown
	case "word-left":
		return &km.WordLeft
	case "word-right":
		return &km.WordRight
	case "home":
		return &km.Home
	case "end":
		return &km.End
	case "backspace":
		return &km.Backspace
	case "delete":
		return &km.Delete
	case "enter":
		return &km.Enter
	case "indent":
		return &km.Indent
	case "copy":
		return &km.Copy
	case "cut":
		return &km.Cut
	case "paste":
		return &km.Paste
	case "format":
		return &km.Format
	case "undo":
		return &km.Undo
	case "redo":
		return &km.Redo
	}
	return nil
}

func rebind(b key.Binding, keys []string) key.Binding {
	desc := b.Help().Desc
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], desc))
}

func normalizeKeyMap(km KeyMap) KeyMap {
	if reflect.DeepEqual(km, KeyMap{}) {
		return DefaultKeyMap()
	}
	return km
}
