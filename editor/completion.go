package editor

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

const defaultCompletionMaxVisibleRows = 8

// CompletionKeyMap drives the short-code popup while it is visible. Keys that
// are not listed here close the popup and are then handled normally.
type CompletionKeyMap struct {
	Accept key.Binding
	// AcceptTab also accepts with tab.
	AcceptTab bool

	Dismiss key.Binding
	Next    key.Binding
	Prev    key.Binding
}

func DefaultCompletionKeyMap() CompletionKeyMap {
	return CompletionKeyMap{
		Accept:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept completion")),
		AcceptTab: true,
		Dismiss:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss completion")),
		Next:      key.NewBinding(key.WithKeys("down"), key.WithHelp("down", "next completion")),
		Prev:      key.NewBinding(key.WithKeys("up"), key.WithHelp("up", "prev completion")),
	}
}

func normalizeCompletionKeyMap(km CompletionKeyMap) CompletionKeyMap {
	if reflect.DeepEqual(km, CompletionKeyMap{}) {
		return DefaultCompletionKeyMap()
	}
	return km
}

func normalizeCompletionMaxVisibleRows(rows int) int {
	if rows <= 0 {
		return defaultCompletionMaxVisibleRows
	}
	return rows
}
