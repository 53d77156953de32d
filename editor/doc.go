// Package editor provides a Bubble Tea markdown editing surface backed by the
// pure transforms in the buffer, markdown and shortcode packages.
//
// The model owns the text and one selection. Every key press is turned into a
// transform call whose result (text, cursor) the model commits. The inline
// short-code popup is the only transient state and it is recomputed after each
// caret move or text change.
package editor
