// Package shortcode implements inline short-code autocomplete: typing
// ":fir" right before the caret offers the symbols whose codes contain "fir",
// and accepting one replaces the typed code with the symbol.
//
// The package keeps no buffer state. Hosts call Lookup after every caret
// move or text change and own the returned State value while the popup is
// open.
package shortcode
