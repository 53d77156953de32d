// Package markdown implements the line-oriented transforms behind a markdown
// editing surface: line prefixes, list markers, block indentation, smart
// Enter, task checkbox toggling, toolbar commands, heading extraction and
// whole-document formatting.
//
// Every function is pure. It takes the current text plus a cursor or
// selection (rune offsets, see package buffer) and returns the new text and
// cursor. Recognition is plain line-pattern matching, not CommonMark parsing.
package markdown
