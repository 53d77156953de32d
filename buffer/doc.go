// Package buffer implements the pure, rune-accurate primitives every markdown
// transform is built on.
//
// A buffer is a plain Go string with '\n' line separators. Offsets are
// 0-based rune indexes into it; selections are half-open [Start, End).
// Nothing in this package mutates its input: every edit returns a new string
// and the cursor that goes with it.
//
// Offsets outside [0, Len(text)] are a caller error. Functions clamp them
// instead of panicking, so callers must clamp after every mutation if they
// want exact results.
package buffer
