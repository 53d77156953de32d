package shortcode

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateCode = errors.New("shortcode: duplicate code")
	ErrInvalidCode   = errors.New("shortcode: invalid code")
)

// Entry maps a short code to the symbol that replaces it.
type Entry struct {
	Code   string
	Symbol string
}

// Table is an ordered code to symbol mapping with unique codes. Candidate
// lists follow insertion order.
type Table struct {
	entries []Entry
	index   map[string]int
}

// NewTable builds a table. Codes must be unique and use only the characters
// a trigger can match: lowercase ASCII letters, digits, '_', '+' and '-'.
func NewTable(entries ...Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if err := t.add(e); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// MustTable is like NewTable but panics on error. It is meant for static
// tables.
func MustTable(entries ...Entry) *Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// With returns a copy of t extended with entries.
func (t *Table) With(entries ...Entry) (*Table, error) {
	return NewTable(append(t.Entries(), entries...)...)
}

func (t *Table) add(e Entry) error {
	if !validCode(e.Code) {
		return fmt.Errorf("%w: %q", ErrInvalidCode, e.Code)
	}
	if e.Symbol == "" {
		return fmt.Errorf("%w: %q has no symbol", ErrInvalidCode, e.Code)
	}
	if _, dup := t.index[e.Code]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateCode, e.Code)
	}
	t.index[e.Code] = len(t.entries)
	t.entries = append(t.entries, e)
	return nil
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Entries returns a copy of the table in insertion order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	return append([]Entry(nil), t.entries...)
}

// Symbol returns the symbol registered for code.
func (t *Table) Symbol(code string) (string, bool) {
	if t == nil {
		return "", false
	}
	i, ok := t.index[code]
	if !ok {
		return "", false
	}
	return t.entries[i].Symbol, true
}

// Candidates returns up to MaxCandidates entries whose code contains query,
// compared case-insensitively, in table order.
func (t *Table) Candidates(query string) []Entry {
	if t == nil || query == "" {
		return nil
	}
	q := strings.ToLower(query)
	var out []Entry
	for _, e := range t.entries {
		if !strings.Contains(strings.ToLower(e.Code), q) {
			continue
		}
		out = append(out, e)
		if len(out) == MaxCandidates {
			break
		}
	}
	return out
}

func validCode(code string) bool {
	if code == "" {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !isCodeByte(code[i]) {
			return false
		}
	}
	return true
}

func isCodeByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '+', c == '-':
		return true
	}
	return false
}
