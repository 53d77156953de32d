package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/iw2rmb/zenith/buffer"
)

const welcomeDocument = `# Welcome to Zenith

Start typing in the **editor** on the left and watch the *preview* on the right.

## Features

- [x] Live preview
- [x] List continuation on enter
- [ ] Short codes, try typing :rocket
- [ ] Outline navigation

` + "```go" + `
fmt.Println("Hello, World!")
` + "```" + `

> "Simplicity is the ultimate sophistication." - Leonardo da Vinci
`

// document tracks the file behind the buffer. Dirty state compares a hash of
// the buffer with the hash of the last text read from or written to disk.
type document struct {
	path      string
	savedHash uint64
}

// openDocument reads path with line endings normalized to LF. A missing file
// opens an empty document that is created on first save; an empty path opens
// the welcome document.
func openDocument(path string) (string, document, error) {
	if path == "" {
		return welcomeDocument, document{savedHash: xxhash.Sum64String(welcomeDocument)}, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", document{}, fmt.Errorf("resolving %s: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if errors.Is(err, os.ErrNotExist) {
		return "", document{path: abs, savedHash: xxhash.Sum64String("")}, nil
	}
	if err != nil {
		return "", document{}, fmt.Errorf("reading %s: %w", abs, err)
	}
	text := buffer.NormalizeNewlines(string(data))
	return text, document{path: abs, savedHash: xxhash.Sum64String(text)}, nil
}

func (d document) dirty(text string) bool {
	return xxhash.Sum64String(text) != d.savedHash
}

func (d document) name(untitled string) string {
	if d.path == "" {
		return untitled
	}
	return filepath.Base(d.path)
}

// save writes text to the document path. An unnamed document is written to
// a dated file in the working directory.
func (d *document) save(text string, now time.Time) error {
	if d.path == "" {
		abs, err := filepath.Abs(defaultFilename(now))
		if err != nil {
			return err
		}
		d.path = abs
	}
	if err := os.WriteFile(d.path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", d.path, err)
	}
	d.savedHash = xxhash.Sum64String(text)
	return nil
}

// reload reads the file again. It reports false when the content on disk,
// after newline normalization, matches the last saved text.
func (d *document) reload() (string, bool, error) {
	if d.path == "" {
		return "", false, nil
	}
	data, err := os.ReadFile(d.path)
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", d.path, err)
	}
	text := buffer.NormalizeNewlines(string(data))
	h := xxhash.Sum64String(text)
	if h == d.savedHash {
		return "", false, nil
	}
	d.savedHash = h
	return text, true, nil
}

func defaultFilename(now time.Time) string {
	return now.Format("2006-01-02") + "-zenith.md"
}
