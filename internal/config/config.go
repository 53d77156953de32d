// Package config loads the zenith editor settings.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/iw2rmb/zenith/editor"
	"github.com/iw2rmb/zenith/shortcode"
)

var (
	ErrUnknownFormat = errors.New("config: unknown file format")
	ErrInvalid       = errors.New("config: invalid value")
)

// Themes and languages understood by the application chrome.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	LanguageEnglish = "en"
	LanguageSpanish = "es"
)

// Config is the root configuration structure.
type Config struct {
	UI         UIConfig
	Editor     EditorConfig
	Shortcodes ShortcodesConfig
	// Keys maps an action or editor binding name to its keys.
	Keys map[string][]string
}

// UIConfig holds global presentation state.
type UIConfig struct {
	LineNumbers bool
	Outline     bool
	Preview     bool
	Theme       string
	Language    string
}

// EditorConfig configures the editing surface.
type EditorConfig struct {
	LineHeight int
	PopupRows  int
	TabWidth   int
}

// ShortcodesConfig configures the inline trigger table.
type ShortcodesConfig struct {
	Disabled bool
	Extra    []shortcode.Entry
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			LineNumbers: true,
			Outline:     true,
			Preview:     true,
			Theme:       ThemeDark,
			Language:    LanguageEnglish,
		},
		Editor: EditorConfig{
			LineHeight: 1,
			PopupRows:  8,
			TabWidth:   4,
		},
		Keys: map[string][]string{},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.UI.Theme {
	case ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("%w: ui.theme %q", ErrInvalid, c.UI.Theme)
	}
	switch c.UI.Language {
	case LanguageEnglish, LanguageSpanish:
	default:
		return fmt.Errorf("%w: ui.language %q", ErrInvalid, c.UI.Language)
	}
	if c.Editor.LineHeight < 1 || c.Editor.LineHeight > 4 {
		return fmt.Errorf("%w: editor.lineHeight %d not in [1,4]", ErrInvalid, c.Editor.LineHeight)
	}
	if c.Editor.PopupRows < 1 {
		return fmt.Errorf("%w: editor.popupRows %d", ErrInvalid, c.Editor.PopupRows)
	}
	if c.Editor.TabWidth < 1 {
		return fmt.Errorf("%w: editor.tabWidth %d", ErrInvalid, c.Editor.TabWidth)
	}
	return nil
}

// ShortcodeTable extends base with the configured extras. Extras that clash
// with an existing code or are malformed are skipped with a warning. A
// disabled configuration yields an empty table.
func (c *Config) ShortcodeTable(base *shortcode.Table) *shortcode.Table {
	if c.Shortcodes.Disabled {
		return shortcode.MustTable()
	}
	table := base
	for _, e := range c.Shortcodes.Extra {
		next, err := table.With(e)
		if err != nil {
			slog.Warn("ignoring short code", "code", e.Code, "err", err)
			continue
		}
		table = next
	}
	return table
}

// ApplyKeys rebinds km from Keys. Unknown names are skipped with a warning.
func (c *Config) ApplyKeys(km editor.KeyMap) editor.KeyMap {
	for name, keys := range c.Keys {
		next, ok := km.Bind(name, keys...)
		if !ok {
			slog.Warn("ignoring unknown key binding", "name", name)
			continue
		}
		km = next
	}
	return km
}
