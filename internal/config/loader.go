package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/zenith/shortcode"
)

const (
	configDir  = ".config/zenith"
	configFile = "config.json"
)

// rawConfig is the unmarshaling intermediary. Pointer fields tell a missing
// value from a zero one so defaults survive.
type rawConfig struct {
	UI         rawUIConfig         `json:"ui" yaml:"ui" toml:"ui"`
	Editor     rawEditorConfig     `json:"editor" yaml:"editor" toml:"editor"`
	Shortcodes rawShortcodesConfig `json:"shortcodes" yaml:"shortcodes" toml:"shortcodes"`
	Keys       map[string][]string `json:"keys" yaml:"keys" toml:"keys"`
}

type rawUIConfig struct {
	LineNumbers *bool  `json:"lineNumbers" yaml:"lineNumbers" toml:"lineNumbers"`
	Outline     *bool  `json:"outline" yaml:"outline" toml:"outline"`
	Preview     *bool  `json:"preview" yaml:"preview" toml:"preview"`
	Theme       string `json:"theme" yaml:"theme" toml:"theme"`
	Language    string `json:"language" yaml:"language" toml:"language"`
}

type rawEditorConfig struct {
	LineHeight *int `json:"lineHeight" yaml:"lineHeight" toml:"lineHeight"`
	PopupRows  *int `json:"popupRows" yaml:"popupRows" toml:"popupRows"`
	TabWidth   *int `json:"tabWidth" yaml:"tabWidth" toml:"tabWidth"`
}

type rawShortcodesConfig struct {
	Disabled *bool          `json:"disabled" yaml:"disabled" toml:"disabled"`
	Extra    []rawShortcode `json:"extra" yaml:"extra" toml:"extra"`
}

type rawShortcode struct {
	Code   string `json:"code" yaml:"code" toml:"code"`
	Symbol string `json:"symbol" yaml:"symbol" toml:"symbol"`
}

// ParseError reports a malformed configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DefaultPath returns ~/.config/zenith/config.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDir, configFile), nil
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from path, picking the decoder from the file
// extension (.json, .yaml, .yml, .toml). If path is empty the default
// location is used. A missing file yields the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil // Return defaults on error
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	raw, err := parse(path, data)
	if err != nil {
		return nil, err
	}
	mergeConfig(cfg, raw)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func parse(path string, data []byte) (*rawConfig, error) {
	var raw rawConfig
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return &raw, nil
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	// UI
	if raw.UI.LineNumbers != nil {
		cfg.UI.LineNumbers = *raw.UI.LineNumbers
	}
	if raw.UI.Outline != nil {
		cfg.UI.Outline = *raw.UI.Outline
	}
	if raw.UI.Preview != nil {
		cfg.UI.Preview = *raw.UI.Preview
	}
	if raw.UI.Theme != "" {
		cfg.UI.Theme = strings.ToLower(raw.UI.Theme)
	}
	if raw.UI.Language != "" {
		cfg.UI.Language = strings.ToLower(raw.UI.Language)
	}

	// Editor
	if raw.Editor.LineHeight != nil {
		cfg.Editor.LineHeight = *raw.Editor.LineHeight
	}
	if raw.Editor.PopupRows != nil {
		cfg.Editor.PopupRows = *raw.Editor.PopupRows
	}
	if raw.Editor.TabWidth != nil {
		cfg.Editor.TabWidth = *raw.Editor.TabWidth
	}

	// Short codes
	if raw.Shortcodes.Disabled != nil {
		cfg.Shortcodes.Disabled = *raw.Shortcodes.Disabled
	}
	for _, rs := range raw.Shortcodes.Extra {
		if rs.Code == "" || rs.Symbol == "" {
			slog.Warn("ignoring incomplete short code", "code", rs.Code)
			continue
		}
		cfg.Shortcodes.Extra = append(cfg.Shortcodes.Extra, shortcode.Entry{Code: rs.Code, Symbol: rs.Symbol})
	}

	// Keys
	for name, keys := range raw.Keys {
		cfg.Keys[name] = append([]string(nil), keys...)
	}
}
