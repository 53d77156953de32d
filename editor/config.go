package editor

import (
	"log/slog"

	"github.com/iw2rmb/zenith/shortcode"
)

const (
	defaultTabWidth   = 4
	defaultLineHeight = 1
)

// Config configures the editor Model.
type Config struct {
	// Initial text.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	// TabWidth is the cell width of a tab stop. Zero means 4.
	TabWidth int
	// LineHeight is the number of terminal rows per logical line. Zero
	// means 1.
	LineHeight int

	KeyMap           KeyMap
	CompletionKeyMap CompletionKeyMap

	// CompletionMaxVisibleRows caps the popup height. Zero means 8.
	CompletionMaxVisibleRows int

	// Shortcodes is the trigger table. Nil means shortcode.Emoji(); an empty
	// table disables the popup.
	Shortcodes *shortcode.Table

	Clipboard Clipboard
	// Measurer places the completion popup. Nil means CellMeasurer.
	Measurer CaretMeasurer

	ReadOnly bool

	// HistoryLimit caps undo steps. Zero means buffer.DefaultHistoryLimit;
	// negative disables undo.
	HistoryLimit int

	// Logger receives debug records for committed transforms. Nil discards.
	Logger *slog.Logger

	// OnChange is called after every committed text change.
	OnChange func(ChangeEvent)
}

func normalizeConfig(cfg Config) Config {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = defaultTabWidth
	}
	if cfg.LineHeight <= 0 {
		cfg.LineHeight = defaultLineHeight
	}
	cfg.KeyMap = normalizeKeyMap(cfg.KeyMap)
	cfg.CompletionKeyMap = normalizeCompletionKeyMap(cfg.CompletionKeyMap)
	cfg.CompletionMaxVisibleRows = normalizeCompletionMaxVisibleRows(cfg.CompletionMaxVisibleRows)
	if cfg.Shortcodes == nil {
		cfg.Shortcodes = shortcode.Emoji()
	}
	if cfg.Measurer == nil {
		cfg.Measurer = CellMeasurer{TabWidth: cfg.TabWidth, LineHeight: cfg.LineHeight}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}
