package main

import "github.com/iw2rmb/zenith/internal/config"

// labels holds the chrome strings for one language.
type labels struct {
	Outline        string
	NoHeadings     string
	Untitled       string
	Modified       string
	Saved          string
	SaveFailed     string
	Reloaded       string
	ChangedOnDisk  string
	NewDocument    string
	ConfirmDiscard string
	ConfirmKey     string // accepts ConfirmDiscard
	Help           string
}

var translations = map[string]labels{
	config.LanguageEnglish: {
		Outline:        "Outline",
		NoHeadings:     "No headings found",
		Untitled:       "untitled",
		Modified:       "modified",
		Saved:          "saved",
		SaveFailed:     "save failed",
		Reloaded:       "reloaded from disk",
		ChangedOnDisk:  "file changed on disk",
		NewDocument:    "New File",
		ConfirmDiscard: "Discard unsaved changes? (y/n)",
		ConfirmKey:     "y",
		Help:           "ctrl+s save · ctrl+n new · ctrl+z undo · ctrl+o outline · ctrl+r preview · ctrl+g zen · ctrl+q quit",
	},
	config.LanguageSpanish: {
		Outline:        "Esquema",
		NoHeadings:     "No se encontraron encabezados",
		Untitled:       "sin título",
		Modified:       "modificado",
		Saved:          "guardado",
		SaveFailed:     "error al guardar",
		Reloaded:       "recargado desde disco",
		ChangedOnDisk:  "el archivo cambió en disco",
		NewDocument:    "Nuevo Archivo",
		ConfirmDiscard: "¿Descartar cambios sin guardar? (s/n)",
		ConfirmKey:     "s",
		Help:           "ctrl+s guardar · ctrl+n nuevo · ctrl+z deshacer · ctrl+o esquema · ctrl+r vista previa · ctrl+g zen · ctrl+q salir",
	},
}

func labelsFor(lang string) labels {
	if l, ok := translations[lang]; ok {
		return l
	}
	return translations[config.LanguageEnglish]
}
