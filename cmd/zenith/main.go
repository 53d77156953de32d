// Command zenith is a terminal markdown editor with an outline and a live
// preview.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/zenith"
	"github.com/iw2rmb/zenith/internal/config"
)

var (
	configPath  = flag.String("config", "", "path to config file")
	debugFlag   = flag.Bool("debug", false, "enable debug logging")
	logPath     = flag.String("log", "", "write logs to this file")
	versionFlag = flag.Bool("version", false, "print version and exit")
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: zenith [flags] [file.md]\n\n")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Printf("zenith %s\n", zenith.VersionTag())
		os.Exit(0)
	}

	// Setup logging. The terminal belongs to the UI, so records go to a file
	// or nowhere.
	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	text, doc, err := openDocument(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open file: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(cfg, text, doc, logger), tea.WithAltScreen(), tea.WithMouseCellMotion())

	final, err := p.Run()
	if m, ok := final.(model); ok {
		m.stopWatcher()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}
