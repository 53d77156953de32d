package main

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

type (
	watchStartedMsg struct{ watcher *fileWatcher }
	// fileChangedMsg reports that the open file was written by another
	// program.
	fileChangedMsg struct {
		path    string
		watcher *fileWatcher
	}
)

// fileWatcher watches the directory holding path, since editors often
// replace files by rename, and signals once writes to path settle.
type fileWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	events  chan struct{}
	done    chan struct{}
	once    sync.Once
	logger  *slog.Logger
}

func newFileWatcher(path string, logger *slog.Logger) (*fileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	fw := &fileWatcher{
		path:    path,
		watcher: w,
		events:  make(chan struct{}, 1),
		done:    make(chan struct{}),
		logger:  logger,
	}
	go fw.run()
	return fw, nil
}

func (fw *fileWatcher) run() {
	var debounceTimer *time.Timer
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			// Debounce rapid events
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(watchDebounce, func() {
				select {
				case fw.events <- struct{}{}:
				default:
				}
			})

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn("file watcher error", "path", fw.path, "err", err)
		}
	}
}

// Stop ends the watch. It is safe to call more than once.
func (fw *fileWatcher) Stop() error {
	var err error
	fw.once.Do(func() {
		close(fw.done)
		err = fw.watcher.Close()
	})
	return err
}

// startWatcher begins watching path in the background.
func startWatcher(path string, logger *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		fw, err := newFileWatcher(path, logger)
		if err != nil {
			logger.Warn("file watching disabled", "path", path, "err", err)
			return nil
		}
		return watchStartedMsg{watcher: fw}
	}
}

// listen waits for the next settled change. It returns nil once the
// watcher is stopped.
func (fw *fileWatcher) listen() tea.Cmd {
	if fw == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-fw.events:
			return fileChangedMsg{path: fw.path, watcher: fw}
		case <-fw.done:
			return nil
		}
	}
}
