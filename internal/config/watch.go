package config

import (
	"log/slog"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// ReloadedMsg is emitted when the config file changes on disk and has
// been re-read successfully.
type ReloadedMsg struct {
	Config *Config
}

// Watcher watches the config file for changes. Editors typically
// rename-and-replace on save, so the parent directory is watched and
// events are filtered by filename.
type Watcher struct {
	fsw     *fsnotify.Watcher
	path    string
	reloads chan *Config
}

// Watch starts watching the config file at the default path.
func Watch() (*Watcher, error) {
	return WatchPath(ConfigPath())
}

// WatchPath starts watching the config file at a specific path.
func WatchPath(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:     fsw,
		path:    path,
		reloads: make(chan *Config, 1),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	// Closing reloads here releases any pending WaitForReload once the
	// watcher shuts down; run is the only sender.
	defer close(w.reloads)
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			cfg, err := LoadFrom(w.path)
			if err != nil {
				slog.Warn("config reload failed", "path", w.path, "error", err)
				continue
			}
			// Drop a stale pending reload so the latest wins.
			select {
			case <-w.reloads:
			default:
			}
			w.reloads <- cfg
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("config watcher error", "error", err)
		}
	}
}

// WaitForReload returns a command that blocks until the next config
// reload. The caller re-issues it from its Update to keep listening.
func (w *Watcher) WaitForReload() tea.Cmd {
	return func() tea.Msg {
		cfg, ok := <-w.reloads
		if !ok {
			return nil
		}
		return ReloadedMsg{Config: cfg}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
