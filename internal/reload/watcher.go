package reload

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces bursts of events (editors often write a file in
// several steps).
const DefaultDebounce = 200 * time.Millisecond

// Watch watches paths and calls onChange once per burst of events. A file
// path watches its parent directory and filters on the file name; a directory
// is watched recursively and new subdirectories are picked up. A path that
// does not exist yet is watched through its parent directory so creating it
// later triggers onChange; paths whose parent is missing too are skipped.
// Calls to onChange never overlap. Watch returns once the watcher is
// running; it stops when ctx is cancelled. A nil logger uses slog.Default.
func Watch(ctx context.Context, paths []string, debounce time.Duration, logger *slog.Logger, onChange func()) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	w := &watch{
		watcher:  watcher,
		files:    make(map[string]bool),
		debounce: debounce,
		logger:   logger,
		onChange: onChange,
	}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			watcher.Close()
			return err
		}
		info, err := os.Stat(abs)
		if err == nil && info.IsDir() {
			if err := w.addTree(abs); err != nil {
				watcher.Close()
				return err
			}
			w.trees = append(w.trees, abs)
			continue
		}
		if err != nil && !os.IsNotExist(err) {
			logger.Warn("reload watcher: skipping path", "path", p, "err", err)
			continue
		}
		if _, err := os.Stat(filepath.Dir(abs)); err != nil {
			logger.Warn("reload watcher: skipping path", "path", p, "err", err)
			continue
		}
		w.files[abs] = true
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			watcher.Close()
			return err
		}
	}

	go w.run(ctx)

	logger.Info("reload watcher started", "paths", paths)
	return nil
}

type watch struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	trees    []string
	debounce time.Duration
	logger   *slog.Logger
	onChange func()

	mu      sync.Mutex // guards pending
	pending *time.Timer
	runMu   sync.Mutex // serializes onChange
}

// addTree adds dir and every directory below it.
func (w *watch) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := w.watcher.Add(path); err != nil {
				w.logger.Warn("reload watcher: add dir", "dir", path, "err", err)
			}
		}
		return nil
	})
}

func (w *watch) trigger() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		w.pending = nil
		w.mu.Unlock()

		w.runMu.Lock()
		defer w.runMu.Unlock()
		w.onChange()
	})
}

func (w *watch) run(ctx context.Context) {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			w.mu.Lock()
			if w.pending != nil {
				w.pending.Stop()
			}
			w.mu.Unlock()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !relevant(event, w.files, w.trees) {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						w.logger.Warn("reload watcher: add new dir", "dir", event.Name, "err", err)
					}
					// A watched directory that was missing at start.
					if w.files[event.Name] {
						w.trees = append(w.trees, event.Name)
					}
				}
			}
			w.logger.Debug("reload watcher: change", "path", event.Name, "op", event.Op.String())
			w.trigger()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("reload watcher error", "err", err)
		}
	}
}

// relevant drops chmod-only events and events on files that merely share a
// directory with a watched file.
func relevant(event fsnotify.Event, files map[string]bool, trees []string) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	if files[event.Name] {
		return true
	}
	for _, root := range trees {
		if event.Name == root || strings.HasPrefix(event.Name, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
