// Package watch monitors a template file and triggers regeneration when it
// changes. Events are debounced so editors that write in several steps
// cause one regeneration, not a burst.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the settle time between the last file event and the
// change callback.
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches a single file for modification.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
}

// New creates a Watcher for path. A non-positive debounce falls back to
// DefaultDebounce.
func New(path string, debounce time.Duration) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{path: absPath, watcher: watcher, debounce: debounce}, nil
}

// Run blocks, invoking onChange after each settled batch of changes to the
// watched file, until ctx is canceled.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	// Watching the directory is more reliable than watching the file:
	// editors often replace the file, which would drop a direct watch.
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch directory %s: %w", filepath.Dir(w.path), err)
	}

	slog.Info("watching template", "path", w.path, "debounce", w.debounce)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			slog.Debug("template changed", "path", event.Name, "op", event.Op.String())
			pending = time.After(w.debounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("file watcher error", "error", err)
		case <-pending:
			pending = nil
			onChange()
		}
	}
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return name == w.path
}
