package content

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads a content file whenever it changes on disk.
type Watcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// NewWatcher prepares a watcher for path. The parent directory is watched so
// editors that save by renaming a temp file are still seen.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve content path: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close() //nolint:errcheck
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{path: abs, debounce: debounce, watcher: watcher}, nil
}

// Watch blocks until ctx is done, passing every successful reload to
// onChange and every load or watch failure to onError.
func (w *Watcher) Watch(ctx context.Context, onChange func(Portfolio), onError func(error)) {
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			onError(err)

		case <-timer.C:
			p, err := Load(w.path)
			if err != nil {
				onError(err)
				continue
			}
			onChange(*p)
		}
	}
}

// Path is the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
