package gazetteer

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads the store when the landmarks file changes on disk.
// Events are debounced because editors and atomic-rename writers emit
// bursts of write events for a single save.
type Watcher struct {
	store    *Store
	path     string
	log      *zap.Logger
	debounce time.Duration
}

// NewWatcher creates a watcher for the given landmarks file.
func NewWatcher(store *Store, path string, log *zap.Logger) *Watcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{
		store:    store,
		path:     path,
		log:      log,
		debounce: 500 * time.Millisecond,
	}
}

// Start begins watching and returns immediately. The watch loop stops
// when ctx is cancelled. The parent directory is watched, not the file
// itself, so atomic renames are seen.
func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	target := filepath.Clean(w.path)
	dir := filepath.Dir(target)

	go func() {
		defer watcher.Close()

		var timer *time.Timer
		var timerC <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return

			case evt := <-watcher.Events:
				if filepath.Clean(evt.Name) != target {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(w.debounce)
					timerC = timer.C
				} else {
					timer.Reset(w.debounce)
				}

			case <-timerC:
				timer = nil
				timerC = nil
				w.log.Info("landmarks file changed, reloading",
					zap.String("path", target))
				if err := w.store.Reload(ctx); err != nil {
					w.log.Warn("reload after file change failed", zap.Error(err))
				}

			case err := <-watcher.Errors:
				w.log.Warn("gazetteer watch error", zap.Error(err))
			}
		}
	}()

	return watcher.Add(dir)
}
