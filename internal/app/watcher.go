package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/linemark/internal/ports"
)

// DefaultDebounce is the delay between the last change event and a re-run.
const DefaultDebounce = 100 * time.Millisecond

// RunFunc performs one annotation pass.
type RunFunc func(ctx context.Context) error

// Watcher re-runs an annotation pass whenever the watched file changes.
type Watcher struct {
	path     string
	debounce time.Duration
	run      RunFunc
	logger   ports.Logger

	trigger chan struct{}

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher creates a watcher for path. A non-positive debounce uses DefaultDebounce.
func NewWatcher(path string, debounce time.Duration, run RunFunc, logger ports.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		run:      run,
		logger:   logger,
		trigger:  make(chan struct{}, 1),
	}
}

// Run performs an initial pass, then one pass per debounced change to the file.
// Failed passes are logged and do not stop the watch.
// Returns nil when ctx is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so editors that replace the file are still seen.
	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	defer w.stopTimer()

	w.pass(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.schedule()

		case <-w.trigger:
			w.pass(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", ports.Err(err))
		}
	}
}

func (w *Watcher) pass(ctx context.Context) {
	if err := w.run(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		w.logger.Error("annotation failed", ports.String("file", w.path), ports.Err(err))
	}
}

// schedule arms the debounce timer; the pass itself runs on the Run goroutine.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.trigger <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}
