package server

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Iron-Ham/larek/internal/errors"
	"github.com/Iron-Ham/larek/internal/logging"
)

// reloadDebounce collapses the burst of events editors produce for one save.
const reloadDebounce = 100 * time.Millisecond

// Watcher reloads a Catalog when its file changes on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	catalog *Catalog
	path    string
	logger  *logging.Logger

	// onReload is called after every reload attempt, mainly for tests.
	onReload func(error)

	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewWatcher creates a watcher for the catalog file at path. The parent
// directory is watched so atomic saves (write to temp, rename) are seen.
func NewWatcher(catalog *Catalog, path string, logger *logging.Logger) (*Watcher, error) {
	if logger == nil {
		logger = logging.NopLogger()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	return &Watcher{
		watcher: fw,
		catalog: catalog,
		path:    abs,
		logger:  logger.WithComponent("catalog-watcher"),
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}, nil
}

// OnReload sets a callback invoked after each reload with its error, if any.
// Must be called before Start.
func (w *Watcher) OnReload(cb func(error)) {
	w.onReload = cb
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop stops the watcher and waits for the loop to exit.
// It must only be called after Start.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		_ = w.watcher.Close()
	})
	<-w.done
}

// watchLoop processes filesystem events
func (w *Watcher) watchLoop() {
	defer close(w.done)

	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C // drain initial timer
	pending := false

	for {
		select {
		case <-w.stopCh:
			debounceTimer.Stop()
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = true
			debounceTimer.Reset(reloadDebounce)

		case <-debounceTimer.C:
			if pending {
				pending = false
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err.Error())
		}
	}
}

// reload replaces the catalog. A broken file keeps the previous catalog.
func (w *Watcher) reload() {
	products, err := LoadCatalogFile(w.path)
	if err == nil && len(products) == 0 {
		// An empty file is usually a save caught half way.
		err = errors.NewValidationError("catalog is empty").WithField(w.path)
	}
	if err == nil {
		err = w.catalog.Replace(products)
	}

	if err != nil {
		w.logger.Error("catalog reload failed, keeping previous catalog", "path", w.path, "error", err.Error())
	} else {
		w.logger.Info("catalog reloaded", "path", w.path, "count", len(products))
	}

	if w.onReload != nil {
		w.onReload(err)
	}
}
