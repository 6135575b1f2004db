// Package watch re-runs a callback when watched files change, with
// debouncing so editors that write in bursts trigger one run.
package watch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounce = 500 * time.Millisecond

// Watcher observes a set of files and invokes a callback after changes.
type Watcher struct {
	files    map[string]bool
	callback func() error
	log      *zap.Logger
	watcher  *fsnotify.Watcher
	done     chan struct{}
}

// New creates a watcher over the given files. The parent directories are
// watched so that atomic rename-over saves are observed too.
func New(log *zap.Logger, callback func() error, files ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	w := &Watcher{
		files:    make(map[string]bool, len(files)),
		callback: callback,
		log:      log,
		watcher:  fw,
		done:     make(chan struct{}),
	}
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("watch: %w", err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// Start runs the callback once, then keeps re-running it on changes until
// Stop is called.
func (w *Watcher) Start() error {
	if err := w.callback(); err != nil {
		return err
	}
	go w.loop()
	return nil
}

func (w *Watcher) loop() {
	timer := time.NewTimer(debounce)
	timer.Stop()
	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			if abs, err := filepath.Abs(event.Name); err == nil && w.files[abs] {
				timer.Reset(debounce)
				pending = timer.C
			}
		case <-pending:
			pending = nil
			if err := w.callback(); err != nil {
				w.log.Error("watch run failed", zap.Error(err))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error("watch error", zap.Error(err))
		case <-w.done:
			return
		}
	}
}

// Stop ends the watch loop and releases the underlying watcher.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}
