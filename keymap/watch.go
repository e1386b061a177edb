package keymap

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce coalesces the event bursts editors produce on save.
const reloadDebounce = 50 * time.Millisecond

// Watcher reloads a mapping file whenever it changes on disk. On each
// change it clears the user layer of every registered mode and re-runs
// the loader; the store's lock serializes the reload against concurrent
// registration.
//
// The parent directory is watched rather than the file itself, since
// most editors replace files on save.
type Watcher struct {
	loader *Loader
	path   string
	fsw    *fsnotify.Watcher
	errs   chan error

	closeOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// NewWatcher starts watching path and performs an initial load.
func NewWatcher(loader *Loader, path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		loader: loader,
		path:   abs,
		fsw:    fsw,
		errs:   make(chan error, 16),
		done:   make(chan struct{}),
	}

	if err := w.reload(); err != nil {
		w.reportError(err)
	}

	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Errors returns the channel reload and watch errors surface on.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops watching. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	var pending *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if pending == nil {
				pending = time.NewTimer(reloadDebounce)
				fire = pending.C
			} else {
				pending.Reset(reloadDebounce)
			}
		case <-fire:
			pending = nil
			fire = nil
			if err := w.reload(); err != nil {
				w.reportError(err)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.reportError(err)
		}
	}
}

// reload clears all user bindings and re-registers from the file.
func (w *Watcher) reload() error {
	store := w.loader.store
	for _, id := range store.Modes() {
		store.RemoveAll(id)
	}
	return w.loader.LoadFile(w.path)
}

func (w *Watcher) reportError(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
