// Package watch provides change notification for a single file, used by
// the eltab command to re-align its input on every save.
package watch

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports write events for one file.
//
// The parent directory is watched rather than the file itself: many
// editors save by writing a temporary file and renaming it over the
// original, which would silently drop a watch on the file's inode.
type Watcher struct {
	fsw    *fsnotify.Watcher
	events chan struct{}
	errs   chan error

	closeOnce sync.Once
	done      chan struct{}
}

// New starts watching the given file for writes.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:    fsw,
		events: make(chan struct{}, 1),
		errs:   make(chan error, 1),
		done:   make(chan struct{}),
	}
	go w.loop(abs)
	return w, nil
}

// Events returns a channel that receives a value when the file changes.
// Bursts of writes coalesce into a single pending event.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Errors returns a channel of watcher errors.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) loop(path string) {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Name != path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			select {
			case w.events <- struct{}{}:
			default: // an event is already pending
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			case <-w.done:
				return
			default:
			}
		case <-w.done:
			return
		}
	}
}
