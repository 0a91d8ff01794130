package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/eisen/pkg/core"
)

// Watch reports changes to key files made by any process, including this one.
// Rewrites that leave a file's bytes unchanged are not reported.
// The channel is closed when ctx is cancelled.
func (s *Storage) Watch(ctx context.Context) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(s.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.Path, err)
	}

	w := &watchWorker{
		storage: s,
		watcher: watcher,
		events:  make(chan core.Event),
		hashes:  make(map[string]uint64),
		keys:    make(map[string]string),
	}
	w.snapshot()
	s.setWatcherActive(true)

	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		s.reportError(fmt.Errorf("watcher stopped: %w", err))
	}))
	return w.events, nil
}

type watchWorker struct {
	storage *Storage
	watcher *fsnotify.Watcher
	events  chan core.Event
	hashes  map[string]uint64 // file name -> xxhash of the last bytes seen
	keys    map[string]string // file name -> key, for hashed names after removal
}

// run is the main event loop for the watcher.
func (w *watchWorker) run(ctx context.Context) error {
	defer close(w.events)
	defer w.storage.setWatcherActive(false)
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			e, ok := w.translate(event)
			if !ok {
				continue
			}
			select {
			case w.events <- e:
			case <-ctx.Done():
				return nil
			}

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.storage.reportError(wErr)
		}
	}
}

// translate maps a filesystem event on a key file to a core.Event.
func (w *watchWorker) translate(event fsnotify.Event) (core.Event, bool) {
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, TempFilePrefix) {
		return core.Event{}, false
	}
	if _, ok := KeyFromFileName(name); !ok && !isHashedName(name) {
		return core.Event{}, false
	}

	now := time.Now().Unix()
	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		if _, err := os.Stat(event.Name); err == nil {
			// Renamed over by an atomic write; the Create that follows reports it.
			return core.Event{}, false
		}
		key, ok := w.keys[name]
		if !ok {
			if key, ok = KeyFromFileName(name); !ok {
				return core.Event{}, false
			}
		}
		delete(w.hashes, name)
		delete(w.keys, name)
		return core.Event{Type: core.EventDelete, Key: key, Timestamp: now}, true
	}

	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return core.Event{}, false
	}

	data, err := os.ReadFile(event.Name)
	if err != nil {
		w.storage.config.Logger.Debug("watched file vanished", "file", name, "error", err)
		return core.Event{}, false
	}
	key, ok := w.storage.keyOf(name)
	if !ok {
		return core.Event{}, false
	}
	sum := xxhash.Sum64(data)
	prev, known := w.hashes[name]
	if known && prev == sum {
		return core.Event{}, false
	}
	w.hashes[name] = sum
	w.keys[name] = key

	eType := core.EventModify
	if !known {
		eType = core.EventCreate
	}
	return core.Event{Type: eType, Key: key, Timestamp: now}, true
}

// snapshot records the current content of every key file so that the
// watcher only reports real changes.
func (w *watchWorker) snapshot() {
	entries, err := os.ReadDir(w.storage.Path)
	if err != nil {
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		key, ok := w.storage.keyOf(e.Name())
		if !ok {
			continue
		}
		data, err := os.ReadFile(filepath.Join(w.storage.Path, e.Name()))
		if err != nil {
			continue
		}
		w.hashes[e.Name()] = xxhash.Sum64(data)
		w.keys[e.Name()] = key
	}
}

func (s *Storage) reportError(err error) {
	if s.config.ErrorHandler != nil {
		s.config.ErrorHandler(err)
		return
	}
	s.config.Logger.Error("fsnotify error", "error", err)
}
