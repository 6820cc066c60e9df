package localstore

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrijs2005/touristguide/internal/changes"
	"github.com/dmitrijs2005/touristguide/internal/logging"
)

// Watcher surfaces store writes made by other processes sharing the same
// store file. It publishes changes.TopicStorage events with External set
// and an empty Key: file notifications cannot tell which row changed, so
// consumers must treat the event as "anything may have changed".
//
// Event timing is platform-dependent and not guaranteed immediate. The
// watcher also sees writes made by this process; consumers re-read state
// on every event, so the duplicate signal is harmless.
type Watcher struct {
	fw       *fsnotify.Watcher
	notifier *changes.Notifier
	log      logging.Logger

	// debounce collapses the burst of file events a single SQLite
	// commit produces (db, wal, shm) into one signal.
	debounce time.Duration
}

// NewWatcher creates a watcher for the store database at path. Close it
// via Run's context.
func NewWatcher(path string, notifier *changes.Notifier, log logging.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create store watcher: %w", err)
	}

	// Watching the directory rather than the file survives journal
	// rotation, where SQLite replaces files instead of rewriting them.
	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{
		fw:       fw,
		notifier: notifier,
		log:      log,
		debounce: 100 * time.Millisecond,
	}, nil
}

// Run delivers external change events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	defer w.fw.Close()

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.AfterFunc(w.debounce, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			w.notifier.Publish(changes.Event{Topic: changes.TopicStorage, External: true})

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn(ctx, "store watcher error", "error", err)

		case <-ctx.Done():
			return
		}
	}
}
