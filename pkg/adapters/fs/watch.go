package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/noteapp/pkg/core"
)

// DebounceInterval collapses bursts of writes to the store into one event.
const DebounceInterval = 50 * time.Millisecond

// Watch reports changes made to the store file by other processes until ctx
// is cancelled. Saves made through this Store are not reported.
// The parent directory is watched so atomic replacements are seen.
func (s *Store) Watch(ctx context.Context) (<-chan core.Event, error) {
	events := make(chan core.Event, 16)
	w := newStoreWatcher(s, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.watch = w
	s.mu.Unlock()
	return events, nil
}

// storeWatcher is the worker behind Store.Watch.
type storeWatcher struct {
	*worker.BaseWorker
	store     *Store
	events    chan core.Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc
}

func newStoreWatcher(store *Store, events chan core.Event) *storeWatcher {
	return &storeWatcher{
		BaseWorker: worker.NewBaseWorker("store-watcher"),
		store:      store,
		events:     events,
	}
}

func (w *storeWatcher) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	dir := filepath.Dir(w.store.Path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(DebounceInterval)
	w.store.setWatcherActive(true)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *storeWatcher) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}
	return w.BaseWorker.Stop(ctx)
}

func (w *storeWatcher) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
			"path":              w.store.Path,
		}
	})
}

func (w *storeWatcher) run(ctx context.Context) (err error) {
	logger := w.store.config.Logger
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if logger != nil {
				if logger.Enabled(ctx, slog.LevelDebug) {
					logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
				} else {
					logger.Error("watcher panic", "error", err)
				}
			}
		}
		if err != nil && w.store.config.ErrorHandler != nil {
			w.store.config.ErrorHandler(err)
		}
	}()
	defer close(w.events)
	defer w.store.setWatcherActive(false)
	defer w.watcher.Close()

	err = w.loop(ctx)

	// Pending timers must finish before the events channel is closed.
	w.debouncer.stopAndWait(5 * time.Second)
	return err
}

func (w *storeWatcher) loop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.handle(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			if w.store.config.Logger != nil {
				w.store.config.Logger.Error("fsnotify error", "error", wErr)
			}
			if w.store.config.ErrorHandler != nil {
				w.store.config.ErrorHandler(wErr)
			}
		}
	}
}

func (w *storeWatcher) handle(ctx context.Context, event fsnotify.Event) {
	if isTempFile(event.Name) || filepath.Base(event.Name) != filepath.Base(w.store.Path) {
		return
	}

	eType := mapEventType(event)
	if eType == "" {
		return
	}
	w.store.debug("store event", "op", event.Op.String(), "type", eType)

	w.debouncer.add(core.Event{
		Type:      eType,
		Path:      w.store.Path,
		Timestamp: time.Now().Unix(),
	}, func(e core.Event) {
		defer func() {
			// The channel may already be closed if the loop exited on an error.
			_ = recover()
		}()
		// Checked once the burst settles so the stamp of our own Save is recorded.
		if e.Type != core.EventDelete && w.store.isOwnWrite() {
			w.store.debug("own save ignored", "path", e.Path)
			return
		}
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	default:
		return ""
	}
}

var _ worker.Worker = (*storeWatcher)(nil)
