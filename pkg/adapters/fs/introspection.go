package fs

import (
	"os"
	"time"

	"github.com/aretw0/introspection"
	"github.com/aretw0/lifecycle/pkg/core/worker"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path          string     `json:"path"`
	ReadOnly      bool       `json:"read_only"`
	Exists        bool       `json:"exists"`
	SizeBytes     int64      `json:"size_bytes"`
	WatcherActive bool       `json:"watcher_active"`
	LastLoad      *time.Time `json:"last_load,omitempty"`
	LastSave      *time.Time `json:"last_save,omitempty"`
	RecoveredFrom string     `json:"recovered_from,omitempty"`

	// WatcherStatus is the lifecycle status of the last watcher started, if any.
	WatcherStatus worker.Status `json:"watcher_status,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := StoreState{
		Path:          s.Path,
		ReadOnly:      s.config.ReadOnly,
		WatcherActive: s.watcherActive,
		LastLoad:      s.lastLoad,
		LastSave:      s.lastSave,
		RecoveredFrom: s.recovered,
	}
	if s.watch != nil {
		state.WatcherStatus = s.watch.State().Status
	}
	if info, err := os.Stat(s.Path); err == nil {
		state.Exists = true
		state.SizeBytes = info.Size()
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "file-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}
