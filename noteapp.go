package noteapp

import (
	"log/slog"
	"time"

	"github.com/aretw0/noteapp/internal/platform"
	"github.com/aretw0/noteapp/pkg/core"
)

// --- Configuration ---

// Option defines a functional option for configuring NoteApp.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithReadOnly opens the store without ever writing to it.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithRecoverCorrupt moves an unreadable store aside and starts empty.
func WithRecoverCorrupt(enabled bool) Option {
	return platform.WithRecoverCorrupt(enabled)
}

// WithForceTemp forces the use of a temporary store (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety toggles the automatic sandbox used under `go run` and `go test`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithClock replaces time.Now for note timestamps.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithWatcherErrorHandler receives asynchronous errors from the store watcher.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates the note service for the store at path and loads it.
// An empty path selects DefaultStorePath.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init builds the repository for the store at path without loading it.
func Init(path string, opts ...Option) (core.Repository, error) {
	return platform.Init(path, opts...)
}

// DefaultStorePath returns ~/Documents/NoteApp.notes.
func DefaultStorePath() (string, error) {
	return platform.DefaultStorePath()
}
