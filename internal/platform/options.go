package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/noteapp/pkg/core"
)

// options holds the internal configuration for the note service.
type options struct {
	repository     core.Repository
	logger         *slog.Logger
	clock          func() time.Time
	readOnly       bool
	recoverCorrupt bool
	forceTemp      bool
	devSafety      bool
	errorHandler   func(error)
}

// Option defines a functional option for configuring the note service.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		devSafety: true,
	}
}

// WithLogger sets the logger for the service and the store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. mock).
// If provided, the default file store is skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithReadOnly rejects every save with core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithRecoverCorrupt moves an unreadable store aside and starts empty
// instead of failing the load.
func WithRecoverCorrupt(enabled bool) Option {
	return func(o *options) {
		o.recoverCorrupt = enabled
	}
}

// WithForceTemp forces the store into the temporary sandbox (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}

// WithDevSafety controls the automatic sandbox used under `go run` and `go test`.
// Enabled by default.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}

// WithClock replaces time.Now for note timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithWatcherErrorHandler receives asynchronous errors from the store watcher.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
