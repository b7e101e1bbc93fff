package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/noteapp/pkg/adapters/fs"
	"github.com/aretw0/noteapp/pkg/core"
)

// Init builds the repository for the store at path. An empty path selects
// DefaultStorePath. No I/O happens on the store itself.
func Init(path string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return initRepository(path, o)
}

func initRepository(path string, o *options) (core.Repository, error) {
	if o.repository != nil {
		return o.repository, nil
	}

	if path == "" {
		def, err := DefaultStorePath()
		if err != nil {
			return nil, err
		}
		path = def
	}
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}

	// Read-only runs cannot damage anything, so they skip the sandbox.
	bypassSafety := o.readOnly || !o.devSafety
	useTemp := o.forceTemp || (IsDevRun() && !bypassSafety)
	resolved := ResolveStorePath(path, useTemp)

	if o.logger != nil && resolved != path {
		o.logger.Warn("running in SAFE MODE (Dev/Test)", "original_path", path, "resolved_path", resolved)
	}

	return fs.NewStore(fs.Config{
		Path:           resolved,
		Logger:         o.logger,
		ReadOnly:       o.readOnly,
		RecoverCorrupt: o.recoverCorrupt,
		ErrorHandler:   o.errorHandler,
	}), nil
}

// New creates the note service and loads the persisted project.
// A corrupt store fails here unless WithRecoverCorrupt is set.
func New(path string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo, err := initRepository(path, o)
	if err != nil {
		return nil, err
	}

	var svcOpts []core.ServiceOption
	if o.logger != nil {
		svcOpts = append(svcOpts, core.WithServiceLogger(o.logger))
	}
	if o.clock != nil {
		svcOpts = append(svcOpts, core.WithClock(o.clock))
	}
	service := core.NewService(repo, svcOpts...)

	if err := service.Load(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}
	return service, nil
}
