package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/aretw0/noteapp"
	"github.com/aretw0/noteapp/pkg/adapters/fs"
	"github.com/aretw0/noteapp/pkg/core"
	"github.com/spf13/cobra"
)

// session is the loaded project for one command invocation.
type session struct {
	service *core.Service
	store   *fs.Store
}

// openSession resolves the store from flags and config, then loads it.
// Flags win over the config file and environment.
func openSession(cmd *cobra.Command) (*session, error) {
	path := storePath
	if path == "" && cfg != nil {
		path = cfg.Store.Path
	}

	opts := []noteapp.Option{
		noteapp.WithLogger(slog.Default()),
		noteapp.WithReadOnly(readOnly || (cfg != nil && cfg.Store.ReadOnly)),
		noteapp.WithRecoverCorrupt(recoverCorrupt || (cfg != nil && cfg.Store.RecoverCorrupt)),
	}

	repo, err := noteapp.Init(path, opts...)
	if err != nil {
		return nil, err
	}
	store, ok := repo.(*fs.Store)
	if !ok {
		return nil, fmt.Errorf("unexpected repository type %T", repo)
	}

	service := core.NewService(repo, core.WithServiceLogger(slog.Default()))
	if err := service.Load(cmd.Context()); err != nil {
		return nil, err
	}

	if backup := store.RecoveredFrom(); backup != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: store was unreadable and has been moved to %s\n", backup)
	}
	return &session{service: service, store: store}, nil
}

// target identifies a note either by display position or by id.
type target struct {
	index int
	id    string
}

func parseTarget(args []string, id string) (target, error) {
	if id != "" {
		return target{index: -1, id: id}, nil
	}
	if len(args) == 0 {
		return target{}, errors.New("a note index or --id is required")
	}
	if i, err := strconv.Atoi(args[0]); err == nil {
		return target{index: i}, nil
	}
	return target{index: -1, id: args[0]}, nil
}

func (s *session) resolve(t target) (core.Note, error) {
	if t.id != "" {
		return s.service.GetNote(t.id)
	}
	return s.service.NoteAt(t.index)
}

// describeError turns the core error taxonomy into a message that tells the
// user what state the store is in.
func describeError(err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidImport):
		return fmt.Sprintf("%v; the note store was not changed", err)
	case errors.Is(err, core.ErrCorruptStore):
		return fmt.Sprintf("the note store exists but is unreadable (%v); run with --recover to move it aside and start empty", err)
	case errors.Is(err, core.ErrReadOnly):
		return "the store is open read-only; nothing was saved"
	case errors.Is(err, core.ErrPersistence):
		return fmt.Sprintf("could not access the note store: %v", err)
	default:
		return err.Error()
	}
}

func storeExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
