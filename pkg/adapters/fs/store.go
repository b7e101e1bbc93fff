package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/aretw0/noteapp/pkg/core"
)

const (
	// DefaultFileName is the base name of the store inside the documents folder.
	DefaultFileName = "NoteApp.notes"

	// CorruptSuffix is inserted before the timestamp when a corrupt store is moved aside.
	CorruptSuffix = ".corrupt-"
)

// Store implements core.Repository as a single JSON file.
type Store struct {
	Path   string
	config Config
	codec  core.Codec

	mu            sync.RWMutex
	watcherActive bool
	watch         *storeWatcher
	lastSave      *time.Time
	lastLoad      *time.Time
	recovered     string
	written       fileStamp
}

// Config holds the configuration for the file store.
type Config struct {
	Path     string
	Logger   *slog.Logger
	ReadOnly bool
	// RecoverCorrupt moves an undecodable store aside and starts empty instead of failing.
	RecoverCorrupt bool
	// Perm is the mode of the written file. Defaults to 0644.
	Perm os.FileMode
	// ErrorHandler receives asynchronous watcher errors.
	ErrorHandler func(error)
}

// NewStore creates a new file-backed store. No I/O happens until Load or Save.
func NewStore(config Config) *Store {
	if config.Perm == 0 {
		config.Perm = 0644
	}
	return &Store{
		Path:   config.Path,
		config: config,
		codec:  NewJSONCodec(),
	}
}

// Load reads the project from disk.
//
// A missing file is the first-run state and yields an empty project. Any other
// open or read failure is core.ErrPersistence; an undecodable file is
// core.ErrCorruptStore unless RecoverCorrupt is set.
func (s *Store) Load(ctx context.Context) (*core.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := s.read()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.debug("store not found, starting empty", "path", s.Path)
			s.markLoad()
			return core.NewProject(), nil
		}
		return nil, fmt.Errorf("%w: failed to read %s: %w", core.ErrPersistence, s.Path, err)
	}

	project, err := s.decode(data)
	if err != nil {
		if !s.config.RecoverCorrupt || s.config.ReadOnly {
			return nil, err
		}
		return s.recoverCorrupt(err)
	}

	s.debug("store loaded", "path", s.Path, "notes", project.Len())
	s.markLoad()
	return project, nil
}

func (s *Store) read() ([]byte, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", s.Path)
	}
	return io.ReadAll(f)
}

func (s *Store) decode(data []byte) (*core.Project, error) {
	doc, err := s.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrCorruptStore, s.Path, err)
	}
	project, err := core.ProjectFromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrCorruptStore, s.Path, err)
	}
	return project, nil
}

// recoverCorrupt renames the corrupt file aside and returns an empty project.
func (s *Store) recoverCorrupt(cause error) (*core.Project, error) {
	backup := fmt.Sprintf("%s%s%d", s.Path, CorruptSuffix, time.Now().Unix())
	if err := os.Rename(s.Path, backup); err != nil {
		return nil, fmt.Errorf("%w: failed to move corrupt store aside: %w (cause: %w)", core.ErrPersistence, err, cause)
	}

	if s.config.Logger != nil {
		s.config.Logger.Warn("corrupt store moved aside, starting empty", "path", s.Path, "backup", backup, "error", cause)
	}

	s.mu.Lock()
	s.recovered = backup
	s.mu.Unlock()
	s.markLoad()
	return core.NewProject(), nil
}

// Save writes the whole project, replacing the file atomically.
func (s *Store) Save(ctx context.Context, p *core.Project) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := s.codec.Encode(p.Document())
	if err != nil {
		return fmt.Errorf("%w: failed to encode project: %w", core.ErrPersistence, err)
	}

	stamp, err := replaceFile(s.Path, data, s.config.Perm)
	if err != nil {
		return err
	}

	s.debug("store saved", "path", s.Path, "notes", p.Len(), "bytes", len(data))
	now := time.Now()
	s.mu.Lock()
	s.lastSave = &now
	s.written = stamp
	s.mu.Unlock()
	return nil
}

// isOwnWrite reports whether the file on disk is still the one the last Save
// produced, so the watcher can skip changes this process made.
func (s *Store) isOwnWrite() bool {
	s.mu.RLock()
	written := s.written
	s.mu.RUnlock()
	if written.isZero() {
		return false
	}

	info, err := os.Stat(s.Path)
	if err != nil {
		return false
	}
	current := stampOf(info)
	return current.size == written.size && current.modTime.Equal(written.modTime)
}

// RecoveredFrom returns the path a corrupt store was moved to during Load, if any.
func (s *Store) RecoveredFrom() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recovered
}

func (s *Store) markLoad() {
	now := time.Now()
	s.mu.Lock()
	s.lastLoad = &now
	s.mu.Unlock()
}

func (s *Store) debug(msg string, args ...any) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, args...)
	}
}

var _ core.Repository = (*Store)(nil)
var _ core.Watchable = (*Store)(nil)
