package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// Service owns the single in-memory Project and exposes the operations a
// presentation layer drives. Every successful mutation is written through to
// the repository.
type Service struct {
	mu      sync.RWMutex
	repo    Repository
	project *Project
	logger  *slog.Logger
	now     func() time.Time

	lastSave time.Time
	lastLoad time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithServiceLogger sets the logger used by the service.
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new Service holding an empty project.
// Call Load to read the persisted state.
func NewService(repo Repository, opts ...ServiceOption) *Service {
	s := &Service{
		repo:    repo,
		project: NewProject(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory project with the persisted one.
func (s *Service) Load(ctx context.Context) error {
	p, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.project = p
	s.lastLoad = s.now()
	s.debug("project loaded", "notes", p.Len())
	return nil
}

// Save writes the whole project to the repository.
func (s *Service) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

func (s *Service) saveLocked(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.project); err != nil {
		if s.logger != nil {
			s.logger.Error("failed to save project", "error", err)
		}
		return err
	}
	s.lastSave = s.now()
	return nil
}

// ListAll returns every note in display order.
func (s *Service) ListAll() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.project.List()
}

// ListByCategory returns the notes carrying category c, in order.
func (s *Service) ListByCategory(c Category) []Note {
	var out []Note
	for _, n := range s.ListAll() {
		if n.Category == c {
			out = append(out, n)
		}
	}
	return out
}

// Match returns the notes whose title matches a glob pattern (case-insensitive).
func (s *Service) Match(pattern string) ([]Note, error) {
	pattern = strings.ToLower(pattern)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	var out []Note
	for _, n := range s.ListAll() {
		ok, err := doublestar.Match(pattern, strings.ToLower(n.Title))
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, n)
		}
	}
	return out, nil
}

// GetNote returns the note with the given id.
func (s *Service) GetNote(id string) (Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.project.Get(id)
	if !ok {
		return Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	return n, nil
}

// NoteAt returns the note at a display position.
func (s *Service) NoteAt(index int) (Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.project.At(index)
	if !ok {
		return Note{}, fmt.Errorf("%w: index %d", ErrNoteNotFound, index)
	}
	return n, nil
}

// CreateNote appends a new note and saves the project.
// If the save fails the note stays in memory and the error is returned.
func (s *Service) CreateNote(ctx context.Context, title string, category Category, content string) (Note, error) {
	title, err := normalizeTitle(title)
	if err != nil {
		return Note{}, err
	}
	if !category.Valid() {
		return Note{}, fmt.Errorf("%w: %d", ErrUnknownCategory, int(category))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := NewNoteAt(title, category, content, s.now())
	s.project.Add(n)
	s.debug("note created", "id", n.ID, "index", s.project.Len()-1)
	return *n, s.saveLocked(ctx)
}

// UpdateNote applies u to the note at index and saves the project.
func (s *Service) UpdateNote(ctx context.Context, index int, u NoteUpdate) (Note, error) {
	u, err := normalizeUpdate(u)
	if err != nil {
		return Note{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.project.UpdateAt(index, u, s.now())
	if err != nil {
		return Note{}, err
	}
	s.debug("note updated", "id", n.ID, "index", index)
	return n, s.saveLocked(ctx)
}

// UpdateNoteByID applies u to the note with the given id and saves the project.
func (s *Service) UpdateNoteByID(ctx context.Context, id string, u NoteUpdate) (Note, error) {
	u, err := normalizeUpdate(u)
	if err != nil {
		return Note{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.project.IndexOf(id)
	if index < 0 {
		return Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	n, err := s.project.UpdateAt(index, u, s.now())
	if err != nil {
		return Note{}, err
	}
	s.debug("note updated", "id", id, "index", index)
	return n, s.saveLocked(ctx)
}

// RemoveNote deletes the note at index and saves the project.
// An out-of-range index is a no-op and nothing is written.
func (s *Service) RemoveNote(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.project.RemoveAt(index) {
		s.debug("remove ignored, index out of range", "index", index, "len", s.project.Len())
		return nil
	}
	s.debug("note removed", "index", index)
	return s.saveLocked(ctx)
}

// RemoveNoteByID deletes the note with the given id and saves the project.
func (s *Service) RemoveNoteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.project.RemoveByID(id); err != nil {
		return err
	}
	s.debug("note removed", "id", id)
	return s.saveLocked(ctx)
}

// Codec converts a Document to and from an external representation.
type Codec interface {
	Encode(doc Document) ([]byte, error)
	Decode(data []byte) (Document, error)
}

// Export writes the current project to w using codec.
func (s *Service) Export(ctx context.Context, w io.Writer, codec Codec) error {
	s.mu.RLock()
	doc := s.project.Document()
	s.mu.RUnlock()

	data, err := codec.Encode(doc)
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// Import appends the notes found in data, keeping their timestamps.
// Ids that already exist are replaced by fresh ones. It returns the number of notes added.
// A source that does not decode or validate fails with ErrInvalidImport and
// leaves the project unchanged.
func (s *Service) Import(ctx context.Context, data []byte, codec Codec) (int, error) {
	doc, err := codec.Decode(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidImport, err)
	}
	incoming, err := ProjectFromDocument(doc)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidImport, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range incoming.notes {
		if s.project.IndexOf(n.ID) >= 0 {
			n.ID = newNoteID()
		}
		s.project.Add(n)
	}
	s.debug("notes imported", "count", incoming.Len())
	if incoming.Len() == 0 {
		return 0, nil
	}
	return incoming.Len(), s.saveLocked(ctx)
}

// Watch observes external changes to the store if the repository supports it.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx)
}

// normalizeTitle trims surrounding whitespace and cuts the title to
// MaxTitleLength. The result must still hold a visible character.
func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(TruncateTitle(strings.TrimSpace(title)))
	if title == "" {
		return "", ErrEmptyTitle
	}
	return title, nil
}

func normalizeUpdate(u NoteUpdate) (NoteUpdate, error) {
	if u.Title != nil {
		title, err := normalizeTitle(*u.Title)
		if err != nil {
			return NoteUpdate{}, err
		}
		u.Title = &title
	}
	if u.Category != nil && !u.Category.Valid() {
		return NoteUpdate{}, fmt.Errorf("%w: %d", ErrUnknownCategory, int(*u.Category))
	}
	return u, nil
}

func (s *Service) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
