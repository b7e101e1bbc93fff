package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxTitleLength is the number of characters a title is truncated to.
const MaxTitleLength = 50

// Note is a single titled text entry owned by a Project.
type Note struct {
	ID        string
	Title     string
	Category  Category
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteUpdate carries the fields to replace in Note.Update. Nil fields are left unchanged.
type NoteUpdate struct {
	Title    *string
	Category *Category
	Content  *string
}

// NewNote creates a note stamped with the current time.
// The title is truncated to MaxTitleLength characters; nothing else is validated.
func NewNote(title string, category Category, content string) *Note {
	return NewNoteAt(title, category, content, time.Now())
}

// NewNoteAt is NewNote with an explicit clock reading.
func NewNoteAt(title string, category Category, content string, now time.Time) *Note {
	now = now.Round(0)
	return &Note{
		ID:        newNoteID(),
		Title:     TruncateTitle(title),
		Category:  category,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Update replaces the supplied fields and always advances UpdatedAt,
// even when u is empty or nothing actually changes.
func (n *Note) Update(u NoteUpdate) {
	n.UpdateAt(u, time.Now())
}

// UpdateAt is Update with an explicit clock reading.
// UpdatedAt never moves before CreatedAt.
func (n *Note) UpdateAt(u NoteUpdate, now time.Time) {
	if u.Title != nil {
		n.Title = TruncateTitle(*u.Title)
	}
	if u.Category != nil {
		n.Category = *u.Category
	}
	if u.Content != nil {
		n.Content = *u.Content
	}
	now = now.Round(0)
	if now.Before(n.CreatedAt) {
		now = n.CreatedAt
	}
	n.UpdatedAt = now
}

// TruncateTitle keeps the first MaxTitleLength characters of title.
func TruncateTitle(title string) string {
	count := 0
	for i := range title {
		if count == MaxTitleLength {
			return title[:i]
		}
		count++
	}
	return title
}

// Record returns the serializable form of the note.
func (n *Note) Record() NoteRecord {
	return NoteRecord{
		ID:        n.ID,
		Title:     n.Title,
		Category:  n.Category.Label(),
		Content:   n.Content,
		CreatedAt: FormatTimestamp(n.CreatedAt),
		UpdatedAt: FormatTimestamp(n.UpdatedAt),
	}
}

// NoteFromRecord rebuilds a note, restoring its timestamps verbatim.
// A record without an id (schema version 1) is given a fresh one.
// A record edited before it was created is rejected.
func NoteFromRecord(rec NoteRecord) (*Note, error) {
	category, err := ParseCategory(rec.Category)
	if err != nil {
		return nil, err
	}
	created, err := ParseTimestamp(rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("created_at: %w", err)
	}
	updated, err := ParseTimestamp(rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("updated_at: %w", err)
	}
	if updated.Before(created) {
		return nil, fmt.Errorf("%w: updated_at %s is before created_at %s", ErrMalformedTimestamp, rec.UpdatedAt, rec.CreatedAt)
	}

	id := rec.ID
	if id == "" {
		id = newNoteID()
	}

	return &Note{
		ID:        id,
		Title:     TruncateTitle(rec.Title),
		Category:  category,
		Content:   rec.Content,
		CreatedAt: created,
		UpdatedAt: updated,
	}, nil
}

func newNoteID() string {
	return uuid.NewString()
}
