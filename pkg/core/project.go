package core

import (
	"fmt"
	"time"
)

// Project is the ordered collection of notes. It owns its notes exclusively:
// callers only ever receive copies.
type Project struct {
	notes []*Note
}

// NewProject returns an empty project.
func NewProject() *Project {
	return &Project{}
}

// Add appends a note to the end of the sequence.
func (p *Project) Add(n *Note) {
	p.notes = append(p.notes, n)
}

// Len returns the number of notes.
func (p *Project) Len() int {
	return len(p.notes)
}

// At returns a copy of the note at index.
func (p *Project) At(index int) (Note, bool) {
	if index < 0 || index >= len(p.notes) {
		return Note{}, false
	}
	return *p.notes[index], true
}

// IndexOf returns the position of the note with the given id, or -1.
func (p *Project) IndexOf(id string) int {
	for i, n := range p.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// Get returns a copy of the note with the given id.
func (p *Project) Get(id string) (Note, bool) {
	return p.At(p.IndexOf(id))
}

// RemoveAt deletes the note at index and shifts the rest down.
// An out-of-range index is ignored; the return value reports whether anything was removed.
func (p *Project) RemoveAt(index int) bool {
	if index < 0 || index >= len(p.notes) {
		return false
	}
	copy(p.notes[index:], p.notes[index+1:])
	p.notes[len(p.notes)-1] = nil
	p.notes = p.notes[:len(p.notes)-1]
	return true
}

// RemoveByID deletes the note with the given id.
func (p *Project) RemoveByID(id string) error {
	if !p.RemoveAt(p.IndexOf(id)) {
		return fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	return nil
}

// UpdateAt applies u to the note at index.
func (p *Project) UpdateAt(index int, u NoteUpdate, now time.Time) (Note, error) {
	if index < 0 || index >= len(p.notes) {
		return Note{}, fmt.Errorf("%w: index %d", ErrNoteNotFound, index)
	}
	p.notes[index].UpdateAt(u, now)
	return *p.notes[index], nil
}

// List returns copies of all notes in order.
func (p *Project) List() []Note {
	out := make([]Note, len(p.notes))
	for i, n := range p.notes {
		out[i] = *n
	}
	return out
}

// Document returns the serializable form of the project at the current schema version.
func (p *Project) Document() Document {
	doc := Document{
		SchemaVersion: SchemaVersion,
		Notes:         make([]NoteRecord, 0, len(p.notes)),
	}
	for _, n := range p.notes {
		doc.Notes = append(doc.Notes, n.Record())
	}
	return doc
}

// ProjectFromDocument rebuilds a project. Any bad note aborts the whole load.
func ProjectFromDocument(doc Document) (*Project, error) {
	version := doc.SchemaVersion
	if version == 0 {
		version = 1
	}
	if version > SchemaVersion {
		return nil, fmt.Errorf("%w: unsupported schema version %d", ErrMalformedDocument, version)
	}

	p := &Project{notes: make([]*Note, 0, len(doc.Notes))}
	seen := make(map[string]struct{}, len(doc.Notes))
	for i, rec := range doc.Notes {
		n, err := NoteFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: note %d: %w", ErrMalformedDocument, i, err)
		}
		if _, dup := seen[n.ID]; dup {
			return nil, fmt.Errorf("%w: note %d: duplicate id %s", ErrMalformedDocument, i, n.ID)
		}
		seen[n.ID] = struct{}{}
		p.notes = append(p.notes, n)
	}
	return p, nil
}
