package core_test

import (
	"errors"
	"testing"
	"time"

	"github.com/aretw0/noteapp/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProject(titles ...string) *core.Project {
	p := core.NewProject()
	for _, title := range titles {
		p.Add(core.NewNote(title, core.CategoryMisc, ""))
	}
	return p
}

func titles(notes []core.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.Title
	}
	return out
}

func TestProject_AddPreservesOrder(t *testing.T) {
	p := newProject("A", "B", "C")
	assert.Equal(t, []string{"A", "B", "C"}, titles(p.List()))
	assert.Equal(t, 3, p.Len())
}

func TestProject_RemoveAt(t *testing.T) {
	t.Run("Middle element", func(t *testing.T) {
		p := newProject("A", "B", "C")
		assert.True(t, p.RemoveAt(1))
		assert.Equal(t, []string{"A", "C"}, titles(p.List()))
	})

	t.Run("Out of range is ignored", func(t *testing.T) {
		for _, index := range []int{-1, 3, 100} {
			p := newProject("A", "B", "C")
			before := p.List()
			assert.False(t, p.RemoveAt(index))
			assert.Equal(t, before, p.List(), "index %d", index)
		}
	})

	t.Run("Empty project", func(t *testing.T) {
		p := core.NewProject()
		assert.False(t, p.RemoveAt(0))
		assert.Equal(t, 0, p.Len())
	})

	t.Run("Last element", func(t *testing.T) {
		p := newProject("A", "B")
		assert.True(t, p.RemoveAt(1))
		assert.Equal(t, []string{"A"}, titles(p.List()))
	})
}

func TestProject_IDOperations(t *testing.T) {
	p := newProject("A", "B", "C")
	b, ok := p.At(1)
	require.True(t, ok)

	got, ok := p.Get(b.ID)
	require.True(t, ok)
	assert.Equal(t, "B", got.Title)
	assert.Equal(t, 1, p.IndexOf(b.ID))

	require.NoError(t, p.RemoveByID(b.ID))
	assert.Equal(t, []string{"A", "C"}, titles(p.List()))
	assert.Equal(t, -1, p.IndexOf(b.ID))

	err := p.RemoveByID(b.ID)
	assert.True(t, errors.Is(err, core.ErrNoteNotFound))
}

func TestProject_ListReturnsCopies(t *testing.T) {
	p := newProject("A")
	notes := p.List()
	notes[0].Title = "mutated"

	n, _ := p.At(0)
	assert.Equal(t, "A", n.Title)
}

func TestProject_UpdateAt(t *testing.T) {
	p := newProject("A")
	content := "body"
	n, err := p.UpdateAt(0, core.NoteUpdate{Content: &content}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "body", n.Content)

	_, err = p.UpdateAt(5, core.NoteUpdate{}, time.Now())
	assert.ErrorIs(t, err, core.ErrNoteNotFound)
}

func TestProject_DocumentRoundTrip(t *testing.T) {
	p := core.NewProject()
	p.Add(core.NewNote("Groceries", core.CategoryHome, "milk, eggs"))
	p.Add(core.NewNote("Report", core.CategoryWork, "Q3"))

	doc := p.Document()
	assert.Equal(t, core.SchemaVersion, doc.SchemaVersion)
	require.Len(t, doc.Notes, 2)

	back, err := core.ProjectFromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, titles(p.List()), titles(back.List()))
	for i, n := range p.List() {
		got, _ := back.At(i)
		assert.Equal(t, n.ID, got.ID)
		assert.True(t, n.CreatedAt.Equal(got.CreatedAt))
		assert.True(t, n.UpdatedAt.Equal(got.UpdatedAt))
	}
}

func TestProject_EmptyDocumentHasNotesArray(t *testing.T) {
	doc := core.NewProject().Document()
	assert.NotNil(t, doc.Notes)
	assert.Len(t, doc.Notes, 0)
}

func TestProjectFromDocument_Errors(t *testing.T) {
	good := core.NoteRecord{
		ID:        "1",
		Title:     "ok",
		Category:  "Разное",
		CreatedAt: "2024-01-01T00:00:00Z",
		UpdatedAt: "2024-01-01T00:00:00Z",
	}

	t.Run("Bad note aborts whole load", func(t *testing.T) {
		bad := good
		bad.ID = "2"
		bad.Category = "NotARealCategory"
		_, err := core.ProjectFromDocument(core.Document{Notes: []core.NoteRecord{good, bad}})
		assert.ErrorIs(t, err, core.ErrMalformedDocument)
		assert.ErrorIs(t, err, core.ErrUnknownCategory)
	})

	t.Run("Malformed timestamp", func(t *testing.T) {
		bad := good
		bad.CreatedAt = "13/01/2024"
		_, err := core.ProjectFromDocument(core.Document{Notes: []core.NoteRecord{bad}})
		assert.ErrorIs(t, err, core.ErrMalformedDocument)
		assert.ErrorIs(t, err, core.ErrMalformedTimestamp)
	})

	t.Run("Duplicate ids", func(t *testing.T) {
		_, err := core.ProjectFromDocument(core.Document{SchemaVersion: 2, Notes: []core.NoteRecord{good, good}})
		assert.ErrorIs(t, err, core.ErrMalformedDocument)
	})

	t.Run("Future schema", func(t *testing.T) {
		_, err := core.ProjectFromDocument(core.Document{SchemaVersion: core.SchemaVersion + 1})
		assert.ErrorIs(t, err, core.ErrMalformedDocument)
	})

	t.Run("Legacy schema without ids", func(t *testing.T) {
		legacy := good
		legacy.ID = ""
		p, err := core.ProjectFromDocument(core.Document{Notes: []core.NoteRecord{legacy, legacy}})
		require.NoError(t, err)
		a, _ := p.At(0)
		b, _ := p.At(1)
		assert.NotEmpty(t, a.ID)
		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, core.SchemaVersion, p.Document().SchemaVersion)
	})
}
