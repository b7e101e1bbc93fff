// Package noteapp is the Composition Root for the NoteApp note keeper.
//
// It connects the core domain (notes, categories and the project that owns
// them) with the file store using the Hexagonal Architecture pattern.
//
// Model:
//
// A single Project holds an ordered list of short notes. Each note has a
// title (at most 50 characters), one category from a fixed set, free-form
// content and creation/modification timestamps. The whole project is kept in
// memory, loaded once at startup and written through to one JSON file after
// every change.
//
// Features:
//
//   - **Write-Through Persistence**: every create, update and delete saves the full project.
//   - **Atomic Saves**: the store is replaced via temp file and rename, never truncated in place.
//   - **Stable Identity**: notes carry a UUID in addition to their display position.
//   - **Versioned Schema**: documents carry `schema_version`; legacy files are upgraded on load.
//   - **Export/Import**: JSON, YAML and Markdown (export only) codecs.
//
// Usage:
//
//	svc, err := noteapp.New("", noteapp.WithLogger(logger)) // ~/Documents/NoteApp.notes
//
//	note, err := svc.CreateNote(ctx, "Groceries", core.CategoryHome, "milk, eggs")
//	err = svc.RemoveNoteByID(ctx, note.ID)
package noteapp
