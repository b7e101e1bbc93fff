package core

import "errors"

// Common errors.
var (
	// ErrUnknownCategory is returned when a label is not one of the fixed categories.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrMalformedTimestamp is returned when a stored timestamp is not a valid ISO-8601 instant.
	ErrMalformedTimestamp = errors.New("malformed timestamp")

	// ErrMalformedDocument is returned when a document cannot be decoded or
	// holds a note that does not validate. Callers add the context: the store
	// reports it as ErrCorruptStore, an import as ErrInvalidImport.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrCorruptStore is returned when the store exists but cannot be decoded into a Project.
	ErrCorruptStore = errors.New("corrupt store")

	// ErrInvalidImport is returned when an import source cannot be read as notes.
	// The store itself is untouched.
	ErrInvalidImport = errors.New("invalid import")

	// ErrPersistence wraps any I/O failure while reading or writing the store.
	ErrPersistence = errors.New("persistence error")

	ErrReadOnly     = errors.New("store is in read-only mode")
	ErrNoteNotFound = errors.New("note not found")
	ErrEmptyTitle   = errors.New("note title cannot be empty")
)
