package core

// SchemaVersion is the version written to new documents.
// Version 1 is the legacy layout without note ids and without a version field.
const SchemaVersion = 2

// Document is the entire durable schema of a project.
type Document struct {
	SchemaVersion int          `json:"schema_version,omitempty" yaml:"schema_version,omitempty"`
	Notes         []NoteRecord `json:"notes" yaml:"notes"`
}

// NoteRecord is the serialized form of a Note. Field names are fixed for
// compatibility with existing stores.
type NoteRecord struct {
	ID        string `json:"id,omitempty" yaml:"id,omitempty"`
	Title     string `json:"title" yaml:"title"`
	Category  string `json:"category" yaml:"category"`
	Content   string `json:"content" yaml:"content"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`
}
