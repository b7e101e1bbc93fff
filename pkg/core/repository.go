package core

import "context"

// Repository defines the contract for persisting a Project.
// The whole project is read and written at once; there is no partial persistence.
type Repository interface {
	// Load reads the stored project. A missing store yields an empty project.
	Load(ctx context.Context) (*Project, error)

	// Save replaces the stored project with p.
	Save(ctx context.Context, p *Project) error
}

// Watchable defines an interface for repositories that can report external changes.
type Watchable interface {
	Watch(ctx context.Context) (<-chan Event, error)
}
