package core

import (
	"time"

	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Notes          int        `json:"notes"`
	RepositoryType string     `json:"repository_type"`
	LastLoad       *time.Time `json:"last_load,omitempty"`
	LastSave       *time.Time `json:"last_save,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	repoType := "unknown"
	if s.repo != nil {
		repoType = "repository"
		if comp, ok := s.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
	}

	state := ServiceState{
		Notes:          s.project.Len(),
		RepositoryType: repoType,
	}
	if !s.lastLoad.IsZero() {
		t := s.lastLoad
		state.LastLoad = &t
	}
	if !s.lastSave.IsZero() {
		t := s.lastSave
		state.LastSave = &t
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
