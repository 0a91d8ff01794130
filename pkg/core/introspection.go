package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Identity  string         `json:"identity"`
	NoteCount int            `json:"note_count"`
	Quadrants map[string]int `json:"quadrants"`
	EditingID string         `json:"editing_id,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	counts := make(map[string]int, 4)
	for q, notes := range s.Matrix() {
		counts[string(q)] = len(notes)
	}

	editing, _ := s.session.Editing()
	return StoreState{
		Identity:  s.identity,
		NoteCount: len(s.notes),
		Quadrants: counts,
		EditingID: editing,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
