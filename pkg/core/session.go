package core

import (
	"context"
	"errors"
)

// Session tracks the single note currently open for editing.
//
// It is either Idle or Editing(id). Beginning an edit while another note is
// open switches to the new note and discards the previous draft.
type Session struct {
	store  *Store
	id     string
	draft  Fields
	active bool
}

// Begin opens the note with id for editing, prefilling the draft from it.
func (s *Session) Begin(id string) error {
	n, ok := s.store.Get(id)
	if !ok {
		return ErrNotFound
	}
	s.id = id
	s.draft = n.Fields()
	s.active = true
	return nil
}

// Editing returns the id of the open note.
func (s *Session) Editing() (string, bool) {
	return s.id, s.active
}

// Draft returns the in-progress field values.
func (s *Session) Draft() (Fields, bool) {
	return s.draft, s.active
}

// SetDraft overwrites the in-progress field values. It does nothing while Idle.
func (s *Session) SetDraft(f Fields) {
	if !s.active {
		return
	}
	s.draft = f
}

// Submit commits the draft to the store and returns to Idle.
// A rejected draft keeps the session open with the draft untouched; a note
// that disappeared meanwhile closes the session and returns ErrNotFound.
func (s *Session) Submit(ctx context.Context) error {
	if !s.active {
		return ErrNotFound
	}
	err := s.store.Update(ctx, s.id, s.draft)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	s.Cancel()
	return err
}

// Cancel discards the draft and returns to Idle.
func (s *Session) Cancel() {
	s.id = ""
	s.draft = Fields{}
	s.active = false
}
