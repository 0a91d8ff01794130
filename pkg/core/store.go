package core

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/google/uuid"
)

// IDFunc allocates a new note id.
type IDFunc func() string

// NewID allocates a random (version 4) UUID.
func NewID() string {
	return uuid.NewString()
}

// maxIDAttempts bounds how often Create asks the IDFunc for an unused id.
const maxIDAttempts = 16

var errIDExhausted = errors.New("could not allocate an unused note id")

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIDFunc replaces the id allocator (random UUIDs by default).
func WithIDFunc(fn IDFunc) StoreOption {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithStoreLogger sets the logger for the store.
func WithStoreLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Store is the authoritative in-memory collection of one identity.
//
// Every successful mutation writes the full collection through the Persister
// exactly once. Rejected or no-op operations write nothing.
// A Store is not safe for concurrent use.
type Store struct {
	identity string
	notes    []Note
	persist  Persister
	newID    IDFunc
	logger   *slog.Logger
	session  *Session
}

// NewStore creates a store for identity and loads its collection.
func NewStore(ctx context.Context, identity string, p Persister, opts ...StoreOption) *Store {
	s := &Store{
		identity: identity,
		persist:  p,
		newID:    NewID,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.session = &Session{store: s}
	s.Load(ctx)
	return s
}

// Identity returns the identity this store belongs to.
func (s *Store) Identity() string {
	return s.identity
}

// Session returns the editing session bound to this store.
func (s *Store) Session() *Session {
	return s.session
}

// Load replaces the collection with the persisted snapshot, or with the
// sample notes when nothing usable is stored. The sample notes are not
// written back until the first mutation.
func (s *Store) Load(ctx context.Context) {
	notes, ok := s.persist.Read(ctx, s.identity)
	if !ok {
		s.logger.Debug("no stored notes, using samples", "identity", s.identity)
		notes = SampleNotes()
	}
	s.notes = slices.Clone(notes)
	if id, editing := s.session.Editing(); editing && s.indexOf(id) < 0 {
		s.session.Cancel()
	}
}

// Notes returns a copy of the collection, newest first.
func (s *Store) Notes() []Note {
	return slices.Clone(s.notes)
}

// Len returns the number of notes.
func (s *Store) Len() int {
	return len(s.notes)
}

// Get returns the note with id.
func (s *Store) Get(id string) (Note, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Note{}, false
	}
	return s.notes[i], true
}

// Quadrant returns the notes tagged q, in collection order.
func (s *Store) Quadrant(q Quadrant) []Note {
	return Partition(s.notes, q)
}

// Matrix returns all four partitions of the current collection.
func (s *Store) Matrix() Matrix {
	return Split(s.notes)
}

// Create validates f, prepends a new note with a fresh id and persists.
func (s *Store) Create(ctx context.Context, f Fields) (Note, error) {
	f, err := f.validate()
	if err != nil {
		return Note{}, err
	}
	if f.Color == "" {
		f.Color = DefaultColor
	}

	id, err := s.allocateID()
	if err != nil {
		return Note{}, err
	}

	n := Note{
		ID:       id,
		Quadrant: f.Quadrant,
		Title:    f.Title,
		Body:     f.Body,
		Color:    f.Color,
	}
	s.notes = slices.Insert(s.notes, 0, n)
	s.logger.Debug("note created", "id", id, "quadrant", n.Quadrant)
	s.flush(ctx)
	return n, nil
}

// Update replaces the mutable fields of the note with id, keeping its id and
// position.
func (s *Store) Update(ctx context.Context, id string, f Fields) error {
	f, err := f.validate()
	if err != nil {
		return err
	}
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}

	n := &s.notes[i]
	n.Title = f.Title
	n.Body = f.Body
	n.Color = f.Color
	n.Quadrant = f.Quadrant
	s.logger.Debug("note updated", "id", id)
	s.flush(ctx)
	return nil
}

// Delete removes the note with id. An editing session open on it is closed.
func (s *Store) Delete(ctx context.Context, id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}

	s.notes = slices.Delete(s.notes, i, i+1)
	if editing, ok := s.session.Editing(); ok && editing == id {
		s.session.Cancel()
	}
	s.logger.Debug("note deleted", "id", id)
	s.flush(ctx)
	return nil
}

// Move reassigns the note with id to quadrant q. Its position in the
// collection does not change, so dropping a note on its own quadrant only
// rewrites the snapshot.
func (s *Store) Move(ctx context.Context, id string, q Quadrant) error {
	if !q.Valid() {
		return ErrInvalidQuadrant
	}
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}

	s.notes[i].Quadrant = q
	s.logger.Debug("note moved", "id", id, "quadrant", q)
	s.flush(ctx)
	return nil
}

func (s *Store) flush(ctx context.Context) {
	s.persist.Write(ctx, s.identity, s.Notes())
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.notes, func(n Note) bool { return n.ID == id })
}

func (s *Store) allocateID() (string, error) {
	for range maxIDAttempts {
		id := s.newID()
		if id != "" && s.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", errIDExhausted
}
