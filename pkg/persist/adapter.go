// Package persist stores note collections in a core.Storage, one snapshot
// per identity.
package persist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"

	"github.com/aretw0/eisen/pkg/core"
)

const (
	// LastIdentityKey holds the identity that was active most recently.
	LastIdentityKey = "eisen_user_v1"
	// NotesKeyPrefix precedes the identity in every snapshot key.
	NotesKeyPrefix = "eisen_notes_v1__"
)

// SnapshotKey returns the storage key of identity's collection.
func SnapshotKey(identity string) string {
	return NotesKeyPrefix + identity
}

// Adapter implements core.Persister on top of a core.Storage.
type Adapter struct {
	storage  core.Storage
	codec    Codec
	logger   *slog.Logger
	validate *validator.Validate
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithCodec selects the snapshot format. JSON is the default.
func WithCodec(c Codec) Option {
	return func(a *Adapter) {
		if c != nil {
			a.codec = c
		}
	}
}

// WithLogger sets the logger that receives swallowed failures.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New creates an Adapter writing to storage.
func New(storage core.Storage, opts ...Option) *Adapter {
	a := &Adapter{
		storage:  storage,
		codec:    JSONCodec{},
		logger:   slog.Default(),
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Codec returns the codec snapshots are written with.
func (a *Adapter) Codec() Codec {
	return a.codec
}

// Storage returns the underlying storage.
func (a *Adapter) Storage() core.Storage {
	return a.storage
}

// Read returns identity's collection. A missing, unreadable or malformed
// snapshot is reported as absent.
func (a *Adapter) Read(ctx context.Context, identity string) ([]core.Note, bool) {
	key := SnapshotKey(identity)
	data, err := a.storage.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, core.ErrKeyNotFound) {
			a.logger.Warn("failed to read snapshot", "key", key, "error", err)
		}
		return nil, false
	}

	notes, err := a.decode(data)
	if err != nil {
		a.logger.Warn("discarding unreadable snapshot", "key", key, "format", a.codec.Name(), "error", err)
		return nil, false
	}
	seen := make(map[string]struct{}, len(notes))
	for i := range notes {
		if err := a.validate.Struct(notes[i]); err != nil {
			a.logger.Warn("discarding invalid snapshot", "key", key, "index", i, "error", err)
			return nil, false
		}
		if _, dup := seen[notes[i].ID]; dup {
			a.logger.Warn("discarding snapshot with duplicate id", "key", key, "index", i, "id", notes[i].ID)
			return nil, false
		}
		seen[notes[i].ID] = struct{}{}
	}
	return notes, true
}

// decode tries the configured codec first, then the others, so that a
// board written in one format stays readable after switching formats.
func (a *Adapter) decode(data []byte) ([]core.Note, error) {
	notes, err := a.codec.Decode(data)
	if err == nil {
		return notes, nil
	}
	for _, c := range []Codec{JSONCodec{}, YAMLCodec{}} {
		if c.Name() == a.codec.Name() {
			continue
		}
		if fallback, ferr := c.Decode(data); ferr == nil {
			a.logger.Debug("snapshot read with fallback format", "format", c.Name())
			return fallback, nil
		}
	}
	return nil, err
}

// Write replaces identity's snapshot. Failures are logged and dropped.
func (a *Adapter) Write(ctx context.Context, identity string, notes []core.Note) {
	key := SnapshotKey(identity)
	data, err := a.codec.Encode(notes)
	if err != nil {
		a.logger.Warn("failed to encode snapshot", "key", key, "error", err)
		return
	}
	if err := a.storage.Set(ctx, key, data); err != nil {
		a.logger.Warn("failed to write snapshot", "key", key, "error", err)
	}
}

// Identities lists the identities that have a stored snapshot, sorted.
// A non-empty pattern keeps only identities matching the doublestar glob.
func (a *Adapter) Identities(ctx context.Context, pattern string) ([]string, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", doublestar.ErrBadPattern, pattern)
	}

	keys, err := a.storage.Keys(ctx, NotesKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	var ids []string
	for _, k := range keys {
		id := strings.TrimPrefix(k, NotesKeyPrefix)
		if pattern != "" {
			if ok, _ := doublestar.Match(pattern, id); !ok {
				continue
			}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Forget deletes identity's snapshot.
func (a *Adapter) Forget(ctx context.Context, identity string) error {
	if err := a.storage.Delete(ctx, SnapshotKey(identity)); err != nil {
		return fmt.Errorf("failed to forget %q: %w", identity, err)
	}
	return nil
}

var _ core.Persister = (*Adapter)(nil)
