// Package board owns the active identity and the note store bound to it.
package board

import (
	"context"
	"log/slog"

	"github.com/aretw0/introspection"

	"github.com/aretw0/eisen/pkg/core"
	"github.com/aretw0/eisen/pkg/identity"
)

// Board is the single owned state object of a running session.
//
// A Board is either signed out (no store) or signed in, in which case it
// holds exactly one Store for the active identity. Changing identity
// replaces the store; the previous one is dropped with its editing session.
type Board struct {
	selector  *identity.Selector
	persist   core.Persister
	storeOpts []core.StoreOption
	logger    *slog.Logger

	store *core.Store
}

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger for the board and the stores it creates.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Board) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithStoreOptions passes opts to every Store the board creates.
func WithStoreOptions(opts ...core.StoreOption) Option {
	return func(b *Board) {
		b.storeOpts = append(b.storeOpts, opts...)
	}
}

// New creates a signed-out Board.
func New(selector *identity.Selector, p core.Persister, opts ...Option) *Board {
	b := &Board{
		selector: selector,
		persist:  p,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Resume signs in with the last remembered identity, if any.
func (b *Board) Resume(ctx context.Context) bool {
	id, ok := b.selector.Resume(ctx)
	if !ok {
		return false
	}
	b.open(ctx, id)
	return true
}

// SignIn selects raw as the active identity and loads its notes.
// Blank input is rejected and leaves the board as it was.
func (b *Board) SignIn(ctx context.Context, raw string) bool {
	id, ok := b.selector.Select(ctx, raw)
	if !ok {
		return false
	}
	b.open(ctx, id)
	return true
}

// SignOut drops the store and forgets the active identity.
func (b *Board) SignOut(ctx context.Context) {
	b.selector.SignOut(ctx)
	if b.store != nil {
		b.logger.Debug("signed out", "identity", b.store.Identity())
	}
	b.store = nil
}

// Store returns the active store.
func (b *Board) Store() (*core.Store, bool) {
	return b.store, b.store != nil
}

// Identity returns the active identity, or "" when signed out.
func (b *Board) Identity() string {
	if b.store == nil {
		return ""
	}
	return b.store.Identity()
}

// Reload re-reads the active identity's snapshot.
func (b *Board) Reload(ctx context.Context) {
	if b.store != nil {
		b.store.Load(ctx)
	}
}

// Persister returns the persister stores are created with.
func (b *Board) Persister() core.Persister {
	return b.persist
}

func (b *Board) open(ctx context.Context, id string) {
	opts := append([]core.StoreOption{core.WithStoreLogger(b.logger)}, b.storeOpts...)
	b.store = core.NewStore(ctx, id, b.persist, opts...)
	b.logger.Debug("signed in", "identity", id, "notes", b.store.Len())
}

// BoardState exposes internal state for observability.
type BoardState struct {
	SignedIn bool `json:"signed_in"`
	Store    any  `json:"store,omitempty"`
}

// State implements introspection.Introspectable.
func (b *Board) State() any {
	if b.store == nil {
		return BoardState{}
	}
	return BoardState{SignedIn: true, Store: b.store.State()}
}

// ComponentType implements introspection.Component.
func (b *Board) ComponentType() string {
	return "board"
}

var _ introspection.Introspectable = (*Board)(nil)
var _ introspection.Component = (*Board)(nil)
