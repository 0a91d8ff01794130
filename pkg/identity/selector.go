// Package identity tracks which local identity's notes are active.
package identity

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aretw0/eisen/pkg/core"
	"github.com/aretw0/eisen/pkg/persist"
)

// Selector captures the active identity and remembers the last one used.
// Identities are bare labels; nothing is authenticated.
type Selector struct {
	storage core.Storage
	logger  *slog.Logger
	active  string
}

// NewSelector creates a Selector that remembers identities in storage.
func NewSelector(storage core.Storage, logger *slog.Logger) *Selector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Selector{storage: storage, logger: logger}
}

// Select trims raw and makes it the active identity. Blank input is
// rejected and leaves the selector untouched.
func (s *Selector) Select(ctx context.Context, raw string) (string, bool) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", false
	}
	s.active = id
	if err := s.storage.Set(ctx, persist.LastIdentityKey, []byte(id)); err != nil {
		s.logger.Warn("failed to remember identity", "identity", id, "error", err)
	}
	return id, true
}

// Resume restores the last remembered identity.
func (s *Selector) Resume(ctx context.Context) (string, bool) {
	data, err := s.storage.Get(ctx, persist.LastIdentityKey)
	if err != nil {
		return "", false
	}
	id := strings.TrimSpace(string(data))
	if id == "" {
		return "", false
	}
	s.active = id
	return id, true
}

// Active returns the current identity.
func (s *Selector) Active() (string, bool) {
	return s.active, s.active != ""
}

// SignOut forgets the active identity. Its notes stay in storage.
func (s *Selector) SignOut(ctx context.Context) {
	s.active = ""
	if err := s.storage.Delete(ctx, persist.LastIdentityKey); err != nil {
		s.logger.Warn("failed to clear identity", "error", err)
	}
}
