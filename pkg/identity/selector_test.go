package identity_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/eisen/pkg/adapters/memory"
	"github.com/aretw0/eisen/pkg/identity"
	"github.com/aretw0/eisen/pkg/persist"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestSelector_Select(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"alice", "alice", true},
		{"  bob \n", "bob", true},
		{"", "", false},
		{"   \t", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			ctx := context.Background()
			s := identity.NewSelector(memory.NewStorage(), quiet)

			got, ok := s.Select(ctx, tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)

			active, activeOK := s.Active()
			assert.Equal(t, tt.ok, activeOK)
			assert.Equal(t, tt.want, active)
		})
	}
}

func TestSelector_BlankKeepsPrevious(t *testing.T) {
	ctx := context.Background()
	s := identity.NewSelector(memory.NewStorage(), quiet)

	s.Select(ctx, "alice")
	_, ok := s.Select(ctx, "  ")
	assert.False(t, ok)

	active, _ := s.Active()
	assert.Equal(t, "alice", active)
}

func TestSelector_ResumeAndSignOut(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewStorage()

	first := identity.NewSelector(storage, quiet)
	_, ok := first.Resume(ctx)
	assert.False(t, ok)

	first.Select(ctx, " carol ")

	second := identity.NewSelector(storage, quiet)
	id, ok := second.Resume(ctx)
	require.True(t, ok)
	assert.Equal(t, "carol", id)

	require.NoError(t, storage.Set(ctx, persist.SnapshotKey("carol"), []byte("[]")))
	second.SignOut(ctx)

	_, ok = second.Active()
	assert.False(t, ok)
	_, ok = identity.NewSelector(storage, quiet).Resume(ctx)
	assert.False(t, ok)

	_, err := storage.Get(ctx, persist.SnapshotKey("carol"))
	assert.NoError(t, err, "signing out must keep the identity's notes")
}

func TestSelector_StorageFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewStorage()
	storage.SetAvailable(false)

	s := identity.NewSelector(storage, quiet)
	id, ok := s.Select(ctx, "dave")
	require.True(t, ok)
	assert.Equal(t, "dave", id)

	_, ok = s.Resume(ctx)
	assert.False(t, ok)
	assert.NotPanics(t, func() { s.SignOut(ctx) })
}
