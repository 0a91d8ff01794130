package fs_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/eisen/pkg/adapters/fs"
	"github.com/aretw0/eisen/pkg/core"
)

func nextEvent(t *testing.T, ctx context.Context, events <-chan core.Event) core.Event {
	t.Helper()
	select {
	case e, ok := <-events:
		require.True(t, ok, "events channel closed")
		return e
	case <-ctx.Done():
		t.Fatal("Timed out waiting for event")
	}
	return core.Event{}
}

func TestWatch_ReportsChanges(t *testing.T) {
	s, _ := setupStorage(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events, err := s.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "k", []byte("v1")))
	e := nextEvent(t, ctx, events)
	assert.Equal(t, core.EventCreate, e.Type)
	assert.Equal(t, "k", e.Key)

	// Same bytes again: suppressed. The next reported event is the real change.
	require.NoError(t, s.Set(ctx, "k", []byte("v1")))
	require.NoError(t, s.Set(ctx, "k", []byte("v2")))
	e = nextEvent(t, ctx, events)
	assert.Equal(t, core.EventModify, e.Type)

	require.NoError(t, s.Delete(ctx, "k"))
	e = nextEvent(t, ctx, events)
	assert.Equal(t, core.EventDelete, e.Type)
	assert.Equal(t, "k", e.Key)
}

func TestWatch_LongKey(t *testing.T) {
	s, _ := setupStorage(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events, err := s.Watch(ctx)
	require.NoError(t, err)

	key := "eisen_notes_v1__" + strings.Repeat("é", 100)
	require.NoError(t, s.Set(ctx, key, []byte("v1")))
	e := nextEvent(t, ctx, events)
	assert.Equal(t, core.EventCreate, e.Type)
	assert.Equal(t, key, e.Key)

	require.NoError(t, s.Delete(ctx, key))
	e = nextEvent(t, ctx, events)
	assert.Equal(t, core.EventDelete, e.Type)
	assert.Equal(t, key, e.Key)
}

func TestWatch_ClosesOnCancel(t *testing.T) {
	s, _ := setupStorage(t)
	ctx, cancel := context.WithCancel(context.Background())

	events, err := s.Watch(ctx)
	require.NoError(t, err)

	// Make sure the worker is running before cancelling it.
	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	waitCtx, waitCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer waitCancel()
	nextEvent(t, waitCtx, events)
	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("events channel not closed after cancel")
	}

	assert.Eventually(t, func() bool {
		state := s.State().(fs.StorageState)
		return !state.WatcherActive
	}, 5*time.Second, 10*time.Millisecond)
}
