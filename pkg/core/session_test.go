package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/eisen/pkg/core"
)

func TestSession_BeginPrefillsDraft(t *testing.T) {
	s := newStore(t, NewMockPersister())
	sess := s.Session()

	require.NoError(t, sess.Begin("n2"))

	id, editing := sess.Editing()
	assert.True(t, editing)
	assert.Equal(t, "n2", id)

	draft, ok := sess.Draft()
	require.True(t, ok)
	assert.Equal(t, core.Fields{Title: "Plan the week", Body: "Block out time", Color: "#A7F3D0", Quadrant: core.Q2}, draft)
}

func TestSession_BeginUnknownStaysIdle(t *testing.T) {
	sess := newStore(t, NewMockPersister()).Session()

	assert.ErrorIs(t, sess.Begin("missing"), core.ErrNotFound)
	_, editing := sess.Editing()
	assert.False(t, editing)
}

func TestSession_SwitchingNotesDiscardsDraft(t *testing.T) {
	sess := newStore(t, NewMockPersister()).Session()
	require.NoError(t, sess.Begin("n1"))
	sess.SetDraft(core.Fields{Title: "unsaved", Quadrant: core.Q1})

	require.NoError(t, sess.Begin("n3"))

	id, _ := sess.Editing()
	draft, _ := sess.Draft()
	assert.Equal(t, "n3", id)
	assert.Equal(t, "Answer emails", draft.Title)
}

func TestSession_SubmitCommitsAndReturnsToIdle(t *testing.T) {
	ctx := context.Background()
	p := NewMockPersister()
	s := newStore(t, p)
	sess := s.Session()
	require.NoError(t, sess.Begin("n1"))

	draft, _ := sess.Draft()
	draft.Title = "first edit"
	sess.SetDraft(draft)
	draft.Title = "second edit"
	draft.Quadrant = core.Q2
	sess.SetDraft(draft)

	require.NoError(t, sess.Submit(ctx))

	_, editing := sess.Editing()
	assert.False(t, editing)
	n, _ := s.Get("n1")
	assert.Equal(t, "second edit", n.Title)
	assert.Equal(t, core.Q2, n.Quadrant)
	assert.Equal(t, 1, p.writes)
}

func TestSession_SubmitRejectedKeepsDraft(t *testing.T) {
	ctx := context.Background()
	p := NewMockPersister()
	sess := newStore(t, p).Session()
	require.NoError(t, sess.Begin("n1"))
	sess.SetDraft(core.Fields{Title: "   ", Body: "keep me", Quadrant: core.Q1})

	assert.ErrorIs(t, sess.Submit(ctx), core.ErrEmptyTitle)

	id, editing := sess.Editing()
	assert.True(t, editing)
	assert.Equal(t, "n1", id)
	draft, _ := sess.Draft()
	assert.Equal(t, "keep me", draft.Body)
	assert.Zero(t, p.writes)
}

func TestSession_SubmitAfterNoteVanished(t *testing.T) {
	ctx := context.Background()
	p := NewMockPersister()
	s := newStore(t, p)
	sess := s.Session()
	require.NoError(t, sess.Begin("n1"))

	p.stored["alice"] = []core.Note{{ID: "n1", Quadrant: core.Q1, Title: "still here"}}
	s.Load(ctx)
	_, editing := sess.Editing()
	require.True(t, editing)

	p.stored["alice"] = []core.Note{}
	s.Load(ctx)
	assert.ErrorIs(t, sess.Submit(ctx), core.ErrNotFound)
	_, editing = sess.Editing()
	assert.False(t, editing)
}

func TestSession_CancelAndIdleOperations(t *testing.T) {
	ctx := context.Background()
	sess := newStore(t, NewMockPersister()).Session()

	sess.SetDraft(core.Fields{Title: "ignored"})
	_, ok := sess.Draft()
	assert.False(t, ok)
	assert.ErrorIs(t, sess.Submit(ctx), core.ErrNotFound)

	require.NoError(t, sess.Begin("n4"))
	sess.Cancel()
	_, editing := sess.Editing()
	assert.False(t, editing)
}
