package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/eisen/pkg/adapters/memory"
	"github.com/aretw0/eisen/pkg/core"
)

func TestStorage_CRUD(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStorage()

	_, err := s.Get(ctx, "a")
	assert.ErrorIs(t, err, core.ErrKeyNotFound)

	value := []byte("v")
	require.NoError(t, s.Set(ctx, "p_a", value))
	require.NoError(t, s.Set(ctx, "p_b", []byte("w")))
	require.NoError(t, s.Set(ctx, "q", []byte("x")))
	value[0] = 'X'

	got, err := s.Get(ctx, "p_a")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got), "stored bytes are copied")

	keys, err := s.Keys(ctx, "p_")
	require.NoError(t, err)
	assert.Equal(t, []string{"p_a", "p_b"}, keys)

	require.NoError(t, s.Delete(ctx, "p_a"))
	_, err = s.Get(ctx, "p_a")
	assert.ErrorIs(t, err, core.ErrKeyNotFound)
}

func TestStorage_Unavailable(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStorage()
	require.NoError(t, s.Set(ctx, "k", []byte("v")))

	s.SetAvailable(false)
	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, memory.ErrUnavailable)
	assert.ErrorIs(t, s.Set(ctx, "k", nil), memory.ErrUnavailable)
	assert.ErrorIs(t, s.Delete(ctx, "k"), memory.ErrUnavailable)
	_, err = s.Keys(ctx, "")
	assert.ErrorIs(t, err, memory.ErrUnavailable)

	s.SetAvailable(true)
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}
