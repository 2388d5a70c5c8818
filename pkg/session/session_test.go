package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*miniredis.Miniredis, *Store) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, NewStore(client, time.Hour)
}

func TestStore_CreateGetDestroy(t *testing.T) {
	ctx := context.Background()
	_, store := setupStore(t)

	sid, err := store.Create(ctx, 7)
	require.NoError(t, err)
	require.NotEmpty(t, sid)

	userID, err := store.Get(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)

	require.NoError(t, store.Destroy(ctx, sid))

	userID, err = store.Get(ctx, sid)
	require.NoError(t, err)
	assert.Zero(t, userID)
}

func TestStore_GetUnknownSession(t *testing.T) {
	ctx := context.Background()
	_, store := setupStore(t)

	userID, err := store.Get(ctx, "no-such-session")
	require.NoError(t, err)
	assert.Zero(t, userID)
}

func TestStore_SessionExpires(t *testing.T) {
	ctx := context.Background()
	mr, store := setupStore(t)

	sid, err := store.Create(ctx, 7)
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	userID, err := store.Get(ctx, sid)
	require.NoError(t, err)
	assert.Zero(t, userID)
}

func TestStore_DistinctSessionsPerLogin(t *testing.T) {
	ctx := context.Background()
	_, store := setupStore(t)

	first, err := store.Create(ctx, 7)
	require.NoError(t, err)
	second, err := store.Create(ctx, 7)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	// Destroying one login leaves the other alive.
	require.NoError(t, store.Destroy(ctx, first))
	userID, err := store.Get(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
}
