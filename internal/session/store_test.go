package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/OMD2Planner_Go/internal/domain"
	"github.com/osse101/OMD2Planner_Go/internal/testing/redistest"
)

// runStoreContract checks the behaviour every backend shares
func runStoreContract(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("load missing", func(t *testing.T) {
		_, err := store.Load(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("save then load", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "a", []byte(`{"builder":{"skullCount":5}}`)))

		got, err := store.Load(ctx, "a")
		require.NoError(t, err)
		assert.JSONEq(t, `{"builder":{"skullCount":5}}`, string(got))
	})

	t.Run("save overwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "b", []byte(`{"builder":{"skullCount":1}}`)))
		require.NoError(t, store.Save(ctx, "b", []byte(`{"builder":{"skullCount":2}}`)))

		got, err := store.Load(ctx, "b")
		require.NoError(t, err)
		assert.JSONEq(t, `{"builder":{"skullCount":2}}`, string(got))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "c", []byte(`{"builder":{}}`)))
		require.NoError(t, store.Delete(ctx, "c"))

		_, err := store.Load(ctx, "c")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)

		// deleting twice is fine
		assert.NoError(t, store.Delete(ctx, "c"))
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, NewMemoryStore(16, time.Hour))
}

func TestMemoryStore_CopiesBlobs(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(4, time.Hour)

	blob := []byte(`{"builder":{}}`)
	require.NoError(t, store.Save(ctx, "a", blob))
	blob[0] = 'X'

	got, err := store.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, byte('{'), got[0])
}

func TestMemoryStore_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(2, time.Hour)

	require.NoError(t, store.Save(ctx, "a", []byte("1")))
	require.NoError(t, store.Save(ctx, "b", []byte("2")))
	_, err := store.Load(ctx, "a")
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "c", []byte("3")))

	assert.Equal(t, 2, store.Len())
	_, err = store.Load(ctx, "b")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = store.Load(ctx, "a")
	assert.NoError(t, err)
}

func TestRedisStore(t *testing.T) {
	client, _ := redistest.NewClient(t)
	store, err := NewRedisStore(&RedisConfig{Client: client, TTL: time.Hour})
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, store.Name())
	runStoreContract(t, store)
}

func TestRedisStore_KeyAndTTL(t *testing.T) {
	client, mr := redistest.NewClient(t)
	store, err := NewRedisStore(&RedisConfig{Client: client, TTL: time.Minute})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "abc", []byte(`{"builder":{}}`)))

	raw, err := mr.Get(RedisKeyPrefix + "abc")
	require.NoError(t, err)
	assert.Equal(t, `{"builder":{}}`, raw)
	assert.Equal(t, time.Minute, mr.TTL(RedisKeyPrefix+"abc"))

	mr.FastForward(2 * time.Minute)

	_, err = store.Load(ctx, "abc")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRedisStore_Unavailable(t *testing.T) {
	client, mr := redistest.NewClient(t)
	store, err := NewRedisStore(&RedisConfig{Client: client})
	require.NoError(t, err)

	mr.Close()
	ctx := context.Background()

	_, err = store.Load(ctx, "abc")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.False(t, errors.Is(err, domain.ErrSessionNotFound))

	assert.ErrorIs(t, store.Save(ctx, "abc", []byte("{}")), domain.ErrStoreUnavailable)
	assert.ErrorIs(t, store.Ping(ctx), domain.ErrStoreUnavailable)
}

func TestNewRedisStore_RequiresClient(t *testing.T) {
	_, err := NewRedisStore(&RedisConfig{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
