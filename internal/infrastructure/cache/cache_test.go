package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type letterhead struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	store := NewRedisStoreWithClient(client, "test:")
	t.Cleanup(func() { store.Close() })
	return store, server
}

func stores(t *testing.T) map[string]Store {
	memory := NewMemoryStore(0)
	t.Cleanup(func() { memory.Close() })
	redisStore, _ := newRedisStore(t)
	return map[string]Store{"memory": memory, "redis": redisStore}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			var got letterhead
			found, err := store.Get(ctx, "common:letterheads:1", &got)
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, store.Set(ctx, "common:letterheads:1", letterhead{Number: 1, Name: "Privat"}, time.Minute))
			found, err = store.Get(ctx, "common:letterheads:1", &got)
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, letterhead{Number: 1, Name: "Privat"}, got)

			require.NoError(t, store.Delete(ctx, "common:letterheads:1"))
			found, err = store.Get(ctx, "common:letterheads:1", &got)
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestRedisStoreStatsCountLookups(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t)

	var got letterhead
	for i := 0; i < 3; i++ {
		_, err := store.Get(ctx, "common:letterheads:2", &got)
		require.NoError(t, err)
	}
	require.NoError(t, store.Set(ctx, "common:letterheads:2", letterhead{Number: 2, Name: "Firma"}, time.Minute))
	for i := 0; i < 2; i++ {
		found, err := store.Get(ctx, "common:letterheads:2", &got)
		require.NoError(t, err)
		require.True(t, found)
	}

	stats := store.Stats()
	assert.Equal(t, uint64(2), stats["hits"])
	assert.Equal(t, uint64(3), stats["misses"])
	assert.Contains(t, stats, "pool_hits")
	assert.Contains(t, stats, "pool_misses")
}

func TestStoreDeletePrefix(t *testing.T) {
	ctx := context.Background()
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set(ctx, "addressbook:postal-codes", []string{"DK-5700"}, time.Minute))
			require.NoError(t, store.Set(ctx, "addressbook:payment-terms", []string{"Netto"}, time.Minute))
			require.NoError(t, store.Set(ctx, "finance:groups:accounts", []int{1}, time.Minute))

			require.NoError(t, store.DeletePrefix(ctx, "addressbook:"))

			var v []string
			found, _ := store.Get(ctx, "addressbook:postal-codes", &v)
			assert.False(t, found)
			found, _ = store.Get(ctx, "addressbook:payment-terms", &v)
			assert.False(t, found)
			var groups []int
			found, _ = store.Get(ctx, "finance:groups:accounts", &groups)
			assert.True(t, found)
		})
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	defer store.Close()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Set(ctx, "k", 1, time.Minute))
	var v int
	found, _ := store.Get(ctx, "k", &v)
	assert.True(t, found)

	now = now.Add(2 * time.Minute)
	found, _ = store.Get(ctx, "k", &v)
	assert.False(t, found)

	store.cleanExpired()
	assert.Equal(t, 0, store.Stats()["total_items"])
	assert.EqualValues(t, 1, store.Stats()["hits"])
	assert.EqualValues(t, 1, store.Stats()["misses"])
}

func TestRedisStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store, server := newRedisStore(t)

	require.NoError(t, store.Set(ctx, "k", 1, time.Minute))
	assert.True(t, server.Exists("test:k"))

	server.FastForward(2 * time.Minute)
	var v int
	found, err := store.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetOrLoad(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	defer store.Close()

	calls := 0
	load := func(context.Context) ([]letterhead, error) {
		calls++
		return []letterhead{{Number: 1, Name: "Privat"}}, nil
	}

	first, err := GetOrLoad(ctx, store, "common:letterheads", time.Minute, load)
	require.NoError(t, err)
	second, err := GetOrLoad(ctx, store, "common:letterheads", time.Minute, load)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)

	Invalidate(ctx, store, "common:")
	_, err = GetOrLoad(ctx, store, "common:letterheads", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGetOrLoadDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	defer store.Close()

	boom := errors.New("boom")
	_, err := GetOrLoad(ctx, store, "k", time.Minute, func(context.Context) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)

	var v int
	found, _ := store.Get(ctx, "k", &v)
	assert.False(t, found)
}

func TestGetOrLoadWithoutStore(t *testing.T) {
	v, err := GetOrLoad(context.Background(), nil, "k", time.Minute, func(context.Context) (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}
