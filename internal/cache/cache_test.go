package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "nested", "responses.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCache_PutGet(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "/canteens/1/days")
	require.NoError(t, err)
	assert.False(t, ok)

	before := time.Now().Add(-time.Second)
	require.NoError(t, c.Put(ctx, "/canteens/1/days", []byte(`[{"date":"2025-01-01"}]`)))

	entry, ok, err := c.Get(ctx, "/canteens/1/days")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"date":"2025-01-01"}]`, string(entry.Body))
	assert.True(t, entry.FetchedAt.After(before))
}

func TestCache_PutReplaces(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "k", []byte("old")))
	require.NoError(t, c.Put(ctx, "k", []byte("new")))

	entry, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "new", string(entry.Body))
}

func TestCache_Prune(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "a", []byte("1")))
	n, err := c.Prune(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = c.Prune(ctx, -time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, ok, err := c.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_CloseNil(t *testing.T) {
	var c *Cache
	assert.NoError(t, c.Close())
}
