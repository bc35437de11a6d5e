package cache

import (
	"testing"
	"time"

	"github.com/lepinkainen/marvelgo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T, opts ...Option) *SQLite {
	t.Helper()

	env := testutil.NewTestEnv(t)
	c, err := NewSQLite(env.CachePath("marvel_cache.db"), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestSQLite_Contract(t *testing.T) {
	testContract(t, newTestSQLite(t))
}

func TestSQLite_Expiry(t *testing.T) {
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	c := newTestSQLite(t, WithExpireDays(1), WithClock(func() time.Time { return now }))

	require.NoError(t, c.Store("k", "payload"))

	now = now.AddDate(0, 0, 1)
	_, ok, err := c.Get("k")
	require.NoError(t, err)
	assert.True(t, ok, "entry is valid through its expiry day")

	now = now.AddDate(0, 0, 1)
	_, ok, err = c.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := c.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n, "expired rows stay until swept")

	require.NoError(t, c.Sweep())
	n, err = c.Len()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSQLite_NoTTLNeverSwept(t *testing.T) {
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	c := newTestSQLite(t, WithClock(func() time.Time { return now }))

	require.NoError(t, c.Store("k", "payload"))
	now = now.AddDate(50, 0, 0)
	require.NoError(t, c.Sweep())

	payload, ok, err := c.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "payload", payload)
}

func TestSQLite_SweepsOnOpen(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.CachePath("marvel_cache.db")
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	clock := WithClock(func() time.Time { return now })

	c, err := NewSQLite(path, WithExpireDays(1), clock)
	require.NoError(t, err)
	require.NoError(t, c.Store("k", "payload"))
	require.NoError(t, c.Close())

	now = now.AddDate(0, 0, 5)
	reopened, err := NewSQLite(path, clock)
	require.NoError(t, err)
	defer reopened.Close()

	n, err := reopened.Len()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSQLite_Persists(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.CachePath("marvel_cache.db")

	c, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, c.Store(testKey, "payload"))
	require.NoError(t, c.Close())
	assert.True(t, env.FileExists("marvel_cache.db"))

	reopened, err := NewSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	payload, ok, err := reopened.Get(testKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "payload", payload)
}

func TestSQLite_Closed(t *testing.T) {
	c := newTestSQLite(t)
	require.NoError(t, c.Close())

	_, _, err := c.Get("k")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, c.Store("k", "v"), ErrClosed)
	assert.NoError(t, c.Close())
}
