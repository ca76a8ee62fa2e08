package denylist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDenylist(t *testing.T, now *time.Time) *InMemoryDenylist {
	t.Helper()
	d := NewInMemoryDenylist(time.Hour)
	d.now = func() time.Time { return *now }
	t.Cleanup(d.Stop)
	return d
}

func TestInMemoryDenylist_RevokeAndExpire(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	d := newTestDenylist(t, &now)
	ctx := context.Background()

	require.NoError(t, d.Revoke(ctx, "jti-1", now.Add(time.Minute)))

	revoked, err := d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = d.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)

	now = now.Add(2 * time.Minute)
	revoked, err = d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked, "entry must not outlive the token")
	assert.Zero(t, d.Len())
}

func TestInMemoryDenylist_AlreadyExpiredIsNoop(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	d := newTestDenylist(t, &now)

	require.NoError(t, d.Revoke(context.Background(), "old", now.Add(-time.Second)))
	assert.Zero(t, d.Len())
}

func TestInMemoryDenylist_Sweep(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	d := newTestDenylist(t, &now)
	ctx := context.Background()

	require.NoError(t, d.Revoke(ctx, "short", now.Add(time.Minute)))
	require.NoError(t, d.Revoke(ctx, "long", now.Add(time.Hour)))

	now = now.Add(10 * time.Minute)
	d.sweep()

	assert.Equal(t, 1, d.Len())
	revoked, err := d.IsRevoked(ctx, "long")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestInMemoryDenylist_StopIsIdempotent(t *testing.T) {
	d := NewInMemoryDenylist(time.Hour)
	d.Stop()
	assert.NotPanics(t, d.Stop)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "auth:denylist:abc", Key("abc"))
}
