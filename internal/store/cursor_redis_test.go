package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-delta-sync/internal/config"
	"github.com/MKhiriev/go-delta-sync/internal/logger"
)

func newTestRedisCursorStore(t *testing.T) (CursorStore, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)

	cursors, err := NewRedisCursorStore(context.Background(), config.Redis{Address: server.Addr()}, logger.Nop())
	require.NoError(t, err)

	return cursors, server
}

func TestRedisCursor_MissingKeyReportsZero(t *testing.T) {
	cursors, _ := newTestRedisCursorStore(t)

	version, err := cursors.Get(context.Background(), "topics")
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)
}

func TestRedisCursor_SetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	cursors, server := newTestRedisCursorStore(t)

	require.NoError(t, cursors.Set(ctx, "topics", 42))

	version, err := cursors.Get(ctx, "topics")
	require.NoError(t, err)
	assert.Equal(t, int64(42), version)

	// each collection gets its own namespaced key
	stored, err := server.Get("cursor:topics")
	require.NoError(t, err)
	assert.Equal(t, "42", stored)
}

func TestRedisCursor_OverwritesPreviousValue(t *testing.T) {
	ctx := context.Background()
	cursors, _ := newTestRedisCursorStore(t)

	require.NoError(t, cursors.Set(ctx, "topics", 10))
	require.NoError(t, cursors.Set(ctx, "topics", 25))

	version, err := cursors.Get(ctx, "topics")
	require.NoError(t, err)
	assert.Equal(t, int64(25), version)
}

func TestRedisCursor_GarbageValue(t *testing.T) {
	cursors, server := newTestRedisCursorStore(t)
	server.Set("cursor:topics", "not-a-number")

	_, err := cursors.Get(context.Background(), "topics")
	assert.Error(t, err)
}

func TestRedisCursor_ServerGone(t *testing.T) {
	ctx := context.Background()
	cursors, server := newTestRedisCursorStore(t)
	server.Close()

	assert.Error(t, cursors.Set(ctx, "topics", 1))
}

func TestNewRedisCursorStore_ConnectionRefused(t *testing.T) {
	server := miniredis.RunT(t)
	address := server.Addr()
	server.Close()

	_, err := NewRedisCursorStore(context.Background(), config.Redis{Address: address}, logger.Nop())
	assert.Error(t, err)
}
