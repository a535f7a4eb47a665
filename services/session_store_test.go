package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreCreateAndGet(t *testing.T) {
	store := NewSessionStore(nil)
	ctx := context.Background()

	id, err := store.Create(ctx, "admin-1", "maria")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	session, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "admin-1", session.AdminID)
	assert.Equal(t, "maria", session.Username)
}

func TestSessionStoreUnknownID(t *testing.T) {
	store := NewSessionStore(nil)

	session, err := store.Get(context.Background(), "not-a-session")
	require.NoError(t, err)
	assert.Nil(t, session)

	session, err = store.Get(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore(nil)
	ctx := context.Background()

	base := time.Now()
	store.now = func() time.Time { return base }

	id, err := store.Create(ctx, "admin-1", "maria")
	require.NoError(t, err)

	store.now = func() time.Time { return base.Add(SessionTTL - time.Minute) }
	session, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.NotNil(t, session)

	store.now = func() time.Time { return base.Add(SessionTTL + time.Minute) }
	session, err = store.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionStoreDestroyIsIdempotent(t *testing.T) {
	store := NewSessionStore(nil)
	ctx := context.Background()

	id, err := store.Create(ctx, "admin-1", "maria")
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, id))
	require.NoError(t, store.Destroy(ctx, id))
	require.NoError(t, store.Destroy(ctx, "never-existed"))
	require.NoError(t, store.Destroy(ctx, ""))

	session, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, session)
}
