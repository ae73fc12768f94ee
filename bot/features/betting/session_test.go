package betting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_ResolveOnce(t *testing.T) {
	t.Parallel()

	store := newSessionStore(time.Minute)
	session := store.Create(111, 500)
	require.NotEmpty(t, session.ID)

	resolved, err := store.Resolve(session.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(111), resolved.UserID)
	assert.Equal(t, int64(500), resolved.BetAmount)

	// A second resolve must not win
	_, err = store.Resolve(session.ID)
	assert.ErrorIs(t, err, errSessionNotFound)
}

func TestSessionStore_ResolveUnknown(t *testing.T) {
	t.Parallel()

	store := newSessionStore(time.Minute)
	_, err := store.Resolve("no-such-session")
	assert.ErrorIs(t, err, errSessionNotFound)
}

func TestSessionStore_Expiry(t *testing.T) {
	t.Parallel()

	store := newSessionStore(time.Millisecond)
	session := store.Create(111, 500)

	time.Sleep(5 * time.Millisecond)

	_, err := store.Resolve(session.ID)
	assert.ErrorIs(t, err, errSessionExpired)

	// Expired stays expired
	_, err = store.Resolve(session.ID)
	assert.ErrorIs(t, err, errSessionExpired)
}

func TestSessionStore_Reopen(t *testing.T) {
	t.Parallel()

	store := newSessionStore(time.Minute)
	session := store.Create(111, 500)

	_, err := store.Resolve(session.ID)
	require.NoError(t, err)

	store.Reopen(session.ID)

	resolved, err := store.Resolve(session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, resolved.ID)
}

func TestSessionStore_Cleanup(t *testing.T) {
	t.Parallel()

	store := newSessionStore(50 * time.Millisecond)
	resolved := store.Create(111, 500)
	open := store.Create(222, 300)

	_, err := store.Resolve(resolved.ID)
	require.NoError(t, err)

	store.Cleanup()

	_, ok := store.Get(resolved.ID)
	assert.False(t, ok, "resolved session should be dropped")
	_, ok = store.Get(open.ID)
	assert.True(t, ok, "open session should survive")

	time.Sleep(60 * time.Millisecond)
	store.Cleanup()

	_, ok = store.Get(open.ID)
	assert.False(t, ok, "stale session should be dropped")
}
