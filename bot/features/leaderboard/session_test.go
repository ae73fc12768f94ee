package leaderboard

import (
	"testing"
	"time"

	"fozi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEntries(n int) []*models.Account {
	entries := make([]*models.Account, n)
	for i := range entries {
		entries[i] = &models.Account{
			DiscordID: int64(1000 + i),
			Balance:   int64((n - i) * 100),
		}
	}
	return entries
}

func TestPagerSession_Pages(t *testing.T) {
	t.Parallel()

	store := newPagerStore(time.Minute)

	t.Run("partial last page", func(t *testing.T) {
		session := store.Create(42, makeEntries(25), 10)
		assert.Equal(t, 3, session.totalPages())
		assert.Len(t, session.pageEntries(), 10)

		session, err := store.Navigate(session.ID, 1)
		require.NoError(t, err)
		session, err = store.Navigate(session.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, session.Page)
		assert.Len(t, session.pageEntries(), 5)
	})

	t.Run("empty snapshot has one page", func(t *testing.T) {
		session := store.Create(42, nil, 10)
		assert.Equal(t, 1, session.totalPages())
		assert.Empty(t, session.pageEntries())
	})
}

func TestPagerStore_NavigateClampsAtBoundaries(t *testing.T) {
	t.Parallel()

	store := newPagerStore(time.Minute)
	session := store.Create(42, makeEntries(15), 10)
	assert.Equal(t, int64(42), session.OpenerID)

	// Previous on the first page is a no-op
	session, err := store.Navigate(session.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, session.Page)

	// Next past the last page is a no-op
	session, err = store.Navigate(session.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, session.Page)

	session, err = store.Navigate(session.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, session.Page)
}

func TestPagerStore_Expiry(t *testing.T) {
	t.Parallel()

	store := newPagerStore(time.Millisecond)
	session := store.Create(42, makeEntries(5), 10)

	time.Sleep(5 * time.Millisecond)

	_, err := store.Navigate(session.ID, 1)
	assert.ErrorIs(t, err, errPagerExpired)

	// Expired sessions are gone entirely
	_, err = store.Navigate(session.ID, 1)
	assert.ErrorIs(t, err, errPagerNotFound)
}

func TestRankLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "🥇", rankLabel(0))
	assert.Equal(t, "🥈", rankLabel(1))
	assert.Equal(t, "🥉", rankLabel(2))
	assert.Equal(t, "`#4`", rankLabel(3))
	assert.Equal(t, "`#11`", rankLabel(10))
}
