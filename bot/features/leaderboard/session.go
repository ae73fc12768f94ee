package leaderboard

import (
	"errors"
	"sync"
	"time"

	"fozi/models"

	"github.com/google/uuid"
)

var (
	errPagerNotFound = errors.New("leaderboard session not found")
	errPagerExpired  = errors.New("leaderboard session expired")
)

// pagerSession holds a ranking snapshot taken when the leaderboard was opened.
// Paging moves through the snapshot, not live data.
type pagerSession struct {
	ID        string
	OpenerID  int64
	Entries   []*models.Account
	Page      int
	PageSize  int
	CreatedAt time.Time
}

func (p *pagerSession) totalPages() int {
	if len(p.Entries) == 0 {
		return 1
	}
	return (len(p.Entries) + p.PageSize - 1) / p.PageSize
}

// pageEntries returns the slice of entries for the current page
func (p *pagerSession) pageEntries() []*models.Account {
	start := p.Page * p.PageSize
	if start >= len(p.Entries) {
		return nil
	}
	end := start + p.PageSize
	if end > len(p.Entries) {
		end = len(p.Entries)
	}
	return p.Entries[start:end]
}

type pagerStore struct {
	mu       sync.Mutex
	sessions map[string]*pagerSession
	ttl      time.Duration
}

func newPagerStore(ttl time.Duration) *pagerStore {
	return &pagerStore{
		sessions: make(map[string]*pagerSession),
		ttl:      ttl,
	}
}

// Create registers a snapshot and returns the session opened at page zero
func (st *pagerStore) Create(openerID int64, entries []*models.Account, pageSize int) *pagerSession {
	st.mu.Lock()
	defer st.mu.Unlock()

	session := &pagerSession{
		ID:        uuid.NewString(),
		OpenerID:  openerID,
		Entries:   entries,
		Page:      0,
		PageSize:  pageSize,
		CreatedAt: time.Now(),
	}
	st.sessions[session.ID] = session
	return session
}

// Get returns a session without changing its state
func (st *pagerStore) Get(id string) (*pagerSession, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	session, ok := st.sessions[id]
	return session, ok
}

// Navigate moves the page by delta, clamping at the first and last page.
// Paging past a boundary leaves the page unchanged.
func (st *pagerStore) Navigate(id string, delta int) (*pagerSession, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.sessions[id]
	if !ok {
		return nil, errPagerNotFound
	}

	if time.Since(session.CreatedAt) > st.ttl {
		delete(st.sessions, id)
		return nil, errPagerExpired
	}

	page := session.Page + delta
	if page < 0 {
		page = 0
	}
	if max := session.totalPages() - 1; page > max {
		page = max
	}
	session.Page = page
	return session, nil
}

// Cleanup drops sessions past their TTL
func (st *pagerStore) Cleanup() {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := time.Now()
	for id, session := range st.sessions {
		if now.Sub(session.CreatedAt) > st.ttl {
			delete(st.sessions, id)
		}
	}
}
