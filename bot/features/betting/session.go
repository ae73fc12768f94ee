package betting

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

type sessionState int

const (
	stateProposed sessionState = iota
	stateResolved
	stateExpired
)

var (
	errSessionNotFound = errors.New("bet session not found")
	errSessionExpired  = errors.New("bet session expired")
)

// betSession holds a proposed flip bet waiting for the proposer to pick a side
type betSession struct {
	ID        string
	UserID    int64
	BetAmount int64
	CreatedAt time.Time
	state     sessionState
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*betSession
	ttl      time.Duration
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*betSession),
		ttl:      ttl,
	}
}

// Create registers a new proposed bet and returns it
func (st *sessionStore) Create(userID, betAmount int64) *betSession {
	st.mu.Lock()
	defer st.mu.Unlock()

	session := &betSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		BetAmount: betAmount,
		CreatedAt: time.Now(),
		state:     stateProposed,
	}
	st.sessions[session.ID] = session
	return session
}

// Get returns a session without changing its state
func (st *sessionStore) Get(id string) (*betSession, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	session, ok := st.sessions[id]
	return session, ok
}

// Resolve atomically transitions a proposed session to resolved. A session past
// its TTL transitions to expired instead and the call fails. Only the first
// successful Resolve for a given session wins.
func (st *sessionStore) Resolve(id string) (*betSession, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.sessions[id]
	if !ok {
		return nil, errSessionNotFound
	}

	switch session.state {
	case stateResolved:
		return nil, errSessionNotFound
	case stateExpired:
		return nil, errSessionExpired
	}

	if time.Since(session.CreatedAt) > st.ttl {
		session.state = stateExpired
		return nil, errSessionExpired
	}

	session.state = stateResolved
	return session, nil
}

// Reopen returns a resolved session to the proposed state. Used when the
// balance re-check fails and the bet should stay open for another pick.
func (st *sessionStore) Reopen(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if session, ok := st.sessions[id]; ok && session.state == stateResolved {
		session.state = stateProposed
	}
}

// Cleanup drops sessions that are resolved or past their TTL
func (st *sessionStore) Cleanup() {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := time.Now()
	for id, session := range st.sessions {
		if session.state == stateResolved || now.Sub(session.CreatedAt) > st.ttl {
			delete(st.sessions, id)
		}
	}
}
