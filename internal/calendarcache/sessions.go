package calendarcache

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"scheduling-intelligence/pkg/datemath"
)

const (
	DefaultMaxSessions = 1000
	DefaultSessionTTL  = 30 * time.Minute
)

// Session owns one owner's Store and serializes every call into it.
type Session struct {
	mu    sync.Mutex
	store *Store
}

// Do runs fn with exclusive access to the store.
func (s *Session) Do(fn func(store *Store)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.store)
}

// Sessions hands out one Session per owner. Idle sessions expire and the
// least recently used ones are evicted beyond the size limit.
type Sessions struct {
	mu    sync.Mutex
	days  *datemath.Parser
	cache *expirable.LRU[string, *Session]
}

// NewSessions creates a session registry. Non-positive limits take the defaults.
func NewSessions(days *datemath.Parser, maxSessions int, ttl time.Duration) *Sessions {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Sessions{
		days:  days,
		cache: expirable.NewLRU[string, *Session](maxSessions, nil, ttl),
	}
}

// Get returns the owner's session, creating an empty one when missing or expired.
func (s *Sessions) Get(ownerID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.cache.Get(ownerID); ok {
		return sess
	}
	sess := &Session{store: NewStore(s.days)}
	s.cache.Add(ownerID, sess)
	return sess
}

// Drop forgets the owner's session.
func (s *Sessions) Drop(ownerID string) {
	s.cache.Remove(ownerID)
}

// Len is the number of live sessions.
func (s *Sessions) Len() int {
	return s.cache.Len()
}
