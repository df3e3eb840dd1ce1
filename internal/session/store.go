package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fkhayef/dutreat/internal/participant"
)

// Store keeps sessions in memory. Participant lists are never persisted.
// Sessions left untouched for longer than the TTL are evicted.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates an empty session store. A ttl of 0 keeps sessions until
// they are deleted.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create registers a new session with an empty registry. Expired sessions
// are swept first so abandoned sessions cannot pile up between ticks.
func (s *Store) Create() *Session {
	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now.UTC(),
		registry:  participant.NewRegistry(),
	}
	sess.touch(now)

	s.mu.Lock()
	s.sweepLocked(now)
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get retrieves a session by its ID, nil if unknown or expired.
// A successful lookup counts as activity.
func (s *Store) Get(id string) *Session {
	now := s.now()

	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil
	}

	if s.expired(sess, now) {
		s.mu.Lock()
		if s.sessions[id] == sess {
			delete(s.sessions, id)
		}
		s.mu.Unlock()
		return nil
	}

	sess.touch(now)
	return sess
}

// Delete removes a session, reporting whether it existed
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// Len returns the number of sessions held, expired or not
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep evicts expired sessions and returns how many were removed
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(now)
}

// Run sweeps expired sessions every interval until ctx is done
func (s *Store) Run(ctx context.Context, interval time.Duration, onSweep func(evicted int)) {
	if s.ttl <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}

func (s *Store) sweepLocked(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}
	evicted := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (s *Store) expired(sess *Session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.lastSeen()) > s.ttl
}
