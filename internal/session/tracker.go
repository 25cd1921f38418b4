package session

import (
	"sync"
	"time"
)

// DefaultSessionTTL is how long an idle session is kept before eviction.
const DefaultSessionTTL = 2 * time.Hour

type trackerEntry struct {
	session  *Session
	lastSeen time.Time
}

// Tracker holds live sessions keyed by ID with idle-TTL eviction.
// Eviction happens inline on access and on Sweep; there is no background
// goroutine, so the caller controls when the clock is consulted.
type Tracker struct {
	mu       sync.Mutex
	sessions map[string]*trackerEntry
	ttl      time.Duration
	now      func() time.Time
}

// NewTracker returns a tracker with the given idle TTL. A nil clock uses
// time.Now; ttl <= 0 falls back to DefaultSessionTTL.
func NewTracker(ttl time.Duration, now func() time.Time) *Tracker {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Tracker{
		sessions: make(map[string]*trackerEntry),
		ttl:      ttl,
		now:      now,
	}
}

// Put registers a session.
func (t *Tracker) Put(s *Session) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sessions[s.ID()] = &trackerEntry{session: s, lastSeen: t.now()}
}

// Get returns a live session and refreshes its idle timer. An expired
// session is evicted and reported as missing.
func (t *Tracker) Get(id string) (*Session, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.sessions[id]
	if !ok {
		return nil, false
	}
	if t.now().Sub(e.lastSeen) > t.ttl {
		delete(t.sessions, id)
		return nil, false
	}
	e.lastSeen = t.now()
	return e.session, true
}

// Remove drops a session from the tracker.
func (t *Tracker) Remove(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.sessions, id)
}

// Len returns the number of tracked sessions, expired or not.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sessions)
}

// Sweep evicts every session idle past the TTL and returns how many were
// dropped. Evicted sessions that are still active are cancelled so a
// report remains obtainable by any holder of the pointer.
func (t *Tracker) Sweep() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	cutoff := t.now().Add(-t.ttl)
	evicted := 0
	for id, e := range t.sessions {
		if e.lastSeen.Before(cutoff) {
			e.session.Cancel()
			delete(t.sessions, id)
			evicted++
		}
	}
	return evicted
}
