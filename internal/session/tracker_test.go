package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced clock for TTL tests.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestTracker_PutGet(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	tr := NewTracker(time.Hour, clock.Now)

	s := New("u", Config{})
	tr.Put(s)

	got, ok := tr.Get(s.ID())
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = tr.Get("missing")
	assert.False(t, ok)
}

func TestTracker_ExpiresIdleSessions(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	tr := NewTracker(time.Hour, clock.Now)

	s := New("u", Config{})
	tr.Put(s)

	clock.Advance(61 * time.Minute)
	_, ok := tr.Get(s.ID())
	assert.False(t, ok, "idle session past TTL should be gone")
	assert.Equal(t, 0, tr.Len())
}

func TestTracker_GetRefreshesTTL(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	tr := NewTracker(time.Hour, clock.Now)

	s := New("u", Config{})
	tr.Put(s)

	// Touch every 40 minutes; the session never goes idle past the TTL.
	for i := 0; i < 4; i++ {
		clock.Advance(40 * time.Minute)
		_, ok := tr.Get(s.ID())
		require.True(t, ok, "touched session must survive")
	}
}

func TestTracker_SweepCancelsEvicted(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	tr := NewTracker(time.Hour, clock.Now)

	stale := New("u1", Config{})
	fresh := New("u2", Config{})
	tr.Put(stale)
	clock.Advance(2 * time.Hour)
	tr.Put(fresh)

	evicted := tr.Sweep()
	assert.Equal(t, 1, evicted)
	assert.Equal(t, 1, tr.Len())

	// The evicted session was cancelled, so a report is still coherent.
	assert.Equal(t, StateTerminatedEarly, stale.State())
	assert.Equal(t, StateActive, fresh.State())

	_, ok := tr.Get(fresh.ID())
	assert.True(t, ok)
}

func TestTracker_Remove(t *testing.T) {
	tr := NewTracker(0, nil) // defaults
	s := New("u", Config{})
	tr.Put(s)
	tr.Remove(s.ID())
	_, ok := tr.Get(s.ID())
	assert.False(t, ok)
}
