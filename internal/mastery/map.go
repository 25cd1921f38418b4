package mastery

import (
	"errors"
	"fmt"
	"sync"
)

// ErrConflict is returned by Update when the caller's version is stale.
// The caller should re-read the record and retry.
var ErrConflict = errors.New("mastery: record modified by concurrent writer")

// Map holds per-skill mastery records for one learner. Safe for
// concurrent use; every committed mutation bumps the record's version.
type Map struct {
	mu      sync.Mutex
	records map[string]*Record
}

// NewMap returns an empty mastery map.
func NewMap() *Map {
	return &Map{records: make(map[string]*Record)}
}

// Get returns a copy of the skill's record.
func (m *Map) Get(skillID string) (Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[skillID]
	if !ok {
		return Record{}, false
	}
	return *r, true
}

// Put stores a record, replacing any existing one for the skill.
func (m *Map) Put(r Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.Version++
	m.records[r.SkillID] = &r
}

// Len returns the number of records.
func (m *Map) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

// All returns copies of every record.
func (m *Map) All() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Record, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, *r)
	}
	return out
}

// MasteredSet returns the IDs of all mastered skills as a set.
func (m *Map) MasteredSet() map[string]bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]bool)
	for id, r := range m.records {
		if r.Status == StatusMastered {
			out[id] = true
		}
	}
	return out
}

// Update applies fn to the skill's record if the caller's version is still
// current, then commits the result under a new version. fn must be pure:
// on ErrConflict the caller re-reads and calls Update again with the fresh
// version.
func (m *Map) Update(skillID string, version int64, fn func(Record) Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[skillID]
	if !ok {
		return fmt.Errorf("mastery: no record for skill %q", skillID)
	}
	if r.Version != version {
		return fmt.Errorf("mastery: skill %q version %d (have %d): %w", skillID, version, r.Version, ErrConflict)
	}
	next := fn(*r)
	next.SkillID = r.SkillID
	next.Version = r.Version + 1
	m.records[skillID] = &next
	return nil
}

// apply mutates the skill's record under the map lock, creating a learning
// record if none exists. Internal mutation path for practice and probes.
func (m *Map) apply(skillID string, fn func(*Record)) Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[skillID]
	if !ok {
		r = NewRecord(skillID)
		m.records[skillID] = r
	}
	fn(r)
	r.Version++
	return *r
}
