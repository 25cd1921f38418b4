// Package catalog holds the calibrated item bank: read-mostly reference
// data shared across concurrent sessions. Item parameters change only at
// import time (through the calibrator); the usage counters are the sole
// hot-path mutation and are atomic.
package catalog

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"sync/atomic"
)

// Confidence records how an item's IRT parameters were obtained.
type Confidence string

const (
	ConfidenceExpert         Confidence = "expert"
	ConfidenceSimulated      Confidence = "simulated"
	ConfidenceLiveCalibrated Confidence = "live-calibrated"
)

// Item is a calibrated assessment item. Immutable per administration;
// difficulty and discrimination are tunable only through SetParameters.
type Item struct {
	ID             string     `json:"id"`
	SkillID        string     `json:"skill_id"`
	Difficulty     float64    `json:"difficulty"`     // beta, in [-3, 3]
	Discrimination float64    `json:"discrimination"` // alpha, in [0.5, 2.5]
	GradeLevel     string     `json:"grade_level"`
	Confidence     Confidence `json:"confidence"`
}

// DefaultWindow is the difficulty window around a target used by FindNear.
const DefaultWindow = 0.3

// Catalog indexes items by ID and skill. Safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	items    map[string]*Item
	bySkill  map[string][]*Item
	attempts map[string]*atomic.Uint64
}

// New builds a catalog from the given items. Items with out-of-range or
// non-finite parameters are rejected; a bad bank should fail at load time,
// not mid-session.
func New(items []Item) (*Catalog, error) {
	c := &Catalog{
		items:    make(map[string]*Item, len(items)),
		bySkill:  make(map[string][]*Item),
		attempts: make(map[string]*atomic.Uint64, len(items)),
	}
	for i := range items {
		it := items[i]
		if it.ID == "" {
			return nil, fmt.Errorf("catalog: item %d has empty ID", i)
		}
		if _, dup := c.items[it.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate item ID %q", it.ID)
		}
		if err := validateParameters(it.Difficulty, it.Discrimination); err != nil {
			return nil, fmt.Errorf("catalog: item %q: %w", it.ID, err)
		}
		if it.Confidence == "" {
			it.Confidence = ConfidenceExpert
		}
		c.items[it.ID] = &it
		c.bySkill[it.SkillID] = append(c.bySkill[it.SkillID], &it)
		c.attempts[it.ID] = &atomic.Uint64{}
	}
	for _, pool := range c.bySkill {
		sort.Slice(pool, func(i, j int) bool { return pool[i].Difficulty < pool[j].Difficulty })
	}
	return c, nil
}

func validateParameters(difficulty, discrimination float64) error {
	if math.IsNaN(difficulty) || difficulty < -3 || difficulty > 3 {
		return fmt.Errorf("difficulty %f out of range [-3, 3]", difficulty)
	}
	if math.IsNaN(discrimination) || discrimination < 0.5 || discrimination > 2.5 {
		return fmt.Errorf("discrimination %f out of range [0.5, 2.5]", discrimination)
	}
	return nil
}

// Get returns the item with the given ID.
func (c *Catalog) Get(id string) (Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.items[id]
	if !ok {
		return Item{}, false
	}
	return *it, true
}

// BySkill returns all items tagged with the given skill, sorted by difficulty.
func (c *Catalog) BySkill(skillID string) []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	pool := c.bySkill[skillID]
	out := make([]Item, len(pool))
	for i, it := range pool {
		out[i] = *it
	}
	return out
}

// FindNear returns the skill's items whose difficulty lies within
// DefaultWindow of target, excluding the given IDs.
func (c *Catalog) FindNear(skillID string, target float64, exclude map[string]bool) []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []Item
	for _, it := range c.bySkill[skillID] {
		if exclude[it.ID] {
			continue
		}
		if math.Abs(it.Difficulty-target) <= DefaultWindow {
			out = append(out, *it)
		}
	}
	return out
}

// FindClosest returns the skill's item minimizing |difficulty - target|,
// excluding the given IDs. The second return is false when the pool is
// empty after exclusion.
func (c *Catalog) FindClosest(skillID string, target float64, exclude map[string]bool) (Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var best *Item
	bestDist := math.Inf(1)
	for _, it := range c.bySkill[skillID] {
		if exclude[it.ID] {
			continue
		}
		if d := math.Abs(it.Difficulty - target); d < bestDist {
			best, bestDist = it, d
		}
	}
	if best == nil {
		return Item{}, false
	}
	return *best, true
}

// RecordAttempt atomically increments the item's usage counter and returns
// the new count. Incremented by the caller after administration; a full
// item lock is never taken.
func (c *Catalog) RecordAttempt(id string) uint64 {
	c.mu.RLock()
	counter := c.attempts[id]
	c.mu.RUnlock()
	if counter == nil {
		return 0
	}
	return counter.Add(1)
}

// Attempts returns the item's usage count.
func (c *Catalog) Attempts(id string) uint64 {
	c.mu.RLock()
	counter := c.attempts[id]
	c.mu.RUnlock()
	if counter == nil {
		return 0
	}
	return counter.Load()
}

// SetParameters writes calibrated parameters back onto an item. Import-time
// only; concurrent sessions see either the old or the new parameters, never
// a mix.
func (c *Catalog) SetParameters(id string, difficulty, discrimination float64, confidence Confidence) error {
	if err := validateParameters(difficulty, discrimination); err != nil {
		return fmt.Errorf("catalog: item %q: %w", id, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	it, ok := c.items[id]
	if !ok {
		return fmt.Errorf("catalog: item not found: %q", id)
	}
	it.Difficulty = difficulty
	it.Discrimination = discrimination
	it.Confidence = confidence
	for _, pool := range c.bySkill {
		sort.Slice(pool, func(i, j int) bool { return pool[i].Difficulty < pool[j].Difficulty })
	}
	return nil
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
