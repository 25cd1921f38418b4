package retention

import (
	"sort"
	"time"

	"github.com/abhisek/mathcat/internal/mastery"
)

// Checkpoint is a dated snapshot of which skills were mastered, used to
// measure retention between assessment periods.
type Checkpoint struct {
	TakenAt  time.Time `json:"taken_at"`
	Theta    float64   `json:"theta"`
	Mastered []string  `json:"mastered"`
}

// Metrics compares current mastery against a previous checkpoint.
type Metrics struct {
	Retained      int      `json:"retained"`
	Lost          int      `json:"lost"`
	New           int      `json:"new"`
	RetentionRate float64  `json:"retention_rate"` // retained / previously mastered
	LostSkills    []string `json:"lost_skills"`
}

// BuildCheckpoint captures the current mastered set.
func BuildCheckpoint(m *mastery.Map, theta float64, now time.Time) Checkpoint {
	set := m.MasteredSet()
	mastered := make([]string, 0, len(set))
	for id := range set {
		mastered = append(mastered, id)
	}
	sort.Strings(mastered)
	return Checkpoint{TakenAt: now, Theta: theta, Mastered: mastered}
}

// ComputeMetrics measures retention since a previous checkpoint. A skill
// counts as retained when it was mastered then and still is; lost when it
// was mastered then but no longer is. With no prior mastered skills the
// retention rate is 1.
func ComputeMetrics(m *mastery.Map, previous Checkpoint) Metrics {
	current := m.MasteredSet()
	prior := make(map[string]bool, len(previous.Mastered))
	for _, id := range previous.Mastered {
		prior[id] = true
	}

	metrics := Metrics{}
	for _, id := range previous.Mastered {
		if current[id] {
			metrics.Retained++
		} else {
			metrics.Lost++
			metrics.LostSkills = append(metrics.LostSkills, id)
		}
	}
	for id := range current {
		if !prior[id] {
			metrics.New++
		}
	}
	sort.Strings(metrics.LostSkills)

	if len(previous.Mastered) == 0 {
		metrics.RetentionRate = 1
	} else {
		metrics.RetentionRate = float64(metrics.Retained) / float64(len(previous.Mastered))
	}
	return metrics
}

// Velocity returns skills mastered per week over the trailing window.
// Zero-valued dates and dates outside the window are ignored.
func Velocity(masteredDates []time.Time, window time.Duration, now time.Time) float64 {
	if window <= 0 {
		return 0
	}
	cutoff := now.Add(-window)
	count := 0
	for _, d := range masteredDates {
		if d.IsZero() {
			continue
		}
		if !d.Before(cutoff) && !d.After(now) {
			count++
		}
	}
	weeks := window.Hours() / (24 * 7)
	return float64(count) / weeks
}
