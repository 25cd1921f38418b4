package retention

import (
	"sort"
	"time"

	"github.com/abhisek/mathcat/internal/mastery"
	"github.com/abhisek/mathcat/internal/skillgraph"
)

// Priority weights: decay urgency dominates, graph importance breaks ties.
const (
	stalenessWeight  = 0.6
	importanceWeight = 0.4

	// importanceEnablesCap is the enables count at which a skill reaches
	// full importance.
	importanceEnablesCap = 5
)

// Candidate is a mastered skill ranked for retention probing.
type Candidate struct {
	SkillID           string
	Priority          float64
	Staleness         float64
	Importance        float64
	DaysSincePractice int
}

// Importance scores a skill by how much of the graph it unlocks, scaled
// onto [0, 1].
func Importance(skill skillgraph.Skill) float64 {
	imp := float64(len(skill.Enables)) / importanceEnablesCap
	if imp > 1 {
		return 1
	}
	return imp
}

// SelectForRetention ranks mastered skills that have not been practiced for
// at least minDays and returns the top count candidates by priority.
func SelectForRetention(m *mastery.Map, count, minDays int, now time.Time) []Candidate {
	var candidates []Candidate
	for _, r := range m.All() {
		if r.Status != mastery.StatusMastered {
			continue
		}
		days := int(now.Sub(r.LastPracticed).Hours() / 24)
		if !r.LastPracticed.IsZero() && days < minDays {
			continue
		}

		staleness := Staleness(r.LastPracticed, now)
		importance := 0.0
		if skill, err := skillgraph.GetSkill(r.SkillID); err == nil {
			importance = Importance(skill)
		}
		candidates = append(candidates, Candidate{
			SkillID:           r.SkillID,
			Priority:          stalenessWeight*staleness + importanceWeight*importance,
			Staleness:         staleness,
			Importance:        importance,
			DaysSincePractice: days,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Priority != candidates[j].Priority {
			return candidates[i].Priority > candidates[j].Priority
		}
		return candidates[i].SkillID < candidates[j].SkillID
	})

	if count >= 0 && len(candidates) > count {
		candidates = candidates[:count]
	}
	return candidates
}
