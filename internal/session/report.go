package session

import (
	"sort"
	"time"

	"github.com/abhisek/mathcat/internal/irt"
)

// Skill categories in a report.
const (
	SkillMastered = "mastered"
	SkillLearning = "learning"
	SkillFrontier = "frontier"
)

// frontierInformation is the per-skill Fisher information below which the
// session simply has not seen enough of the skill to place it. Information
// is evaluated at the skill's average administered difficulty, where the
// items are most informative: it measures the evidence the items could
// carry about the skill, independent of where the final ability estimate
// happened to land.
const frontierInformation = 0.3

// masteredAccuracy is the per-skill accuracy required to call a skill
// mastered within a single assessment.
const masteredAccuracy = 0.8

// SkillSummary is one skill's showing within the session.
type SkillSummary struct {
	SkillID       string  `json:"skill_id"`
	Category      string  `json:"category"`
	Attempted     int     `json:"attempted"`
	Correct       int     `json:"correct"`
	Accuracy      float64 `json:"accuracy"`
	AvgDifficulty float64 `json:"avg_difficulty"`
	Information   float64 `json:"information"`
}

// Report is the end-of-session summary handed to the caller. It can be
// produced at any point, including after early termination.
type Report struct {
	SessionID            string         `json:"session_id"`
	UserID               string         `json:"user_id"`
	State                State          `json:"state"`
	StopReason           string         `json:"stop_reason,omitempty"`
	Theta                float64        `json:"theta"`
	StandardError        float64        `json:"standard_error"`
	Confidence           float64        `json:"confidence"`
	Percentile           int            `json:"percentile"`
	QuestionCount        int            `json:"question_count"`
	CorrectCount         int            `json:"correct_count"`
	Accuracy             float64        `json:"accuracy"`
	SubstitutedResponses int            `json:"substituted_responses"`
	StartedAt            time.Time      `json:"started_at"`
	EndedAt              time.Time      `json:"ended_at,omitempty"`
	Duration             time.Duration  `json:"duration"`
	Skills               []SkillSummary `json:"skills"`
}

// Report summarizes the session so far: ability, percentile, accuracy, and
// a three-way per-skill categorization. Skills with too little evidence
// are "frontier"; skills answered accurately at or below the final ability
// estimate are "mastered"; the rest are "learning".
func (s *Session) Report() Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	ended := s.endedAt
	if ended.IsZero() {
		ended = s.now()
	}

	r := Report{
		SessionID:            s.id,
		UserID:               s.userID,
		State:                s.state,
		StopReason:           s.stopReason,
		Theta:                s.theta,
		StandardError:        s.se,
		Confidence:           s.confidenceLocked(),
		Percentile:           irt.ThetaToPercentile(s.theta),
		QuestionCount:        len(s.attempts),
		CorrectCount:         s.correct,
		SubstitutedResponses: s.substituted,
		StartedAt:            s.startedAt,
		EndedAt:              s.endedAt,
		Duration:             ended.Sub(s.startedAt),
		Skills:               s.skillSummariesLocked(),
	}
	if len(s.attempts) > 0 {
		r.Accuracy = float64(s.correct) / float64(len(s.attempts))
	}
	return r
}

func (s *Session) skillSummariesLocked() []SkillSummary {
	bySkill := make(map[string]*SkillSummary)
	for _, a := range s.attempts {
		sum, ok := bySkill[a.SkillID]
		if !ok {
			sum = &SkillSummary{SkillID: a.SkillID}
			bySkill[a.SkillID] = sum
		}
		sum.Attempted++
		if a.Correct {
			sum.Correct++
		}
		sum.AvgDifficulty += a.Difficulty
	}
	for _, sum := range bySkill {
		sum.AvgDifficulty /= float64(sum.Attempted)
		sum.Accuracy = float64(sum.Correct) / float64(sum.Attempted)
	}

	for _, a := range s.attempts {
		sum := bySkill[a.SkillID]
		sum.Information += irt.ItemInformation(sum.AvgDifficulty, a.Difficulty, a.Discrimination)
	}

	out := make([]SkillSummary, 0, len(bySkill))
	for _, sum := range bySkill {
		sum.Category = categorize(*sum, s.theta)
		out = append(out, *sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SkillID < out[j].SkillID })
	return out
}

// categorize is a pure function of a skill's session stats and the final
// ability estimate.
func categorize(sum SkillSummary, theta float64) string {
	if sum.Information < frontierInformation {
		return SkillFrontier
	}
	if sum.Accuracy >= masteredAccuracy && sum.AvgDifficulty <= theta {
		return SkillMastered
	}
	return SkillLearning
}
