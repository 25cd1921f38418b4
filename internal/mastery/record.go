package mastery

import "time"

const (
	// MaxStreak is the cap on the consecutive-correct counter.
	MaxStreak = 5

	// MasteryStreak is the streak required to promote a learning skill.
	MasteryStreak = 5

	// RecoveryStreak is the streak required to clear a needs-review flag.
	RecoveryStreak = 3

	// ReviewThreshold marks a mastered skill for review when its streak
	// drops below this value after a failed retention probe.
	ReviewThreshold = 2

	// MaxHistoryAttempts bounds the per-skill practice history; the oldest
	// attempt is dropped once the window is full.
	MaxHistoryAttempts = 50
)

// PracticeAttempt is one entry in a record's practice history.
type PracticeAttempt struct {
	At            time.Time
	Theta         float64
	StandardError float64
	Difficulty    float64
	Correct       bool
}

// Record holds all mastery-related data for a single skill.
type Record struct {
	SkillID            string
	Status             Status
	Theta              float64
	StandardError      float64
	ConsecutiveCorrect int // 0..MaxStreak
	TotalAttempts      int
	CorrectCount       int
	LastPracticed      time.Time
	MasteredAt         *time.Time
	Fluency            FluencyMetrics
	History            []PracticeAttempt // newest last, at most MaxHistoryAttempts

	// Version increments on every committed mutation; Update callers pass
	// the version they read to detect conflicting writers.
	Version int64
}

// NewRecord returns a fresh learning record for a skill.
func NewRecord(skillID string) *Record {
	return &Record{
		SkillID: skillID,
		Status:  StatusLearning,
		Fluency: DefaultFluencyMetrics(),
	}
}

// AppendAttempt pushes one attempt onto the record's history, evicting the
// oldest entry when the window is full.
func (r *Record) AppendAttempt(a PracticeAttempt) {
	if len(r.History) >= MaxHistoryAttempts {
		history := make([]PracticeAttempt, MaxHistoryAttempts-1, MaxHistoryAttempts)
		copy(history, r.History[len(r.History)-(MaxHistoryAttempts-1):])
		r.History = history
	}
	r.History = append(r.History, a)
}

// Accuracy returns the lifetime accuracy ratio.
func (r *Record) Accuracy() float64 {
	if r.TotalAttempts == 0 {
		return 0.0
	}
	return float64(r.CorrectCount) / float64(r.TotalAttempts)
}
