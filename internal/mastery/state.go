package mastery

// Status represents a skill's position in the mastery lifecycle.
type Status string

const (
	StatusLearning    Status = "learning"
	StatusMastered    Status = "mastered"
	StatusNeedsReview Status = "needs-review"
)

// Transition records a status change for event logging.
type Transition struct {
	SkillID string
	From    Status
	To      Status
	Trigger string // "streak-complete", "retention-slip", "flagged-for-review", "reinforced", "recovery-complete"
}

// Changed reports whether the transition actually moved between statuses.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// StatusMessage returns a student-facing message for a mastery status.
func StatusMessage(s Status) string {
	switch s {
	case StatusLearning:
		return "Keep practicing, you're getting there!"
	case StatusMastered:
		return "Mastered! Time to build on it."
	case StatusNeedsReview:
		return "Let's review this one together."
	default:
		return "Keep practicing!"
	}
}
